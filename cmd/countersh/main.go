// Command countersh is an interactive shell around a counter store, mostly
// useful to poke at dispatch, select, and middleware behavior by hand.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strconv"

	"github.com/abiosoft/ishell/v2"
	"github.com/edup2p/restate"
	"github.com/edup2p/restate/middlewares/logger"
)

var programLevel = new(slog.LevelVar) // Info by default

type counterState struct {
	Value int
}

type counterAction struct {
	Delta int
}

func counterReducer(state counterState, action counterAction) counterState {
	return counterState{Value: state.Value + action.Delta}
}

func main() {
	h := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: programLevel})
	slog.SetDefault(slog.New(h))

	ctx := context.Background()

	base := restate.New(counterReducer)
	defer base.Close()

	store, err := restate.Wrap[counterState, counterAction, counterAction](
		ctx, base, logger.New[counterState, counterAction](nil, slog.LevelDebug),
	)
	if err != nil {
		fmt.Fprintln(os.Stderr, "wrap store:", err)
		os.Exit(1)
	}

	shell := ishell.New()

	shell.SetHomeHistoryPath(".countersh_history")

	shell.Println("Counter Interactive Shell")

	debugCmd := &ishell.Cmd{
		Name: "debug",
		Help: "set log level to debug (shows dispatched actions)",
		Func: func(c *ishell.Context) {
			programLevel.Set(slog.LevelDebug)
		},
	}

	infoCmd := &ishell.Cmd{
		Name: "info",
		Help: "set log level to info",
		Func: func(c *ishell.Context) {
			programLevel.Set(slog.LevelInfo)
		},
	}

	shell.AddCmd(debugCmd)
	shell.AddCmd(infoCmd)

	shell.AddCmd(&ishell.Cmd{
		Name: "inc",
		Help: "increment the counter",
		Func: func(c *ishell.Context) {
			if err := store.Dispatch(ctx, counterAction{Delta: 1}); err != nil {
				c.Err(err)
			}
		},
	})

	shell.AddCmd(&ishell.Cmd{
		Name: "dec",
		Help: "decrement the counter",
		Func: func(c *ishell.Context) {
			if err := store.Dispatch(ctx, counterAction{Delta: -1}); err != nil {
				c.Err(err)
			}
		},
	})

	shell.AddCmd(&ishell.Cmd{
		Name: "add",
		Help: "add <n> to the counter",
		Func: func(c *ishell.Context) {
			if len(c.Args) != 1 {
				c.Err(fmt.Errorf("expected one argument"))
				return
			}

			n, err := strconv.Atoi(c.Args[0])
			if err != nil {
				c.Err(err)
				return
			}

			if err := store.Dispatch(ctx, counterAction{Delta: n}); err != nil {
				c.Err(err)
			}
		},
	})

	shell.AddCmd(&ishell.Cmd{
		Name: "get",
		Help: "print the current counter value",
		Func: func(c *ishell.Context) {
			state, err := store.State(ctx)
			if err != nil {
				c.Err(err)
				return
			}
			c.Println(state.Value)
		},
	})

	shell.AddCmd(&ishell.Cmd{
		Name: "watch",
		Help: "print every state change from now on",
		Func: func(c *ishell.Context) {
			_, err := store.Subscribe(ctx, func(state counterState) {
				shell.Println("counter is now", state.Value)
			})
			if err != nil {
				c.Err(err)
			}
		},
	})

	shell.Run()
}
