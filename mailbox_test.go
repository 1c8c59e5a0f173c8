package restate

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMailboxFIFO(t *testing.T) {
	m := makeMailbox[int]()

	for i := range 10 {
		require.NoError(t, m.enqueue(i))
	}

	for i := range 10 {
		v, ok := m.recv()
		require.True(t, ok)
		assert.Equal(t, i, v, "recv must yield items strictly in enqueue order")
	}
}

func TestMailboxEnqueueAfterClose(t *testing.T) {
	m := makeMailbox[int]()
	m.close()
	m.close() // idempotent

	assert.ErrorIs(t, m.enqueue(1), ErrStoreClosed)
}

func TestMailboxDrainsAfterClose(t *testing.T) {
	m := makeMailbox[int]()

	require.NoError(t, m.enqueue(1))
	require.NoError(t, m.enqueue(2))
	m.close()

	v, ok := m.recv()
	require.True(t, ok, "items accepted before close must still be delivered")
	assert.Equal(t, 1, v)

	v, ok = m.recv()
	require.True(t, ok)
	assert.Equal(t, 2, v)

	_, ok = m.recv()
	assert.False(t, ok, "an empty closed mailbox signals end-of-stream")
}

func TestMailboxRecvWakesOnEnqueue(t *testing.T) {
	m := makeMailbox[int]()

	got := make(chan int, 1)
	go func() {
		v, ok := m.recv()
		if ok {
			got <- v
		}
	}()

	require.NoError(t, m.enqueue(7))

	assert.Eventually(t, func() bool {
		select {
		case v := <-got:
			return v == 7
		default:
			return false
		}
	}, assertEventuallyTimeout, assertEventuallyTick, "a blocked recv should wake on enqueue")
}

func TestMailboxConcurrentProducersPreserveProducerOrder(t *testing.T) {
	type item struct {
		producer int
		seq      int
	}

	m := makeMailbox[item]()

	const producers = 10
	const perProducer = 100

	var wg sync.WaitGroup
	for p := range producers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range perProducer {
				assert.NoError(t, m.enqueue(item{producer: p, seq: i}))
			}
		}()
	}
	wg.Wait()
	m.close()

	lastSeq := make(map[int]int)
	for p := range producers {
		lastSeq[p] = -1
	}

	count := 0
	for {
		v, ok := m.recv()
		if !ok {
			break
		}
		count++
		assert.Equal(t, lastSeq[v.producer]+1, v.seq, "per-producer order must survive interleaving")
		lastSeq[v.producer] = v.seq
	}

	assert.Equal(t, producers*perProducer, count, "no item may be dropped")
}
