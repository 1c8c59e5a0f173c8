package restate

import "sync"

// mailbox is an unbounded FIFO queue with many producers and exactly one
// consumer (the state worker). Enqueue never blocks past appending; recv
// blocks until an item arrives or the mailbox is closed and drained.
type mailbox[T any] struct {
	mu     sync.Mutex
	items  []T
	closed bool

	wake chan struct{} // len 1
	done chan struct{}
}

func makeMailbox[T any]() *mailbox[T] {
	return &mailbox[T]{
		wake: make(chan struct{}, 1),
		done: make(chan struct{}),
	}
}

func (m *mailbox[T]) enqueue(item T) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.closed {
		return ErrStoreClosed
	}

	m.items = append(m.items, item)

	select {
	case m.wake <- struct{}{}:
	default:
		// consumer already has a pending wakeup, it will drain the queue
	}

	return nil
}

// recv yields items strictly in enqueue order. After close it keeps yielding
// until the queue is empty, then reports end-of-stream.
func (m *mailbox[T]) recv() (T, bool) {
	for {
		m.mu.Lock()
		if len(m.items) > 0 {
			item := m.items[0]
			m.items = m.items[1:]
			m.mu.Unlock()
			return item, true
		}
		closed := m.closed
		m.mu.Unlock()

		if closed {
			var zero T
			return zero, false
		}

		select {
		case <-m.wake:
		case <-m.done:
		}
	}
}

// close stops intake. Idempotent.
func (m *mailbox[T]) close() {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.closed {
		m.closed = true
		close(m.done)
	}
}

// address is the shareable producer handle to a mailbox.
type address[T any] struct {
	mbox *mailbox[T]
}

func (a address[T]) send(item T) error {
	return a.mbox.enqueue(item)
}
