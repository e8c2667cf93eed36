// Package control drives the reminder scheduler from a dedicated goroutine.
package control

import "sync"

// Mailbox is a single-slot, latest-value-wins channel. Put never blocks and
// overwrites a value that has not been taken yet; Take never blocks.
type Mailbox[T any] struct {
	mu   sync.Mutex
	slot chan T
}

// NewMailbox creates an empty mailbox.
func NewMailbox[T any]() *Mailbox[T] {
	return &Mailbox[T]{slot: make(chan T, 1)}
}

// Put stores v, replacing any undelivered value.
func (m *Mailbox[T]) Put(v T) {
	m.mu.Lock()
	defer m.mu.Unlock()

	select {
	case <-m.slot:
	default:
	}
	m.slot <- v
}

// Take returns the pending value, if any.
func (m *Mailbox[T]) Take() (T, bool) {
	select {
	case v := <-m.slot:
		return v, true
	default:
		var zero T
		return zero, false
	}
}
