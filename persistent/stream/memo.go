package stream

import (
	"sync"
	"sync/atomic"
)

// memo is a write-once cache cell for a suspended computation.
//
// The thunk is called at most once, on the first call to force. If the thunk panics,
// the cell stays unevaluated and the next call to force will try again. The thunk is
// released after evaluation, so that everything it references may be collected.
type memo[T any] struct {
	done  atomic.Bool
	mu    sync.Mutex
	thunk func() T
	value T
}

func suspend[T any](f func() T) *memo[T] {
	return &memo[T]{thunk: f}
}

func evaluated[T any](v T) *memo[T] {
	m := &memo[T]{value: v}
	m.done.Store(true)
	return m
}

func (m *memo[T]) force() T {
	if m.done.Load() {
		return m.value
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if !m.done.Load() {
		m.value = m.thunk()
		m.thunk = nil
		m.done.Store(true)
	}
	return m.value
}

func (m *memo[T]) isEvaluated() bool {
	return m.done.Load()
}
