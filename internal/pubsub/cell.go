// Package pubsub provides the observable cell primitive shared by the
// session state and the catalog products state. A Cell holds one value and
// notifies subscribers synchronously on every Set, which is what preserves
// the write-happens-before-notify ordering the session layer relies on.
package pubsub

import "sync"

// Cell is a single observable value. Reads and subscriptions are safe from
// any goroutine; writes are expected to come from a single owner, and
// subscriber callbacks run synchronously on the writer's goroutine.
type Cell[T any] struct {
	mu     sync.RWMutex
	value  T
	subs   map[int]func(T)
	nextID int
}

// NewCell returns a cell holding the given initial value.
func NewCell[T any](initial T) *Cell[T] {
	return &Cell[T]{value: initial, subs: make(map[int]func(T))}
}

// Get returns the current value.
func (c *Cell[T]) Get() T {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.value
}

// Set replaces the value and notifies every subscriber with the new value.
// Notification happens after the value is visible to Get, outside the lock
// so subscribers may read the cell again.
func (c *Cell[T]) Set(value T) {
	c.mu.Lock()
	c.value = value
	subs := make([]func(T), 0, len(c.subs))
	for _, fn := range c.subs {
		subs = append(subs, fn)
	}
	c.mu.Unlock()

	for _, fn := range subs {
		fn(value)
	}
}

// Subscribe registers fn for future updates and returns a cancel function.
// fn is not called with the current value; callers wanting it should Get
// first.
func (c *Cell[T]) Subscribe(fn func(T)) (cancel func()) {
	c.mu.Lock()
	id := c.nextID
	c.nextID++
	c.subs[id] = fn
	c.mu.Unlock()

	return func() {
		c.mu.Lock()
		delete(c.subs, id)
		c.mu.Unlock()
	}
}
