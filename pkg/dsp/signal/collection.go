package signal

import (
	"fmt"
	"sync"
)

// Collection is the ordered, mutable set of signal descriptors driving the
// pipeline. Iteration order is insertion order. Every successful mutation
// notifies subscribers, which is how downstream consumers learn that any
// previously computed spectrum is stale; the collection owns no buffers
// itself.
type Collection struct {
	mu          sync.Mutex
	descriptors []Descriptor
	subscribers []func()
}

// NewCollection creates a collection seeded with the given descriptors.
func NewCollection(descs ...Descriptor) *Collection {
	c := &Collection{}
	c.descriptors = append(c.descriptors, descs...)
	return c
}

// Subscribe registers a callback invoked after every mutation. Callbacks run
// on the mutating goroutine, outside the collection lock.
func (c *Collection) Subscribe(fn func()) {
	if fn == nil {
		return
	}
	c.mu.Lock()
	c.subscribers = append(c.subscribers, fn)
	c.mu.Unlock()
}

// Add appends a descriptor.
func (c *Collection) Add(desc Descriptor) {
	c.mu.Lock()
	c.descriptors = append(c.descriptors, desc)
	c.mu.Unlock()
	c.notify()
}

// Remove deletes the descriptor at index, preserving the order of the rest.
func (c *Collection) Remove(index int) error {
	c.mu.Lock()
	if index < 0 || index >= len(c.descriptors) {
		n := len(c.descriptors)
		c.mu.Unlock()
		return NewSignalError(ErrCodeIndex,
			fmt.Sprintf("descriptor index %d out of range [0, %d)", index, n), nil)
	}
	c.descriptors = append(c.descriptors[:index], c.descriptors[index+1:]...)
	c.mu.Unlock()
	c.notify()
	return nil
}

// Update replaces the descriptor at index.
func (c *Collection) Update(index int, desc Descriptor) error {
	c.mu.Lock()
	if index < 0 || index >= len(c.descriptors) {
		n := len(c.descriptors)
		c.mu.Unlock()
		return NewSignalError(ErrCodeIndex,
			fmt.Sprintf("descriptor index %d out of range [0, %d)", index, n), nil)
	}
	c.descriptors[index] = desc
	c.mu.Unlock()
	c.notify()
	return nil
}

// Len returns the number of descriptors.
func (c *Collection) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.descriptors)
}

// Snapshot returns a copy of the descriptors in insertion order, safe to
// iterate while the collection keeps mutating.
func (c *Collection) Snapshot() []Descriptor {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]Descriptor, len(c.descriptors))
	copy(out, c.descriptors)
	return out
}

func (c *Collection) notify() {
	c.mu.Lock()
	subs := make([]func(), len(c.subscribers))
	copy(subs, c.subscribers)
	c.mu.Unlock()
	for _, fn := range subs {
		fn()
	}
}
