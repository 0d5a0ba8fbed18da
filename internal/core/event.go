package core

import (
	"slices"
	"sync"
)

// EventChannel tracks the subscribers of a proxy's events, in subscription order.
type EventChannel struct {
	mu          sync.Mutex
	subscribers map[string][]any
}

// Count returns the number of current subscribers to the event.
func (c *EventChannel) Count(event string) int {
	c.mu.Lock()
	defer c.mu.Unlock()

	return len(c.subscribers[event])
}

// Subscribers returns the current subscribers to the event, in subscription order.
func (c *EventChannel) Subscribers(event string) []any {
	c.mu.Lock()
	defer c.mu.Unlock()

	return slices.Clone(c.subscribers[event])
}

func (c *EventChannel) subscribe(event string, handler any) {
	if isNil(handler) {
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.subscribers == nil {
		c.subscribers = make(map[string][]any)
	}

	c.subscribers[event] = append(c.subscribers[event], handler)
}

// unsubscribe removes the most recent subscription of handler.
func (c *EventChannel) unsubscribe(event string, handler any) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	handlers := c.subscribers[event]

	for index := len(handlers) - 1; index >= 0; index-- {
		if sameHandler(handlers[index], handler) {
			c.subscribers[event] = slices.Delete(handlers, index, index+1)

			return true
		}
	}

	return false
}
