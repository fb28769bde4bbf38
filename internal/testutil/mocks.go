package testutil

import (
	"sync"
	"testing"
)

// CallbackTracker records invocations of test callbacks such as predicates
// and mappers, so tests can assert how often the pipeline called them.
type CallbackTracker struct {
	mu     sync.Mutex
	count  int
	value  interface{}
	values []interface{}
}

// NewCallbackTracker creates a new CallbackTracker.
func NewCallbackTracker() *CallbackTracker {
	return &CallbackTracker{}
}

// Mark records one call. The first argument, if any, becomes the latest value.
func (c *CallbackTracker) Mark(value ...interface{}) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.count++
	if len(value) > 0 {
		c.value = value[0]
		c.values = append(c.values, value[0])
	}
}

// Called reports whether Mark was called at least once.
func (c *CallbackTracker) Called() bool {
	return c.CallCount() > 0
}

// CallCount returns the number of Mark calls.
func (c *CallbackTracker) CallCount() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.count
}

// Value returns the most recently marked value.
func (c *CallbackTracker) Value() interface{} {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.value
}

// Values returns every marked value in call order.
func (c *CallbackTracker) Values() []interface{} {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]interface{}(nil), c.values...)
}

// Reset clears the recorded calls.
func (c *CallbackTracker) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.count = 0
	c.value = nil
	c.values = nil
}

// AssertCalled fails the test if Mark was never called.
func (c *CallbackTracker) AssertCalled(t *testing.T) {
	t.Helper()
	if !c.Called() {
		t.Fatal("expected callback to be called")
	}
}

// AssertNotCalled fails the test if Mark was called.
func (c *CallbackTracker) AssertNotCalled(t *testing.T) {
	t.Helper()
	if n := c.CallCount(); n != 0 {
		t.Fatalf("expected callback not to be called, got %d calls", n)
	}
}

// AssertCallCount fails the test unless Mark was called exactly want times.
func (c *CallbackTracker) AssertCallCount(t *testing.T, want int) {
	t.Helper()
	if got := c.CallCount(); got != want {
		t.Fatalf("call count = %d, want %d", got, want)
	}
}

// TrackPredicate wraps fn so every evaluation is marked on tracker with its argument.
func TrackPredicate[T any](tracker *CallbackTracker, fn func(T) bool) func(T) bool {
	return func(v T) bool {
		tracker.Mark(v)
		return fn(v)
	}
}

// TrackMapper wraps fn so every application is marked on tracker with its argument.
func TrackMapper[T, R any](tracker *CallbackTracker, fn func(T) R) func(T) R {
	return func(v T) R {
		tracker.Mark(v)
		return fn(v)
	}
}

// CountingProducer yields a fixed sequence and counts every pull, including
// pulls after exhaustion.
type CountingProducer[T any] struct {
	values []T
	index  int
	pulls  int
}

// NewCountingProducer creates a CountingProducer over values.
func NewCountingProducer[T any](values ...T) *CountingProducer[T] {
	return &CountingProducer[T]{values: values}
}

// Next returns the next value, or false once values are used up.
func (p *CountingProducer[T]) Next() (T, bool) {
	p.pulls++
	if p.index >= len(p.values) {
		var zero T
		return zero, false
	}
	value := p.values[p.index]
	p.index++
	return value, true
}

// Pulls returns the number of Next calls so far.
func (p *CountingProducer[T]) Pulls() int {
	return p.pulls
}
