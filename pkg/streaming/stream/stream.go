package stream

import (
	"iter"

	"github.com/rs/zerolog"

	"github.com/vnykmshr/feather/pkg/metrics"
)

// Producer is the pull contract shared by every source and stage.
// Next returns the next element and true, or the zero value and false once
// the sequence is exhausted.
type Producer[T any] interface {
	Next() (T, bool)
}

// ProducerFunc adapts an ordinary function to the Producer interface.
type ProducerFunc[T any] func() (T, bool)

// Next calls f.
func (f ProducerFunc[T]) Next() (T, bool) {
	return f()
}

// Stream represents a lazy, single-pass sequence of elements.
// Intermediate operations return a new Stream that takes ownership of the
// receiver's producer chain; only the newest handle should be used afterwards.
// Terminal operations pull until exhaustion or until the result is known.
type Stream[T any] interface {
	// Producer exposes a single raw pull.
	Producer[T]

	// Intermediate operations (lazy, return new Stream)

	// Filter returns a stream consisting of elements that match the given predicate.
	Filter(predicate func(T) bool) Stream[T]

	// Map returns a stream consisting of the results of applying the given function to elements.
	// Use MapTo to change the element type.
	Map(mapper func(T) T) Stream[T]

	// FlatMap replaces each element with the contents of the stream produced by mapper.
	FlatMap(mapper func(T) Stream[T]) Stream[T]

	// Skip returns a stream consisting of remaining elements after skipping n elements.
	Skip(n int64) Stream[T]

	// Limit returns a stream consisting of elements truncated to be no longer than maxSize.
	Limit(maxSize int64) Stream[T]

	// TakeWhile returns the longest prefix of elements that match predicate.
	TakeWhile(predicate func(T) bool) Stream[T]

	// DropWhile discards the longest prefix of elements that match predicate.
	DropWhile(predicate func(T) bool) Stream[T]

	// Peek returns a stream consisting of elements, additionally performing the provided
	// action on each element as elements are consumed.
	Peek(action func(T)) Stream[T]

	// Instrument counts pulls, emitted items and exhaustion under name.
	// A nil registry uses metrics.DefaultRegistry.
	Instrument(name string, registry *metrics.Registry) Stream[T]

	// Trace logs every pull on logger at debug level.
	Trace(logger zerolog.Logger, name string) Stream[T]

	// Terminal operations (eager, consume the stream)

	// ForEach performs an action for each element of the stream.
	ForEach(action func(T))

	// Reduce folds elements left to right, starting from identity.
	Reduce(identity T, accumulator func(T, T) T) T

	// ToSlice returns a slice containing all elements.
	ToSlice() []T

	// Count returns the count of elements.
	Count() int64

	// AnyMatch returns whether any elements match the given predicate.
	AnyMatch(predicate func(T) bool) bool

	// AllMatch returns whether all elements match the given predicate.
	AllMatch(predicate func(T) bool) bool

	// NoneMatch returns whether no elements match the given predicate.
	NoneMatch(predicate func(T) bool) bool

	// FindFirst returns the first element, if present.
	FindFirst() (T, bool)

	// Min returns the minimum element according to the provided comparator.
	Min(compare func(a, b T) int) (T, bool)

	// Max returns the maximum element according to the provided comparator.
	Max(compare func(a, b T) int) (T, bool)

	// Seq adapts the remaining elements to a range-over-func iterator.
	Seq() iter.Seq[T]
}

// stream is the default implementation of Stream.
type stream[T any] struct {
	producer  Producer[T]
	exhausted bool
}

// New creates a new Stream from a Producer.
func New[T any](producer Producer[T]) Stream[T] {
	return &stream[T]{producer: producer}
}

// Next implements Producer. Once the underlying producer reports exhaustion
// it is never pulled again.
func (s *stream[T]) Next() (T, bool) {
	if s.exhausted {
		var zero T
		return zero, false
	}
	value, ok := s.producer.Next()
	if !ok {
		s.exhausted = true
		var zero T
		return zero, false
	}
	return value, true
}

// Filter implementation
func (s *stream[T]) Filter(predicate func(T) bool) Stream[T] {
	return New[T](&filterStage[T]{upstream: s, predicate: predicate})
}

// Map implementation
func (s *stream[T]) Map(mapper func(T) T) Stream[T] {
	return MapTo[T, T](s, mapper)
}

// FlatMap implementation
func (s *stream[T]) FlatMap(mapper func(T) Stream[T]) Stream[T] {
	return FlatMapTo[T, T](s, mapper)
}

// Skip implementation
func (s *stream[T]) Skip(n int64) Stream[T] {
	return New[T](&skipStage[T]{upstream: s, remaining: n})
}

// Limit implementation
func (s *stream[T]) Limit(maxSize int64) Stream[T] {
	return New[T](&limitStage[T]{upstream: s, remaining: maxSize})
}

// TakeWhile implementation
func (s *stream[T]) TakeWhile(predicate func(T) bool) Stream[T] {
	return New[T](&takeWhileStage[T]{upstream: s, predicate: predicate})
}

// DropWhile implementation
func (s *stream[T]) DropWhile(predicate func(T) bool) Stream[T] {
	return New[T](&dropWhileStage[T]{upstream: s, predicate: predicate})
}

// Peek implementation
func (s *stream[T]) Peek(action func(T)) Stream[T] {
	return New[T](&peekStage[T]{upstream: s, action: action})
}

// Seq implementation
func (s *stream[T]) Seq() iter.Seq[T] {
	return func(yield func(T) bool) {
		for {
			value, ok := s.Next()
			if !ok || !yield(value) {
				return
			}
		}
	}
}
