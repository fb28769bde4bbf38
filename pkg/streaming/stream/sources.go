package stream

// FromSlice creates a Stream from a slice. The slice is not copied and must
// not be modified while the stream is in use.
func FromSlice[T any](slice []T) Stream[T] {
	return New[T](&sliceSource[T]{slice: slice})
}

// Of creates a Stream over the given values.
func Of[T any](values ...T) Stream[T] {
	return FromSlice(values)
}

// FromProducer creates a Stream from an existing Producer.
func FromProducer[T any](producer Producer[T]) Stream[T] {
	return New(producer)
}

// FromFunc creates a Stream whose elements are pulled from fn.
func FromFunc[T any](fn func() (T, bool)) Stream[T] {
	return New[T](ProducerFunc[T](fn))
}

// FromChannel creates a Stream from a channel. Each pull blocks until a value
// is received; a closed channel ends the stream.
func FromChannel[T any](ch <-chan T) Stream[T] {
	return New[T](&channelSource[T]{ch: ch})
}

// Generate creates an infinite Stream from a generator function.
func Generate[T any](generator func() T) Stream[T] {
	return New[T](&generatorSource[T]{generator: generator})
}

// Iterate creates an infinite Stream of seed, next(seed), next(next(seed)), ...
func Iterate[T any](seed T, next func(T) T) Stream[T] {
	return New[T](&iterateSource[T]{current: seed, next: next})
}

// Empty creates an empty Stream.
func Empty[T any]() Stream[T] {
	return New[T](emptySource[T]{})
}

// sliceSource implements Producer for slices.
type sliceSource[T any] struct {
	slice []T
	index int
}

func (s *sliceSource[T]) Next() (T, bool) {
	if s.index >= len(s.slice) {
		var zero T
		return zero, false
	}
	value := s.slice[s.index]
	s.index++
	return value, true
}

// channelSource implements Producer for channels.
type channelSource[T any] struct {
	ch <-chan T
}

func (s *channelSource[T]) Next() (T, bool) {
	value, ok := <-s.ch
	return value, ok
}

// generatorSource implements Producer for generator functions.
type generatorSource[T any] struct {
	generator func() T
}

func (s *generatorSource[T]) Next() (T, bool) {
	return s.generator(), true
}

// iterateSource applies next lazily, one step per pull.
type iterateSource[T any] struct {
	current T
	next    func(T) T
	started bool
}

func (s *iterateSource[T]) Next() (T, bool) {
	if s.started {
		s.current = s.next(s.current)
	}
	s.started = true
	return s.current, true
}

// emptySource implements Producer for empty streams.
type emptySource[T any] struct{}

func (emptySource[T]) Next() (T, bool) {
	var zero T
	return zero, false
}
