package stream

// MapTo returns a stream of mapper applied to each element of s. The mapper
// runs only when the returned stream is pulled, once per upstream element.
func MapTo[T, R any](s Stream[T], mapper func(T) R) Stream[R] {
	return New[R](&mapStage[T, R]{upstream: s, mapper: mapper})
}

// FlatMapTo replaces each element of s with the elements of mapper(element).
// Inner streams are created and drained one at a time, on demand.
func FlatMapTo[T, R any](s Stream[T], mapper func(T) Stream[R]) Stream[R] {
	return New[R](&flatMapStage[T, R]{upstream: s, mapper: mapper})
}

// Distinct returns a stream that drops elements already seen.
// Seen elements are remembered for the lifetime of the stream.
func Distinct[T comparable](s Stream[T]) Stream[T] {
	return New[T](&distinctStage[T]{upstream: s, seen: make(map[T]struct{})})
}

// filterStage emits upstream elements that satisfy predicate.
type filterStage[T any] struct {
	upstream  Producer[T]
	predicate func(T) bool
}

func (f *filterStage[T]) Next() (T, bool) {
	for {
		value, ok := f.upstream.Next()
		if !ok {
			var zero T
			return zero, false
		}
		if f.predicate(value) {
			return value, true
		}
	}
}

// mapStage transforms elements using a mapper function.
type mapStage[T, R any] struct {
	upstream Producer[T]
	mapper   func(T) R
}

func (m *mapStage[T, R]) Next() (R, bool) {
	value, ok := m.upstream.Next()
	if !ok {
		var zero R
		return zero, false
	}
	return m.mapper(value), true
}

// flatMapStage flattens nested streams.
type flatMapStage[T, R any] struct {
	upstream Producer[T]
	mapper   func(T) Stream[R]
	inner    Stream[R]
}

func (f *flatMapStage[T, R]) Next() (R, bool) {
	for {
		if f.inner != nil {
			if value, ok := f.inner.Next(); ok {
				return value, true
			}
			f.inner = nil
		}

		value, ok := f.upstream.Next()
		if !ok {
			var zero R
			return zero, false
		}
		f.inner = f.mapper(value)
	}
}

// distinctStage removes duplicate elements.
type distinctStage[T comparable] struct {
	upstream Producer[T]
	seen     map[T]struct{}
}

func (d *distinctStage[T]) Next() (T, bool) {
	for {
		value, ok := d.upstream.Next()
		if !ok {
			var zero T
			return zero, false
		}
		if _, dup := d.seen[value]; !dup {
			d.seen[value] = struct{}{}
			return value, true
		}
	}
}

// skipStage drops the first n elements on the first pull.
type skipStage[T any] struct {
	upstream  Producer[T]
	remaining int64
}

func (s *skipStage[T]) Next() (T, bool) {
	for s.remaining > 0 {
		if _, ok := s.upstream.Next(); !ok {
			s.remaining = 0
			var zero T
			return zero, false
		}
		s.remaining--
	}
	return s.upstream.Next()
}

// limitStage stops after maxSize elements without pulling upstream again.
type limitStage[T any] struct {
	upstream  Producer[T]
	remaining int64
}

func (l *limitStage[T]) Next() (T, bool) {
	if l.remaining <= 0 {
		var zero T
		return zero, false
	}
	value, ok := l.upstream.Next()
	if !ok {
		l.remaining = 0
		var zero T
		return zero, false
	}
	l.remaining--
	return value, true
}

// takeWhileStage ends the stream at the first element failing predicate.
// That element is consumed from upstream and discarded.
type takeWhileStage[T any] struct {
	upstream  Producer[T]
	predicate func(T) bool
	done      bool
}

func (t *takeWhileStage[T]) Next() (T, bool) {
	var zero T
	if t.done {
		return zero, false
	}
	value, ok := t.upstream.Next()
	if !ok || !t.predicate(value) {
		t.done = true
		return zero, false
	}
	return value, true
}

// dropWhileStage discards leading elements that satisfy predicate.
type dropWhileStage[T any] struct {
	upstream  Producer[T]
	predicate func(T) bool
	dropped   bool
}

func (d *dropWhileStage[T]) Next() (T, bool) {
	if d.dropped {
		return d.upstream.Next()
	}
	for {
		value, ok := d.upstream.Next()
		if !ok {
			var zero T
			return zero, false
		}
		if !d.predicate(value) {
			d.dropped = true
			return value, true
		}
	}
}

// peekStage performs an action on each element without modifying the stream.
type peekStage[T any] struct {
	upstream Producer[T]
	action   func(T)
}

func (p *peekStage[T]) Next() (T, bool) {
	value, ok := p.upstream.Next()
	if ok {
		p.action(value)
	}
	return value, ok
}
