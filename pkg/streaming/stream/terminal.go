package stream

// Addable is satisfied by element types with a + operator whose zero value
// is the additive identity.
type Addable interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr |
		~float32 | ~float64 |
		~complex64 | ~complex128 |
		~string
}

// Fold performs a left fold of s: combiner(...combiner(seed, e0)..., en).
func Fold[T, R any](s Stream[T], seed R, combiner func(R, T) R) R {
	result := seed
	for {
		value, ok := s.Next()
		if !ok {
			return result
		}
		result = combiner(result, value)
	}
}

// Sum adds all elements of s. An empty stream sums to the zero value.
func Sum[T Addable](s Stream[T]) T {
	var zero T
	return Fold(s, zero, func(acc, x T) T { return acc + x })
}

// Collect appends every element of s, in order, to the container returned
// by supplier.
//
//	set := stream.Collect(s, func() map[string]int { return map[string]int{} },
//		func(m map[string]int, word string) map[string]int { m[word]++; return m })
func Collect[T, C any](s Stream[T], supplier func() C, accumulator func(C, T) C) C {
	return Fold(s, supplier(), accumulator)
}

// ForEach implementation
func (s *stream[T]) ForEach(action func(T)) {
	for {
		value, ok := s.Next()
		if !ok {
			return
		}
		action(value)
	}
}

// Reduce implementation
func (s *stream[T]) Reduce(identity T, accumulator func(T, T) T) T {
	return Fold[T, T](s, identity, accumulator)
}

// ToSlice implementation
func (s *stream[T]) ToSlice() []T {
	result := make([]T, 0)
	for {
		value, ok := s.Next()
		if !ok {
			return result
		}
		result = append(result, value)
	}
}

// Count implementation
func (s *stream[T]) Count() int64 {
	var count int64
	for {
		if _, ok := s.Next(); !ok {
			return count
		}
		count++
	}
}

// AnyMatch implementation
func (s *stream[T]) AnyMatch(predicate func(T) bool) bool {
	for {
		value, ok := s.Next()
		if !ok {
			return false
		}
		if predicate(value) {
			return true
		}
	}
}

// AllMatch implementation
func (s *stream[T]) AllMatch(predicate func(T) bool) bool {
	for {
		value, ok := s.Next()
		if !ok {
			return true
		}
		if !predicate(value) {
			return false
		}
	}
}

// NoneMatch implementation
func (s *stream[T]) NoneMatch(predicate func(T) bool) bool {
	return !s.AnyMatch(predicate)
}

// FindFirst implementation
func (s *stream[T]) FindFirst() (T, bool) {
	return s.Next()
}

// Min implementation
func (s *stream[T]) Min(compare func(a, b T) int) (T, bool) {
	return s.best(func(candidate, current T) bool { return compare(candidate, current) < 0 })
}

// Max implementation
func (s *stream[T]) Max(compare func(a, b T) int) (T, bool) {
	return s.best(func(candidate, current T) bool { return compare(candidate, current) > 0 })
}

// best returns the element no later element beats; ties keep the earliest.
func (s *stream[T]) best(better func(candidate, current T) bool) (T, bool) {
	current, found := s.Next()
	if !found {
		return current, false
	}
	for {
		value, ok := s.Next()
		if !ok {
			return current, true
		}
		if better(value, current) {
			current = value
		}
	}
}
