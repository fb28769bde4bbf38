/*
Package stream provides lazy, pull-based pipelines over ordered sequences.

Core Concepts:

Every source and every stage implements one contract, Producer:

	type Producer[T any] interface {
		Next() (T, bool)
	}

Next returns the next element and true, or the zero value and false once the
sequence is exhausted. Stages wrap exactly one upstream producer and pull it
only when they are pulled themselves, so a pipeline evaluates one element at a
time with no intermediate storage. Streams are:
  - Lazy: nothing is pulled until Next or a terminal operation is called
  - Single-pass: pulling advances the underlying cursor; a stream cannot be restarted
  - Synchronous: no goroutines are started, every pull runs on the caller's goroutine

Basic Usage:

	evens := stream.FromSlice([]int{1, 2, 3, 4, 5, 6}).
		Filter(func(x int) bool { return x%2 == 0 })

	evens.Next() // 2, true
	evens.Next() // 4, true
	evens.Next() // 6, true
	evens.Next() // 0, false
	evens.Next() // 0, false (exhaustion is permanent)

Stream Creation:

	stream.FromSlice([]string{"a", "b", "c"}) // no copy; keep the slice unchanged
	stream.Of(1, 2, 3)
	stream.FromChannel(ch)                    // each pull blocks on receive
	stream.FromFunc(func() (int, bool) { ... })
	stream.FromProducer(myProducer)
	stream.Generate(rand.Int)                 // infinite
	stream.Iterate(1, func(x int) int { return x * 2 }) // infinite: 1, 2, 4, ...
	stream.Empty[int]()

Intermediate Operations:

Intermediate operations return a new Stream that owns the receiver's producer
chain. Keep using only the newest handle; pulling an older handle as well
would interleave consumption of the shared upstream.

	s.Filter(func(x int) bool { return x > 0 })
	s.Map(func(x int) int { return x * 2 })
	stream.MapTo(s, strconv.Itoa)          // type-changing map
	s.FlatMap(func(x int) stream.Stream[int] { return stream.Of(x, x) })
	stream.FlatMapTo(s, func(line string) stream.Stream[string] { ... })
	stream.Distinct(s)
	s.Skip(5)
	s.Limit(10)                            // never pulls past the 10th element
	s.TakeWhile(func(x int) bool { return x < 100 })
	s.DropWhile(func(x int) bool { return x < 0 })
	s.Peek(func(x int) { log.Printf("Processing: %d", x) })
	s.Instrument("orders", registry)       // Prometheus counters
	s.Trace(logger, "orders")              // zerolog debug events

Map pulls upstream exactly once per pull. Filter pulls upstream until a
match is found or upstream is exhausted, evaluating the predicate once per
upstream element.

Terminal Operations:

	s.ForEach(func(x int) { fmt.Println(x) })
	s.Reduce(0, func(acc, x int) int { return acc + x })
	stream.Fold(s, "", func(acc string, x int) string { return acc + strconv.Itoa(x) })
	stream.Sum(s)                          // zero value on an empty stream
	s.ToSlice()
	stream.Collect(s, newSet, addToSet)    // any container shape
	s.Count()
	s.AnyMatch(isEven)                     // stops at the first match
	s.AllMatch(isEven)                     // stops at the first mismatch
	s.NoneMatch(isEven)
	s.FindFirst()
	s.Min(cmp.Compare[int])
	s.Max(cmp.Compare[int])

	for x := range s.Seq() {               // breaking the loop stops pulling
		...
	}

AnyMatch on an empty stream is false; AllMatch and NoneMatch are true.

Reuse:

A stream that has been consumed is permanently exhausted. Calling a terminal
operation on it again is allowed and behaves as on an empty stream: ToSlice
returns an empty slice, Count returns 0, AnyMatch returns false and AllMatch
returns true. Short-circuiting terminals leave the remaining elements in
place, so a later operation continues where they stopped.

Callback Failures:

The pipeline itself never fails; it reports only a value or exhaustion.
Predicates, mappers and reducers are expected to be pure. If one panics, the
panic propagates out of the Next or terminal call that triggered it, without
recovery or wrapping. The stream is left at an unspecified position and
further use of it is not defined.

Thread Safety:

Streams are not safe for concurrent use. To consume the same data from
several goroutines, build one stream per goroutine over the shared slice:

	go process(stream.FromSlice(data).Filter(predicate1))
	go process(stream.FromSlice(data).Filter(predicate2))
*/
package stream
