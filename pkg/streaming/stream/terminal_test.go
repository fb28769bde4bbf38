package stream

import (
	"cmp"
	"strings"
	"testing"

	"github.com/vnykmshr/feather/internal/testutil"
)

func TestForEach(t *testing.T) {
	var collected []int
	stream := FromSlice([]int{1, 2, 3, 4, 5})

	stream.ForEach(func(x int) {
		collected = append(collected, x*2)
	})
	testutil.AssertSliceEqual(t, collected, []int{2, 4, 6, 8, 10})
}

func TestReduce(t *testing.T) {
	stream := FromSlice([]int{2, 3, 4})

	product := stream.Reduce(1, func(acc, x int) int {
		return acc * x
	})
	testutil.AssertEqual(t, product, 24)
}

func TestReduceIsLeftFold(t *testing.T) {
	// Subtraction is not associative: ((10-1)-2)-3 = 4.
	got := FromSlice([]int{1, 2, 3}).Reduce(10, func(acc, x int) int { return acc - x })
	testutil.AssertEqual(t, got, 4)

	trace := Fold(FromSlice([]string{"a", "b", "c"}), "seed", func(acc, x string) string {
		return "(" + acc + "+" + x + ")"
	})
	testutil.AssertEqual(t, trace, "(((seed+a)+b)+c)")
}

func TestFoldChangesType(t *testing.T) {
	totalLength := Fold(FromSlice([]string{"go", "lang"}), 0, func(acc int, s string) int {
		return acc + len(s)
	})
	testutil.AssertEqual(t, totalLength, 6)

	testutil.AssertEqual(t, Fold(Empty[string](), 42, func(acc int, _ string) int { return acc + 1 }), 42)
}

func TestSum(t *testing.T) {
	testutil.AssertEqual(t, Sum(FromSlice([]int{1, 2, 3})), 6)
	testutil.AssertEqual(t, Sum(FromSlice([]int{})), 0)
	testutil.AssertEqual(t, Sum(FromSlice([]float64{0.5, 0.25})), 0.75)
	testutil.AssertEqual(t, Sum(FromSlice([]string{"foo", "bar"})), "foobar")
	testutil.AssertEqual(t, Sum(Empty[string]()), "")

	type cents int64
	testutil.AssertEqual(t, Sum(Of[cents](150, 250)), cents(400))
}

func TestToSlice(t *testing.T) {
	testutil.AssertSliceEqual(t, FromSlice([]int{1, 2, 3}).ToSlice(), []int{1, 2, 3})

	empty := Empty[int]().ToSlice()
	if empty == nil {
		t.Fatal("ToSlice should return a non-nil empty slice")
	}
	testutil.AssertEqual(t, len(empty), 0)
}

func TestCollect(t *testing.T) {
	stream := FromSlice([]string{"hello", "world", "hello"})

	counts := Collect(stream,
		func() map[string]int { return make(map[string]int) },
		func(acc map[string]int, word string) map[string]int {
			acc[word]++
			return acc
		},
	)
	testutil.AssertEqual(t, len(counts), 2)
	testutil.AssertEqual(t, counts["hello"], 2)
	testutil.AssertEqual(t, counts["world"], 1)
}

func TestCollectIntoBuilder(t *testing.T) {
	builder := Collect(FromSlice([]string{"a", "b", "c"}),
		func() *strings.Builder { return &strings.Builder{} },
		func(b *strings.Builder, s string) *strings.Builder {
			b.WriteString(s)
			return b
		},
	)
	testutil.AssertEqual(t, builder.String(), "abc")
}

func TestCollectSuppliesFreshContainer(t *testing.T) {
	supplied := 0
	supplier := func() []int {
		supplied++
		return make([]int, 0)
	}
	appendTo := func(acc []int, x int) []int { return append(acc, x) }

	first := Collect(FromSlice([]int{1, 2}), supplier, appendTo)
	second := Collect(FromSlice([]int{3}), supplier, appendTo)

	testutil.AssertEqual(t, supplied, 2)
	testutil.AssertSliceEqual(t, first, []int{1, 2})
	testutil.AssertSliceEqual(t, second, []int{3})
}

func TestCount(t *testing.T) {
	testutil.AssertEqual(t, FromSlice([]string{"a", "b", "c", "d"}).Count(), int64(4))
	testutil.AssertEqual(t, FromSlice([]int{2, 4, 6, 8, 10}).Count(), int64(5))
	testutil.AssertEqual(t, Empty[int]().Count(), int64(0))
}

func TestAnyMatch(t *testing.T) {
	isEven := func(x int) bool { return x%2 == 0 }

	testutil.AssertEqual(t, FromSlice([]int{1, 3, 5, 7, 9}).AnyMatch(isEven), false)
	testutil.AssertEqual(t, FromSlice([]int{1, 3, 6, 7, 9}).AnyMatch(isEven), true)
	testutil.AssertEqual(t, Empty[int]().AnyMatch(isEven), false)
}

func TestAnyMatchShortCircuits(t *testing.T) {
	tracker := testutil.NewCallbackTracker()
	producer := testutil.NewCountingProducer(1, 3, 6, 7, 9)

	found := FromProducer[int](producer).AnyMatch(testutil.TrackPredicate(tracker, func(x int) bool {
		return x%2 == 0
	}))

	testutil.AssertEqual(t, found, true)
	tracker.AssertCallCount(t, 3)
	testutil.AssertEqual(t, producer.Pulls(), 3)
}

func TestAllMatch(t *testing.T) {
	isOdd := func(x int) bool { return x%2 == 1 }

	testutil.AssertEqual(t, FromSlice([]int{1, 3, 5, 7, 9}).AllMatch(isOdd), true)
	testutil.AssertEqual(t, FromSlice([]int{1, 3, 6, 7, 9}).AllMatch(isOdd), false)
	testutil.AssertEqual(t, Empty[int]().AllMatch(isOdd), true)
}

func TestAllMatchShortCircuits(t *testing.T) {
	tracker := testutil.NewCallbackTracker()

	all := FromSlice([]int{1, 3, 6, 7, 9}).AllMatch(testutil.TrackPredicate(tracker, func(x int) bool {
		return x%2 == 1
	}))

	testutil.AssertEqual(t, all, false)
	tracker.AssertCallCount(t, 3)
}

func TestMatchOnInfiniteStream(t *testing.T) {
	naturals := Iterate(1, func(x int) int { return x + 1 })
	testutil.AssertEqual(t, naturals.AnyMatch(func(x int) bool { return x > 1000 }), true)

	naturals = Iterate(1, func(x int) int { return x + 1 })
	testutil.AssertEqual(t, naturals.AllMatch(func(x int) bool { return x < 10 }), false)
}

func TestNoneMatch(t *testing.T) {
	isEven := func(x int) bool { return x%2 == 0 }

	testutil.AssertEqual(t, FromSlice([]int{1, 3, 5, 7}).NoneMatch(isEven), true)
	testutil.AssertEqual(t, FromSlice([]int{1, 2}).NoneMatch(isEven), false)
	testutil.AssertEqual(t, Empty[int]().NoneMatch(isEven), true)
}

func TestFindFirst(t *testing.T) {
	// Test with non-empty stream
	value, found := FromSlice([]int{10, 20, 30}).FindFirst()
	testutil.AssertEqual(t, found, true)
	testutil.AssertEqual(t, value, 10)

	// Test with empty stream
	value, found = Empty[int]().FindFirst()
	testutil.AssertEqual(t, found, false)
	testutil.AssertEqual(t, value, 0)
}

func TestMinMax(t *testing.T) {
	minVal, found := FromSlice([]int{5, 2, 8, 1, 9, 3}).Min(cmp.Compare[int])
	testutil.AssertEqual(t, found, true)
	testutil.AssertEqual(t, minVal, 1)

	maxVal, found := FromSlice([]int{5, 2, 8, 1, 9, 3}).Max(cmp.Compare[int])
	testutil.AssertEqual(t, found, true)
	testutil.AssertEqual(t, maxVal, 9)

	_, found = Empty[int]().Min(cmp.Compare[int])
	testutil.AssertEqual(t, found, false)
}

func TestMinMaxKeepsEarliestTie(t *testing.T) {
	type item struct {
		key  int
		name string
	}
	byKey := func(a, b item) int { return cmp.Compare(a.key, b.key) }
	items := []item{{2, "first-two"}, {1, "first-one"}, {2, "second-two"}, {1, "second-one"}}

	minVal, _ := FromSlice(items).Min(byKey)
	testutil.AssertEqual(t, minVal.name, "first-one")

	maxVal, _ := FromSlice(items).Max(byKey)
	testutil.AssertEqual(t, maxVal.name, "first-two")
}
