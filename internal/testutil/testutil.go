package testutil

import (
	"context"
	"reflect"
	"testing"
	"time"
)

// TestTimeout is the default timeout for tests
const TestTimeout = 5 * time.Second

// Puller matches anything exposing a single raw pull, such as stream.Stream.
type Puller[T any] interface {
	Next() (T, bool)
}

// WithTimeout creates a context with the default test timeout
func WithTimeout(t *testing.T) (context.Context, context.CancelFunc) {
	t.Helper()
	return context.WithTimeout(context.Background(), TestTimeout)
}

// AssertNoError fails the test if err is not nil
func AssertNoError(t *testing.T, err error) {
	t.Helper()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

// AssertError fails the test if err is nil
func AssertError(t *testing.T, err error) {
	t.Helper()
	if err == nil {
		t.Fatal("expected error, got nil")
	}
}

// AssertEqual fails the test if got != want
func AssertEqual[T comparable](t *testing.T, got, want T) {
	t.Helper()
	if got != want {
		t.Fatalf("got %v, want %v", got, want)
	}
}

// AssertSliceEqual fails the test unless got and want hold the same elements in order.
// A nil slice and an empty slice compare equal.
func AssertSliceEqual[T any](t *testing.T, got, want []T) {
	t.Helper()
	if len(got) == 0 && len(want) == 0 {
		return
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

// AssertNext pulls once from p and fails unless it yields want.
func AssertNext[T comparable](t *testing.T, p Puller[T], want T) {
	t.Helper()
	got, ok := p.Next()
	if !ok {
		t.Fatalf("got exhausted, want %v", want)
	}
	if got != want {
		t.Fatalf("got %v, want %v", got, want)
	}
}

// AssertExhausted pulls once from p and fails if it yields a value.
func AssertExhausted[T any](t *testing.T, p Puller[T]) {
	t.Helper()
	if got, ok := p.Next(); ok {
		t.Fatalf("got %v, want exhausted", got)
	}
}
