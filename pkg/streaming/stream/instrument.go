package stream

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/vnykmshr/feather/pkg/metrics"
)

// instrumentStage counts pulls on its upstream without altering them.
// The wrapping handle latches exhaustion, so exhausted moves at most once.
type instrumentStage[T any] struct {
	upstream  Producer[T]
	pulls     prometheus.Counter
	items     prometheus.Counter
	exhausted prometheus.Counter
}

// Instrument implementation
func (s *stream[T]) Instrument(name string, registry *metrics.Registry) Stream[T] {
	if registry == nil {
		registry = metrics.DefaultRegistry
	}
	return New[T](&instrumentStage[T]{
		upstream:  s,
		pulls:     registry.StreamPulls.WithLabelValues(name),
		items:     registry.StreamItems.WithLabelValues(name),
		exhausted: registry.StreamExhausted.WithLabelValues(name),
	})
}

func (i *instrumentStage[T]) Next() (T, bool) {
	i.pulls.Inc()
	value, ok := i.upstream.Next()
	if ok {
		i.items.Inc()
		return value, true
	}
	i.exhausted.Inc()
	var zero T
	return zero, false
}
