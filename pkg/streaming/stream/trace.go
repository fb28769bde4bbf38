package stream

import (
	"github.com/rs/zerolog"
)

// traceStage logs each pull on its upstream at debug level.
type traceStage[T any] struct {
	upstream Producer[T]
	logger   zerolog.Logger
	index    int64
}

// Trace implementation
func (s *stream[T]) Trace(logger zerolog.Logger, name string) Stream[T] {
	return New[T](&traceStage[T]{
		upstream: s,
		logger:   logger.With().Str("stage", name).Logger(),
	})
}

func (t *traceStage[T]) Next() (T, bool) {
	value, ok := t.upstream.Next()
	if !ok {
		t.logger.Debug().Int64("pulled", t.index).Msg("stream exhausted")
		var zero T
		return zero, false
	}
	t.logger.Debug().Int64("index", t.index).Interface("value", value).Msg("pulled")
	t.index++
	return value, true
}
