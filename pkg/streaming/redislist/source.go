package redislist

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	fctx "github.com/vnykmshr/feather/pkg/common/context"
	ferrors "github.com/vnykmshr/feather/pkg/common/errors"
	"github.com/vnykmshr/feather/pkg/common/validation"
	"github.com/vnykmshr/feather/pkg/streaming/stream"
)

// DefaultPageSize is the number of list elements fetched per LRANGE when Config.PageSize is zero.
const DefaultPageSize = 100

const moduleName = "redislist"

// Config holds configuration options for a Source.
type Config struct {
	// Client is the Redis client the list is read through. Required; a typed
	// nil such as (*redis.Client)(nil) is rejected.
	Client redis.UniversalClient

	// Key names the Redis list. Required.
	Key string

	// PageSize is the number of elements requested per round trip.
	// Default: DefaultPageSize
	PageSize int

	// FetchTimeout bounds every LRANGE issued on behalf of a pull.
	// Set to 0 to rely on the context passed to New alone.
	FetchTimeout time.Duration

	// Logger receives a debug event per fetched page and an error event
	// when a fetch fails. Default: zerolog.Nop()
	Logger *zerolog.Logger
}

func (c Config) validate() error {
	if err := validation.ValidateNotNil(moduleName, "Client", c.Client); err != nil {
		return err
	}
	if err := validation.ValidateNotEmpty(moduleName, "Key", c.Key); err != nil {
		return err
	}
	if err := validation.ValidateNonNegative(moduleName, "PageSize", c.PageSize); err != nil {
		return err
	}
	return validation.ValidateNonNegative(moduleName, "FetchTimeout", c.FetchTimeout)
}

// Source yields the elements of a Redis list in list order, head first.
//
// Elements are read one page at a time, so a pull issues at most one round
// trip. A Source is a stream.Producer and follows the producer contract: a
// failed fetch reads as exhaustion and is reported afterwards by Err, the way
// bufio.Scanner reports read errors. A Source is not safe for concurrent use.
//
// Pages are addressed by offset, so a Source does not read a snapshot. Elements
// pushed to the head of the list or removed from it between two fetches shift
// the next window, and an element can then be delivered twice or skipped.
// Appends to the tail are picked up if the Source has not yet seen a short page.
type Source struct {
	ctx          context.Context
	client       redis.UniversalClient
	key          string
	pageSize     int64
	fetchTimeout time.Duration
	logger       zerolog.Logger

	page     []string
	pos      int
	offset   int64
	lastPage bool
	done     bool
	err      error
}

// New creates a Source reading cfg.Key through cfg.Client.
//
// ctx bounds every fetch the Source makes for its whole lifetime; canceling
// it ends the stream with a source failure at the next fetch.
func New(ctx context.Context, cfg Config) (*Source, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	pageSize := cfg.PageSize
	if pageSize == 0 {
		pageSize = DefaultPageSize
	}

	logger := zerolog.Nop()
	if cfg.Logger != nil {
		logger = *cfg.Logger
	}

	return &Source{
		ctx:          ctx,
		client:       cfg.Client,
		key:          cfg.Key,
		pageSize:     int64(pageSize),
		fetchTimeout: cfg.FetchTimeout,
		logger:       logger.With().Str("component", moduleName).Str("key", cfg.Key).Logger(),
	}, nil
}

// Next returns the next list element, fetching a new page when the current one is used up.
func (s *Source) Next() (string, bool) {
	if s.pos == len(s.page) {
		if s.done || s.lastPage || !s.fetch() {
			s.done = true
			return "", false
		}
	}

	value := s.page[s.pos]
	s.pos++
	return value, true
}

// fetch loads the page starting at the current offset and reports whether it holds any element.
func (s *Source) fetch() bool {
	ctx, cancel := fctx.WithTimeoutOrCancel(s.ctx, s.fetchTimeout)
	defer cancel()

	stop := s.offset + s.pageSize - 1
	values, err := s.client.LRange(ctx, s.key, s.offset, stop).Result()
	if err != nil {
		opErr := ferrors.NewOperationError(moduleName, "LRANGE", err).
			WithContext(fmt.Sprintf("key=%s offset=%d", s.key, s.offset))
		s.err = fmt.Errorf("%w: %w", ferrors.ErrSourceFailed, opErr)

		event := s.logger.Error().Err(err).Int64("offset", s.offset)
		switch {
		case fctx.IsCanceled(s.ctx):
			event.Msg("list fetch canceled")
		case fctx.IsTimedOut(ctx.Err()):
			event.Dur("timeout", s.fetchTimeout).Msg("list fetch timed out")
		default:
			event.Msg("list fetch failed")
		}
		return false
	}

	s.logger.Debug().
		Int64("offset", s.offset).
		Int("count", len(values)).
		Msg("fetched page")

	s.page = values
	s.pos = 0
	s.offset += int64(len(values))
	s.lastPage = int64(len(values)) < s.pageSize
	return len(values) > 0
}

// Err returns the first fetch failure, wrapped with errors.ErrSourceFailed.
// It returns nil while the Source is live and after a clean exhaustion.
func (s *Source) Err() error {
	return s.err
}

// Stream wraps the Source in a stream.Stream.
func (s *Source) Stream() stream.Stream[string] {
	return stream.FromProducer[string](s)
}
