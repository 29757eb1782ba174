package jar

import (
	"log/slog"
	"time"

	"github.com/dmitrymomot/cookiekit/pkg/logger"
)

const (
	DefaultKeyPrefix  = "cookiejar:"
	defaultMaxRetries = 5
)

type Option func(*options)

type options struct {
	now        func() time.Time
	logger     *slog.Logger
	keyPrefix  string
	ttl        time.Duration
	maxRetries int
}

// WithClock sets the time source used to expire cookies.
func WithClock(now func() time.Time) Option {
	return func(o *options) {
		if now != nil {
			o.now = now
		}
	}
}

func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithKeyPrefix sets the Redis key prefix. Ignored by Memory.
func WithKeyPrefix(prefix string) Option {
	return func(o *options) {
		o.keyPrefix = prefix
	}
}

// WithTTL expires the whole Redis jar after ttl without writes. Zero keeps it
// forever. Ignored by Memory.
func WithTTL(ttl time.Duration) Option {
	return func(o *options) {
		if ttl >= 0 {
			o.ttl = ttl
		}
	}
}

// WithMaxRetries bounds optimistic-lock retries of concurrent Redis writes.
func WithMaxRetries(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.maxRetries = n
		}
	}
}

func applyOptions(opts []Option) options {
	o := options{
		now:        time.Now,
		logger:     logger.Discard(),
		keyPrefix:  DefaultKeyPrefix,
		maxRetries: defaultMaxRetries,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	return o
}
