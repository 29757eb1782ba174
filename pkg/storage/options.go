package storage

import (
	"log/slog"

	"github.com/dmitrymomot/cookiekit/pkg/cookie"
	"github.com/dmitrymomot/cookiekit/pkg/logger"
	"github.com/dmitrymomot/cookiekit/pkg/signature"
)

type Option func(*options)

type options struct {
	logger   *slog.Logger
	defaults []cookie.Option
	signer   *signature.Signer
}

// WithLogger sets the logger used for debug records of writes and rejected
// signed reads. Cookie values and secrets are never logged.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithDefaults sets cookie options applied before the per-call options of
// Set, SetSigned, Delete and Clear.
func WithDefaults(opts ...cookie.Option) Option {
	return func(o *options) {
		o.defaults = append(o.defaults, opts...)
	}
}

// WithSigner makes GetSigned and SetSigned reuse HMAC states cached by
// signer. Signatures are identical to the ones made without it.
func WithSigner(signer *signature.Signer) Option {
	return func(o *options) {
		o.signer = signer
	}
}

func applyOptions(opts []Option) options {
	o := options{
		logger: logger.Discard(),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	return o
}
