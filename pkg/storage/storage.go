package storage

import (
	"errors"
	"iter"
	"log/slog"
	"slices"

	"github.com/dmitrymomot/cookiekit/pkg/cookie"
	"github.com/dmitrymomot/cookiekit/pkg/logger"
	"github.com/dmitrymomot/cookiekit/pkg/signature"
)

// Source returns the current raw cookie text: a document.cookie-like string
// or the lines of a Cookie header. It is called on every operation.
type Source func() []string

// Sink applies one Set-Cookie string to the underlying cookie store.
type Sink func(setCookie string) error

// Serializer converts between stored cookie text and typed values.
type Serializer[T any] interface {
	Parse(text string) (T, error)
	Stringify(value T) (string, error)
}

// Storage reads and writes cookies through a Source and a Sink.
// Nothing is cached: each call parses the text returned by the source, so
// changes made to the underlying store between calls are always observed.
type Storage[T any] struct {
	source     Source
	sink       Sink
	serializer Serializer[T] // nil stores values as is
	logger     *slog.Logger
	defaults   []cookie.Option
	signer     *signature.Signer // nil signs with the package functions
}

// New creates a storage of plain string values.
func New(source Source, sink Sink, opts ...Option) *Storage[string] {
	return newStorage[string](source, sink, nil, opts)
}

// NewWithSerializer creates a storage whose values pass through serializer.
// It panics if serializer is nil.
func NewWithSerializer[T any](source Source, sink Sink, serializer Serializer[T], opts ...Option) *Storage[T] {
	if serializer == nil {
		panic("storage: serializer must not be nil")
	}
	return newStorage(source, sink, serializer, opts)
}

func newStorage[T any](source Source, sink Sink, serializer Serializer[T], opts []Option) *Storage[T] {
	o := applyOptions(opts)
	return &Storage[T]{
		source:     source,
		sink:       sink,
		serializer: serializer,
		logger:     o.logger.With(logger.Component("cookie_storage")),
		defaults:   o.defaults,
		signer:     o.signer,
	}
}

// All returns every cookie as a name-value map.
func (s *Storage[T]) All() (map[string]T, error) {
	record := cookie.Parse(s.lines()...)

	if s.serializer == nil {
		return any(record).(map[string]T), nil
	}

	values := make(map[string]T, len(record))
	for name, text := range record {
		v, err := s.parse(text)
		if err != nil {
			return nil, err
		}
		values[name] = v
	}
	return values, nil
}

// Names returns the names of all cookies in order of first appearance.
func (s *Storage[T]) Names() []string {
	return cookie.Names(s.lines()...)
}

// Get returns the value of the named cookie or ErrNotFound.
func (s *Storage[T]) Get(name string) (T, error) {
	text, ok := cookie.Get(name, s.lines()...)
	if !ok {
		var zero T
		return zero, ErrNotFound
	}
	return s.parse(text)
}

// Has reports whether the named cookie exists.
func (s *Storage[T]) Has(name string) bool {
	return cookie.Has(name, s.lines()...)
}

// Set writes the cookie with the storage defaults followed by opts.
func (s *Storage[T]) Set(name string, value T, opts ...cookie.Option) error {
	text, err := s.stringify(value)
	if err != nil {
		return err
	}
	return s.write(name, cookie.Stringify(name, text, s.options(opts)...))
}

// GetSigned returns the value of a signed cookie. A missing cookie and a
// value whose signature does not verify both yield ErrNotFound.
func (s *Storage[T]) GetSigned(name string, secret []byte) (T, error) {
	signed, ok := cookie.Get(name, s.lines()...)
	if ok {
		signed, ok = s.unsign(signed, secret)
	}
	if !ok {
		s.logger.Debug("signed cookie unavailable", logger.CookieName(name))
		var zero T
		return zero, ErrNotFound
	}
	return s.parse(signed)
}

// SetSigned writes the cookie with its value signed by secret.
func (s *Storage[T]) SetSigned(name string, value T, secret []byte, opts ...cookie.Option) error {
	text, err := s.stringify(value)
	if err != nil {
		return err
	}
	signed, err := s.sign(text, secret)
	if err != nil {
		return err
	}
	return s.write(name, cookie.Stringify(name, signed, s.options(opts)...))
}

// Delete writes an empty value with Max-Age=0. Pass the Path and Domain the
// cookie was set with, if they differ from the storage defaults.
func (s *Storage[T]) Delete(name string, opts ...cookie.Option) error {
	opts = append(slices.Clip(s.options(opts)), cookie.Expire())
	return s.write(name, cookie.Stringify(name, "", opts...))
}

// Clear deletes every cookie returned by the source.
func (s *Storage[T]) Clear(opts ...cookie.Option) error {
	names := s.Names()

	var errs []error
	for _, name := range names {
		if err := s.Delete(name, opts...); err != nil {
			errs = append(errs, err)
		}
	}
	if len(errs) > 0 {
		s.logger.Warn("clear incomplete", logger.CookieCount(len(names)), logger.Errors(errs...))
		return errors.Join(errs...)
	}
	s.logger.Debug("cookies cleared", logger.CookieCount(len(names)))
	return nil
}

// Entries iterates over the cookies in order of first appearance, each with
// its last value. Every range statement reads the source again. Values the
// serializer cannot parse are skipped.
func (s *Storage[T]) Entries() iter.Seq2[string, T] {
	return func(yield func(string, T) bool) {
		lines := s.lines()
		record := cookie.Parse(lines...)

		for _, name := range cookie.Names(lines...) {
			v, err := s.parse(record[name])
			if err != nil {
				s.logger.Warn("skipping unparseable cookie", logger.CookieName(name), logger.Error(err))
				continue
			}
			if !yield(name, v) {
				return
			}
		}
	}
}

func (s *Storage[T]) lines() []string {
	if s.source == nil {
		return nil
	}
	return s.source()
}

func (s *Storage[T]) options(opts []cookie.Option) []cookie.Option {
	if len(s.defaults) == 0 {
		return opts
	}
	return append(slices.Clone(s.defaults), opts...)
}

func (s *Storage[T]) write(name, line string) error {
	if s.sink == nil {
		return ErrSinkFailed
	}
	if err := s.sink(line); err != nil {
		s.logger.Warn("cookie write failed", logger.CookieName(name), logger.Error(err))
		return errors.Join(ErrSinkFailed, err)
	}
	s.logger.Debug("cookie written", logger.CookieName(name))
	return nil
}

func (s *Storage[T]) sign(value string, secret []byte) (string, error) {
	if s.signer == nil {
		return cookie.SignValue(value, secret)
	}
	sig, err := s.signer.Sign(value, secret)
	if err != nil {
		return "", err
	}
	return value + string(cookie.Separator) + sig, nil
}

func (s *Storage[T]) unsign(signed string, secret []byte) (string, bool) {
	if s.signer == nil {
		return cookie.UnsignValue(signed, secret)
	}
	value, sig, ok := cookie.SplitSigned(signed)
	if !ok || !s.signer.Verify(value, secret, sig) {
		return "", false
	}
	return value, true
}

func (s *Storage[T]) parse(text string) (T, error) {
	if s.serializer == nil {
		return any(text).(T), nil
	}
	v, err := s.serializer.Parse(text)
	if err != nil {
		var zero T
		return zero, errors.Join(ErrParseFailed, err)
	}
	return v, nil
}

func (s *Storage[T]) stringify(value T) (string, error) {
	if s.serializer == nil {
		return any(value).(string), nil
	}
	text, err := s.serializer.Stringify(value)
	if err != nil {
		return "", errors.Join(ErrSerializeFailed, err)
	}
	return text, nil
}
