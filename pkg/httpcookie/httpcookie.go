package httpcookie

import (
	"context"
	"errors"
	"net/http"

	"github.com/dmitrymomot/cookiekit/pkg/storage"
)

var ErrNoStorage = errors.New("httpcookie.no_storage")

type contextKey struct{}

// Source reads the Cookie header lines of r on every call.
func Source(r *http.Request) storage.Source {
	return func() []string {
		return r.Header.Values("Cookie")
	}
}

// Sink appends a Set-Cookie header to w. Headers written after the response
// status has been sent are silently dropped by net/http.
func Sink(w http.ResponseWriter) storage.Sink {
	return func(setCookie string) error {
		w.Header().Add("Set-Cookie", setCookie)
		return nil
	}
}

// New returns a string storage reading the request cookies and writing
// response cookies.
func New(w http.ResponseWriter, r *http.Request, opts ...storage.Option) *storage.Storage[string] {
	return storage.New(Source(r), Sink(w), opts...)
}

// Middleware places a per-request storage in the request context.
func Middleware(opts ...storage.Option) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			s := New(w, r, opts...)
			next.ServeHTTP(w, r.WithContext(WithContext(r.Context(), s)))
		})
	}
}

func WithContext(ctx context.Context, s *storage.Storage[string]) context.Context {
	return context.WithValue(ctx, contextKey{}, s)
}

// FromContext returns the storage placed by Middleware or ErrNoStorage.
func FromContext(ctx context.Context) (*storage.Storage[string], error) {
	if ctx == nil {
		return nil, ErrNoStorage
	}
	s, ok := ctx.Value(contextKey{}).(*storage.Storage[string])
	if !ok || s == nil {
		return nil, ErrNoStorage
	}
	return s, nil
}
