// Package storage exposes cookies as a key/value store on top of a
// caller-supplied Source (returns the current raw cookie text) and Sink
// (applies one Set-Cookie string).
//
// The storage keeps no state of its own: every call re-reads the source, so
// it always reflects the live cookie store, whether that is an HTTP request,
// an in-memory jar or a Redis-backed jar (see pkg/jar and pkg/httpcookie).
//
// # Usage
//
//	s := storage.New(
//	    func() []string { return r.Header.Values("Cookie") },
//	    func(line string) error { w.Header().Add("Set-Cookie", line); return nil },
//	    storage.WithDefaults(cookie.WithPath("/"), cookie.WithHTTPOnly(true)),
//	)
//
//	_ = s.Set("theme", "dark", cookie.WithMaxAge(86400))
//	theme, err := s.Get("theme")
//	for name, value := range s.Entries() {
//	    // ...
//	}
//
// Signed values use the HMAC scheme of pkg/cookie:
//
//	_ = s.SetSigned("session", "user-42", secret)
//	id, err := s.GetSigned("session", secret) // ErrNotFound when missing or forged
//
// WithSigner shares a signature.Signer between storages so HMAC states are
// reused across requests.
//
// # Serializers
//
// New stores strings unchanged. NewWithSerializer runs values through a
// Serializer: JSON keeps plain strings readable and encodes everything else,
// JSONOf[T] is a strict typed variant.
//
// # Error Handling
//
// Missing cookies and signed cookies that fail verification are reported as
// ErrNotFound. Serializer and sink failures wrap ErrParseFailed,
// ErrSerializeFailed and ErrSinkFailed; use errors.Is.
package storage
