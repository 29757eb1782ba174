// Package cookie reads, writes and signs cookie strings.
//
// It works on plain text: the value of a Cookie request header (or the
// content of document.cookie) on the way in, and a Set-Cookie header value on
// the way out. It does no I/O and keeps no state, so every function is safe
// for concurrent use.
//
// # Reading
//
// Parse, Names and Get accept the raw cookie text as one string or as several
// header lines, which are joined with ';'. Segments without '=' are skipped,
// names and values are trimmed of spaces, tabs, CR and LF, and repeated names
// resolve to the last value (Parse) or the first position (Names).
//
//	record := cookie.Parse(r.Header.Values("Cookie")...)
//	id, ok := cookie.Get("user_id", "user_id=42; session=abc")
//
// # Writing
//
// Stringify escapes ';' and '%' in the name and value and appends the
// attributes in a fixed order: Expires, Max-Age, Path, Domain, SameSite,
// Secure, HttpOnly, Partitioned. Invalid dates and non-finite ages are left out.
//
//	w.Header().Add("Set-Cookie", cookie.Stringify("theme", "dark",
//	    cookie.WithPath("/"),
//	    cookie.WithMaxAge(3600),
//	    cookie.WithHTTPOnly(true),
//	))
//
// # Signing
//
// A signed value is "<value>.<base64 HMAC-SHA256>". GetSigned splits at the
// last '.', verifies the signature and reports a missing cookie, a forged
// signature and an unsigned value the same way: absent.
//
//	line, err := cookie.StringifySigned("session", "user-42", secret)
//	id, ok := cookie.GetSigned("session", secret, r.Header.Values("Cookie")...)
//
// # Configuration
//
// Config holds default attributes and signing secrets with env tags, to be
// loaded with github.com/caarlos0/env (see pkg/config).
package cookie
