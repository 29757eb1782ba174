// Package signature computes and verifies HMAC-SHA256 signatures of cookie
// values.
//
// Signatures are encoded with the standard base64 alphabet including '='
// padding, so they never contain the '.' separator used by signed cookies.
// Secrets may be given as strings or byte slices.
//
// # Usage
//
//	import "github.com/dmitrymomot/cookiekit/pkg/signature"
//
//	sig, err := signature.Sign("user-42", secret)
//	if err != nil {
//	    // only an empty secret fails
//	}
//	ok := signature.Verify("user-42", secret, sig)
//
// # Error Handling
//
// Sign returns ErrEmptySecret when the secret cannot be used as an HMAC key.
// Verify never returns an error: malformed base64, a wrong secret or a
// corrupted signature all report false, so callers cannot tell the failure
// modes apart.
//
// # Key Caching
//
// The package level functions derive a fresh HMAC state on every call.
// Signer keeps a bounded LRU of prepared HMAC states per secret and produces
// identical results; use it on hot paths that sign with a few fixed secrets.
//
// # Key Derivation
//
// DeriveSecret turns one master secret into independent purpose-bound
// signing secrets using HKDF-SHA256.
package signature
