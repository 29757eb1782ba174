package signature

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"hash"
	"io"
)

// Secret is a signing key given either as text or as raw bytes.
type Secret interface {
	~string | ~[]byte
}

// Sign returns the base64 encoded HMAC-SHA256 of value under secret.
func Sign[S Secret](value string, secret S) (string, error) {
	key := []byte(secret)
	if len(key) == 0 {
		return "", ErrEmptySecret
	}
	return encode(sum(hmac.New(sha256.New, key), value)), nil
}

// Verify reports whether sig is the signature of value under secret.
// Any malformed input yields false.
func Verify[S Secret](value string, secret S, sig string) bool {
	key := []byte(secret)
	if len(key) == 0 {
		return false
	}
	return verify(hmac.New(sha256.New, key), value, sig)
}

func sum(mac hash.Hash, value string) []byte {
	_, _ = io.WriteString(mac, value)
	return mac.Sum(nil)
}

func encode(raw []byte) string {
	return base64.StdEncoding.EncodeToString(raw)
}

func verify(mac hash.Hash, value, sig string) bool {
	got, err := base64.StdEncoding.DecodeString(sig)
	if err != nil || len(got) != sha256.Size {
		return false
	}
	// Constant-time comparison
	return hmac.Equal(got, sum(mac, value))
}
