package signature

import (
	"crypto/sha256"
	"errors"
	"io"

	"golang.org/x/crypto/hkdf"
)

// DerivedSize is the length of secrets returned by DeriveSecret.
const DerivedSize = 32

// DeriveSecret derives a purpose-bound signing secret from master using
// HKDF-SHA256 with purpose as the info parameter. Equal inputs always yield
// equal secrets; different purposes yield independent ones.
func DeriveSecret[S Secret](master S, purpose string) ([]byte, error) {
	key := []byte(master)
	if len(key) == 0 {
		return nil, ErrEmptySecret
	}

	out := make([]byte, DerivedSize)
	if _, err := io.ReadFull(hkdf.New(sha256.New, key, nil, []byte(purpose)), out); err != nil {
		return nil, errors.Join(ErrDerivationFailed, err)
	}
	return out, nil
}
