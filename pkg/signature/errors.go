package signature

import "errors"

var (
	ErrEmptySecret      = errors.New("signature.empty_secret")
	ErrDerivationFailed = errors.New("signature.derivation_failed")
)
