package cookie

import "errors"

var (
	ErrNoSecret        = errors.New("cookie.no_secret")
	ErrInvalidSameSite = errors.New("cookie.invalid_same_site")
)
