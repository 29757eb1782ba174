package cookie

import (
	"strings"

	"github.com/dmitrymomot/cookiekit/pkg/signature"
)

// Separator divides the value from its signature in a signed cookie value.
// The base64 alphabet of signatures never contains it.
const Separator = '.'

// SignValue returns value followed by Separator and the base64 HMAC-SHA256
// signature of value. Reserved characters are not escaped here; Stringify
// does that when the signed value is written into a cookie.
func SignValue[S signature.Secret](value string, secret S) (string, error) {
	sig, err := signature.Sign(value, secret)
	if err != nil {
		return "", err
	}
	return value + string(Separator) + sig, nil
}

// UnsignValue splits signed at the last Separator and returns the value part
// if its signature verifies under secret. Values without a separator, with a
// malformed signature or signed with another secret are reported as absent.
func UnsignValue[S signature.Secret](signed string, secret S) (string, bool) {
	value, sig, ok := SplitSigned(signed)
	if !ok || !signature.Verify(value, secret, sig) {
		return "", false
	}
	return value, true
}

// SplitSigned splits signed at the last Separator without verifying it.
func SplitSigned(signed string) (value, sig string, ok bool) {
	i := strings.LastIndexByte(signed, Separator)
	if i == -1 {
		return "", "", false
	}
	return signed[:i], signed[i+1:], true
}

// StringifySigned signs value and returns the Set-Cookie string for it.
func StringifySigned[S signature.Secret](name, value string, secret S, opts ...Option) (string, error) {
	signed, err := SignValue(value, secret)
	if err != nil {
		return "", err
	}
	return Stringify(name, signed, opts...), nil
}

// GetSigned looks up the cookie named name and returns its value if the
// signature verifies. Missing cookies and forged values are both absent.
func GetSigned[S signature.Secret](name string, secret S, lines ...string) (string, bool) {
	signed, ok := Get(name, lines...)
	if !ok {
		return "", false
	}
	return UnsignValue(signed, secret)
}
