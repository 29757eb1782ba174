package cookie

import (
	"net/http"
	"strconv"
	"strings"
	"time"
)

// Stringify returns a Set-Cookie header value (or a string assignable to
// document.cookie) for the given name, value and attribute options.
// Only the name and value are escaped; attribute values are written as is.
func Stringify(name, value string, opts ...Option) string {
	return StringifyAttributes(name, value, applyOptions(opts))
}

// StringifyAttributes is Stringify with an explicit Attributes record.
// Attributes are written in a fixed order: Expires, Max-Age, Path, Domain,
// SameSite, Secure, HttpOnly, Partitioned.
func StringifyAttributes(name, value string, attrs Attributes) string {
	var b strings.Builder
	b.WriteString(Encode(name))
	b.WriteByte('=')
	b.WriteString(Encode(value))

	if validExpires(attrs.Expires) {
		b.WriteString("; Expires=")
		b.WriteString(attrs.Expires.UTC().Format(http.TimeFormat))
	}
	if attrs.MaxAge != nil {
		b.WriteString("; Max-Age=")
		b.WriteString(strconv.Itoa(*attrs.MaxAge))
	}
	if attrs.Path != "" {
		b.WriteString("; Path=")
		b.WriteString(attrs.Path)
	}
	if attrs.Domain != "" {
		b.WriteString("; Domain=")
		b.WriteString(attrs.Domain)
	}
	if attrs.SameSite != "" {
		b.WriteString("; SameSite=")
		b.WriteString(string(attrs.SameSite))
	}
	if attrs.Secure {
		b.WriteString("; Secure")
	}
	if attrs.HTTPOnly {
		b.WriteString("; HttpOnly")
	}
	if attrs.Partitioned {
		b.WriteString("; Partitioned")
	}
	return b.String()
}

// validExpires reports whether t can be written as an HTTP date.
// RFC 6265 limits the year to 1601 or later, the format to four digits.
func validExpires(t time.Time) bool {
	if t.IsZero() {
		return false
	}
	year := t.UTC().Year()
	return year >= 1601 && year <= 9999
}

// SetCookie is a parsed Set-Cookie string.
type SetCookie struct {
	Name       string
	Value      string
	Attributes Attributes
}

// Expired reports whether the cookie asks the receiver to drop it at now:
// Max-Age is zero or negative, or Max-Age is absent and Expires is not after now.
func (c SetCookie) Expired(now time.Time) bool {
	if c.Attributes.MaxAge != nil {
		return *c.Attributes.MaxAge <= 0
	}
	return !c.Attributes.Expires.IsZero() && !c.Attributes.Expires.After(now)
}

// ParseSetCookie parses a string produced by Stringify (or any Set-Cookie
// header value). The name and value are trimmed and decoded the same way as
// Parse does. Attribute names are matched case-insensitively and unknown or
// malformed attributes are ignored. The boolean result is false when the
// first segment holds no '='.
func ParseSetCookie(line string) (SetCookie, bool) {
	first, rest, _ := strings.Cut(line, ";")
	name, value, ok := strings.Cut(first, "=")
	if !ok {
		return SetCookie{}, false
	}

	c := SetCookie{
		Name:  Decode(trim(name)),
		Value: Decode(trim(value)),
	}

	for len(rest) > 0 {
		var segment string
		segment, rest, _ = strings.Cut(rest, ";")
		key, val, _ := strings.Cut(segment, "=")
		key, val = trim(key), trim(val)

		switch strings.ToLower(key) {
		case "expires":
			if t, err := http.ParseTime(val); err == nil {
				c.Attributes.Expires = t
			}
		case "max-age":
			if n, err := strconv.Atoi(val); err == nil {
				c.Attributes.MaxAge = intPtr(n)
			}
		case "path":
			c.Attributes.Path = val
		case "domain":
			c.Attributes.Domain = val
		case "samesite":
			c.Attributes.SameSite = SameSite(val)
		case "secure":
			c.Attributes.Secure = true
		case "httponly":
			c.Attributes.HTTPOnly = true
		case "partitioned":
			c.Attributes.Partitioned = true
		}
	}
	return c, true
}
