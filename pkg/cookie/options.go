package cookie

import (
	"math"
	"time"
)

// SameSite controls whether a cookie is sent with cross-site requests.
// The value is written verbatim into the SameSite attribute.
type SameSite string

const (
	SameSiteStrict SameSite = "strict"
	SameSiteLax    SameSite = "lax"
	SameSiteNone   SameSite = "none"
)

// Attributes describes the non-value metadata of a Set-Cookie string.
// Zero values mean "not set".
type Attributes struct {
	// Expires is the absolute expiry instant.
	Expires time.Time
	// MaxAge is the number of seconds until the cookie expires. A zero or
	// negative number expires the cookie immediately. When both MaxAge and
	// Expires are set, MaxAge has precedence.
	MaxAge      *int
	Path        string
	Domain      string
	SameSite    SameSite
	Secure      bool
	HTTPOnly    bool
	Partitioned bool
}

type Option func(*Attributes)

// WithAttributes replaces the attributes collected so far with attrs.
func WithAttributes(attrs Attributes) Option {
	return func(a *Attributes) {
		*a = attrs
		if attrs.MaxAge != nil {
			a.MaxAge = intPtr(*attrs.MaxAge)
		}
	}
}

func WithExpires(t time.Time) Option {
	return func(a *Attributes) {
		a.Expires = t
	}
}

// WithExpiresAt accepts a date-like value: time.Time, *time.Time, Unix
// milliseconds as an integer, or a string in RFC 1123, RFC 3339 or
// "2006-01-02" layout. Values that do not resolve to a date are ignored.
func WithExpiresAt(v any) Option {
	return func(a *Attributes) {
		if t, ok := resolveDate(v); ok {
			a.Expires = t
		}
	}
}

func WithMaxAge(seconds int) Option {
	return func(a *Attributes) {
		a.MaxAge = intPtr(seconds)
	}
}

// WithMaxAgeSeconds truncates seconds toward zero and saturates at the int
// range. NaN and infinities are ignored.
func WithMaxAgeSeconds(seconds float64) Option {
	return func(a *Attributes) {
		if math.IsNaN(seconds) || math.IsInf(seconds, 0) {
			return
		}
		a.MaxAge = intPtr(truncInt(seconds))
	}
}

// truncInt converts f to int, saturating instead of wrapping.
// float64(math.MaxInt) rounds up to the first value outside the range.
func truncInt(f float64) int {
	switch t := math.Trunc(f); {
	case t >= float64(math.MaxInt):
		return math.MaxInt
	case t <= float64(math.MinInt):
		return math.MinInt
	default:
		return int(t)
	}
}

func WithMaxAgeDuration(d time.Duration) Option {
	return func(a *Attributes) {
		a.MaxAge = intPtr(int(d / time.Second))
	}
}

func WithPath(path string) Option {
	return func(a *Attributes) {
		a.Path = path
	}
}

func WithDomain(domain string) Option {
	return func(a *Attributes) {
		a.Domain = domain
	}
}

func WithSameSite(sameSite SameSite) Option {
	return func(a *Attributes) {
		a.SameSite = sameSite
	}
}

func WithSecure(secure bool) Option {
	return func(a *Attributes) {
		a.Secure = secure
	}
}

func WithHTTPOnly(httpOnly bool) Option {
	return func(a *Attributes) {
		a.HTTPOnly = httpOnly
	}
}

// WithPartitioned stores the cookie in partitioned storage (CHIPS). Browsers
// require Secure to be set as well.
func WithPartitioned(partitioned bool) Option {
	return func(a *Attributes) {
		a.Partitioned = partitioned
	}
}

// Expire sets Max-Age to zero so the cookie is removed by the receiver.
func Expire() Option {
	return WithMaxAge(0)
}

// applyOptions builds a fresh Attributes value from opts.
func applyOptions(opts []Option) Attributes {
	var a Attributes
	for _, opt := range opts {
		if opt != nil {
			opt(&a)
		}
	}
	return a
}

func intPtr(v int) *int {
	return &v
}

var dateLayouts = []string{
	time.RFC1123,
	time.RFC1123Z,
	time.RFC3339Nano,
	time.RFC850,
	time.ANSIC,
	"2006-01-02",
}

func resolveDate(v any) (time.Time, bool) {
	switch d := v.(type) {
	case time.Time:
		return d, !d.IsZero()
	case *time.Time:
		if d == nil {
			return time.Time{}, false
		}
		return *d, !d.IsZero()
	case int:
		return time.UnixMilli(int64(d)), true
	case int64:
		return time.UnixMilli(d), true
	case float64:
		if math.IsNaN(d) || math.IsInf(d, 0) {
			return time.Time{}, false
		}
		return time.UnixMilli(int64(d)), true
	case string:
		for _, layout := range dateLayouts {
			if t, err := time.Parse(layout, d); err == nil {
				return t, true
			}
		}
	}
	return time.Time{}, false
}
