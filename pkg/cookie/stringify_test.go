package cookie_test

import (
	"math"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/cookiekit/pkg/cookie"
)

func TestStringify(t *testing.T) {
	t.Parallel()

	expires := time.Date(2030, time.January, 2, 3, 4, 5, 0, time.UTC)

	tests := []struct {
		name   string
		cname  string
		value  string
		opts   []cookie.Option
		expect string
	}{
		{"plain", "aaa", "bbb", nil, "aaa=bbb"},
		{"semicolon in name", "aaa;ccc", "bbb", nil, "aaa%3Bccc=bbb"},
		{"percent in name", "aaa%ccc", "bbb", nil, "aaa%25ccc=bbb"},
		{"escape in name", "aaa%3Bccc", "bbb", nil, "aaa%253Bccc=bbb"},
		{"semicolon in value", "aaa", "bbb;ccc", nil, "aaa=bbb%3Bccc"},
		{"percent in value", "aaa", "bbb%ccc", nil, "aaa=bbb%25ccc"},
		{"escape in value", "aaa", "bbb%3Bccc", nil, "aaa=bbb%253Bccc"},
		{"unparseable date dropped", "aaa", "bbb", []cookie.Option{cookie.WithExpiresAt("hello")}, "aaa=bbb"},
		{"epoch date", "aaa", "bbb", []cookie.Option{cookie.WithExpiresAt(0)}, "aaa=bbb; Expires=Thu, 01 Jan 1970 00:00:00 GMT"},
		{"nil date pointer dropped", "aaa", "bbb", []cookie.Option{cookie.WithExpiresAt((*time.Time)(nil))}, "aaa=bbb"},
		{"unsupported date type dropped", "aaa", "bbb", []cookie.Option{cookie.WithExpiresAt(struct{}{})}, "aaa=bbb"},
		{"date string", "aaa", "bbb", []cookie.Option{cookie.WithExpiresAt("2030-01-02T03:04:05Z")}, "aaa=bbb; Expires=Wed, 02 Jan 2030 03:04:05 GMT"},
		{"zero time dropped", "aaa", "bbb", []cookie.Option{cookie.WithExpires(time.Time{})}, "aaa=bbb"},
		{"year out of range dropped", "aaa", "bbb", []cookie.Option{cookie.WithExpires(time.Date(10000, 1, 1, 0, 0, 0, 0, time.UTC))}, "aaa=bbb"},
		{"local time written as GMT", "aaa", "bbb", []cookie.Option{cookie.WithExpires(expires.In(time.FixedZone("UTC+3", 3*3600)))}, "aaa=bbb; Expires=Wed, 02 Jan 2030 03:04:05 GMT"},
		{"max age zero", "aaa", "bbb", []cookie.Option{cookie.WithMaxAge(0)}, "aaa=bbb; Max-Age=0"},
		{"negative max age", "aaa", "bbb", []cookie.Option{cookie.WithMaxAge(-5)}, "aaa=bbb; Max-Age=-5"},
		{"nan max age dropped", "aaa", "bbb", []cookie.Option{cookie.WithMaxAgeSeconds(math.NaN())}, "aaa=bbb"},
		{"infinite max age dropped", "aaa", "bbb", []cookie.Option{cookie.WithMaxAgeSeconds(math.Inf(1))}, "aaa=bbb"},
		{"fractional max age truncated", "aaa", "bbb", []cookie.Option{cookie.WithMaxAgeSeconds(59.9)}, "aaa=bbb; Max-Age=59"},
		{"negative fraction truncated toward zero", "aaa", "bbb", []cookie.Option{cookie.WithMaxAgeSeconds(-1.9)}, "aaa=bbb; Max-Age=-1"},
		{"huge max age saturates", "aaa", "bbb", []cookie.Option{cookie.WithMaxAgeSeconds(1e30)}, "aaa=bbb; Max-Age=" + strconv.Itoa(math.MaxInt)},
		{"huge negative max age saturates", "aaa", "bbb", []cookie.Option{cookie.WithMaxAgeSeconds(-1e30)}, "aaa=bbb; Max-Age=" + strconv.Itoa(math.MinInt)},
		{"duration max age", "aaa", "bbb", []cookie.Option{cookie.WithMaxAgeDuration(90*time.Minute + 500*time.Millisecond)}, "aaa=bbb; Max-Age=5400"},
		{"expire", "aaa", "", []cookie.Option{cookie.Expire()}, "aaa=; Max-Age=0"},
		{"http only", "aaa", "bbb", []cookie.Option{cookie.WithHTTPOnly(true)}, "aaa=bbb; HttpOnly"},
		{"false flags omitted", "aaa", "bbb", []cookie.Option{cookie.WithSecure(false), cookie.WithHTTPOnly(false), cookie.WithPartitioned(false)}, "aaa=bbb"},
		{"same site verbatim", "aaa", "bbb", []cookie.Option{cookie.WithSameSite("Lax")}, "aaa=bbb; SameSite=Lax"},
		{"attribute values not escaped", "aaa", "bbb", []cookie.Option{cookie.WithPath("/a%b")}, "aaa=bbb; Path=/a%b"},
		{
			name:  "fixed attribute order",
			cname: "aaa",
			value: "bbb",
			opts: []cookie.Option{
				cookie.WithPartitioned(true),
				cookie.WithHTTPOnly(true),
				cookie.WithSecure(true),
				cookie.WithSameSite(cookie.SameSiteNone),
				cookie.WithDomain("example.com"),
				cookie.WithPath("/app"),
				cookie.WithMaxAge(3600),
				cookie.WithExpires(expires),
			},
			expect: "aaa=bbb; Expires=Wed, 02 Jan 2030 03:04:05 GMT; Max-Age=3600; Path=/app; Domain=example.com; SameSite=none; Secure; HttpOnly; Partitioned",
		},
		{"nil option ignored", "aaa", "bbb", []cookie.Option{nil, cookie.WithPath("/")}, "aaa=bbb; Path=/"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expect, cookie.Stringify(tt.cname, tt.value, tt.opts...))
		})
	}
}

func TestStringify_WithAttributes(t *testing.T) {
	t.Parallel()

	maxAge := 10
	base := cookie.Attributes{Path: "/", MaxAge: &maxAge, HTTPOnly: true}

	got := cookie.Stringify("a", "b", cookie.WithAttributes(base), cookie.WithMaxAge(20))
	assert.Equal(t, "a=b; Max-Age=20; Path=/; HttpOnly", got)
	assert.Equal(t, 10, maxAge, "base attributes must not be modified")

	assert.Equal(t, "a=b; Max-Age=10; Path=/; HttpOnly", cookie.StringifyAttributes("a", "b", base))
}

func TestParseSetCookie(t *testing.T) {
	t.Parallel()

	line := "a%3Bb = v%25 ; expires=Wed, 02 Jan 2030 03:04:05 GMT; MAX-AGE=60; path=/x; Domain=example.com; SameSite=Strict; secure; HttpOnly; Partitioned; Unknown=1"

	c, ok := cookie.ParseSetCookie(line)
	require.True(t, ok)
	assert.Equal(t, "a;b", c.Name)
	assert.Equal(t, "v%", c.Value)
	assert.Equal(t, time.Date(2030, time.January, 2, 3, 4, 5, 0, time.UTC), c.Attributes.Expires.UTC())
	require.NotNil(t, c.Attributes.MaxAge)
	assert.Equal(t, 60, *c.Attributes.MaxAge)
	assert.Equal(t, "/x", c.Attributes.Path)
	assert.Equal(t, "example.com", c.Attributes.Domain)
	assert.Equal(t, cookie.SameSite("Strict"), c.Attributes.SameSite)
	assert.True(t, c.Attributes.Secure)
	assert.True(t, c.Attributes.HTTPOnly)
	assert.True(t, c.Attributes.Partitioned)
}

func TestParseSetCookie_RoundTrip(t *testing.T) {
	t.Parallel()

	expires := time.Date(2031, time.March, 4, 5, 6, 7, 0, time.UTC)
	line := cookie.Stringify("name;x", "value%y",
		cookie.WithExpires(expires),
		cookie.WithMaxAge(0),
		cookie.WithPath("/"),
		cookie.WithSameSite(cookie.SameSiteLax),
		cookie.WithSecure(true),
	)

	c, ok := cookie.ParseSetCookie(line)
	require.True(t, ok)
	assert.Equal(t, "name;x", c.Name)
	assert.Equal(t, "value%y", c.Value)
	assert.Equal(t, expires, c.Attributes.Expires.UTC())
	assert.Equal(t, line, cookie.StringifyAttributes(c.Name, c.Value, c.Attributes))
}

func TestParseSetCookie_Invalid(t *testing.T) {
	t.Parallel()

	for _, line := range []string{"", "novalue", "; a=b"} {
		_, ok := cookie.ParseSetCookie(line)
		assert.False(t, ok, line)
	}

	c, ok := cookie.ParseSetCookie("a=b; Max-Age=soon; Expires=tomorrow")
	require.True(t, ok)
	assert.Nil(t, c.Attributes.MaxAge)
	assert.True(t, c.Attributes.Expires.IsZero())
}

func TestSetCookie_Expired(t *testing.T) {
	t.Parallel()

	now := time.Date(2030, time.January, 1, 0, 0, 0, 0, time.UTC)
	parse := func(line string) cookie.SetCookie {
		c, ok := cookie.ParseSetCookie(line)
		require.True(t, ok)
		return c
	}

	assert.True(t, parse("a=; Max-Age=0").Expired(now))
	assert.True(t, parse("a=; Max-Age=-1").Expired(now))
	assert.False(t, parse("a=b; Max-Age=10").Expired(now))
	assert.True(t, parse("a=b; Expires=Thu, 01 Jan 1970 00:00:00 GMT").Expired(now))
	assert.False(t, parse("a=b; Expires=Thu, 01 Jan 2032 00:00:00 GMT").Expired(now))
	assert.False(t, parse("a=b; Expires=Thu, 01 Jan 1970 00:00:00 GMT; Max-Age=10").Expired(now), "max-age takes precedence")
	assert.False(t, parse("a=b").Expired(now))
}
