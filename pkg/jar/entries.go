package jar

import (
	"math"
	"strings"
	"time"

	"github.com/dmitrymomot/cookiekit/pkg/cookie"
)

// maxAgeSeconds is the largest Max-Age representable as a time.Duration.
const maxAgeSeconds = math.MaxInt64 / int64(time.Second)

// entry is one stored cookie. Name and Value are decoded.
type entry struct {
	Name    string    `json:"n"`
	Value   string    `json:"v"`
	Expires time.Time `json:"e,omitzero"`
}

func (e entry) expired(now time.Time) bool {
	return !e.Expires.IsZero() && !e.Expires.After(now)
}

// apply merges one Set-Cookie string into entries the way a browser updates
// document.cookie: an expiring cookie is removed, any other replaces the
// cookie of the same name in place or is appended.
func apply(entries []entry, line string, now time.Time) ([]entry, error) {
	c, ok := cookie.ParseSetCookie(line)
	if !ok {
		return entries, ErrInvalidSetCookie
	}

	i := indexOf(entries, c.Name)

	if c.Expired(now) {
		if i >= 0 {
			entries = append(entries[:i], entries[i+1:]...)
		}
		return entries, nil
	}

	e := entry{Name: c.Name, Value: c.Value}
	switch {
	case c.Attributes.MaxAge != nil:
		// Ages beyond the Duration range never expire in practice.
		if secs := int64(*c.Attributes.MaxAge); secs <= maxAgeSeconds {
			e.Expires = now.Add(time.Duration(secs) * time.Second)
		}
	case !c.Attributes.Expires.IsZero():
		e.Expires = c.Attributes.Expires
	}

	if i >= 0 {
		entries[i] = e
	} else {
		entries = append(entries, e)
	}
	return entries, nil
}

// render returns the document.cookie form of the live entries.
func render(entries []entry, now time.Time) string {
	var b strings.Builder
	for _, e := range entries {
		if e.expired(now) {
			continue
		}
		if b.Len() > 0 {
			b.WriteString("; ")
		}
		b.WriteString(cookie.Encode(e.Name))
		b.WriteByte('=')
		b.WriteString(cookie.Encode(e.Value))
	}
	return b.String()
}

// prune drops expired entries.
func prune(entries []entry, now time.Time) []entry {
	live := entries[:0]
	for _, e := range entries {
		if !e.expired(now) {
			live = append(live, e)
		}
	}
	return live
}

func indexOf(entries []entry, name string) int {
	for i, e := range entries {
		if e.Name == name {
			return i
		}
	}
	return -1
}
