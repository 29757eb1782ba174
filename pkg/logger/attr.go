package logger

import (
	"log/slog"
	"strconv"
)

// Error creates an attribute for a single error under the key "error".
// If err is nil, it returns an empty Attr.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// Errors groups multiple non-nil errors under the key "errors".
func Errors(errs ...error) slog.Attr {
	as := make([]slog.Attr, 0, len(errs))
	for i, err := range errs {
		if err != nil {
			as = append(as, slog.Any(strconv.Itoa(i), err))
		}
	}
	if len(as) == 0 {
		return slog.Attr{}
	}
	return slog.Attr{Key: "errors", Value: slog.GroupValue(as...)}
}

// Component records the component name under the key "component".
func Component(name string) slog.Attr {
	return slog.String("component", name)
}

// CookieName records a cookie name under the key "cookie". Cookie values are
// never logged.
func CookieName(name string) slog.Attr {
	return slog.String("cookie", name)
}

// CookieCount records how many cookies an operation touched.
func CookieCount(n int) slog.Attr {
	return slog.Int("cookie_count", n)
}

// JarID records a cookie jar identifier under the key "jar_id".
func JarID(id string) slog.Attr {
	if id == "" {
		return slog.Attr{}
	}
	return slog.String("jar_id", id)
}
