// Package logger builds slog loggers for cookiekit tools and exposes the
// attribute helpers used across the library.
//
// New creates a *slog.Logger configured with Option functions: output format,
// level, static attributes and context extractors that copy request-scoped
// values (for example a request id) into every record.
//
//	log := logger.New(
//	    logger.WithEnvironment("production", "cookiesign"),
//	    logger.WithContextValue("request_id", requestIDKey),
//	)
//	log.Debug("cookie written", logger.CookieName("session"))
//
// Attribute helpers such as CookieName, Component and Error keep key names
// consistent. Error returns an empty attribute for a nil error, so it can be
// passed without a nil check. Cookie values and secrets are never logged.
package logger
