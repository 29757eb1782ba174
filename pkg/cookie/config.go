package cookie

import (
	"fmt"
	"strings"
)

// Config holds the default cookie attributes and signing secrets.
type Config struct {
	Secrets     string `env:"COOKIE_SECRETS" envDefault:""`
	Path        string `env:"COOKIE_PATH" envDefault:"/"`
	Domain      string `env:"COOKIE_DOMAIN" envDefault:""`
	MaxAge      int    `env:"COOKIE_MAX_AGE" envDefault:"0"`
	SameSite    string `env:"COOKIE_SAME_SITE" envDefault:"lax"`
	Secure      bool   `env:"COOKIE_SECURE" envDefault:"false"`
	HTTPOnly    bool   `env:"COOKIE_HTTP_ONLY" envDefault:"true"`
	Partitioned bool   `env:"COOKIE_PARTITIONED" envDefault:"false"`
}

// DefaultConfig returns default cookie configuration
func DefaultConfig() Config {
	return Config{
		Path:     "/",
		SameSite: string(SameSiteLax),
		HTTPOnly: true,
	}
}

// SecretList splits the comma separated secrets. The first one signs, all of
// them may be tried when verifying during a key rotation.
func (c Config) SecretList() []string {
	if c.Secrets == "" {
		return nil
	}

	parts := strings.Split(c.Secrets, ",")
	secrets := make([]string, 0, len(parts))

	for _, s := range parts {
		s = strings.TrimSpace(s)
		if s != "" {
			secrets = append(secrets, s)
		}
	}

	return secrets
}

// PrimarySecret returns the secret used for signing.
func (c Config) PrimarySecret() (string, error) {
	secrets := c.SecretList()
	if len(secrets) == 0 {
		return "", ErrNoSecret
	}
	return secrets[0], nil
}

// Options converts the non-zero fields into cookie options.
// MaxAge is applied only when positive so a zero default leaves a session cookie.
func (c Config) Options() ([]Option, error) {
	opts := make([]Option, 0, 7)

	if c.Path != "" {
		opts = append(opts, WithPath(c.Path))
	}
	if c.Domain != "" {
		opts = append(opts, WithDomain(c.Domain))
	}
	if c.MaxAge > 0 {
		opts = append(opts, WithMaxAge(c.MaxAge))
	}
	if c.SameSite != "" {
		sameSite, err := ParseSameSite(c.SameSite)
		if err != nil {
			return nil, err
		}
		opts = append(opts, WithSameSite(sameSite))
	}
	if c.Secure {
		opts = append(opts, WithSecure(true))
	}
	if c.HTTPOnly {
		opts = append(opts, WithHTTPOnly(true))
	}
	if c.Partitioned {
		opts = append(opts, WithPartitioned(true))
	}

	return opts, nil
}

// ParseSameSite accepts strict, lax or none in any letter case.
func ParseSameSite(s string) (SameSite, error) {
	switch v := SameSite(strings.ToLower(strings.TrimSpace(s))); v {
	case SameSiteStrict, SameSiteLax, SameSiteNone:
		return v, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidSameSite, s)
	}
}
