package cookie_test

import (
	"testing"

	"github.com/caarlos0/env/v11"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/cookiekit/pkg/cookie"
)

func TestConfig_FromEnv(t *testing.T) {
	t.Setenv("COOKIE_SECRETS", " first-secret , ,second-secret ")
	t.Setenv("COOKIE_PATH", "/app")
	t.Setenv("COOKIE_DOMAIN", "example.com")
	t.Setenv("COOKIE_MAX_AGE", "3600")
	t.Setenv("COOKIE_SAME_SITE", "Strict")
	t.Setenv("COOKIE_SECURE", "true")
	t.Setenv("COOKIE_HTTP_ONLY", "false")
	t.Setenv("COOKIE_PARTITIONED", "true")

	var cfg cookie.Config
	require.NoError(t, env.Parse(&cfg))

	assert.Equal(t, []string{"first-secret", "second-secret"}, cfg.SecretList())
	primary, err := cfg.PrimarySecret()
	require.NoError(t, err)
	assert.Equal(t, "first-secret", primary)

	opts, err := cfg.Options()
	require.NoError(t, err)
	assert.Equal(t,
		"a=b; Max-Age=3600; Path=/app; Domain=example.com; SameSite=strict; Secure; Partitioned",
		cookie.Stringify("a", "b", opts...),
	)
}

func TestDefaultConfig(t *testing.T) {
	t.Parallel()

	cfg := cookie.DefaultConfig()

	_, err := cfg.PrimarySecret()
	require.ErrorIs(t, err, cookie.ErrNoSecret)
	assert.Nil(t, cfg.SecretList())

	opts, err := cfg.Options()
	require.NoError(t, err)
	assert.Equal(t, "a=b; Path=/; SameSite=lax; HttpOnly", cookie.Stringify("a", "b", opts...))
}

func TestConfig_InvalidSameSite(t *testing.T) {
	t.Parallel()

	cfg := cookie.DefaultConfig()
	cfg.SameSite = "sometimes"

	_, err := cfg.Options()
	require.ErrorIs(t, err, cookie.ErrInvalidSameSite)
}

func TestParseSameSite(t *testing.T) {
	t.Parallel()

	for in, want := range map[string]cookie.SameSite{
		"strict": cookie.SameSiteStrict,
		" LAX ":  cookie.SameSiteLax,
		"None":   cookie.SameSiteNone,
	} {
		got, err := cookie.ParseSameSite(in)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}

	_, err := cookie.ParseSameSite("")
	require.ErrorIs(t, err, cookie.ErrInvalidSameSite)
}
