package redis

import "time"

// Config describes the connection used by the Redis cookie jar.
type Config struct {
	ConnectionURL  string        `env:"REDIS_URL" envDefault:"redis://localhost:6379/0"` // redis://:password@host:6379/0
	RetryAttempts  int           `env:"REDIS_RETRY_ATTEMPTS" envDefault:"3"`
	RetryInterval  time.Duration `env:"REDIS_RETRY_INTERVAL" envDefault:"5s"`
	ConnectTimeout time.Duration `env:"REDIS_CONNECT_TIMEOUT" envDefault:"30s"`
	JarKeyPrefix   string        `env:"REDIS_JAR_KEY_PREFIX" envDefault:"cookiejar:"`
	JarTTL         time.Duration `env:"REDIS_JAR_TTL" envDefault:"0s"` // zero keeps jars forever
}
