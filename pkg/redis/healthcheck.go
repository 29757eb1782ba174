package redis

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// Healthcheck returns a readiness probe for the jar backend: the server must
// answer PING with PONG.
func Healthcheck(client redis.UniversalClient) func(context.Context) error {
	return func(ctx context.Context) error {
		pong, err := client.Ping(ctx).Result()
		switch {
		case err != nil:
			return errors.Join(ErrHealthcheckFailed, err)
		case pong != "PONG":
			return fmt.Errorf("%w: unexpected reply %q", ErrHealthcheckFailed, pong)
		}
		return nil
	}
}
