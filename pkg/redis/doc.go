// Package redis connects to the Redis server that backs persistent cookie
// jars (see pkg/jar).
//
// Config is read from the environment with pkg/config:
//
//	var cfg redis.Config
//	config.MustLoad(&cfg)
//
//	client, err := redis.Connect(ctx, cfg)
//	if err != nil {
//		return err
//	}
//	defer client.Close()
//
//	jars := jar.NewRedis(client,
//		jar.WithKeyPrefix(cfg.JarKeyPrefix),
//		jar.WithTTL(cfg.JarTTL),
//	)
//
// Connect retries the initial ping; Healthcheck returns a probe suitable for
// readiness checks.
package redis
