// Package jar provides cookie stores that behave like a browser's
// document.cookie: reading yields the live "name=value" pairs, writing a
// Set-Cookie string updates or removes the cookie with the same name.
//
// Memory keeps a single jar in process memory. Redis keeps many jars keyed
// by ID and is safe to share between processes:
//
//	client, _ := redis.Connect(ctx, cfg)
//	jars := jar.NewRedis(client, jar.WithTTL(24*time.Hour))
//	id := jar.NewID()
//	store := jars.Storage(ctx, id)
//	_ = store.Set("prefs", map[string]any{"theme": "dark"})
//
// Both jars plug into pkg/storage through their Source and Sink.
package jar
