package jar

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/dmitrymomot/cookiekit/pkg/logger"
	"github.com/dmitrymomot/cookiekit/pkg/storage"
)

const scanBatchSize = 100

// getter is satisfied by both a client and a transaction.
type getter interface {
	Get(ctx context.Context, key string) *redis.StringCmd
}

// Redis keeps cookie jars in Redis, one JSON document per jar ID.
// Concurrent writers to the same jar are serialized with WATCH/MULTI.
type Redis struct {
	db         redis.UniversalClient
	prefix     string
	ttl        time.Duration
	maxRetries int
	now        func() time.Time
	logger     *slog.Logger
}

func NewRedis(client redis.UniversalClient, opts ...Option) *Redis {
	o := applyOptions(opts)
	return &Redis{
		db:         client,
		prefix:     o.keyPrefix,
		ttl:        o.ttl,
		maxRetries: o.maxRetries,
		now:        o.now,
		logger:     o.logger.With(logger.Component("redis_jar")),
	}
}

func (j *Redis) key(id string) string {
	return j.prefix + id
}

// Cookie returns the live cookies of jar id. A missing jar is empty.
func (j *Redis) Cookie(ctx context.Context, id string) (string, error) {
	entries, err := j.load(ctx, j.db, id)
	if err != nil {
		return "", err
	}
	return render(entries, j.now()), nil
}

// SetCookie applies one Set-Cookie string to jar id.
func (j *Redis) SetCookie(ctx context.Context, id, line string) error {
	key := j.key(id)

	txf := func(tx *redis.Tx) error {
		entries, err := j.load(ctx, tx, id)
		if err != nil {
			return err
		}

		now := j.now()
		entries, err = apply(prune(entries, now), line, now)
		if err != nil {
			return err
		}

		if len(entries) == 0 {
			_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
				pipe.Del(ctx, key)
				return nil
			})
			return err
		}

		data, err := json.Marshal(entries)
		if err != nil {
			return errors.Join(ErrCorruptState, err)
		}
		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, key, data, j.ttl)
			return nil
		})
		return err
	}

	for range j.maxRetries {
		err := j.db.Watch(ctx, txf, key)
		if errors.Is(err, redis.TxFailedErr) {
			continue
		}
		return err
	}
	return ErrConflict
}

// Delete removes jar id entirely.
func (j *Redis) Delete(ctx context.Context, id string) error {
	return j.db.Del(ctx, j.key(id)).Err()
}

// IDs returns the IDs of all stored jars. Keys are listed with SCAN so a
// large keyspace does not block the server.
func (j *Redis) IDs(ctx context.Context) ([]string, error) {
	var (
		ids    []string
		cursor uint64
	)
	for {
		batch, next, err := j.db.Scan(ctx, cursor, j.prefix+"*", scanBatchSize).Result()
		if err != nil {
			return nil, err
		}
		for _, key := range batch {
			ids = append(ids, strings.TrimPrefix(key, j.prefix))
		}
		if next == 0 {
			return ids, nil
		}
		cursor = next
	}
}

// Bind returns a source and sink for jar id. Read errors are logged and
// observed by the source as an empty jar.
func (j *Redis) Bind(ctx context.Context, id string) (storage.Source, storage.Sink) {
	source := func() []string {
		text, err := j.Cookie(ctx, id)
		if err != nil {
			j.logger.WarnContext(ctx, "failed to read cookie jar",
				logger.JarID(id),
				logger.Error(err),
			)
			return nil
		}
		return []string{text}
	}
	sink := func(line string) error {
		return j.SetCookie(ctx, id, line)
	}
	return source, sink
}

// Storage returns a JSON-serialized storage bound to jar id.
func (j *Redis) Storage(ctx context.Context, id string, opts ...storage.Option) *storage.Storage[any] {
	source, sink := j.Bind(ctx, id)
	return storage.NewWithSerializer(source, sink, storage.JSON, opts...)
}

func (j *Redis) load(ctx context.Context, c getter, id string) ([]entry, error) {
	data, err := c.Get(ctx, j.key(id)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var entries []entry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, errors.Join(ErrCorruptState, err)
	}
	return entries, nil
}
