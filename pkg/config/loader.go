package config

import (
	"errors"
	"fmt"
	"reflect"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// cache holds one parsed copy per configuration type.
type cache struct {
	mu     sync.Mutex
	values map[reflect.Type]any
}

var (
	global = &cache{values: make(map[reflect.Type]any)}

	defaultEnvOnce sync.Once
)

// Load parses environment variables into v. Each configuration type is parsed
// once per process; later calls copy the cached value into v.
// The default .env file in the working directory is read on first use if
// it exists.
//
//	var cfg cookie.Config
//	if err := config.Load(&cfg); err != nil {
//		return err
//	}
func Load[T any](v *T) error {
	if v == nil {
		return ErrNilPointer
	}
	defaultEnvOnce.Do(func() {
		_ = godotenv.Load()
	})

	key := typeOf[T]()

	global.mu.Lock()
	defer global.mu.Unlock()

	if cached, ok := global.values[key]; ok {
		*v = cached.(T)
		return nil
	}
	return global.parse(key, v)
}

// MustLoad is like Load but panics on error.
func MustLoad[T any](v *T) {
	if err := Load(v); err != nil {
		panic(fmt.Sprintf("config: %v", err))
	}
}

// Reload parses v from the current environment even if its type is cached,
// and replaces the cached copy.
func Reload[T any](v *T) error {
	if v == nil {
		return ErrNilPointer
	}

	global.mu.Lock()
	defer global.mu.Unlock()

	return global.parse(typeOf[T](), v)
}

// LoadEnv reads the given .env files into the process environment, or the
// default .env when called without arguments. Later files override earlier
// ones and both override variables already set. The cache is reset so that
// subsequent Load calls observe the new values.
func LoadEnv(files ...string) error {
	if err := godotenv.Overload(files...); err != nil {
		return errors.Join(ErrLoadingEnvFile, err)
	}
	ResetCache()
	return nil
}

// MustLoadEnv is like LoadEnv but panics on error.
func MustLoadEnv(files ...string) {
	if err := LoadEnv(files...); err != nil {
		panic(fmt.Sprintf("config: %v", err))
	}
}

// ResetCache forgets every parsed configuration.
func ResetCache() {
	global.mu.Lock()
	defer global.mu.Unlock()

	clear(global.values)
}

func (c *cache) parse(key reflect.Type, v any) error {
	if err := env.Parse(v); err != nil {
		return errors.Join(ErrParsingConfig, err)
	}
	c.values[key] = reflect.ValueOf(v).Elem().Interface()
	return nil
}

func typeOf[T any]() reflect.Type {
	return reflect.TypeFor[T]()
}
