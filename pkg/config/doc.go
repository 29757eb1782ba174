// Package config loads typed configuration from the environment.
//
// Structs are described with `env` tags understood by
// github.com/caarlos0/env/v11. Optional .env files are read with
// github.com/joho/godotenv. Each struct type is parsed once and cached:
//
//	config.MustLoadEnv("./.env.local")
//
//	var cfg cookie.Config
//	config.MustLoad(&cfg)
//
// Tests that change the environment call ResetCache or Reload.
package config
