package config

import "errors"

var (
	ErrParsingConfig  = errors.New("config.parse_failed")
	ErrLoadingEnvFile = errors.New("config.env_file")
	ErrNilPointer     = errors.New("config.nil_pointer")
)
