package storage

import "errors"

var (
	ErrNotFound        = errors.New("storage.not_found")
	ErrSerializeFailed = errors.New("storage.serialize_failed")
	ErrParseFailed     = errors.New("storage.parse_failed")
	ErrSinkFailed      = errors.New("storage.sink_failed")
)
