package jar

import "errors"

var (
	ErrInvalidSetCookie = errors.New("jar.invalid_set_cookie")
	ErrCorruptState     = errors.New("jar.corrupt_state")
	ErrConflict         = errors.New("jar.conflict")
)
