package jar

import "github.com/google/uuid"

// NewID returns a random jar ID.
func NewID() string {
	return uuid.NewString()
}
