package utils

import "github.com/google/uuid"

// IDFunc adapts a plain function to the Generate method the services expect.
type IDFunc func() string

func (f IDFunc) Generate() string { return f() }

// NewTimeOrderedID returns a UUIDv7 string, or a random v4 when no v7 can
// be produced.
func NewTimeOrderedID() string {
	if id, err := uuid.NewV7(); err == nil {
		return id.String()
	}
	return uuid.NewString()
}
