package utils

import "github.com/google/uuid"

// IDGenerator produces primary keys for new records.
type IDGenerator interface {
	Generate() string
}

// IDFunc adapts a plain function to IDGenerator.
type IDFunc func() string

func (f IDFunc) Generate() string { return f() }

// NewUUIDGenerator returns a generator of time-ordered UUIDv7 strings, so ids
// of rows created later sort after earlier ones.
func NewUUIDGenerator() IDGenerator {
	return IDFunc(newRecordID)
}

func newRecordID() string {
	id, err := uuid.NewV7()
	if err != nil {
		// entropy failure; a random v4 is still unique
		return uuid.NewString()
	}
	return id.String()
}
