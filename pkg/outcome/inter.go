package outcome

import (
	"time"

	"github.com/google/uuid"
)

type ValueProvider[T any] interface {
	// Value returns the successful result value
	Value() T
	// CreatedAt time creation (UTC)
	CreatedAt() time.Time
}

// WithErr defines an interface for types that can return a value or an error
type WithErr[T any] interface {
	ValueProvider[T]
	// Err returns the error if operation failed
	Err() error
	// IsOk returns true if the operation was successful
	IsOk() bool
}

// Traceable identifies values that can be followed through a pipeline.
type Traceable interface {
	Id() uuid.UUID
}
