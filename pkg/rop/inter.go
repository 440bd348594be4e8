package rop

import "time"

type ResultProvider[T any] interface {
	// Data returns the successful value
	Data() T
	// CreatedAt time creation (UTC)
	CreatedAt() time.Time
}

// WithErrors defines an interface for types that carry either data or a list of errors
type WithErrors[T any] interface {
	ResultProvider[T]
	// Errors returns the failure's errors, empty on success
	Errors() []error
	// Err returns the joined errors if the operation failed
	Err() error
	// IsSuccess returns true if the operation was successful
	IsSuccess() bool
}

var _ WithErrors[int] = Result[int]{}
