package rop

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// ErrEmptyFailure stands in for the missing cause when a failure is built
// without any errors.
var ErrEmptyFailure = errors.New("failure without errors")

type Result[T any] struct {
	id        uuid.UUID
	createdAt time.Time
	data      T
	errs      []error
	isSuccess bool
}

func Success[T any](data T) Result[T] {
	return Result[T]{
		data:      data,
		errs:      []error{},
		isSuccess: true,
		createdAt: time.Now().UTC(),
		id:        uuid.New(),
	}
}

// Failure builds a failed result. An *ErrorList is flattened into its
// members, any other error is kept whole, nil errors are dropped.
func Failure[T any](errs ...error) Result[T] {
	list := make([]error, 0, len(errs))
	for _, err := range errs {
		list = append(list, GetErrors(err)...)
	}
	if len(list) == 0 {
		list = append(list, ErrEmptyFailure)
	}

	return Result[T]{
		errs:      list,
		isSuccess: false,
		createdAt: time.Now().UTC(),
		id:        uuid.New(),
	}
}

func Fail[T any](err error) Result[T] {
	return Failure[T](err)
}

// FailFrom re-types a failure, keeping its errors, id and creation time.
// Called on a success (or a zero Result) it yields ErrEmptyFailure.
func FailFrom[In, Out any](from Result[In]) Result[Out] {
	errs := from.Errors()
	if len(errs) == 0 {
		errs = []error{ErrEmptyFailure}
	}
	return Result[Out]{
		errs:      errs,
		isSuccess: false,
		createdAt: from.createdAt,
		id:        from.id,
	}
}

func (r Result[T]) Data() T {
	return r.data
}

// Errors returns a copy of the failure's errors. It is empty on success.
func (r Result[T]) Errors() []error {
	out := make([]error, len(r.errs))
	copy(out, r.errs)
	return out
}

// Err joins the failure's errors into one. It is nil on success.
func (r Result[T]) Err() error {
	if r.isSuccess || len(r.errs) == 0 {
		return nil
	}
	if len(r.errs) == 1 {
		return r.errs[0]
	}
	return errors.Join(r.errs...)
}

func (r Result[T]) Unwrap() (T, error) {
	return r.data, r.Err()
}

func (r Result[T]) IsSuccess() bool {
	return r.isSuccess
}

func (r Result[T]) IsFailure() bool {
	return !r.isSuccess
}

func (r Result[T]) CreatedAt() time.Time {
	return r.createdAt
}

func (r Result[T]) Id() uuid.UUID {
	return r.id
}
