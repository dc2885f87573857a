package rop

import (
	"github.com/google/uuid"
)

// Unit is the success payload of results that only signal completion.
type Unit = struct{}

type Result[T any] struct {
	id        uuid.UUID
	result    T
	err       error
	isSuccess bool
}

func Success[T any](r T) Result[T] {
	return Result[T]{
		result:    r,
		isSuccess: true,
		id:        uuid.New(),
	}
}

// Fail builds a failed result. The variant is kept by a flag, so Fail(nil) is
// still a failure.
func Fail[T any](err error) Result[T] {
	return Result[T]{
		err:       err,
		isSuccess: false,
		id:        uuid.New(),
	}
}

// Done is Success(Unit{}).
func Done() Result[Unit] {
	return Success(Unit{})
}

// FromPair converts the (value, error) idiom into a Result.
func FromPair[T any](r T, err error) Result[T] {
	if err != nil {
		return Fail[T](err)
	}
	return Success(r)
}

// FailFrom moves a failure to another value type keeping its error and id.
func FailFrom[In, Out any](from Result[In]) Result[Out] {
	return Result[Out]{
		err:       from.err,
		isSuccess: false,
		id:        from.id,
	}
}

func (r Result[T]) Result() T {
	return r.result
}

func (r Result[T]) Err() error {
	return r.err
}

func (r Result[T]) IsSuccess() bool {
	return r.isSuccess
}

func (r Result[T]) IsFailure() bool {
	return !r.isSuccess
}

// Get returns the value and error in the (value, error) idiom.
func (r Result[T]) Get() (T, error) {
	return r.result, r.err
}

func (r Result[T]) Id() uuid.UUID {
	return r.id
}
