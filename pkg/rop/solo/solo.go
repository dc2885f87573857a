package solo

import (
	"github.com/ib-77/ropseq/pkg/rop"
)

func Map[In any, Out any](input rop.Result[In],
	onSuccess func(r In) Out) rop.Result[Out] {

	if input.IsSuccess() {
		return rop.Success(onSuccess(input.Result()))
	}
	return rop.FailFrom[In, Out](input)
}

func Switch[In any, Out any](input rop.Result[In],
	onSuccess func(r In) rop.Result[Out]) rop.Result[Out] {

	if input.IsSuccess() {
		return onSuccess(input.Result())
	}
	return rop.FailFrom[In, Out](input)
}

// OkOrElse unwraps a successful option. onNone is called only when the
// option is empty.
func OkOrElse[T any](input rop.Result[rop.Option[T]],
	onNone func() error) rop.Result[T] {

	if input.IsFailure() {
		return rop.FailFrom[rop.Option[T], T](input)
	}

	if v, ok := input.Result().Value(); ok {
		return rop.Success(v)
	}
	return rop.Fail[T](onNone())
}

func Tee[T any](input rop.Result[T], onSuccess func(r T)) rop.Result[T] {
	if input.IsSuccess() {
		onSuccess(input.Result())
	}
	return input
}

func TeeErr[T any](input rop.Result[T], onError func(err error)) rop.Result[T] {
	if input.IsFailure() {
		onError(input.Err())
	}
	return input
}

func MapErr[T any](input rop.Result[T], onError func(err error) error) rop.Result[T] {
	if input.IsFailure() {
		return rop.Fail[T](onError(input.Err()))
	}
	return input
}
