package seq

import (
	"iter"

	"github.com/ib-77/ropseq/pkg/rop"
	"github.com/ib-77/ropseq/pkg/rop/solo"
)

// ErrNoneFactory can be passed to InnerOkOrElse to fail with rop.ErrNone.
func ErrNoneFactory() error {
	return rop.ErrNone
}

// Errors yields the errors of failed items only.
func Errors[T any](input iter.Seq[rop.Result[T]]) iter.Seq[error] {
	return func(yield func(error) bool) {
		for in := range input {
			if in.IsFailure() && !yield(in.Err()) {
				return
			}
		}
	}
}

// Oks yields the values of successful items only.
func Oks[T any](input iter.Seq[rop.Result[T]]) iter.Seq[T] {
	return func(yield func(T) bool) {
		for in := range input {
			if in.IsSuccess() && !yield(in.Result()) {
				return
			}
		}
	}
}

// OnOk calls onSuccess for every successful value right before handing the
// item to the consumer.
func OnOk[T any](input iter.Seq[rop.Result[T]],
	onSuccess func(r T)) iter.Seq[rop.Result[T]] {

	return func(yield func(rop.Result[T]) bool) {
		for in := range input {
			if !yield(solo.Tee(in, onSuccess)) {
				return
			}
		}
	}
}

// MapErr replaces the error of every failure with onError(err).
func MapErr[T any](input iter.Seq[rop.Result[T]],
	onError func(err error) error) iter.Seq[rop.Result[T]] {

	return func(yield func(rop.Result[T]) bool) {
		for in := range input {
			if !yield(solo.MapErr(in, onError)) {
				return
			}
		}
	}
}

// WhileOk calls onSuccess for every successful value and stops at the first
// failure, which is returned.
func WhileOk[T any](input iter.Seq[rop.Result[T]],
	onSuccess func(r T)) rop.Result[rop.Unit] {

	for in := range input {
		if in.IsFailure() {
			return rop.FailFrom[T, rop.Unit](in)
		}
		onSuccess(in.Result())
	}
	return rop.Done()
}
