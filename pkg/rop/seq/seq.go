package seq

import (
	"iter"

	"github.com/ib-77/ropseq/pkg/rop"
	"github.com/ib-77/ropseq/pkg/rop/solo"
)

// MapOk transforms the value of every successful item. Failures are forwarded
// unchanged and onSuccess is not called for them.
func MapOk[In, Out any](input iter.Seq[rop.Result[In]],
	onSuccess func(r In) Out) iter.Seq[rop.Result[Out]] {

	return func(yield func(rop.Result[Out]) bool) {
		for in := range input {
			if !yield(solo.Map(in, onSuccess)) {
				return
			}
		}
	}
}

// AndThenOk replaces every successful item with the result of onSuccess.
// Failures are forwarded unchanged.
func AndThenOk[In, Out any](input iter.Seq[rop.Result[In]],
	onSuccess func(r In) rop.Result[Out]) iter.Seq[rop.Result[Out]] {

	return func(yield func(rop.Result[Out]) bool) {
		for in := range input {
			if !yield(solo.Switch(in, onSuccess)) {
				return
			}
		}
	}
}

// InnerOkOrElse unwraps successful options. An empty option becomes a failure
// holding onNone(), called once for each such item as it is pulled.
func InnerOkOrElse[T any](input iter.Seq[rop.Result[rop.Option[T]]],
	onNone func() error) iter.Seq[rop.Result[T]] {

	return func(yield func(rop.Result[T]) bool) {
		for in := range input {
			if !yield(solo.OkOrElse(in, onNone)) {
				return
			}
		}
	}
}

// OnErr calls onError for every failure right before handing it to the
// consumer. Items are forwarded as they are.
func OnErr[T any](input iter.Seq[rop.Result[T]],
	onError func(err error)) iter.Seq[rop.Result[T]] {

	return func(yield func(rop.Result[T]) bool) {
		for in := range input {
			if !yield(solo.TeeErr(in, onError)) {
				return
			}
		}
	}
}

// FailFast consumes input up to the first failure and returns it. Nothing
// after that failure is pulled.
func FailFast(input iter.Seq[rop.Result[rop.Unit]]) rop.Result[rop.Unit] {
	return FailFastOf(input)
}

// LastErr consumes the whole input and returns the last failure seen.
func LastErr(input iter.Seq[rop.Result[rop.Unit]]) rop.Result[rop.Unit] {
	return LastErrOf(input)
}

// FailFastOf is FailFast for any success type. An input without failures
// yields Success of the zero value.
func FailFastOf[T any](input iter.Seq[rop.Result[T]]) rop.Result[T] {
	for in := range input {
		if in.IsFailure() {
			return in
		}
	}

	var zero T
	return rop.Success(zero)
}

// LastErrOf is LastErr for any success type.
func LastErrOf[T any](input iter.Seq[rop.Result[T]]) rop.Result[T] {
	var last rop.Result[T]
	failed := false

	for in := range input {
		if in.IsFailure() {
			last = in
			failed = true
		}
	}

	if failed {
		return last
	}

	var zero T
	return rop.Success(zero)
}
