package rop

import "errors"

// ErrNone is returned by Option.Result for an empty option.
var ErrNone = errors.New("value is absent")

// Option is a value that may be absent.
type Option[T any] struct {
	value T
	some  bool
}

func Some[T any](v T) Option[T] {
	return Option[T]{value: v, some: true}
}

func None[T any]() Option[T] {
	return Option[T]{}
}

// OptionOf returns Some(*v) for a non-nil pointer and None otherwise.
func OptionOf[T any](v *T) Option[T] {
	if v == nil {
		return None[T]()
	}
	return Some(*v)
}

func (o Option[T]) IsSome() bool {
	return o.some
}

func (o Option[T]) IsNone() bool {
	return !o.some
}

// Value returns the contained value and whether it is present.
func (o Option[T]) Value() (T, bool) {
	return o.value, o.some
}

func (o Option[T]) ValueOr(def T) T {
	if o.some {
		return o.value
	}
	return def
}

// Result converts the option into a Result failing with ErrNone when empty.
func (o Option[T]) Result() Result[T] {
	if o.some {
		return Success(o.value)
	}
	return Fail[T](ErrNone)
}
