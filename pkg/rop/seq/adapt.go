package seq

import (
	"iter"

	"github.com/ib-77/ropseq/pkg/rop"
)

// FromSlice yields the given results in order.
func FromSlice[T any](items []rop.Result[T]) iter.Seq[rop.Result[T]] {
	return func(yield func(rop.Result[T]) bool) {
		for _, item := range items {
			if !yield(item) {
				return
			}
		}
	}
}

// FromValues yields every value as a success.
func FromValues[T any](values ...T) iter.Seq[rop.Result[T]] {
	return func(yield func(rop.Result[T]) bool) {
		for _, v := range values {
			if !yield(rop.Success(v)) {
				return
			}
		}
	}
}

// FromPairs turns a (value, error) sequence into a result sequence.
func FromPairs[T any](input iter.Seq2[T, error]) iter.Seq[rop.Result[T]] {
	return func(yield func(rop.Result[T]) bool) {
		for v, err := range input {
			if !yield(rop.FromPair(v, err)) {
				return
			}
		}
	}
}

// ToPairs is the reverse of FromPairs. A failure yields the zero value.
func ToPairs[T any](input iter.Seq[rop.Result[T]]) iter.Seq2[T, error] {
	return func(yield func(T, error) bool) {
		for in := range input {
			if !yield(in.Get()) {
				return
			}
		}
	}
}
