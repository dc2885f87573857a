// Package rop defines the value types shared by the sequence combinators:
// Result[T], a success-or-failure value carrying an error on failure,
// Option[T], a value that may be absent, and Unit, the payload of results
// that only signal completion.
package rop
