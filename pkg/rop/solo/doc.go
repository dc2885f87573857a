// Package solo contains single-value, synchronous primitives that operate
// on Result[T]. Package seq lifts them over lazily produced sequences.
//
// Highlights:
// - Map: transform a successful value
// - Switch: move from Result[In] to Result[Out]
// - OkOrElse: unwrap Result[Option[T]], failing on an empty option
// - Tee/TeeErr: side-effect helpers that keep the result as it is
// - MapErr: transform the error of a failure
package solo
