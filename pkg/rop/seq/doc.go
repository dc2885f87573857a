// Package seq provides combinators over lazily produced sequences of
// Result[T] values (iter.Seq[rop.Result[T]]). They remove the per-item
// success/failure branching when a pipeline keeps transforming items that may
// have failed.
//
// Per-item combinators (each item is pulled only when the consumer asks):
// - MapOk: transform successful values, forward failures
// - AndThenOk: switch successful values to a new Result
// - InnerOkOrElse: unwrap Result[Option[T]], turning None into a failure
// - OnErr/OnOk: observe failures or successes without changing the items
// - MapErr: transform failures only
// - Errors/Oks: keep only the errors or only the values
//
// Terminal combinators (drive the sequence themselves):
// - FailFast: stop at the first failure and return it
// - LastErr: consume everything and return the last failure
// - WhileOk: call a function for every success until the first failure
//
// Nothing runs in the background: a consumer that stops ranging stops all
// upstream work.
package seq
