package rop

// Match collapses a result into a concrete value via success/error handlers
func Match[T, Out any](input WithError[T],
	onSuccess func(r T) Out,
	onError func(err error) Out) Out {

	if input.IsSuccess() {
		return onSuccess(input.Result())
	}
	return onError(input.Err())
}
