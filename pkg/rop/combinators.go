package rop

// Map applies f to the success value. A failure is returned unchanged and f
// is not called.
func Map[V, P any, E error](r Result[V, E], f func(V) P) Result[P, E] {
	if !r.isSuccess {
		return Failure[P](r.err)
	}
	return Success[P, E](f(r.value))
}

// FlatMap applies f to the success value and returns its Result. A failure
// is returned unchanged and f is not called.
func FlatMap[V, P any, E error](r Result[V, E], f func(V) Result[P, E]) Result[P, E] {
	if !r.isSuccess {
		return Failure[P](r.err)
	}
	return f(r.value)
}

// MapErr applies f to the failure error. A success is returned unchanged.
func MapErr[V any, E, F error](r Result[V, E], f func(E) F) Result[V, F] {
	if r.isSuccess {
		return Success[V, F](r.value)
	}
	return Failure[V](f(r.err))
}

// Fold reduces r to a value with onSuccess or onFailure.
func Fold[V, O any, E error](r Result[V, E], onSuccess func(V) O, onFailure func(E) O) O {
	if r.isSuccess {
		return onSuccess(r.value)
	}
	return onFailure(r.err)
}

// Tee calls onSuccess with the success value and returns r.
func Tee[V any, E error](r Result[V, E], onSuccess func(V)) Result[V, E] {
	if r.isSuccess {
		onSuccess(r.value)
	}
	return r
}

// TeeErr calls onFailure with the failure error and returns r.
func TeeErr[V any, E error](r Result[V, E], onFailure func(E)) Result[V, E] {
	if !r.isSuccess {
		onFailure(r.err)
	}
	return r
}
