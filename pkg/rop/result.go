package rop

import (
	"fmt"

	"github.com/ib-77/commons/pkg/optional"
	"github.com/pkg/errors"
)

// Result holds either a success value of type V or a failure error of type E.
type Result[V any, E error] struct {
	value     V
	err       E
	isSuccess bool
}

func Success[V any, E error](v V) Result[V, E] {
	return Result[V, E]{
		value:     v,
		isSuccess: true,
	}
}

// Failure returns a failed Result. A nil interface err still yields a failure.
func Failure[V any, E error](err E) Result[V, E] {
	return Result[V, E]{
		err:       err,
		isSuccess: false,
	}
}

// Of converts a Go (value, error) pair into a Result. A nil err, including a
// nil pointer stored in the error interface, yields Success(v).
func Of[V any](v V, err error) Result[V, error] {
	if IsNil(err) {
		return Success[V, error](v)
	}
	return Failure[V](err)
}

func (r Result[V, E]) IsSuccess() bool {
	return r.isSuccess
}

func (r Result[V, E]) IsFailure() bool {
	return !r.isSuccess
}

// Value returns the success value, or None on failure. A nil pointer success
// value is Some(nil).
func (r Result[V, E]) Value() optional.Value[V] {
	if !r.isSuccess {
		return optional.None[V]()
	}
	return optional.Wrap(r.value)
}

// Err returns the failure error, or None on success. A nil error stored in a
// failure is Some(nil).
func (r Result[V, E]) Err() optional.Value[E] {
	if r.isSuccess {
		return optional.None[E]()
	}
	return optional.Wrap(r.err)
}

// ValueOrThrow returns the success value, or the stored error. On success the
// returned error is always a nil interface.
func (r Result[V, E]) ValueOrThrow() (V, error) {
	if !r.isSuccess {
		var zero V
		return zero, r.err
	}
	return r.value, nil
}

// MustValue returns the success value or panics with the stored error.
func (r Result[V, E]) MustValue() V {
	if !r.isSuccess {
		if IsNil(r.err) {
			panic(errors.WithStack(ErrNilFailure))
		}
		panic(errors.WithStack(r.err))
	}
	return r.value
}

// ValueOrOther returns the success value, or the result of other. other is
// only called on failure.
func (r Result[V, E]) ValueOrOther(other func() V) V {
	if !r.isSuccess {
		return other()
	}
	return r.value
}

// Otherwise returns r when it is a success, or the Result returned by other.
func (r Result[V, E]) Otherwise(other func() Result[V, E]) Result[V, E] {
	if r.isSuccess {
		return r
	}
	return other()
}

func (r Result[V, E]) String() string {
	if r.isSuccess {
		return fmt.Sprintf("Success(%v)", r.value)
	}
	return fmt.Sprintf("Failure(%v)", r.err)
}

func (r Result[V, E]) GoString() string {
	return r.String()
}
