package rop

import (
	"github.com/ib-77/commons/pkg/logx"
	"github.com/ib-77/commons/pkg/optional"
	"github.com/pkg/errors"
)

// Handler adapts f to callback APIs that report an outcome as an optional
// value and an optional error. Exactly one of the two must be present: the
// returned callback panics when both or neither are.
func Handler[V any, E error](f func(Result[V, E])) func(optional.Value[V], optional.Value[E]) {
	return func(value optional.Value[V], err optional.Value[E]) {
		switch {
		case value.IsSome() && err.IsSome():
			logx.Default().Errorf("%s: value=%v error=%v", ErrHandlerBothPresent, value, err)
			panic(errors.WithStack(ErrHandlerBothPresent))
		case value.IsSome():
			f(Success[V, E](value.Unwrap()))
		case err.IsSome():
			f(Failure[V](err.Unwrap()))
		default:
			logx.Default().Errorf("%s", ErrHandlerBothEmpty)
			panic(errors.WithStack(ErrHandlerBothEmpty))
		}
	}
}
