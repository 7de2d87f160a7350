package optional

import (
	"bytes"
	"encoding/json"
	"fmt"
	"reflect"

	"github.com/pkg/errors"
)

// ErrIsNone is the panic value of Unwrap on an empty Value.
var ErrIsNone = errors.New("is none")

// Value is an optional value. The zero value is None.
type Value[T any] struct {
	indirect *T
}

// None constructs an empty Value.
func None[T any]() Value[T] {
	return Value[T]{}
}

// Some constructs a Value holding value. When T is a pointer type and
// value is nil, the result is None.
func Some[T any](value T) Value[T] {
	if isNilPointer(value) {
		return None[T]()
	}
	return Value[T]{indirect: &value}
}

// Wrap constructs a Value holding value, including a nil pointer.
func Wrap[T any](value T) Value[T] {
	return Value[T]{indirect: &value}
}

func isNilPointer(value any) bool {
	rv := reflect.ValueOf(value)
	return rv.Kind() == reflect.Pointer && rv.IsNil()
}

// IsNone returns whether v is empty.
func (v Value[T]) IsNone() bool {
	return v.indirect == nil
}

// IsSome returns whether v holds a value.
func (v Value[T]) IsSome() bool {
	return v.indirect != nil
}

// Get returns the value and true, or the zero value and false.
func (v Value[T]) Get() (T, bool) {
	if v.indirect == nil {
		return *new(T), false
	}
	return *v.indirect, true
}

// Unwrap returns the value or panics with ErrIsNone.
func (v Value[T]) Unwrap() T {
	if v.indirect == nil {
		panic(ErrIsNone)
	}
	return *v.indirect
}

// UnwrapOr returns the value or fallback.
func (v Value[T]) UnwrapOr(fallback T) T {
	if v.indirect == nil {
		return fallback
	}
	return *v.indirect
}

// UnwrapOrElse returns the value or the result of fallback, which is only
// called when v is empty.
func (v Value[T]) UnwrapOrElse(fallback func() T) T {
	if v.indirect == nil {
		return fallback()
	}
	return *v.indirect
}

// String implements fmt.Stringer.
func (v Value[T]) String() string {
	if v.indirect == nil {
		return "None"
	}
	return fmt.Sprintf("Some(%v)", *v.indirect)
}

var jsonNull = []byte("null")

// MarshalJSON implements json.Marshaler. None encodes as null.
func (v Value[T]) MarshalJSON() ([]byte, error) {
	if v.indirect == nil {
		return jsonNull, nil
	}
	return json.Marshal(*v.indirect)
}

// UnmarshalJSON implements json.Unmarshaler. A null input yields None.
func (v *Value[T]) UnmarshalJSON(data []byte) error {
	if bytes.Equal(bytes.TrimSpace(data), jsonNull) {
		v.indirect = nil
		return nil
	}
	var value T
	if err := json.Unmarshal(data, &value); err != nil {
		return err
	}
	*v = Some(value)
	return nil
}
