package rop

import (
	"reflect"
)

// IsNil reports whether i is nil or a nil pointer stored in an interface.
func IsNil(i interface{}) bool {
	if i == nil || (reflect.ValueOf(i).Kind() == reflect.Ptr && reflect.ValueOf(i).IsNil()) {
		return true
	}
	return false
}
