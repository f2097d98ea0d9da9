// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

package polylog

import (
	"reflect"
	"sync"
)

// Symbol is an identifier used as a logger name as is.
type Symbol string

func (s Symbol) String() string {
	return string(s)
}

// Named is implemented by values that choose their own logger name. An empty
// name falls back to the name of the value type.
type Named interface {
	LoggerName() string
}

// typeNames holds the names registered with RegisterTypeName.
var typeNames sync.Map

// RegisterTypeName makes every value of type t resolve to name. An empty name
// removes a previous registration.
func RegisterTypeName(t reflect.Type, name string) {
	if t == nil {
		return
	}

	if name == "" {
		typeNames.Delete(t)
		return
	}
	typeNames.Store(t, name)
}

// ResolveName derives the logger name for value. Strings are used as is,
// Symbols are converted, reflect.Type values and every other value are named
// after their type. The empty string is returned when no name can be derived.
func ResolveName(value any) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return v
	case Symbol:
		return string(v)
	case reflect.Type:
		return ResolveNameForType(v)
	case Named:
		if !isNilValue(value) {
			if name := v.LoggerName(); name != "" {
				return name
			}
		}
	}

	return ResolveNameForType(reflect.TypeOf(value))
}

// ResolveNameForType derives the logger name for t.
//
// A type registered with RegisterTypeName uses the registered name, a named
// type uses its package qualified name (for example "billing.Invoice"). An
// unnamed struct whose first field is embedded takes the name of the embedded
// type, so that values extended in place keep logging under the original
// type. Unnamed pointers take the name of the pointed type. Any other unnamed
// type yields the empty string.
func ResolveNameForType(t reflect.Type) string {
	for t != nil {
		if name, ok := typeNames.Load(t); ok {
			return name.(string)
		}

		if t.Name() != "" {
			return t.String()
		}

		switch t.Kind() {
		case reflect.Pointer:
			t = t.Elem()
		case reflect.Struct:
			if t.NumField() == 0 || !t.Field(0).Anonymous {
				return ""
			}
			t = t.Field(0).Type
		default:
			return ""
		}
	}

	return ""
}

// isNilValue reports if value holds a nil pointer, func, map, slice, chan or
// interface.
func isNilValue(value any) bool {
	if value == nil {
		return true
	}

	v := reflect.ValueOf(value)
	switch v.Kind() {
	case reflect.Pointer, reflect.Func, reflect.Map, reflect.Slice, reflect.Chan, reflect.Interface:
		return v.IsNil()
	default:
		return false
	}
}
