// Package value classifies the dynamic values predicates run against.
//
// Checked values are plain `any`: nil is null, AbsentValue is the
// undefined-equivalent sentinel, numbers are any Go numeric kind, arrays
// are slices or arrays, objects are string-keyed maps, structs, or
// pointers to structs, and callables are funcs.
package value

import (
	"reflect"
)

// AbsentValue is the "absent" sentinel: the value of a missing object
// key, and the result of a callable with no results.
type AbsentValue struct{}

// Absent is the canonical absent value.
var Absent any = AbsentValue{}

// IsAbsent reports whether v is the absent sentinel.
func IsAbsent(v any) bool {
	_, ok := v.(AbsentValue)
	return ok
}

// IsNull reports whether v is null: untyped nil, or a nil
// pointer/map/slice/func/interface.
func IsNull(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func, reflect.Interface, reflect.Chan:
		return rv.IsNil()
	default:
		return false
	}
}

func IsString(v any) bool {
	if v == nil {
		return false
	}
	return reflect.ValueOf(v).Kind() == reflect.String
}

// IsNumber reports whether v has any integer or float kind.
func IsNumber(v any) bool {
	if v == nil {
		return false
	}
	switch reflect.ValueOf(v).Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return true
	default:
		return false
	}
}

func IsBool(v any) bool {
	if v == nil {
		return false
	}
	return reflect.ValueOf(v).Kind() == reflect.Bool
}

// IsCallable reports whether v is a non-nil func.
func IsCallable(v any) bool {
	if v == nil {
		return false
	}
	rv := reflect.ValueOf(v)
	return rv.Kind() == reflect.Func && !rv.IsNil()
}

// IsObject reports whether v is a non-null object: a string-keyed map,
// a struct, or a non-nil pointer to a struct.
func IsObject(v any) bool {
	if IsNull(v) || IsAbsent(v) {
		return false
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Map:
		return rv.Type().Key().Kind() == reflect.String
	case reflect.Struct:
		return true
	case reflect.Pointer:
		return rv.Elem().Kind() == reflect.Struct
	default:
		return false
	}
}

// Field reads key from an object value. A key the object does not carry
// reads as Absent, so nullable fields accept missing keys.
func Field(v any, key string) any {
	rv := reflect.ValueOf(v)
	if rv.Kind() == reflect.Pointer {
		rv = rv.Elem()
	}
	switch rv.Kind() {
	case reflect.Map:
		if rv.Type().Key().Kind() != reflect.String {
			return Absent
		}
		entry := rv.MapIndex(reflect.ValueOf(key).Convert(rv.Type().Key()))
		if !entry.IsValid() {
			return Absent
		}
		return entry.Interface()
	case reflect.Struct:
		f, ok := rv.Type().FieldByName(key)
		if !ok || !f.IsExported() {
			return Absent
		}
		return rv.FieldByIndex(f.Index).Interface()
	default:
		return Absent
	}
}

// Elems returns the elements of an array value, or false when v is not
// a slice or array.
func Elems(v any) ([]any, bool) {
	if v == nil {
		return nil, false
	}
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
		return nil, false
	}
	out := make([]any, rv.Len())
	for i := range out {
		out[i] = rv.Index(i).Interface()
	}
	return out, true
}

// Equal is strict literal equality: numbers compare numerically across
// integer and float kinds, everything else compares with ==.
func Equal(a, b any) bool {
	if IsNumber(a) && IsNumber(b) {
		return asFloat(a) == asFloat(b)
	}
	ta, tb := reflect.TypeOf(a), reflect.TypeOf(b)
	if ta == nil || tb == nil {
		return ta == tb
	}
	if !ta.Comparable() || !tb.Comparable() {
		return false
	}
	return a == b
}

func asFloat(v any) float64 {
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Float32, reflect.Float64:
		return rv.Float()
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return float64(rv.Uint())
	default:
		return float64(rv.Int())
	}
}

// TypeNameOf returns the reflected type name of v with pointers
// dereferenced, used for nominal type-name matching. Renaming a Go type
// changes what its values match, like renaming a constructor would.
func TypeNameOf(v any) string {
	t := reflect.TypeOf(v)
	if t == nil {
		return ""
	}
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	return t.Name()
}
