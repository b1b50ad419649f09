package bstmap

import (
	"cmp"
	"fmt"
	"reflect"
)

// comparator is the three-way comparison used to place keys.
// It returns a negative number if a < b, 0 if a == b, and a positive number if a > b.
type comparator[K any] func(a, b K) (int, error)

// Comparable may be implemented by keys of a dynamically typed map (see
// NewDynamic) to define their own total order.
//
// CompareTo should return ErrTypeMismatch (possibly wrapped) if other is of a
// type the receiver cannot be ordered against.
type Comparable interface {
	CompareTo(other any) (int, error)
}

func orderedComparator[K cmp.Ordered]() comparator[K] {
	return func(a, b K) (int, error) {
		return cmp.Compare(a, b), nil
	}
}

func funcComparator[K any](compare func(a, b K) int) comparator[K] {
	return func(a, b K) (int, error) {
		return compare(a, b), nil
	}
}

// compareDynamic orders two keys of unknown type. Built-in integers, floats
// and strings compare among their own kind family; anything else has to
// implement Comparable.
func compareDynamic(a, b any) (int, error) {
	if ca, ok := a.(Comparable); ok {
		return ca.CompareTo(b)
	}
	va, vb := reflect.ValueOf(a), reflect.ValueOf(b)
	switch {
	case isInt(va) && isInt(vb):
		return cmp.Compare(va.Int(), vb.Int()), nil
	case isUint(va) && isUint(vb):
		return cmp.Compare(va.Uint(), vb.Uint()), nil
	case isFloat(va) && isFloat(vb):
		return cmp.Compare(va.Float(), vb.Float()), nil
	case va.Kind() == reflect.String && vb.Kind() == reflect.String:
		return cmp.Compare(va.String(), vb.String()), nil
	}
	return 0, fmt.Errorf("%w: cannot compare %T with %T", ErrTypeMismatch, a, b)
}

func isInt(v reflect.Value) bool {
	switch v.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return true
	}
	return false
}

func isUint(v reflect.Value) bool {
	switch v.Kind() {
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return true
	}
	return false
}

func isFloat(v reflect.Value) bool {
	k := v.Kind()
	return k == reflect.Float32 || k == reflect.Float64
}

// isNilKey reports whether a key is absent, i.e. a nil interface or a nil
// value of a nillable kind.
func isNilKey[K any](key K) bool {
	k := any(key)
	if k == nil {
		return true
	}
	v := reflect.ValueOf(k)
	switch v.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan, reflect.Interface:
		return v.IsNil()
	}
	return false
}
