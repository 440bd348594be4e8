package rop

import "reflect"

func IsNil(i interface{}) bool {
	if i == nil {
		return true
	}
	v := reflect.ValueOf(i)
	switch v.Kind() {
	case reflect.Ptr, reflect.Map, reflect.Slice, reflect.Func, reflect.Interface, reflect.Chan:
		return v.IsNil()
	}
	return false
}

// GetErrors flattens err into its members. Only a bare *ErrorList is
// expanded (recursively); every other error, joined or wrapped, is kept
// whole. Nil errors yield an empty slice.
func GetErrors(err error) []error {
	if IsNil(err) {
		return []error{}
	}

	if list, ok := err.(*ErrorList); ok {
		return flatten(list.List)
	}

	return []error{err}
}

func flatten(errs []error) []error {
	out := make([]error, 0, len(errs))
	for _, err := range errs {
		out = append(out, GetErrors(err)...)
	}
	return out
}
