package kstdio

import "unsafe"

// arguments walks the variadic argument list as directives consume it.
// Each conversion takes exactly one argument; surplus arguments are
// ignored at the end of the template.
type arguments struct {
	list []any
	next int
}

func (a *arguments) take() (any, bool) {
	if a.next >= len(a.list) {
		return nil, false
	}
	v := a.list[a.next]
	a.next++
	return v, true
}

// integer consumes one argument and returns its value as a 64-bit
// pattern. Signed kinds are sign-extended so an unsigned conversion can
// reinterpret the bits at the width its length modifier selects.
func (a *arguments) integer() (uint64, error) {
	v, ok := a.take()
	if !ok {
		return 0, ErrMissingArg
	}
	switch n := v.(type) {
	case int:
		return uint64(n), nil
	case int8:
		return uint64(n), nil
	case int16:
		return uint64(n), nil
	case int32:
		return uint64(n), nil
	case int64:
		return uint64(n), nil
	case uint:
		return uint64(n), nil
	case uint8:
		return uint64(n), nil
	case uint16:
		return uint64(n), nil
	case uint32:
		return uint64(n), nil
	case uint64:
		return n, nil
	case uintptr:
		return uint64(n), nil
	}
	return 0, ErrWrongType
}

// pointer consumes one argument as an address. A nil argument is the
// null pointer and formats as address zero.
func (a *arguments) pointer() (uint64, error) {
	v, ok := a.take()
	if !ok {
		return 0, ErrMissingArg
	}
	switch p := v.(type) {
	case nil:
		return 0, nil
	case uintptr:
		return uint64(p), nil
	case unsafe.Pointer:
		return uint64(uintptr(p)), nil
	}
	return 0, ErrWrongType
}

// str consumes one argument as string-like content. Exactly one of the
// two returns carries the payload; a nil argument stands in for the null
// string and yields no output.
func (a *arguments) str() (string, []byte, error) {
	v, ok := a.take()
	if !ok {
		return "", nil, ErrMissingArg
	}
	switch s := v.(type) {
	case nil:
		return "", nil, nil
	case string:
		return s, nil, nil
	case []byte:
		return "", s, nil
	}
	return "", nil, ErrWrongType
}
