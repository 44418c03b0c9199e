package dispatch

import (
	"reflect"
	"unsafe"
)

// processArg turns one Call argument into a register word. The second
// result is false for values that don't fit in a register.
func processArg(arg interface{}) (uintptr, bool) {
	if arg == nil {
		return 0, true
	}
	// Fast path for common types to avoid reflect allocations
	switch v := arg.(type) {
	case uintptr:
		return v, true
	case unsafe.Pointer:
		return uintptr(v), true
	case *byte, *uint16, *uint32, *uint64, *int8, *int16, *int32, *int64, *int, *uint, *uintptr:
		return reflect.ValueOf(v).Pointer(), true
	case int:
		return uintptr(v), true
	case int8:
		return uintptr(int64(v)), true
	case int16:
		return uintptr(int64(v)), true
	case int32:
		return uintptr(int64(v)), true
	case int64:
		return uintptr(v), true
	case uint:
		return uintptr(v), true
	case uint8:
		return uintptr(v), true
	case uint16:
		return uintptr(v), true
	case uint32:
		return uintptr(v), true
	case uint64:
		return uintptr(v), true
	case bool:
		if v {
			return 1, true
		}
		return 0, true
	}

	// Fallback generic handling
	val := reflect.ValueOf(arg)
	switch val.Kind() {
	case reflect.Ptr, reflect.UnsafePointer:
		return val.Pointer(), true
	case reflect.Slice:
		// address of the backing array, as C code would see it
		if val.Len() == 0 {
			return 0, true
		}
		return val.Index(0).Addr().Pointer(), true
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return uintptr(val.Int()), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return uintptr(val.Uint()), true
	case reflect.Bool:
		if val.Bool() {
			return 1, true
		}
		return 0, true
	}
	return 0, false
}

func processArgs(args []interface{}) ([]uintptr, bool) {
	words := make([]uintptr, len(args))
	for i, arg := range args {
		w, ok := processArg(arg)
		if !ok {
			return nil, false
		}
		words[i] = w
	}
	return words, true
}
