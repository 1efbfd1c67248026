package libgl

import (
	"fmt"
	"reflect"
	"unsafe"
)

// Pointer returns the address of the first element of a slice, of the value
// a pointer points to, or the uintptr or unsafe.Pointer itself. nil and empty slices give nil.
func Pointer(data any) unsafe.Pointer {
	if data == nil {
		return unsafe.Pointer(nil)
	}
	v := reflect.ValueOf(data)
	switch v.Type().Kind() {
	case reflect.Ptr:
		return unsafe.Pointer(v.Elem().UnsafeAddr())
	case reflect.Uintptr:
		return unsafe.Pointer(data.(uintptr))
	case reflect.UnsafePointer:
		return data.(unsafe.Pointer)
	case reflect.Slice:
		if v.Len() == 0 {
			return unsafe.Pointer(nil)
		}
		return unsafe.Pointer(v.Index(0).UnsafeAddr())
	default:
		panic(fmt.Errorf("unsupported type %s; must be a slice, uintptr or pointer to a value", v.Type()))
	}
}
