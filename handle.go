package posixshim

import "fmt"

// Handle is an opaque dlfcn handle value such as RTLD_DEFAULT. It carries the
// bit pattern of the C pointer and is only meaningful when passed back to a
// dlfcn call (dlsym, dladdr) on the same platform.
type Handle uintptr

// String formats the handle as a hexadecimal bit pattern.
func (h Handle) String() string {
	return fmt.Sprintf("%#x", uintptr(h))
}
