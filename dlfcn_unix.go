//go:build (darwin || linux) && cgo

package posixshim

/*
#cgo linux CFLAGS: -D_GNU_SOURCE
#cgo linux LDFLAGS: -ldl

#include <stdint.h>
#include <dlfcn.h>

// RTLD_DEFAULT and RTLD_NEXT are cast macros; cgo cannot evaluate them.
// They are returned as integers so no bogus pointer ever reaches Go.

static inline uintptr_t shim_rtld_default(void) {
	return (uintptr_t)RTLD_DEFAULT;
}

static inline uintptr_t shim_rtld_next(void) {
	return (uintptr_t)RTLD_NEXT;
}
*/
import "C"

func init() {
	register(
		Primitive{
			Name:      "RTLD_DEFAULT",
			Signature: "#define RTLD_DEFAULT ((void *) -2) /* glibc: 0 */",
			Exposed:   "func Default() Handle",
			Reason:    ReasonMacro,
			Platforms: []Platform{PlatformDarwin, PlatformLinux},
			value:     func() uintptr { return uintptr(Default()) },
		},
		Primitive{
			Name:      "RTLD_NEXT",
			Signature: "#define RTLD_NEXT ((void *) -1)",
			Exposed:   "func Next() Handle",
			Reason:    ReasonMacro,
			Platforms: []Platform{PlatformDarwin, PlatformLinux},
			value:     func() uintptr { return uintptr(Next()) },
		},
	)
}

// Default returns RTLD_DEFAULT: search every object normally searched by
// dlsym, in load order.
func Default() Handle {
	return Handle(C.shim_rtld_default())
}

// Next returns RTLD_NEXT: search only objects loaded after the one that
// makes the dlsym call.
func Next() Handle {
	return Handle(C.shim_rtld_next())
}
