//go:build darwin && cgo

package posixshim

/*
#include <stdint.h>
#include <sys/types.h>
#include <sys/mman.h>
#include <fcntl.h>
#include <unistd.h>
#include <dlfcn.h>

// shm_open is declared variadic in <sys/mman.h>:
//   int shm_open(const char *, int, ...);
static inline int shim_shm_open(const char *name, int oflag, mode_t mode) {
	return shm_open(name, oflag, mode);
}

static inline pid_t shim_fork(void) {
	return fork();
}

static inline void shim_exit(int status) {
	_exit(status);
}

static inline uintptr_t shim_rtld_main_only(void) {
	return (uintptr_t)RTLD_MAIN_ONLY;
}

static inline int32_t shim_rtld_first(void) {
	return RTLD_FIRST;
}
*/
import "C"

import (
	"unsafe"

	"golang.org/x/sys/unix"
)

func init() {
	register(
		Primitive{
			Name:      "shm_open",
			Signature: "int shm_open(const char *, int, ...)",
			Exposed:   "func ShmOpen(name string, flags int, mode uint32) (int, error)",
			Reason:    ReasonVariadic,
			Platforms: []Platform{PlatformDarwin},
		},
		Primitive{
			Name:      "fork",
			Signature: "pid_t fork(void)",
			Exposed:   "func Fork() (int, error)",
			Reason:    ReasonUnavailable,
			Platforms: []Platform{PlatformDarwin},
		},
		Primitive{
			Name:      "RTLD_MAIN_ONLY",
			Signature: "#define RTLD_MAIN_ONLY ((void *) -5)",
			Exposed:   "func MainOnly() Handle",
			Reason:    ReasonMacro,
			Platforms: []Platform{PlatformDarwin},
			value:     func() uintptr { return uintptr(MainOnly()) },
		},
		Primitive{
			Name:      "RTLD_FIRST",
			Signature: "#define RTLD_FIRST 0x100",
			Exposed:   "func First() int32",
			Reason:    ReasonMacro,
			Platforms: []Platform{PlatformDarwin},
			value:     func() uintptr { return uintptr(uint32(First())) },
		},
	)
}

// ShmOpen opens or creates the POSIX shared memory object name and returns
// its file descriptor. flags and mode are passed through untouched.
//
// On failure the descriptor is -1 and err is the unix.Errno left by shm_open
// (EEXIST, ENOENT, EACCES, ENAMETOOLONG, ...). A name containing a NUL byte
// is rejected with EINVAL before the call, as in golang.org/x/sys/unix.
func ShmOpen(name string, flags int, mode uint32) (int, error) {
	p, err := unix.BytePtrFromString(name)
	if err != nil {
		return -1, err
	}
	fd, errno := C.shim_shm_open((*C.char)(unsafe.Pointer(p)), C.int(flags), C.mode_t(mode))
	if fd == -1 {
		return -1, errno
	}
	return int(fd), nil
}

// ShmUnlink removes the shared memory object name.
func ShmUnlink(name string) error {
	p, err := unix.BytePtrFromString(name)
	if err != nil {
		return err
	}
	r, errno := C.shm_unlink((*C.char)(unsafe.Pointer(p)))
	if r == -1 {
		return errno
	}
	return nil
}

// Fork duplicates the calling process. The parent receives the child's pid,
// the child receives 0. On failure pid is -1 and err is EAGAIN or ENOMEM.
//
// Only the calling thread exists in the child. It must not run arbitrary Go
// code: call Exit, or replace the image with unix.Exec. Callers should hold
// runtime.LockOSThread across the call.
func Fork() (int, error) {
	pid, errno := C.shim_fork()
	if pid == -1 {
		return -1, errno
	}
	return int(pid), nil
}

// Exit terminates the process immediately with _exit(2). No deferred
// functions, finalizers or atexit handlers run. It is the safe way for a
// child returned from Fork to finish.
func Exit(code int) {
	C.shim_exit(C.int(code))
}

// MainOnly returns RTLD_MAIN_ONLY: search only the main executable.
func MainOnly() Handle {
	return Handle(C.shim_rtld_main_only())
}

// First returns the RTLD_FIRST dlopen flag, which limits dlsym on the returned
// handle to the image itself.
func First() int32 {
	return int32(C.shim_rtld_first())
}
