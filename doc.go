// Package posixshim exposes a handful of POSIX and Darwin C primitives that cgo
// cannot reach on its own.
//
// cgo refuses to call variadic C functions, cannot evaluate function-like or
// cast macros, and the standard library intentionally offers no bare fork.
// posixshim closes each gap with one fixed-arity C wrapper in a cgo preamble
// and one Go function forwarding to it. Nothing is validated, retried or
// transformed: results and errno come back exactly as the primitive left them.
//
// # Entry Points
//
// Available on Darwin and Linux:
//
//	posixshim.Default() // RTLD_DEFAULT
//	posixshim.Next()    // RTLD_NEXT
//
// Available on Darwin only:
//
//	fd, err := posixshim.ShmOpen("/seg", unix.O_CREAT|unix.O_RDWR, 0600)
//	pid, err := posixshim.Fork()
//	posixshim.MainOnly() // RTLD_MAIN_ONLY
//	posixshim.First()    // RTLD_FIRST
//
// # Platform Availability
//
// Availability is a build-time property. On a platform that lacks a group, or
// when building with CGO_ENABLED=0, the functions of that group do not exist
// and referencing them fails to compile. Nothing is stubbed.
//
// The compiled interface describes itself through the manifest:
//
//	for _, p := range posixshim.Manifest() {
//		fmt.Println(p.Name, p.Exposed)
//	}
//
//	doc := posixshim.Snapshot()
//	data, err := posixshim.EncodeDocument(posixshim.MsgpackSerializer{}, doc)
//
// # Errors
//
// Failures are reported as unix.Errno values taken from errno, unwrapped, so
// both == and errors.Is work:
//
//	_, err := posixshim.ShmOpen("/seg", unix.O_CREAT|unix.O_EXCL|unix.O_RDWR, 0600)
//	if errors.Is(err, unix.EEXIST) {
//		// segment already exists
//	}
//
// # Fork
//
// A Go process is always multithreaded and the child of Fork keeps only the
// calling thread. The Go runtime in the child is not generally usable, so the
// child must restrict itself to async-signal-safe work: Exit, or an exec via
// unix.Exec. Hold runtime.LockOSThread around the call. Fork does not enforce
// any of this.
package posixshim
