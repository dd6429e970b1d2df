package posixshim

import (
	"fmt"
	"sort"
)

// Platform identifies which group of entry points a build carries.
// It is fixed at compile time; see CurrentPlatform.
type Platform uint8

const (
	PlatformUnsupported Platform = iota
	PlatformDarwin
	PlatformLinux
)

func (p Platform) String() string {
	switch p {
	case PlatformDarwin:
		return "darwin"
	case PlatformLinux:
		return "linux"
	default:
		return "unsupported"
	}
}

// Reason records why a primitive cannot be reached from Go without a wrapper.
type Reason uint8

const (
	// ReasonVariadic marks a C function declared with "...", which cgo cannot call.
	ReasonVariadic Reason = iota + 1

	// ReasonMacro marks a value defined by a preprocessor macro rather than a
	// linkable symbol.
	ReasonMacro

	// ReasonUnavailable marks a function the Go standard library deliberately
	// does not expose.
	ReasonUnavailable
)

func (r Reason) String() string {
	switch r {
	case ReasonVariadic:
		return "variadic"
	case ReasonMacro:
		return "macro"
	case ReasonUnavailable:
		return "unavailable"
	default:
		return fmt.Sprintf("reason(%d)", uint8(r))
	}
}

// Primitive describes one wrapped OS primitive.
type Primitive struct {
	// Name is the C name of the primitive (e.g., "shm_open", "RTLD_NEXT").
	Name string

	// Signature is the primitive's real C declaration.
	Signature string

	// Exposed is the fixed Go signature the wrapper offers.
	Exposed string

	// Reason is why the primitive needs a wrapper at all.
	Reason Reason

	// Platforms lists every platform whose build carries the wrapper.
	Platforms []Platform

	// value reads a sentinel or flag; nil for functions.
	value func() uintptr
}

// Value returns the bit pattern of a sentinel or flag primitive.
// The second result is false for function primitives.
func (p Primitive) Value() (uintptr, bool) {
	if p.value == nil {
		return 0, false
	}
	return p.value(), true
}

// IsConstant reports whether the primitive materializes a compile-time value.
func (p Primitive) IsConstant() bool {
	return p.value != nil
}

// registry holds the descriptors of the compiled groups. It is only appended
// to from init functions and is read-only afterwards.
var registry = map[string]Primitive{}

func register(prims ...Primitive) {
	for _, p := range prims {
		if _, dup := registry[p.Name]; dup {
			panic("posixshim: primitive registered twice: " + p.Name)
		}
		registry[p.Name] = p
	}
}

// Manifest returns the descriptors of every entry point in this build,
// sorted by C name. The slice is a fresh copy.
func Manifest() []Primitive {
	prims := make([]Primitive, 0, len(registry))
	for _, p := range registry {
		prims = append(prims, p)
	}
	sort.Slice(prims, func(i, j int) bool {
		return prims[i].Name < prims[j].Name
	})
	return prims
}

// Lookup returns the descriptor registered under the C name, if this build
// carries it.
func Lookup(name string) (Primitive, bool) {
	p, ok := registry[name]
	return p, ok
}
