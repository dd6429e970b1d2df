//go:build !darwin && !linux

package posixshim

// CurrentPlatform is the platform tag of this build.
const CurrentPlatform = PlatformUnsupported
