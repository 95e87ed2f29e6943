package cookie

import "runtime"

// Platform identifies which of the three historic index wire layouts a
// jar uses.
type Platform int

const (
	PlatformHomebrew Platform = iota
	PlatformLinux
	PlatformFreeBSD
)

// String returns the lowercase platform name.
func (p Platform) String() string {
	switch p {
	case PlatformHomebrew:
		return "homebrew"
	case PlatformLinux:
		return "linux"
	case PlatformFreeBSD:
		return "freebsd"
	}
	return "unknown"
}

// ParsePlatform maps a platform name to its tag. Unrecognized names fall
// back to the host default, matching the historic tools.
func ParsePlatform(name string) Platform {
	switch name {
	case "homebrew":
		return PlatformHomebrew
	case "linux":
		return PlatformLinux
	case "freebsd":
		return PlatformFreeBSD
	}
	return DefaultPlatform()
}

// DefaultPlatform resolves the layout for the running host OS. Unknown
// hosts default to the Linux layout.
func DefaultPlatform() Platform {
	switch runtime.GOOS {
	case "darwin":
		return PlatformHomebrew
	case "linux":
		return PlatformLinux
	case "freebsd":
		return PlatformFreeBSD
	}
	return PlatformLinux
}
