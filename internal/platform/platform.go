// Package platform identifies the host operating system and deployment
// mode, and resolves the per-platform locations of application resources
// and bundled Tor binaries.
package platform

import "runtime"

// Platform is the host operating system identity, derived once at startup
// and immutable for the process lifetime.
type Platform int

const (
	Linux Platform = iota
	Darwin
	Windows
	Other
)

func (p Platform) String() string {
	switch p {
	case Linux:
		return "Linux"
	case Darwin:
		return "Darwin"
	case Windows:
		return "Windows"
	default:
		return "Other"
	}
}

// Mode describes how the running binary was deployed; it determines the
// path layout.
type Mode int

const (
	// Development runs from a source checkout; resources live in ./share.
	Development Mode = iota
	// Frozen runs as a packaged bundle (macOS .app, Windows installer tree).
	Frozen
	// Installed runs from a system prefix (Linux distribution package).
	Installed
)

func (m Mode) String() string {
	switch m {
	case Development:
		return "development"
	case Frozen:
		return "frozen"
	default:
		return "installed"
	}
}

// Detect maps runtime.GOOS onto the closed Platform enumeration. Anything
// that is not Linux, macOS, or Windows becomes Other; resolver operations
// on Other fail loudly rather than guess a path layout.
func Detect() Platform {
	switch runtime.GOOS {
	case "linux":
		return Linux
	case "darwin":
		return Darwin
	case "windows":
		return Windows
	default:
		return Other
	}
}
