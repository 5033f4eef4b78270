// Package util provides common utilities and constants for OnionShare-NG.
//
// This package contains:
//   - Size constants (KiB through YiB) for byte calculations
//   - Duration formatting and transfer ETA estimation (FormatSeconds,
//     EstimatedTimeRemaining)
//   - Human-readable filesize formatting (HumanReadableFilesize)
//   - Free loopback port discovery (GetAvailablePort)
//
// All utilities are stateless and thread-safe.
package util

// Size constants for byte calculations. These are untyped so the larger
// units can be used in float64 context; ZiB and YiB overflow every integer
// type.
const (
	KiB = 1 << 10 // 1024
	MiB = 1 << 20 // 1,048,576
	GiB = 1 << 30 // 1,073,741,824
	TiB = 1 << 40 // 1,099,511,627,776
	PiB = 1 << 50
	EiB = 1 << 60
	ZiB = 1 << 70
	YiB = 1 << 80
)
