package wide

import (
	"os"
	"strconv"
	"unsafe"
)

// Vectors in this package are plain Go arrays processed with portable loops;
// the compiler may or may not map them onto vector registers. The dispatch
// report describes the host so callers can pick a Width build tag that fits
// the hardware and so tools can print what they ran on.

// DispatchLevel represents the widest SIMD instruction set detected on the host.
type DispatchLevel int

const (
	// DispatchScalar indicates no SIMD, or SIMD disabled with WIDE_NO_SIMD.
	DispatchScalar DispatchLevel = iota

	// DispatchSSE2 indicates SSE2 instructions (x86-64 baseline, 128-bit).
	DispatchSSE2

	// DispatchAVX2 indicates AVX2 instructions (256-bit).
	DispatchAVX2

	// DispatchAVX512 indicates AVX-512 instructions (512-bit).
	DispatchAVX512

	// DispatchNEON indicates ARM NEON instructions (128-bit).
	DispatchNEON

	// DispatchSVE indicates ARM SVE instructions (scalable vector).
	DispatchSVE
)

// String returns a human-readable name for the dispatch level.
func (d DispatchLevel) String() string {
	switch d {
	case DispatchScalar:
		return "scalar"
	case DispatchSSE2:
		return "sse2"
	case DispatchAVX2:
		return "avx2"
	case DispatchAVX512:
		return "avx512"
	case DispatchNEON:
		return "neon"
	case DispatchSVE:
		return "sve"
	default:
		return "unknown"
	}
}

// currentLevel is the detected SIMD level for this runtime.
// Set by init() in dispatch_*.go files.
var currentLevel DispatchLevel

// currentWidth is the SIMD register width in bytes for the current level.
// Set by init() in dispatch_*.go files.
var currentWidth int

// CurrentLevel returns the detected SIMD instruction set.
func CurrentLevel() DispatchLevel {
	return currentLevel
}

// CurrentWidth returns the host SIMD register width in bytes.
// For example: 16 for SSE2/NEON, 32 for AVX2, 64 for AVX-512.
func CurrentWidth() int {
	return currentWidth
}

// CurrentName returns a human-readable name for the current SIMD target.
func CurrentName() string {
	return currentLevel.String()
}

// NoSimdEnv checks if the WIDE_NO_SIMD environment variable is set.
// When set, the dispatch report is forced to scalar regardless of CPU
// capabilities.
func NoSimdEnv() bool {
	val := os.Getenv("WIDE_NO_SIMD")
	if val == "" {
		return false
	}
	if b, err := strconv.ParseBool(val); err == nil {
		return b
	}
	return true
}

// NativeLanes returns how many lanes of T fit in one host SIMD register.
func NativeLanes[T Lanes]() int {
	var dummy T
	return currentWidth / int(unsafe.Sizeof(dummy))
}

// FitsRegister reports whether a Vec[T] fits in a single host SIMD register.
func FitsRegister[T Lanes]() bool {
	var v Vec[T]
	return int(unsafe.Sizeof(v)) <= currentWidth
}

func setScalarMode() {
	currentLevel = DispatchScalar
	currentWidth = 16 // Keep 16-byte registers in scalar mode for consistency
}
