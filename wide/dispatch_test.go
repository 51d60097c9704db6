package wide

import (
	"os"
	"testing"
	"unsafe"
)

func TestDispatchReport(t *testing.T) {
	if CurrentWidth() < 16 {
		t.Errorf("CurrentWidth: got %d, want at least 16", CurrentWidth())
	}
	if CurrentName() == "unknown" {
		t.Errorf("CurrentName: got %q for level %d", CurrentName(), CurrentLevel())
	}
	if got, want := NativeLanes[float32](), CurrentWidth()/4; got != want {
		t.Errorf("NativeLanes[float32]: got %d, want %d", got, want)
	}
	want := int(unsafe.Sizeof(Vec[float64]{})) <= CurrentWidth()
	if FitsRegister[float64]() != want {
		t.Errorf("FitsRegister[float64]: got %v, want %v", FitsRegister[float64](), want)
	}
}

func TestDispatchLevelString(t *testing.T) {
	tests := []struct {
		level DispatchLevel
		want  string
	}{
		{DispatchScalar, "scalar"},
		{DispatchSSE2, "sse2"},
		{DispatchAVX2, "avx2"},
		{DispatchAVX512, "avx512"},
		{DispatchNEON, "neon"},
		{DispatchSVE, "sve"},
		{DispatchLevel(99), "unknown"},
	}
	for _, tt := range tests {
		if got := tt.level.String(); got != tt.want {
			t.Errorf("DispatchLevel(%d).String(): got %q, want %q", tt.level, got, tt.want)
		}
	}
}

func TestNoSimdEnv(t *testing.T) {
	tests := []struct {
		val  string
		want bool
	}{
		{"", false},
		{"1", true},
		{"true", true},
		{"false", false},
		{"0", false},
		{"yes", true},
	}
	for _, tt := range tests {
		t.Run(tt.val, func(t *testing.T) {
			t.Setenv("WIDE_NO_SIMD", tt.val)
			if tt.val == "" {
				os.Unsetenv("WIDE_NO_SIMD")
			}
			if got := NoSimdEnv(); got != tt.want {
				t.Errorf("NoSimdEnv(%q): got %v, want %v", tt.val, got, tt.want)
			}
		})
	}
}
