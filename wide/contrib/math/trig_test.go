package math

import (
	stdmath "math"
	"testing"

	"github.com/go-wide/go-wide/wide"
)

var trigAngles = []float64{1.03887, 3.23122, 4.79108, 3.70818, 0, 0.5, -2, 10, -7.5, 100}

func TestSinCosTan(t *testing.T) {
	for _, x := range trigAngles {
		v := wide.Set(float32(x))
		s, c, tn := Sin(v), Cos(v), Tan(v)
		for i := range wide.Width {
			if d := stdmath.Abs(float64(s.Lane(i)) - stdmath.Sin(x)); d > 0.0015 {
				t.Errorf("Sin(%v): lane %d: got %v, want %v", x, i, s.Lane(i), stdmath.Sin(x))
			}
			if d := stdmath.Abs(float64(c.Lane(i)) - stdmath.Cos(x)); d > 0.0015 {
				t.Errorf("Cos(%v): lane %d: got %v, want %v", x, i, c.Lane(i), stdmath.Cos(x))
			}
			if stdmath.Abs(stdmath.Cos(x)) > 0.1 {
				if d := stdmath.Abs(float64(tn.Lane(i)) - stdmath.Tan(x)); d > 0.2 {
					t.Errorf("Tan(%v): lane %d: got %v, want %v", x, i, tn.Lane(i), stdmath.Tan(x))
				}
			}
		}
	}
}

func TestSinFloat64(t *testing.T) {
	for x := -10.0; x <= 10; x += 0.37 {
		got := Sin(wide.Set(x)).Lane(0)
		if d := stdmath.Abs(got - stdmath.Sin(x)); d > 0.0015 {
			t.Errorf("Sin(%v): got %v, want %v", x, got, stdmath.Sin(x))
		}
	}
}

func TestAsin(t *testing.T) {
	kernels := []struct {
		name string
		f    func(wide.Vec[float32]) wide.Vec[float32]
	}{
		{"AsinNR", AsinNR[float32]},
		{"AsinBS", AsinBS[float32]},
	}
	inputs := []float64{-0.887, 0.887, 0, 1, -1, 0.5, -0.3, 0.99}

	for _, k := range kernels {
		t.Run(k.name, func(t *testing.T) {
			for _, s := range inputs {
				got := k.f(wide.Set(float32(s)))
				want := stdmath.Asin(s)
				for i := range wide.Width {
					if d := stdmath.Abs(float64(got.Lane(i)) - want); d > 0.02 {
						t.Errorf("%s(%v): lane %d: got %v, want %v", k.name, s, i, got.Lane(i), want)
					}
				}
			}
		})
	}
}

func TestAsinInvertsSin(t *testing.T) {
	for _, x := range []float64{-1.2, -0.4, 0.1, 0.9, 1.4} {
		s := Sin(wide.Set(x))
		for _, f := range []func(wide.Vec[float64]) wide.Vec[float64]{AsinNR[float64], AsinBS[float64]} {
			got := f(s).Lane(0)
			if d := stdmath.Abs(got - x); d > 0.02 {
				t.Errorf("asin(Sin(%v)): got %v", x, got)
			}
		}
	}
}

func TestAsinOutOfRange(t *testing.T) {
	for _, f := range []func(wide.Vec[float64]) wide.Vec[float64]{AsinNR[float64], AsinBS[float64]} {
		got := f(wide.Set(1.5))
		for i := range wide.Width {
			if !stdmath.IsNaN(got.Lane(i)) {
				t.Errorf("asin(1.5): lane %d: got %v, want NaN", i, got.Lane(i))
			}
		}
	}
}

// In float32 sinPoly(-π/2) rounds just above -1, so the bracket ends must
// not decide which half keeps the root.
func TestAsinBSFloat32Endpoints(t *testing.T) {
	var in [wide.Width]float32
	for i := range in {
		in[i] = []float32{-1, 1, -0.9999999, 0.9999999}[i%4]
	}
	got := AsinBS(wide.LoadArray(in))
	for i := range wide.Width {
		want := stdmath.Asin(float64(in[i]))
		if d := stdmath.Abs(float64(got.Lane(i)) - want); d > 0.01 {
			t.Errorf("AsinBS(%v): lane %d: got %v, want %v", in[i], i, got.Lane(i), want)
		}
	}
}
