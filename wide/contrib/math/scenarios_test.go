//go:build !wide2 && !wide8 && !wide16

package math

import (
	stdmath "math"
	"testing"

	"github.com/go-wide/go-wide/wide"
)

func checkNear(t *testing.T, name string, got wide.Vec[float32], want [wide.Width]float64, tol float64) {
	t.Helper()
	for i := range wide.Width {
		if d := stdmath.Abs(float64(got.Lane(i)) - want[i]); d > tol {
			t.Errorf("%s: lane %d: got %v, want %v (±%v)", name, i, got.Lane(i), want[i], tol)
		}
	}
}

func TestFourLaneKernels(t *testing.T) {
	fx := wide.LoadArray([wide.Width]float32{1, 2, 3, 4})
	roots := [wide.Width]float64{1, stdmath.Sqrt2, stdmath.Sqrt(3), 2}
	checkNear(t, "SqrtNR", SqrtNR(fx), roots, 0.001)
	checkNear(t, "SqrtBS", SqrtBS(fx), roots, 0.001)

	ft := [wide.Width]float32{1.03887, 3.23122, 4.79108, 3.70818}
	var sin, cos, tan [wide.Width]float64
	for i, x := range ft {
		sin[i] = stdmath.Sin(float64(x))
		cos[i] = stdmath.Cos(float64(x))
		tan[i] = stdmath.Tan(float64(x))
	}
	checkNear(t, "Sin", Sin(wide.LoadArray(ft)), sin, 0.001)
	checkNear(t, "Cos", Cos(wide.LoadArray(ft)), cos, 0.001)
	checkNear(t, "Tan", Tan(wide.LoadArray(ft)), tan, 0.2)

	fu := [wide.Width]float32{-0.887, 0.887, 0, 1}
	var asin [wide.Width]float64
	for i, s := range fu {
		asin[i] = stdmath.Asin(float64(s))
	}
	checkNear(t, "AsinNR", AsinNR(wide.LoadArray(fu)), asin, 0.01)
	checkNear(t, "AsinBS", AsinBS(wide.LoadArray(fu)), asin, 0.01)
}

func TestFourLaneSqrtNegative(t *testing.T) {
	got := SqrtNR(wide.LoadArray([wide.Width]float32{-1, 4, -9, 16}))
	for _, i := range []int{0, 2} {
		if !stdmath.IsNaN(float64(got.Lane(i))) {
			t.Errorf("SqrtNR: lane %d: got %v, want NaN", i, got.Lane(i))
		}
	}
	if got.Lane(1) < 1.999 || got.Lane(1) > 2.001 || got.Lane(3) < 3.999 || got.Lane(3) > 4.001 {
		t.Errorf("SqrtNR: got %v, want [NaN 2 NaN 4]", got.Array())
	}
}

func TestFourLanePow(t *testing.T) {
	got := Pow(wide.LoadArray([wide.Width]float32{2, 3, 16, 5}), wide.LoadArray([wide.Width]float32{3, -2, 0.5, 0}))
	checkNear(t, "Pow", got, [wide.Width]float64{8, 1.0 / 9, 4, 1}, 1e-3)
}
