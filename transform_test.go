package tapmap

import (
	"math"
	"testing"
)

const epsilon = 1e-9

func assertNear(t *testing.T, name string, got, want float64) {
	t.Helper()
	if math.Abs(got-want) > epsilon {
		t.Errorf("%s = %v, want %v", name, got, want)
	}
}

func assertMatrix(t *testing.T, name string, got, want [6]float64) {
	t.Helper()
	for i := range got {
		if math.Abs(got[i]-want[i]) > epsilon {
			t.Errorf("%s[%d] = %v, want %v (full: %v vs %v)", name, i, got[i], want[i], got, want)
		}
	}
}

func TestInvertAffineIdentity(t *testing.T) {
	var inv [6]float64
	m := identityTransform
	if !invertAffineInto(&inv, &m) {
		t.Fatal("identity reported singular")
	}
	assertMatrix(t, "inv(identity)", inv, identityTransform)
}

func TestInvertAffineScaleTranslate(t *testing.T) {
	m := [6]float64{2, 0, 0, 4, 10, 20}
	var inv [6]float64
	if !invertAffineInto(&inv, &m) {
		t.Fatal("invertible matrix reported singular")
	}
	assertMatrix(t, "inv", inv, [6]float64{0.5, 0, 0, 0.25, -5, -5})

	x, y := transformPoint(&m, 3, 7)
	bx, by := transformPoint(&inv, x, y)
	assertNear(t, "roundtrip x", bx, 3)
	assertNear(t, "roundtrip y", by, 7)
}

func TestInvertAffineSingular(t *testing.T) {
	tests := []struct {
		name string
		m    [6]float64
	}{
		{"zero scale", [6]float64{0, 0, 0, 0, 5, 5}},
		{"NaN", [6]float64{math.NaN(), 0, 0, 1, 0, 0}},
		{"Inf", [6]float64{math.Inf(1), 0, 0, 1, 0, 0}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			inv := [6]float64{9, 9, 9, 9, 9, 9}
			if invertAffineInto(&inv, &tt.m) {
				t.Error("singular matrix reported invertible")
			}
			assertMatrix(t, "fallback", inv, identityTransform)
		})
	}
}

func TestInvertAffineTinyScale(t *testing.T) {
	m := [6]float64{1e-8, 0, 0, 1e-8, 1, 1}
	var inv [6]float64
	if !invertAffineInto(&inv, &m) {
		t.Fatal("tiny but finite scale reported singular")
	}
	x, y := transformPoint(&inv, 1, 1)
	assertNear(t, "x", x, 0)
	assertNear(t, "y", y, 0)
}
