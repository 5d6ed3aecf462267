package utils

import (
	"math"
	"testing"
)

func TestEasingEndpoints(t *testing.T) {
	funcs := map[string]func(float64) float64{
		"EaseInOutCubic": EaseInOutCubic,
		"EaseOutQuad":    EaseOutQuad,
	}

	for name, f := range funcs {
		if got := f(0); math.Abs(got) > 1e-9 {
			t.Errorf("%s(0) = %v, want 0", name, got)
		}
		if got := f(1); math.Abs(got-1) > 1e-9 {
			t.Errorf("%s(1) = %v, want 1", name, got)
		}
	}
}

func TestEaseInOutCubicMidpoint(t *testing.T) {
	if got := EaseInOutCubic(0.5); math.Abs(got-0.5) > 1e-9 {
		t.Errorf("EaseInOutCubic(0.5) = %v, want 0.5", got)
	}
}

func TestClamp01(t *testing.T) {
	tests := []struct{ in, want float64 }{
		{-1, 0}, {0, 0}, {0.25, 0.25}, {1, 1}, {3, 1},
	}
	for _, tt := range tests {
		if got := Clamp01(tt.in); got != tt.want {
			t.Errorf("Clamp01(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestLerpAndInverseLerp(t *testing.T) {
	if got := Lerp(0.8, 1.3, 0.5); math.Abs(got-1.05) > 1e-9 {
		t.Errorf("Lerp = %v, want 1.05", got)
	}
	if got := InverseLerp(0.8, 1.3, 1.05); math.Abs(got-0.5) > 1e-9 {
		t.Errorf("InverseLerp = %v, want 0.5", got)
	}
	if got := InverseLerp(1, 1, 5); got != 0 {
		t.Errorf("InverseLerp with empty range = %v, want 0", got)
	}
}
