package floats_test

import (
	"testing"

	"example.com/fuzzy-steer/base/floats"
)

func TestClamp(t *testing.T) {
	tests := []struct {
		name      string
		x, lo, hi float64
		want      float64
	}{
		{name: "Below range", x: -2.0, lo: -1.0, hi: 1.0, want: -1.0},
		{name: "Above range", x: 2.0, lo: -1.0, hi: 1.0, want: 1.0},
		{name: "Inside range", x: 0.5, lo: -1.0, hi: 1.0, want: 0.5},
		{name: "At lower bound", x: -1.0, lo: -1.0, hi: 1.0, want: -1.0},
		{name: "At upper bound", x: 1.0, lo: -1.0, hi: 1.0, want: 1.0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := floats.Clamp(tt.x, tt.lo, tt.hi)
			if got != tt.want {
				t.Errorf("Clamp(%v, %v, %v) = %v, want %v", tt.x, tt.lo, tt.hi, got, tt.want)
			}
		})
	}
}

func TestLerp(t *testing.T) {
	tests := []struct {
		name              string
		x0, y0, x1, y1, x float64
		want              float64
	}{
		{name: "Left endpoint", x0: 0, y0: 0, x1: 2, y1: 1, x: 0, want: 0},
		{name: "Right endpoint", x0: 0, y0: 0, x1: 2, y1: 1, x: 2, want: 1},
		{name: "Midpoint", x0: 0, y0: 0, x1: 2, y1: 1, x: 1, want: 0.5},
		{name: "Flat segment", x0: 0, y0: 1, x1: 2, y1: 1, x: 1.3, want: 1},
		{name: "Zero width segment", x0: 2, y0: 0, x1: 2, y1: 1, x: 2, want: 1},
		{name: "Falling segment", x0: 0, y0: 1, x1: 4, y1: 0, x: 1, want: 0.75},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := floats.Lerp(tt.x0, tt.y0, tt.x1, tt.y1, tt.x)
			if got != tt.want {
				t.Errorf("Lerp(%v, %v, %v, %v, %v) = %v, want %v",
					tt.x0, tt.y0, tt.x1, tt.y1, tt.x, got, tt.want)
			}
		})
	}
}

func TestDot(t *testing.T) {
	got := floats.Dot([]float64{1, 2, 3}, []float64{4, 5, 6})
	if got != 32 {
		t.Errorf("Dot = %v, want 32", got)
	}
	defer func() {
		if recover() == nil {
			t.Errorf("Dot with mismatched lengths did not panic")
		}
	}()
	floats.Dot([]float64{1}, []float64{1, 2})
}

func TestSum(t *testing.T) {
	if got := floats.Sum(nil); got != 0 {
		t.Errorf("Sum(nil) = %v, want 0", got)
	}
	if got := floats.Sum([]float64{0.5, 0.25, 0.25}); got != 1.0 {
		t.Errorf("Sum = %v, want 1.0", got)
	}
}
