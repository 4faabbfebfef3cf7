package fuzzy_test

import (
	"testing"

	"example.com/fuzzy-steer/core/fuzzy"
)

func TestNewUniverse(t *testing.T) {
	tests := []struct {
		name           string
		min, max, step float64
		wantLen        int
		wantErr        bool
	}{
		{name: "Unit step", min: 0, max: 10, step: 1, wantLen: 11},
		{name: "Signed domain", min: -30, max: 30, step: 1, wantLen: 61},
		{name: "Fractional step", min: 0, max: 1, step: 0.25, wantLen: 5},
		{name: "Zero step", min: 0, max: 10, step: 0, wantErr: true},
		{name: "Negative step", min: 0, max: 10, step: -1, wantErr: true},
		{name: "Empty range", min: 10, max: 10, step: 1, wantErr: true},
		{name: "Inverted range", min: 10, max: 0, step: 1, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			u, err := fuzzy.NewUniverse(tt.min, tt.max, tt.step)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("NewUniverse(%v, %v, %v) did not fail", tt.min, tt.max, tt.step)
				}
				return
			}
			if err != nil {
				t.Fatalf("NewUniverse(%v, %v, %v): %v", tt.min, tt.max, tt.step, err)
			}
			if u.Len() != tt.wantLen {
				t.Errorf("length: got %d, want %d", u.Len(), tt.wantLen)
			}
			samples := u.Samples()
			for i := 1; i < len(samples); i++ {
				if samples[i] <= samples[i-1] {
					t.Fatalf("samples not strictly increasing at %d: %v, %v", i, samples[i-1], samples[i])
				}
			}
			if samples[0] != tt.min {
				t.Errorf("first sample: got %v, want %v", samples[0], tt.min)
			}
			if u.Max() != samples[len(samples)-1] {
				t.Errorf("max: got %v, want last sample %v", u.Max(), samples[len(samples)-1])
			}
		})
	}
}
