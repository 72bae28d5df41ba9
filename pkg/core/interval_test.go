package core

import (
	"math"
	"testing"
)

func TestInterval_ContainsAndSurrounds(t *testing.T) {
	interval := NewInterval(1, 2)

	tests := []struct {
		name      string
		x         float64
		contains  bool
		surrounds bool
	}{
		{"Below", 0.5, false, false},
		{"Lower bound", 1, true, false},
		{"Inside", 1.5, true, true},
		{"Upper bound", 2, true, false},
		{"Above", 3, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := interval.Contains(tt.x); got != tt.contains {
				t.Errorf("Contains(%f) = %v, expected %v", tt.x, got, tt.contains)
			}
			if got := interval.Surrounds(tt.x); got != tt.surrounds {
				t.Errorf("Surrounds(%f) = %v, expected %v", tt.x, got, tt.surrounds)
			}
		})
	}
}

func TestInterval_Clamp(t *testing.T) {
	interval := NewInterval(5.0, 10.0)

	if got := interval.Clamp(2.0); got != 5.0 {
		t.Errorf("Expected 5.0, got %f", got)
	}
	if got := interval.Clamp(100.0); got != 10.0 {
		t.Errorf("Expected 10.0, got %f", got)
	}
	if got := interval.Clamp(6.5); got != 6.5 {
		t.Errorf("Expected 6.5, got %f", got)
	}
	x := 5.0 + math.Pi
	if got := interval.Clamp(x); got != x {
		t.Errorf("Expected %f, got %f", x, got)
	}
}

func TestInterval_EmptyAndUniverse(t *testing.T) {
	for _, x := range []float64{-1e300, -1, 0, 1, 1e300} {
		if EmptyInterval.Contains(x) || EmptyInterval.Surrounds(x) {
			t.Errorf("Empty interval should not contain %g", x)
		}
		if !UniverseInterval.Contains(x) || !UniverseInterval.Surrounds(x) {
			t.Errorf("Universe interval should surround %g", x)
		}
	}

	if EmptyInterval.Size() >= 0 {
		t.Errorf("Empty interval size should be negative, got %f", EmptyInterval.Size())
	}
	if got := NewInterval(0.25, 1).Size(); got != 0.75 {
		t.Errorf("Expected size 0.75, got %f", got)
	}
}
