package mathutil

import (
	"math"
	"testing"
)

func TestRound(t *testing.T) {
	tests := []struct {
		name     string
		input    float64
		expected float64
	}{
		{"Round down below midpoint", 4.234, 4.23},
		{"Round up above midpoint", 4.236, 4.24},
		{"No rounding needed", 7.5, 7.5},
		{"Subtraction noise", 5.12 - 4.03, 1.09},
		{"Negative delta", -0.479, -0.48},
		{"Zero", 0.0, 0.0},
		{"Very small positive", 0.001, 0.00},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Round(tt.input)
			if math.Abs(result-tt.expected) > 1e-9 {
				t.Errorf("Round(%v) = %v, expected %v", tt.input, result, tt.expected)
			}
		})
	}
}

func TestWithinTolerance(t *testing.T) {
	tests := []struct {
		name      string
		a, b, tol float64
		expected  bool
	}{
		{"Equal", 2.5, 2.5, 0, true},
		{"Inside tolerance", 2.50, 2.505, 0.01, true},
		{"Outside tolerance", 2.50, 2.52, 0.01, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := WithinTolerance(tt.a, tt.b, tt.tol); got != tt.expected {
				t.Errorf("WithinTolerance(%v, %v, %v) = %v, expected %v", tt.a, tt.b, tt.tol, got, tt.expected)
			}
		})
	}
}
