package units

import (
	"math"
	"testing"
)

func TestRoundTrip(t *testing.T) {
	for _, x := range []float64{0.001, 0.5, 1, 3.5, 7.0, 89, 1234.5678} {
		if got := MMToInches(InchesToMM(x)); math.Abs(got-x) > 1e-9 {
			t.Errorf("MMToInches(InchesToMM(%v)) = %v", x, got)
		}
		if got := CMToInches(InchesToCM(x)); math.Abs(got-x) > 1e-9 {
			t.Errorf("CMToInches(InchesToCM(%v)) = %v", x, got)
		}
		if got := PointsToInches(InchesToPoints(x)); math.Abs(got-x) > 1e-9 {
			t.Errorf("PointsToInches(InchesToPoints(%v)) = %v", x, got)
		}
	}
}

func TestKnownValues(t *testing.T) {
	if got := InchesToMM(1); got != 25.4 {
		t.Errorf("InchesToMM(1) = %v, want 25.4", got)
	}
	if got := MMToInches(89); math.Abs(got-3.504) > 0.001 {
		t.Errorf("MMToInches(89) = %v, want ≈3.504", got)
	}
	if got := CMToInches(2.54); got != 1 {
		t.Errorf("CMToInches(2.54) = %v, want 1", got)
	}
}

func TestFormatScientific(t *testing.T) {
	tests := []struct {
		value     float64
		precision int
		want      string
	}{
		{0, 2, "0"},
		{1.5, 2, "1.50"},
		{0.00014, 2, "1.40×10^-4"},
		{12345, 1, "1.2×10^4"},
		{-0.05, 2, "-5.00×10^-2"},
	}

	for _, tt := range tests {
		if got := FormatScientific(tt.value, tt.precision); got != tt.want {
			t.Errorf("FormatScientific(%v, %d) = %q, want %q", tt.value, tt.precision, got, tt.want)
		}
	}
}
