// Package units converts between the length units used in journal author
// guidelines and formats numbers for figure annotations.
//
// Journal specifications are stored in inches because that is what the
// plotting surface consumes; guidelines are usually published in millimetres
// or centimetres.
//
//	w := units.MMToInches(89) // Nature single column, ≈ 3.5"
package units

import (
	"fmt"
	"math"
)

const (
	mmPerInch     = 25.4
	cmPerInch     = 2.54
	pointsPerInch = 72.0
)

// InchesToMM converts inches to millimetres.
func InchesToMM(in float64) float64 { return in * mmPerInch }

// MMToInches converts millimetres to inches.
func MMToInches(mm float64) float64 { return mm / mmPerInch }

// CMToInches converts centimetres to inches.
func CMToInches(cm float64) float64 { return cm / cmPerInch }

// InchesToCM converts inches to centimetres.
func InchesToCM(in float64) float64 { return in * cmPerInch }

// PointsToInches converts typographic points to inches.
func PointsToInches(pt float64) float64 { return pt / pointsPerInch }

// InchesToPoints converts inches to typographic points.
func InchesToPoints(in float64) float64 { return in * pointsPerInch }

// FormatScientific renders value as "m×10^e" with precision decimal places
// in the mantissa. Zero renders as "0" and values whose exponent is zero are
// rendered in fixed-point notation.
func FormatScientific(value float64, precision int) string {
	if value == 0 {
		return "0"
	}
	exp := int(math.Floor(math.Log10(math.Abs(value))))
	if exp == 0 {
		return fmt.Sprintf("%.*f", precision, value)
	}
	mantissa := value / math.Pow(10, float64(exp))
	return fmt.Sprintf("%.*f×10^%d", precision, mantissa, exp)
}
