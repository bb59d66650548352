package calc

import (
	"math"
	"strconv"
)

// MaxFractionDigits is the number of fractional digits a result keeps.
const MaxFractionDigits = 4

// Values at or beyond this magnitude have no fractional part worth rounding,
// and scaling them could overflow.
const roundLimit = 1e15

// Format renders v for the display: rounded half away from zero to
// MaxFractionDigits places, with trailing zeros and a bare '.' removed.
//
// Rounding is applied to the scaled product v*1e4, which is itself rounded to
// the nearest float64. A decimal tie stored slightly off the halfway point,
// such as 2.00005, usually scales to an exact .5 and then rounds away from zero.
func Format(v float64) string {
	if math.IsInf(v, 0) || math.IsNaN(v) {
		return strconv.FormatFloat(v, 'f', -1, 64)
	}
	if math.Abs(v) < roundLimit {
		const scale = 1e4
		v = math.Round(v*scale) / scale
	}
	if v == 0 {
		// Drops the sign of -0.
		v = 0
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}
