package calc

import (
	"math"
	"strconv"
)

// Format renders a result for display. Whole numbers have no decimal point,
// so 4/2 renders as "2" rather than "2.0". Other values use the shortest
// representation that parses back to the same float64.
func Format(x float64) string {
	if IsIntegral(x) {
		if x == 0 {
			// Includes -0.
			return "0"
		}
		return strconv.FormatFloat(x, 'f', -1, 64)
	}
	return strconv.FormatFloat(x, 'g', -1, 64)
}

// IsIntegral reports whether Format renders x as an integer.
func IsIntegral(x float64) bool {
	return x == math.Trunc(x) && !math.IsInf(x, 0)
}
