package affine

import (
	"math"
	"strconv"
	"strings"
)

// formatNumber renders a float64 the way a JavaScript engine prints a number: the
// shortest decimal that round trips, fixed notation for magnitudes in [1e-6, 1e21)
// and exponent notation with an explicit sign otherwise.
func formatNumber(value float64) string {
	switch {
	case math.IsNaN(value):
		return "NaN"
	case math.IsInf(value, 1):
		return "Infinity"
	case math.IsInf(value, -1):
		return "-Infinity"
	case value == 0:
		// covers negative zero as well
		return "0"
	}

	abs := math.Abs(value)
	if abs >= 1e-6 && abs < 1e21 {
		return strconv.FormatFloat(value, 'f', -1, 64)
	}

	// go renders the exponent with at least two digits, e.g. 1e-07
	str := strconv.FormatFloat(value, 'e', -1, 64)
	mantissa, exponent, _ := strings.Cut(str, "e")

	sign := exponent[:1]
	digits := strings.TrimLeft(exponent[1:], "0")

	return mantissa + "e" + sign + digits
}

func formatNumbers(name string, values ...float64) string {
	var sb strings.Builder
	sb.WriteString(name)
	sb.WriteByte('(')

	for idx, value := range values {
		if idx > 0 {
			sb.WriteByte(',')
		}

		sb.WriteString(formatNumber(value))
	}

	sb.WriteByte(')')
	return sb.String()
}
