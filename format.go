package calc

import (
	"math"
	"strconv"
	"strings"
)

// FormatNumber renders a value for display. Values print with six decimal
// places, less trailing zeros and any trailing decimal point. When the part
// before the decimal point is longer than ten characters, the value prints in
// scientific notation instead. Negative zero prints as 0.
func FormatNumber(v float64) string {
	switch {
	case math.IsNaN(v):
		return "nan"
	case math.IsInf(v, 1):
		return "inf"
	case math.IsInf(v, -1):
		return "-inf"
	}
	s := strconv.FormatFloat(v, 'f', 6, 64)
	if strings.IndexByte(s, '.') > 10 {
		return strconv.FormatFloat(v, 'e', 10, 64)
	}
	s = strings.TrimSuffix(strings.TrimRight(s, "0"), ".")
	if s == "-0" {
		return "0"
	}
	return s
}
