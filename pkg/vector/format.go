package vector

import (
	"math"
	"strconv"
	"strings"
)

// Epsilon is the per-component tolerance used by Equal.
const Epsilon = 1e-7

// ApproxEqual reports whether a and b differ by less than Epsilon.
func ApproxEqual(a, b float64) bool {
	return math.Abs(a-b) < Epsilon
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}

// formatList renders components as "[a, b, c]".
func formatList(cs ...float64) string {
	var b strings.Builder
	b.WriteByte('[')
	for i, c := range cs {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(formatFloat(c))
	}
	b.WriteByte(']')
	return b.String()
}

// formatFields renders named components as "name(x=a, y=b)".
func formatFields(name string, cs ...float64) string {
	const axes = "xyz"
	var b strings.Builder
	b.WriteString(name)
	b.WriteByte('(')
	for i, c := range cs {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteByte(axes[i])
		b.WriteByte('=')
		b.WriteString(formatFloat(c))
	}
	b.WriteByte(')')
	return b.String()
}

// checkMagnitude validates a magnitude used as a divisor.
func checkMagnitude(m float64) error {
	if math.IsNaN(m) || math.IsInf(m, 0) {
		return ErrNonFinite
	}
	if m == 0 {
		return ErrZeroVector
	}
	return nil
}

func degrees(rad float64) float64 {
	return rad * 180 / math.Pi
}
