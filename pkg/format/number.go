// Package format renders KPI values for cards and reports.
package format

import (
	"fmt"
	"math"
	"strings"
)

// Amount returns a whole number with thousands separators (e.g., "5,123").
func Amount(value float64) string {
	formatted := groupDigits(fmt.Sprintf("%.0f", math.Abs(value)))
	if math.Round(value) < 0 {
		return "-" + formatted
	}
	return formatted
}

// SignedAmount returns a whole number delta that always carries its sign
// (e.g., "+230", "-1,020", "+0").
func SignedAmount(delta float64) string {
	if math.Round(delta) < 0 {
		return Amount(delta)
	}
	return "+" + Amount(delta)
}

// Percent returns a two-decimal percentage (e.g., "4.56%").
func Percent(value float64) string {
	return fmt.Sprintf("%.2f%%", value)
}

// SignedPoints returns a percentage-point delta with its sign
// (e.g., "+0.25 pp", "-1.09 pp").
func SignedPoints(delta float64) string {
	s := fmt.Sprintf("%+.2f", delta)
	if s == "-0.00" {
		s = "+0.00"
	}
	return s + " pp"
}

func groupDigits(intPart string) string {
	if len(intPart) <= 3 {
		return intPart
	}
	var builder strings.Builder
	for i, digit := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			builder.WriteByte(',')
		}
		builder.WriteRune(digit)
	}
	return builder.String()
}
