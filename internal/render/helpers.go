package render

import (
	"fmt"
	"strconv"
	"strings"
)

// Missing returns MissingValue if string is empty
func Missing(s string) string {
	if s == "" {
		return MissingValue
	}
	return s
}

// NA returns NAValue if string is empty
func NA(s string) string {
	if s == "" {
		return NAValue
	}
	return s
}

// Truncate truncates a string to max runes
func Truncate(s string, max int) string {
	rr := []rune(s)
	if len(rr) <= max {
		return s
	}
	if max <= 3 {
		return string(rr[:max])
	}
	return string(rr[:max-3]) + "..."
}

// AsCount formats a count (0 shows as "0")
func AsCount(n int) string {
	return strconv.Itoa(n)
}

// AsPercent formats n as a share of total.
func AsPercent(n, total int) string {
	if total <= 0 {
		return NAValue
	}
	return fmt.Sprintf("%.1f%%", float64(n)*100/float64(total))
}

// Bar draws a horizontal bar of width cells scaled against maxVal.
func Bar(n, maxVal, width int) string {
	if n <= 0 || maxVal <= 0 || width <= 0 {
		return ""
	}
	w := n * width / maxVal
	if w == 0 {
		w = 1
	}
	return strings.Repeat("█", w)
}
