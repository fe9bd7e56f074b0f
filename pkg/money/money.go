package money

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// FormatCents renders an amount stored in cents as a dollar string,
// e.g. 45000 -> "$450.00".
func FormatCents(cents int64) string {
	return fmt.Sprintf("$%.2f", float64(cents)/100)
}

// ParseQuantity converts user input into a line item quantity.
// Empty, non-numeric or non-positive input falls back to 1.
func ParseQuantity(s string) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n <= 0 {
		return 1
	}
	return n
}

// ParsePriceCents converts user input into a unit price in cents.
// Empty or non-numeric input falls back to 0; negative amounts are
// clamped to 0.
func ParsePriceCents(s string) int64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || v < 0 {
		return 0
	}
	return int64(math.Round(v * 100))
}
