package money

import "testing"

func TestFormatCents(t *testing.T) {
	tests := []struct {
		cents int64
		want  string
	}{
		{0, "$0.00"},
		{5, "$0.05"},
		{45000, "$450.00"},
		{3550, "$35.50"},
		{100001, "$1000.01"},
	}

	for _, tt := range tests {
		if got := FormatCents(tt.cents); got != tt.want {
			t.Errorf("FormatCents(%d) = %q, want %q", tt.cents, got, tt.want)
		}
	}
}

func TestParseQuantity(t *testing.T) {
	tests := []struct {
		input string
		want  int
	}{
		{"3", 3},
		{" 2 ", 2},
		{"", 1},
		{"abc", 1},
		{"0", 1},
		{"-4", 1},
		{"2.5", 1},
	}

	for _, tt := range tests {
		if got := ParseQuantity(tt.input); got != tt.want {
			t.Errorf("ParseQuantity(%q) = %d, want %d", tt.input, got, tt.want)
		}
	}
}

func TestParsePriceCents(t *testing.T) {
	tests := []struct {
		input string
		want  int64
	}{
		{"450", 45000},
		{"35.50", 3550},
		{" 12.345 ", 1235},
		{"0.1", 10},
		{"", 0},
		{"abc", 0},
		{"-10", 0},
	}

	for _, tt := range tests {
		if got := ParsePriceCents(tt.input); got != tt.want {
			t.Errorf("ParsePriceCents(%q) = %d, want %d", tt.input, got, tt.want)
		}
	}
}
