package utils

import "testing"

func TestFileSafeName(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"María Fernández", "María_Fernández"},
		{"  Ana   López  ", "_Ana_López_"},
		{"SinEspacios", "SinEspacios"},
		{"tab\tand\nnewline", "tab_and_newline"},
	}

	for _, tt := range tests {
		if got := FileSafeName(tt.input); got != tt.want {
			t.Errorf("FileSafeName(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}
