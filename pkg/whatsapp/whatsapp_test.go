package whatsapp

import (
	"strings"
	"testing"
)

func TestDigitsOnly(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"+507 6123-4567", "50761234567"},
		{"(507) 6123 4567", "50761234567"},
		{"61234567", "61234567"},
		{"", ""},
		{"abc", ""},
	}

	for _, tt := range tests {
		if got := DigitsOnly(tt.input); got != tt.want {
			t.Errorf("DigitsOnly(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestBuildQuoteMessage(t *testing.T) {
	items := []LineItem{
		{Description: "Pollera de Gala Santeña", Quantity: 1, UnitPriceCents: 45000},
		{Description: "Tembleques", Quantity: 2, UnitPriceCents: 3550},
	}

	got := BuildQuoteMessage("Más Que Polleras", "María", items, 52100)

	want := "Hola María, adjunto tu cotización de Más Que Polleras.\n\n" +
		"*Resumen de tu cotización:*\n" +
		"- Pollera de Gala Santeña: 1 x $450.00 = $450.00\n" +
		"- Tembleques: 2 x $35.50 = $71.00\n" +
		"\n*TOTAL: $521.00*\n\n" +
		"¿Te gustaría proceder con la reserva?"

	if got != want {
		t.Errorf("message mismatch:\ngot:  %q\nwant: %q", got, want)
	}
}

func TestLink(t *testing.T) {
	link := Link("+507 6123-4567", "Hola María")

	if !strings.HasPrefix(link, "https://wa.me/50761234567?text=") {
		t.Errorf("link = %q, want wa.me prefix with bare digits", link)
	}
	if strings.ContainsAny(link, " ") {
		t.Errorf("link contains unescaped spaces: %q", link)
	}
	if !strings.Contains(link, "Hola") {
		t.Errorf("link missing message text: %q", link)
	}
}
