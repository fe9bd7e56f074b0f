package pdf

import (
	"bytes"
	"testing"
)

func TestWrapText(t *testing.T) {
	tests := []struct {
		name  string
		input string
		width int
		want  []string
	}{
		{"empty", "", 10, []string{""}},
		{"fits on one line", "Pollera de Gala", 20, []string{"Pollera de Gala"}},
		{"breaks on spaces", "alquiler de pollera de gala", 12, []string{"alquiler de", "pollera de", "gala"}},
		{"long word gets own line", "confeccion extraordinariamente detallada", 12, []string{"confeccion", "extraordinariamente", "detallada"}},
		{"collapses whitespace runs", "a   b \t c", 10, []string{"a b c"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := WrapText(tt.input, tt.width)
			if len(got) != len(tt.want) {
				t.Fatalf("WrapText(%q, %d) = %v, want %v", tt.input, tt.width, got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("line %d = %q, want %q", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestRenderQuote(t *testing.T) {
	data := &QuoteData{
		Number:       "0042",
		Date:         "15/08/2026",
		BusinessName: "Más Que Polleras",
		Tagline:      "Alquiler y Confección de Polleras",
		ClientName:   "María Fernández",
		Service:      "Alquiler de pollera de gala para presentación folclórica en Las Tablas",
		Phone:        "+50761234567",
		EventDate:    "10/11/2026",
		Items: []QuoteItem{
			{Description: "Pollera de Gala Santeña", Quantity: 1, UnitPriceCents: 45000},
			{Description: "Juego de tembleques completo para el peinado tradicional", Quantity: 1, UnitPriceCents: 12000},
		},
		TotalCents: 57000,
	}

	content, err := RenderQuote(data)
	if err != nil {
		t.Fatalf("RenderQuote: %v", err)
	}
	if !bytes.HasPrefix(content, []byte("%PDF")) {
		t.Errorf("output does not start with a PDF header")
	}
}

func TestRenderQuoteEmptyOptionalFields(t *testing.T) {
	data := &QuoteData{
		Number:       "0001",
		Date:         "01/01/2026",
		BusinessName: "Más Que Polleras",
		Tagline:      "Alquiler y Confección de Polleras",
		ClientName:   "Cliente",
		Items: []QuoteItem{
			{Description: "Ajuste de basquiña", Quantity: 1, UnitPriceCents: 2500},
		},
		TotalCents: 2500,
	}

	content, err := RenderQuote(data)
	if err != nil {
		t.Fatalf("RenderQuote: %v", err)
	}
	if len(content) == 0 {
		t.Error("empty PDF content")
	}
}

func TestQuoteItemSubtotal(t *testing.T) {
	item := QuoteItem{Description: "Tembleques", Quantity: 3, UnitPriceCents: 1500}
	if got := item.SubtotalCents(); got != 4500 {
		t.Errorf("SubtotalCents = %d, want 4500", got)
	}
}

func TestWrapTextNeverReturnsEmptySlice(t *testing.T) {
	for _, input := range []string{"", "   ", "word"} {
		if got := WrapText(input, 5); len(got) == 0 {
			t.Errorf("WrapText(%q) returned empty slice", input)
		}
	}
}
