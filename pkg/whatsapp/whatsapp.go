package whatsapp

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/masquepolleras/polleras-api/pkg/money"
)

// LineItem is one entry of the quote summary sent over WhatsApp
type LineItem struct {
	Description    string
	Quantity       int
	UnitPriceCents int64
}

// DigitsOnly strips every non-numeric character from a phone number,
// leaving the bare digits wa.me expects.
func DigitsOnly(phone string) string {
	var b strings.Builder
	for _, r := range phone {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// BuildQuoteMessage builds the plain-text quote summary: greeting, one
// line per item, emphasized total and a closing question.
func BuildQuoteMessage(businessName, clientName string, items []LineItem, totalCents int64) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Hola %s, adjunto tu cotización de %s.\n\n", clientName, businessName)
	b.WriteString("*Resumen de tu cotización:*\n")
	for _, item := range items {
		subtotal := int64(item.Quantity) * item.UnitPriceCents
		fmt.Fprintf(&b, "- %s: %d x %s = %s\n",
			item.Description, item.Quantity,
			money.FormatCents(item.UnitPriceCents), money.FormatCents(subtotal))
	}
	fmt.Fprintf(&b, "\n*TOTAL: %s*\n\n", money.FormatCents(totalCents))
	b.WriteString("¿Te gustaría proceder con la reserva?")
	return b.String()
}

// Link builds a wa.me click-to-chat URL for the given phone and message
func Link(phone, message string) string {
	return "https://wa.me/" + DigitsOnly(phone) + "?text=" + url.QueryEscape(message)
}
