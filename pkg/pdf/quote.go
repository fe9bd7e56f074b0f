package pdf

import (
	"fmt"
	"strings"

	"github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/image"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/extension"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/orientation"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/masquepolleras/polleras-api/pkg/money"
)

// Brand palette
var (
	colorDark  = props.Color{Red: 26, Green: 26, Blue: 26}
	colorGold  = props.Color{Red: 184, Green: 158, Blue: 80}
	colorIvory = props.Color{Red: 245, Green: 245, Blue: 240}
	colorAlt   = props.Color{Red: 250, Green: 250, Blue: 245}
	colorGray  = props.Color{Red: 100, Green: 100, Blue: 100}
	colorWhite = props.Color{Red: 255, Green: 255, Blue: 255}
)

// serviceWrapWidth is the character budget per wrapped line of the
// client's service text.
const serviceWrapWidth = 40

// descriptionWrapWidth is the character budget per line of an item
// description inside the table.
const descriptionWrapWidth = 48

// QuoteItem is one line of the quote table
type QuoteItem struct {
	Description    string
	Quantity       int
	UnitPriceCents int64
}

// SubtotalCents is the derived line total, never stored
func (i QuoteItem) SubtotalCents() int64 {
	return int64(i.Quantity) * i.UnitPriceCents
}

// QuoteData carries everything the quote document renders
type QuoteData struct {
	Number       string
	Date         string
	BusinessName string
	Tagline      string
	Logo         []byte // optional PNG bytes; skipped when empty or broken
	ClientName   string
	Service      string
	Phone        string
	Email        string
	EventDate    string
	Items        []QuoteItem
	TotalCents   int64
}

// quoteTerms are the fixed conditions printed on every quote
var quoteTerms = []string{
	"1. Esta cotización tiene una validez de 15 días calendario.",
	"2. Para reservar la fecha se requiere un abono del 50%.",
	"3. Los precios de alquiler pueden variar según el estado de la pieza.",
	"4. El cliente es responsable del cuidado de la indumentaria durante el alquiler.",
}

// RenderQuote builds the quote PDF and returns its raw bytes. Rows are
// appended top to bottom, so a long service block or item table pushes
// everything after it further down the page.
func RenderQuote(data *QuoteData) ([]byte, error) {
	cfg := config.NewBuilder().
		WithOrientation(orientation.Vertical).
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).
		WithTopMargin(10).
		WithRightMargin(10).
		Build()

	m := maroto.New(cfg)

	addHeader(m, data)
	addClientBlock(m, data)
	addItemsTable(m, data)
	addTerms(m)

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("failed to generate quote PDF: %w", err)
	}

	return doc.GetBytes(), nil
}

// addHeader paints the dark brand band: logo, business name and
// tagline on the left, title, quote number and date on the right.
func addHeader(m core.Maroto, data *QuoteData) {
	darkCell := &props.Cell{BackgroundColor: &colorDark}

	logoCol := col.New(2).WithStyle(darkCell)
	if len(data.Logo) > 0 {
		logoCol = col.New(2).Add(
			image.NewFromBytes(data.Logo, extension.Png, props.Rect{
				Center:  true,
				Percent: 90,
			}),
		).WithStyle(darkCell)
	}

	m.AddRows(
		row.New(14).Add(
			logoCol,
			col.New(6).Add(
				text.New(data.BusinessName, props.Text{
					Size:  18,
					Style: fontstyle.Bold,
					Align: align.Left,
					Color: &colorGold,
					Top:   3,
				}),
				text.New(data.Tagline, props.Text{
					Size:  10,
					Align: align.Left,
					Color: &colorIvory,
					Top:   11,
				}),
			).WithStyle(darkCell),
			col.New(4).Add(
				text.New("COTIZACIÓN", props.Text{
					Size:  14,
					Style: fontstyle.Bold,
					Align: align.Right,
					Color: &colorGold,
					Top:   3,
				}),
				text.New("N°- "+data.Number, props.Text{
					Size:  9,
					Align: align.Right,
					Color: &colorIvory,
					Top:   9,
				}),
				text.New("Fecha: "+data.Date, props.Text{
					Size:  9,
					Align: align.Right,
					Color: &colorIvory,
					Top:   13,
				}),
			).WithStyle(darkCell),
		),
	)

	m.AddRows(row.New(6))
}

// addClientBlock lays out the client details. The service text is
// wrapped at a fixed width and every extra line becomes its own row,
// so the event date and everything below land after the wrapped block.
func addClientBlock(m core.Maroto, data *QuoteData) {
	labelStyle := props.Text{
		Size:  12,
		Style: fontstyle.Bold,
		Align: align.Left,
		Color: &colorGold,
	}
	valueStyle := props.Text{
		Size:  10,
		Align: align.Left,
	}
	boldValue := props.Text{
		Size:  10,
		Style: fontstyle.Bold,
		Align: align.Left,
	}

	m.AddRows(
		row.New(8).Add(
			col.New(12).Add(text.New("Información del Cliente", labelStyle)),
		),
	)

	service := data.Service
	if service == "" {
		service = "Varios"
	}
	serviceLines := WrapText(service, serviceWrapWidth)

	m.AddRows(
		row.New(6).Add(
			col.New(6).Add(text.New("Nombre: "+data.ClientName, valueStyle)),
			col.New(2).Add(text.New("Servicio:", boldValue)),
			col.New(4).Add(text.New(serviceLines[0], valueStyle)),
		),
	)

	phone := orNA(data.Phone)
	if len(serviceLines) > 1 {
		m.AddRows(
			row.New(6).Add(
				col.New(6).Add(text.New("Teléfono: "+phone, valueStyle)),
				col.New(2),
				col.New(4).Add(text.New(serviceLines[1], valueStyle)),
			),
		)
		for _, line := range serviceLines[2:] {
			m.AddRows(
				row.New(6).Add(
					col.New(8),
					col.New(4).Add(text.New(line, valueStyle)),
				),
			)
		}
	} else {
		m.AddRows(
			row.New(6).Add(
				col.New(12).Add(text.New("Teléfono: "+phone, valueStyle)),
			),
		)
	}

	eventCol := col.New(6)
	if data.EventDate != "" {
		eventCol = col.New(6).Add(text.New("Fecha Evento: "+data.EventDate, valueStyle))
	}
	m.AddRows(
		row.New(6).Add(
			col.New(6).Add(text.New("Email: "+orNA(data.Email), valueStyle)),
			eventCol,
		),
	)

	m.AddRows(row.New(4))
}

// addItemsTable renders the line items with a styled header row and a
// dark footer row carrying the estimated total.
func addItemsTable(m core.Maroto, data *QuoteData) {
	headerCell := &props.Cell{BackgroundColor: &colorGold}
	headerText := props.Text{
		Size:  9,
		Style: fontstyle.Bold,
		Align: align.Left,
		Color: &colorWhite,
	}
	headerTextRight := headerText
	headerTextRight.Align = align.Right

	m.AddRows(
		row.New(8).Add(
			col.New(6).Add(text.New("Descripción", headerText)).WithStyle(headerCell),
			col.New(2).Add(text.New("Cant.", headerTextRight)).WithStyle(headerCell),
			col.New(2).Add(text.New("Precio Unit.", headerTextRight)).WithStyle(headerCell),
			col.New(2).Add(text.New("Subtotal", headerTextRight)).WithStyle(headerCell),
		),
	)

	for i, item := range data.Items {
		bodyText := props.Text{Size: 9, Align: align.Left}
		bodyTextRight := props.Text{Size: 9, Align: align.Right}

		var cellStyle *props.Cell
		if i%2 == 1 {
			cellStyle = &props.Cell{BackgroundColor: &colorAlt}
		}

		lines := WrapText(item.Description, descriptionWrapWidth)

		colDesc := col.New(6).Add(text.New(lines[0], bodyText))
		colQty := col.New(2).Add(text.New(fmt.Sprintf("%d", item.Quantity), bodyTextRight))
		colPrice := col.New(2).Add(text.New(money.FormatCents(item.UnitPriceCents), bodyTextRight))
		colSubtotal := col.New(2).Add(text.New(money.FormatCents(item.SubtotalCents()), bodyTextRight))

		if cellStyle != nil {
			colDesc = colDesc.WithStyle(cellStyle)
			colQty = colQty.WithStyle(cellStyle)
			colPrice = colPrice.WithStyle(cellStyle)
			colSubtotal = colSubtotal.WithStyle(cellStyle)
		}

		m.AddRows(row.New(7).Add(colDesc, colQty, colPrice, colSubtotal))

		for _, line := range lines[1:] {
			contCol := col.New(6).Add(text.New(line, bodyText))
			fillCol := col.New(6)
			if cellStyle != nil {
				contCol = contCol.WithStyle(cellStyle)
				fillCol = fillCol.WithStyle(cellStyle)
			}
			m.AddRows(row.New(6).Add(contCol, fillCol))
		}
	}

	footerCell := &props.Cell{BackgroundColor: &colorDark}
	footerLabel := props.Text{
		Size:  11,
		Style: fontstyle.Bold,
		Align: align.Right,
		Color: &colorGold,
	}

	m.AddRows(
		row.New(9).Add(
			col.New(8).Add(text.New("TOTAL ESTIMADO:", footerLabel)).WithStyle(footerCell),
			col.New(4).Add(text.New(money.FormatCents(data.TotalCents), footerLabel)).WithStyle(footerCell),
		),
	)
}

// addTerms appends the fixed conditions and the centered closing line
func addTerms(m core.Maroto) {
	m.AddRows(row.New(6))

	m.AddRows(
		row.New(7).Add(
			col.New(12).Add(text.New("Términos y Condiciones", props.Text{
				Size:  11,
				Style: fontstyle.Bold,
				Align: align.Left,
				Color: &colorGold,
			})),
		),
	)

	termStyle := props.Text{
		Size:  9,
		Align: align.Left,
		Color: &colorGray,
	}
	for _, line := range quoteTerms {
		m.AddRows(
			row.New(6).Add(col.New(12).Add(text.New(line, termStyle))),
		)
	}

	m.AddRows(row.New(8))
	m.AddRows(
		row.New(7).Add(
			col.New(12).Add(text.New("Gracias por preferir nuestra tradición.", props.Text{
				Size:  11,
				Align: align.Center,
				Color: &colorGold,
			})),
		),
	)
}

// WrapText breaks s into lines of at most width characters, splitting
// on spaces. Words longer than the width get a line of their own.
func WrapText(s string, width int) []string {
	words := strings.Fields(s)
	if len(words) == 0 {
		return []string{""}
	}

	var lines []string
	current := words[0]
	for _, word := range words[1:] {
		if len(current)+1+len(word) <= width {
			current += " " + word
		} else {
			lines = append(lines, current)
			current = word
		}
	}
	lines = append(lines, current)
	return lines
}

func orNA(s string) string {
	if s == "" {
		return "N/A"
	}
	return s
}
