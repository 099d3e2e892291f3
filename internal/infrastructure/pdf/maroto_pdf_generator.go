// Package pdf implementa la exportación del borrador de factura GST a PDF.
//
// Layout de la página A4 vertical:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  LOGO                                        TAX INVOICE    │
//	│  EMISOR: empresa / nombre / GSTIN / dirección │ Invoice#    │
//	│                                               │ Fechas      │
//	│  Bill to: CLIENTE                                           │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Descripción | Qty | Rate | SGST | CGST | Cess | Amt │
//	│  ─────────────────────────────────────────────────────────  │
//	│                      Sub Total / SGST % / CGST % / Total    │
//	│  NOTAS                                                      │
//	│  TÉRMINOS Y CONDICIONES                                     │
//	└─────────────────────────────────────────────────────────────┘
//
// Cada línea de factura es una fila de maroto, de modo que una fila nunca se
// parte entre páginas.
package pdf

import (
	"context"
	"fmt"
	"strings"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/image"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
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

	appbilling "github.com/jhoicas/gst-invoice/internal/application/billing"
	"github.com/jhoicas/gst-invoice/internal/domain/entity"
	"github.com/jhoicas/gst-invoice/internal/domain/invoice"
	"github.com/jhoicas/gst-invoice/internal/infrastructure/logo"
	appconfig "github.com/jhoicas/gst-invoice/pkg/config"
	"github.com/jhoicas/gst-invoice/pkg/logger"
)

var _ appbilling.InvoicePDFGenerator = (*MarotoPDFGenerator)(nil)

const (
	a4WidthMM  = 210.0
	a4HeightMM = 297.0

	// logoBoxUnits lado del recuadro del logo en unidades lógicas del viewport.
	logoBoxUnits = 80
	lineHeight   = 5.0
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorText   = &props.Color{Red: 55, Green: 65, Blue: 81}
	colorGray   = &props.Color{Red: 107, Green: 114, Blue: 128}
	colorBlack  = &props.Color{Red: 0, Green: 0, Blue: 0}
	colorWhite  = &props.Color{Red: 255, Green: 255, Blue: 255}
	colorBorder = &props.Color{Red: 209, Green: 213, Blue: 219}
)

// ── Generator ─────────────────────────────────────────────────────────────────

// MarotoPDFGenerator implementa billing.InvoicePDFGenerator usando Maroto v2.
type MarotoPDFGenerator struct {
	cfg appconfig.ExportConfig
	log *logger.Logger
}

// NewMarotoPDFGenerator construye el generador con la configuración fija de exportación.
func NewMarotoPDFGenerator(cfg appconfig.ExportConfig, log *logger.Logger) *MarotoPDFGenerator {
	if log == nil {
		log = logger.Nop()
	}
	return &MarotoPDFGenerator{cfg: cfg, log: log}
}

// GenerateInvoicePDF genera el PDF y devuelve sus bytes.
func (g *MarotoPDFGenerator) GenerateInvoicePDF(
	ctx context.Context,
	doc entity.InvoiceDocument,
	totals invoice.Totals,
) ([]byte, error) {
	margin := g.cfg.MarginMM
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithOrientation(orientation.Vertical).
		WithLeftMargin(margin).WithRightMargin(margin).
		WithTopMargin(margin).WithBottomMargin(margin).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9, Color: colorText}).
		WithTitle(pdfText(nonEmpty(doc.Title, entity.DefaultInvoiceTitle)), true).
		WithAuthor(pdfText(doc.Seller.Company), true).
		WithSubject(pdfText("Invoice "+doc.InvoiceNumber), true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(doc, g.logoComponent(doc), g.logoHeightMM()))
	m.AddRows(line.NewRow(4))
	m.AddRows(partiesRow(doc))
	m.AddRows(billToRow(doc.Buyer))
	m.AddRows(line.NewRow(4))

	m.AddRows(tableHeaderRow())
	m.AddRows(tableDetailRows(doc.Items)...)
	m.AddRows(line.NewRow(1, props.Line{Color: colorBorder, Thickness: 0.3}))

	m.AddRows(totalsRows(doc.Currency, totals)...)
	m.AddRows(line.NewRow(4))
	m.AddRows(sectionRows(doc.NotesTitle, doc.Notes)...)
	m.AddRows(sectionRows(doc.TermsTitle, doc.Terms)...)

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("pdf: cancelado antes de generar: %w", err)
	}
	out, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return out.GetBytes(), nil
}

// mmPerUnit escala del viewport de captura (ancho × alto lógicos) encajado en el
// área útil de la página, conservando la proporción.
func (g *MarotoPDFGenerator) mmPerUnit() float64 {
	w := (a4WidthMM - 2*g.cfg.MarginMM) / float64(g.cfg.ViewportWidth)
	h := (a4HeightMM - 2*g.cfg.MarginMM) / float64(g.cfg.ViewportHeight)
	return min(w, h)
}

// logoHeightMM lado del recuadro del logo en milímetros.
func (g *MarotoPDFGenerator) logoHeightMM() float64 {
	return logoBoxUnits * g.mmPerUnit()
}

// logoComponent rasteriza el logo; si no se puede decodificar (p. ej. SVG) se
// exporta sin él.
func (g *MarotoPDFGenerator) logoComponent(doc entity.InvoiceDocument) core.Component {
	if doc.Logo == nil {
		return nil
	}
	raw, err := logo.Bytes(doc.Logo)
	if err == nil {
		raw, err = rasterizeLogo(raw, logoBoxUnits*g.cfg.RenderScale, g.cfg.JPEGQuality())
	}
	if err != nil {
		g.log.Warn().Err(err).Str("mime", doc.Logo.MimeType).Msg("logo omitido en el PDF")
		return nil
	}
	return image.NewFromBytes(raw, extension.Jpg, props.Rect{Center: true, Percent: 100})
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: logo (izq) y título de la factura (der).
func headerRow(doc entity.InvoiceDocument, logoComp core.Component, logoHeight float64) core.Row {
	height := logoHeight
	if height < 18 {
		height = 18
	}
	left := col.New(4)
	if logoComp != nil {
		left = col.New(4).Add(logoComp)
	}
	return row.New(height).Add(
		left,
		col.New(8).Add(
			text.New(pdfText(doc.Title), props.Text{
				Size: 26, Align: align.Right, Top: 4, Color: colorText,
			}),
		),
	)
}

// partiesRow: emisor (izq) y datos de la factura (der).
func partiesRow(doc entity.InvoiceDocument) core.Row {
	s := doc.Seller
	sellerLines := compact(
		s.Company, s.Name, labelled("GSTIN", s.GSTIN), s.Address,
		joinNonEmpty(", ", s.City, s.State), s.Country,
	)
	detailLines := []string{
		"Invoice#: " + doc.InvoiceNumber,
		"Invoice Date: " + doc.InvoiceDate,
		"Due Date: " + doc.DueDate,
	}

	n := len(sellerLines)
	if len(detailLines) > n {
		n = len(detailLines)
	}

	left := col.New(7)
	for i, l := range sellerLines {
		style := fontstyle.Normal
		if i == 0 && s.Company != "" {
			style = fontstyle.Bold
		}
		left.Add(text.New(pdfText(l), props.Text{Size: 9, Style: style, Top: float64(i) * lineHeight}))
	}
	right := col.New(5)
	for i, l := range detailLines {
		right.Add(text.New(pdfText(l), props.Text{Size: 9, Align: align.Right, Top: float64(i) * lineHeight}))
	}
	return row.New(float64(n)*lineHeight+2).Add(left, right)
}

// billToRow: datos del cliente.
func billToRow(b entity.Buyer) core.Row {
	lines := compact(
		b.Company, labelled("GSTIN", b.GSTIN), b.Address,
		joinNonEmpty(", ", b.City, b.State), b.Country,
	)
	c := col.New(12).Add(text.New("Bill to:", props.Text{Size: 10, Style: fontstyle.Bold, Top: 1}))
	for i, l := range lines {
		c.Add(text.New(pdfText(l), props.Text{Size: 9, Top: float64(i+1)*lineHeight + 1, Color: colorText}))
	}
	return row.New(float64(len(lines)+1)*lineHeight + 3).Add(c)
}

// tableHeaderRow: cabecera negra con texto blanco.
func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorWhite, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Item Description", 4, align.Left),
		h("Qty", 1, align.Center),
		h("Rate", 2, align.Right),
		h("SGST(%)", 1, align.Center),
		h("CGST(%)", 1, align.Center),
		h("Cess(%)", 1, align.Center),
		h("Amount", 2, align.Right),
	).WithStyle(&props.Cell{BackgroundColor: colorBlack})
}

// tableDetailRows: una fila por línea; la altura crece con la descripción.
func tableDetailRows(items []entity.LineItem) []core.Row {
	cell := func(s string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(s, props.Text{Size: 8, Align: a, Top: 1.5, Left: 1, Right: 1}))
	}
	result := make([]core.Row, 0, len(items))
	for _, it := range items {
		height := float64(estimateLines(it.Description, 40))*4 + 3
		result = append(result, row.New(height).Add(
			cell(pdfText(it.Description), 4, align.Left),
			cell(it.Quantity.String(), 1, align.Center),
			cell(it.Rate.StringFixed(2), 2, align.Right),
			cell(it.SGST.String(), 1, align.Center),
			cell(it.CGST.String(), 1, align.Center),
			cell(it.Cess.String(), 1, align.Center),
			cell(it.Amount.StringFixed(2), 2, align.Right),
		))
	}
	return result
}

// totalsRows: bloque de totales alineado a la derecha. SGST/CGST se muestran
// como porcentaje efectivo sobre el subtotal.
func totalsRows(currencyCode string, t invoice.Totals) []core.Row {
	f := t.Format()
	r := func(label, value string, bold bool) core.Row {
		style := fontstyle.Normal
		size := 9.0
		if bold {
			style = fontstyle.Bold
			size = 10
		}
		return row.New(7).Add(
			col.New(6),
			col.New(3).Add(text.New(label, props.Text{Size: size, Align: align.Right, Color: colorGray, Top: 1.5, Right: 2})),
			col.New(3).Add(text.New(value, props.Text{Size: size, Style: style, Align: align.Right, Top: 1.5, Right: 1})),
		)
	}
	return []core.Row{
		r("Sub Total", f.SubTotal, false),
		r("SGST", f.EffectiveSGST+"%", false),
		r("CGST", f.EffectiveCGST+"%", false),
		r("Total", currencyLabel(currencyCode)+" "+f.Total, true),
	}
}

// sectionRows: título editable + texto libre (notas o términos).
func sectionRows(title, body string) []core.Row {
	if strings.TrimSpace(title) == "" && strings.TrimSpace(body) == "" {
		return nil
	}
	lines := estimateLines(body, 110)
	return []core.Row{
		row.New(6).Add(col.New(12).Add(
			text.New(pdfText(title), props.Text{Size: 9, Style: fontstyle.Bold, Color: colorGray, Top: 1}),
		)),
		row.New(float64(lines)*4.5 + 3).Add(col.New(12).Add(
			text.New(pdfText(body), props.Text{Size: 9, Top: 0.5}),
		)),
	}
}

// ── helpers ───────────────────────────────────────────────────────────────────

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}

func labelled(label, value string) string {
	if value == "" {
		return ""
	}
	return label + ": " + value
}

func joinNonEmpty(sep string, parts ...string) string {
	return strings.Join(compact(parts...), sep)
}

// compact descarta las cadenas vacías.
func compact(parts ...string) []string {
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if strings.TrimSpace(p) != "" {
			out = append(out, p)
		}
	}
	return out
}

// estimateLines aproxima cuántas líneas ocupa s con perLine caracteres por línea.
func estimateLines(s string, perLine int) int {
	total := 0
	for _, p := range strings.Split(s, "\n") {
		n := (len([]rune(p)) + perLine - 1) / perLine
		if n == 0 {
			n = 1
		}
		total += n
	}
	return total
}
