package pdf_test

import (
	"bytes"
	"context"
	"encoding/base64"
	"image/color"
	"testing"
	"time"

	"github.com/disintegration/imaging"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/gst-invoice/internal/domain/entity"
	"github.com/jhoicas/gst-invoice/internal/domain/invoice"
	"github.com/jhoicas/gst-invoice/internal/infrastructure/pdf"
	"github.com/jhoicas/gst-invoice/pkg/config"
)

func sampleDocument() entity.InvoiceDocument {
	doc := entity.NewInvoiceDocument(time.Date(2026, 10, 19, 0, 0, 0, 0, time.UTC))
	doc.Seller.Company = "Acme Traders"
	doc.Seller.GSTIN = "29ABCDE1234F1Z5"
	doc.Buyer.Company = "Globex"
	doc.InvoiceNumber = "INV-12"
	doc.Items[0].Description = "Consultoría"
	doc.Items[0].Quantity = decimal.NewFromInt(2)
	doc.Items[0].Rate = decimal.NewFromInt(100)
	doc.Items[0].Amount = invoice.LineAmount(doc.Items[0])
	return doc
}

func generate(t *testing.T, doc entity.InvoiceDocument) []byte {
	t.Helper()
	g := pdf.NewMarotoPDFGenerator(config.DefaultExport(), nil)
	out, err := g.GenerateInvoicePDF(context.Background(), doc, invoice.ComputeTotals(doc.Items))
	require.NoError(t, err)
	require.True(t, bytes.HasPrefix(out, []byte("%PDF")), "la salida debe ser un PDF")
	return out
}

func TestGenerateInvoicePDF(t *testing.T) {
	generate(t, sampleDocument())
}

func TestGenerateInvoicePDF_SinLineas(t *testing.T) {
	doc := sampleDocument()
	doc.Items = nil
	generate(t, doc)
}

func TestGenerateInvoicePDF_ConLogo(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, imaging.Encode(&buf, imaging.New(40, 20, color.NRGBA{R: 200, A: 128}), imaging.PNG))

	doc := sampleDocument()
	doc.Logo = &entity.Logo{
		MimeType: "image/png",
		DataURL:  "data:image/png;base64," + base64.StdEncoding.EncodeToString(buf.Bytes()),
	}
	withLogo := generate(t, doc)

	doc.Logo = nil
	withoutLogo := generate(t, doc)
	assert.Greater(t, len(withLogo), len(withoutLogo), "el logo debe quedar embebido")
}

func TestGenerateInvoicePDF_LogoNoDecodificableSeOmite(t *testing.T) {
	doc := sampleDocument()
	doc.Logo = &entity.Logo{
		MimeType: "image/svg+xml",
		DataURL:  "data:image/svg+xml;base64," + base64.StdEncoding.EncodeToString([]byte(`<svg xmlns="http://www.w3.org/2000/svg"/>`)),
	}
	generate(t, doc)
}

func TestGenerateInvoicePDF_TextoNoCodificable(t *testing.T) {
	doc := sampleDocument()
	doc.Seller.Address = "मुंबई 400001"
	doc.Notes = "धन्यवाद\nThanks"
	generate(t, doc)
}

func TestGenerateInvoicePDF_ContextoCancelado(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	g := pdf.NewMarotoPDFGenerator(config.DefaultExport(), nil)
	doc := sampleDocument()
	_, err := g.GenerateInvoicePDF(ctx, doc, invoice.ComputeTotals(doc.Items))
	assert.ErrorIs(t, err, context.Canceled)
}
