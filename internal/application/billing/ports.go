package billing

import (
	"context"
	"io"

	"github.com/jhoicas/gst-invoice/internal/domain/entity"
	"github.com/jhoicas/gst-invoice/internal/domain/invoice"
)

// InvoicePDFGenerator adaptador externo que convierte un snapshot del borrador en PDF.
type InvoicePDFGenerator interface {
	GenerateInvoicePDF(ctx context.Context, doc entity.InvoiceDocument, totals invoice.Totals) ([]byte, error)
}

// LogoLoader convierte una imagen subida en un logo embebible (data URL).
type LogoLoader interface {
	Load(ctx context.Context, r io.Reader) (*entity.Logo, error)
	FromDataURL(dataURL string) (*entity.Logo, error)
}

// SessionConfig firma de los tokens que dan acceso a un borrador.
type SessionConfig struct {
	Secret     string
	Issuer     string
	ExpMinutes int
}
