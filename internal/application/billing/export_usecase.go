package billing

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/gst-invoice/internal/domain"
	"github.com/jhoicas/gst-invoice/internal/domain/invoice"
	"github.com/jhoicas/gst-invoice/internal/domain/repository"
	"github.com/jhoicas/gst-invoice/pkg/logger"
)

// ExportUseCase genera el PDF de un borrador a partir de su snapshot vigente.
// Las ediciones posteriores no afectan una exportación en curso.
type ExportUseCase struct {
	repo      repository.DraftRepository
	generator InvoicePDFGenerator
	filename  string
	log       *logger.Logger
}

// NewExportUseCase construye el caso de uso. filename vacío = "Invoice.pdf".
func NewExportUseCase(repo repository.DraftRepository, generator InvoicePDFGenerator, filename string, log *logger.Logger) *ExportUseCase {
	if filename == "" {
		filename = "Invoice.pdf"
	}
	if log == nil {
		log = logger.Nop()
	}
	return &ExportUseCase{repo: repo, generator: generator, filename: filename, log: log}
}

// DownloadInvoicePDF devuelve los bytes del PDF y el nombre de archivo.
//
// Retorna:
//   - domain.ErrNotFound      si el borrador no existe o expiró.
//   - domain.ErrExportFailed  si el generador falla; el borrador sigue editable y no se reintenta.
func (uc *ExportUseCase) DownloadInvoicePDF(ctx context.Context, draftID string) (pdfBytes []byte, filename string, err error) {
	d, err := uc.repo.Get(ctx, draftID)
	if err != nil {
		return nil, "", err
	}

	start := time.Now()
	totals := invoice.ComputeTotals(d.Document.Items)
	pdfBytes, err = uc.generator.GenerateInvoicePDF(ctx, d.Document, totals)
	if err != nil {
		uc.log.Error().Err(err).Str("draft_id", draftID).Uint64("version", d.Version).Msg("exportación PDF fallida")
		return nil, "", fmt.Errorf("%w: %v", domain.ErrExportFailed, err)
	}

	uc.log.Info().
		Str("draft_id", draftID).
		Uint64("version", d.Version).
		Int("items", len(d.Document.Items)).
		Int("bytes", len(pdfBytes)).
		Dur("elapsed", time.Since(start)).
		Msg("PDF exportado")
	return pdfBytes, uc.filename, nil
}
