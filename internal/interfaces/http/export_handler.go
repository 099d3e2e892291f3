package http

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/gst-invoice/internal/application/billing"
)

// ExportHandler descarga el borrador como PDF.
type ExportHandler struct {
	uc *billing.ExportUseCase
}

// NewExportHandler construye el handler.
func NewExportHandler(uc *billing.ExportUseCase) *ExportHandler {
	return &ExportHandler{uc: uc}
}

// Download genera el PDF del snapshot actual.
// GET /api/drafts/:id/export
func (h *ExportHandler) Download(c *fiber.Ctx) error {
	pdf, filename, err := h.uc.DownloadInvoicePDF(c.UserContext(), GetDraftID(c))
	if err != nil {
		return respondError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="%s"`, filename))
	return c.Send(pdf)
}
