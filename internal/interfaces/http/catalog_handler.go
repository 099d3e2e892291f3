package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/gst-invoice/internal/application/dto"
	"github.com/jhoicas/gst-invoice/internal/domain/invoice"
	"github.com/jhoicas/gst-invoice/pkg/catalog"
)

// Catalog listas fijas del formulario.
// GET /api/catalog
func Catalog(c *fiber.Ctx) error {
	return c.JSON(dto.CatalogResponse{
		Countries:      catalog.Countries,
		Currencies:     catalog.Currencies,
		DocumentFields: invoice.DocumentFields,
		ItemFields:     invoice.ItemFields,
	})
}
