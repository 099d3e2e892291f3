package http

import (
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/gst-invoice/internal/application/billing"
	"github.com/jhoicas/gst-invoice/internal/application/dto"
)

// DraftHandler maneja el ciclo de edición del borrador de factura.
type DraftHandler struct {
	uc *billing.DraftUseCase
}

// NewDraftHandler construye el handler.
func NewDraftHandler(uc *billing.DraftUseCase) *DraftHandler {
	return &DraftHandler{uc: uc}
}

// Create abre una sesión con un borrador por defecto y devuelve su token.
// POST /api/drafts
func (h *DraftHandler) Create(c *fiber.Ctx) error {
	out, err := h.uc.Create(c.UserContext())
	if err != nil {
		return respondError(c, err)
	}
	return writeDraft(c.Status(fiber.StatusCreated), out)
}

// Get devuelve el snapshot actual con totales.
// GET /api/drafts/:id
func (h *DraftHandler) Get(c *fiber.Ctx) error {
	out, err := h.uc.Get(c.UserContext(), GetDraftID(c))
	if err != nil {
		return respondError(c, err)
	}
	return writeDraft(c, out)
}

// Totals devuelve solo los totales.
// GET /api/drafts/:id/totals
func (h *DraftHandler) Totals(c *fiber.Ctx) error {
	out, err := h.uc.Totals(c.UserContext(), GetDraftID(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// SetField edita un campo escalar del documento.
// PATCH /api/drafts/:id/fields
func (h *DraftHandler) SetField(c *fiber.Ctx) error {
	version, err := expectedVersion(c)
	if err != nil {
		return respondError(c, err)
	}
	var in dto.SetFieldRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "cuerpo inválido")
	}
	out, err := h.uc.SetField(c.UserContext(), GetDraftID(c), version, in)
	if err != nil {
		return respondError(c, err)
	}
	return writeDraft(c, out)
}

// SetItemField edita un campo de una línea.
// PATCH /api/drafts/:id/items/:index
func (h *DraftHandler) SetItemField(c *fiber.Ctx) error {
	version, err := expectedVersion(c)
	if err != nil {
		return respondError(c, err)
	}
	index, err := c.ParamsInt("index")
	if err != nil {
		return badRequest(c, "índice inválido")
	}
	var in dto.SetItemFieldRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "cuerpo inválido")
	}
	out, err := h.uc.SetItemField(c.UserContext(), GetDraftID(c), version, index, in)
	if err != nil {
		return respondError(c, err)
	}
	return writeDraft(c, out)
}

// AddItem agrega una línea por defecto al final.
// POST /api/drafts/:id/items
func (h *DraftHandler) AddItem(c *fiber.Ctx) error {
	version, err := expectedVersion(c)
	if err != nil {
		return respondError(c, err)
	}
	out, err := h.uc.AddItem(c.UserContext(), GetDraftID(c), version)
	if err != nil {
		return respondError(c, err)
	}
	return writeDraft(c.Status(fiber.StatusCreated), out)
}

// RemoveItem elimina la línea indicada.
// DELETE /api/drafts/:id/items/:index
func (h *DraftHandler) RemoveItem(c *fiber.Ctx) error {
	version, err := expectedVersion(c)
	if err != nil {
		return respondError(c, err)
	}
	index, err := c.ParamsInt("index")
	if err != nil {
		return badRequest(c, "índice inválido")
	}
	out, err := h.uc.RemoveItem(c.UserContext(), GetDraftID(c), version, index)
	if err != nil {
		return respondError(c, err)
	}
	return writeDraft(c, out)
}

// SetLogo reemplaza el logo: multipart con el archivo "logo" o JSON {"data_url": ...}.
// PUT /api/drafts/:id/logo
func (h *DraftHandler) SetLogo(c *fiber.Ctx) error {
	version, err := expectedVersion(c)
	if err != nil {
		return respondError(c, err)
	}
	id := GetDraftID(c)

	if strings.HasPrefix(c.Get(fiber.HeaderContentType), fiber.MIMEMultipartForm) {
		fh, err := c.FormFile("logo")
		if err != nil {
			return badRequest(c, "archivo 'logo' requerido")
		}
		f, err := fh.Open()
		if err != nil {
			return badRequest(c, "no se pudo leer el archivo")
		}
		defer f.Close()
		out, err := h.uc.UploadLogo(c.UserContext(), id, version, f)
		if err != nil {
			return respondError(c, err)
		}
		return writeDraft(c, out)
	}

	var in dto.SetLogoRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "cuerpo inválido")
	}
	out, err := h.uc.SetLogoDataURL(c.UserContext(), id, version, in)
	if err != nil {
		return respondError(c, err)
	}
	return writeDraft(c, out)
}

// ClearLogo quita el logo.
// DELETE /api/drafts/:id/logo
func (h *DraftHandler) ClearLogo(c *fiber.Ctx) error {
	version, err := expectedVersion(c)
	if err != nil {
		return respondError(c, err)
	}
	out, err := h.uc.ClearLogo(c.UserContext(), GetDraftID(c), version)
	if err != nil {
		return respondError(c, err)
	}
	return writeDraft(c, out)
}

// Delete descarta el borrador (fin de la sesión).
// DELETE /api/drafts/:id
func (h *DraftHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.UserContext(), GetDraftID(c)); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// writeDraft responde el snapshot con su versión en ETag para el siguiente If-Match.
func writeDraft(c *fiber.Ctx, out *dto.DraftResponse) error {
	c.Set(fiber.HeaderETag, strconv.Quote(strconv.FormatUint(out.Version, 10)))
	return c.JSON(out)
}
