package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/gst-invoice/internal/application/billing"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	DraftUC       *billing.DraftUseCase
	ExportUC      *billing.ExportUseCase
	SessionSecret string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Público
	api.Get("/catalog", Catalog)
	draftHandler := NewDraftHandler(deps.DraftUC)
	api.Post("/drafts", draftHandler.Create)

	// Sesión del borrador (Bearer Token ligado a :id)
	drafts := api.Group("/drafts/:id", SessionMiddleware(deps.SessionSecret))
	drafts.Get("/", draftHandler.Get)
	drafts.Delete("/", draftHandler.Delete)
	drafts.Get("/totals", draftHandler.Totals)
	drafts.Patch("/fields", draftHandler.SetField)
	drafts.Post("/items", draftHandler.AddItem)
	drafts.Patch("/items/:index", draftHandler.SetItemField)
	drafts.Delete("/items/:index", draftHandler.RemoveItem)
	drafts.Put("/logo", draftHandler.SetLogo)
	drafts.Delete("/logo", draftHandler.ClearLogo)

	exportHandler := NewExportHandler(deps.ExportUC)
	drafts.Get("/export", exportHandler.Download)
}
