package repository

import (
	"context"
	"time"

	"github.com/jhoicas/gst-invoice/internal/domain/entity"
)

// DraftMutation transforma un snapshot en otro. Debe ser pura: el repositorio la
// ejecuta bajo el lock del borrador y solo confirma el resultado si no hay error.
type DraftMutation func(doc entity.InvoiceDocument) (entity.InvoiceDocument, error)

// DraftRepository define el puerto de almacenamiento de sesión para borradores.
// Los borradores viven solo en memoria del proceso; no hay persistencia.
type DraftRepository interface {
	Create(ctx context.Context, draft *entity.Draft) error
	// Get devuelve una copia del snapshot actual o domain.ErrNotFound.
	Get(ctx context.Context, id string) (*entity.Draft, error)
	// Update aplica fn y publica el nuevo snapshot con Version+1.
	// expectedVersion 0 = sin control de concurrencia; otro valor distinto al actual → domain.ErrConflict.
	Update(ctx context.Context, id string, expectedVersion uint64, fn DraftMutation) (*entity.Draft, error)
	Delete(ctx context.Context, id string) error
	// Sweep descarta los borradores sin actividad desde antes de olderThan y devuelve cuántos eliminó.
	Sweep(ctx context.Context, olderThan time.Time) int
}
