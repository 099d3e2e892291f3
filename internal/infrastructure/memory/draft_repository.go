// Package memory implementa el almacenamiento de sesión de borradores en memoria del proceso.
package memory

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/gst-invoice/internal/domain"
	"github.com/jhoicas/gst-invoice/internal/domain/entity"
	"github.com/jhoicas/gst-invoice/internal/domain/repository"
	"github.com/jhoicas/gst-invoice/pkg/logger"
)

var _ repository.DraftRepository = (*DraftRepo)(nil)

// slot guarda el snapshot vigente de un borrador. mu serializa las mutaciones
// del mismo borrador; los lectores copian el puntero actual bajo el lock.
type slot struct {
	mu    sync.Mutex
	draft *entity.Draft
}

// DraftRepo implementación en memoria de DraftRepository.
type DraftRepo struct {
	mu     sync.RWMutex
	drafts map[string]*slot
	now    func() time.Time
}

// NewDraftRepository construye el repositorio. now permite inyectar un reloj en tests (nil = time.Now).
func NewDraftRepository(now func() time.Time) *DraftRepo {
	if now == nil {
		now = time.Now
	}
	return &DraftRepo{
		drafts: make(map[string]*slot),
		now:    now,
	}
}

// Create registra el borrador. Genera ID si viene vacío y fija Version en 1.
func (r *DraftRepo) Create(_ context.Context, draft *entity.Draft) error {
	if draft == nil {
		return fmt.Errorf("%w: borrador nulo", domain.ErrInvalidInput)
	}
	if draft.ID == "" {
		draft.ID = uuid.New().String()
	}
	now := r.now()
	draft.Version = 1
	if draft.CreatedAt.IsZero() {
		draft.CreatedAt = now
	}
	draft.UpdatedAt = now

	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.drafts[draft.ID]; ok {
		return fmt.Errorf("%w: borrador %s ya existe", domain.ErrConflict, draft.ID)
	}
	r.drafts[draft.ID] = &slot{draft: draft.Clone()}
	return nil
}

// Get devuelve una copia del snapshot actual.
func (r *DraftRepo) Get(_ context.Context, id string) (*entity.Draft, error) {
	s := r.slot(id)
	if s == nil {
		return nil, domain.ErrNotFound
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.draft == nil {
		return nil, domain.ErrNotFound
	}
	return s.draft.Clone(), nil
}

// Update aplica fn sobre el snapshot vigente y publica el resultado con Version+1.
// Si fn falla o la versión esperada no coincide, el snapshot no cambia.
func (r *DraftRepo) Update(_ context.Context, id string, expectedVersion uint64, fn repository.DraftMutation) (*entity.Draft, error) {
	s := r.slot(id)
	if s == nil {
		return nil, domain.ErrNotFound
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	cur := s.draft
	if cur == nil {
		return nil, domain.ErrNotFound
	}
	if expectedVersion != 0 && expectedVersion != cur.Version {
		return nil, fmt.Errorf("%w: versión %d, actual %d", domain.ErrConflict, expectedVersion, cur.Version)
	}

	doc, err := fn(cur.Document.Clone())
	if err != nil {
		return nil, err
	}

	next := &entity.Draft{
		ID:        cur.ID,
		Version:   cur.Version + 1,
		Document:  doc.Clone(),
		CreatedAt: cur.CreatedAt,
		UpdatedAt: r.now(),
	}
	s.draft = next
	return next.Clone(), nil
}

// Delete descarta el borrador.
func (r *DraftRepo) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.drafts[id]
	if !ok {
		return domain.ErrNotFound
	}
	delete(r.drafts, id)
	s.mu.Lock()
	s.draft = nil
	s.mu.Unlock()
	return nil
}

// Sweep elimina los borradores cuya última actualización es anterior a olderThan.
func (r *DraftRepo) Sweep(_ context.Context, olderThan time.Time) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	removed := 0
	for id, s := range r.drafts {
		s.mu.Lock()
		stale := s.draft == nil || s.draft.UpdatedAt.Before(olderThan)
		if stale {
			s.draft = nil
		}
		s.mu.Unlock()
		if stale {
			delete(r.drafts, id)
			removed++
		}
	}
	return removed
}

// Len número de borradores vivos.
func (r *DraftRepo) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.drafts)
}

// StartJanitor lanza una goroutine que cada interval descarta los borradores inactivos
// por más de ttl. Termina cuando ctx se cancela.
func (r *DraftRepo) StartJanitor(ctx context.Context, interval, ttl time.Duration, log *logger.Logger) {
	if interval <= 0 || ttl <= 0 {
		return
	}
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				if n := r.Sweep(ctx, r.now().Add(-ttl)); n > 0 && log != nil {
					log.Debug().Int("removed", n).Int("alive", r.Len()).Msg("borradores expirados descartados")
				}
			}
		}
	}()
}

func (r *DraftRepo) slot(id string) *slot {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.drafts[id]
}
