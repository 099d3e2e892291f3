package billing

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/jhoicas/gst-invoice/internal/application/dto"
	"github.com/jhoicas/gst-invoice/internal/domain"
	"github.com/jhoicas/gst-invoice/internal/domain/entity"
	"github.com/jhoicas/gst-invoice/internal/domain/invoice"
	"github.com/jhoicas/gst-invoice/internal/domain/repository"
	"github.com/jhoicas/gst-invoice/pkg/jwt"
	"github.com/jhoicas/gst-invoice/pkg/logger"
)

// DraftUseCase casos de uso del borrador de factura: cada operación aplica una
// función pura del dominio y el repositorio publica el snapshot resultante.
type DraftUseCase struct {
	repo    repository.DraftRepository
	logos   LogoLoader
	session SessionConfig
	now     func() time.Time
	log     *logger.Logger
}

// NewDraftUseCase construye el caso de uso. now nil = time.Now.
func NewDraftUseCase(
	repo repository.DraftRepository,
	logos LogoLoader,
	session SessionConfig,
	now func() time.Time,
	log *logger.Logger,
) *DraftUseCase {
	if now == nil {
		now = time.Now
	}
	if log == nil {
		log = logger.Nop()
	}
	return &DraftUseCase{
		repo:    repo,
		logos:   logos,
		session: session,
		now:     now,
		log:     log,
	}
}

// Create abre un borrador nuevo con los valores por defecto y su token de sesión.
func (uc *DraftUseCase) Create(ctx context.Context) (*dto.DraftResponse, error) {
	now := uc.now()
	draft := &entity.Draft{
		Document:  entity.NewInvoiceDocument(now),
		CreatedAt: now,
	}
	if err := uc.repo.Create(ctx, draft); err != nil {
		return nil, fmt.Errorf("crear borrador: %w", err)
	}
	token, err := jwt.Generate(uc.session.Secret, draft.ID, uc.session.Issuer, uc.session.ExpMinutes)
	if err != nil {
		_ = uc.repo.Delete(ctx, draft.ID)
		return nil, fmt.Errorf("generar token de sesión: %w", err)
	}
	uc.log.Info().Str("draft_id", draft.ID).Msg("borrador creado")

	resp := entityToDraftResponse(draft)
	resp.Token = token
	return resp, nil
}

// Get devuelve el snapshot vigente con los totales recalculados.
func (uc *DraftUseCase) Get(ctx context.Context, id string) (*dto.DraftResponse, error) {
	d, err := uc.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return entityToDraftResponse(d), nil
}

// Totals solo los totales del snapshot vigente.
func (uc *DraftUseCase) Totals(ctx context.Context, id string) (*dto.TotalsResponse, error) {
	d, err := uc.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	t := totalsToResponse(d.Document)
	return &t, nil
}

// SetField reemplaza un campo escalar del documento.
func (uc *DraftUseCase) SetField(ctx context.Context, id string, version uint64, in dto.SetFieldRequest) (*dto.DraftResponse, error) {
	if in.Key == "" {
		return nil, fmt.Errorf("%w: key requerido", domain.ErrInvalidInput)
	}
	return uc.update(ctx, id, version, func(doc entity.InvoiceDocument) (entity.InvoiceDocument, error) {
		return invoice.SetField(doc, in.Key, string(in.Value))
	})
}

// SetItemField reemplaza un campo de la línea index (recalcula amount si es numérico).
func (uc *DraftUseCase) SetItemField(ctx context.Context, id string, version uint64, index int, in dto.SetItemFieldRequest) (*dto.DraftResponse, error) {
	if in.Field == "" {
		return nil, fmt.Errorf("%w: field requerido", domain.ErrInvalidInput)
	}
	return uc.update(ctx, id, version, func(doc entity.InvoiceDocument) (entity.InvoiceDocument, error) {
		return invoice.SetItemField(doc, index, in.Field, string(in.Value))
	})
}

// AddItem agrega una línea por defecto al final.
func (uc *DraftUseCase) AddItem(ctx context.Context, id string, version uint64) (*dto.DraftResponse, error) {
	return uc.update(ctx, id, version, func(doc entity.InvoiceDocument) (entity.InvoiceDocument, error) {
		return invoice.AddItem(doc), nil
	})
}

// RemoveItem elimina la línea index sin confirmación.
func (uc *DraftUseCase) RemoveItem(ctx context.Context, id string, version uint64, index int) (*dto.DraftResponse, error) {
	return uc.update(ctx, id, version, func(doc entity.InvoiceDocument) (entity.InvoiceDocument, error) {
		return invoice.RemoveItem(doc, index)
	})
}

// UploadLogo lee la imagen fuera del lock del borrador y luego reemplaza el logo en una sola actualización.
func (uc *DraftUseCase) UploadLogo(ctx context.Context, id string, version uint64, r io.Reader) (*dto.DraftResponse, error) {
	if _, err := uc.repo.Get(ctx, id); err != nil {
		return nil, err
	}
	logo, err := uc.logos.Load(ctx, r)
	if err != nil {
		return nil, err
	}
	return uc.setLogo(ctx, id, version, logo)
}

// SetLogoDataURL igual que UploadLogo pero con la imagen ya codificada como data URL.
func (uc *DraftUseCase) SetLogoDataURL(ctx context.Context, id string, version uint64, in dto.SetLogoRequest) (*dto.DraftResponse, error) {
	logo, err := uc.logos.FromDataURL(in.DataURL)
	if err != nil {
		return nil, err
	}
	return uc.setLogo(ctx, id, version, logo)
}

// ClearLogo quita el logo del documento.
func (uc *DraftUseCase) ClearLogo(ctx context.Context, id string, version uint64) (*dto.DraftResponse, error) {
	return uc.setLogo(ctx, id, version, nil)
}

// Delete descarta el borrador (fin de sesión).
func (uc *DraftUseCase) Delete(ctx context.Context, id string) error {
	if err := uc.repo.Delete(ctx, id); err != nil {
		return err
	}
	uc.log.Info().Str("draft_id", id).Msg("borrador descartado")
	return nil
}

func (uc *DraftUseCase) setLogo(ctx context.Context, id string, version uint64, logo *entity.Logo) (*dto.DraftResponse, error) {
	resp, err := uc.update(ctx, id, version, func(doc entity.InvoiceDocument) (entity.InvoiceDocument, error) {
		return invoice.SetLogo(doc, logo), nil
	})
	if err != nil {
		return nil, err
	}
	ev := uc.log.Debug().Str("draft_id", id)
	if logo != nil {
		ev = ev.Str("mime", logo.MimeType).Int("data_url_len", len(logo.DataURL))
	}
	ev.Bool("cleared", logo == nil).Msg("logo actualizado")
	return resp, nil
}

func (uc *DraftUseCase) update(ctx context.Context, id string, version uint64, fn repository.DraftMutation) (*dto.DraftResponse, error) {
	d, err := uc.repo.Update(ctx, id, version, fn)
	if err != nil {
		return nil, err
	}
	return entityToDraftResponse(d), nil
}
