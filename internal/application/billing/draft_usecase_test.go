package billing_test

import (
	"bytes"
	"context"
	"errors"
	"image/color"
	"testing"
	"time"

	"github.com/disintegration/imaging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/gst-invoice/internal/application/billing"
	"github.com/jhoicas/gst-invoice/internal/application/dto"
	"github.com/jhoicas/gst-invoice/internal/domain"
	"github.com/jhoicas/gst-invoice/internal/domain/entity"
	"github.com/jhoicas/gst-invoice/internal/domain/invoice"
	"github.com/jhoicas/gst-invoice/internal/infrastructure/logo"
	"github.com/jhoicas/gst-invoice/internal/infrastructure/memory"
	pkgjwt "github.com/jhoicas/gst-invoice/pkg/jwt"
)

var (
	testNow     = func() time.Time { return time.Date(2026, 10, 19, 8, 0, 0, 0, time.UTC) }
	testSession = billing.SessionConfig{Secret: "test-secret", Issuer: "gst-invoice-test", ExpMinutes: 60}
)

// fakeGenerator registra el snapshot recibido y devuelve un PDF mínimo o err.
type fakeGenerator struct {
	err    error
	doc    entity.InvoiceDocument
	totals invoice.Totals
	calls  int
}

func (g *fakeGenerator) GenerateInvoicePDF(_ context.Context, doc entity.InvoiceDocument, totals invoice.Totals) ([]byte, error) {
	g.calls++
	g.doc = doc
	g.totals = totals
	if g.err != nil {
		return nil, g.err
	}
	return []byte("%PDF-1.3 fake"), nil
}

func setup(t *testing.T) (*billing.DraftUseCase, *memory.DraftRepo, *dto.DraftResponse) {
	t.Helper()
	repo := memory.NewDraftRepository(testNow)
	uc := billing.NewDraftUseCase(repo, logo.NewLoader(), testSession, testNow, nil)
	d, err := uc.Create(context.Background())
	require.NoError(t, err)
	return uc, repo, d
}

func TestCreate_DefaultsYToken(t *testing.T) {
	_, _, d := setup(t)

	assert.Equal(t, uint64(1), d.Version)
	assert.Equal(t, "TAX INVOICE", d.Document.InvoiceTitle)
	assert.Equal(t, "2026-10-19", d.Document.InvoiceDate)
	assert.Equal(t, "INR", d.Totals.Currency)
	assert.Equal(t, "₹", d.Totals.CurrencySymbol)
	assert.Equal(t, "0.00", d.Totals.EffectiveSGST)
	require.Len(t, d.Document.Items, 1)
	assert.Equal(t, "0.00", d.Document.Items[0].AmountDisplay)
	assert.Nil(t, d.Document.CompanyLogo)

	id, err := pkgjwt.Parse(testSession.Secret, d.Token)
	require.NoError(t, err)
	assert.Equal(t, d.ID, id, "el token debe apuntar al borrador creado")
}

func TestFlujoCompleto_Totales(t *testing.T) {
	uc, _, d := setup(t)
	ctx := context.Background()

	_, err := uc.SetItemField(ctx, d.ID, 0, 0, dto.SetItemFieldRequest{Field: "quantity", Value: "2"})
	require.NoError(t, err)
	got, err := uc.SetItemField(ctx, d.ID, 0, 0, dto.SetItemFieldRequest{Field: "rate", Value: "100"})
	require.NoError(t, err)

	assert.Equal(t, uint64(3), got.Version)
	assert.Equal(t, "236.00", got.Document.Items[0].AmountDisplay)
	assert.Equal(t, "236.00", got.Totals.SubTotal)
	assert.Equal(t, "21.24", got.Totals.TotalSGST)
	assert.Equal(t, "21.24", got.Totals.TotalCGST)
	assert.Equal(t, "278.48", got.Totals.Total)

	tot, err := uc.Totals(ctx, d.ID)
	require.NoError(t, err)
	assert.Equal(t, got.Totals, *tot)
}

func TestSetField(t *testing.T) {
	uc, _, d := setup(t)
	ctx := context.Background()

	got, err := uc.SetField(ctx, d.ID, 0, dto.SetFieldRequest{Key: "currency", Value: "usd"})
	require.NoError(t, err)
	assert.Equal(t, "USD", got.Document.Currency)
	assert.Equal(t, "$", got.Totals.CurrencySymbol)

	_, err = uc.SetField(ctx, d.ID, 0, dto.SetFieldRequest{Key: "nope", Value: "x"})
	assert.ErrorIs(t, err, domain.ErrUnknownField)

	_, err = uc.SetField(ctx, d.ID, 0, dto.SetFieldRequest{Value: "x"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestSetItemField_NumeroInvalidoNoCambiaVersion(t *testing.T) {
	uc, _, d := setup(t)
	ctx := context.Background()

	_, err := uc.SetItemField(ctx, d.ID, 0, 0, dto.SetItemFieldRequest{Field: "rate", Value: "diez"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	cur, err := uc.Get(ctx, d.ID)
	require.NoError(t, err)
	assert.Equal(t, uint64(1), cur.Version)
}

func TestSetItemField_MagnitudExtremaRechazada(t *testing.T) {
	uc, _, d := setup(t)
	ctx := context.Background()

	for _, v := range []string{"1e20000000", "1e2000000000", "1e-2000000000"} {
		_, err := uc.SetItemField(ctx, d.ID, 0, 0, dto.SetItemFieldRequest{Field: "rate", Value: dto.FormValue(v)})
		assert.ErrorIs(t, err, domain.ErrInvalidInput, "rate=%q", v)
	}

	cur, err := uc.Get(ctx, d.ID)
	require.NoError(t, err)
	assert.Equal(t, uint64(1), cur.Version)
	assert.Equal(t, d.Document, cur.Document)
	assert.Equal(t, "0.00", cur.Totals.Total)
}

func TestAddRemoveItem(t *testing.T) {
	uc, _, d := setup(t)
	ctx := context.Background()

	got, err := uc.AddItem(ctx, d.ID, 0)
	require.NoError(t, err)
	assert.Len(t, got.Document.Items, 2)

	got, err = uc.RemoveItem(ctx, d.ID, 0, 1)
	require.NoError(t, err)
	assert.Len(t, got.Document.Items, 1)

	_, err = uc.RemoveItem(ctx, d.ID, 0, 5)
	assert.ErrorIs(t, err, domain.ErrItemIndexOutOfRange)
}

func TestVersionEsperada(t *testing.T) {
	uc, _, d := setup(t)
	ctx := context.Background()

	_, err := uc.AddItem(ctx, d.ID, 1)
	require.NoError(t, err)
	_, err = uc.AddItem(ctx, d.ID, 1)
	assert.ErrorIs(t, err, domain.ErrConflict)
}

func TestLogo_UploadYClear(t *testing.T) {
	uc, _, d := setup(t)
	ctx := context.Background()

	var buf bytes.Buffer
	require.NoError(t, imaging.Encode(&buf, imaging.New(3, 3, color.White), imaging.PNG))

	got, err := uc.UploadLogo(ctx, d.ID, 0, &buf)
	require.NoError(t, err)
	require.NotNil(t, got.Document.CompanyLogo)
	assert.Contains(t, *got.Document.CompanyLogo, "data:image/png;base64,")

	got, err = uc.ClearLogo(ctx, d.ID, 0)
	require.NoError(t, err)
	assert.Nil(t, got.Document.CompanyLogo)

	_, err = uc.SetLogoDataURL(ctx, d.ID, 0, dto.SetLogoRequest{DataURL: "data:text/plain;base64,aG9sYQ=="})
	assert.ErrorIs(t, err, domain.ErrUnsupportedImage)

	_, err = uc.UploadLogo(ctx, "no-existe", 0, bytes.NewReader(nil))
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestDelete(t *testing.T) {
	uc, _, d := setup(t)
	ctx := context.Background()

	require.NoError(t, uc.Delete(ctx, d.ID))
	_, err := uc.Get(ctx, d.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// ──────────────────────────────────────────────────────────────────────────────
// Exportación
// ──────────────────────────────────────────────────────────────────────────────

func TestExport_UsaSnapshotYTotales(t *testing.T) {
	uc, repo, d := setup(t)
	ctx := context.Background()
	_, err := uc.SetItemField(ctx, d.ID, 0, 0, dto.SetItemFieldRequest{Field: "rate", Value: "50"})
	require.NoError(t, err)

	gen := &fakeGenerator{}
	exp := billing.NewExportUseCase(repo, gen, "", nil)

	pdf, name, err := exp.DownloadInvoicePDF(ctx, d.ID)
	require.NoError(t, err)
	assert.Equal(t, "Invoice.pdf", name)
	assert.True(t, bytes.HasPrefix(pdf, []byte("%PDF")))
	assert.Equal(t, 1, gen.calls)
	assert.Equal(t, "59.00", gen.totals.SubTotal.StringFixed(2))

	// Editar después no altera el snapshot ya entregado al generador.
	_, err = uc.SetItemField(ctx, d.ID, 0, 0, dto.SetItemFieldRequest{Field: "rate", Value: "80"})
	require.NoError(t, err)
	assert.Equal(t, "50", gen.doc.Items[0].Rate.String())
}

func TestExport_FalloDelGeneradorNoRompeLaSesion(t *testing.T) {
	uc, repo, d := setup(t)
	ctx := context.Background()

	exp := billing.NewExportUseCase(repo, &fakeGenerator{err: errors.New("sin fuentes")}, "Invoice.pdf", nil)
	_, _, err := exp.DownloadInvoicePDF(ctx, d.ID)
	assert.ErrorIs(t, err, domain.ErrExportFailed)

	_, err = uc.AddItem(ctx, d.ID, 0)
	assert.NoError(t, err, "el borrador sigue editable tras un fallo de exportación")
}

func TestExport_BorradorInexistente(t *testing.T) {
	exp := billing.NewExportUseCase(memory.NewDraftRepository(nil), &fakeGenerator{}, "", nil)
	_, _, err := exp.DownloadInvoicePDF(context.Background(), "no-existe")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
