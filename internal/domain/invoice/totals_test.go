package invoice_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/gst-invoice/internal/domain/entity"
	"github.com/jhoicas/gst-invoice/internal/domain/invoice"
)

func item(q, r, s, c, z float64) entity.LineItem {
	it := entity.LineItem{
		Quantity: decimal.NewFromFloat(q),
		Rate:     decimal.NewFromFloat(r),
		SGST:     decimal.NewFromFloat(s),
		CGST:     decimal.NewFromFloat(c),
		Cess:     decimal.NewFromFloat(z),
	}
	it.Amount = invoice.LineAmount(it)
	return it
}

// ──────────────────────────────────────────────────────────────────────────────
// LineAmount
// ──────────────────────────────────────────────────────────────────────────────

func TestLineAmount(t *testing.T) {
	tests := []struct {
		name string
		item entity.LineItem
		want string
	}{
		{"línea por defecto", entity.NewLineItem(), "0"},
		{"2 x 100 con 18%", item(2, 100, 9, 9, 0), "236"},
		{"con cess", item(3, 50, 6, 6, 12), "186"},
		{"sin impuestos", item(4, 12.5, 0, 0, 0), "50"},
		{"cantidad fraccionaria", item(0.5, 10, 2.5, 2.5, 0), "5.25"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := invoice.LineAmount(tt.item)
			assert.True(t, got.Equal(decimal.RequireFromString(tt.want)),
				"amount = %s, se esperaba %s", got, tt.want)
		})
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// ComputeTotals
// ──────────────────────────────────────────────────────────────────────────────

func TestComputeTotals_ListaVacia(t *testing.T) {
	for _, items := range [][]entity.LineItem{nil, {}} {
		tot := invoice.ComputeTotals(items)
		assert.True(t, tot.SubTotal.IsZero())
		assert.True(t, tot.TotalSGST.IsZero())
		assert.True(t, tot.TotalCGST.IsZero())
		assert.True(t, tot.Total.IsZero())

		f := tot.Format()
		assert.Equal(t, "0.00", f.EffectiveSGST, "el % efectivo debe ser 0.00 y no NaN")
		assert.Equal(t, "0.00", f.EffectiveCGST)
		assert.Equal(t, "0.00", f.Total)
	}
}

func TestComputeTotals_VectorDeReferencia(t *testing.T) {
	tot := invoice.ComputeTotals([]entity.LineItem{item(2, 100, 9, 9, 0)})
	f := tot.Format()

	assert.Equal(t, "236.00", f.SubTotal)
	assert.Equal(t, "21.24", f.TotalSGST)
	assert.Equal(t, "21.24", f.TotalCGST)
	assert.Equal(t, "278.48", f.Total)
	assert.Equal(t, "9.00", f.EffectiveSGST)
	assert.Equal(t, "9.00", f.EffectiveCGST)
}

func TestComputeTotals_VariasLineas(t *testing.T) {
	items := []entity.LineItem{
		item(2, 100, 9, 9, 0),  // 236
		item(1, 1000, 6, 6, 0), // 1120
		item(10, 5, 0, 0, 0),   // 50
	}
	tot := invoice.ComputeTotals(items)

	// SGST = 236*0.09 + 1120*0.06 = 21.24 + 67.20 = 88.44
	assert.Equal(t, "1406.00", tot.SubTotal.StringFixed(2))
	assert.Equal(t, "88.44", tot.TotalSGST.StringFixed(2))
	assert.Equal(t, "88.44", tot.TotalCGST.StringFixed(2))
	assert.Equal(t, "1582.88", tot.Total.StringFixed(2))
	assert.Equal(t, "6.29", tot.EffectiveSGST.StringFixed(2))
}

func TestComputeTotals_SubtotalCeroConLineas(t *testing.T) {
	// Tarifa 0 en todas las líneas: subtotal 0 pero la lista no está vacía.
	items := []entity.LineItem{entity.NewLineItem(), entity.NewLineItem()}
	f := invoice.ComputeTotals(items).Format()
	assert.Equal(t, "0.00", f.EffectiveSGST)
	assert.Equal(t, "0.00", f.EffectiveCGST)
}

func TestComputeTotals_NoModificaEntrada(t *testing.T) {
	items := []entity.LineItem{item(2, 100, 9, 9, 0)}
	before := items[0]
	_ = invoice.ComputeTotals(items)
	assert.Equal(t, before, items[0])
}
