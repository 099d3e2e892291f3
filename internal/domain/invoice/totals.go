// Package invoice contiene la lógica pura del borrador de factura GST:
// cálculo de totales y funciones de actualización que devuelven un documento nuevo.
package invoice

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/gst-invoice/internal/domain/entity"
)

var hundred = decimal.NewFromInt(100)

// Totals agregados derivados de las líneas. Nunca se almacenan.
type Totals struct {
	SubTotal      decimal.Decimal
	TotalSGST     decimal.Decimal
	TotalCGST     decimal.Decimal
	Total         decimal.Decimal
	EffectiveSGST decimal.Decimal // % efectivo sobre SubTotal; 0 si SubTotal es 0
	EffectiveCGST decimal.Decimal // % efectivo sobre SubTotal; 0 si SubTotal es 0
}

// FormattedTotals versión de presentación con dos decimales.
type FormattedTotals struct {
	SubTotal      string
	TotalSGST     string
	TotalCGST     string
	Total         string
	EffectiveSGST string
	EffectiveCGST string
}

// LineAmount = Quantity * Rate * (1 + (SGST + CGST + Cess) / 100).
func LineAmount(item entity.LineItem) decimal.Decimal {
	taxes := item.SGST.Add(item.CGST).Add(item.Cess)
	factor := decimal.NewFromInt(1).Add(taxes.Div(hundred))
	return item.Quantity.Mul(item.Rate).Mul(factor)
}

// ComputeTotals calcula los agregados del documento. Función pura: una lista vacía da todo en cero.
//
// El SGST/CGST agregado se calcula sobre Amount, que ya incluye impuestos; el Total
// suma ambos sobre el SubTotal.
func ComputeTotals(items []entity.LineItem) Totals {
	var sub, sgst, cgst decimal.Decimal
	for _, it := range items {
		sub = sub.Add(it.Amount)
		sgst = sgst.Add(it.Amount.Mul(it.SGST).Div(hundred))
		cgst = cgst.Add(it.Amount.Mul(it.CGST).Div(hundred))
	}
	return Totals{
		SubTotal:      sub,
		TotalSGST:     sgst,
		TotalCGST:     cgst,
		Total:         sub.Add(sgst).Add(cgst),
		EffectiveSGST: effectivePercent(sgst, sub),
		EffectiveCGST: effectivePercent(cgst, sub),
	}
}

// effectivePercent devuelve part/base*100, o cero cuando base es cero.
func effectivePercent(part, base decimal.Decimal) decimal.Decimal {
	if base.IsZero() {
		return decimal.Zero
	}
	return part.Div(base).Mul(hundred)
}

// Format redondea a dos decimales para mostrar ("0.00", nunca "NaN").
func (t Totals) Format() FormattedTotals {
	return FormattedTotals{
		SubTotal:      t.SubTotal.StringFixed(2),
		TotalSGST:     t.TotalSGST.StringFixed(2),
		TotalCGST:     t.TotalCGST.StringFixed(2),
		Total:         t.Total.StringFixed(2),
		EffectiveSGST: t.EffectiveSGST.StringFixed(2),
		EffectiveCGST: t.EffectiveCGST.StringFixed(2),
	}
}
