package entity

import "github.com/shopspring/decimal"

// LineItem representa una fila facturable del borrador.
// Amount es derivado: Quantity * Rate * (1 + (SGST + CGST + Cess) / 100).
type LineItem struct {
	Description string
	Quantity    decimal.Decimal
	Rate        decimal.Decimal
	SGST        decimal.Decimal // porcentaje
	CGST        decimal.Decimal // porcentaje
	Cess        decimal.Decimal // porcentaje
	Amount      decimal.Decimal
}

// NewLineItem devuelve la línea por defecto: cantidad 1, tarifa 0, SGST 9%, CGST 9%, cess 0%.
func NewLineItem() LineItem {
	return LineItem{
		Quantity: decimal.NewFromInt(1),
		Rate:     decimal.Zero,
		SGST:     decimal.NewFromInt(9),
		CGST:     decimal.NewFromInt(9),
		Cess:     decimal.Zero,
		Amount:   decimal.Zero,
	}
}
