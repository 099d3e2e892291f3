package invoice

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"

	"github.com/jhoicas/gst-invoice/internal/domain"
	"github.com/jhoicas/gst-invoice/internal/domain/entity"
)

// Las funciones de este archivo nunca modifican el documento recibido: clonan,
// aplican el cambio y devuelven el nuevo snapshot. Ante error devuelven el original.

// SetField reemplaza un único campo escalar del documento.
func SetField(doc entity.InvoiceDocument, key, value string) (entity.InvoiceDocument, error) {
	out := doc.Clone()
	switch key {
	case FieldInvoiceTitle:
		out.Title = value
	case FieldYourCompany:
		out.Seller.Company = value
	case FieldYourName:
		out.Seller.Name = value
	case FieldYourGSTIN:
		out.Seller.GSTIN = value
	case FieldYourAddress:
		out.Seller.Address = value
	case FieldYourCity:
		out.Seller.City = value
	case FieldYourState:
		out.Seller.State = value
	case FieldYourCountry:
		out.Seller.Country = value
	case FieldClientCompany:
		out.Buyer.Company = value
	case FieldClientGSTIN:
		out.Buyer.GSTIN = value
	case FieldClientAddress:
		out.Buyer.Address = value
	case FieldClientCity:
		out.Buyer.City = value
	case FieldClientState:
		out.Buyer.State = value
	case FieldClientCountry:
		out.Buyer.Country = value
	case FieldInvoiceNumber:
		out.InvoiceNumber = value
	case FieldInvoiceDate:
		out.InvoiceDate = value
	case FieldDueDate:
		out.DueDate = value
	case FieldCurrency:
		code, err := ParseCurrency(value)
		if err != nil {
			return doc, err
		}
		out.Currency = code
	case FieldNotesTitle:
		out.NotesTitle = value
	case FieldNotes:
		out.Notes = value
	case FieldTermsTitle:
		out.TermsTitle = value
	case FieldTerms:
		out.Terms = value
	default:
		return doc, fmt.Errorf("%w: %q", domain.ErrUnknownField, key)
	}
	return out, nil
}

// SetItemField reemplaza un campo de la línea index. Si el campo es numérico se
// recalcula Amount antes de devolver el documento; la descripción no lo toca.
// Un número mal formado se rechaza (ErrInvalidInput) y el documento queda igual.
func SetItemField(doc entity.InvoiceDocument, index int, field, value string) (entity.InvoiceDocument, error) {
	if index < 0 || index >= len(doc.Items) {
		return doc, fmt.Errorf("%w: %d (líneas: %d)", domain.ErrItemIndexOutOfRange, index, len(doc.Items))
	}
	out := doc.Clone()
	item := out.Items[index]

	if field == ItemDescription {
		item.Description = value
		out.Items[index] = item
		return out, nil
	}
	if !IsAmountInput(field) {
		return doc, fmt.Errorf("%w: %q", domain.ErrUnknownField, field)
	}

	n, err := ParseNumber(value)
	if err != nil {
		return doc, fmt.Errorf("%s: %w", field, err)
	}
	switch field {
	case ItemQuantity:
		item.Quantity = n
	case ItemRate:
		item.Rate = n
	case ItemSGST:
		item.SGST = n
	case ItemCGST:
		item.CGST = n
	case ItemCess:
		item.Cess = n
	}
	item.Amount = LineAmount(item)
	out.Items[index] = item
	return out, nil
}

// AddItem agrega una línea por defecto al final.
func AddItem(doc entity.InvoiceDocument) entity.InvoiceDocument {
	out := doc.Clone()
	out.Items = append(out.Items, entity.NewLineItem())
	return out
}

// RemoveItem quita la línea index conservando el orden relativo del resto.
func RemoveItem(doc entity.InvoiceDocument, index int) (entity.InvoiceDocument, error) {
	if index < 0 || index >= len(doc.Items) {
		return doc, fmt.Errorf("%w: %d (líneas: %d)", domain.ErrItemIndexOutOfRange, index, len(doc.Items))
	}
	out := doc.Clone()
	out.Items = append(out.Items[:index], out.Items[index+1:]...)
	return out, nil
}

// SetLogo reemplaza el logo. Un logo nil lo elimina.
func SetLogo(doc entity.InvoiceDocument, logo *entity.Logo) entity.InvoiceDocument {
	out := doc.Clone()
	if logo == nil {
		out.Logo = nil
		return out
	}
	l := *logo
	out.Logo = &l
	return out
}

// Límites de un valor numérico del formulario. El exponente se acota antes de
// comparar magnitudes: Cmp reescala al menor exponente y con 1e2000000000 eso
// no termina.
const (
	maxNumberLen  = 40
	minExponent   = -10
	maxExponent   = 15
	maxFormDigits = 15
)

// maxFormValue |valor| máximo aceptado (1e15).
var maxFormValue = decimal.New(1, maxFormDigits)

// ParseNumber interpreta un valor numérico del formulario. Vacío, NaN, texto
// no numérico o fuera de rango (|v| > 1e15, más de 10 decimales) devuelven ErrInvalidInput.
func ParseNumber(value string) (decimal.Decimal, error) {
	s := strings.TrimSpace(value)
	if s == "" {
		return decimal.Zero, fmt.Errorf("%w: valor numérico vacío", domain.ErrInvalidInput)
	}
	if len(s) > maxNumberLen {
		return decimal.Zero, fmt.Errorf("%w: valor numérico demasiado largo", domain.ErrInvalidInput)
	}
	n, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: %q no es un número", domain.ErrInvalidInput, value)
	}
	if e := n.Exponent(); e < minExponent || e > maxExponent {
		return decimal.Zero, fmt.Errorf("%w: %q fuera de rango", domain.ErrInvalidInput, value)
	}
	if n.Abs().GreaterThan(maxFormValue) {
		return decimal.Zero, fmt.Errorf("%w: %q fuera de rango", domain.ErrInvalidInput, value)
	}
	return n, nil
}

// ParseCurrency normaliza un código ISO 4217 ("inr" → "INR").
func ParseCurrency(value string) (string, error) {
	unit, err := currency.ParseISO(strings.ToUpper(strings.TrimSpace(value)))
	if err != nil {
		return "", fmt.Errorf("%w: moneda %q", domain.ErrInvalidInput, value)
	}
	return unit.String(), nil
}
