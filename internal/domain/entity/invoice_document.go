package entity

import "time"

// Valores por defecto de un borrador nuevo.
const (
	DefaultInvoiceTitle = "TAX INVOICE"
	DefaultCountry      = "India"
	DefaultCurrency     = "INR"
	DefaultNotesTitle   = "Notes"
	DefaultNotes        = "It was great doing business with you."
	DefaultTermsTitle   = "Terms & Conditions"
	DefaultTerms        = "Please make the payment by the due date"

	// DateLayout formato de invoiceDate y dueDate (igual que un <input type="date">).
	DateLayout = "2006-01-02"
)

// Seller datos del emisor.
type Seller struct {
	Company string
	Name    string
	GSTIN   string
	Address string
	City    string
	State   string
	Country string
}

// Buyer datos del cliente (sin nombre de contacto).
type Buyer struct {
	Company string
	GSTIN   string
	Address string
	City    string
	State   string
	Country string
}

// Logo imagen embebida como data URL ("data:image/png;base64,...").
type Logo struct {
	DataURL  string
	MimeType string
}

// InvoiceDocument es el documento completo que el usuario edita.
// Se trata como snapshot inmutable: toda modificación produce un documento nuevo.
type InvoiceDocument struct {
	Title         string
	Seller        Seller
	Buyer         Buyer
	InvoiceNumber string
	InvoiceDate   string
	DueDate       string
	Currency      string
	Items         []LineItem
	NotesTitle    string
	Notes         string
	TermsTitle    string
	Terms         string
	Logo          *Logo // nil = sin logo
}

// NewInvoiceDocument construye el documento inicial con los valores por defecto.
// now fija la fecha de factura (inyectado para que los tests sean deterministas).
func NewInvoiceDocument(now time.Time) InvoiceDocument {
	return InvoiceDocument{
		Title:       DefaultInvoiceTitle,
		Seller:      Seller{Country: DefaultCountry},
		Buyer:       Buyer{Country: DefaultCountry},
		InvoiceDate: now.Format(DateLayout),
		Currency:    DefaultCurrency,
		Items:       []LineItem{NewLineItem()},
		NotesTitle:  DefaultNotesTitle,
		Notes:       DefaultNotes,
		TermsTitle:  DefaultTermsTitle,
		Terms:       DefaultTerms,
	}
}

// Clone devuelve una copia que no comparte el slice de ítems ni el logo.
func (d InvoiceDocument) Clone() InvoiceDocument {
	out := d
	if d.Items != nil {
		out.Items = make([]LineItem, len(d.Items))
		copy(out.Items, d.Items)
	}
	if d.Logo != nil {
		logo := *d.Logo
		out.Logo = &logo
	}
	return out
}
