package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/gst-invoice/pkg/catalog"
)

// SetFieldRequest body para PATCH /api/drafts/:id/fields.
type SetFieldRequest struct {
	Key   string    `json:"key"`
	Value FormValue `json:"value"`
}

// SetItemFieldRequest body para PATCH /api/drafts/:id/items/:index.
type SetItemFieldRequest struct {
	Field string    `json:"field"`
	Value FormValue `json:"value"`
}

// SetLogoRequest body JSON alternativo al multipart para PUT /api/drafts/:id/logo.
type SetLogoRequest struct {
	DataURL string `json:"data_url"`
}

// LineItemResponse línea del borrador. Amount va también formateado a dos decimales.
type LineItemResponse struct {
	Description   string          `json:"description"`
	Quantity      decimal.Decimal `json:"quantity"`
	Rate          decimal.Decimal `json:"rate"`
	SGST          decimal.Decimal `json:"sgst"`
	CGST          decimal.Decimal `json:"cgst"`
	Cess          decimal.Decimal `json:"cess"`
	Amount        decimal.Decimal `json:"amount"`
	AmountDisplay string          `json:"amount_display"`
}

// InvoiceDocumentResponse documento con las mismas claves que acepta SetField.
type InvoiceDocumentResponse struct {
	InvoiceTitle  string             `json:"invoiceTitle"`
	YourCompany   string             `json:"yourCompany"`
	YourName      string             `json:"yourName"`
	YourGSTIN     string             `json:"yourGSTIN"`
	YourAddress   string             `json:"yourAddress"`
	YourCity      string             `json:"yourCity"`
	YourState     string             `json:"yourState"`
	YourCountry   string             `json:"yourCountry"`
	ClientCompany string             `json:"clientCompany"`
	ClientGSTIN   string             `json:"clientGSTIN"`
	ClientAddress string             `json:"clientAddress"`
	ClientCity    string             `json:"clientCity"`
	ClientState   string             `json:"clientState"`
	ClientCountry string             `json:"clientCountry"`
	InvoiceNumber string             `json:"invoiceNumber"`
	InvoiceDate   string             `json:"invoiceDate"`
	DueDate       string             `json:"dueDate"`
	Currency      string             `json:"currency"`
	Items         []LineItemResponse `json:"items"`
	NotesTitle    string             `json:"notesTitle"`
	Notes         string             `json:"notes"`
	TermsTitle    string             `json:"termsTitle"`
	Terms         string             `json:"terms"`
	CompanyLogo   *string            `json:"companyLogo"` // data URL o null
}

// TotalsResponse totales derivados, formateados a dos decimales.
type TotalsResponse struct {
	SubTotal       string `json:"sub_total"`
	TotalSGST      string `json:"total_sgst"`
	TotalCGST      string `json:"total_cgst"`
	Total          string `json:"total"`
	EffectiveSGST  string `json:"effective_sgst"` // "0.00" si el subtotal es 0
	EffectiveCGST  string `json:"effective_cgst"`
	Currency       string `json:"currency"`
	CurrencySymbol string `json:"currency_symbol"`
}

// DraftResponse snapshot del borrador con totales recalculados.
// Token solo se devuelve al crear el borrador.
type DraftResponse struct {
	ID        string                  `json:"id"`
	Version   uint64                  `json:"version"`
	Document  InvoiceDocumentResponse `json:"document"`
	Totals    TotalsResponse          `json:"totals"`
	Token     string                  `json:"token,omitempty"`
	CreatedAt time.Time               `json:"created_at"`
	UpdatedAt time.Time               `json:"updated_at"`
}

// CatalogResponse listas del formulario para GET /api/catalog.
type CatalogResponse struct {
	Countries      []string           `json:"countries"`
	Currencies     []catalog.Currency `json:"currencies"`
	DocumentFields []string           `json:"document_fields"`
	ItemFields     []string           `json:"item_fields"`
}
