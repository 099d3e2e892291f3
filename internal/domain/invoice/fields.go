package invoice

// Claves de campos escalares del documento (nombres usados por la API).
const (
	FieldInvoiceTitle  = "invoiceTitle"
	FieldYourCompany   = "yourCompany"
	FieldYourName      = "yourName"
	FieldYourGSTIN     = "yourGSTIN"
	FieldYourAddress   = "yourAddress"
	FieldYourCity      = "yourCity"
	FieldYourState     = "yourState"
	FieldYourCountry   = "yourCountry"
	FieldClientCompany = "clientCompany"
	FieldClientGSTIN   = "clientGSTIN"
	FieldClientAddress = "clientAddress"
	FieldClientCity    = "clientCity"
	FieldClientState   = "clientState"
	FieldClientCountry = "clientCountry"
	FieldInvoiceNumber = "invoiceNumber"
	FieldInvoiceDate   = "invoiceDate"
	FieldDueDate       = "dueDate"
	FieldCurrency      = "currency"
	FieldNotesTitle    = "notesTitle"
	FieldNotes         = "notes"
	FieldTermsTitle    = "termsTitle"
	FieldTerms         = "terms"
)

// Campos editables de una línea.
const (
	ItemDescription = "description"
	ItemQuantity    = "quantity"
	ItemRate        = "rate"
	ItemSGST        = "sgst"
	ItemCGST        = "cgst"
	ItemCess        = "cess"
)

// DocumentFields lista ordenada de claves aceptadas por SetField.
var DocumentFields = []string{
	FieldInvoiceTitle,
	FieldYourCompany, FieldYourName, FieldYourGSTIN, FieldYourAddress,
	FieldYourCity, FieldYourState, FieldYourCountry,
	FieldClientCompany, FieldClientGSTIN, FieldClientAddress,
	FieldClientCity, FieldClientState, FieldClientCountry,
	FieldInvoiceNumber, FieldInvoiceDate, FieldDueDate, FieldCurrency,
	FieldNotesTitle, FieldNotes, FieldTermsTitle, FieldTerms,
}

// ItemFields lista ordenada de claves aceptadas por SetItemField.
var ItemFields = []string{ItemDescription, ItemQuantity, ItemRate, ItemSGST, ItemCGST, ItemCess}

// IsAmountInput indica si el campo participa en la fórmula de Amount.
func IsAmountInput(field string) bool {
	switch field {
	case ItemQuantity, ItemRate, ItemSGST, ItemCGST, ItemCess:
		return true
	}
	return false
}
