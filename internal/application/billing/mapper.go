package billing

import (
	"github.com/jhoicas/gst-invoice/internal/application/dto"
	"github.com/jhoicas/gst-invoice/internal/domain/entity"
	"github.com/jhoicas/gst-invoice/internal/domain/invoice"
	"github.com/jhoicas/gst-invoice/pkg/catalog"
)

func entityToDraftResponse(d *entity.Draft) *dto.DraftResponse {
	if d == nil {
		return nil
	}
	return &dto.DraftResponse{
		ID:        d.ID,
		Version:   d.Version,
		Document:  documentToResponse(d.Document),
		Totals:    totalsToResponse(d.Document),
		CreatedAt: d.CreatedAt,
		UpdatedAt: d.UpdatedAt,
	}
}

func documentToResponse(doc entity.InvoiceDocument) dto.InvoiceDocumentResponse {
	items := make([]dto.LineItemResponse, 0, len(doc.Items))
	for _, it := range doc.Items {
		items = append(items, dto.LineItemResponse{
			Description:   it.Description,
			Quantity:      it.Quantity,
			Rate:          it.Rate,
			SGST:          it.SGST,
			CGST:          it.CGST,
			Cess:          it.Cess,
			Amount:        it.Amount,
			AmountDisplay: it.Amount.StringFixed(2),
		})
	}
	var logo *string
	if doc.Logo != nil {
		s := doc.Logo.DataURL
		logo = &s
	}
	return dto.InvoiceDocumentResponse{
		InvoiceTitle:  doc.Title,
		YourCompany:   doc.Seller.Company,
		YourName:      doc.Seller.Name,
		YourGSTIN:     doc.Seller.GSTIN,
		YourAddress:   doc.Seller.Address,
		YourCity:      doc.Seller.City,
		YourState:     doc.Seller.State,
		YourCountry:   doc.Seller.Country,
		ClientCompany: doc.Buyer.Company,
		ClientGSTIN:   doc.Buyer.GSTIN,
		ClientAddress: doc.Buyer.Address,
		ClientCity:    doc.Buyer.City,
		ClientState:   doc.Buyer.State,
		ClientCountry: doc.Buyer.Country,
		InvoiceNumber: doc.InvoiceNumber,
		InvoiceDate:   doc.InvoiceDate,
		DueDate:       doc.DueDate,
		Currency:      doc.Currency,
		Items:         items,
		NotesTitle:    doc.NotesTitle,
		Notes:         doc.Notes,
		TermsTitle:    doc.TermsTitle,
		Terms:         doc.Terms,
		CompanyLogo:   logo,
	}
}

// totalsToResponse recalcula siempre: los totales no se guardan en el borrador.
func totalsToResponse(doc entity.InvoiceDocument) dto.TotalsResponse {
	f := invoice.ComputeTotals(doc.Items).Format()
	return dto.TotalsResponse{
		SubTotal:       f.SubTotal,
		TotalSGST:      f.TotalSGST,
		TotalCGST:      f.TotalCGST,
		Total:          f.Total,
		EffectiveSGST:  f.EffectiveSGST,
		EffectiveCGST:  f.EffectiveCGST,
		Currency:       doc.Currency,
		CurrencySymbol: catalog.Symbol(doc.Currency),
	}
}
