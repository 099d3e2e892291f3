package entity

import "time"

// Draft es el contenedor de sesión de un InvoiceDocument.
// Version arranca en 1 y aumenta en cada actualización confirmada.
type Draft struct {
	ID        string
	Version   uint64
	Document  InvoiceDocument
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Clone copia el borrador completo (documento incluido).
func (d *Draft) Clone() *Draft {
	if d == nil {
		return nil
	}
	out := *d
	out.Document = d.Document.Clone()
	return &out
}
