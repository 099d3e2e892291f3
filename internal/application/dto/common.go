package dto

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// FormValue valor de un campo del formulario. Acepta string o número JSON
// ("2", 2 y 2.50 llegan como texto); null equivale a vacío.
type FormValue string

// UnmarshalJSON implementa json.Unmarshaler.
func (v *FormValue) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	switch {
	case bytes.Equal(b, []byte("null")):
		*v = ""
	case len(b) > 0 && b[0] == '"':
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*v = FormValue(s)
	default:
		var n json.Number
		if err := json.Unmarshal(b, &n); err != nil {
			return fmt.Errorf("valor de formulario inválido: %s", b)
		}
		*v = FormValue(n.String())
	}
	return nil
}
