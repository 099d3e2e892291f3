// Package catalog listas fijas que ofrece el formulario (países y monedas).
package catalog

// Countries países disponibles para emisor y cliente.
var Countries = []string{
	"India", "United States", "United Kingdom", "Canada", "Australia",
	"Germany", "France", "Japan", "Singapore", "United Arab Emirates",
}

// Currency moneda ofrecida en el selector del total. Solo es una etiqueta: no hay conversión.
type Currency struct {
	Code   string `json:"code"`
	Symbol string `json:"symbol"`
}

// Currencies monedas del selector, en orden de presentación.
var Currencies = []Currency{
	{Code: "INR", Symbol: "₹"},
	{Code: "USD", Symbol: "$"},
	{Code: "EUR", Symbol: "€"},
}

// Symbol devuelve el símbolo del código o el propio código si no está en el catálogo.
func Symbol(code string) string {
	for _, c := range Currencies {
		if c.Code == code {
			return c.Symbol
		}
	}
	return code
}
