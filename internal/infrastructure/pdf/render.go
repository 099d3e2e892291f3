package pdf

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"strings"
	"unicode/utf8"

	"github.com/disintegration/imaging"
	"golang.org/x/text/encoding/charmap"

	"github.com/jhoicas/gst-invoice/pkg/catalog"
)

// rasterizeLogo decodifica el logo, lo encaja en un cuadrado de boxPx píxeles
// conservando la proporción, lo aplana sobre blanco y lo re-codifica como JPEG.
func rasterizeLogo(raw []byte, boxPx, quality int) ([]byte, error) {
	src, err := imaging.Decode(bytes.NewReader(raw), imaging.AutoOrientation(true))
	if err != nil {
		return nil, fmt.Errorf("pdf: decodificar logo: %w", err)
	}
	fitted := imaging.Fit(src, boxPx, boxPx, imaging.Lanczos)

	// JPEG no tiene canal alfa: las zonas transparentes quedan en blanco.
	bg := imaging.New(fitted.Bounds().Dx(), fitted.Bounds().Dy(), color.White)
	flat := imaging.Overlay(bg, fitted, image.Pt(0, 0), 1.0)

	var buf bytes.Buffer
	if err := imaging.Encode(&buf, flat, imaging.JPEG, imaging.JPEGQuality(quality)); err != nil {
		return nil, fmt.Errorf("pdf: codificar logo: %w", err)
	}
	return buf.Bytes(), nil
}

// pdfText adapta s a las fuentes estándar del PDF (cp1252): las runas que no
// se pueden codificar se sustituyen por '?'.
func pdfText(s string) string {
	if s == "" {
		return s
	}
	enc := charmap.Windows1252
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if r == utf8.RuneError {
			b.WriteByte('?')
			continue
		}
		if r == '\n' || r == '\t' {
			b.WriteRune(r)
			continue
		}
		if _, ok := enc.EncodeRune(r); !ok {
			b.WriteByte('?')
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// currencyLabel símbolo de la moneda si la fuente lo puede dibujar; si no, el código ISO.
func currencyLabel(code string) string {
	sym := catalog.Symbol(code)
	if sym == "" {
		return code
	}
	for _, r := range sym {
		if _, ok := charmap.Windows1252.EncodeRune(r); !ok {
			return code
		}
	}
	return sym
}
