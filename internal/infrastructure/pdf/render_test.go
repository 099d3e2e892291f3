package pdf

import (
	"bytes"
	"image/color"
	"testing"

	"github.com/disintegration/imaging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appconfig "github.com/jhoicas/gst-invoice/pkg/config"
)

func TestPdfText(t *testing.T) {
	assert.Equal(t, "Café €5", pdfText("Café €5"))
	assert.Equal(t, "?? ok", pdfText("₹₹ ok"))
	assert.Equal(t, "a\nb", pdfText("a\nb"))
	assert.Equal(t, "", pdfText(""))
}

func TestCurrencyLabel(t *testing.T) {
	assert.Equal(t, "INR", currencyLabel("INR"), "₹ no existe en cp1252")
	assert.Equal(t, "$", currencyLabel("USD"))
	assert.Equal(t, "€", currencyLabel("EUR"))
	assert.Equal(t, "JPY", currencyLabel("JPY"))
}

func TestRasterizeLogo(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, imaging.Encode(&buf, imaging.New(100, 50, color.Black), imaging.PNG))

	out, err := rasterizeLogo(buf.Bytes(), 20, 90)
	require.NoError(t, err)

	img, err := imaging.Decode(bytes.NewReader(out))
	require.NoError(t, err)
	assert.Equal(t, 20, img.Bounds().Dx())
	assert.Equal(t, 10, img.Bounds().Dy())

	_, err = rasterizeLogo([]byte("<svg/>"), 20, 90)
	assert.Error(t, err)
}

func TestLogoHeightMM(t *testing.T) {
	g := NewMarotoPDFGenerator(appconfig.DefaultExport(), nil)
	// 1200×1600 en 190×277 mm: manda el ancho.
	assert.InDelta(t, 80*190.0/1200, g.logoHeightMM(), 1e-9)

	cfg := appconfig.DefaultExport()
	cfg.ViewportHeight = 10000
	g = NewMarotoPDFGenerator(cfg, nil)
	// Viewport muy alto: manda el alto útil.
	assert.InDelta(t, 80*277.0/10000, g.logoHeightMM(), 1e-9)
}
