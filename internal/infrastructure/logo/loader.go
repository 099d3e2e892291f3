// Package logo convierte imágenes subidas en data URLs autocontenidas para el borrador.
package logo

import (
	"context"
	"encoding/base64"
	"fmt"
	"io"
	"strings"

	"github.com/gabriel-vasile/mimetype"

	"github.com/jhoicas/gst-invoice/internal/domain"
	"github.com/jhoicas/gst-invoice/internal/domain/entity"
)

const dataURLPrefix = "data:"

// Loader lee la imagen, detecta su tipo por contenido y la codifica en base64.
// No valida tamaño: el límite lo impone el cuerpo HTTP.
type Loader struct{}

// NewLoader construye el cargador.
func NewLoader() *Loader { return &Loader{} }

// Load lee r completo y devuelve el logo como data URL. Solo acepta image/*.
func (l *Loader) Load(ctx context.Context, r io.Reader) (*entity.Logo, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("logo: leer archivo: %w", err)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return l.FromBytes(data)
}

// FromBytes codifica una imagen ya leída.
func (l *Loader) FromBytes(data []byte) (*entity.Logo, error) {
	if len(data) == 0 {
		return nil, fmt.Errorf("%w: archivo vacío", domain.ErrUnsupportedImage)
	}
	mime, err := detectImage(data)
	if err != nil {
		return nil, err
	}
	return &entity.Logo{
		DataURL:  dataURLPrefix + mime + ";base64," + base64.StdEncoding.EncodeToString(data),
		MimeType: mime,
	}, nil
}

// FromDataURL valida una data URL enviada por el cliente. El tipo declarado se
// ignora: manda el contenido.
func (l *Loader) FromDataURL(dataURL string) (*entity.Logo, error) {
	_, data, err := DecodeDataURL(dataURL)
	if err != nil {
		return nil, err
	}
	return l.FromBytes(data)
}

// DecodeDataURL separa una data URL base64 en tipo declarado y bytes.
func DecodeDataURL(dataURL string) (mime string, data []byte, err error) {
	if !strings.HasPrefix(dataURL, dataURLPrefix) {
		return "", nil, fmt.Errorf("%w: no es una data URL", domain.ErrInvalidInput)
	}
	meta, payload, ok := strings.Cut(strings.TrimPrefix(dataURL, dataURLPrefix), ",")
	if !ok || !strings.HasSuffix(meta, ";base64") {
		return "", nil, fmt.Errorf("%w: data URL sin codificación base64", domain.ErrInvalidInput)
	}
	data, err = base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return "", nil, fmt.Errorf("%w: base64 inválido", domain.ErrInvalidInput)
	}
	return strings.TrimSuffix(meta, ";base64"), data, nil
}

func detectImage(data []byte) (string, error) {
	m := mimetype.Detect(data)
	mime, _, _ := strings.Cut(m.String(), ";")
	if !strings.HasPrefix(mime, "image/") {
		return "", fmt.Errorf("%w: tipo detectado %s", domain.ErrUnsupportedImage, mime)
	}
	return mime, nil
}

// Bytes decodifica el contenido de un logo del borrador.
func Bytes(l *entity.Logo) ([]byte, error) {
	if l == nil {
		return nil, nil
	}
	_, data, err := DecodeDataURL(l.DataURL)
	if err != nil {
		return nil, err
	}
	return data, nil
}
