package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound            = errors.New("recurso no encontrado")
	ErrInvalidInput        = errors.New("entrada inválida")
	ErrUnknownField        = errors.New("campo desconocido")
	ErrItemIndexOutOfRange = errors.New("índice de línea fuera de rango")
	ErrUnsupportedImage    = errors.New("el archivo no es una imagen soportada")
	ErrUnauthorized        = errors.New("no autorizado")
	ErrForbidden           = errors.New("acceso denegado")
	ErrConflict            = errors.New("conflicto con el estado actual")
	ErrExportFailed        = errors.New("falló la exportación del documento")
)
