package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound         = errors.New("recurso no encontrado")
	ErrInvalidInput     = errors.New("entrada inválida")
	ErrInvalidReference = errors.New("la referencia no resuelve a un registro existente")
	ErrUnauthorized     = errors.New("no autorizado")
)
