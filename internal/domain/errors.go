package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound        = errors.New("recurso no encontrado")
	ErrUserNotFound    = errors.New("usuario no encontrado")
	ErrInvalidInput    = errors.New("entrada inválida")
	ErrInvalidRole     = errors.New("rol inválido")
	ErrUnauthenticated = errors.New("credencial ausente o inválida")
	ErrInactiveUser    = errors.New("cuenta inactiva")
	ErrNotOwner        = errors.New("solo el creador puede eliminar el recurso")
)
