package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound           = errors.New("registro no encontrado")
	ErrDuplicate          = errors.New("registro duplicado")
	ErrValidation         = errors.New("entrada inválida")
	ErrPermissionDenied   = errors.New("permiso denegado")
	ErrInvalidCredentials = errors.New("credenciales inválidas o usuario inactivo")
	ErrInsufficientStock  = errors.New("stock insuficiente")
	ErrSelfDelete         = errors.New("no puede eliminar su propio usuario")
)
