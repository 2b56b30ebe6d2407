package auth

import (
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/tienda-cli/internal/domain/entity"
)

// Session sesión autenticada que vive lo que dura el proceso. El ID solo
// correlaciona los eventos de log de una misma corrida.
type Session struct {
	ID       uuid.UUID
	User     *entity.User
	IssuedAt time.Time
}

// Can informa si el usuario de la sesión tiene la capacidad dada.
func (s *Session) Can(c entity.Capability) bool {
	if s == nil || s.User == nil {
		return false
	}
	return s.User.Has(c)
}

// Username nombre del usuario autenticado; se estampa como cajero en ventas.
func (s *Session) Username() string {
	if s == nil || s.User == nil {
		return ""
	}
	return s.User.Username
}
