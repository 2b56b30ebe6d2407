package usecase

import (
	"github.com/jhoicas/tienda-cli/internal/application/auth"
	"github.com/jhoicas/tienda-cli/internal/domain"
	"github.com/jhoicas/tienda-cli/internal/domain/entity"
	"github.com/jhoicas/tienda-cli/pkg/logger"
)

// guard resuelve la autorización de los casos de uso contra la sesión. Cada
// operación protegida exige exactamente una capacidad antes de tocar un store.
type guard struct {
	log *logger.Logger
}

func (g guard) require(s *auth.Session, c entity.Capability) error {
	if s.Can(c) {
		return nil
	}
	g.log.Warn().
		Str("capability", c.String()).
		Str("username", s.Username()).
		Msg("operación denegada por permisos")
	return domain.ErrPermissionDenied
}
