package auth

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/tienda-cli/internal/domain"
	"github.com/jhoicas/tienda-cli/internal/domain/entity"
	"github.com/jhoicas/tienda-cli/internal/domain/repository"
	"github.com/jhoicas/tienda-cli/pkg/logger"
	"github.com/jhoicas/tienda-cli/pkg/passhash"
)

// Config credenciales de arranque y política de passwords.
type Config struct {
	BootstrapUser     string
	BootstrapPassword string
	MinPasswordLen    int
}

// AuthUseCase casos de uso de autenticación: bootstrap, login y cambio de password.
type AuthUseCase struct {
	users repository.UserRepository
	cfg   Config
	log   *logger.Logger
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(users repository.UserRepository, cfg Config, log *logger.Logger) *AuthUseCase {
	return &AuthUseCase{users: users, cfg: cfg, log: log}
}

// EnsureBootstrap crea el administrador inicial con todos los permisos cuando
// el archivo de usuarios todavía no existe. Con el archivo presente no hace
// nada, aunque esté vacío.
func (uc *AuthUseCase) EnsureBootstrap() error {
	exists, err := uc.users.Exists()
	if err != nil {
		return fmt.Errorf("verificar archivo de usuarios: %w", err)
	}
	if exists {
		return nil
	}
	hash, err := passhash.Hash(uc.cfg.BootstrapPassword)
	if err != nil {
		return fmt.Errorf("hashear password inicial: %w", err)
	}
	admin := &entity.User{
		Username:     uc.cfg.BootstrapUser,
		PasswordHash: hash,
		Capabilities: entity.CapAll,
		IsActive:     true,
	}
	if err := uc.users.Create(admin); err != nil {
		return fmt.Errorf("crear usuario inicial: %w", err)
	}
	uc.log.Warn().Str("username", admin.Username).Msg("usuario administrador inicial creado; cambie el password")
	return nil
}

// Login valida credenciales y abre una sesión. Usuario inexistente, password
// incorrecto y cuenta inactiva responden el mismo ErrInvalidCredentials, sin
// distinguir la causa.
func (uc *AuthUseCase) Login(username, password string) (*Session, error) {
	user, err := uc.users.GetByUsername(username)
	if err != nil {
		return nil, fmt.Errorf("buscar usuario: %w", err)
	}
	if user == nil || !passhash.Verify(password, user.PasswordHash) || !user.IsActive {
		uc.log.Warn().Str("username", username).Msg("login rechazado")
		return nil, domain.ErrInvalidCredentials
	}
	if passhash.NeedsRehash(user.PasswordHash) {
		uc.log.Warn().Str("username", user.Username).Msg("hash de password heredado; cambie el password para migrarlo")
	}
	uc.log.Info().Int("user_id", user.ID).Str("username", user.Username).Msg("login correcto")
	return &Session{ID: uuid.New(), User: user, IssuedAt: time.Now()}, nil
}

// ChangePassword verifica el password vigente y persiste el nuevo. Un hash
// djb2 heredado queda migrado a argon2id en esta misma operación.
func (uc *AuthUseCase) ChangePassword(s *Session, oldPassword, newPassword string) error {
	if s == nil || s.User == nil {
		return domain.ErrInvalidCredentials
	}
	if !passhash.Verify(oldPassword, s.User.PasswordHash) {
		return domain.ErrInvalidCredentials
	}
	if len(newPassword) < uc.cfg.MinPasswordLen {
		return fmt.Errorf("%w: el password requiere al menos %d caracteres", domain.ErrValidation, uc.cfg.MinPasswordLen)
	}
	hash, err := passhash.Hash(newPassword)
	if err != nil {
		return fmt.Errorf("hashear password nuevo: %w", err)
	}
	s.User.PasswordHash = hash
	if err := uc.users.Update(s.User); err != nil {
		return fmt.Errorf("guardar password: %w", err)
	}
	uc.log.Info().Int("user_id", s.User.ID).Msg("password actualizado")
	return nil
}
