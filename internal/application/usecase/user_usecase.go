package usecase

import (
	"fmt"

	"github.com/jhoicas/tienda-cli/internal/application/auth"
	"github.com/jhoicas/tienda-cli/internal/application/dto"
	"github.com/jhoicas/tienda-cli/internal/domain"
	"github.com/jhoicas/tienda-cli/internal/domain/entity"
	"github.com/jhoicas/tienda-cli/internal/domain/repository"
	"github.com/jhoicas/tienda-cli/pkg/logger"
	"github.com/jhoicas/tienda-cli/pkg/passhash"
)

// UserUseCase administración de usuarios. Toda operación, incluido el listado,
// requiere manage_users.
type UserUseCase struct {
	guard
	users          repository.UserRepository
	minPasswordLen int
}

// NewUserUseCase construye el caso de uso.
func NewUserUseCase(users repository.UserRepository, minPasswordLen int, log *logger.Logger) *UserUseCase {
	return &UserUseCase{guard: guard{log: log}, users: users, minPasswordLen: minPasswordLen}
}

// Create da de alta un usuario activo con las banderas indicadas. El username
// debe ser único.
func (uc *UserUseCase) Create(s *auth.Session, in dto.CreateUserRequest) (*dto.UserResponse, error) {
	if err := uc.require(s, entity.CapManageUsers); err != nil {
		return nil, err
	}
	if in.Username == "" {
		return nil, fmt.Errorf("%w: el username es obligatorio", domain.ErrValidation)
	}
	if len(in.Password) < uc.minPasswordLen {
		return nil, fmt.Errorf("%w: el password requiere al menos %d caracteres", domain.ErrValidation, uc.minPasswordLen)
	}
	existing, err := uc.users.GetByUsername(in.Username)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, fmt.Errorf("%w: username %q", domain.ErrDuplicate, in.Username)
	}
	hash, err := passhash.Hash(in.Password)
	if err != nil {
		return nil, fmt.Errorf("hashear password: %w", err)
	}
	user := &entity.User{
		Username:     in.Username,
		PasswordHash: hash,
		Capabilities: capsFromFlags(in.Permissions),
		IsActive:     true,
	}
	if err := uc.users.Create(user); err != nil {
		return nil, err
	}
	uc.log.Info().Int("user_id", user.ID).Str("username", user.Username).Msg("usuario creado")
	return toUserResponse(user), nil
}

// List lista todos los usuarios.
func (uc *UserUseCase) List(s *auth.Session) (*dto.UserListResponse, error) {
	if err := uc.require(s, entity.CapManageUsers); err != nil {
		return nil, err
	}
	list, err := uc.users.List()
	if err != nil {
		return nil, err
	}
	items := make([]dto.UserResponse, 0, len(list))
	for _, u := range list {
		items = append(items, *toUserResponse(u))
	}
	return &dto.UserListResponse{Items: items, Count: len(items)}, nil
}

// SetPermissions reemplaza el juego completo de banderas y el estado activo.
func (uc *UserUseCase) SetPermissions(s *auth.Session, userID int, flags dto.PermissionFlags, isActive bool) (*dto.UserResponse, error) {
	if err := uc.require(s, entity.CapManageUsers); err != nil {
		return nil, err
	}
	user, err := uc.users.GetByID(userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, fmt.Errorf("%w: usuario %d", domain.ErrNotFound, userID)
	}
	user.Capabilities = capsFromFlags(flags)
	user.IsActive = isActive
	if err := uc.users.Update(user); err != nil {
		return nil, err
	}
	uc.log.Info().Int("user_id", user.ID).Str("username", user.Username).Msg("permisos actualizados")
	return toUserResponse(user), nil
}

// Delete elimina un usuario. El usuario autenticado no puede eliminarse a sí
// mismo; la confirmación interactiva es trabajo del shell.
func (uc *UserUseCase) Delete(s *auth.Session, userID int) error {
	if err := uc.require(s, entity.CapManageUsers); err != nil {
		return err
	}
	if s.User != nil && s.User.ID == userID {
		return domain.ErrSelfDelete
	}
	if err := uc.users.Delete(userID); err != nil {
		return err
	}
	uc.log.Info().Int("user_id", userID).Msg("usuario eliminado")
	return nil
}

func capsFromFlags(f dto.PermissionFlags) entity.Capability {
	var c entity.Capability
	if f.ManageProducts {
		c |= entity.CapManageProducts
	}
	if f.ManageCustomers {
		c |= entity.CapManageCustomers
	}
	if f.ManageSales {
		c |= entity.CapManageSales
	}
	if f.ViewReports {
		c |= entity.CapViewReports
	}
	if f.ManageUsers {
		c |= entity.CapManageUsers
	}
	return c
}

func flagsFromCaps(c entity.Capability) dto.PermissionFlags {
	return dto.PermissionFlags{
		ManageProducts:  c&entity.CapManageProducts != 0,
		ManageCustomers: c&entity.CapManageCustomers != 0,
		ManageSales:     c&entity.CapManageSales != 0,
		ViewReports:     c&entity.CapViewReports != 0,
		ManageUsers:     c&entity.CapManageUsers != 0,
	}
}

func toUserResponse(u *entity.User) *dto.UserResponse {
	if u == nil {
		return nil
	}
	return &dto.UserResponse{
		ID:          u.ID,
		Username:    u.Username,
		Permissions: flagsFromCaps(u.Capabilities),
		IsActive:    u.IsActive,
	}
}
