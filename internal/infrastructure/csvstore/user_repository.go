package csvstore

import (
	"fmt"
	"strconv"

	"github.com/jhoicas/tienda-cli/internal/domain/entity"
	"github.com/jhoicas/tienda-cli/internal/domain/repository"
	"github.com/jhoicas/tienda-cli/pkg/logger"
)

var _ repository.UserRepository = (*UserRepo)(nil)

// userCodec fija el orden de columnas del archivo de usuarios:
// id, usuario, hash de clave, cinco banderas de permiso (productos,
// clientes, ventas, reportes, usuarios) y la bandera de activo. Las
// banderas van como columnas 0/1 independientes para mantener el
// formato de los archivos existentes; en memoria son un solo bitset.
type userCodec struct{}

func (userCodec) Encode(u *entity.User) []string {
	return []string{
		strconv.Itoa(u.ID),
		u.Username,
		u.PasswordHash,
		formatFlag(u.Has(entity.CapManageProducts)),
		formatFlag(u.Has(entity.CapManageCustomers)),
		formatFlag(u.Has(entity.CapManageSales)),
		formatFlag(u.Has(entity.CapViewReports)),
		formatFlag(u.Has(entity.CapManageUsers)),
		formatFlag(u.IsActive),
	}
}

func (userCodec) Decode(l Line) *entity.User {
	u := &entity.User{
		ID:           l.Int(0),
		Username:     l.Text(1),
		PasswordHash: l.Text(2),
		IsActive:     l.Flag(8),
	}
	if l.Flag(3) {
		u.Grant(entity.CapManageProducts)
	}
	if l.Flag(4) {
		u.Grant(entity.CapManageCustomers)
	}
	if l.Flag(5) {
		u.Grant(entity.CapManageSales)
	}
	if l.Flag(6) {
		u.Grant(entity.CapViewReports)
	}
	if l.Flag(7) {
		u.Grant(entity.CapManageUsers)
	}
	return u
}

func (userCodec) ID(u *entity.User) int { return u.ID }

// UserRepo implementación del puerto UserRepository sobre archivo.
type UserRepo struct {
	store *Store[entity.User]
}

// NewUserRepository construye el adaptador de persistencia para usuarios.
func NewUserRepository(path string, log *logger.Logger) *UserRepo {
	return &UserRepo{store: NewStore[entity.User](path, userCodec{}, log)}
}

// Store expone el store subyacente.
func (r *UserRepo) Store() *Store[entity.User] { return r.store }

// Create asigna el siguiente ID consecutivo y agrega el usuario.
func (r *UserRepo) Create(user *entity.User) error {
	id, err := r.store.NextID()
	if err != nil {
		return fmt.Errorf("allocate user id: %w", err)
	}
	user.ID = id
	return r.store.Append(user)
}

// GetByID obtiene un usuario por ID, nil si no existe.
func (r *UserRepo) GetByID(id int) (*entity.User, error) {
	return r.store.FindByID(id)
}

// GetByUsername devuelve el primer usuario cuyo nombre coincida,
// sensible a mayúsculas. Nil si no existe.
func (r *UserRepo) GetByUsername(username string) (*entity.User, error) {
	var found *entity.User
	err := r.store.Scan(func(u *entity.User) bool {
		if u.Username == username {
			found = u
			return false
		}
		return true
	})
	if err != nil {
		return nil, err
	}
	return found, nil
}

// List devuelve todos los usuarios en el orden del archivo.
func (r *UserRepo) List() ([]*entity.User, error) {
	return r.store.List()
}

// Update reescribe permisos, hash de clave y bandera de activo del
// usuario con ese ID.
func (r *UserRepo) Update(user *entity.User) error {
	return r.store.UpdateInPlace(user.ID, func(u *entity.User) error {
		*u = *user
		return nil
	})
}

// Delete elimina el usuario por ID.
func (r *UserRepo) Delete(id int) error {
	return r.store.DeleteByID(id)
}

// Exists indica si el archivo de usuarios ya fue creado; el bootstrap
// del administrador por defecto corre solo cuando aún no existe.
func (r *UserRepo) Exists() (bool, error) {
	return r.store.Exists(), nil
}
