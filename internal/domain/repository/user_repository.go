package repository

import "github.com/jhoicas/tienda-cli/internal/domain/entity"

// UserRepository define el puerto de persistencia para User (DIP).
type UserRepository interface {
	// Create asigna el siguiente ID consecutivo y agrega el registro.
	Create(user *entity.User) error
	GetByID(id int) (*entity.User, error)
	// GetByUsername compara sensible a mayúsculas y devuelve el primer
	// registro que coincida.
	GetByUsername(username string) (*entity.User, error)
	List() ([]*entity.User, error)
	// Update reescribe permisos, hash de clave y bandera de activo.
	Update(user *entity.User) error
	Delete(id int) error
	// Exists indica si el archivo de usuarios ya fue creado. El
	// bootstrap del administrador por defecto depende de esto.
	Exists() (bool, error)
}
