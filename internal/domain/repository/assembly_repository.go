package repository

import "github.com/jhoicas/tienda-cli/internal/domain/entity"

// AssemblyRepository define el puerto de persistencia para Assembly (DIP).
type AssemblyRepository interface {
	// Create asigna el siguiente ID consecutivo y agrega el registro.
	Create(assembly *entity.Assembly) error
	GetByID(id int) (*entity.Assembly, error)
	List() ([]*entity.Assembly, error)
	Update(assembly *entity.Assembly) error
}
