package repository

import "github.com/jhoicas/tienda-cli/internal/domain/entity"

// RepairRepository define el puerto de persistencia para Repair (DIP).
type RepairRepository interface {
	// Create asigna el siguiente ID consecutivo y agrega el registro.
	Create(repair *entity.Repair) error
	GetByID(id int) (*entity.Repair, error)
	List() ([]*entity.Repair, error)
	Update(repair *entity.Repair) error
}
