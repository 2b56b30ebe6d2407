package repository

import "github.com/jhoicas/tienda-cli/internal/domain/entity"

// CustomerRepository define el puerto de persistencia para Customer (DIP).
type CustomerRepository interface {
	// Create asigna el siguiente ID consecutivo y agrega el registro.
	Create(customer *entity.Customer) error
	GetByID(id int) (*entity.Customer, error)
	List() ([]*entity.Customer, error)
	// Search filtra por subcadena sobre nombre, teléfono y email.
	Search(query string) ([]*entity.Customer, error)
}
