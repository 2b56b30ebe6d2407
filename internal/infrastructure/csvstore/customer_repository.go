package csvstore

import (
	"fmt"
	"strconv"

	"github.com/jhoicas/tienda-cli/internal/domain/entity"
	"github.com/jhoicas/tienda-cli/internal/domain/repository"
	"github.com/jhoicas/tienda-cli/pkg/logger"
	"github.com/jhoicas/tienda-cli/pkg/textutil"
)

var _ repository.CustomerRepository = (*CustomerRepo)(nil)

// customerCodec fija el orden de columnas del archivo de clientes:
// id, nombre, teléfono, email, dirección. La dirección es texto libre
// con comas; el entrecomillado total la mantiene en un solo campo.
type customerCodec struct{}

func (customerCodec) Encode(c *entity.Customer) []string {
	return []string{
		strconv.Itoa(c.ID),
		c.Name,
		c.Phone,
		c.Email,
		c.Address,
	}
}

func (customerCodec) Decode(l Line) *entity.Customer {
	return &entity.Customer{
		ID:      l.Int(0),
		Name:    l.Text(1),
		Phone:   l.Text(2),
		Email:   l.Text(3),
		Address: l.Text(4),
	}
}

func (customerCodec) ID(c *entity.Customer) int { return c.ID }

// CustomerRepo implementación del puerto CustomerRepository sobre archivo.
type CustomerRepo struct {
	store *Store[entity.Customer]
}

// NewCustomerRepository construye el adaptador de persistencia para clientes.
func NewCustomerRepository(path string, log *logger.Logger) *CustomerRepo {
	return &CustomerRepo{store: NewStore[entity.Customer](path, customerCodec{}, log)}
}

// Store expone el store subyacente.
func (r *CustomerRepo) Store() *Store[entity.Customer] { return r.store }

// Create asigna el siguiente ID consecutivo y agrega el cliente.
func (r *CustomerRepo) Create(customer *entity.Customer) error {
	id, err := r.store.NextID()
	if err != nil {
		return fmt.Errorf("allocate customer id: %w", err)
	}
	customer.ID = id
	return r.store.Append(customer)
}

// GetByID obtiene un cliente por ID, nil si no existe.
func (r *CustomerRepo) GetByID(id int) (*entity.Customer, error) {
	return r.store.FindByID(id)
}

// List devuelve todos los clientes en el orden del archivo.
func (r *CustomerRepo) List() ([]*entity.Customer, error) {
	return r.store.List()
}

// Search filtra por subcadena sobre nombre, teléfono y email.
func (r *CustomerRepo) Search(query string) ([]*entity.Customer, error) {
	var out []*entity.Customer
	err := r.store.Scan(func(c *entity.Customer) bool {
		if textutil.ContainsFold(c.Name, query) ||
			textutil.ContainsFold(c.Phone, query) ||
			textutil.ContainsFold(c.Email, query) {
			out = append(out, c)
		}
		return true
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}
