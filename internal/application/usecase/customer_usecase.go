package usecase

import (
	"fmt"

	"github.com/jhoicas/tienda-cli/internal/application/auth"
	"github.com/jhoicas/tienda-cli/internal/application/dto"
	"github.com/jhoicas/tienda-cli/internal/domain"
	"github.com/jhoicas/tienda-cli/internal/domain/entity"
	"github.com/jhoicas/tienda-cli/internal/domain/repository"
	"github.com/jhoicas/tienda-cli/pkg/logger"
)

// CustomerUseCase casos de uso de clientes: alta, listado y búsqueda.
type CustomerUseCase struct {
	guard
	customers repository.CustomerRepository
}

// NewCustomerUseCase construye el caso de uso.
func NewCustomerUseCase(customers repository.CustomerRepository, log *logger.Logger) *CustomerUseCase {
	return &CustomerUseCase{guard: guard{log: log}, customers: customers}
}

// Create da de alta un cliente. Requiere manage_customers.
func (uc *CustomerUseCase) Create(s *auth.Session, in dto.CreateCustomerRequest) (*dto.CustomerResponse, error) {
	if err := uc.require(s, entity.CapManageCustomers); err != nil {
		return nil, err
	}
	if in.Name == "" {
		return nil, fmt.Errorf("%w: el nombre es obligatorio", domain.ErrValidation)
	}
	customer := &entity.Customer{
		Name:    in.Name,
		Phone:   in.Phone,
		Email:   in.Email,
		Address: in.Address,
	}
	if err := uc.customers.Create(customer); err != nil {
		return nil, err
	}
	return toCustomerResponse(customer), nil
}

// GetByID obtiene un cliente por ID.
func (uc *CustomerUseCase) GetByID(id int) (*dto.CustomerResponse, error) {
	customer, err := uc.customers.GetByID(id)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, nil
	}
	return toCustomerResponse(customer), nil
}

// List lista todos los clientes.
func (uc *CustomerUseCase) List() (*dto.CustomerListResponse, error) {
	list, err := uc.customers.List()
	if err != nil {
		return nil, err
	}
	items := make([]dto.CustomerResponse, 0, len(list))
	for _, c := range list {
		items = append(items, *toCustomerResponse(c))
	}
	return &dto.CustomerListResponse{Items: items, Count: len(items)}, nil
}

// Search busca por nombre, teléfono o email, sin distinguir mayúsculas ni acentos.
func (uc *CustomerUseCase) Search(query string) (*dto.CustomerListResponse, error) {
	list, err := uc.customers.Search(query)
	if err != nil {
		return nil, err
	}
	items := make([]dto.CustomerResponse, 0, len(list))
	for _, c := range list {
		items = append(items, *toCustomerResponse(c))
	}
	return &dto.CustomerListResponse{Items: items, Count: len(items)}, nil
}

func toCustomerResponse(c *entity.Customer) *dto.CustomerResponse {
	if c == nil {
		return nil
	}
	return &dto.CustomerResponse{
		ID:      c.ID,
		Name:    c.Name,
		Phone:   c.Phone,
		Email:   c.Email,
		Address: c.Address,
	}
}
