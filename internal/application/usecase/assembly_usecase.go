package usecase

import (
	"fmt"
	"time"

	"github.com/jhoicas/tienda-cli/internal/application/auth"
	"github.com/jhoicas/tienda-cli/internal/application/dto"
	"github.com/jhoicas/tienda-cli/internal/domain"
	"github.com/jhoicas/tienda-cli/internal/domain/entity"
	"github.com/jhoicas/tienda-cli/internal/domain/repository"
	"github.com/jhoicas/tienda-cli/pkg/logger"
)

// AssemblyUseCase casos de uso de encargos de ensamblaje de equipos.
type AssemblyUseCase struct {
	guard
	assemblies repository.AssemblyRepository
	customers  repository.CustomerRepository
}

// NewAssemblyUseCase construye el caso de uso.
func NewAssemblyUseCase(assemblies repository.AssemblyRepository, customers repository.CustomerRepository, log *logger.Logger) *AssemblyUseCase {
	return &AssemblyUseCase{guard: guard{log: log}, assemblies: assemblies, customers: customers}
}

// Create registra un encargo de ensamblaje. Arranca en Pending con la fecha
// del encargo estampada. Requiere manage_sales.
func (uc *AssemblyUseCase) Create(s *auth.Session, in dto.CreateAssemblyRequest) (*dto.AssemblyResponse, error) {
	if err := uc.require(s, entity.CapManageSales); err != nil {
		return nil, err
	}
	if in.Description == "" {
		return nil, fmt.Errorf("%w: la descripción es obligatoria", domain.ErrValidation)
	}
	if in.Price.IsNegative() {
		return nil, fmt.Errorf("%w: el precio no puede ser negativo", domain.ErrValidation)
	}
	customer, err := uc.customers.GetByID(in.CustomerID)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, fmt.Errorf("%w: cliente %d", domain.ErrNotFound, in.CustomerID)
	}
	assembly := &entity.Assembly{
		CustomerID:  in.CustomerID,
		Description: in.Description,
		Price:       in.Price,
		Status:      entity.AssemblyStatusPending,
		Date:        time.Now().Truncate(time.Second),
	}
	if err := uc.assemblies.Create(assembly); err != nil {
		return nil, err
	}
	return toAssemblyResponse(assembly), nil
}

// List lista todos los encargos de ensamblaje.
func (uc *AssemblyUseCase) List() (*dto.AssemblyListResponse, error) {
	list, err := uc.assemblies.List()
	if err != nil {
		return nil, err
	}
	items := make([]dto.AssemblyResponse, 0, len(list))
	for _, a := range list {
		items = append(items, *toAssemblyResponse(a))
	}
	return &dto.AssemblyListResponse{Items: items, Count: len(items)}, nil
}

// UpdateStatus cambia el estado de un encargo dentro del conjunto permitido.
// Requiere manage_sales.
func (uc *AssemblyUseCase) UpdateStatus(s *auth.Session, assemblyID int, status string) (*dto.AssemblyResponse, error) {
	if err := uc.require(s, entity.CapManageSales); err != nil {
		return nil, err
	}
	if !entity.ValidAssemblyStatus(status) {
		return nil, fmt.Errorf("%w: estado de ensamblaje %q", domain.ErrValidation, status)
	}
	assembly, err := uc.assemblies.GetByID(assemblyID)
	if err != nil {
		return nil, err
	}
	if assembly == nil {
		return nil, fmt.Errorf("%w: ensamblaje %d", domain.ErrNotFound, assemblyID)
	}
	assembly.Status = status
	if err := uc.assemblies.Update(assembly); err != nil {
		return nil, err
	}
	return toAssemblyResponse(assembly), nil
}

func toAssemblyResponse(a *entity.Assembly) *dto.AssemblyResponse {
	if a == nil {
		return nil
	}
	return &dto.AssemblyResponse{
		ID:          a.ID,
		CustomerID:  a.CustomerID,
		Description: a.Description,
		Price:       a.Price,
		Status:      a.Status,
		Date:        a.Date,
	}
}
