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

// RepairUseCase casos de uso de órdenes de reparación del taller.
type RepairUseCase struct {
	guard
	repairs   repository.RepairRepository
	customers repository.CustomerRepository
}

// NewRepairUseCase construye el caso de uso.
func NewRepairUseCase(repairs repository.RepairRepository, customers repository.CustomerRepository, log *logger.Logger) *RepairUseCase {
	return &RepairUseCase{guard: guard{log: log}, repairs: repairs, customers: customers}
}

// Create recibe un equipo en reparación. La orden arranca en Received con la
// fecha de recepción estampada. Requiere manage_sales.
func (uc *RepairUseCase) Create(s *auth.Session, in dto.CreateRepairRequest) (*dto.RepairResponse, error) {
	if err := uc.require(s, entity.CapManageSales); err != nil {
		return nil, err
	}
	if in.Device == "" {
		return nil, fmt.Errorf("%w: el equipo es obligatorio", domain.ErrValidation)
	}
	if in.CostEstimate.IsNegative() {
		return nil, fmt.Errorf("%w: el costo estimado no puede ser negativo", domain.ErrValidation)
	}
	customer, err := uc.customers.GetByID(in.CustomerID)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, fmt.Errorf("%w: cliente %d", domain.ErrNotFound, in.CustomerID)
	}
	repair := &entity.Repair{
		CustomerID:   in.CustomerID,
		Device:       in.Device,
		Problem:      in.Problem,
		Status:       entity.RepairStatusReceived,
		CostEstimate: in.CostEstimate,
		DateReceived: time.Now().Truncate(time.Second),
	}
	if err := uc.repairs.Create(repair); err != nil {
		return nil, err
	}
	return toRepairResponse(repair), nil
}

// List lista todas las órdenes de reparación.
func (uc *RepairUseCase) List() (*dto.RepairListResponse, error) {
	list, err := uc.repairs.List()
	if err != nil {
		return nil, err
	}
	items := make([]dto.RepairResponse, 0, len(list))
	for _, r := range list {
		items = append(items, *toRepairResponse(r))
	}
	return &dto.RepairListResponse{Items: items, Count: len(items)}, nil
}

// UpdateStatus cambia el estado de una orden dentro del conjunto permitido.
// Pasar a Completed estampa la fecha de término, aunque sea un reestampado.
// Requiere manage_sales.
func (uc *RepairUseCase) UpdateStatus(s *auth.Session, repairID int, status string) (*dto.RepairResponse, error) {
	if err := uc.require(s, entity.CapManageSales); err != nil {
		return nil, err
	}
	if !entity.ValidRepairStatus(status) {
		return nil, fmt.Errorf("%w: estado de reparación %q", domain.ErrValidation, status)
	}
	repair, err := uc.repairs.GetByID(repairID)
	if err != nil {
		return nil, err
	}
	if repair == nil {
		return nil, fmt.Errorf("%w: reparación %d", domain.ErrNotFound, repairID)
	}
	repair.Status = status
	if status == entity.RepairStatusCompleted {
		repair.DateCompleted = time.Now().Truncate(time.Second)
	}
	if err := uc.repairs.Update(repair); err != nil {
		return nil, err
	}
	return toRepairResponse(repair), nil
}

func toRepairResponse(r *entity.Repair) *dto.RepairResponse {
	if r == nil {
		return nil
	}
	return &dto.RepairResponse{
		ID:            r.ID,
		CustomerID:    r.CustomerID,
		Device:        r.Device,
		Problem:       r.Problem,
		Status:        r.Status,
		CostEstimate:  r.CostEstimate,
		DateReceived:  r.DateReceived,
		DateCompleted: r.DateCompleted,
	}
}
