package csvstore

import (
	"fmt"
	"strconv"

	"github.com/jhoicas/tienda-cli/internal/domain/entity"
	"github.com/jhoicas/tienda-cli/internal/domain/repository"
	"github.com/jhoicas/tienda-cli/pkg/logger"
)

var _ repository.RepairRepository = (*RepairRepo)(nil)

// repairCodec fija el orden de columnas del archivo de reparaciones:
// id, cliente, equipo, problema, estado, costo estimado, fecha de
// recepción, fecha de finalización (vacía hasta completar).
type repairCodec struct{}

func (repairCodec) Encode(r *entity.Repair) []string {
	return []string{
		strconv.Itoa(r.ID),
		strconv.Itoa(r.CustomerID),
		r.Device,
		r.Problem,
		r.Status,
		r.CostEstimate.StringFixed(2),
		formatTime(r.DateReceived),
		formatTime(r.DateCompleted),
	}
}

func (repairCodec) Decode(l Line) *entity.Repair {
	return &entity.Repair{
		ID:            l.Int(0),
		CustomerID:    l.Int(1),
		Device:        l.Text(2),
		Problem:       l.Text(3),
		Status:        l.Text(4),
		CostEstimate:  l.Decimal(5),
		DateReceived:  l.Time(6),
		DateCompleted: l.Time(7),
	}
}

func (repairCodec) ID(r *entity.Repair) int { return r.ID }

// RepairRepo implementación del puerto RepairRepository sobre archivo.
type RepairRepo struct {
	store *Store[entity.Repair]
}

// NewRepairRepository construye el adaptador de persistencia para reparaciones.
func NewRepairRepository(path string, log *logger.Logger) *RepairRepo {
	return &RepairRepo{store: NewStore[entity.Repair](path, repairCodec{}, log)}
}

// Store expone el store subyacente.
func (r *RepairRepo) Store() *Store[entity.Repair] { return r.store }

// Create asigna el siguiente ID consecutivo y agrega la reparación.
func (r *RepairRepo) Create(repair *entity.Repair) error {
	id, err := r.store.NextID()
	if err != nil {
		return fmt.Errorf("allocate repair id: %w", err)
	}
	repair.ID = id
	return r.store.Append(repair)
}

// GetByID obtiene una reparación por ID, nil si no existe.
func (r *RepairRepo) GetByID(id int) (*entity.Repair, error) {
	return r.store.FindByID(id)
}

// List devuelve todas las reparaciones en el orden del archivo.
func (r *RepairRepo) List() ([]*entity.Repair, error) {
	return r.store.List()
}

// Update reescribe la reparación con ese ID.
func (r *RepairRepo) Update(repair *entity.Repair) error {
	return r.store.UpdateInPlace(repair.ID, func(rec *entity.Repair) error {
		*rec = *repair
		return nil
	})
}
