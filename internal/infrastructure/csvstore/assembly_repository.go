package csvstore

import (
	"fmt"
	"strconv"

	"github.com/jhoicas/tienda-cli/internal/domain/entity"
	"github.com/jhoicas/tienda-cli/internal/domain/repository"
	"github.com/jhoicas/tienda-cli/pkg/logger"
)

var _ repository.AssemblyRepository = (*AssemblyRepo)(nil)

// assemblyCodec fija el orden de columnas del archivo de ensamblajes:
// id, cliente, descripción, precio, estado, fecha.
type assemblyCodec struct{}

func (assemblyCodec) Encode(a *entity.Assembly) []string {
	return []string{
		strconv.Itoa(a.ID),
		strconv.Itoa(a.CustomerID),
		a.Description,
		a.Price.StringFixed(2),
		a.Status,
		formatTime(a.Date),
	}
}

func (assemblyCodec) Decode(l Line) *entity.Assembly {
	return &entity.Assembly{
		ID:          l.Int(0),
		CustomerID:  l.Int(1),
		Description: l.Text(2),
		Price:       l.Decimal(3),
		Status:      l.Text(4),
		Date:        l.Time(5),
	}
}

func (assemblyCodec) ID(a *entity.Assembly) int { return a.ID }

// AssemblyRepo implementación del puerto AssemblyRepository sobre archivo.
type AssemblyRepo struct {
	store *Store[entity.Assembly]
}

// NewAssemblyRepository construye el adaptador de persistencia para ensamblajes.
func NewAssemblyRepository(path string, log *logger.Logger) *AssemblyRepo {
	return &AssemblyRepo{store: NewStore[entity.Assembly](path, assemblyCodec{}, log)}
}

// Store expone el store subyacente.
func (r *AssemblyRepo) Store() *Store[entity.Assembly] { return r.store }

// Create asigna el siguiente ID consecutivo y agrega el ensamblaje.
func (r *AssemblyRepo) Create(assembly *entity.Assembly) error {
	id, err := r.store.NextID()
	if err != nil {
		return fmt.Errorf("allocate assembly id: %w", err)
	}
	assembly.ID = id
	return r.store.Append(assembly)
}

// GetByID obtiene un ensamblaje por ID, nil si no existe.
func (r *AssemblyRepo) GetByID(id int) (*entity.Assembly, error) {
	return r.store.FindByID(id)
}

// List devuelve todos los ensamblajes en el orden del archivo.
func (r *AssemblyRepo) List() ([]*entity.Assembly, error) {
	return r.store.List()
}

// Update reescribe el ensamblaje con ese ID.
func (r *AssemblyRepo) Update(assembly *entity.Assembly) error {
	return r.store.UpdateInPlace(assembly.ID, func(rec *entity.Assembly) error {
		*rec = *assembly
		return nil
	})
}
