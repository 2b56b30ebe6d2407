package csvstore

import (
	"fmt"
	"strconv"

	"github.com/jhoicas/tienda-cli/internal/domain/entity"
	"github.com/jhoicas/tienda-cli/internal/domain/repository"
	"github.com/jhoicas/tienda-cli/pkg/logger"
)

var _ repository.SaleRepository = (*SaleRepo)(nil)

// saleCodec fija el orden de columnas del archivo de ventas:
// id, producto, cliente, cantidad, total, fecha, cajero.
type saleCodec struct{}

func (saleCodec) Encode(s *entity.Sale) []string {
	return []string{
		strconv.Itoa(s.ID),
		strconv.Itoa(s.ProductID),
		strconv.Itoa(s.CustomerID),
		strconv.Itoa(s.Quantity),
		s.TotalPrice.StringFixed(2),
		formatTime(s.Date),
		s.Cashier,
	}
}

func (saleCodec) Decode(l Line) *entity.Sale {
	return &entity.Sale{
		ID:         l.Int(0),
		ProductID:  l.Int(1),
		CustomerID: l.Int(2),
		Quantity:   l.Int(3),
		TotalPrice: l.Decimal(4),
		Date:       l.Time(5),
		Cashier:    l.Text(6),
	}
}

func (saleCodec) ID(s *entity.Sale) int { return s.ID }

// SaleRepo implementación del puerto SaleRepository sobre archivo.
// El par venta + stock pasa por el journal: primero queda la entrada
// sincronizada en disco, después se tocan los dos stores y al final se
// descarta la entrada.
type SaleRepo struct {
	store    *Store[entity.Sale]
	products *Store[entity.Product]
	journal  *SaleJournal
}

// NewSaleRepository construye el adaptador de persistencia para ventas,
// atado al store de productos y al journal que cubren el par de escrituras.
func NewSaleRepository(path string, products *Store[entity.Product], journalPath string, log *logger.Logger) *SaleRepo {
	store := NewStore[entity.Sale](path, saleCodec{}, log)
	return &SaleRepo{
		store:    store,
		products: products,
		journal:  NewSaleJournal(journalPath, store, products, log),
	}
}

// Journal expone el journal para la recuperación al arranque.
func (r *SaleRepo) Journal() *SaleJournal { return r.journal }

// Store expone el store subyacente.
func (r *SaleRepo) Store() *Store[entity.Sale] { return r.store }

// CreateWithStock asigna el ID, registra la venta y deja el stock del
// producto en newStock como una sola operación durable.
func (r *SaleRepo) CreateWithStock(sale *entity.Sale, newStock int) error {
	id, err := r.store.NextID()
	if err != nil {
		return fmt.Errorf("allocate sale id: %w", err)
	}
	sale.ID = id
	line := EncodeFields(saleCodec{}.Encode(sale)...)

	if err := r.journal.Begin(sale.ID, sale.ProductID, newStock, line); err != nil {
		return err
	}
	if err := r.store.AppendLine(line); err != nil {
		return err
	}
	err = r.products.UpdateInPlace(sale.ProductID, func(p *entity.Product) error {
		p.Stock = newStock
		return nil
	})
	if err != nil {
		return err
	}
	return r.journal.Commit()
}

// GetByID obtiene una venta por ID, nil si no existe.
func (r *SaleRepo) GetByID(id int) (*entity.Sale, error) {
	return r.store.FindByID(id)
}

// List devuelve todas las ventas en el orden del archivo.
func (r *SaleRepo) List() ([]*entity.Sale, error) {
	return r.store.List()
}
