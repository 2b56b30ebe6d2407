package repository

import "github.com/jhoicas/tienda-cli/internal/domain/entity"

// SaleRepository define el puerto de persistencia para Sale (DIP).
// Las ventas son append-only: no existe actualización ni borrado.
type SaleRepository interface {
	// CreateWithStock asigna el ID, registra la venta y deja el stock
	// del producto en newStock como una sola operación durable. Si el
	// proceso muere a mitad de camino, la recuperación al arranque
	// completa el par pendiente.
	CreateWithStock(sale *entity.Sale, newStock int) error
	GetByID(id int) (*entity.Sale, error)
	List() ([]*entity.Sale, error)
}
