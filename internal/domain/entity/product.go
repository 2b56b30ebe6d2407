package entity

import "github.com/shopspring/decimal"

// Product representa un producto del inventario de la tienda.
// El stock nunca queda negativo: todo ajuste se recorta en cero.
type Product struct {
	ID            int
	Name          string
	Category      string
	Brand         string
	CostPrice     decimal.Decimal // costo de compra, >= 0
	SellPrice     decimal.Decimal // precio de venta, >= CostPrice
	Stock         int
	MinStockLevel int             // umbral de reposición
}

// NeedsReorder indica si el stock está en o por debajo del umbral mínimo.
func (p *Product) NeedsReorder() bool {
	return p.Stock <= p.MinStockLevel
}
