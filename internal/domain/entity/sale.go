package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Sale representa una venta registrada. Las ventas son inmutables:
// una vez escritas nunca se modifican ni se eliminan.
type Sale struct {
	ID         int
	ProductID  int             // referencia a Product (sin integridad referencial)
	CustomerID int             // referencia a Customer
	Quantity   int             // > 0 y <= stock del producto al momento de la venta
	TotalPrice decimal.Decimal // SellPrice * Quantity
	Date       time.Time
	Cashier    string
}
