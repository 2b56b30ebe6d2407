package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateSaleRequest entrada para registrar una venta. Con CustomerID cero y
// NewCustomer presente, el cliente se da de alta en la misma operación. Un
// Cashier vacío toma el username de la sesión.
type CreateSaleRequest struct {
	ProductID   int                    `json:"product_id" validate:"required"`
	CustomerID  int                    `json:"customer_id"`
	NewCustomer *CreateCustomerRequest `json:"new_customer,omitempty"`
	Quantity    int                    `json:"quantity" validate:"required,min=1"`
	Cashier     string                 `json:"cashier"`
}

// SaleResponse salida de una venta.
type SaleResponse struct {
	ID         int             `json:"id"`
	ProductID  int             `json:"product_id"`
	CustomerID int             `json:"customer_id"`
	Quantity   int             `json:"quantity"`
	TotalPrice decimal.Decimal `json:"total_price"`
	Date       time.Time       `json:"date"`
	Cashier    string          `json:"cashier"`
}

// SaleListResponse listado de ventas con totales acumulados.
type SaleListResponse struct {
	Items        []SaleResponse  `json:"items"`
	Count        int             `json:"count"`
	TotalRevenue decimal.Decimal `json:"total_revenue"`
}
