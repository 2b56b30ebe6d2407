package dto

import "github.com/shopspring/decimal"

// CreateProductRequest entrada para registrar un producto en catálogo.
type CreateProductRequest struct {
	Name          string          `json:"name" validate:"required,min=1,max=100"`
	Category      string          `json:"category"`
	Brand         string          `json:"brand"`
	CostPrice     decimal.Decimal `json:"cost_price"`
	SellPrice     decimal.Decimal `json:"sell_price"`
	Stock         int             `json:"stock"`
	MinStockLevel int             `json:"min_stock_level"`
}

// ProductResponse salida de un producto.
type ProductResponse struct {
	ID            int             `json:"id"`
	Name          string          `json:"name"`
	Category      string          `json:"category"`
	Brand         string          `json:"brand"`
	CostPrice     decimal.Decimal `json:"cost_price"`
	SellPrice     decimal.Decimal `json:"sell_price"`
	Stock         int             `json:"stock"`
	MinStockLevel int             `json:"min_stock_level"`
	NeedsReorder  bool            `json:"needs_reorder"`
}

// ProductListResponse listado completo de productos.
type ProductListResponse struct {
	Items []ProductResponse `json:"items"`
	Count int               `json:"count"`
}
