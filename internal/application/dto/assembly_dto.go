package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateAssemblyRequest entrada para encargar un ensamble de equipo.
type CreateAssemblyRequest struct {
	CustomerID  int             `json:"customer_id" validate:"required"`
	Description string          `json:"description" validate:"required,min=1,max=200"`
	Price       decimal.Decimal `json:"price"`
}

// AssemblyResponse salida de un encargo de ensamble.
type AssemblyResponse struct {
	ID          int             `json:"id"`
	CustomerID  int             `json:"customer_id"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Status      string          `json:"status"`
	Date        time.Time       `json:"date"`
}

// AssemblyListResponse listado completo de ensambles.
type AssemblyListResponse struct {
	Items []AssemblyResponse `json:"items"`
	Count int                `json:"count"`
}
