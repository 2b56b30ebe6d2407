package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateRepairRequest entrada para recibir un equipo en reparación.
type CreateRepairRequest struct {
	CustomerID   int             `json:"customer_id" validate:"required"`
	Device       string          `json:"device" validate:"required,min=1,max=100"`
	Problem      string          `json:"problem"`
	CostEstimate decimal.Decimal `json:"cost_estimate"`
}

// RepairResponse salida de una orden de reparación. DateCompleted queda en
// cero mientras la orden no pase a Completed.
type RepairResponse struct {
	ID            int             `json:"id"`
	CustomerID    int             `json:"customer_id"`
	Device        string          `json:"device"`
	Problem       string          `json:"problem"`
	Status        string          `json:"status"`
	CostEstimate  decimal.Decimal `json:"cost_estimate"`
	DateReceived  time.Time       `json:"date_received"`
	DateCompleted time.Time       `json:"date_completed,omitempty"`
}

// RepairListResponse listado completo de reparaciones.
type RepairListResponse struct {
	Items []RepairResponse `json:"items"`
	Count int              `json:"count"`
}
