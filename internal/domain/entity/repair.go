package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados válidos de una orden de reparación.
const (
	RepairStatusReceived   = "Received"
	RepairStatusInProgress = "In Progress"
	RepairStatusCompleted  = "Completed"
	RepairStatusCollected  = "Collected"
)

// Repair representa una orden de reparación de un equipo.
// DateCompleted queda en cero hasta que el estado pasa a Completed.
type Repair struct {
	ID            int
	CustomerID    int
	Device        string
	Problem       string
	Status        string
	CostEstimate  decimal.Decimal
	DateReceived  time.Time
	DateCompleted time.Time
}

// ValidRepairStatus indica si s es un estado de reparación conocido.
func ValidRepairStatus(s string) bool {
	switch s {
	case RepairStatusReceived, RepairStatusInProgress,
		RepairStatusCompleted, RepairStatusCollected:
		return true
	}
	return false
}
