package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados válidos de un encargo de ensamblaje.
const (
	AssemblyStatusPending   = "Pending"
	AssemblyStatusAssembled = "Assembled"
	AssemblyStatusDelivered = "Delivered"
)

// Assembly representa un encargo de ensamblaje de un equipo a medida.
type Assembly struct {
	ID          int
	CustomerID  int
	Description string
	Price       decimal.Decimal
	Status      string
	Date        time.Time
}

// ValidAssemblyStatus indica si s es un estado de ensamblaje conocido.
func ValidAssemblyStatus(s string) bool {
	switch s {
	case AssemblyStatusPending, AssemblyStatusAssembled, AssemblyStatusDelivered:
		return true
	}
	return false
}
