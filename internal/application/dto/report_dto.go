package dto

import "github.com/shopspring/decimal"

// LowStockReport productos con existencia igual o inferior al umbral consultado.
type LowStockReport struct {
	Threshold int               `json:"threshold"`
	Items     []ProductResponse `json:"items"`
	Count     int               `json:"count"`
}

// ReorderReport productos en o por debajo de su propio nivel mínimo de stock.
type ReorderReport struct {
	Items []ProductResponse `json:"items"`
	Count int               `json:"count"`
}

// SalesSummary agregados globales de ventas. Average es cero sin transacciones.
type SalesSummary struct {
	Transactions int             `json:"transactions"`
	Units        int             `json:"units"`
	Revenue      decimal.Decimal `json:"revenue"`
	Average      decimal.Decimal `json:"average"`
}

// ProfitReport ingreso contra costo de reposición de lo vendido, a precios de
// costo vigentes en catálogo. MarginPercent es cero sin ingreso.
type ProfitReport struct {
	Transactions  int             `json:"transactions"`
	Revenue       decimal.Decimal `json:"revenue"`
	Cost          decimal.Decimal `json:"cost"`
	Profit        decimal.Decimal `json:"profit"`
	MarginPercent decimal.Decimal `json:"margin_percent"`
}
