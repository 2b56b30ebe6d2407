package usecase

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/tienda-cli/internal/application/auth"
	"github.com/jhoicas/tienda-cli/internal/application/dto"
	"github.com/jhoicas/tienda-cli/internal/domain"
	"github.com/jhoicas/tienda-cli/internal/domain/entity"
	"github.com/jhoicas/tienda-cli/internal/domain/repository"
	"github.com/jhoicas/tienda-cli/pkg/logger"
)

// AccountingXMLExporter serializa el corte contable (catálogo más ventas) a XML.
type AccountingXMLExporter interface {
	ExportAccounting(products []*entity.Product, sales []*entity.Sale) ([]byte, error)
}

// ReportUseCase reportes de inventario y ventas. Toda consulta requiere
// view_reports.
type ReportUseCase struct {
	guard
	products repository.ProductRepository
	sales    repository.SaleRepository
	exporter AccountingXMLExporter
}

// NewReportUseCase construye el caso de uso.
func NewReportUseCase(
	products repository.ProductRepository,
	sales repository.SaleRepository,
	exporter AccountingXMLExporter,
	log *logger.Logger,
) *ReportUseCase {
	return &ReportUseCase{
		guard:    guard{log: log},
		products: products,
		sales:    sales,
		exporter: exporter,
	}
}

// LowStock lista los productos con existencia igual o inferior al umbral.
func (uc *ReportUseCase) LowStock(s *auth.Session, threshold int) (*dto.LowStockReport, error) {
	if err := uc.require(s, entity.CapViewReports); err != nil {
		return nil, err
	}
	if threshold < 0 {
		return nil, fmt.Errorf("%w: el umbral no puede ser negativo", domain.ErrValidation)
	}
	list, err := uc.products.List()
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProductResponse, 0)
	for _, p := range list {
		if p.Stock <= threshold {
			items = append(items, *toProductResponse(p))
		}
	}
	return &dto.LowStockReport{Threshold: threshold, Items: items, Count: len(items)}, nil
}

// ReorderNeeded lista los productos en o por debajo de su propio nivel mínimo.
func (uc *ReportUseCase) ReorderNeeded(s *auth.Session) (*dto.ReorderReport, error) {
	if err := uc.require(s, entity.CapViewReports); err != nil {
		return nil, err
	}
	list, err := uc.products.List()
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProductResponse, 0)
	for _, p := range list {
		if p.NeedsReorder() {
			items = append(items, *toProductResponse(p))
		}
	}
	return &dto.ReorderReport{Items: items, Count: len(items)}, nil
}

// SalesSummary agrega transacciones, unidades e ingreso de todas las ventas.
func (uc *ReportUseCase) SalesSummary(s *auth.Session) (*dto.SalesSummary, error) {
	if err := uc.require(s, entity.CapViewReports); err != nil {
		return nil, err
	}
	list, err := uc.sales.List()
	if err != nil {
		return nil, err
	}
	units := 0
	revenue := decimal.Zero
	for _, sale := range list {
		units += sale.Quantity
		revenue = revenue.Add(sale.TotalPrice)
	}
	average := decimal.Zero
	if len(list) > 0 {
		average = revenue.Div(decimal.NewFromInt(int64(len(list))))
	}
	return &dto.SalesSummary{
		Transactions: len(list),
		Units:        units,
		Revenue:      revenue,
		Average:      average,
	}, nil
}

// ProfitAnalysis cruza cada venta con el costo de catálogo vigente de su
// producto. Ventas de productos ya desconocidos aportan costo cero.
func (uc *ReportUseCase) ProfitAnalysis(s *auth.Session) (*dto.ProfitReport, error) {
	if err := uc.require(s, entity.CapViewReports); err != nil {
		return nil, err
	}
	products, err := uc.products.List()
	if err != nil {
		return nil, err
	}
	costs := make(map[int]decimal.Decimal, len(products))
	for _, p := range products {
		costs[p.ID] = p.CostPrice
	}
	sales, err := uc.sales.List()
	if err != nil {
		return nil, err
	}
	revenue := decimal.Zero
	cost := decimal.Zero
	for _, sale := range sales {
		revenue = revenue.Add(sale.TotalPrice)
		cost = cost.Add(costs[sale.ProductID].Mul(decimal.NewFromInt(int64(sale.Quantity))))
	}
	profit := revenue.Sub(cost)
	margin := decimal.Zero
	if revenue.IsPositive() {
		margin = profit.Div(revenue).Mul(decimal.NewFromInt(100))
	}
	return &dto.ProfitReport{
		Transactions:  len(sales),
		Revenue:       revenue,
		Cost:          cost,
		Profit:        profit,
		MarginPercent: margin,
	}, nil
}

// ExportAccounting serializa catálogo y ventas al XML contable.
//
// Retorna los bytes del documento y un nombre de archivo con timestamp; el
// shell decide dónde escribirlo.
func (uc *ReportUseCase) ExportAccounting(s *auth.Session) ([]byte, string, error) {
	if err := uc.require(s, entity.CapViewReports); err != nil {
		return nil, "", err
	}
	products, err := uc.products.List()
	if err != nil {
		return nil, "", err
	}
	sales, err := uc.sales.List()
	if err != nil {
		return nil, "", err
	}
	out, err := uc.exporter.ExportAccounting(products, sales)
	if err != nil {
		return nil, "", fmt.Errorf("exportar contabilidad: %w", err)
	}
	filename := fmt.Sprintf("contabilidad_%s.xml", time.Now().Format("20060102_150405"))
	return out, filename, nil
}
