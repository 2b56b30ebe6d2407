package usecase

import (
	"context"
	"fmt"

	"github.com/jhoicas/tienda-cli/internal/application/auth"
	"github.com/jhoicas/tienda-cli/internal/domain"
	"github.com/jhoicas/tienda-cli/internal/domain/entity"
	"github.com/jhoicas/tienda-cli/internal/domain/repository"
	"github.com/jhoicas/tienda-cli/pkg/logger"
)

// ReceiptPDFGenerator genera la representación en PDF de un recibo de venta.
type ReceiptPDFGenerator interface {
	GenerateReceiptPDF(ctx context.Context, sale *entity.Sale, product *entity.Product, customer *entity.Customer) ([]byte, error)
}

// ReceiptUseCase genera el recibo en PDF de una venta ya registrada.
type ReceiptUseCase struct {
	guard
	sales     repository.SaleRepository
	products  repository.ProductRepository
	customers repository.CustomerRepository
	generator ReceiptPDFGenerator
}

// NewReceiptUseCase construye el caso de uso inyectando sus dependencias.
func NewReceiptUseCase(
	sales repository.SaleRepository,
	products repository.ProductRepository,
	customers repository.CustomerRepository,
	generator ReceiptPDFGenerator,
	log *logger.Logger,
) *ReceiptUseCase {
	return &ReceiptUseCase{
		guard:     guard{log: log},
		sales:     sales,
		products:  products,
		customers: customers,
		generator: generator,
	}
}

// DownloadReceiptPDF recupera venta, producto y cliente y genera el recibo.
//
// Retorna:
//   - (pdfBytes, filename, nil) si todo sale bien.
//   - domain.ErrNotFound        si la venta, su producto o su cliente no existen.
func (uc *ReceiptUseCase) DownloadReceiptPDF(ctx context.Context, s *auth.Session, saleID int) (pdfBytes []byte, filename string, err error) {
	if err := uc.require(s, entity.CapManageSales); err != nil {
		return nil, "", err
	}

	sale, err := uc.sales.GetByID(saleID)
	if err != nil {
		return nil, "", fmt.Errorf("recibo: obtener venta: %w", err)
	}
	if sale == nil {
		return nil, "", domain.ErrNotFound
	}

	product, err := uc.products.GetByID(sale.ProductID)
	if err != nil {
		return nil, "", fmt.Errorf("recibo: obtener producto: %w", err)
	}
	if product == nil {
		return nil, "", fmt.Errorf("%w: producto %d de la venta", domain.ErrNotFound, sale.ProductID)
	}

	customer, err := uc.customers.GetByID(sale.CustomerID)
	if err != nil {
		return nil, "", fmt.Errorf("recibo: obtener cliente: %w", err)
	}
	if customer == nil {
		return nil, "", fmt.Errorf("%w: cliente %d de la venta", domain.ErrNotFound, sale.CustomerID)
	}

	pdfBytes, err = uc.generator.GenerateReceiptPDF(ctx, sale, product, customer)
	if err != nil {
		return nil, "", fmt.Errorf("recibo: generación fallida: %w", err)
	}

	filename = fmt.Sprintf("recibo_venta_%04d.pdf", sale.ID)
	return pdfBytes, filename, nil
}
