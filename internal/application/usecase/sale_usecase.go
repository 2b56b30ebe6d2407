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

// SaleUseCase casos de uso de ventas: registro con descuento de stock en la
// misma operación durable, y listado con resumen.
type SaleUseCase struct {
	guard
	sales     repository.SaleRepository
	products  repository.ProductRepository
	customers repository.CustomerRepository
}

// NewSaleUseCase construye el caso de uso.
func NewSaleUseCase(
	sales repository.SaleRepository,
	products repository.ProductRepository,
	customers repository.CustomerRepository,
	log *logger.Logger,
) *SaleUseCase {
	return &SaleUseCase{
		guard:     guard{log: log},
		sales:     sales,
		products:  products,
		customers: customers,
	}
}

// Create registra una venta. El producto debe existir; el cliente debe existir
// o venir como alta inline con CustomerID cero; la cantidad debe caber en el
// stock. El total es precio de venta por cantidad. Requiere manage_sales.
//
// El cliente creado inline queda persistido aunque la venta se rechace
// después, igual que en el flujo original de mostrador.
func (uc *SaleUseCase) Create(s *auth.Session, in dto.CreateSaleRequest) (*dto.SaleResponse, error) {
	if err := uc.require(s, entity.CapManageSales); err != nil {
		return nil, err
	}
	product, err := uc.products.GetByID(in.ProductID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, fmt.Errorf("%w: producto %d", domain.ErrNotFound, in.ProductID)
	}

	customerID := in.CustomerID
	if customerID == 0 {
		if in.NewCustomer == nil {
			return nil, fmt.Errorf("%w: cliente 0 requiere los datos del cliente nuevo", domain.ErrValidation)
		}
		if in.NewCustomer.Name == "" {
			return nil, fmt.Errorf("%w: el nombre del cliente es obligatorio", domain.ErrValidation)
		}
		customer := &entity.Customer{
			Name:    in.NewCustomer.Name,
			Phone:   in.NewCustomer.Phone,
			Email:   in.NewCustomer.Email,
			Address: in.NewCustomer.Address,
		}
		if err := uc.customers.Create(customer); err != nil {
			return nil, err
		}
		customerID = customer.ID
	} else {
		customer, err := uc.customers.GetByID(customerID)
		if err != nil {
			return nil, err
		}
		if customer == nil {
			return nil, fmt.Errorf("%w: cliente %d", domain.ErrNotFound, customerID)
		}
	}

	if in.Quantity <= 0 {
		return nil, fmt.Errorf("%w: la cantidad debe ser mayor a cero", domain.ErrValidation)
	}
	if in.Quantity > product.Stock {
		return nil, fmt.Errorf("%w: %d disponibles, %d solicitados", domain.ErrInsufficientStock, product.Stock, in.Quantity)
	}

	cashier := in.Cashier
	if cashier == "" {
		cashier = s.Username()
	}
	sale := &entity.Sale{
		ProductID:  product.ID,
		CustomerID: customerID,
		Quantity:   in.Quantity,
		TotalPrice: product.SellPrice.Mul(decimal.NewFromInt(int64(in.Quantity))),
		Date:       time.Now().Truncate(time.Second),
		Cashier:    cashier,
	}
	if err := uc.sales.CreateWithStock(sale, product.Stock-in.Quantity); err != nil {
		return nil, err
	}
	return toSaleResponse(sale), nil
}

// List lista todas las ventas con conteo e ingreso acumulado. Requiere
// manage_sales, igual que el alta.
func (uc *SaleUseCase) List(s *auth.Session) (*dto.SaleListResponse, error) {
	if err := uc.require(s, entity.CapManageSales); err != nil {
		return nil, err
	}
	list, err := uc.sales.List()
	if err != nil {
		return nil, err
	}
	items := make([]dto.SaleResponse, 0, len(list))
	revenue := decimal.Zero
	for _, sale := range list {
		items = append(items, *toSaleResponse(sale))
		revenue = revenue.Add(sale.TotalPrice)
	}
	return &dto.SaleListResponse{Items: items, Count: len(items), TotalRevenue: revenue}, nil
}

func toSaleResponse(s *entity.Sale) *dto.SaleResponse {
	if s == nil {
		return nil
	}
	return &dto.SaleResponse{
		ID:         s.ID,
		ProductID:  s.ProductID,
		CustomerID: s.CustomerID,
		Quantity:   s.Quantity,
		TotalPrice: s.TotalPrice,
		Date:       s.Date,
		Cashier:    s.Cashier,
	}
}
