package usecase

import (
	"fmt"

	"github.com/jhoicas/tienda-cli/internal/application/auth"
	"github.com/jhoicas/tienda-cli/internal/application/dto"
	"github.com/jhoicas/tienda-cli/internal/domain"
	"github.com/jhoicas/tienda-cli/internal/domain/entity"
	"github.com/jhoicas/tienda-cli/internal/domain/repository"
	"github.com/jhoicas/tienda-cli/pkg/logger"
)

// ProductUseCase casos de uso de catálogo: alta, listado, búsqueda y reposición.
type ProductUseCase struct {
	guard
	products repository.ProductRepository
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(products repository.ProductRepository, log *logger.Logger) *ProductUseCase {
	return &ProductUseCase{guard: guard{log: log}, products: products}
}

// Create da de alta un producto en catálogo. Requiere manage_products.
func (uc *ProductUseCase) Create(s *auth.Session, in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	if err := uc.require(s, entity.CapManageProducts); err != nil {
		return nil, err
	}
	if in.Name == "" {
		return nil, fmt.Errorf("%w: el nombre es obligatorio", domain.ErrValidation)
	}
	if in.CostPrice.IsNegative() || in.SellPrice.IsNegative() {
		return nil, fmt.Errorf("%w: los precios no pueden ser negativos", domain.ErrValidation)
	}
	if in.SellPrice.LessThan(in.CostPrice) {
		return nil, fmt.Errorf("%w: el precio de venta no puede ser menor al costo", domain.ErrValidation)
	}
	if in.Stock < 0 || in.MinStockLevel < 0 {
		return nil, fmt.Errorf("%w: stock y nivel mínimo no pueden ser negativos", domain.ErrValidation)
	}
	product := &entity.Product{
		Name:          in.Name,
		Category:      in.Category,
		Brand:         in.Brand,
		CostPrice:     in.CostPrice,
		SellPrice:     in.SellPrice,
		Stock:         in.Stock,
		MinStockLevel: in.MinStockLevel,
	}
	if err := uc.products.Create(product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// GetByID obtiene un producto por ID.
func (uc *ProductUseCase) GetByID(id int) (*dto.ProductResponse, error) {
	product, err := uc.products.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, nil
	}
	return toProductResponse(product), nil
}

// List lista el catálogo completo.
func (uc *ProductUseCase) List() (*dto.ProductListResponse, error) {
	list, err := uc.products.List()
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProductResponse, 0, len(list))
	for _, p := range list {
		items = append(items, *toProductResponse(p))
	}
	return &dto.ProductListResponse{Items: items, Count: len(items)}, nil
}

// Search busca por nombre, categoría o marca, sin distinguir mayúsculas ni acentos.
func (uc *ProductUseCase) Search(query string) (*dto.ProductListResponse, error) {
	list, err := uc.products.Search(query)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProductResponse, 0, len(list))
	for _, p := range list {
		items = append(items, *toProductResponse(p))
	}
	return &dto.ProductListResponse{Items: items, Count: len(items)}, nil
}

// AdjustStock aplica un delta de existencia con piso en cero y devuelve el
// producto actualizado. Requiere manage_products.
func (uc *ProductUseCase) AdjustStock(s *auth.Session, productID, delta int) (*dto.ProductResponse, error) {
	if err := uc.require(s, entity.CapManageProducts); err != nil {
		return nil, err
	}
	if err := uc.products.AdjustStock(productID, delta); err != nil {
		return nil, err
	}
	product, err := uc.products.GetByID(productID)
	if err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	if p == nil {
		return nil
	}
	return &dto.ProductResponse{
		ID:            p.ID,
		Name:          p.Name,
		Category:      p.Category,
		Brand:         p.Brand,
		CostPrice:     p.CostPrice,
		SellPrice:     p.SellPrice,
		Stock:         p.Stock,
		MinStockLevel: p.MinStockLevel,
		NeedsReorder:  p.NeedsReorder(),
	}
}
