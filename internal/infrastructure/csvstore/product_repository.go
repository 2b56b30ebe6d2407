package csvstore

import (
	"fmt"
	"strconv"

	"github.com/jhoicas/tienda-cli/internal/domain/entity"
	"github.com/jhoicas/tienda-cli/internal/domain/repository"
	"github.com/jhoicas/tienda-cli/pkg/logger"
	"github.com/jhoicas/tienda-cli/pkg/textutil"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

// productCodec fija el orden de columnas del archivo de productos:
// id, nombre, categoría, marca, costo, precio de venta, stock, stock mínimo.
type productCodec struct{}

func (productCodec) Encode(p *entity.Product) []string {
	return []string{
		strconv.Itoa(p.ID),
		p.Name,
		p.Category,
		p.Brand,
		p.CostPrice.StringFixed(2),
		p.SellPrice.StringFixed(2),
		strconv.Itoa(p.Stock),
		strconv.Itoa(p.MinStockLevel),
	}
}

func (productCodec) Decode(l Line) *entity.Product {
	return &entity.Product{
		ID:            l.Int(0),
		Name:          l.Text(1),
		Category:      l.Text(2),
		Brand:         l.Text(3),
		CostPrice:     l.Decimal(4),
		SellPrice:     l.Decimal(5),
		Stock:         l.Int(6),
		MinStockLevel: l.Int(7),
	}
}

func (productCodec) ID(p *entity.Product) int { return p.ID }

// ProductRepo implementación del puerto ProductRepository sobre archivo.
type ProductRepo struct {
	store *Store[entity.Product]
}

// NewProductRepository construye el adaptador de persistencia para productos.
func NewProductRepository(path string, log *logger.Logger) *ProductRepo {
	return &ProductRepo{store: NewStore[entity.Product](path, productCodec{}, log)}
}

// Store expone el store subyacente; el journal de ventas escribe el
// stock a través de él.
func (r *ProductRepo) Store() *Store[entity.Product] { return r.store }

// Create asigna el siguiente ID consecutivo y agrega el producto.
func (r *ProductRepo) Create(product *entity.Product) error {
	id, err := r.store.NextID()
	if err != nil {
		return fmt.Errorf("allocate product id: %w", err)
	}
	product.ID = id
	return r.store.Append(product)
}

// GetByID obtiene un producto por ID, nil si no existe.
func (r *ProductRepo) GetByID(id int) (*entity.Product, error) {
	return r.store.FindByID(id)
}

// List devuelve todos los productos en el orden del archivo.
func (r *ProductRepo) List() ([]*entity.Product, error) {
	return r.store.List()
}

// Search filtra por subcadena sobre nombre, categoría y marca, sin
// distinguir acentos ni mayúsculas.
func (r *ProductRepo) Search(query string) ([]*entity.Product, error) {
	var out []*entity.Product
	err := r.store.Scan(func(p *entity.Product) bool {
		if textutil.ContainsFold(p.Name, query) ||
			textutil.ContainsFold(p.Category, query) ||
			textutil.ContainsFold(p.Brand, query) {
			out = append(out, p)
		}
		return true
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// AdjustStock suma delta al stock, recortando el resultado en cero.
func (r *ProductRepo) AdjustStock(productID, delta int) error {
	return r.store.UpdateInPlace(productID, func(p *entity.Product) error {
		p.Stock += delta
		if p.Stock < 0 {
			p.Stock = 0
		}
		return nil
	})
}

// SetStock fija el stock en un valor absoluto (ruta de venta y
// recuperación del journal).
func (r *ProductRepo) SetStock(productID, stock int) error {
	return r.store.UpdateInPlace(productID, func(p *entity.Product) error {
		p.Stock = stock
		return nil
	})
}
