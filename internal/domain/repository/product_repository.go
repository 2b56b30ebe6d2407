package repository

import "github.com/jhoicas/tienda-cli/internal/domain/entity"

// ProductRepository define el puerto de persistencia para Product (DIP).
type ProductRepository interface {
	// Create asigna el siguiente ID consecutivo y agrega el registro.
	Create(product *entity.Product) error
	GetByID(id int) (*entity.Product, error)
	List() ([]*entity.Product, error)
	// Search filtra por subcadena (sin acentos ni mayúsculas) sobre
	// nombre, categoría y marca.
	Search(query string) ([]*entity.Product, error)
	// AdjustStock suma delta al stock, recortando el resultado en cero.
	AdjustStock(productID, delta int) error
	// SetStock fija el stock en un valor absoluto (ruta de venta y
	// recuperación del journal).
	SetStock(productID, stock int) error
}
