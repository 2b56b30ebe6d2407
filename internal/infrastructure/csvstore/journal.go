package csvstore

import (
	"bufio"
	"errors"
	"fmt"
	"os"

	"github.com/jhoicas/tienda-cli/internal/domain"
	"github.com/jhoicas/tienda-cli/internal/domain/entity"
	"github.com/jhoicas/tienda-cli/pkg/logger"
)

// SaleJournal es el registro adelantado que cubre el par de escrituras
// de una venta: agregar la línea de venta y fijar el stock resultante
// del producto. Begin deja en disco todo lo necesario para terminar el
// par; si el proceso muere entre las dos escrituras, Recover lo
// completa en el siguiente arranque. Un journal ausente significa que
// no hay nada pendiente.
type SaleJournal struct {
	path     string
	sales    *Store[entity.Sale]
	products *Store[entity.Product]
	log      *logger.Logger
}

// NewSaleJournal construye el journal sobre la ruta dada, atado a los
// stores de ventas y productos que participan del par.
func NewSaleJournal(path string, sales *Store[entity.Sale], products *Store[entity.Product], log *logger.Logger) *SaleJournal {
	return &SaleJournal{path: path, sales: sales, products: products, log: log}
}

// Begin escribe y sincroniza la entrada pendiente: una cabecera con
// los tres enteros del par y la línea de venta exacta a agregar.
// Solo después de que Begin retorna se tocan los stores.
func (j *SaleJournal) Begin(saleID, productID, newStock int, saleLine Line) error {
	f, err := os.OpenFile(j.path, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("open journal: %w", err)
	}
	entry := fmt.Sprintf("%d %d %d\n%s\n", saleID, productID, newStock, saleLine)
	if _, err := f.WriteString(entry); err != nil {
		f.Close()
		return fmt.Errorf("write journal: %w", err)
	}
	if err := f.Sync(); err != nil {
		f.Close()
		return fmt.Errorf("sync journal: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close journal: %w", err)
	}
	return nil
}

// Commit descarta la entrada pendiente una vez aplicado el par.
func (j *SaleJournal) Commit() error {
	if err := os.Remove(j.path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("remove journal: %w", err)
	}
	return nil
}

// Recover completa un par interrumpido. Es idempotente: la venta solo
// se agrega si su ID no está en el archivo y el stock se fija en valor
// absoluto, así que repetir la recuperación no duplica nada. Una
// entrada incompleta (caída a mitad de Begin) se descarta, porque los
// stores no se tocan hasta que Begin termina.
func (j *SaleJournal) Recover() error {
	f, err := os.Open(j.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("open journal: %w", err)
	}

	var saleID, productID, newStock int
	var saleLine Line
	complete := false
	sc := bufio.NewScanner(f)
	if sc.Scan() {
		if _, err := fmt.Sscanf(sc.Text(), "%d %d %d", &saleID, &productID, &newStock); err == nil {
			if sc.Scan() {
				saleLine = Line(sc.Text())
				complete = saleLine != ""
			}
		}
	}
	f.Close()

	if !complete {
		j.log.Warn().Str("journal", j.path).Msg("entrada de journal incompleta descartada")
		return j.Commit()
	}

	existing, err := j.sales.FindByID(saleID)
	if err != nil {
		return fmt.Errorf("recover sale lookup: %w", err)
	}
	if existing == nil {
		if err := j.sales.AppendLine(saleLine); err != nil {
			return fmt.Errorf("recover sale append: %w", err)
		}
	}

	err = j.products.UpdateInPlace(productID, func(p *entity.Product) error {
		p.Stock = newStock
		return nil
	})
	if err != nil && !errors.Is(err, domain.ErrNotFound) {
		return fmt.Errorf("recover stock: %w", err)
	}
	if err != nil {
		j.log.Warn().Int("product_id", productID).
			Msg("producto del journal ya no existe, stock sin ajustar")
	}

	j.log.Info().Int("sale_id", saleID).Int("product_id", productID).
		Msg("venta pendiente recuperada")
	return j.Commit()
}
