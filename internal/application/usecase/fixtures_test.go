package usecase_test

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/tienda-cli/internal/application/auth"
	"github.com/jhoicas/tienda-cli/internal/domain/entity"
	"github.com/jhoicas/tienda-cli/internal/infrastructure/csvstore"
	"github.com/jhoicas/tienda-cli/pkg/logger"
)

// fixture arma los repositorios CSV reales sobre un directorio temporal, con
// el mismo cableado que usa el binario.
type fixture struct {
	products   *csvstore.ProductRepo
	customers  *csvstore.CustomerRepo
	sales      *csvstore.SaleRepo
	users      *csvstore.UserRepo
	repairs    *csvstore.RepairRepo
	assemblies *csvstore.AssemblyRepo
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	dir := t.TempDir()
	log := logger.Nop()
	products := csvstore.NewProductRepository(filepath.Join(dir, "products.csv"), log)
	return &fixture{
		products:   products,
		customers:  csvstore.NewCustomerRepository(filepath.Join(dir, "customers.csv"), log),
		sales:      csvstore.NewSaleRepository(filepath.Join(dir, "sales.csv"), products.Store(), filepath.Join(dir, ".sales_journal"), log),
		users:      csvstore.NewUserRepository(filepath.Join(dir, "users.csv"), log),
		repairs:    csvstore.NewRepairRepository(filepath.Join(dir, "repairs.csv"), log),
		assemblies: csvstore.NewAssemblyRepository(filepath.Join(dir, "assemblies.csv"), log),
	}
}

// sessionWith abre una sesión de prueba con las capacidades dadas.
func sessionWith(caps entity.Capability) *auth.Session {
	return &auth.Session{
		ID: uuid.New(),
		User: &entity.User{
			ID:           99,
			Username:     "tester",
			Capabilities: caps,
			IsActive:     true,
		},
		IssuedAt: time.Now(),
	}
}
