package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/tienda-cli/internal/application/dto"
	"github.com/jhoicas/tienda-cli/internal/application/usecase"
	"github.com/jhoicas/tienda-cli/internal/domain"
	"github.com/jhoicas/tienda-cli/internal/domain/entity"
	"github.com/jhoicas/tienda-cli/pkg/logger"
)

// stubReceiptGen captura los argumentos del último render.
type stubReceiptGen struct {
	sale     *entity.Sale
	product  *entity.Product
	customer *entity.Customer
	err      error
}

func (g *stubReceiptGen) GenerateReceiptPDF(_ context.Context, sale *entity.Sale, product *entity.Product, customer *entity.Customer) ([]byte, error) {
	g.sale, g.product, g.customer = sale, product, customer
	if g.err != nil {
		return nil, g.err
	}
	return []byte("%PDF-stub"), nil
}

func newReceiptFixture(t *testing.T, gen usecase.ReceiptPDFGenerator) *usecase.ReceiptUseCase {
	t.Helper()
	sf := newSaleFixture(t)
	_, err := sf.sales.Create(sessionWith(entity.CapManageSales), dto.CreateSaleRequest{
		ProductID:  1,
		CustomerID: 1,
		Quantity:   3,
	})
	require.NoError(t, err)
	return usecase.NewReceiptUseCase(sf.fixture.sales, sf.fixture.products, sf.fixture.customers, gen, logger.Nop())
}

func TestReceipt_GeneraConDatosDeLaVenta(t *testing.T) {
	gen := &stubReceiptGen{}
	uc := newReceiptFixture(t, gen)

	out, filename, err := uc.DownloadReceiptPDF(context.Background(), sessionWith(entity.CapManageSales), 1)
	require.NoError(t, err)

	assert.Equal(t, "%PDF-stub", string(out))
	assert.Equal(t, "recibo_venta_0001.pdf", filename)
	require.NotNil(t, gen.sale)
	assert.Equal(t, 1, gen.sale.ID)
	assert.Equal(t, "Mouse", gen.product.Name)
	assert.Equal(t, "María Pérez", gen.customer.Name)
}

func TestReceipt_Rechazos(t *testing.T) {
	gen := &stubReceiptGen{}
	uc := newReceiptFixture(t, gen)
	ctx := context.Background()

	_, _, err := uc.DownloadReceiptPDF(ctx, sessionWith(entity.CapViewReports), 1)
	assert.ErrorIs(t, err, domain.ErrPermissionDenied)

	_, _, err = uc.DownloadReceiptPDF(ctx, sessionWith(entity.CapManageSales), 42)
	assert.ErrorIs(t, err, domain.ErrNotFound, "la venta debe existir")
}

func TestReceipt_PropagaErrorDelGenerador(t *testing.T) {
	gen := &stubReceiptGen{err: assert.AnError}
	uc := newReceiptFixture(t, gen)

	_, _, err := uc.DownloadReceiptPDF(context.Background(), sessionWith(entity.CapManageSales), 1)
	assert.ErrorIs(t, err, assert.AnError)
}
