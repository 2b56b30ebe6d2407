package usecase_test

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/tienda-cli/internal/application/dto"
	"github.com/jhoicas/tienda-cli/internal/application/usecase"
	"github.com/jhoicas/tienda-cli/internal/domain"
	"github.com/jhoicas/tienda-cli/internal/domain/entity"
	"github.com/jhoicas/tienda-cli/pkg/logger"
)

// stubExporter registra cuánto recibió y devuelve un documento fijo.
type stubExporter struct {
	products int
	sales    int
}

func (e *stubExporter) ExportAccounting(products []*entity.Product, sales []*entity.Sale) ([]byte, error) {
	e.products = len(products)
	e.sales = len(sales)
	return []byte("<contabilidad/>"), nil
}

// newReportFixture deja dos productos y dos ventas: Mouse (17 en stock tras
// vender 3 a 10.00) y Cable HDMI (1 en stock tras vender 2 a 4.00, mínimo 5).
func newReportFixture(t *testing.T) (*usecase.ReportUseCase, *stubExporter) {
	t.Helper()
	fx := newFixture(t)
	log := logger.Nop()
	products := usecase.NewProductUseCase(fx.products, log)
	customers := usecase.NewCustomerUseCase(fx.customers, log)
	sales := usecase.NewSaleUseCase(fx.sales, fx.products, fx.customers, log)
	admin := sessionWith(entity.CapAll)

	_, err := products.Create(admin, mouseRequest())
	require.NoError(t, err)
	_, err = products.Create(admin, dto.CreateProductRequest{
		Name:          "Cable HDMI",
		Category:      "Cables",
		Brand:         "Genérica",
		CostPrice:     decimal.RequireFromString("2.00"),
		SellPrice:     decimal.RequireFromString("4.00"),
		Stock:         3,
		MinStockLevel: 5,
	})
	require.NoError(t, err)
	_, err = customers.Create(admin, dto.CreateCustomerRequest{Name: "María Pérez"})
	require.NoError(t, err)

	_, err = sales.Create(admin, dto.CreateSaleRequest{ProductID: 1, CustomerID: 1, Quantity: 3})
	require.NoError(t, err)
	_, err = sales.Create(admin, dto.CreateSaleRequest{ProductID: 2, CustomerID: 1, Quantity: 2})
	require.NoError(t, err)

	exporter := &stubExporter{}
	return usecase.NewReportUseCase(fx.products, fx.sales, exporter, log), exporter
}

func TestReportLowStock_FiltraPorUmbral(t *testing.T) {
	uc, _ := newReportFixture(t)
	s := sessionWith(entity.CapViewReports)

	report, err := uc.LowStock(s, 5)
	require.NoError(t, err)
	require.Equal(t, 1, report.Count)
	assert.Equal(t, "Cable HDMI", report.Items[0].Name)
	assert.Equal(t, 1, report.Items[0].Stock)

	report, err = uc.LowStock(s, 17)
	require.NoError(t, err)
	assert.Equal(t, 2, report.Count, "el umbral es inclusivo")

	_, err = uc.LowStock(s, -1)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestReportReorderNeeded_UsaElMinimoPropio(t *testing.T) {
	uc, _ := newReportFixture(t)

	report, err := uc.ReorderNeeded(sessionWith(entity.CapViewReports))
	require.NoError(t, err)
	require.Equal(t, 1, report.Count)
	assert.Equal(t, "Cable HDMI", report.Items[0].Name)
	assert.True(t, report.Items[0].NeedsReorder)
}

func TestReportSalesSummary_Agregados(t *testing.T) {
	uc, _ := newReportFixture(t)

	summary, err := uc.SalesSummary(sessionWith(entity.CapViewReports))
	require.NoError(t, err)

	assert.Equal(t, 2, summary.Transactions)
	assert.Equal(t, 5, summary.Units)
	assert.Equal(t, "38.00", summary.Revenue.StringFixed(2))
	assert.Equal(t, "19.00", summary.Average.StringFixed(2))
}

func TestReportSalesSummary_SinVentas(t *testing.T) {
	fx := newFixture(t)
	uc := usecase.NewReportUseCase(fx.products, fx.sales, &stubExporter{}, logger.Nop())

	summary, err := uc.SalesSummary(sessionWith(entity.CapViewReports))
	require.NoError(t, err)
	assert.Zero(t, summary.Transactions)
	assert.True(t, summary.Average.IsZero(), "sin transacciones el promedio es cero, no una división por cero")
}

func TestReportProfitAnalysis_CruzaCostos(t *testing.T) {
	uc, _ := newReportFixture(t)

	report, err := uc.ProfitAnalysis(sessionWith(entity.CapViewReports))
	require.NoError(t, err)

	// Costo: 3 mouse a 5.00 más 2 cables a 2.00.
	assert.Equal(t, 2, report.Transactions)
	assert.Equal(t, "38.00", report.Revenue.StringFixed(2))
	assert.Equal(t, "19.00", report.Cost.StringFixed(2))
	assert.Equal(t, "19.00", report.Profit.StringFixed(2))
	assert.Equal(t, "50.00", report.MarginPercent.StringFixed(2))
}

func TestReportExportAccounting_DelegaEnElExportador(t *testing.T) {
	uc, exporter := newReportFixture(t)

	out, filename, err := uc.ExportAccounting(sessionWith(entity.CapViewReports))
	require.NoError(t, err)

	assert.Equal(t, "<contabilidad/>", string(out))
	assert.True(t, strings.HasPrefix(filename, "contabilidad_"), "obtuve %s", filename)
	assert.True(t, strings.HasSuffix(filename, ".xml"))
	assert.Equal(t, 2, exporter.products)
	assert.Equal(t, 2, exporter.sales)
}

func TestReport_ExigeViewReports(t *testing.T) {
	uc, _ := newReportFixture(t)
	s := sessionWith(entity.CapManageSales)

	_, err := uc.LowStock(s, 5)
	assert.ErrorIs(t, err, domain.ErrPermissionDenied)
	_, err = uc.ReorderNeeded(s)
	assert.ErrorIs(t, err, domain.ErrPermissionDenied)
	_, err = uc.SalesSummary(s)
	assert.ErrorIs(t, err, domain.ErrPermissionDenied)
	_, err = uc.ProfitAnalysis(s)
	assert.ErrorIs(t, err, domain.ErrPermissionDenied)
	_, _, err = uc.ExportAccounting(s)
	assert.ErrorIs(t, err, domain.ErrPermissionDenied)
}
