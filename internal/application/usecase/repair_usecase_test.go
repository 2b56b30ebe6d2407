package usecase_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/tienda-cli/internal/application/dto"
	"github.com/jhoicas/tienda-cli/internal/application/usecase"
	"github.com/jhoicas/tienda-cli/internal/domain"
	"github.com/jhoicas/tienda-cli/internal/domain/entity"
	"github.com/jhoicas/tienda-cli/pkg/logger"
)

func newRepairFixture(t *testing.T) (*usecase.RepairUseCase, *usecase.CustomerUseCase) {
	t.Helper()
	fx := newFixture(t)
	log := logger.Nop()
	customers := usecase.NewCustomerUseCase(fx.customers, log)
	_, err := customers.Create(sessionWith(entity.CapManageCustomers), dto.CreateCustomerRequest{Name: "María Pérez"})
	require.NoError(t, err)
	return usecase.NewRepairUseCase(fx.repairs, fx.customers, log), customers
}

func TestRepairCreate_ArrancaEnReceived(t *testing.T) {
	uc, _ := newRepairFixture(t)

	resp, err := uc.Create(sessionWith(entity.CapManageSales), dto.CreateRepairRequest{
		CustomerID:   1,
		Device:       "Notebook Lenovo T14",
		Problem:      "no enciende, posible fuente",
		CostEstimate: decimal.RequireFromString("45.50"),
	})
	require.NoError(t, err)

	assert.Equal(t, 1, resp.ID)
	assert.Equal(t, entity.RepairStatusReceived, resp.Status)
	assert.WithinDuration(t, time.Now(), resp.DateReceived, 5*time.Second)
	assert.True(t, resp.DateCompleted.IsZero(), "la fecha de término queda vacía al recibir")
}

func TestRepairCreate_Rechazos(t *testing.T) {
	uc, _ := newRepairFixture(t)
	s := sessionWith(entity.CapManageSales)

	_, err := uc.Create(sessionWith(entity.CapManageProducts), dto.CreateRepairRequest{CustomerID: 1, Device: "PC"})
	assert.ErrorIs(t, err, domain.ErrPermissionDenied)

	_, err = uc.Create(s, dto.CreateRepairRequest{CustomerID: 42, Device: "PC"})
	assert.ErrorIs(t, err, domain.ErrNotFound, "el cliente debe existir")

	_, err = uc.Create(s, dto.CreateRepairRequest{CustomerID: 1, Device: ""})
	assert.ErrorIs(t, err, domain.ErrValidation)

	_, err = uc.Create(s, dto.CreateRepairRequest{CustomerID: 1, Device: "PC", CostEstimate: decimal.RequireFromString("-1")})
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestRepairUpdateStatus_CompletedEstampaFecha(t *testing.T) {
	uc, _ := newRepairFixture(t)
	s := sessionWith(entity.CapManageSales)

	created, err := uc.Create(s, dto.CreateRepairRequest{CustomerID: 1, Device: "Notebook"})
	require.NoError(t, err)

	resp, err := uc.UpdateStatus(s, created.ID, entity.RepairStatusInProgress)
	require.NoError(t, err)
	assert.Equal(t, entity.RepairStatusInProgress, resp.Status)
	assert.True(t, resp.DateCompleted.IsZero())

	resp, err = uc.UpdateStatus(s, created.ID, entity.RepairStatusCompleted)
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now(), resp.DateCompleted, 5*time.Second)
	completedAt := resp.DateCompleted

	// Pasar a Collected conserva la fecha de término ya estampada.
	resp, err = uc.UpdateStatus(s, created.ID, entity.RepairStatusCollected)
	require.NoError(t, err)
	assert.True(t, resp.DateCompleted.Equal(completedAt), "la fecha de término no cambia al retirar")

	list, err := uc.List()
	require.NoError(t, err)
	require.Equal(t, 1, list.Count)
	assert.Equal(t, entity.RepairStatusCollected, list.Items[0].Status, "el estado persiste en el archivo")
}

func TestRepairUpdateStatus_Rechazos(t *testing.T) {
	uc, _ := newRepairFixture(t)
	s := sessionWith(entity.CapManageSales)

	created, err := uc.Create(s, dto.CreateRepairRequest{CustomerID: 1, Device: "Notebook"})
	require.NoError(t, err)

	_, err = uc.UpdateStatus(s, created.ID, "Terminadísimo")
	assert.ErrorIs(t, err, domain.ErrValidation, "el estado debe pertenecer al conjunto conocido")

	_, err = uc.UpdateStatus(s, 42, entity.RepairStatusCompleted)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = uc.UpdateStatus(sessionWith(entity.CapViewReports), created.ID, entity.RepairStatusCompleted)
	assert.ErrorIs(t, err, domain.ErrPermissionDenied)
}
