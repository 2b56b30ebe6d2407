package usecase_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/tienda-cli/internal/application/dto"
	"github.com/jhoicas/tienda-cli/internal/application/usecase"
	"github.com/jhoicas/tienda-cli/internal/domain"
	"github.com/jhoicas/tienda-cli/internal/domain/entity"
	"github.com/jhoicas/tienda-cli/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Tests de UserUseCase: alta con banderas, unicidad de username, reemplazo del
// juego de permisos y la protección contra autoborrado.
// ──────────────────────────────────────────────────────────────────────────────

func newUserUC(t *testing.T) *usecase.UserUseCase {
	t.Helper()
	fx := newFixture(t)
	return usecase.NewUserUseCase(fx.users, 4, logger.Nop())
}

func vendedorRequest() dto.CreateUserRequest {
	return dto.CreateUserRequest{
		Username: "vendedor",
		Password: "tienda123",
		Permissions: dto.PermissionFlags{
			ManageSales: true,
			ViewReports: true,
		},
	}
}

func TestUserCreate_MapeaBanderasYActiva(t *testing.T) {
	uc := newUserUC(t)
	admin := sessionWith(entity.CapAll)

	resp, err := uc.Create(admin, vendedorRequest())
	require.NoError(t, err)

	assert.Equal(t, 1, resp.ID)
	assert.True(t, resp.IsActive, "todo usuario nuevo nace activo")
	assert.Equal(t, dto.PermissionFlags{ManageSales: true, ViewReports: true}, resp.Permissions)

	list, err := uc.List(admin)
	require.NoError(t, err)
	require.Equal(t, 1, list.Count)
	assert.Equal(t, *resp, list.Items[0])
}

func TestUserCreate_Rechazos(t *testing.T) {
	uc := newUserUC(t)
	admin := sessionWith(entity.CapAll)

	_, err := uc.Create(admin, vendedorRequest())
	require.NoError(t, err)

	_, err = uc.Create(admin, vendedorRequest())
	assert.ErrorIs(t, err, domain.ErrDuplicate, "el username debe ser único")

	in := vendedorRequest()
	in.Username = "otro"
	in.Password = "abc"
	_, err = uc.Create(admin, in)
	assert.ErrorIs(t, err, domain.ErrValidation, "password bajo el largo mínimo")

	in = vendedorRequest()
	in.Username = ""
	_, err = uc.Create(admin, in)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestUser_TodaOperacionExigeManageUsers(t *testing.T) {
	uc := newUserUC(t)
	// Sesión con todo menos manage_users.
	s := sessionWith(entity.CapAll &^ entity.CapManageUsers)

	_, err := uc.Create(s, vendedorRequest())
	assert.ErrorIs(t, err, domain.ErrPermissionDenied)

	_, err = uc.List(s)
	assert.ErrorIs(t, err, domain.ErrPermissionDenied, "hasta el listado está protegido")

	_, err = uc.SetPermissions(s, 1, dto.PermissionFlags{}, true)
	assert.ErrorIs(t, err, domain.ErrPermissionDenied)

	err = uc.Delete(s, 1)
	assert.ErrorIs(t, err, domain.ErrPermissionDenied)
}

func TestUserSetPermissions_ReemplazaElJuegoCompleto(t *testing.T) {
	uc := newUserUC(t)
	admin := sessionWith(entity.CapAll)

	created, err := uc.Create(admin, vendedorRequest())
	require.NoError(t, err)

	resp, err := uc.SetPermissions(admin, created.ID, dto.PermissionFlags{ManageProducts: true}, false)
	require.NoError(t, err)

	assert.Equal(t, dto.PermissionFlags{ManageProducts: true}, resp.Permissions,
		"las banderas anteriores no sobreviven al reemplazo")
	assert.False(t, resp.IsActive, "la desactivación viaja en la misma operación")

	_, err = uc.SetPermissions(admin, 42, dto.PermissionFlags{}, true)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestUserDelete_ProhibeAutoborrado(t *testing.T) {
	uc := newUserUC(t)
	admin := sessionWith(entity.CapAll)

	created, err := uc.Create(admin, vendedorRequest())
	require.NoError(t, err)

	// La sesión de prueba usa el ID 99.
	err = uc.Delete(admin, 99)
	assert.ErrorIs(t, err, domain.ErrSelfDelete)

	require.NoError(t, uc.Delete(admin, created.ID))

	list, err := uc.List(admin)
	require.NoError(t, err)
	assert.Zero(t, list.Count)

	err = uc.Delete(admin, created.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
