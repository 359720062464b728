package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/justdc/club-api/internal/application/usecase"
	"github.com/justdc/club-api/internal/domain"
	"github.com/justdc/club-api/internal/domain/entity"
	"github.com/justdc/club-api/internal/domain/rbac"
)

// fakePDF generador trivial para ejercitar ExportRoster sin Maroto.
type fakePDF struct {
	calls int
}

func (f *fakePDF) GenerateRosterPDF(_ context.Context, users []*entity.User, _ time.Time) ([]byte, error) {
	f.calls++
	return []byte("%PDF-fake"), nil
}

func seedUser(t *testing.T, repo *fakeUserRepo, email string) *entity.User {
	t.Helper()
	uc := usecase.NewUserUseCase(repo)
	u, _, err := uc.EnsureUser(context.Background(), entity.IdentityClaim{Email: email})
	require.NoError(t, err)
	return u
}

// ──────────────────────────────────────────────────────────────────────────────
// AssignRole
// ──────────────────────────────────────────────────────────────────────────────

func TestAssignRole_PromocionAAdmin(t *testing.T) {
	repo := newFakeUserRepo()
	admin := usecase.NewAdminUseCase(repo, &fakePDF{})
	target := seedUser(t, repo, "miembro@just.edu.bd")

	out, err := admin.AssignRole(context.Background(), "admin@just.edu.bd", target.ID, rbac.RoleAdmin)
	require.NoError(t, err)
	assert.Equal(t, "User role updated to admin successfully", out.Message)
	assert.Equal(t, rbac.RoleAdmin, out.UpdatedUser.Role)
	assert.Len(t, out.UpdatedUser.Permissions, 9)

	// El registro persistido debe reflejar la asignación completa.
	stored, err := repo.FindByID(context.Background(), target.ID)
	require.NoError(t, err)
	assert.Equal(t, rbac.RoleAdmin, stored.Role)
	assert.Equal(t, rbac.CanonicalPermissions(rbac.RoleAdmin), stored.Permissions,
		"los permisos deben recalcularse desde la tabla canónica del nuevo rol")
	assert.Equal(t, "admin@just.edu.bd", stored.AssignedBy)
	assert.True(t, stored.RoleAssignedAt.After(target.RoleAssignedAt) || stored.RoleAssignedAt.Equal(target.RoleAssignedAt))
}

func TestAssignRole_DegradacionAUser(t *testing.T) {
	repo := newFakeUserRepo()
	admin := usecase.NewAdminUseCase(repo, &fakePDF{})
	target := seedUser(t, repo, "exadmin@just.edu.bd")

	_, err := admin.AssignRole(context.Background(), "root@just.edu.bd", target.ID, rbac.RoleAdmin)
	require.NoError(t, err)
	_, err = admin.AssignRole(context.Background(), "root@just.edu.bd", target.ID, rbac.RoleUser)
	require.NoError(t, err)

	stored, err := repo.FindByID(context.Background(), target.ID)
	require.NoError(t, err)
	assert.Equal(t, rbac.RoleUser, stored.Role)
	assert.Equal(t, rbac.CanonicalPermissions(rbac.RoleUser), stored.Permissions,
		"degradar debe retirar los permisos de admin, no acumularlos")
}

// Rol fuera del conjunto fijo: error y registro intacto.
func TestAssignRole_RolInvalidoNoMutaElRegistro(t *testing.T) {
	repo := newFakeUserRepo()
	admin := usecase.NewAdminUseCase(repo, &fakePDF{})
	target := seedUser(t, repo, "victima@just.edu.bd")

	_, err := admin.AssignRole(context.Background(), "admin@just.edu.bd", target.ID, "superuser")
	assert.ErrorIs(t, err, domain.ErrInvalidRole)

	stored, err := repo.FindByID(context.Background(), target.ID)
	require.NoError(t, err)
	assert.Equal(t, rbac.RoleUser, stored.Role, "el registro no debe cambiar ante un rol inválido")
	assert.Equal(t, entity.AssignedBySystem, stored.AssignedBy)
}

func TestAssignRole_UsuarioInexistente(t *testing.T) {
	repo := newFakeUserRepo()
	admin := usecase.NewAdminUseCase(repo, &fakePDF{})

	_, err := admin.AssignRole(context.Background(), "admin@just.edu.bd", "no-existe", rbac.RoleAdmin)
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

// ──────────────────────────────────────────────────────────────────────────────
// Listado, búsqueda y exportación
// ──────────────────────────────────────────────────────────────────────────────

func TestListUsers_VistaSaneada(t *testing.T) {
	repo := newFakeUserRepo()
	admin := usecase.NewAdminUseCase(repo, &fakePDF{})
	seedUser(t, repo, "a@just.edu.bd")
	seedUser(t, repo, "b@just.edu.bd")

	out, err := admin.ListUsers(context.Background())
	require.NoError(t, err)
	assert.Len(t, out, 2)
	for _, u := range out {
		assert.NotEmpty(t, u.ID)
		assert.NotEmpty(t, u.Email)
		assert.Equal(t, rbac.RoleUser, u.Role)
	}
}

func TestSearchUsers_IncluyeQueryYConteo(t *testing.T) {
	repo := newFakeUserRepo()
	admin := usecase.NewAdminUseCase(repo, &fakePDF{})
	seedUser(t, repo, "cse@just.edu.bd")

	out, err := admin.SearchUsers(context.Background(), "cse")
	require.NoError(t, err)
	assert.Equal(t, "cse", out.Query)
	assert.Equal(t, len(out.Users), out.Count)
}

func TestExportRoster_DelegaEnElGenerador(t *testing.T) {
	repo := newFakeUserRepo()
	pdf := &fakePDF{}
	admin := usecase.NewAdminUseCase(repo, pdf)
	seedUser(t, repo, "pdf@just.edu.bd")

	out, err := admin.ExportRoster(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []byte("%PDF-fake"), out)
	assert.Equal(t, 1, pdf.calls)
}
