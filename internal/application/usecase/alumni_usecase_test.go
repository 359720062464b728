package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/justdc/club-api/internal/application/dto"
	"github.com/justdc/club-api/internal/application/usecase"
	"github.com/justdc/club-api/internal/domain"
	"github.com/justdc/club-api/internal/domain/entity"
	"github.com/justdc/club-api/internal/domain/rbac"
	"github.com/justdc/club-api/internal/domain/repository"
)

var _ repository.AlumniRepository = (*fakeAlumniRepo)(nil)

type fakeAlumniRepo struct {
	byID map[string]*entity.Alumni
}

func newFakeAlumniRepo() *fakeAlumniRepo {
	return &fakeAlumniRepo{byID: make(map[string]*entity.Alumni)}
}

func (f *fakeAlumniRepo) Create(_ context.Context, a *entity.Alumni) error {
	cp := *a
	f.byID[a.ID] = &cp
	return nil
}

func (f *fakeAlumniRepo) List(_ context.Context) ([]*entity.Alumni, error) {
	out := make([]*entity.Alumni, 0, len(f.byID))
	for _, a := range f.byID {
		cp := *a
		out = append(out, &cp)
	}
	return out, nil
}

func (f *fakeAlumniRepo) FindByID(_ context.Context, id string) (*entity.Alumni, error) {
	if a, ok := f.byID[id]; ok {
		cp := *a
		return &cp, nil
	}
	return nil, nil
}

func (f *fakeAlumniRepo) Delete(_ context.Context, id string) error {
	delete(f.byID, id)
	return nil
}

func userWithRole(email, role string) *entity.User {
	a, _ := rbac.NewAssignment(role)
	return &entity.User{
		Email:       email,
		Role:        a.Role(),
		Permissions: a.Permissions(),
		IsActive:    true,
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Política de propiedad del borrado
// ──────────────────────────────────────────────────────────────────────────────

func createAlumni(t *testing.T, uc *usecase.AlumniUseCase, creator string) string {
	t.Helper()
	out, err := uc.Create(context.Background(), creator, dto.CreateAlumniRequest{
		Name: "Egresado", Batch: "2018", Position: "Engineer", Photo: "p.jpg", Bio: "bio",
	})
	require.NoError(t, err)
	return out.ID
}

func TestAlumniDelete_CreadorPuedeBorrar(t *testing.T) {
	repo := newFakeAlumniRepo()
	uc := usecase.NewAlumniUseCase(repo)
	id := createAlumni(t, uc, "creador@just.edu.bd")

	err := uc.Delete(context.Background(), userWithRole("creador@just.edu.bd", rbac.RoleUser), id)
	require.NoError(t, err)

	a, _ := repo.FindByID(context.Background(), id)
	assert.Nil(t, a)
}

func TestAlumniDelete_TerceroSinPermisoRechazado(t *testing.T) {
	repo := newFakeAlumniRepo()
	uc := usecase.NewAlumniUseCase(repo)
	id := createAlumni(t, uc, "creador@just.edu.bd")

	err := uc.Delete(context.Background(), userWithRole("otro@just.edu.bd", rbac.RoleUser), id)
	assert.ErrorIs(t, err, domain.ErrNotOwner)

	a, _ := repo.FindByID(context.Background(), id)
	assert.NotNil(t, a, "el registro debe sobrevivir al intento rechazado")
}

// Un admin no creador puede borrar porque posee manage_alumni: la política de
// propiedad cede ante el permiso de gestión, no ante el nombre del rol.
func TestAlumniDelete_ManageAlumniPermiteBorrarAjeno(t *testing.T) {
	repo := newFakeAlumniRepo()
	uc := usecase.NewAlumniUseCase(repo)
	id := createAlumni(t, uc, "creador@just.edu.bd")

	err := uc.Delete(context.Background(), userWithRole("admin@just.edu.bd", rbac.RoleAdmin), id)
	require.NoError(t, err)
}

// Una cuenta desactivada falla toda autorización: ni el permiso manage_alumni
// ni ser el creador habilitan el borrado.
func TestAlumniDelete_CuentaInactivaRechazada(t *testing.T) {
	repo := newFakeAlumniRepo()
	uc := usecase.NewAlumniUseCase(repo)
	id := createAlumni(t, uc, "creador@just.edu.bd")

	adminBaja := userWithRole("admin@just.edu.bd", rbac.RoleAdmin)
	adminBaja.IsActive = false
	err := uc.Delete(context.Background(), adminBaja, id)
	assert.ErrorIs(t, err, domain.ErrInactiveUser)

	creadorBaja := userWithRole("creador@just.edu.bd", rbac.RoleUser)
	creadorBaja.IsActive = false
	err = uc.Delete(context.Background(), creadorBaja, id)
	assert.ErrorIs(t, err, domain.ErrInactiveUser)

	a, _ := repo.FindByID(context.Background(), id)
	assert.NotNil(t, a, "el registro debe sobrevivir a los intentos de una cuenta inactiva")
}

func TestAlumniDelete_Inexistente(t *testing.T) {
	repo := newFakeAlumniRepo()
	uc := usecase.NewAlumniUseCase(repo)

	err := uc.Delete(context.Background(), userWithRole("x@just.edu.bd", rbac.RoleUser), "no-existe")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
