package usecase_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/justdc/club-api/internal/application/dto"
	"github.com/justdc/club-api/internal/application/usecase"
	"github.com/justdc/club-api/internal/domain/entity"
	"github.com/justdc/club-api/internal/domain/rbac"
	"github.com/justdc/club-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fake in-memory del puerto UserRepository
// ──────────────────────────────────────────────────────────────────────────────

var _ repository.UserRepository = (*fakeUserRepo)(nil)

// fakeUserRepo réplica en memoria del contrato del puerto: Find devuelve
// (nil, nil) en ausencia e InsertIfAbsent es atómico bajo el mutex, igual que
// el ON CONFLICT del adaptador real.
type fakeUserRepo struct {
	mu      sync.Mutex
	byEmail map[string]*entity.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{byEmail: make(map[string]*entity.User)}
}

func (f *fakeUserRepo) FindByEmail(_ context.Context, email string) (*entity.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if u, ok := f.byEmail[email]; ok {
		cp := *u
		return &cp, nil
	}
	return nil, nil
}

func (f *fakeUserRepo) FindByID(_ context.Context, id string) (*entity.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, u := range f.byEmail {
		if u.ID == id {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) InsertIfAbsent(_ context.Context, user *entity.User) (*entity.User, bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if existing, ok := f.byEmail[user.Email]; ok {
		cp := *existing
		return &cp, false, nil
	}
	cp := *user
	f.byEmail[user.Email] = &cp
	out := cp
	return &out, true, nil
}

func (f *fakeUserRepo) UpdateProfile(_ context.Context, email string, p entity.ProfileUpdate, now time.Time) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	u, ok := f.byEmail[email]
	if !ok {
		return 0, nil
	}
	u.Name = p.Name
	u.Phone = p.Phone
	u.Department = p.Department
	u.StudentID = p.StudentID
	u.Batch = p.Batch
	u.Bio = p.Bio
	u.Skills = p.Skills
	u.SocialLinks = p.SocialLinks
	u.PhotoURL = p.PhotoURL
	u.LastUpdated = now
	return 1, nil
}

func (f *fakeUserRepo) UpdateRole(_ context.Context, id string, a rbac.Assignment, assignedBy string, now time.Time) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, u := range f.byEmail {
		if u.ID == id {
			u.Role = a.Role()
			u.Permissions = a.Permissions()
			u.RoleAssignedAt = now
			u.AssignedBy = assignedBy
			u.LastUpdated = now
			return 1, nil
		}
	}
	return 0, nil
}

func (f *fakeUserRepo) List(_ context.Context) ([]*entity.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]*entity.User, 0, len(f.byEmail))
	for _, u := range f.byEmail {
		cp := *u
		out = append(out, &cp)
	}
	return out, nil
}

func (f *fakeUserRepo) ListActive(ctx context.Context) ([]*entity.User, error) {
	all, _ := f.List(ctx)
	var out []*entity.User
	for _, u := range all {
		if u.IsActive {
			out = append(out, u)
		}
	}
	return out, nil
}

func (f *fakeUserRepo) Search(ctx context.Context, query string, limit int) ([]*entity.User, error) {
	all, _ := f.ListActive(ctx)
	if len(all) > limit {
		all = all[:limit]
	}
	return all, nil
}

// ──────────────────────────────────────────────────────────────────────────────
// EnsureUser — aprovisionamiento por defecto
// ──────────────────────────────────────────────────────────────────────────────

func TestEnsureUser_PrimerContactoCreaRegistroPorDefecto(t *testing.T) {
	repo := newFakeUserRepo()
	uc := usecase.NewUserUseCase(repo)

	user, created, err := uc.EnsureUser(context.Background(), entity.IdentityClaim{
		Email: "nuevo@just.edu.bd",
		Name:  "Usuario Nuevo",
	})
	require.NoError(t, err)
	require.NotNil(t, user)
	assert.True(t, created)

	assert.NotEmpty(t, user.ID)
	assert.Equal(t, "nuevo@just.edu.bd", user.Email)
	assert.Equal(t, rbac.RoleUser, user.Role, "el rol por defecto debe ser user")
	assert.Equal(t, rbac.CanonicalPermissions(rbac.RoleUser), user.Permissions,
		"los permisos iniciales deben ser el conjunto canónico del rol user")
	assert.True(t, user.IsActive)
	assert.Equal(t, entity.AssignedBySystem, user.AssignedBy)
	assert.NotNil(t, user.Skills, "skills debe serializar como [] y no como null")
	assert.False(t, user.JoinedAt.IsZero())
}

func TestEnsureUser_RegistroExistenteSeDevuelveIntacto(t *testing.T) {
	repo := newFakeUserRepo()
	uc := usecase.NewUserUseCase(repo)
	ctx := context.Background()

	first, created, err := uc.EnsureUser(ctx, entity.IdentityClaim{Email: "ana@just.edu.bd", Name: "Ana"})
	require.NoError(t, err)
	require.True(t, created)

	// Segunda resolución de la misma identidad: mismo registro, sin creación.
	second, created, err := uc.EnsureUser(ctx, entity.IdentityClaim{Email: "ana@just.edu.bd", Name: "Otro Nombre"})
	require.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, "Ana", second.Name, "un EnsureUser posterior no debe mutar el registro existente")
}

// Carrera de primer contacto: N peticiones concurrentes para la misma
// identidad deben converger en un único registro, con created=true exactamente
// una vez.
func TestEnsureUser_CarreraDePrimerContacto(t *testing.T) {
	repo := newFakeUserRepo()
	uc := usecase.NewUserUseCase(repo)
	ctx := context.Background()

	const n = 32
	var wg sync.WaitGroup
	ids := make([]string, n)
	createdFlags := make([]bool, n)
	errs := make([]error, n)

	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			u, created, err := uc.EnsureUser(ctx, entity.IdentityClaim{Email: "carrera@just.edu.bd"})
			if err != nil {
				errs[i] = err
				return
			}
			ids[i] = u.ID
			createdFlags[i] = created
		}(i)
	}
	wg.Wait()

	creations := 0
	for i := 0; i < n; i++ {
		require.NoError(t, errs[i])
		assert.Equal(t, ids[0], ids[i], "todas las peticiones deben observar el mismo registro")
		if createdFlags[i] {
			creations++
		}
	}
	assert.Equal(t, 1, creations, "exactamente una petición debe reportar la creación")
}

// ──────────────────────────────────────────────────────────────────────────────
// Signup — alta explícita idempotente
// ──────────────────────────────────────────────────────────────────────────────

func TestSignup_NuevoYExistente(t *testing.T) {
	repo := newFakeUserRepo()
	uc := usecase.NewUserUseCase(repo)
	ctx := context.Background()

	out, created, err := uc.Signup(ctx, dto.SignupRequest{Name: "Leo", Email: "leo@just.edu.bd"})
	require.NoError(t, err)
	assert.True(t, created)
	assert.Equal(t, "User created successfully with default role", out.Message)
	assert.Equal(t, rbac.RoleUser, out.Role)
	assert.NotEmpty(t, out.Permissions)

	again, created, err := uc.Signup(ctx, dto.SignupRequest{Name: "Leo", Email: "leo@just.edu.bd"})
	require.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, "User already exists", again.Message)
	assert.Equal(t, out.InsertedID, again.InsertedID)
}

// ──────────────────────────────────────────────────────────────────────────────
// UpdateProfile — role y permissions quedan fuera por construcción
// ──────────────────────────────────────────────────────────────────────────────

func TestUpdateProfile_NoTocaRolNiPermisos(t *testing.T) {
	repo := newFakeUserRepo()
	uc := usecase.NewUserUseCase(repo)
	ctx := context.Background()
	claim := entity.IdentityClaim{Email: "mira@just.edu.bd", Name: "Mira"}

	_, _, err := uc.EnsureUser(ctx, claim)
	require.NoError(t, err)

	out, err := uc.UpdateProfile(ctx, claim, dto.UpdateProfileRequest{
		Name:       "Mira Rahman",
		Department: "CSE",
		Batch:      "2021",
		Skills:     []string{"rebuttal"},
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1), out.ModifiedCount)

	u, err := uc.ResolveByEmail(ctx, claim.Email)
	require.NoError(t, err)
	assert.Equal(t, "Mira Rahman", u.Name)
	assert.Equal(t, rbac.RoleUser, u.Role)
	assert.Equal(t, rbac.CanonicalPermissions(rbac.RoleUser), u.Permissions,
		"la edición de perfil nunca debe alterar rol ni permisos")
}

func TestResolveByEmail_AusenteNoAprovisiona(t *testing.T) {
	repo := newFakeUserRepo()
	uc := usecase.NewUserUseCase(repo)

	u, err := uc.ResolveByEmail(context.Background(), "fantasma@just.edu.bd")
	require.NoError(t, err)
	assert.Nil(t, u, "resolver sin aprovisionar debe devolver nil en ausencia")

	all, _ := repo.List(context.Background())
	assert.Empty(t, all, "la resolución no debe crear registros")
}
