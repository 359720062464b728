package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/justdc/club-api/internal/application/dto"
	"github.com/justdc/club-api/internal/domain/entity"
	"github.com/justdc/club-api/internal/domain/rbac"
	"github.com/justdc/club-api/internal/domain/repository"
)

// UserUseCase concentra el aprovisionamiento y las operaciones de perfil.
// Todo punto de entrada que necesite "crear si no existe" pasa por EnsureUser;
// ningún handler reimplementa la forma del registro por defecto.
type UserUseCase struct {
	repo repository.UserRepository
}

// NewUserUseCase construye el caso de uso con el puerto de persistencia.
func NewUserUseCase(repo repository.UserRepository) *UserUseCase {
	return &UserUseCase{repo: repo}
}

// EnsureUser garantiza que la identidad verificada tenga exactamente un
// registro de usuario. Camino común: el registro existe y se devuelve intacto.
// Primer contacto: se inserta el registro por defecto (rol user, permisos
// canónicos, activo, assigned_by=system) con el upsert condicional del
// repositorio; si dos peticiones compiten, ambas observan el mismo registro.
// created=true solo para la llamada que efectivamente insertó.
func (uc *UserUseCase) EnsureUser(ctx context.Context, claim entity.IdentityClaim) (*entity.User, bool, error) {
	existing, err := uc.repo.FindByEmail(ctx, claim.Email)
	if err != nil {
		return nil, false, err
	}
	if existing != nil {
		return existing, false, nil
	}

	assignment, _ := rbac.NewAssignment(rbac.RoleUser)
	now := time.Now()
	user := &entity.User{
		ID:             uuid.New().String(),
		Email:          claim.Email,
		Name:           claim.Name,
		PhotoURL:       claim.PictureURL,
		Skills:         []string{},
		Role:           assignment.Role(),
		Permissions:    assignment.Permissions(),
		IsActive:       true,
		RoleAssignedAt: now,
		AssignedBy:     entity.AssignedBySystem,
		JoinedAt:       now,
		LastUpdated:    now,
	}

	// El upsert condicional resuelve la carrera de primer contacto: si otra
	// petición ganó la inserción, winner es su registro y created=false.
	winner, created, err := uc.repo.InsertIfAbsent(ctx, user)
	if err != nil {
		return nil, false, err
	}
	return winner, created, nil
}

// ResolveByEmail busca el registro sin aprovisionar (gate de rol: la ausencia
// es un error del llamador, no un disparador de creación).
func (uc *UserUseCase) ResolveByEmail(ctx context.Context, email string) (*entity.User, error) {
	return uc.repo.FindByEmail(ctx, email)
}

// Signup alta explícita: idempotente sobre el email.
func (uc *UserUseCase) Signup(ctx context.Context, in dto.SignupRequest) (*dto.SignupResponse, bool, error) {
	user, created, err := uc.EnsureUser(ctx, entity.IdentityClaim{Email: in.Email, Name: in.Name})
	if err != nil {
		return nil, false, err
	}
	out := &dto.SignupResponse{
		InsertedID:  user.ID,
		Role:        user.Role,
		Permissions: user.Permissions,
	}
	if created {
		out.Message = "User created successfully with default role"
	} else {
		out.Message = "User already exists"
		out.Permissions = nil
	}
	return out, created, nil
}

// GetProfile devuelve el perfil del usuario autenticado, creándolo en el
// primer acceso.
func (uc *UserUseCase) GetProfile(ctx context.Context, claim entity.IdentityClaim) (*dto.ProfileResponse, error) {
	user, _, err := uc.EnsureUser(ctx, claim)
	if err != nil {
		return nil, err
	}
	return ToProfileResponse(user), nil
}

// UpdateProfile actualiza los campos de perfil del usuario autenticado.
// El registro se aprovisiona primero si no existe.
// Role y permissions quedan fuera por el tipo ProfileUpdate.
func (uc *UserUseCase) UpdateProfile(ctx context.Context, claim entity.IdentityClaim, in dto.UpdateProfileRequest) (*dto.UpdateProfileResponse, error) {
	if _, _, err := uc.EnsureUser(ctx, claim); err != nil {
		return nil, err
	}
	skills := in.Skills
	if skills == nil {
		skills = []string{}
	}
	modified, err := uc.repo.UpdateProfile(ctx, claim.Email, entity.ProfileUpdate{
		Name:       in.Name,
		Phone:      in.Phone,
		Department: in.Department,
		StudentID:  in.StudentID,
		Batch:      in.Batch,
		Bio:        in.Bio,
		Skills:     skills,
		SocialLinks: entity.SocialLinks{
			Facebook: in.SocialLinks.Facebook,
			Twitter:  in.SocialLinks.Twitter,
			LinkedIn: in.SocialLinks.LinkedIn,
		},
		PhotoURL: in.PhotoURL,
	}, time.Now())
	if err != nil {
		return nil, err
	}
	return &dto.UpdateProfileResponse{
		Message:       "Profile updated successfully",
		ModifiedCount: modified,
	}, nil
}

// Permissions devuelve rol y permisos efectivos, aprovisionando si hace falta.
func (uc *UserUseCase) Permissions(ctx context.Context, claim entity.IdentityClaim) (*dto.PermissionsResponse, error) {
	user, _, err := uc.EnsureUser(ctx, claim)
	if err != nil {
		return nil, err
	}
	return &dto.PermissionsResponse{Role: user.Role, Permissions: user.Permissions}, nil
}

// ListMembers directorio de miembros activos (requiere permiso view_members).
func (uc *UserUseCase) ListMembers(ctx context.Context) ([]dto.MemberSummary, error) {
	users, err := uc.repo.ListActive(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.MemberSummary, 0, len(users))
	for _, u := range users {
		out = append(out, dto.MemberSummary{
			ID:         u.ID,
			Name:       u.Name,
			Department: u.Department,
			Batch:      u.Batch,
			PhotoURL:   u.PhotoURL,
			Bio:        u.Bio,
		})
	}
	return out, nil
}

// ToProfileResponse convierte la entidad al DTO de perfil.
func ToProfileResponse(u *entity.User) *dto.ProfileResponse {
	if u == nil {
		return nil
	}
	return &dto.ProfileResponse{
		ID:         u.ID,
		Email:      u.Email,
		Name:       u.Name,
		PhotoURL:   u.PhotoURL,
		Phone:      u.Phone,
		Department: u.Department,
		StudentID:  u.StudentID,
		Batch:      u.Batch,
		Bio:        u.Bio,
		Skills:     u.Skills,
		SocialLinks: dto.SocialLinksDTO{
			Facebook: u.SocialLinks.Facebook,
			Twitter:  u.SocialLinks.Twitter,
			LinkedIn: u.SocialLinks.LinkedIn,
		},
		Role:           u.Role,
		Permissions:    u.Permissions,
		IsActive:       u.IsActive,
		RoleAssignedAt: u.RoleAssignedAt,
		AssignedBy:     u.AssignedBy,
		JoinedAt:       u.JoinedAt,
		LastUpdated:    u.LastUpdated,
	}
}
