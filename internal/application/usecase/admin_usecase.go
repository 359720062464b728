package usecase

import (
	"context"
	"time"

	"github.com/justdc/club-api/internal/application/dto"
	"github.com/justdc/club-api/internal/domain"
	"github.com/justdc/club-api/internal/domain/entity"
	"github.com/justdc/club-api/internal/domain/rbac"
	"github.com/justdc/club-api/internal/domain/repository"
)

const searchLimit = 20

// RosterPDFGenerator puerto del generador del PDF de nómina de miembros.
type RosterPDFGenerator interface {
	GenerateRosterPDF(ctx context.Context, users []*entity.User, generatedAt time.Time) ([]byte, error)
}

// AdminUseCase operaciones reservadas a administradores: listado, búsqueda,
// asignación de rol y exportación de la nómina.
type AdminUseCase struct {
	repo repository.UserRepository
	pdf  RosterPDFGenerator
}

// NewAdminUseCase construye el caso de uso de administración.
func NewAdminUseCase(repo repository.UserRepository, pdf RosterPDFGenerator) *AdminUseCase {
	return &AdminUseCase{repo: repo, pdf: pdf}
}

// ListUsers devuelve todos los usuarios en vista saneada, más recientes primero.
func (uc *AdminUseCase) ListUsers(ctx context.Context) ([]dto.UserSummary, error) {
	users, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.UserSummary, 0, len(users))
	for _, u := range users {
		out = append(out, toUserSummary(u))
	}
	return out, nil
}

// AssignRole cambia el rol de un usuario. Es el único mutador legítimo de
// role y permissions: ambos se escriben juntos, con los permisos recalculados
// desde la tabla canónica, en un único UPDATE.
//   - rol fuera del conjunto fijo → domain.ErrInvalidRole (registro intacto)
//   - id sin registro → domain.ErrUserNotFound
func (uc *AdminUseCase) AssignRole(ctx context.Context, actorEmail, targetUserID, newRole string) (*dto.AssignRoleResponse, error) {
	assignment, ok := rbac.NewAssignment(newRole)
	if !ok {
		return nil, domain.ErrInvalidRole
	}

	target, err := uc.repo.FindByID(ctx, targetUserID)
	if err != nil {
		return nil, err
	}
	if target == nil {
		return nil, domain.ErrUserNotFound
	}

	modified, err := uc.repo.UpdateRole(ctx, targetUserID, assignment, actorEmail, time.Now())
	if err != nil {
		return nil, err
	}
	if modified == 0 {
		// El registro desapareció entre el Find y el Update.
		return nil, domain.ErrUserNotFound
	}

	return &dto.AssignRoleResponse{
		Message: "User role updated to " + assignment.Role() + " successfully",
		UpdatedUser: dto.UpdatedUserSummary{
			ID:          target.ID,
			Email:       target.Email,
			Role:        assignment.Role(),
			Permissions: assignment.Permissions(),
		},
	}, nil
}

// SearchUsers busca usuarios activos por nombre, email, departamento o
// carné estudiantil (máx. 20 resultados).
func (uc *AdminUseCase) SearchUsers(ctx context.Context, query string) (*dto.SearchUsersResponse, error) {
	users, err := uc.repo.Search(ctx, query, searchLimit)
	if err != nil {
		return nil, err
	}
	out := make([]dto.UserSummary, 0, len(users))
	for _, u := range users {
		out = append(out, toUserSummary(u))
	}
	return &dto.SearchUsersResponse{Query: query, Count: len(out), Users: out}, nil
}

// ExportRoster genera el PDF de la nómina de miembros.
func (uc *AdminUseCase) ExportRoster(ctx context.Context) ([]byte, error) {
	users, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	return uc.pdf.GenerateRosterPDF(ctx, users, time.Now())
}

func toUserSummary(u *entity.User) dto.UserSummary {
	return dto.UserSummary{
		ID:          u.ID,
		Name:        u.Name,
		Email:       u.Email,
		Role:        u.Role,
		Department:  u.Department,
		Batch:       u.Batch,
		IsActive:    u.IsActive,
		PhotoURL:    u.PhotoURL,
		JoinedAt:    u.JoinedAt,
		LastUpdated: u.LastUpdated,
	}
}
