package usecase

import (
	"context"
	"time"

	"github.com/justdc/club-api/internal/application/dto"
	"github.com/justdc/club-api/internal/domain/entity"
	"github.com/justdc/club-api/internal/domain/rbac"
	"github.com/justdc/club-api/internal/domain/repository"
)

// StatsUseCase estadísticas del usuario autenticado. Los administradores
// reciben además agregados de membresía.
type StatsUseCase struct {
	users UserProvisioner
	stats repository.StatsRepository
}

// UserProvisioner contrato mínimo sobre UserUseCase que necesita este caso de
// uso (y los middlewares); la interfaz evita acoplar structs concretos.
type UserProvisioner interface {
	EnsureUser(ctx context.Context, claim entity.IdentityClaim) (*entity.User, bool, error)
	ResolveByEmail(ctx context.Context, email string) (*entity.User, error)
}

// NewStatsUseCase construye el caso de uso de estadísticas.
func NewStatsUseCase(users UserProvisioner, stats repository.StatsRepository) *StatsUseCase {
	return &StatsUseCase{users: users, stats: stats}
}

// GetStats arma las estadísticas para el usuario autenticado.
func (uc *StatsUseCase) GetStats(ctx context.Context, claim entity.IdentityClaim) (*dto.StatsResponse, error) {
	user, _, err := uc.users.EnsureUser(ctx, claim)
	if err != nil {
		return nil, err
	}

	rank := "Member"
	if user.Role == rbac.RoleAdmin {
		rank = "Administrator"
	}
	out := &dto.StatsResponse{
		Rank:     rank,
		JoinDate: user.JoinedAt,
	}

	if user.Role == rbac.RoleAdmin {
		now := time.Now()
		monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
		counts, err := uc.stats.CountMembers(ctx, monthStart)
		if err != nil {
			return nil, err
		}
		out.TotalUsers = &counts.TotalUsers
		out.ActiveUsers = &counts.ActiveUsers
		out.NewUsersThisMonth = &counts.NewUsersThisMonth
	}

	return out, nil
}
