package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/justdc/club-api/internal/domain/repository"
)

var _ repository.StatsRepository = (*StatsRepo)(nil)

// StatsRepo consultas de solo lectura para estadísticas de membresía.
type StatsRepo struct {
	pool *pgxpool.Pool
}

// NewStatsRepository construye el adaptador de estadísticas.
func NewStatsRepository(pool *pgxpool.Pool) *StatsRepo {
	return &StatsRepo{pool: pool}
}

// CountMembers agrega totales de usuarios en una sola consulta.
func (r *StatsRepo) CountMembers(ctx context.Context, monthStart time.Time) (repository.MemberCounts, error) {
	const query = `
	SELECT
	    COUNT(*)                                          AS total_users,
	    COUNT(*) FILTER (WHERE is_active)                 AS active_users,
	    COUNT(*) FILTER (WHERE joined_at >= $1)           AS new_users_this_month
	FROM users`

	var c repository.MemberCounts
	err := r.pool.QueryRow(ctx, query, monthStart).Scan(
		&c.TotalUsers, &c.ActiveUsers, &c.NewUsersThisMonth,
	)
	if err != nil {
		return repository.MemberCounts{}, fmt.Errorf("count members: %w", err)
	}
	return c, nil
}
