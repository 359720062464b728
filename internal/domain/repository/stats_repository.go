package repository

import (
	"context"
	"time"
)

// MemberCounts agregados de membresía para el panel de admin.
type MemberCounts struct {
	TotalUsers        int64
	ActiveUsers       int64
	NewUsersThisMonth int64
}

// StatsRepository consultas de solo lectura para estadísticas.
type StatsRepository interface {
	// CountMembers agrega totales de usuarios; "nuevos del mes" se mide
	// desde monthStart (inicio del mes calendario del servidor).
	CountMembers(ctx context.Context, monthStart time.Time) (MemberCounts, error)
}
