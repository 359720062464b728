package dto

import "time"

// StatsResponse estadísticas del usuario autenticado. Los campos de admin
// (TotalUsers en adelante) solo se incluyen para rol admin.
type StatsResponse struct {
	Rank     string    `json:"rank"`
	JoinDate time.Time `json:"joinDate"`

	TotalUsers        *int64 `json:"totalUsers,omitempty"`
	ActiveUsers       *int64 `json:"activeUsers,omitempty"`
	NewUsersThisMonth *int64 `json:"newUsersThisMonth,omitempty"`
}
