package repository

import (
	"context"
	"time"

	"github.com/justdc/club-api/internal/domain/entity"
	"github.com/justdc/club-api/internal/domain/rbac"
)

// UserRepository define el puerto de persistencia para User (DIP).
// Los Find devuelven (nil, nil) cuando el registro no existe.
type UserRepository interface {
	FindByEmail(ctx context.Context, email string) (*entity.User, error)
	FindByID(ctx context.Context, id string) (*entity.User, error)

	// InsertIfAbsent inserta el registro solo si no existe otro con el mismo
	// email (upsert condicional atómico). Devuelve el registro ganador y
	// created=true solo si esta llamada realizó la inserción. Es la única
	// primitiva permitida para el primer contacto: un read-then-insert
	// separado duplicaría registros bajo carrera.
	InsertIfAbsent(ctx context.Context, user *entity.User) (*entity.User, bool, error)

	// UpdateProfile actualiza únicamente campos de perfil; por construcción
	// no puede tocar role ni permissions. Devuelve filas modificadas.
	UpdateProfile(ctx context.Context, email string, p entity.ProfileUpdate, now time.Time) (int64, error)

	// UpdateRole aplica una asignación de rol en un único UPDATE atómico:
	// role, permissions, role_assigned_at, assigned_by y last_updated juntos.
	UpdateRole(ctx context.Context, id string, a rbac.Assignment, assignedBy string, now time.Time) (int64, error)

	List(ctx context.Context) ([]*entity.User, error)
	ListActive(ctx context.Context) ([]*entity.User, error)
	Search(ctx context.Context, query string, limit int) ([]*entity.User, error)
}
