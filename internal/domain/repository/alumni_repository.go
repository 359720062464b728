package repository

import (
	"context"

	"github.com/justdc/club-api/internal/domain/entity"
)

// AlumniRepository puerto de persistencia para egresados.
type AlumniRepository interface {
	Create(ctx context.Context, a *entity.Alumni) error
	// List devuelve los egresados ordenados por fecha de creación descendente.
	List(ctx context.Context) ([]*entity.Alumni, error)
	// FindByID devuelve (nil, nil) si no existe.
	FindByID(ctx context.Context, id string) (*entity.Alumni, error)
	Delete(ctx context.Context, id string) error
}
