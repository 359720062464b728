package repository

import (
	"context"

	"github.com/justdc/club-api/internal/domain/entity"
)

// EventRepository puerto de persistencia para eventos.
type EventRepository interface {
	Create(ctx context.Context, e *entity.Event) error
	List(ctx context.Context) ([]*entity.Event, error)
}
