package repository

import (
	"context"

	"github.com/justdc/club-api/internal/domain/entity"
)

// GalleryRepository puerto de persistencia para la galería.
type GalleryRepository interface {
	Create(ctx context.Context, g *entity.GalleryItem) error
	List(ctx context.Context) ([]*entity.GalleryItem, error)
}
