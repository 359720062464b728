package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/justdc/club-api/internal/application/dto"
	"github.com/justdc/club-api/internal/domain/entity"
	"github.com/justdc/club-api/internal/domain/repository"
)

// GalleryUseCase CRUD de la galería.
type GalleryUseCase struct {
	repo repository.GalleryRepository
}

// NewGalleryUseCase construye el caso de uso de galería.
func NewGalleryUseCase(repo repository.GalleryRepository) *GalleryUseCase {
	return &GalleryUseCase{repo: repo}
}

// Create agrega una foto a la galería.
func (uc *GalleryUseCase) Create(ctx context.Context, in dto.CreateGalleryRequest) (*dto.GalleryItemResponse, error) {
	g := &entity.GalleryItem{
		ID:        uuid.New().String(),
		Title:     in.Title,
		Caption:   in.Caption,
		Image:     in.Image,
		CreatedAt: time.Now(),
	}
	if err := uc.repo.Create(ctx, g); err != nil {
		return nil, err
	}
	return toGalleryResponse(g), nil
}

// List devuelve todos los elementos de la galería.
func (uc *GalleryUseCase) List(ctx context.Context) ([]dto.GalleryItemResponse, error) {
	items, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.GalleryItemResponse, 0, len(items))
	for _, g := range items {
		out = append(out, *toGalleryResponse(g))
	}
	return out, nil
}

func toGalleryResponse(g *entity.GalleryItem) *dto.GalleryItemResponse {
	return &dto.GalleryItemResponse{
		ID:        g.ID,
		Title:     g.Title,
		Caption:   g.Caption,
		Image:     g.Image,
		CreatedAt: g.CreatedAt,
	}
}
