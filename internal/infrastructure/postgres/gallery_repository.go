package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/justdc/club-api/internal/domain/entity"
	"github.com/justdc/club-api/internal/domain/repository"
)

var _ repository.GalleryRepository = (*GalleryRepo)(nil)

// GalleryRepo implementación del puerto GalleryRepository sobre PostgreSQL.
type GalleryRepo struct {
	pool *pgxpool.Pool
}

// NewGalleryRepository construye el adaptador de persistencia para la galería.
func NewGalleryRepository(pool *pgxpool.Pool) *GalleryRepo {
	return &GalleryRepo{pool: pool}
}

// Create persiste un elemento de galería.
func (r *GalleryRepo) Create(ctx context.Context, g *entity.GalleryItem) error {
	query := `
		INSERT INTO gallery (id, title, caption, image, created_at)
		VALUES ($1, $2, $3, $4, $5)`
	_, err := r.pool.Exec(ctx, query, g.ID, g.Title, g.Caption, g.Image, g.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert gallery item: %w", err)
	}
	return nil
}

// List devuelve todos los elementos de la galería.
func (r *GalleryRepo) List(ctx context.Context) ([]*entity.GalleryItem, error) {
	query := `SELECT id, title, caption, image, created_at FROM gallery ORDER BY created_at DESC`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list gallery: %w", err)
	}
	defer rows.Close()
	var list []*entity.GalleryItem
	for rows.Next() {
		var g entity.GalleryItem
		if err := rows.Scan(&g.ID, &g.Title, &g.Caption, &g.Image, &g.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan gallery item: %w", err)
		}
		list = append(list, &g)
	}
	return list, rows.Err()
}
