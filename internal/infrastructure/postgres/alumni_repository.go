package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/justdc/club-api/internal/domain/entity"
	"github.com/justdc/club-api/internal/domain/repository"
)

var _ repository.AlumniRepository = (*AlumniRepo)(nil)

// AlumniRepo implementación del puerto AlumniRepository sobre PostgreSQL.
type AlumniRepo struct {
	pool *pgxpool.Pool
}

// NewAlumniRepository construye el adaptador de persistencia para egresados.
func NewAlumniRepository(pool *pgxpool.Pool) *AlumniRepo {
	return &AlumniRepo{pool: pool}
}

// Create persiste un egresado.
func (r *AlumniRepo) Create(ctx context.Context, a *entity.Alumni) error {
	query := `
		INSERT INTO alumni (id, name, batch, position, photo, bio, created_by, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.pool.Exec(ctx, query,
		a.ID, a.Name, a.Batch, a.Position, a.Photo, a.Bio, a.CreatedBy, a.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert alumni: %w", err)
	}
	return nil
}

// List devuelve los egresados, más recientes primero.
func (r *AlumniRepo) List(ctx context.Context) ([]*entity.Alumni, error) {
	query := `
		SELECT id, name, batch, position, photo, bio, created_by, created_at
		FROM alumni ORDER BY created_at DESC`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list alumni: %w", err)
	}
	defer rows.Close()
	var list []*entity.Alumni
	for rows.Next() {
		var a entity.Alumni
		if err := rows.Scan(&a.ID, &a.Name, &a.Batch, &a.Position, &a.Photo, &a.Bio, &a.CreatedBy, &a.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan alumni: %w", err)
		}
		list = append(list, &a)
	}
	return list, rows.Err()
}

// FindByID obtiene un egresado por ID; (nil, nil) si no existe.
func (r *AlumniRepo) FindByID(ctx context.Context, id string) (*entity.Alumni, error) {
	query := `
		SELECT id, name, batch, position, photo, bio, created_by, created_at
		FROM alumni WHERE id = $1`
	var a entity.Alumni
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&a.ID, &a.Name, &a.Batch, &a.Position, &a.Photo, &a.Bio, &a.CreatedBy, &a.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get alumni by id: %w", err)
	}
	return &a, nil
}

// Delete elimina un egresado por ID.
func (r *AlumniRepo) Delete(ctx context.Context, id string) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM alumni WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete alumni: %w", err)
	}
	return nil
}
