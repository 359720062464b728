package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/justdc/club-api/internal/domain/entity"
	"github.com/justdc/club-api/internal/domain/rbac"
	"github.com/justdc/club-api/internal/domain/repository"
)

var _ repository.UserRepository = (*UserRepo)(nil)

const userColumns = `id, email, name, photo_url, phone, department, student_id, batch, bio,
	skills, social_links, role, permissions, is_active,
	role_assigned_at, assigned_by, joined_at, last_updated`

// UserRepo implementación del puerto UserRepository sobre PostgreSQL.
type UserRepo struct {
	pool *pgxpool.Pool
}

// NewUserRepository construye el adaptador de persistencia para usuarios.
func NewUserRepository(pool *pgxpool.Pool) *UserRepo {
	return &UserRepo{pool: pool}
}

// FindByEmail obtiene un usuario por email; (nil, nil) si no existe.
func (r *UserRepo) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE email = $1`
	u, err := scanUser(r.pool.QueryRow(ctx, query, email))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get user by email: %w", err)
	}
	return u, nil
}

// FindByID obtiene un usuario por ID; (nil, nil) si no existe.
func (r *UserRepo) FindByID(ctx context.Context, id string) (*entity.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1`
	u, err := scanUser(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get user by id: %w", err)
	}
	return u, nil
}

// InsertIfAbsent inserta solo si el email no existe (upsert condicional).
// ON CONFLICT DO NOTHING no devuelve fila cuando pierde la carrera; en ese
// caso se lee el registro ganador. Nunca read-then-insert por separado.
func (r *UserRepo) InsertIfAbsent(ctx context.Context, user *entity.User) (*entity.User, bool, error) {
	links, err := json.Marshal(user.SocialLinks)
	if err != nil {
		return nil, false, fmt.Errorf("marshal social links: %w", err)
	}
	query := `
		INSERT INTO users (` + userColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18)
		ON CONFLICT (email) DO NOTHING
		RETURNING ` + userColumns
	inserted, err := scanUser(r.pool.QueryRow(ctx, query,
		user.ID, user.Email, user.Name, user.PhotoURL, user.Phone, user.Department,
		user.StudentID, user.Batch, user.Bio, user.Skills, links,
		user.Role, user.Permissions, user.IsActive,
		user.RoleAssignedAt, user.AssignedBy, user.JoinedAt, user.LastUpdated,
	))
	if err == nil {
		return inserted, true, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return nil, false, fmt.Errorf("insert user if absent: %w", err)
	}

	// Otra petición ganó la inserción: devolver su registro.
	winner, err := r.FindByEmail(ctx, user.Email)
	if err != nil {
		return nil, false, err
	}
	if winner == nil {
		return nil, false, fmt.Errorf("insert user if absent: el registro ganador desapareció para %s", user.Email)
	}
	return winner, false, nil
}

// UpdateProfile actualiza únicamente columnas de perfil; role y permissions
// no aparecen en el SET por construcción.
func (r *UserRepo) UpdateProfile(ctx context.Context, email string, p entity.ProfileUpdate, now time.Time) (int64, error) {
	links, err := json.Marshal(p.SocialLinks)
	if err != nil {
		return 0, fmt.Errorf("marshal social links: %w", err)
	}
	query := `
		UPDATE users SET name = $2, phone = $3, department = $4, student_id = $5,
			batch = $6, bio = $7, skills = $8, social_links = $9, photo_url = $10,
			last_updated = $11
		WHERE email = $1`
	tag, err := r.pool.Exec(ctx, query,
		email, p.Name, p.Phone, p.Department, p.StudentID, p.Batch, p.Bio,
		p.Skills, links, p.PhotoURL, now,
	)
	if err != nil {
		return 0, fmt.Errorf("update profile: %w", err)
	}
	return tag.RowsAffected(), nil
}

// UpdateRole aplica la asignación de rol en un único UPDATE atómico.
func (r *UserRepo) UpdateRole(ctx context.Context, id string, a rbac.Assignment, assignedBy string, now time.Time) (int64, error) {
	query := `
		UPDATE users SET role = $2, permissions = $3, role_assigned_at = $4,
			assigned_by = $5, last_updated = $4
		WHERE id = $1`
	tag, err := r.pool.Exec(ctx, query, id, a.Role(), a.Permissions(), now, assignedBy)
	if err != nil {
		return 0, fmt.Errorf("update role: %w", err)
	}
	return tag.RowsAffected(), nil
}

// List devuelve todos los usuarios, más recientes primero.
func (r *UserRepo) List(ctx context.Context) ([]*entity.User, error) {
	query := `SELECT ` + userColumns + ` FROM users ORDER BY joined_at DESC`
	return r.queryUsers(ctx, query)
}

// ListActive devuelve los usuarios activos, más recientes primero.
func (r *UserRepo) ListActive(ctx context.Context) ([]*entity.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE is_active ORDER BY joined_at DESC`
	return r.queryUsers(ctx, query)
}

// Search busca usuarios activos por nombre, email, departamento o carné.
func (r *UserRepo) Search(ctx context.Context, q string, limit int) ([]*entity.User, error) {
	query := `
		SELECT ` + userColumns + ` FROM users
		WHERE is_active AND (
			name ILIKE '%' || $1 || '%' OR email ILIKE '%' || $1 || '%'
			OR department ILIKE '%' || $1 || '%' OR student_id ILIKE '%' || $1 || '%'
		)
		ORDER BY joined_at DESC LIMIT $2`
	return r.queryUsers(ctx, query, q, limit)
}

func (r *UserRepo) queryUsers(ctx context.Context, query string, args ...any) ([]*entity.User, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query users: %w", err)
	}
	defer rows.Close()
	var list []*entity.User
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, fmt.Errorf("scan user: %w", err)
		}
		list = append(list, u)
	}
	return list, rows.Err()
}

// scanUser lee una fila con el orden de userColumns.
func scanUser(row pgx.Row) (*entity.User, error) {
	var u entity.User
	var links []byte
	err := row.Scan(
		&u.ID, &u.Email, &u.Name, &u.PhotoURL, &u.Phone, &u.Department,
		&u.StudentID, &u.Batch, &u.Bio, &u.Skills, &links,
		&u.Role, &u.Permissions, &u.IsActive,
		&u.RoleAssignedAt, &u.AssignedBy, &u.JoinedAt, &u.LastUpdated,
	)
	if err != nil {
		return nil, err
	}
	if len(links) > 0 {
		if err := json.Unmarshal(links, &u.SocialLinks); err != nil {
			return nil, fmt.Errorf("unmarshal social links: %w", err)
		}
	}
	return &u, nil
}
