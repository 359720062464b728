package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/justdc/club-api/internal/application/dto"
	"github.com/justdc/club-api/internal/domain"
	"github.com/justdc/club-api/internal/domain/entity"
	"github.com/justdc/club-api/internal/domain/repository"
)

// AlumniUseCase CRUD de egresados. El borrado aplica una política de
// propiedad (solo el creador), separada de los gates de rol/permiso: un
// tercero solo puede borrar si posee el permiso manage_alumni.
type AlumniUseCase struct {
	repo repository.AlumniRepository
}

// NewAlumniUseCase construye el caso de uso de egresados.
func NewAlumniUseCase(repo repository.AlumniRepository) *AlumniUseCase {
	return &AlumniUseCase{repo: repo}
}

// Create registra un egresado con el email del creador.
func (uc *AlumniUseCase) Create(ctx context.Context, creatorEmail string, in dto.CreateAlumniRequest) (*dto.AlumniResponse, error) {
	a := &entity.Alumni{
		ID:        uuid.New().String(),
		Name:      in.Name,
		Batch:     in.Batch,
		Position:  in.Position,
		Photo:     in.Photo,
		Bio:       in.Bio,
		CreatedBy: creatorEmail,
		CreatedAt: time.Now(),
	}
	if err := uc.repo.Create(ctx, a); err != nil {
		return nil, err
	}
	return toAlumniResponse(a), nil
}

// List devuelve los egresados, más recientes primero.
func (uc *AlumniUseCase) List(ctx context.Context) ([]dto.AlumniResponse, error) {
	list, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.AlumniResponse, 0, len(list))
	for _, a := range list {
		out = append(out, *toAlumniResponse(a))
	}
	return out, nil
}

// Delete elimina un egresado. Permitido para el creador del registro o para
// quien posea el permiso manage_alumni; cualquier otro caso → ErrNotOwner.
// Una cuenta desactivada no puede borrar nada, ni siquiera lo propio.
func (uc *AlumniUseCase) Delete(ctx context.Context, caller *entity.User, id string) error {
	if !caller.IsActive {
		return domain.ErrInactiveUser
	}
	a, err := uc.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if a == nil {
		return domain.ErrNotFound
	}
	if a.CreatedBy != caller.Email && !caller.HasPermission("manage_alumni") {
		return domain.ErrNotOwner
	}
	return uc.repo.Delete(ctx, id)
}

func toAlumniResponse(a *entity.Alumni) *dto.AlumniResponse {
	return &dto.AlumniResponse{
		ID:        a.ID,
		Name:      a.Name,
		Batch:     a.Batch,
		Position:  a.Position,
		Photo:     a.Photo,
		Bio:       a.Bio,
		CreatedBy: a.CreatedBy,
		CreatedAt: a.CreatedAt,
	}
}
