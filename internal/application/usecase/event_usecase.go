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

// EventUseCase CRUD de eventos del club.
type EventUseCase struct {
	repo repository.EventRepository
}

// NewEventUseCase construye el caso de uso de eventos.
func NewEventUseCase(repo repository.EventRepository) *EventUseCase {
	return &EventUseCase{repo: repo}
}

// Create registra un nuevo evento con el email del creador.
func (uc *EventUseCase) Create(ctx context.Context, creatorEmail string, in dto.CreateEventRequest) (*dto.EventResponse, error) {
	eventDate, err := parseEventDate(in.Date)
	if err != nil {
		return nil, domain.ErrInvalidInput
	}
	e := &entity.Event{
		ID:          uuid.New().String(),
		Title:       in.Title,
		EventDate:   eventDate,
		Description: in.Description,
		Image:       in.Image,
		CreatedBy:   creatorEmail,
		CreatedAt:   time.Now(),
	}
	if err := uc.repo.Create(ctx, e); err != nil {
		return nil, err
	}
	return toEventResponse(e), nil
}

// List devuelve todos los eventos.
func (uc *EventUseCase) List(ctx context.Context) ([]dto.EventResponse, error) {
	events, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.EventResponse, 0, len(events))
	for _, e := range events {
		out = append(out, *toEventResponse(e))
	}
	return out, nil
}

// parseEventDate acepta RFC 3339 completo o solo fecha (YYYY-MM-DD),
// los dos formatos que envía el frontend.
func parseEventDate(s string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02", s)
}

func toEventResponse(e *entity.Event) *dto.EventResponse {
	return &dto.EventResponse{
		ID:          e.ID,
		Title:       e.Title,
		EventDate:   e.EventDate,
		Description: e.Description,
		Image:       e.Image,
		CreatedBy:   e.CreatedBy,
		CreatedAt:   e.CreatedAt,
	}
}
