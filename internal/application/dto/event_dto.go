package dto

import "time"

// CreateEventRequest entrada para crear un evento (todos los campos requeridos).
type CreateEventRequest struct {
	Title       string `json:"title" validate:"required"`
	Date        string `json:"date" validate:"required"` // RFC 3339 o YYYY-MM-DD
	Description string `json:"description" validate:"required"`
	Image       string `json:"image" validate:"required"`
}

// EventResponse salida de un evento.
type EventResponse struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	EventDate   time.Time `json:"eventDate"`
	Description string    `json:"description"`
	Image       string    `json:"image"`
	CreatedBy   string    `json:"user"`
	CreatedAt   time.Time `json:"createdAt"`
}
