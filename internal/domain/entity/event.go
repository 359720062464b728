package entity

import "time"

// Event evento del club (debates, torneos, reuniones).
type Event struct {
	ID          string
	Title       string
	EventDate   time.Time
	Description string
	Image       string
	CreatedBy   string // email del usuario autenticado que lo creó
	CreatedAt   time.Time
}
