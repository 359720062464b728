package dto

import "time"

// CreateAlumniRequest entrada para registrar un egresado.
type CreateAlumniRequest struct {
	Name     string `json:"name" validate:"required"`
	Batch    string `json:"batch" validate:"required"`
	Position string `json:"position" validate:"required"`
	Photo    string `json:"photo" validate:"required"`
	Bio      string `json:"bio" validate:"required"`
}

// AlumniResponse salida de un egresado.
type AlumniResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Batch     string    `json:"batch"`
	Position  string    `json:"position"`
	Photo     string    `json:"photo"`
	Bio       string    `json:"bio"`
	CreatedBy string    `json:"user"`
	CreatedAt time.Time `json:"createdAt"`
}
