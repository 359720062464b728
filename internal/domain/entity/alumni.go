package entity

import "time"

// Alumni egresado destacado del club.
type Alumni struct {
	ID        string
	Name      string
	Batch     string
	Position  string
	Photo     string
	Bio       string
	CreatedBy string // email del creador; gobierna la regla de borrado por propiedad
	CreatedAt time.Time
}
