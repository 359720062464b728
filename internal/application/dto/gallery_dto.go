package dto

import "time"

// CreateGalleryRequest entrada para agregar una foto a la galería.
type CreateGalleryRequest struct {
	Title   string `json:"title" validate:"required"`
	Caption string `json:"caption" validate:"required"`
	Image   string `json:"image" validate:"required"`
}

// GalleryItemResponse salida de un elemento de galería.
type GalleryItemResponse struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Caption   string    `json:"caption"`
	Image     string    `json:"image"`
	CreatedAt time.Time `json:"createdAt"`
}

// CreateGalleryResponse confirmación de creación.
type CreateGalleryResponse struct {
	Message     string              `json:"message"`
	GalleryItem GalleryItemResponse `json:"galleryItem"`
}
