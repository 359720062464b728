package entity

import "time"

// GalleryItem foto de la galería del club.
type GalleryItem struct {
	ID        string
	Title     string
	Caption   string
	Image     string
	CreatedAt time.Time
}
