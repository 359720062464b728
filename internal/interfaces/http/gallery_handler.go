package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/justdc/club-api/internal/application/dto"
	"github.com/justdc/club-api/internal/application/usecase"
)

// GalleryHandler maneja la galería de fotos.
type GalleryHandler struct {
	uc *usecase.GalleryUseCase
}

// NewGalleryHandler construye el handler de galería.
func NewGalleryHandler(uc *usecase.GalleryUseCase) *GalleryHandler {
	return &GalleryHandler{uc: uc}
}

// Create godoc
// @Summary      Agregar foto a la galería
// @Tags         gallery
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body  dto.CreateGalleryRequest  true  "title, caption, image"
// @Success      201   {object}  dto.CreateGalleryResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/gallery [post]
func (h *GalleryHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateGalleryRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.Title == "" || in.Caption == "" || in.Image == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "title, caption e image son requeridos"})
	}
	item, err := h.uc.Create(c.Context(), in)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(dto.CreateGalleryResponse{
		Message:     "Gallery item created successfully",
		GalleryItem: *item,
	})
}

// List godoc
// @Summary      Listar la galería
// @Tags         gallery
// @Produce      json
// @Success      200  {array}  dto.GalleryItemResponse
// @Router       /api/gallery [get]
func (h *GalleryHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}
