package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/justdc/club-api/internal/application/dto"
	"github.com/justdc/club-api/internal/application/usecase"
	"github.com/justdc/club-api/internal/domain"
)

// AlumniHandler maneja el registro de egresados.
type AlumniHandler struct {
	uc    *usecase.AlumniUseCase
	users usecase.UserProvisioner
}

// NewAlumniHandler construye el handler de egresados.
func NewAlumniHandler(uc *usecase.AlumniUseCase, users usecase.UserProvisioner) *AlumniHandler {
	return &AlumniHandler{uc: uc, users: users}
}

// Create godoc
// @Summary      Registrar egresado
// @Tags         alumni
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body  dto.CreateAlumniRequest  true  "name, batch, position, photo, bio"
// @Success      201   {object}  dto.AlumniResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/alumni [post]
func (h *AlumniHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateAlumniRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.Name == "" || in.Batch == "" || in.Position == "" || in.Photo == "" || in.Bio == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "name, batch, position, photo y bio son requeridos"})
	}
	out, err := h.uc.Create(c.Context(), GetEmail(c), in)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      Listar egresados
// @Tags         alumni
// @Produce      json
// @Success      200  {array}  dto.AlumniResponse
// @Router       /api/alumni [get]
func (h *AlumniHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar egresado (creador o permiso manage_alumni)
// @Tags         alumni
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  string  true  "ID del egresado"
// @Success      200  {object}  dto.MessageResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/alumni/{id} [delete]
func (h *AlumniHandler) Delete(c *fiber.Ctx) error {
	// La ruta solo exige autenticación; la política de propiedad necesita el
	// registro del llamador, así que se resuelve aquí con el mismo
	// aprovisionamiento que los endpoints de perfil.
	caller, _, err := h.users.EnsureUser(c.Context(), claimFromLocals(c))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	if err := h.uc.Delete(c.Context(), caller, c.Params("id")); err != nil {
		if errors.Is(err, domain.ErrInactiveUser) {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "ACCOUNT_INACTIVE", Message: "Account is inactive"})
		}
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "Alumni not found"})
		}
		if errors.Is(err, domain.ErrNotOwner) {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "NOT_OWNER", Message: "Only the creator can delete this record"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(dto.MessageResponse{Message: "Alumni deleted successfully"})
}
