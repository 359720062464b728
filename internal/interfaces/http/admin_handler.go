package http

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/justdc/club-api/internal/application/dto"
	"github.com/justdc/club-api/internal/application/usecase"
	"github.com/justdc/club-api/internal/domain"
	"github.com/justdc/club-api/internal/domain/rbac"
)

// AdminHandler operaciones reservadas al rol admin. El router monta estas
// rutas detrás de RequireRole("admin"); aquí solo queda la lógica HTTP.
type AdminHandler struct {
	uc *usecase.AdminUseCase
}

// NewAdminHandler construye el handler de administración.
func NewAdminHandler(uc *usecase.AdminUseCase) *AdminHandler {
	return &AdminHandler{uc: uc}
}

// All godoc
// @Summary      Listar todos los usuarios (vista saneada)
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   dto.UserSummary
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /api/users/admin/all [get]
func (h *AdminHandler) All(c *fiber.Ctx) error {
	out, err := h.uc.ListUsers(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// AssignRole godoc
// @Summary      Asignar rol a un usuario (recalcula permisos canónicos)
// @Tags         admin
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body  dto.AssignRoleRequest  true  "userId, newRole"
// @Success      200   {object}  dto.AssignRoleResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/users/admin/assign-role [put]
func (h *AdminHandler) AssignRole(c *fiber.Ctx) error {
	var in dto.AssignRoleRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.UserID == "" || in.NewRole == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "userId y newRole son requeridos"})
	}
	out, err := h.uc.AssignRole(c.Context(), GetEmail(c), in.UserID, in.NewRole)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidRole) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
				Code:     "INVALID_ROLE",
				Message:  "Invalid role specified",
				Required: rbac.ValidRoles(),
				Current:  in.NewRole,
			})
		}
		if errors.Is(err, domain.ErrUserNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "USER_NOT_FOUND", Message: "User not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// Search godoc
// @Summary      Buscar usuarios activos por nombre, email, depto. o carné
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Param        query  path  string  true  "texto de búsqueda"
// @Success      200    {object}  dto.SearchUsersResponse
// @Failure      400    {object}  dto.ErrorResponse
// @Router       /api/users/admin/search/{query} [get]
func (h *AdminHandler) Search(c *fiber.Ctx) error {
	query := c.Params("query")
	if query == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "query es requerido"})
	}
	out, err := h.uc.SearchUsers(c.Context(), query)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// ExportRoster godoc
// @Summary      Exportar la nómina de miembros en PDF
// @Tags         admin
// @Produce      application/pdf
// @Security     BearerAuth
// @Success      200  {file}    binary
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /api/users/admin/export [get]
func (h *AdminHandler) ExportRoster(c *fiber.Ctx) error {
	pdfBytes, err := h.uc.ExportRoster(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	filename := "nomina-" + time.Now().Format("20060102") + ".pdf"
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Send(pdfBytes)
}
