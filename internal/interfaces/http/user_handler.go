package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/justdc/club-api/internal/application/dto"
	"github.com/justdc/club-api/internal/application/usecase"
)

// UserHandler maneja alta, perfil, permisos, estadísticas y directorio.
type UserHandler struct {
	users *usecase.UserUseCase
	stats *usecase.StatsUseCase
}

// NewUserHandler construye el handler de usuarios.
func NewUserHandler(users *usecase.UserUseCase, stats *usecase.StatsUseCase) *UserHandler {
	return &UserHandler{users: users, stats: stats}
}

// Signup godoc
// @Summary      Alta explícita de usuario (idempotente sobre el email)
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        body  body  dto.SignupRequest  true  "name, email"
// @Success      200   {object}  dto.SignupResponse
// @Success      201   {object}  dto.SignupResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/users [post]
func (h *UserHandler) Signup(c *fiber.Ctx) error {
	var in dto.SignupRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.Name == "" || in.Email == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "name y email son requeridos"})
	}
	out, created, err := h.users.Signup(c.Context(), in)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	if created {
		return c.Status(fiber.StatusCreated).JSON(out)
	}
	return c.JSON(out)
}

// GetProfile godoc
// @Summary      Perfil del usuario autenticado (se crea en el primer acceso)
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  dto.ProfileResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /api/users/profile [get]
func (h *UserHandler) GetProfile(c *fiber.Ctx) error {
	out, err := h.users.GetProfile(c.Context(), claimFromLocals(c))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// UpdateProfile godoc
// @Summary      Actualizar campos de perfil (role y permissions no se aceptan)
// @Tags         users
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body  dto.UpdateProfileRequest  true  "campos de perfil"
// @Success      200   {object}  dto.UpdateProfileResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/users/profile [put]
func (h *UserHandler) UpdateProfile(c *fiber.Ctx) error {
	var in dto.UpdateProfileRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.users.UpdateProfile(c.Context(), claimFromLocals(c), in)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// GetPermissions godoc
// @Summary      Rol y permisos efectivos del usuario autenticado
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  dto.PermissionsResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /api/users/permissions [get]
func (h *UserHandler) GetPermissions(c *fiber.Ctx) error {
	out, err := h.users.Permissions(c.Context(), claimFromLocals(c))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// GetStats godoc
// @Summary      Estadísticas del usuario (los admins reciben agregados)
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  dto.StatsResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /api/users/stats [get]
func (h *UserHandler) GetStats(c *fiber.Ctx) error {
	out, err := h.stats.GetStats(c.Context(), claimFromLocals(c))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// Members godoc
// @Summary      Directorio de miembros activos
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   dto.MemberSummary
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /api/users/members [get]
func (h *UserHandler) Members(c *fiber.Ctx) error {
	out, err := h.users.ListMembers(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}
