package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"github.com/justdc/club-api/internal/application/dto"
	"github.com/justdc/club-api/internal/application/usecase"
	"github.com/justdc/club-api/internal/domain/entity"
)

// Locals keys que dejan los gates de autorización.
const (
	LocalRole        = "role"
	LocalPermissions = "permissions"
	LocalUser        = "currentUser"
)

// RequireRole autoriza por pertenencia del rol persistido al conjunto
// permitido. A diferencia del gate de permisos, aquí la ausencia del registro
// es 404: quien exige un rol concreto asume que el usuario ya fue dado de
// alta, y crearlo con el rol por defecto solo garantizaría el rechazo.
func RequireRole(users usecase.UserProvisioner, allowedRoles ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		email := GetEmail(c)
		user, err := users.ResolveByEmail(c.Context(), email)
		if err != nil {
			log.Error().Err(err).Str("email", email).Msg("gate de rol: resolver usuario")
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL_ERROR", Message: "Error verifying user role"})
		}
		if user == nil {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "USER_NOT_FOUND", Message: "User not found"})
		}
		if !user.IsActive {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "ACCOUNT_INACTIVE", Message: "Account is inactive"})
		}
		if !roleAllowed(user.Role, allowedRoles) {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{
				Code:     "INSUFFICIENT_ROLE",
				Message:  "Access denied. Insufficient role.",
				Required: allowedRoles,
				Current:  user.Role,
			})
		}
		attachUser(c, user)
		return c.Next()
	}
}

// RequirePermission autoriza por posesión de un permiso concreto. Usa la misma
// resolución que los endpoints de perfil: si el registro no existe todavía se
// aprovisiona con el rol por defecto y el gate decide sobre ese registro, de
// modo que el primer contacto de un usuario válido nunca es 404.
func RequirePermission(users usecase.UserProvisioner, required string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		user, _, err := users.EnsureUser(c.Context(), claimFromLocals(c))
		if err != nil {
			log.Error().Err(err).Str("permission", required).Msg("gate de permiso: resolver usuario")
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL_ERROR", Message: "Error verifying permissions"})
		}
		if !user.IsActive {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "ACCOUNT_INACTIVE", Message: "Account is inactive"})
		}
		if !user.HasPermission(required) {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{
				Code:     "MISSING_PERMISSION",
				Message:  "Access denied. Missing permission.",
				Required: required,
				Current:  user.Permissions,
			})
		}
		attachUser(c, user)
		return c.Next()
	}
}

func roleAllowed(role string, allowed []string) bool {
	for _, r := range allowed {
		if r == role {
			return true
		}
	}
	return false
}

// attachUser deja rol, permisos y el registro completo en locals para que los
// handlers decidan políticas propias (p. ej. propiedad del recurso) sin
// releer la base.
func attachUser(c *fiber.Ctx, user *entity.User) {
	c.Locals(LocalRole, user.Role)
	c.Locals(LocalPermissions, user.Permissions)
	c.Locals(LocalUser, user)
}

// CurrentUser devuelve el usuario dejado por un gate, o nil si ninguno corrió.
func CurrentUser(c *fiber.Ctx) *entity.User {
	v := c.Locals(LocalUser)
	if v == nil {
		return nil
	}
	u, _ := v.(*entity.User)
	return u
}
