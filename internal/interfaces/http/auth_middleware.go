package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/justdc/club-api/internal/application/dto"
	"github.com/justdc/club-api/internal/domain/entity"
	"github.com/justdc/club-api/pkg/jwt"
)

// Locals keys para la identidad verificada en Fiber.
const (
	LocalUID   = "uid"
	LocalEmail = "email"
)

// AuthMiddleware valida el Bearer Token de sesión y deja uid y email en
// c.Locals. Toda falla de credencial (ausente, malformada, inválida o
// expirada) responde 403 — contrato visible heredado del frontend — y corta
// la petición antes de cualquier lógica de roles o permisos.
func AuthMiddleware(jwtSecret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "Access denied. No token provided."})
		}
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "formato: Bearer <token>"})
		}
		tokenString := strings.TrimSpace(parts[1])
		if tokenString == "" {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "token vacío"})
		}
		uid, email, err := jwt.Parse(jwtSecret, tokenString)
		if err != nil {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "token inválido o expirado"})
		}
		c.Locals(LocalUID, uid)
		c.Locals(LocalEmail, email)
		return c.Next()
	}
}

// GetUID devuelve el UID del contexto (después del middleware de auth).
func GetUID(c *fiber.Ctx) string {
	v := c.Locals(LocalUID)
	if v == nil {
		return ""
	}
	s, _ := v.(string)
	return s
}

// GetEmail devuelve el email verificado del contexto.
func GetEmail(c *fiber.Ctx) string {
	v := c.Locals(LocalEmail)
	if v == nil {
		return ""
	}
	s, _ := v.(string)
	return s
}

// claimFromLocals arma el claim de identidad mínimo para aprovisionamiento
// dentro de una petición ya autenticada (el nombre y la foto solo viajan en
// el ID token del login; aquí solo disponemos del email).
func claimFromLocals(c *fiber.Ctx) entity.IdentityClaim {
	return entity.IdentityClaim{Email: GetEmail(c)}
}
