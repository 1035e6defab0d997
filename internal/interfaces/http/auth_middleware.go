package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/proveedores-api/internal/application/auth"
)

// Locals keys que deja el middleware de auth en el contexto de Fiber.
const (
	LocalUserID  = "user_id"
	LocalTokenID = "token_id"
)

// AuthMiddleware valida el Bearer Token opaco contra la base de datos y deja
// en c.Locals el usuario y el token autenticados. Token ausente, malformado,
// revocado o vencido responde 401 con la envoltura uniforme.
func AuthMiddleware(uc *auth.AuthUseCase) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return respondError(c, fiber.StatusUnauthorized, "Authorization header requerido.")
		}
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			return respondError(c, fiber.StatusUnauthorized, "Formato esperado: Bearer <token>.")
		}
		plain := strings.TrimSpace(parts[1])
		if plain == "" {
			return respondError(c, fiber.StatusUnauthorized, "Token vacío.")
		}
		user, token, err := uc.Authenticate(plain)
		if err != nil {
			return respondError(c, fiber.StatusUnauthorized, "Token inválido o expirado.")
		}
		c.Locals(LocalUserID, user.ID)
		c.Locals(LocalTokenID, token.ID)
		return c.Next()
	}
}

// GetUserID devuelve el id del usuario autenticado (después del middleware).
func GetUserID(c *fiber.Ctx) int64 {
	v, _ := c.Locals(LocalUserID).(int64)
	return v
}

// GetTokenID devuelve el id del token presentado (después del middleware).
func GetTokenID(c *fiber.Ctx) int64 {
	v, _ := c.Locals(LocalTokenID).(int64)
	return v
}
