package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/proveedores-api/internal/application/auth"
	"github.com/tu-usuario/proveedores-api/internal/application/dto"
	"github.com/tu-usuario/proveedores-api/internal/domain"
	"github.com/tu-usuario/proveedores-api/pkg/validation"
)

// AuthHandler maneja login, me y logout. No hay registro por HTTP: los
// usuarios se crean con cmd/seed.
type AuthHandler struct {
	uc *auth.AuthUseCase
}

// NewAuthHandler construye el handler de auth.
func NewAuthHandler(uc *auth.AuthUseCase) *AuthHandler {
	return &AuthHandler{uc: uc}
}

// Login godoc
// @Summary      Iniciar sesión
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.LoginRequest  true  "email, password"
// @Success      200   {object}  dto.APIResponse
// @Failure      401   {object}  dto.APIResponse
// @Router       /api/auth/login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var in dto.LoginRequest
	if err := c.BodyParser(&in); err != nil {
		return respondError(c, fiber.StatusBadRequest, "Cuerpo inválido.")
	}
	out, err := h.uc.Login(in)
	if err != nil {
		var verrs validation.Errors
		if errors.As(err, &verrs) {
			return respondValidation(c, verrs)
		}
		if errors.Is(err, domain.ErrInvalidCredentials) {
			return respondError(c, fiber.StatusUnauthorized, "Credenciales inválidas.")
		}
		return respondError(c, fiber.StatusInternalServerError, err.Error())
	}
	return respondOK(c, fiber.StatusOK, "Login exitoso.", out)
}

// Me godoc
// @Summary      Usuario autenticado
// @Tags         auth
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.APIResponse
// @Failure      401  {object}  dto.APIResponse
// @Router       /api/auth/me [get]
func (h *AuthHandler) Me(c *fiber.Ctx) error {
	out, err := h.uc.Me(GetUserID(c))
	if err != nil {
		if errors.Is(err, domain.ErrUnauthorized) {
			return respondError(c, fiber.StatusUnauthorized, "No autorizado.")
		}
		return respondError(c, fiber.StatusInternalServerError, err.Error())
	}
	return respondOK(c, fiber.StatusOK, "Usuario autenticado.", out)
}

// Logout godoc
// @Summary      Cerrar sesión (revoca el token presentado)
// @Tags         auth
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.APIResponse
// @Failure      401  {object}  dto.APIResponse
// @Router       /api/auth/logout [post]
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	if err := h.uc.Logout(GetTokenID(c)); err != nil {
		return respondError(c, fiber.StatusInternalServerError, err.Error())
	}
	return respondOK(c, fiber.StatusOK, "Sesión cerrada.", nil)
}
