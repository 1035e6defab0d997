package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/proveedores-api/internal/application/dto"
	"github.com/tu-usuario/proveedores-api/pkg/validation"
)

// Helpers de la envoltura uniforme {status, message, data}. Todo éxito y
// todo fallo de la API pasa por aquí.

func respondOK(c *fiber.Ctx, status int, message string, data interface{}) error {
	return c.Status(status).JSON(dto.APIResponse{Status: true, Message: message, Data: data})
}

func respondError(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(dto.APIResponse{Status: false, Message: message, Data: nil})
}

// respondValidation responde 422 con los errores por campo; message lleva el
// primer mensaje del primer campo que falló (lo que muestra el frontend).
func respondValidation(c *fiber.Ctx, errs validation.Errors) error {
	return c.Status(fiber.StatusUnprocessableEntity).JSON(dto.APIResponse{
		Status:  false,
		Message: errs.First(),
		Data:    nil,
		Errors:  errs.Map(),
	})
}
