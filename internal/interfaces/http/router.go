package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/proveedores-api/internal/application/auth"
	"github.com/tu-usuario/proveedores-api/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC     *auth.AuthUseCase
	ProviderUC *usecase.ProviderUseCase
	ContactUC  *usecase.ContactUseCase
}

// Router registra las rutas de la API. Solo el login es público; todo lo
// demás exige Bearer Token.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	authHandler := NewAuthHandler(deps.AuthUC)
	api.Post("/auth/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.AuthUC))

	protected.Get("/auth/me", authHandler.Me)
	protected.Post("/auth/logout", authHandler.Logout)

	// Proveedores
	providers := protected.Group("/providers")
	providerHandler := NewProviderHandler(deps.ProviderUC)
	providers.Get("/", providerHandler.List)
	providers.Post("/", providerHandler.Create)
	providers.Get("/:id", providerHandler.GetByID)
	providers.Put("/:id", providerHandler.Update)
	providers.Patch("/:id", providerHandler.Update)
	providers.Delete("/:id", providerHandler.Delete)

	// Contactos: colección anidada bajo el proveedor, items planos (shallow)
	contactHandler := NewContactHandler(deps.ContactUC)
	providers.Get("/:id/contacts", contactHandler.ListByProvider)
	providers.Post("/:id/contacts", contactHandler.Create)

	contacts := protected.Group("/contacts")
	contacts.Get("/:id", contactHandler.GetByID)
	contacts.Put("/:id", contactHandler.Update)
	contacts.Patch("/:id", contactHandler.Update)
	contacts.Delete("/:id", contactHandler.Delete)
}
