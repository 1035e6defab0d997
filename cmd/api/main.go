package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"

	"github.com/tu-usuario/proveedores-api/internal/application/auth"
	"github.com/tu-usuario/proveedores-api/internal/application/usecase"
	"github.com/tu-usuario/proveedores-api/internal/infrastructure/postgres"
	httpRouter "github.com/tu-usuario/proveedores-api/internal/interfaces/http"
	"github.com/tu-usuario/proveedores-api/pkg/config"
	"github.com/tu-usuario/proveedores-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	if err := postgres.RunMigrations(cfg.DB.ConnectionString(), cfg.DB.MigrationsDir); err != nil {
		log.Fatal().Err(err).Msg("migraciones")
	}

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	userRepo := postgres.NewUserRepository(pool)
	tokenRepo := postgres.NewAuthTokenRepository(pool)
	providerRepo := postgres.NewProviderRepository(pool)
	contactRepo := postgres.NewProviderContactRepository(pool)

	// Barrido de tokens vencidos al arrancar
	if n, err := tokenRepo.DeleteExpired(); err != nil {
		log.Warn().Err(err).Msg("barrido de tokens vencidos")
	} else if n > 0 {
		log.Info().Int64("eliminados", n).Msg("tokens vencidos eliminados")
	}

	authUC := auth.NewAuthUseCase(userRepo, tokenRepo, auth.TokenConfig{
		ExpMinutes: cfg.Token.ExpirationMinutes,
		Name:       cfg.Token.Name,
	})
	providerUC := usecase.NewProviderUseCase(providerRepo, contactRepo)
	contactUC := usecase.NewContactUseCase(contactRepo, providerRepo)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(requestid.New(requestid.Config{
		Generator: func() string { return uuid.NewString() },
	}))
	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.HTTP.CORSOrigins,
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	}))

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Proveedores API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:     authUC,
		ProviderUC: providerUC,
		ContactUC:  contactUC,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
