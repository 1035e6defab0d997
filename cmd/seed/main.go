package main

import (
	"context"
	"os"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/tu-usuario/proveedores-api/internal/domain/entity"
	"github.com/tu-usuario/proveedores-api/internal/infrastructure/postgres"
	"github.com/tu-usuario/proveedores-api/pkg/config"
	"github.com/tu-usuario/proveedores-api/pkg/logger"
)

// Crea el usuario administrador inicial. La API no expone registro, así que
// este seed es la única vía de alta de usuarios.
//
//	SEED_ADMIN_NAME     (default "Admin")
//	SEED_ADMIN_EMAIL    (default "admin@demo.com")
//	SEED_ADMIN_PASSWORD (default "password")
func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{Env: cfg.App.Env, Level: "info"})

	if err := postgres.RunMigrations(cfg.DB.ConnectionString(), cfg.DB.MigrationsDir); err != nil {
		log.Fatal().Err(err).Msg("migraciones")
	}

	pool, err := postgres.NewPool(context.Background(), cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	name := envOr("SEED_ADMIN_NAME", "Admin")
	email := envOr("SEED_ADMIN_EMAIL", "admin@demo.com")
	password := envOr("SEED_ADMIN_PASSWORD", "password")

	userRepo := postgres.NewUserRepository(pool)

	existing, err := userRepo.GetByEmail(email)
	if err != nil {
		log.Fatal().Err(err).Msg("consultar usuario")
	}
	if existing != nil {
		log.Info().Str("email", email).Msg("el usuario ya existe, nada que hacer")
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.Fatal().Err(err).Msg("hash de password")
	}

	now := time.Now()
	user := &entity.User{
		Name:         name,
		Email:        email,
		PasswordHash: string(hash),
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := userRepo.Create(user); err != nil {
		log.Fatal().Err(err).Msg("crear usuario")
	}

	log.Info().Int64("id", user.ID).Str("email", email).Msg("usuario administrador creado")
}

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
