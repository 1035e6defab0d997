package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/tu-usuario/proveedores-api/internal/domain"
	"github.com/tu-usuario/proveedores-api/internal/domain/entity"
	"github.com/tu-usuario/proveedores-api/internal/domain/repository"
)

var _ repository.AuthTokenRepository = (*AuthTokenRepo)(nil)

// AuthTokenRepo implementación del puerto AuthTokenRepository sobre PostgreSQL.
type AuthTokenRepo struct {
	pool *pgxpool.Pool
}

// NewAuthTokenRepository construye el adaptador de persistencia para tokens.
func NewAuthTokenRepository(pool *pgxpool.Pool) *AuthTokenRepo {
	return &AuthTokenRepo{pool: pool}
}

// Create persiste un nuevo token y asigna el id generado (parte pública del
// token en texto plano).
func (r *AuthTokenRepo) Create(token *entity.AuthToken) error {
	query := `
		INSERT INTO auth_tokens (user_id, token_hash, name, expires_at, created_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id`
	err := r.pool.QueryRow(context.Background(), query,
		token.UserID, token.TokenHash, token.Name, token.ExpiresAt, token.CreatedAt,
	).Scan(&token.ID)
	if err != nil {
		return fmt.Errorf("insert auth token: %w", err)
	}
	return nil
}

// GetByID obtiene un token por id. Devuelve (nil, nil) si fue revocado o nunca existió.
func (r *AuthTokenRepo) GetByID(id int64) (*entity.AuthToken, error) {
	query := `SELECT id, user_id, token_hash, name, expires_at, created_at FROM auth_tokens WHERE id = $1`
	var t entity.AuthToken
	err := r.pool.QueryRow(context.Background(), query, id).Scan(
		&t.ID, &t.UserID, &t.TokenHash, &t.Name, &t.ExpiresAt, &t.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get auth token: %w", err)
	}
	return &t, nil
}

// Delete revoca exactamente un token. Devuelve domain.ErrNotFound si ya no existe.
func (r *AuthTokenRepo) Delete(id int64) error {
	tag, err := r.pool.Exec(context.Background(), `DELETE FROM auth_tokens WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete auth token: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// DeleteExpired elimina los tokens vencidos (barrido al arranque).
func (r *AuthTokenRepo) DeleteExpired() (int64, error) {
	tag, err := r.pool.Exec(context.Background(),
		`DELETE FROM auth_tokens WHERE expires_at IS NOT NULL AND expires_at < NOW()`)
	if err != nil {
		return 0, fmt.Errorf("delete expired tokens: %w", err)
	}
	return tag.RowsAffected(), nil
}
