package memory

import (
	"sync"
	"time"

	"github.com/tu-usuario/proveedores-api/internal/domain"
	"github.com/tu-usuario/proveedores-api/internal/domain/entity"
	"github.com/tu-usuario/proveedores-api/internal/domain/repository"
)

var _ repository.AuthTokenRepository = (*AuthTokenRepo)(nil)

// AuthTokenRepo implementación en memoria de AuthTokenRepository.
type AuthTokenRepo struct {
	mu     sync.RWMutex
	seq    int64
	tokens map[int64]entity.AuthToken
}

// NewAuthTokenRepository construye el repositorio en memoria.
func NewAuthTokenRepository() *AuthTokenRepo {
	return &AuthTokenRepo{tokens: make(map[int64]entity.AuthToken)}
}

// Create agrega un token asignando el siguiente id.
func (r *AuthTokenRepo) Create(token *entity.AuthToken) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.seq++
	token.ID = r.seq
	r.tokens[token.ID] = *token
	return nil
}

// GetByID devuelve el token o (nil, nil) si fue revocado o nunca existió.
func (r *AuthTokenRepo) GetByID(id int64) (*entity.AuthToken, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	t, ok := r.tokens[id]
	if !ok {
		return nil, nil
	}
	return &t, nil
}

// Delete revoca exactamente un token.
func (r *AuthTokenRepo) Delete(id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.tokens[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.tokens, id)
	return nil
}

// DeleteExpired elimina los tokens vencidos.
func (r *AuthTokenRepo) DeleteExpired() (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	now := time.Now()
	var n int64
	for id, t := range r.tokens {
		if t.ExpiresAt != nil && now.After(*t.ExpiresAt) {
			delete(r.tokens, id)
			n++
		}
	}
	return n, nil
}
