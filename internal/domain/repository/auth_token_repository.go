package repository

import "github.com/tu-usuario/proveedores-api/internal/domain/entity"

// AuthTokenRepository define el puerto de persistencia para los tokens
// bearer opacos. Delete revoca exactamente un token; DeleteExpired limpia
// los vencidos (barrido al arranque).
type AuthTokenRepository interface {
	Create(token *entity.AuthToken) error
	GetByID(id int64) (*entity.AuthToken, error)
	Delete(id int64) error
	DeleteExpired() (int64, error)
}
