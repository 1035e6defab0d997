package entity

import "time"

// AuthToken es un token bearer opaco emitido en el login. El cliente recibe
// "<id>|<secreto>" y la base de datos guarda solo el SHA-256 del secreto,
// de modo que revocar la fila revoca exactamente ese token.
type AuthToken struct {
	ID        int64
	UserID    int64
	TokenHash string // hex(sha256(secreto))
	Name      string // etiqueta del token, ej. "auth"
	ExpiresAt *time.Time
	CreatedAt time.Time
}

// Expired indica si el token ya venció. Un ExpiresAt nulo nunca expira.
func (t *AuthToken) Expired(now time.Time) bool {
	return t.ExpiresAt != nil && now.After(*t.ExpiresAt)
}
