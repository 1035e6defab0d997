package entity

import "time"

// User representa un usuario administrativo del sistema. Se crea vía seed
// (no hay registro por HTTP); solo se lee durante el login y en /auth/me.
type User struct {
	ID           int64
	Name         string
	Email        string
	PasswordHash string // hash bcrypt, nunca plano en dominio después de persistir
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
