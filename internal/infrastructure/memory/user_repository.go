package memory

import (
	"sync"

	"github.com/tu-usuario/proveedores-api/internal/domain"
	"github.com/tu-usuario/proveedores-api/internal/domain/entity"
	"github.com/tu-usuario/proveedores-api/internal/domain/repository"
)

var _ repository.UserRepository = (*UserRepo)(nil)

// UserRepo implementación en memoria de UserRepository.
type UserRepo struct {
	mu    sync.RWMutex
	seq   int64
	users map[int64]entity.User
}

// NewUserRepository construye el repositorio en memoria.
func NewUserRepository() *UserRepo {
	return &UserRepo{users: make(map[int64]entity.User)}
}

// Create agrega un usuario; email duplicado devuelve domain.ErrDuplicate.
func (r *UserRepo) Create(user *entity.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Email == user.Email {
			return domain.ErrDuplicate
		}
	}
	r.seq++
	user.ID = r.seq
	r.users[user.ID] = *user
	return nil
}

// GetByID devuelve el usuario o (nil, nil) si no existe.
func (r *UserRepo) GetByID(id int64) (*entity.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	u, ok := r.users[id]
	if !ok {
		return nil, nil
	}
	return &u, nil
}

// GetByEmail devuelve el usuario con ese email exacto o (nil, nil).
func (r *UserRepo) GetByEmail(email string) (*entity.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, u := range r.users {
		if u.Email == email {
			u := u
			return &u, nil
		}
	}
	return nil, nil
}
