package auth

import (
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/tu-usuario/proveedores-api/internal/application/dto"
	"github.com/tu-usuario/proveedores-api/internal/domain"
	"github.com/tu-usuario/proveedores-api/internal/domain/entity"
	"github.com/tu-usuario/proveedores-api/internal/domain/repository"
	"github.com/tu-usuario/proveedores-api/pkg/token"
	"github.com/tu-usuario/proveedores-api/pkg/validation"
)

// TokenConfig parámetros de emisión de tokens.
// ExpMinutes = 0 emite tokens sin vencimiento.
type TokenConfig struct {
	ExpMinutes int
	Name       string
}

// AuthUseCase casos de uso de autenticación: login, me, logout y la
// validación de tokens que usa el middleware.
type AuthUseCase struct {
	userRepo  repository.UserRepository
	tokenRepo repository.AuthTokenRepository
	tokenCfg  TokenConfig
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(userRepo repository.UserRepository, tokenRepo repository.AuthTokenRepository, tokenCfg TokenConfig) *AuthUseCase {
	return &AuthUseCase{userRepo: userRepo, tokenRepo: tokenRepo, tokenCfg: tokenCfg}
}

// Login verifica email/password y emite un token bearer opaco nuevo.
// Usuario inexistente y password incorrecto devuelven el mismo
// domain.ErrInvalidCredentials para no filtrar qué emails existen.
func (uc *AuthUseCase) Login(in dto.LoginRequest) (*dto.LoginResponse, error) {
	in.Email = strings.TrimSpace(in.Email)
	if errs := validation.Struct(in); errs != nil {
		return nil, errs
	}
	user, err := uc.userRepo.GetByEmail(in.Email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrInvalidCredentials
	}

	secret, hash, err := token.NewSecret()
	if err != nil {
		return nil, err
	}
	now := time.Now()
	t := &entity.AuthToken{
		UserID:    user.ID,
		TokenHash: hash,
		Name:      uc.tokenCfg.Name,
		CreatedAt: now,
	}
	if uc.tokenCfg.ExpMinutes > 0 {
		exp := now.Add(time.Duration(uc.tokenCfg.ExpMinutes) * time.Minute)
		t.ExpiresAt = &exp
	}
	if err := uc.tokenRepo.Create(t); err != nil {
		return nil, err
	}
	return &dto.LoginResponse{
		Token: token.Plain(t.ID, secret),
		User:  *toUserResponse(user),
	}, nil
}

// Authenticate valida un token en texto plano y devuelve el usuario y el
// token asociados. Cualquier token malformado, desconocido, revocado o
// vencido devuelve domain.ErrUnauthorized.
func (uc *AuthUseCase) Authenticate(plain string) (*entity.User, *entity.AuthToken, error) {
	id, secret, ok := token.Split(plain)
	if !ok {
		return nil, nil, domain.ErrUnauthorized
	}
	t, err := uc.tokenRepo.GetByID(id)
	if err != nil {
		return nil, nil, err
	}
	if t == nil || !token.Matches(secret, t.TokenHash) || t.Expired(time.Now()) {
		return nil, nil, domain.ErrUnauthorized
	}
	user, err := uc.userRepo.GetByID(t.UserID)
	if err != nil {
		return nil, nil, err
	}
	if user == nil {
		return nil, nil, domain.ErrUnauthorized
	}
	return user, t, nil
}

// Me devuelve el usuario ligado a un token ya validado por el middleware.
func (uc *AuthUseCase) Me(userID int64) (*dto.UserResponse, error) {
	user, err := uc.userRepo.GetByID(userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUnauthorized
	}
	return toUserResponse(user), nil
}

// Logout revoca exactamente el token presentado (no todos los del usuario).
// Revocar un token ya revocado no es un error aquí: la siguiente petición
// con ese token fallará en el middleware.
func (uc *AuthUseCase) Logout(tokenID int64) error {
	err := uc.tokenRepo.Delete(tokenID)
	if err == domain.ErrNotFound {
		return nil
	}
	return err
}

func toUserResponse(u *entity.User) *dto.UserResponse {
	if u == nil {
		return nil
	}
	return &dto.UserResponse{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}
