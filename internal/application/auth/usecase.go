package auth

import (
	"context"

	"golang.org/x/crypto/bcrypt"

	"github.com/smartflow/smartflow-api/internal/application/dto"
	"github.com/smartflow/smartflow-api/internal/domain"
	"github.com/smartflow/smartflow-api/internal/domain/repository"
	"github.com/smartflow/smartflow-api/pkg/jwt"
)

// UseCase autentica usuarios y emite tokens JWT.
type UseCase struct {
	users      repository.UserRepository
	secret     string
	issuer     string
	expMinutes int
}

// NewUseCase construye el caso de uso.
func NewUseCase(users repository.UserRepository, secret, issuer string, expMinutes int) *UseCase {
	return &UseCase{users: users, secret: secret, issuer: issuer, expMinutes: expMinutes}
}

// Login verifica credenciales y devuelve el token con los datos del usuario.
// Credenciales inválidas y cuentas desactivadas responden igual: Unauthorized,
// sin distinguir el motivo.
func (uc *UseCase) Login(ctx context.Context, in dto.LoginRequest) (*dto.LoginResponse, error) {
	if in.Email == "" || in.Password == "" {
		return nil, domain.ErrInvalidInput
	}

	user, err := uc.users.GetByEmail(in.Email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUnauthorized
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}
	if !user.Estado {
		return nil, domain.ErrUnauthorized
	}

	token, err := jwt.Generate(uc.secret, user.ID, user.Rol, uc.issuer, uc.expMinutes)
	if err != nil {
		return nil, err
	}

	return &dto.LoginResponse{Token: token, User: dto.FromUser(user)}, nil
}
