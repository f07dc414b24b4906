package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/smartflow/smartflow-api/internal/application/dto"
	"github.com/smartflow/smartflow-api/internal/domain"
	"github.com/smartflow/smartflow-api/internal/domain/entity"
	"github.com/smartflow/smartflow-api/internal/domain/repository"
)

// UserUseCase gestiona usuarios (operaciones de administración).
type UserUseCase struct {
	users repository.UserRepository
}

// NewUserUseCase construye el caso de uso.
func NewUserUseCase(users repository.UserRepository) *UserUseCase {
	return &UserUseCase{users: users}
}

func rolValido(rol string) bool {
	switch rol {
	case entity.RolAdmin, entity.RolEmpleado, entity.RolAuditor:
		return true
	}
	return false
}

// Crear da de alta un usuario con la contraseña hasheada.
func (uc *UserUseCase) Crear(ctx context.Context, in dto.CrearUserRequest) (*entity.User, error) {
	if in.Nombre == "" || in.Email == "" || in.Password == "" || !rolValido(in.Rol) {
		return nil, domain.ErrInvalidInput
	}
	existente, err := uc.users.GetByEmail(in.Email)
	if err != nil {
		return nil, err
	}
	if existente != nil {
		return nil, domain.ErrEmailAlreadyExists
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	user := &entity.User{
		ID:           uuid.New().String(),
		Nombre:       in.Nombre,
		Email:        in.Email,
		PasswordHash: string(hash),
		Rol:          in.Rol,
		Estado:       true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.users.Create(user); err != nil {
		return nil, err
	}
	return user, nil
}

// Actualizar aplica cambios parciales a un usuario.
func (uc *UserUseCase) Actualizar(ctx context.Context, id string, in dto.ActualizarUserRequest) (*entity.User, error) {
	user, err := uc.users.GetByID(id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}

	if in.Nombre != nil {
		user.Nombre = *in.Nombre
	}
	if in.Rol != nil {
		if !rolValido(*in.Rol) {
			return nil, domain.ErrInvalidInput
		}
		user.Rol = *in.Rol
	}
	if in.Estado != nil {
		user.Estado = *in.Estado
	}
	user.UpdatedAt = time.Now()

	if err := uc.users.Update(user); err != nil {
		return nil, err
	}
	return user, nil
}

// GetByID busca un usuario por su ID.
func (uc *UserUseCase) GetByID(ctx context.Context, id string) (*entity.User, error) {
	user, err := uc.users.GetByID(id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	return user, nil
}

// List lista usuarios con paginación.
func (uc *UserUseCase) List(ctx context.Context, limit, offset int) ([]*entity.User, error) {
	return uc.users.List(limit, offset)
}

// Delete elimina un usuario.
func (uc *UserUseCase) Delete(ctx context.Context, id string) error {
	user, err := uc.users.GetByID(id)
	if err != nil {
		return err
	}
	if user == nil {
		return domain.ErrUserNotFound
	}
	return uc.users.Delete(id)
}
