package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/smartflow/smartflow-api/internal/application/dto"
	"github.com/smartflow/smartflow-api/internal/domain"
	"github.com/smartflow/smartflow-api/internal/domain/entity"
	"github.com/smartflow/smartflow-api/internal/domain/repository"
)

// AlmacenUseCase gestiona el catálogo de almacenes.
type AlmacenUseCase struct {
	almacenes repository.AlmacenRepository
}

// NewAlmacenUseCase construye el caso de uso.
func NewAlmacenUseCase(almacenes repository.AlmacenRepository) *AlmacenUseCase {
	return &AlmacenUseCase{almacenes: almacenes}
}

// Crear registra un almacén. El código es único: un código repetido es Conflict.
func (uc *AlmacenUseCase) Crear(ctx context.Context, in dto.CrearAlmacenRequest) (*entity.Almacen, error) {
	if in.Nombre == "" || in.Codigo == "" {
		return nil, domain.ErrInvalidInput
	}
	existente, err := uc.almacenes.GetByCodigo(in.Codigo)
	if err != nil {
		return nil, err
	}
	if existente != nil {
		return nil, domain.ErrConflict
	}
	almacen := &entity.Almacen{
		ID:        uuid.New().String(),
		Nombre:    in.Nombre,
		Direccion: in.Direccion,
		Telefono:  in.Telefono,
		Codigo:    in.Codigo,
		UpdatedAt: time.Now(),
	}
	if err := uc.almacenes.Create(almacen); err != nil {
		return nil, err
	}
	return almacen, nil
}

// GetByCodigo busca un almacén por su código.
func (uc *AlmacenUseCase) GetByCodigo(ctx context.Context, codigo string) (*entity.Almacen, error) {
	almacen, err := uc.almacenes.GetByCodigo(codigo)
	if err != nil {
		return nil, err
	}
	if almacen == nil {
		return nil, domain.ErrNotFound
	}
	return almacen, nil
}

// List lista almacenes con paginación.
func (uc *AlmacenUseCase) List(ctx context.Context, limit, offset int) ([]*entity.Almacen, error) {
	return uc.almacenes.List(limit, offset)
}
