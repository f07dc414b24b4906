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

// ProveedorUseCase gestiona el catálogo de proveedores.
type ProveedorUseCase struct {
	proveedores repository.ProveedorRepository
}

// NewProveedorUseCase construye el caso de uso.
func NewProveedorUseCase(proveedores repository.ProveedorRepository) *ProveedorUseCase {
	return &ProveedorUseCase{proveedores: proveedores}
}

// Crear registra un proveedor activo.
func (uc *ProveedorUseCase) Crear(ctx context.Context, in dto.CrearProveedorRequest) (*entity.Proveedor, error) {
	if in.Nombre == "" {
		return nil, domain.ErrInvalidInput
	}
	proveedor := &entity.Proveedor{
		ID:            uuid.New().String(),
		Nombre:        in.Nombre,
		Contacto:      in.Contacto,
		Telefono:      in.Telefono,
		Direccion:     in.Direccion,
		Correo:        in.Correo,
		Estado:        true,
		FechaCreacion: time.Now(),
	}
	if err := uc.proveedores.Create(proveedor); err != nil {
		return nil, err
	}
	return proveedor, nil
}

// GetByID busca un proveedor por su ID.
func (uc *ProveedorUseCase) GetByID(ctx context.Context, id string) (*entity.Proveedor, error) {
	proveedor, err := uc.proveedores.GetByID(id)
	if err != nil {
		return nil, err
	}
	if proveedor == nil {
		return nil, domain.ErrNotFound
	}
	return proveedor, nil
}

// List lista proveedores con paginación.
func (uc *ProveedorUseCase) List(ctx context.Context, limit, offset int) ([]*entity.Proveedor, error) {
	return uc.proveedores.List(limit, offset)
}
