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

// PerfumeUseCase gestiona el catálogo de perfumes.
type PerfumeUseCase struct {
	perfumes repository.PerfumeRepository
}

// NewPerfumeUseCase construye el caso de uso.
func NewPerfumeUseCase(perfumes repository.PerfumeRepository) *PerfumeUseCase {
	return &PerfumeUseCase{perfumes: perfumes}
}

// Crear registra un perfume en el catálogo.
func (uc *PerfumeUseCase) Crear(ctx context.Context, in dto.CrearPerfumeRequest) (*entity.Perfume, error) {
	if in.NamePer == "" {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	perfume := &entity.Perfume{
		ID:             uuid.New().String(),
		NamePer:        in.NamePer,
		DescripcionPer: in.DescripcionPer,
		Marca:          in.Marca,
		PrecioUnitario: in.PrecioUnitario,
		PrecioVentaPer: in.PrecioVentaPer,
		StockMinimoPer: in.StockMinimoPer,
		StockActual:    in.StockActual,
		UbicacionPer:   in.UbicacionPer,
		SKU:            in.SKU,
		CategoriaPer:   in.CategoriaPer,
		Estado:         "activo",
		AlmacenID:      in.AlmacenID,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if err := uc.perfumes.Create(perfume); err != nil {
		return nil, err
	}
	return perfume, nil
}

// GetByID busca un perfume por su ID.
func (uc *PerfumeUseCase) GetByID(ctx context.Context, id string) (*entity.Perfume, error) {
	perfume, err := uc.perfumes.GetByID(id)
	if err != nil {
		return nil, err
	}
	if perfume == nil {
		return nil, domain.ErrNotFound
	}
	return perfume, nil
}

// List lista perfumes con paginación.
func (uc *PerfumeUseCase) List(ctx context.Context, limit, offset int) ([]*entity.Perfume, error) {
	return uc.perfumes.List(limit, offset)
}
