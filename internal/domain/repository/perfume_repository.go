package repository

import "github.com/smartflow/smartflow-api/internal/domain/entity"

// PerfumeRepository define el puerto de persistencia para Perfume (DIP).
// Las búsquedas por nombre usan la forma normalizada (ver domain/nombres).
type PerfumeRepository interface {
	Create(perfume *entity.Perfume) error
	GetByID(id string) (*entity.Perfume, error)
	GetByNombre(nombre string) (*entity.Perfume, error)
	// GetByNombreForUpdate bloquea la fila (SELECT FOR UPDATE) para validar
	// umbral y debitar stock en la misma transacción.
	GetByNombreForUpdate(nombre string) (*entity.Perfume, error)
	UpdateStock(id string, stockActual int64) error
	Update(perfume *entity.Perfume) error
	List(limit, offset int) ([]*entity.Perfume, error)
}
