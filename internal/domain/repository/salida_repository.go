package repository

import (
	"time"

	"github.com/smartflow/smartflow-api/internal/domain/entity"
)

// SalidaRepository define el puerto de persistencia para Salida (DIP).
type SalidaRepository interface {
	Create(salida *entity.Salida) error
	ListPorRango(desde, hasta time.Time) ([]*entity.Salida, error)
	List(limit, offset int) ([]*entity.Salida, error)
}
