package repository

import "github.com/smartflow/smartflow-api/internal/domain/entity"

// TraspasoRepository define el puerto de persistencia para Traspaso (DIP).
type TraspasoRepository interface {
	Create(traspaso *entity.Traspaso) error
	GetByNumero(numero string) (*entity.Traspaso, error)
	List(limit, offset int) ([]*entity.Traspaso, error)
}
