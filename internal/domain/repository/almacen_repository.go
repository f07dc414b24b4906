package repository

import "github.com/smartflow/smartflow-api/internal/domain/entity"

// AlmacenRepository define el puerto de persistencia para Almacen (DIP).
type AlmacenRepository interface {
	Create(almacen *entity.Almacen) error
	GetByCodigo(codigo string) (*entity.Almacen, error)
	List(limit, offset int) ([]*entity.Almacen, error)
}
