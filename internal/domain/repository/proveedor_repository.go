package repository

import "github.com/smartflow/smartflow-api/internal/domain/entity"

// ProveedorRepository define el puerto de persistencia para Proveedor (DIP).
type ProveedorRepository interface {
	Create(proveedor *entity.Proveedor) error
	GetByID(id string) (*entity.Proveedor, error)
	List(limit, offset int) ([]*entity.Proveedor, error)
}
