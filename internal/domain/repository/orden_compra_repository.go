package repository

import "github.com/smartflow/smartflow-api/internal/domain/entity"

// OrdenCompraRepository define el puerto de persistencia para OrdenCompra (DIP).
type OrdenCompraRepository interface {
	Create(orden *entity.OrdenCompra) error
	GetByID(id string) (*entity.OrdenCompra, error)
	GetByNumero(numero string) (*entity.OrdenCompra, error)
	UpdateEstado(id, estado, observaciones string) error
	// ExistsConParametros busca una orden ORD-### con el mismo perfume y la misma
	// cantidad. Es la comprobación heurística de duplicado al crear orden desde
	// entrada; no enlaza por identificador estable.
	ExistsConParametros(perfumeID string, cantidad int64) (bool, error)
	List(limit, offset int) ([]*entity.OrdenCompra, error)
}
