package conversion

import (
	"context"

	"github.com/smartflow/smartflow-api/internal/domain/repository"
)

// TxRunner ejecuta fn dentro de una transacción con los repositorios de
// documentos atados a ella. Commit si fn retorna nil, Rollback si no.
// Los efectos multi-documento de la conversión (marcar orden + insertar
// entrada; crear traspaso + retro-enlazar entrada) viven dentro de una
// transacción para no dejar estados a medio convertir.
type TxRunner interface {
	RunConversion(ctx context.Context, fn func(
		ordenes repository.OrdenCompraRepository,
		entradas repository.EntradaRepository,
		traspasos repository.TraspasoRepository,
	) error) error
}
