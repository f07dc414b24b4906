package ordencompra

import (
	"context"

	"github.com/smartflow/smartflow-api/internal/domain/repository"
)

// TxRunner ejecuta fn dentro de una transacción. Validar una orden marca el
// estado y crea la entrada en la misma transacción: una falla intermedia no
// deja la orden Completada sin entrada.
type TxRunner interface {
	RunConversion(ctx context.Context, fn func(
		ordenes repository.OrdenCompraRepository,
		entradas repository.EntradaRepository,
		traspasos repository.TraspasoRepository,
	) error) error
}
