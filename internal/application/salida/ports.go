package salida

import (
	"context"

	"github.com/smartflow/smartflow-api/internal/domain/repository"
)

// TxRunner ejecuta fn dentro de una transacción. La salida bloquea la fila del
// perfume, valida el umbral del 15% y debita el stock en la misma transacción:
// dos salidas concurrentes sobre el mismo perfume se serializan.
type TxRunner interface {
	RunSalida(ctx context.Context, fn func(
		salidas repository.SalidaRepository,
		perfumes repository.PerfumeRepository,
	) error) error
}
