package postgres

import (
	"context"
	"fmt"

	"github.com/smartflow/smartflow-api/internal/domain/repository"
)

var _ repository.CounterRepository = (*CounterRepo)(nil)

// CounterRepo generador de secuencias por clave sobre PostgreSQL.
type CounterRepo struct {
	q Querier
}

// NewCounterRepository construye el adaptador. Pasar pool o tx (Querier).
func NewCounterRepository(q Querier) *CounterRepo {
	return &CounterRepo{q: q}
}

// Next incrementa la secuencia de la clave de forma atómica y devuelve el
// nuevo valor. La clave inexistente se crea en 1. Un solo statement: dos
// llamadas concurrentes nunca observan el mismo valor y el consumo persiste
// aunque la operación que lo pidió falle después.
func (r *CounterRepo) Next(clave string) (int64, error) {
	query := `
		INSERT INTO counters (clave, seq) VALUES ($1, 1)
		ON CONFLICT (clave) DO UPDATE SET seq = counters.seq + 1
		RETURNING seq`
	var seq int64
	if err := r.q.QueryRow(context.Background(), query, clave).Scan(&seq); err != nil {
		return 0, fmt.Errorf("next counter %s: %w", clave, err)
	}
	return seq, nil
}
