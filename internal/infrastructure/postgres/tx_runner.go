package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/smartflow/smartflow-api/internal/application/conversion"
	"github.com/smartflow/smartflow-api/internal/application/ordencompra"
	"github.com/smartflow/smartflow-api/internal/application/salida"
	"github.com/smartflow/smartflow-api/internal/domain/repository"
)

// Ensure TxRunner implements los puertos transaccionales de los casos de uso.
var _ conversion.TxRunner = (*TxRunner)(nil)
var _ ordencompra.TxRunner = (*TxRunner)(nil)
var _ salida.TxRunner = (*TxRunner)(nil)

// TxRunner ejecuta callbacks dentro de una transacción PostgreSQL.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner construye el runner con el pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// RunConversion inicia una transacción con los repos de documentos atados a
// ella y hace Commit o Rollback según el resultado de fn.
func (r *TxRunner) RunConversion(ctx context.Context, fn func(
	ordenes repository.OrdenCompraRepository,
	entradas repository.EntradaRepository,
	traspasos repository.TraspasoRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	ordenRepo := NewOrdenCompraRepository(tx)
	entradaRepo := NewEntradaRepository(tx)
	traspasoRepo := NewTraspasoRepository(tx)

	if err := fn(ordenRepo, entradaRepo, traspasoRepo); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// RunSalida inicia una transacción con repos de salidas y perfumes (para el
// débito de stock con bloqueo de fila).
func (r *TxRunner) RunSalida(ctx context.Context, fn func(
	salidas repository.SalidaRepository,
	perfumes repository.PerfumeRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	salidaRepo := NewSalidaRepository(tx)
	perfumeRepo := NewPerfumeRepository(tx)

	if err := fn(salidaRepo, perfumeRepo); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
