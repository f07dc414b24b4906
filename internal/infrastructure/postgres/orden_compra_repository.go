package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/smartflow/smartflow-api/internal/domain"
	"github.com/smartflow/smartflow-api/internal/domain/entity"
	"github.com/smartflow/smartflow-api/internal/domain/repository"
)

var _ repository.OrdenCompraRepository = (*OrdenCompraRepo)(nil)

// OrdenCompraRepo implementación de OrdenCompraRepository sobre PostgreSQL (usable con pool o tx).
type OrdenCompraRepo struct {
	q Querier
}

// NewOrdenCompraRepository construye el adaptador. Pasar pool o tx (Querier).
func NewOrdenCompraRepository(q Querier) *OrdenCompraRepo {
	return &OrdenCompraRepo{q: q}
}

const ordenColumns = `id, n_orden_compra, perfume_id, cantidad, usuario_solicitante_id, proveedor_id,
		fecha, precio_unitario, precio_total, almacen, estado, observaciones, created_at, updated_at`

// Create persiste una orden de compra nueva. El folio es único.
func (r *OrdenCompraRepo) Create(orden *entity.OrdenCompra) error {
	query := `
		INSERT INTO ordenes_compra (` + ordenColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)`
	_, err := r.q.Exec(context.Background(), query,
		orden.ID, orden.NOrdenCompra, orden.PerfumeID, orden.Cantidad,
		orden.UsuarioSolicitanteID, nullIfEmpty(orden.ProveedorID), orden.Fecha,
		orden.PrecioUnitario, orden.PrecioTotal, nullIfEmpty(orden.Almacen),
		orden.Estado, nullIfEmpty(orden.Observaciones), orden.CreatedAt, orden.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrConflict
		}
		return fmt.Errorf("insert orden: %w", err)
	}
	return nil
}

// GetByID obtiene una orden por ID.
func (r *OrdenCompraRepo) GetByID(id string) (*entity.OrdenCompra, error) {
	query := `SELECT ` + ordenColumns + ` FROM ordenes_compra WHERE id = $1`
	return scanOrdenRow(r.q.QueryRow(context.Background(), query, id), "get orden")
}

// GetByNumero obtiene una orden por su folio ORD-###.
func (r *OrdenCompraRepo) GetByNumero(numero string) (*entity.OrdenCompra, error) {
	query := `SELECT ` + ordenColumns + ` FROM ordenes_compra WHERE n_orden_compra = $1`
	return scanOrdenRow(r.q.QueryRow(context.Background(), query, numero), "get orden by numero")
}

// UpdateEstado cambia el estado y las observaciones de una orden.
func (r *OrdenCompraRepo) UpdateEstado(id, estado, observaciones string) error {
	cmd, err := r.q.Exec(context.Background(),
		`UPDATE ordenes_compra SET estado = $2, observaciones = $3, updated_at = now() WHERE id = $1`,
		id, estado, nullIfEmpty(observaciones),
	)
	if err != nil {
		return fmt.Errorf("update estado orden: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// ExistsConParametros busca una orden ORD-### con el mismo perfume y cantidad
// (comprobación heurística de duplicado).
func (r *OrdenCompraRepo) ExistsConParametros(perfumeID string, cantidad int64) (bool, error) {
	var existe bool
	err := r.q.QueryRow(context.Background(),
		`SELECT EXISTS (SELECT 1 FROM ordenes_compra WHERE perfume_id = $1 AND cantidad = $2 AND n_orden_compra LIKE 'ORD-%')`,
		perfumeID, cantidad,
	).Scan(&existe)
	if err != nil {
		return false, fmt.Errorf("exists orden con parametros: %w", err)
	}
	return existe, nil
}

// List lista órdenes con paginación, recientes primero.
func (r *OrdenCompraRepo) List(limit, offset int) ([]*entity.OrdenCompra, error) {
	query := `SELECT ` + ordenColumns + ` FROM ordenes_compra ORDER BY created_at DESC LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list ordenes: %w", err)
	}
	defer rows.Close()
	var list []*entity.OrdenCompra
	for rows.Next() {
		o, err := scanOrden(rows)
		if err != nil {
			return nil, fmt.Errorf("scan orden: %w", err)
		}
		list = append(list, o)
	}
	return list, rows.Err()
}

func scanOrdenRow(row pgx.Row, op string) (*entity.OrdenCompra, error) {
	o, err := scanOrden(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return o, nil
}

func scanOrden(row pgx.Row) (*entity.OrdenCompra, error) {
	var o entity.OrdenCompra
	var proveedorID, almacen, observaciones *string
	err := row.Scan(
		&o.ID, &o.NOrdenCompra, &o.PerfumeID, &o.Cantidad, &o.UsuarioSolicitanteID,
		&proveedorID, &o.Fecha, &o.PrecioUnitario, &o.PrecioTotal, &almacen,
		&o.Estado, &observaciones, &o.CreatedAt, &o.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	o.ProveedorID = deref(proveedorID)
	o.Almacen = deref(almacen)
	o.Observaciones = deref(observaciones)
	return &o, nil
}
