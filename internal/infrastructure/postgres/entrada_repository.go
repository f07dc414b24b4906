package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/smartflow/smartflow-api/internal/domain"
	"github.com/smartflow/smartflow-api/internal/domain/entity"
	"github.com/smartflow/smartflow-api/internal/domain/repository"
)

var _ repository.EntradaRepository = (*EntradaRepo)(nil)

// EntradaRepo implementación de EntradaRepository sobre PostgreSQL (usable con pool o tx).
// orden_compra y referencia_traspaso llevan índice único parcial (WHERE NOT NULL):
// la base garantiza a lo sumo una entrada por documento de origen.
type EntradaRepo struct {
	q Querier
}

// NewEntradaRepository construye el adaptador. Pasar pool o tx (Querier).
func NewEntradaRepository(q Querier) *EntradaRepo {
	return &EntradaRepo{q: q}
}

const entradaColumns = `id, numero_entrada, perfume_id, cantidad, proveedor_id, fecha_entrada, usuario_registro_id,
		orden_compra, almacen_destino, tipo, fecha, referencia_traspaso, fecha_validacion, validado_por_id, observaciones_auditor, created_at, updated_at`

// Create persiste una entrada nueva.
func (r *EntradaRepo) Create(entrada *entity.Entrada) error {
	query := `
		INSERT INTO entradas (` + entradaColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)`
	_, err := r.q.Exec(context.Background(), query,
		entrada.ID, entrada.NumeroEntrada, entrada.PerfumeID, entrada.Cantidad,
		nullIfEmpty(entrada.ProveedorID), entrada.FechaEntrada, entrada.UsuarioRegistroID,
		nullIfEmpty(entrada.OrdenCompra), nullIfEmpty(entrada.AlmacenDestino.Valor()), entrada.Tipo,
		entrada.Fecha, nullIfEmpty(entrada.ReferenciaTraspaso), entrada.FechaValidacion,
		nullIfEmpty(entrada.ValidadoPorID), nullIfEmpty(entrada.ObservacionesAuditor),
		entrada.CreatedAt, entrada.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrConflict
		}
		return fmt.Errorf("insert entrada: %w", err)
	}
	return nil
}

// GetByNumero obtiene una entrada por su folio ENT-###.
func (r *EntradaRepo) GetByNumero(numero string) (*entity.Entrada, error) {
	query := `SELECT ` + entradaColumns + ` FROM entradas WHERE numero_entrada = $1`
	e, err := scanEntrada(r.q.QueryRow(context.Background(), query, numero))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get entrada: %w", err)
	}
	return e, nil
}

// ExistsPorOrdenCompra indica si ya hay una entrada ligada al folio de orden dado.
func (r *EntradaRepo) ExistsPorOrdenCompra(folioOrden string) (bool, error) {
	var existe bool
	err := r.q.QueryRow(context.Background(),
		`SELECT EXISTS (SELECT 1 FROM entradas WHERE orden_compra = $1)`, folioOrden,
	).Scan(&existe)
	if err != nil {
		return false, fmt.Errorf("exists entrada por orden: %w", err)
	}
	return existe, nil
}

// ExistsPorReferenciaTraspaso indica si ya hay una entrada ligada al folio de traspaso dado.
func (r *EntradaRepo) ExistsPorReferenciaTraspaso(folioTraspaso string) (bool, error) {
	var existe bool
	err := r.q.QueryRow(context.Background(),
		`SELECT EXISTS (SELECT 1 FROM entradas WHERE referencia_traspaso = $1)`, folioTraspaso,
	).Scan(&existe)
	if err != nil {
		return false, fmt.Errorf("exists entrada por traspaso: %w", err)
	}
	return existe, nil
}

// SetReferenciaTraspaso enlaza una entrada con el traspaso que originó.
func (r *EntradaRepo) SetReferenciaTraspaso(id, folioTraspaso string) error {
	cmd, err := r.q.Exec(context.Background(),
		`UPDATE entradas SET referencia_traspaso = $2, updated_at = now() WHERE id = $1`,
		id, folioTraspaso,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrConflict
		}
		return fmt.Errorf("set referencia traspaso: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// ListByUsuario lista las entradas registradas por un usuario, recientes primero.
func (r *EntradaRepo) ListByUsuario(usuarioID string) ([]*entity.Entrada, error) {
	query := `SELECT ` + entradaColumns + ` FROM entradas WHERE usuario_registro_id = $1 ORDER BY fecha_entrada DESC`
	rows, err := r.q.Query(context.Background(), query, usuarioID)
	if err != nil {
		return nil, fmt.Errorf("list entradas por usuario: %w", err)
	}
	defer rows.Close()
	var list []*entity.Entrada
	for rows.Next() {
		e, err := scanEntrada(rows)
		if err != nil {
			return nil, fmt.Errorf("scan entrada: %w", err)
		}
		list = append(list, e)
	}
	return list, rows.Err()
}

// ListInformePorRango devuelve las filas del informe mensual: entradas del
// rango con el nombre del perfume resuelto vía JOIN.
func (r *EntradaRepo) ListInformePorRango(desde, hasta time.Time) ([]*repository.EntradaInforme, error) {
	query := `
		SELECT p.name_per, e.cantidad, e.fecha_entrada, COALESCE(e.almacen_destino, '')
		FROM entradas e
		JOIN perfumes p ON p.id = e.perfume_id
		WHERE e.fecha_entrada >= $1 AND e.fecha_entrada < $2
		ORDER BY e.fecha_entrada`
	rows, err := r.q.Query(context.Background(), query, desde, hasta)
	if err != nil {
		return nil, fmt.Errorf("list informe entradas: %w", err)
	}
	defer rows.Close()
	var list []*repository.EntradaInforme
	for rows.Next() {
		var fila repository.EntradaInforme
		if err := rows.Scan(&fila.NombrePerfume, &fila.Cantidad, &fila.FechaEntrada, &fila.AlmacenDestino); err != nil {
			return nil, fmt.Errorf("scan informe entrada: %w", err)
		}
		list = append(list, &fila)
	}
	return list, rows.Err()
}

func scanEntrada(row pgx.Row) (*entity.Entrada, error) {
	var e entity.Entrada
	var proveedorID, ordenCompra, almacenDestino, referenciaTraspaso, validadoPor, observaciones *string
	err := row.Scan(
		&e.ID, &e.NumeroEntrada, &e.PerfumeID, &e.Cantidad, &proveedorID, &e.FechaEntrada,
		&e.UsuarioRegistroID, &ordenCompra, &almacenDestino, &e.Tipo, &e.Fecha,
		&referenciaTraspaso, &e.FechaValidacion, &validadoPor, &observaciones,
		&e.CreatedAt, &e.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	e.ProveedorID = deref(proveedorID)
	e.OrdenCompra = deref(ordenCompra)
	e.AlmacenDestino = entity.ParseAlmacenRef(deref(almacenDestino))
	e.ReferenciaTraspaso = deref(referenciaTraspaso)
	e.ValidadoPorID = deref(validadoPor)
	e.ObservacionesAuditor = deref(observaciones)
	return &e, nil
}
