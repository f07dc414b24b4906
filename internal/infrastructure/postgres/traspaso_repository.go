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

var _ repository.TraspasoRepository = (*TraspasoRepo)(nil)

// TraspasoRepo implementación de TraspasoRepository sobre PostgreSQL (usable con pool o tx).
type TraspasoRepo struct {
	q Querier
}

// NewTraspasoRepository construye el adaptador. Pasar pool o tx (Querier).
func NewTraspasoRepository(q Querier) *TraspasoRepo {
	return &TraspasoRepo{q: q}
}

const traspasoColumns = `id, numero_traspaso, perfume_id, cantidad, proveedor_id, fecha_salida,
		usuario_registro_id, almacen_salida, almacen_destino, estatus_validacion, created_at, updated_at`

// Create persiste un traspaso nuevo. El folio es único.
func (r *TraspasoRepo) Create(traspaso *entity.Traspaso) error {
	query := `
		INSERT INTO traspasos (` + traspasoColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`
	_, err := r.q.Exec(context.Background(), query,
		traspaso.ID, traspaso.NumeroTraspaso, traspaso.PerfumeID, traspaso.Cantidad,
		nullIfEmpty(traspaso.ProveedorID), traspaso.FechaSalida, traspaso.UsuarioRegistroID,
		traspaso.AlmacenSalida.Valor(), traspaso.AlmacenDestino.Valor(),
		traspaso.EstatusValidacion, traspaso.CreatedAt, traspaso.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrConflict
		}
		return fmt.Errorf("insert traspaso: %w", err)
	}
	return nil
}

// GetByNumero obtiene un traspaso por su folio TRAS-###.
func (r *TraspasoRepo) GetByNumero(numero string) (*entity.Traspaso, error) {
	query := `SELECT ` + traspasoColumns + ` FROM traspasos WHERE numero_traspaso = $1`
	t, err := scanTraspaso(r.q.QueryRow(context.Background(), query, numero))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get traspaso: %w", err)
	}
	return t, nil
}

// List lista traspasos con paginación, recientes primero.
func (r *TraspasoRepo) List(limit, offset int) ([]*entity.Traspaso, error) {
	query := `SELECT ` + traspasoColumns + ` FROM traspasos ORDER BY created_at DESC LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list traspasos: %w", err)
	}
	defer rows.Close()
	var list []*entity.Traspaso
	for rows.Next() {
		t, err := scanTraspaso(rows)
		if err != nil {
			return nil, fmt.Errorf("scan traspaso: %w", err)
		}
		list = append(list, t)
	}
	return list, rows.Err()
}

func scanTraspaso(row pgx.Row) (*entity.Traspaso, error) {
	var t entity.Traspaso
	var proveedorID *string
	var almacenSalida, almacenDestino string
	err := row.Scan(
		&t.ID, &t.NumeroTraspaso, &t.PerfumeID, &t.Cantidad, &proveedorID, &t.FechaSalida,
		&t.UsuarioRegistroID, &almacenSalida, &almacenDestino, &t.EstatusValidacion,
		&t.CreatedAt, &t.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	t.ProveedorID = deref(proveedorID)
	t.AlmacenSalida = entity.ParseAlmacenRef(almacenSalida)
	t.AlmacenDestino = entity.ParseAlmacenRef(almacenDestino)
	return &t, nil
}
