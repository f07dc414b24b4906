package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/smartflow/smartflow-api/internal/domain/entity"
	"github.com/smartflow/smartflow-api/internal/domain/repository"
)

var _ repository.SalidaRepository = (*SalidaRepo)(nil)

// SalidaRepo implementación de SalidaRepository sobre PostgreSQL (usable con pool o tx).
type SalidaRepo struct {
	q Querier
}

// NewSalidaRepository construye el adaptador. Pasar pool o tx (Querier).
func NewSalidaRepository(q Querier) *SalidaRepo {
	return &SalidaRepo{q: q}
}

const salidaColumns = `id, nombre_perfume, almacen_salida, cantidad, tipo, fecha_salida, usuario_registro_id, updated_at`

// Create persiste una salida nueva.
func (r *SalidaRepo) Create(salida *entity.Salida) error {
	query := `
		INSERT INTO salidas (` + salidaColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(context.Background(), query,
		salida.ID, salida.NombrePerfume, nullIfEmpty(salida.AlmacenSalida), salida.Cantidad,
		salida.Tipo, salida.FechaSalida, salida.UsuarioRegistroID, salida.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert salida: %w", err)
	}
	return nil
}

// ListPorRango lista las salidas del rango [desde, hasta).
func (r *SalidaRepo) ListPorRango(desde, hasta time.Time) ([]*entity.Salida, error) {
	query := `SELECT ` + salidaColumns + ` FROM salidas WHERE fecha_salida >= $1 AND fecha_salida < $2 ORDER BY fecha_salida`
	rows, err := r.q.Query(context.Background(), query, desde, hasta)
	if err != nil {
		return nil, fmt.Errorf("list salidas por rango: %w", err)
	}
	defer rows.Close()
	return collectSalidas(rows)
}

// List lista salidas con paginación, recientes primero.
func (r *SalidaRepo) List(limit, offset int) ([]*entity.Salida, error) {
	query := `SELECT ` + salidaColumns + ` FROM salidas ORDER BY fecha_salida DESC LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list salidas: %w", err)
	}
	defer rows.Close()
	return collectSalidas(rows)
}

func collectSalidas(rows pgx.Rows) ([]*entity.Salida, error) {
	var list []*entity.Salida
	for rows.Next() {
		var s entity.Salida
		var almacen *string
		if err := rows.Scan(&s.ID, &s.NombrePerfume, &almacen, &s.Cantidad, &s.Tipo,
			&s.FechaSalida, &s.UsuarioRegistroID, &s.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan salida: %w", err)
		}
		s.AlmacenSalida = deref(almacen)
		list = append(list, &s)
	}
	return list, rows.Err()
}
