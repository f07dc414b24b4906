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

var _ repository.AlmacenRepository = (*AlmacenRepo)(nil)

// AlmacenRepo implementación de AlmacenRepository sobre PostgreSQL (usable con pool o tx).
type AlmacenRepo struct {
	q Querier
}

// NewAlmacenRepository construye el adaptador. Pasar pool o tx (Querier).
func NewAlmacenRepository(q Querier) *AlmacenRepo {
	return &AlmacenRepo{q: q}
}

// Create persiste un almacén nuevo. El código es único.
func (r *AlmacenRepo) Create(almacen *entity.Almacen) error {
	query := `
		INSERT INTO almacenes (id, nombre, direccion, telefono, codigo, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(context.Background(), query,
		almacen.ID, almacen.Nombre, almacen.Direccion, almacen.Telefono, almacen.Codigo, almacen.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrConflict
		}
		return fmt.Errorf("insert almacen: %w", err)
	}
	return nil
}

// GetByCodigo obtiene un almacén por su código.
func (r *AlmacenRepo) GetByCodigo(codigo string) (*entity.Almacen, error) {
	query := `SELECT id, nombre, direccion, telefono, codigo, updated_at FROM almacenes WHERE codigo = $1`
	var a entity.Almacen
	err := r.q.QueryRow(context.Background(), query, codigo).Scan(
		&a.ID, &a.Nombre, &a.Direccion, &a.Telefono, &a.Codigo, &a.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get almacen: %w", err)
	}
	return &a, nil
}

// List lista almacenes con paginación.
func (r *AlmacenRepo) List(limit, offset int) ([]*entity.Almacen, error) {
	query := `SELECT id, nombre, direccion, telefono, codigo, updated_at FROM almacenes ORDER BY codigo LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list almacenes: %w", err)
	}
	defer rows.Close()
	var list []*entity.Almacen
	for rows.Next() {
		var a entity.Almacen
		if err := rows.Scan(&a.ID, &a.Nombre, &a.Direccion, &a.Telefono, &a.Codigo, &a.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan almacen: %w", err)
		}
		list = append(list, &a)
	}
	return list, rows.Err()
}
