package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/smartflow/smartflow-api/internal/domain/entity"
	"github.com/smartflow/smartflow-api/internal/domain/repository"
)

var _ repository.ProveedorRepository = (*ProveedorRepo)(nil)

// ProveedorRepo implementación de ProveedorRepository sobre PostgreSQL (usable con pool o tx).
type ProveedorRepo struct {
	q Querier
}

// NewProveedorRepository construye el adaptador. Pasar pool o tx (Querier).
func NewProveedorRepository(q Querier) *ProveedorRepo {
	return &ProveedorRepo{q: q}
}

const proveedorColumns = `id, nombre, contacto, telefono, direccion, correo, estado, fecha_creacion`

// Create persiste un proveedor nuevo.
func (r *ProveedorRepo) Create(proveedor *entity.Proveedor) error {
	query := `
		INSERT INTO proveedores (` + proveedorColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(context.Background(), query,
		proveedor.ID, proveedor.Nombre, proveedor.Contacto, proveedor.Telefono,
		proveedor.Direccion, proveedor.Correo, proveedor.Estado, proveedor.FechaCreacion,
	)
	if err != nil {
		return fmt.Errorf("insert proveedor: %w", err)
	}
	return nil
}

// GetByID obtiene un proveedor por ID.
func (r *ProveedorRepo) GetByID(id string) (*entity.Proveedor, error) {
	query := `SELECT ` + proveedorColumns + ` FROM proveedores WHERE id = $1`
	var p entity.Proveedor
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&p.ID, &p.Nombre, &p.Contacto, &p.Telefono, &p.Direccion, &p.Correo, &p.Estado, &p.FechaCreacion,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get proveedor: %w", err)
	}
	return &p, nil
}

// List lista proveedores con paginación.
func (r *ProveedorRepo) List(limit, offset int) ([]*entity.Proveedor, error) {
	query := `SELECT ` + proveedorColumns + ` FROM proveedores ORDER BY fecha_creacion DESC LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list proveedores: %w", err)
	}
	defer rows.Close()
	var list []*entity.Proveedor
	for rows.Next() {
		var p entity.Proveedor
		if err := rows.Scan(&p.ID, &p.Nombre, &p.Contacto, &p.Telefono, &p.Direccion,
			&p.Correo, &p.Estado, &p.FechaCreacion); err != nil {
			return nil, fmt.Errorf("scan proveedor: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}
