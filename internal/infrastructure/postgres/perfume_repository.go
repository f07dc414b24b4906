package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/smartflow/smartflow-api/internal/domain"
	"github.com/smartflow/smartflow-api/internal/domain/entity"
	"github.com/smartflow/smartflow-api/internal/domain/nombres"
	"github.com/smartflow/smartflow-api/internal/domain/repository"
)

var _ repository.PerfumeRepository = (*PerfumeRepo)(nil)

// PerfumeRepo implementación de PerfumeRepository sobre PostgreSQL (usable con pool o tx).
// La columna nombre_normalizado guarda la forma de búsqueda (ver domain/nombres).
type PerfumeRepo struct {
	q Querier
}

// NewPerfumeRepository construye el adaptador. Pasar pool o tx (Querier).
func NewPerfumeRepository(q Querier) *PerfumeRepo {
	return &PerfumeRepo{q: q}
}

const perfumeColumns = `id, name_per, descripcion_per, marca, precio_unitario, precio_venta_per,
		stock_minimo_per, stock_actual, ubicacion_per, fecha_expiracion, sku, categoria_per, estado, almacen_id, created_at, updated_at`

// Create persiste un perfume nuevo.
func (r *PerfumeRepo) Create(perfume *entity.Perfume) error {
	query := `
		INSERT INTO perfumes (id, name_per, nombre_normalizado, descripcion_per, marca, precio_unitario, precio_venta_per,
			stock_minimo_per, stock_actual, ubicacion_per, fecha_expiracion, sku, categoria_per, estado, almacen_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)`
	_, err := r.q.Exec(context.Background(), query,
		perfume.ID, perfume.NamePer, nombres.Normalizar(perfume.NamePer), perfume.DescripcionPer, perfume.Marca,
		perfume.PrecioUnitario, perfume.PrecioVentaPer, perfume.StockMinimoPer, perfume.StockActual,
		perfume.UbicacionPer, perfume.FechaExpiracion, perfume.SKU, perfume.CategoriaPer,
		perfume.Estado, nullIfEmpty(perfume.AlmacenID), perfume.CreatedAt, perfume.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrConflict
		}
		return fmt.Errorf("insert perfume: %w", err)
	}
	return nil
}

// GetByID obtiene un perfume por ID.
func (r *PerfumeRepo) GetByID(id string) (*entity.Perfume, error) {
	query := `SELECT ` + perfumeColumns + ` FROM perfumes WHERE id = $1`
	return r.scanOne(r.q.QueryRow(context.Background(), query, id), "get perfume")
}

// GetByNombre obtiene un perfume por su nombre normalizado.
func (r *PerfumeRepo) GetByNombre(nombre string) (*entity.Perfume, error) {
	query := `SELECT ` + perfumeColumns + ` FROM perfumes WHERE nombre_normalizado = $1`
	return r.scanOne(r.q.QueryRow(context.Background(), query, nombres.Normalizar(nombre)), "get perfume by nombre")
}

// GetByNombreForUpdate obtiene un perfume por nombre y bloquea la fila (SELECT FOR UPDATE).
func (r *PerfumeRepo) GetByNombreForUpdate(nombre string) (*entity.Perfume, error) {
	query := `SELECT ` + perfumeColumns + ` FROM perfumes WHERE nombre_normalizado = $1 FOR UPDATE`
	return r.scanOne(r.q.QueryRow(context.Background(), query, nombres.Normalizar(nombre)), "get perfume for update")
}

// UpdateStock actualiza solo el stock actual.
func (r *PerfumeRepo) UpdateStock(id string, stockActual int64) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE perfumes SET stock_actual = $2, updated_at = now() WHERE id = $1`,
		id, stockActual,
	)
	if err != nil {
		return fmt.Errorf("update perfume stock: %w", err)
	}
	return nil
}

// Update actualiza los datos del perfume (el stock se maneja vía UpdateStock).
func (r *PerfumeRepo) Update(perfume *entity.Perfume) error {
	query := `
		UPDATE perfumes SET name_per = $2, nombre_normalizado = $3, descripcion_per = $4, marca = $5,
			precio_unitario = $6, precio_venta_per = $7, stock_minimo_per = $8, ubicacion_per = $9,
			sku = $10, categoria_per = $11, estado = $12, almacen_id = $13, updated_at = $14
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		perfume.ID, perfume.NamePer, nombres.Normalizar(perfume.NamePer), perfume.DescripcionPer, perfume.Marca,
		perfume.PrecioUnitario, perfume.PrecioVentaPer, perfume.StockMinimoPer, perfume.UbicacionPer,
		perfume.SKU, perfume.CategoriaPer, perfume.Estado, nullIfEmpty(perfume.AlmacenID), perfume.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update perfume: %w", err)
	}
	return nil
}

// List lista perfumes con paginación.
func (r *PerfumeRepo) List(limit, offset int) ([]*entity.Perfume, error) {
	query := `SELECT ` + perfumeColumns + ` FROM perfumes ORDER BY created_at DESC LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list perfumes: %w", err)
	}
	defer rows.Close()
	var list []*entity.Perfume
	for rows.Next() {
		p, err := scanPerfume(rows)
		if err != nil {
			return nil, fmt.Errorf("scan perfume: %w", err)
		}
		list = append(list, p)
	}
	return list, rows.Err()
}

func (r *PerfumeRepo) scanOne(row pgx.Row, op string) (*entity.Perfume, error) {
	p, err := scanPerfume(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return p, nil
}

func scanPerfume(row pgx.Row) (*entity.Perfume, error) {
	var p entity.Perfume
	var almacenID *string
	err := row.Scan(
		&p.ID, &p.NamePer, &p.DescripcionPer, &p.Marca, &p.PrecioUnitario, &p.PrecioVentaPer,
		&p.StockMinimoPer, &p.StockActual, &p.UbicacionPer, &p.FechaExpiracion, &p.SKU,
		&p.CategoriaPer, &p.Estado, &almacenID, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	p.AlmacenID = deref(almacenID)
	return &p, nil
}
