package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Perfume representa un artículo del inventario. El stock vive como cantidad
// única (StockActual) y el perfume tiene exactamente un almacén hogar a la vez
// (UbicacionPer = código del almacén).
type Perfume struct {
	ID              string
	NamePer         string // nombre comercial
	DescripcionPer  string
	Marca           string
	PrecioUnitario  decimal.Decimal // precio de compra
	PrecioVentaPer  decimal.Decimal // precio de venta
	StockMinimoPer  int64
	StockActual     int64
	UbicacionPer    string // código del almacén donde se ubica
	FechaExpiracion *time.Time
	SKU             string
	CategoriaPer    string
	Estado          string
	AlmacenID       string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// PrecioCompra devuelve el precio unitario a usar en órdenes de compra:
// PrecioUnitario si es mayor a cero, si no PrecioVentaPer, si no cero.
func (p *Perfume) PrecioCompra() decimal.Decimal {
	if p.PrecioUnitario.GreaterThan(decimal.Zero) {
		return p.PrecioUnitario
	}
	if p.PrecioVentaPer.GreaterThan(decimal.Zero) {
		return p.PrecioVentaPer
	}
	return decimal.Zero
}
