package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de una orden de compra. La transición es unidireccional:
// pendiente -> Completada, nunca al revés.
const (
	OrdenPendiente  = "pendiente"
	OrdenCompletada = "Completada"
)

// OrdenCompra representa una solicitud de compra a un proveedor.
type OrdenCompra struct {
	ID                   string
	NOrdenCompra         string // folio ORD-###, único
	PerfumeID            string
	Cantidad             int64
	UsuarioSolicitanteID string
	ProveedorID          string
	Fecha                time.Time
	PrecioUnitario       decimal.Decimal
	PrecioTotal          decimal.Decimal
	Almacen              string // código del almacén de destino
	Estado               string // OrdenPendiente | OrdenCompletada
	Observaciones        string
	CreatedAt            time.Time
	UpdatedAt            time.Time
}
