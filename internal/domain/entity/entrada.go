package entity

import "time"

// Tipos de entrada de mercancía.
const (
	TipoCompra   = "Compra"
	TipoTraspaso = "Traspaso"
)

// Entrada representa el ingreso de stock a un almacén, originado por una
// compra (orden de compra) o por un traspaso entre almacenes.
// OrdenCompra guarda el folio ORD-### de la orden de origen;
// ReferenciaTraspaso el folio TRAS-### del traspaso de origen.
// A lo sumo existe una entrada por orden y una por traspaso.
type Entrada struct {
	ID                   string
	NumeroEntrada        string // folio ENT-###
	PerfumeID            string
	Cantidad             int64
	ProveedorID          string
	FechaEntrada         time.Time
	UsuarioRegistroID    string
	OrdenCompra          string // folio de la orden de origen, vacío si no aplica
	AlmacenDestino       AlmacenRef
	Tipo                 string // TipoCompra | TipoTraspaso
	Fecha                time.Time
	ReferenciaTraspaso   string // folio del traspaso de origen, vacío si no aplica
	FechaValidacion      *time.Time
	ValidadoPorID        string
	ObservacionesAuditor string
	CreatedAt            time.Time
	UpdatedAt            time.Time
}
