package entity

import "time"

// Estados de validación de un traspaso.
const (
	TraspasoPendiente = "Pendiente"
	TraspasoValidado  = "Validado"
	TraspasoRechazado = "Rechazado"
)

// Traspaso representa el movimiento de stock entre dos almacenes.
// Invariante: AlmacenSalida != AlmacenDestino y la cantidad no supera
// el 50% del stock actual en origen al momento de crearlo.
type Traspaso struct {
	ID                string
	NumeroTraspaso    string // folio TRAS-###, único
	PerfumeID         string
	Cantidad          int64
	ProveedorID       string
	FechaSalida       time.Time
	UsuarioRegistroID string
	AlmacenSalida     AlmacenRef
	AlmacenDestino    AlmacenRef
	EstatusValidacion string // TraspasoPendiente | TraspasoValidado | TraspasoRechazado
	CreatedAt         time.Time
	UpdatedAt         time.Time
}
