package entity

import "time"

// Tipos de salida de stock.
const (
	SalidaVenta = "Venta"
	SalidaMerma = "Merma"
)

// Salida representa stock que abandona el sistema (venta o merma).
// NombrePerfume va desnormalizado, no es una referencia.
type Salida struct {
	ID                string
	NombrePerfume     string
	AlmacenSalida     string // código del almacén de origen
	Cantidad          int64
	Tipo              string // SalidaVenta | SalidaMerma
	FechaSalida       time.Time
	UsuarioRegistroID string
	UpdatedAt         time.Time
}
