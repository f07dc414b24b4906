package entity

import "time"

// Almacen representa una bodega física identificada por un código único.
type Almacen struct {
	ID        string
	Nombre    string
	Direccion string
	Telefono  string
	Codigo    string // código único, ej. "ALM001"
	UpdatedAt time.Time
}
