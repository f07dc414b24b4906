package entity

import "time"

// Proveedor representa un proveedor de mercancía.
type Proveedor struct {
	ID            string
	Nombre        string
	Contacto      string
	Telefono      string
	Direccion     string
	Correo        string
	Estado        bool
	FechaCreacion time.Time
}
