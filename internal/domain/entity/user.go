package entity

import "time"

// Roles de usuario. Cada grupo de rutas exige uno o varios de estos roles.
const (
	RolAdmin    = "Admin"
	RolEmpleado = "Empleado"
	RolAuditor  = "Auditor"
)

// User representa un usuario del sistema.
type User struct {
	ID           string
	Nombre       string
	Email        string
	PasswordHash string
	Rol          string // RolAdmin | RolEmpleado | RolAuditor
	Estado       bool   // false = cuenta desactivada
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
