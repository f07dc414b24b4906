package dto

import "github.com/smartflow/smartflow-api/internal/domain/entity"

// LoginRequest credenciales de acceso.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResponse token emitido y datos básicos del usuario.
type LoginResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

// CrearUserRequest alta de usuario (solo Admin).
type CrearUserRequest struct {
	Nombre   string `json:"nombre"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Rol      string `json:"rol"`
}

// ActualizarUserRequest actualización parcial de usuario (solo Admin).
type ActualizarUserRequest struct {
	Nombre *string `json:"nombre"`
	Rol    *string `json:"rol"`
	Estado *bool   `json:"estado"`
}

// UserResponse representación de un usuario en la API (sin hash).
type UserResponse struct {
	ID     string `json:"id"`
	Nombre string `json:"nombre"`
	Email  string `json:"email"`
	Rol    string `json:"rol"`
	Estado bool   `json:"estado"`
}

// FromUser mapea la entidad a su representación API.
func FromUser(u *entity.User) UserResponse {
	return UserResponse{
		ID:     u.ID,
		Nombre: u.Nombre,
		Email:  u.Email,
		Rol:    u.Rol,
		Estado: u.Estado,
	}
}
