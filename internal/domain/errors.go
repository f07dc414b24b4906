package domain

import (
	"errors"
	"fmt"
)

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrUserNotFound       = errors.New("usuario no encontrado")
	ErrEmailAlreadyExists = errors.New("el email ya está registrado")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrConflict           = errors.New("conflicto con el estado actual")
	ErrAlreadyValidated   = errors.New("la orden ya está validada")
	ErrInvalidReference   = errors.New("referencia inválida")
	ErrInvalidRoute       = errors.New("el almacén de destino no puede ser igual al almacén de salida")
	ErrSinUbicacion       = errors.New("el perfume no tiene una ubicación asignada")
	ErrUnauthorized       = errors.New("no autorizado")
	ErrForbidden          = errors.New("acceso denegado")
	ErrInsufficientStock  = errors.New("stock insuficiente")
)

// LimiteTraspasoError indica que un traspaso supera el 50% del stock actual.
// Lleva el máximo permitido calculado para mostrarlo al usuario.
type LimiteTraspasoError struct {
	Limite int64
}

func (e *LimiteTraspasoError) Error() string {
	return fmt.Sprintf("no puedes traspasar más del 50%% del stock actual. Máximo permitido: %d", e.Limite)
}

// StockMinimoError indica que una salida dejaría el stock por debajo del 15% permitido.
// Lleva el stock actual y el mínimo calculado para mostrarlos al usuario.
type StockMinimoError struct {
	StockActual int64
	Minimo      int64
}

func (e *StockMinimoError) Error() string {
	return fmt.Sprintf("el stock no puede quedar por debajo del 15%%. Stock actual: %d, mínimo permitido tras salida: %d", e.StockActual, e.Minimo)
}
