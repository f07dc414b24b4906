// Package stock contiene las reglas de umbral que protegen el stock ante
// traspasos y salidas (servicio de dominio, sin dependencias de persistencia).
package stock

import "github.com/smartflow/smartflow-api/internal/domain"

// LimiteTraspaso devuelve el máximo traspasable: floor(stockActual * 0.5).
func LimiteTraspaso(stockActual int64) int64 {
	return stockActual / 2
}

// MinimoPermitido devuelve el piso de stock tras una salida: floor(stockActual * 0.15).
func MinimoPermitido(stockActual int64) int64 {
	return stockActual * 15 / 100
}

// ValidarTraspaso verifica que la cantidad no supere el 50% del stock actual.
// La violación devuelve LimiteTraspasoError con el máximo permitido.
func ValidarTraspaso(stockActual, cantidad int64) error {
	if cantidad > stockActual {
		return domain.ErrInsufficientStock
	}
	limite := LimiteTraspaso(stockActual)
	if cantidad > limite {
		return &domain.LimiteTraspasoError{Limite: limite}
	}
	return nil
}

// ValidarSalida verifica que (stockActual - cantidad) no quede por debajo del
// 15% del stock actual. La violación devuelve StockMinimoError con el stock
// actual y el mínimo calculado.
func ValidarSalida(stockActual, cantidad int64) error {
	minimo := MinimoPermitido(stockActual)
	if stockActual-cantidad < minimo {
		return &domain.StockMinimoError{StockActual: stockActual, Minimo: minimo}
	}
	return nil
}
