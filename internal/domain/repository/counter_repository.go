package repository

// CounterRepository define el generador de secuencias por clave de documento
// (numero_entrada, numero_traspaso, orden_compra). Next incrementa de forma
// atómica, creando la clave en 1 si no existe, y devuelve el nuevo valor.
// Dos llamadas concurrentes sobre la misma clave nunca observan el mismo valor.
type CounterRepository interface {
	Next(clave string) (int64, error)
}
