// Package folio genera y clasifica los identificadores legibles de documentos
// (ENT-###, ORD-###, TRAS-###). Son funciones puras; el valor de secuencia lo
// entrega el CounterRepository.
package folio

import (
	"fmt"
	"strings"

	"github.com/smartflow/smartflow-api/internal/domain"
)

// Prefijos de documento.
const (
	PrefijoEntrada  = "ENT"
	PrefijoOrden    = "ORD"
	PrefijoTraspaso = "TRAS"
)

// Claves de contador correspondientes a cada tipo de documento.
const (
	ClaveEntrada  = "numero_entrada"
	ClaveTraspaso = "numero_traspaso"
	ClaveOrden    = "orden_compra"
)

// Kind identifica el tipo de documento referido por un folio.
type Kind int

const (
	KindDesconocido Kind = iota
	KindEntrada
	KindOrden
	KindTraspaso
)

// Format construye el folio: prefijo, guion y secuencia decimal con ceros a la
// izquierda hasta ancho 3. Valores >= 1000 no se truncan, el ancho crece.
func Format(prefijo string, seq int64) string {
	return fmt.Sprintf("%s-%03d", prefijo, seq)
}

// Dispatch clasifica una referencia por su prefijo. Un prefijo no reconocido
// devuelve ErrInvalidReference.
func Dispatch(referencia string) (Kind, error) {
	switch {
	case strings.HasPrefix(referencia, PrefijoOrden+"-"):
		return KindOrden, nil
	case strings.HasPrefix(referencia, PrefijoTraspaso+"-"):
		return KindTraspaso, nil
	case strings.HasPrefix(referencia, PrefijoEntrada+"-"):
		return KindEntrada, nil
	default:
		return KindDesconocido, domain.ErrInvalidReference
	}
}

// DerivarOrden sustituye el prefijo ENT de un número de entrada por ORD,
// conservando el número. Es el folio derivado usado al convertir una entrada
// de tipo Compra en orden de compra (no consume contador).
func DerivarOrden(numeroEntrada string) string {
	if strings.HasPrefix(strings.ToUpper(numeroEntrada), PrefijoEntrada) {
		return PrefijoOrden + numeroEntrada[len(PrefijoEntrada):]
	}
	return numeroEntrada
}
