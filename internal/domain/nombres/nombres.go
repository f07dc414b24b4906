// Package nombres normaliza nombres de perfume para búsquedas insensibles a
// mayúsculas y acentos ("Château Nº5" y "chateau nº5" resuelven igual).
package nombres

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var quitarDiacriticos = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Normalizar recorta espacios, pasa a minúsculas y elimina diacríticos.
// Los repositorios guardan y consultan esta forma normalizada.
func Normalizar(nombre string) string {
	s := strings.ToLower(strings.TrimSpace(nombre))
	out, _, err := transform.String(quitarDiacriticos, s)
	if err != nil {
		return s
	}
	return out
}
