// Package textutil normaliza texto para búsquedas: sin acentos y sin
// distinción de mayúsculas, pensado para nombres de productos y
// clientes capturados con y sin tildes.
package textutil

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Descompone (NFD), elimina marcas diacríticas y recompone (NFC).
var foldChain = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Fold devuelve s en minúsculas y sin marcas diacríticas:
// "Ratón Inalámbrico" -> "raton inalambrico".
func Fold(s string) string {
	out, _, err := transform.String(foldChain, s)
	if err != nil {
		return strings.ToLower(s)
	}
	return strings.ToLower(out)
}

// ContainsFold indica si substr aparece dentro de s, ignorando acentos
// y mayúsculas en ambos lados.
func ContainsFold(s, substr string) bool {
	return strings.Contains(Fold(s), Fold(substr))
}
