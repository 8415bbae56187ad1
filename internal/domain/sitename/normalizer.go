// Package sitename implementa la clave canónica para nombres de sitio.
//
// Las tres colecciones de origen (إفراجات, viajes, saldos manuales) se
// mantienen por separado y no comparten claves: la única forma de correlar
// registros es el nombre del sitio escrito a mano, que llega con espacios
// inconsistentes y variantes de letras árabes (أحمد vs احمد). Normalize
// produce una clave best-effort para agrupar; NO es una garantía de
// identidad — dos escrituras del mismo sitio que no colapsen bajo estas
// reglas siguen siendo filas distintas en el reporte.
package sitename

import (
	"strings"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
)

// foldArabic colapsa las tres variantes de alef (أ إ آ) a la alef simple (ا)
// y la alef maqsura (ى) a ya (ي). Son las confusiones más frecuentes en la
// captura manual de nombres de sitio.
var foldArabic = runes.Map(func(r rune) rune {
	switch r {
	case 'أ', 'إ', 'آ':
		return 'ا'
	case 'ى':
		return 'ي'
	}
	return r
})

// Normalize devuelve la clave canónica de un nombre de sitio: recorta,
// colapsa corridas de espacios internos a uno y aplica foldArabic.
// Es idempotente: Normalize(Normalize(s)) == Normalize(s).
func Normalize(s string) string {
	s = strings.Join(strings.Fields(s), " ")
	out, _, err := transform.String(foldArabic, s)
	if err != nil {
		// runes.Map no falla con UTF-8 válido; ante bytes inválidos
		// preferimos la cadena colapsada a perder la fila.
		return s
	}
	return out
}

// Equal indica si dos nombres de sitio refieren al mismo sitio bajo las
// reglas de normalización.
func Equal(a, b string) bool {
	return Normalize(a) == Normalize(b)
}
