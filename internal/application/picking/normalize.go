package picking

import (
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"

	"github.com/jhoicas/picking-scanner-api/internal/domain/gs1"
)

// NormalizeBarcode limpia la lectura del escáner: NFKC (dígitos de ancho completo de algunos
// teclados virtuales), sin espacios en los extremos y sin caracteres de control salvo FNC1.
func NormalizeBarcode(raw string) string {
	s := norm.NFKC.String(raw)
	s = strings.Map(func(r rune) rune {
		if r == gs1.GroupSeparator {
			return r
		}
		if unicode.IsControl(r) {
			return -1
		}
		return r
	}, s)
	return strings.TrimSpace(s)
}
