// Package gs1 decodifica cadenas de elementos GS1-128 (Application Identifiers) para extraer
// GTIN, lote, serie y fecha de caducidad de un único escaneo.
package gs1

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// GroupSeparator carácter FNC1 que los lectores transmiten como ASCII 29.
const GroupSeparator = '\x1d'

// Prefijos de identificador de simbología que algunos lectores anteponen.
var symbologyPrefixes = []string{"]C1", "]e0", "]d2", "]Q3", "]J1"}

var (
	ErrNotGS1       = errors.New("gs1: la cadena no es un código GS1")
	ErrUnknownAI    = errors.New("gs1: application identifier desconocido")
	ErrInvalidValue = errors.New("gs1: valor inválido")
)

// Result datos extraídos de un código GS1. Transitorio, no se persiste.
type Result struct {
	GTIN   string
	Lot    string
	Serial string
	Expiry *time.Time
}

// IsEmpty informa si no se extrajo ningún dato útil.
func (r Result) IsEmpty() bool {
	return r.GTIN == "" && r.Lot == "" && r.Serial == "" && r.Expiry == nil
}

// HasLotOrSerial informa si el código trae lote o número de serie.
func (r Result) HasLotOrSerial() bool {
	return r.Lot != "" || r.Serial != ""
}

// LotName nombre de la identidad de lote: la serie tiene prioridad sobre el lote.
func (r Result) LotName() string {
	if r.Serial != "" {
		return r.Serial
	}
	return r.Lot
}

type aiKind int

const (
	kindOther aiKind = iota
	kindGTIN
	kindLot
	kindSerial
	kindExpiry
	kindDate
)

// aiDef longitud de datos del AI: fixed > 0 para longitud fija, si no max para variable.
type aiDef struct {
	fixed int
	max   int
	kind  aiKind
}

var aiTable = map[string]aiDef{
	"00":  {fixed: 18},
	"01":  {fixed: 14, kind: kindGTIN},
	"02":  {fixed: 14, kind: kindGTIN},
	"10":  {max: 20, kind: kindLot},
	"11":  {fixed: 6, kind: kindDate},
	"12":  {fixed: 6, kind: kindDate},
	"13":  {fixed: 6, kind: kindDate},
	"15":  {fixed: 6, kind: kindDate},
	"16":  {fixed: 6, kind: kindDate},
	"17":  {fixed: 6, kind: kindExpiry},
	"20":  {fixed: 2},
	"21":  {max: 20, kind: kindSerial},
	"22":  {max: 20},
	"30":  {max: 8},
	"37":  {max: 8},
	"240": {max: 30},
	"241": {max: 30},
	"250": {max: 30},
	"400": {max: 30},
	"410": {fixed: 13},
	"411": {fixed: 13},
	"412": {fixed: 13},
	"413": {fixed: 13},
	"414": {fixed: 13},
	"415": {fixed: 13},
	"420": {max: 20},
}

// Parser decodificador GS1 sin estado. Now permite fijar la fecha de referencia del siglo.
type Parser struct {
	Now func() time.Time
}

// NewParser construye el decodificador con el reloj del sistema.
func NewParser() *Parser {
	return &Parser{Now: time.Now}
}

// Parse devuelve los datos GS1 del código, o un Result vacío si el código no es GS1.
func (p *Parser) Parse(barcode string) Result {
	r, err := p.Decode(barcode)
	if err != nil {
		return Result{}
	}
	return r
}

// Decode decodifica el código y devuelve error si no es una cadena GS1 válida.
// Acepta formato crudo (prefijo ]C1, FNC1 como ASCII 29), legible "(01)...(10)..." y
// dígitos concatenados sin separadores de más de 14 caracteres.
func (p *Parser) Decode(barcode string) (Result, error) {
	s := strings.TrimSpace(barcode)
	if s == "" {
		return Result{}, ErrNotGS1
	}

	explicit := false
	for _, prefix := range symbologyPrefixes {
		if strings.HasPrefix(s, prefix) {
			s = s[len(prefix):]
			explicit = true
			break
		}
	}

	var (
		elements [][2]string
		err      error
	)
	switch {
	case strings.HasPrefix(s, "("):
		elements, err = splitHumanReadable(s)
	case explicit || strings.ContainsRune(s, GroupSeparator):
		elements, err = splitRaw(strings.TrimLeft(s, string(GroupSeparator)))
	case bareElementString(s):
		elements, err = splitRaw(s)
	default:
		return Result{}, ErrNotGS1
	}
	if err != nil {
		return Result{}, err
	}
	if len(elements) == 0 {
		return Result{}, ErrNotGS1
	}
	return p.build(elements)
}

func (p *Parser) build(elements [][2]string) (Result, error) {
	var r Result
	for _, el := range elements {
		ai, value := el[0], el[1]
		def := aiTable[ai]
		switch def.kind {
		case kindGTIN:
			if !ValidGTIN(value) {
				return Result{}, fmt.Errorf("%w: GTIN %q", ErrInvalidValue, value)
			}
			if r.GTIN == "" {
				r.GTIN = value
			}
		case kindLot:
			r.Lot = value
		case kindSerial:
			r.Serial = value
		case kindExpiry:
			t, err := p.decodeDate(value)
			if err != nil {
				return Result{}, err
			}
			r.Expiry = &t
		case kindDate:
			if _, err := p.decodeDate(value); err != nil {
				return Result{}, err
			}
		}
	}
	return r, nil
}

// splitRaw separa AIs en una cadena cruda. Los campos variables terminan en FNC1 o al final.
func splitRaw(s string) ([][2]string, error) {
	var out [][2]string
	for len(s) > 0 {
		if s[0] == GroupSeparator {
			s = s[1:]
			continue
		}
		ai, def, ok := matchAI(s)
		if !ok {
			return nil, ErrUnknownAI
		}
		s = s[len(ai):]
		var value string
		if def.fixed > 0 {
			if len(s) < def.fixed {
				return nil, fmt.Errorf("%w: AI %s incompleto", ErrInvalidValue, ai)
			}
			value, s = s[:def.fixed], s[def.fixed:]
		} else {
			idx := strings.IndexByte(s, GroupSeparator)
			if idx < 0 {
				value, s = s, ""
			} else {
				value, s = s[:idx], s[idx+1:]
			}
		}
		if err := checkValue(ai, def, value); err != nil {
			return nil, err
		}
		out = append(out, [2]string{ai, value})
	}
	return out, nil
}

// splitHumanReadable separa AIs en formato "(AI)valor(AI)valor".
func splitHumanReadable(s string) ([][2]string, error) {
	var out [][2]string
	for len(s) > 0 {
		if s[0] != '(' {
			return nil, ErrNotGS1
		}
		end := strings.IndexByte(s, ')')
		if end < 0 {
			return nil, ErrNotGS1
		}
		ai := s[1:end]
		s = s[end+1:]
		def, ok := lookupAI(ai)
		if !ok {
			return nil, ErrUnknownAI
		}
		next := strings.IndexByte(s, '(')
		var value string
		if next < 0 {
			value, s = s, ""
		} else {
			value, s = s[:next], s[next:]
		}
		if err := checkValue(ai, def, value); err != nil {
			return nil, err
		}
		out = append(out, [2]string{ai, value})
	}
	return out, nil
}

func matchAI(s string) (string, aiDef, bool) {
	for n := 2; n <= 4 && n <= len(s); n++ {
		if def, ok := lookupAI(s[:n]); ok {
			return s[:n], def, true
		}
	}
	return "", aiDef{}, false
}

func lookupAI(ai string) (aiDef, bool) {
	if def, ok := aiTable[ai]; ok {
		return def, true
	}
	// Medidas 310n-369n: AI de 4 dígitos (el último es la posición decimal) con 6 dígitos de dato
	if len(ai) == 4 && allDigits(ai) && ai[:2] >= "31" && ai[:2] <= "36" {
		return aiDef{fixed: 6}, true
	}
	return aiDef{}, false
}

func checkValue(ai string, def aiDef, value string) error {
	if value == "" {
		return fmt.Errorf("%w: AI %s vacío", ErrInvalidValue, ai)
	}
	if def.fixed > 0 && len(value) != def.fixed {
		return fmt.Errorf("%w: AI %s requiere %d caracteres", ErrInvalidValue, ai, def.fixed)
	}
	if def.max > 0 && len(value) > def.max {
		return fmt.Errorf("%w: AI %s excede %d caracteres", ErrInvalidValue, ai, def.max)
	}
	return nil
}

// decodeDate interpreta YYMMDD. Día 00 = último día del mes. El siglo sigue la ventana
// deslizante GS1: hasta 49 años hacia delante, 50 hacia atrás.
func (p *Parser) decodeDate(v string) (time.Time, error) {
	if len(v) != 6 || !allDigits(v) {
		return time.Time{}, fmt.Errorf("%w: fecha %q", ErrInvalidValue, v)
	}
	yy := atoi2(v[0:2])
	month := atoi2(v[2:4])
	day := atoi2(v[4:6])
	if month < 1 || month > 12 {
		return time.Time{}, fmt.Errorf("%w: mes %q", ErrInvalidValue, v)
	}

	now := time.Now
	if p.Now != nil {
		now = p.Now
	}
	current := now().Year()
	century := current / 100 * 100
	diff := yy - current%100
	switch {
	case diff >= 51:
		century -= 100
	case diff <= -50:
		century += 100
	}
	year := century + yy

	lastDay := time.Date(year, time.Month(month)+1, 0, 0, 0, 0, 0, time.UTC).Day()
	if day == 0 {
		day = lastDay
	}
	if day > lastDay {
		return time.Time{}, fmt.Errorf("%w: día %q", ErrInvalidValue, v)
	}
	return time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC), nil
}

// ValidGTIN verifica longitud (8, 12, 13 o 14) y dígito de control módulo 10.
func ValidGTIN(s string) bool {
	switch len(s) {
	case 8, 12, 13, 14:
	default:
		return false
	}
	if !allDigits(s) {
		return false
	}
	sum := 0
	body := s[:len(s)-1]
	for i := len(body) - 1; i >= 0; i-- {
		d := int(body[i] - '0')
		if (len(body)-1-i)%2 == 0 {
			d *= 3
		}
		sum += d
	}
	check := (10 - sum%10) % 10
	return check == int(s[len(s)-1]-'0')
}

// bareElementString informa si una cadena sin prefijo ni FNC1 es GS1: debe abrir con AI 01/02 y
// un GTIN-14 válido. Un EAN/UPC simple nunca supera 14 dígitos y un código numérico largo que
// empiece por 10 o 21 es un código de producto, no un lote.
func bareElementString(s string) bool {
	if len(s) < 16 || !(strings.HasPrefix(s, "01") || strings.HasPrefix(s, "02")) {
		return false
	}
	return ValidGTIN(s[2:16])
}

// GTINVariants devuelve el código y sus formas cortas sin ceros a la izquierda (GTIN-14 → 13 → 12 → 8),
// en ese orden. Un GTIN-14 "0" + EAN-13 corresponde al producto dado de alta con el EAN-13.
func GTINVariants(code string) []string {
	out := []string{code}
	if !allDigits(code) {
		return out
	}
	for _, n := range []int{13, 12, 8} {
		if n >= len(code) {
			continue
		}
		cut := len(code) - n
		if strings.Trim(code[:cut], "0") != "" {
			break
		}
		out = append(out, code[cut:])
	}
	return out
}

func isDigit(b byte) bool { return b >= '0' && b <= '9' }

func allDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if !isDigit(s[i]) {
			return false
		}
	}
	return true
}

func atoi2(s string) int {
	return int(s[0]-'0')*10 + int(s[1]-'0')
}
