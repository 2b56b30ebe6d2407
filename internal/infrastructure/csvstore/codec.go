package csvstore

import (
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// TimeLayout es el formato de fecha y hora de todos los archivos de datos.
const TimeLayout = "2006-01-02 15:04:05"

// Codec convierte una entidad a los campos de su línea y de vuelta.
// Cada repositorio define el suyo con el orden de columnas del archivo.
type Codec[T any] interface {
	// Encode devuelve los campos del registro en el orden del archivo.
	Encode(record *T) []string
	// Decode arma el registro desde una línea cruda. Los campos
	// ausentes quedan en su valor cero.
	Decode(line Line) *T
	// ID devuelve el identificador del registro.
	ID(record *T) int
}

// Line es una línea cruda de un store. El formato cita cada campo con
// comillas dobles y separa con comas; una coma dentro de comillas es
// parte del campo. No hay escape para comillas literales (limitación
// conocida del formato).
type Line string

// Field extrae el campo en la posición index. Las comillas alternan el
// estado de citado y nunca forman parte del valor. Devuelve false si el
// índice queda fuera de rango o el campo está vacío; quien llama trata
// los numéricos ausentes como cero y los textos ausentes como vacíos.
func (l Line) Field(index int) (string, bool) {
	current := 0
	inQuotes := false
	var b strings.Builder
	for i := 0; i < len(l); i++ {
		ch := l[i]
		if ch == '"' {
			inQuotes = !inQuotes
			continue
		}
		if !inQuotes && ch == ',' {
			if current == index {
				break
			}
			current++
			continue
		}
		if current == index {
			b.WriteByte(ch)
		}
	}
	if current < index {
		return "", false
	}
	s := b.String()
	if s == "" {
		return "", false
	}
	return s, true
}

// Text devuelve el campo como texto, vacío si está ausente.
func (l Line) Text(index int) string {
	s, _ := l.Field(index)
	return s
}

// Int devuelve el campo como entero, cero si está ausente o no parsea.
func (l Line) Int(index int) int {
	s, ok := l.Field(index)
	if !ok {
		return 0
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0
	}
	return n
}

// Decimal devuelve el campo como decimal, cero si está ausente o no parsea.
func (l Line) Decimal(index int) decimal.Decimal {
	s, ok := l.Field(index)
	if !ok {
		return decimal.Zero
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero
	}
	return d
}

// Time devuelve el campo como fecha local, cero si está ausente o no parsea.
func (l Line) Time(index int) time.Time {
	s, ok := l.Field(index)
	if !ok {
		return time.Time{}
	}
	t, err := time.ParseInLocation(TimeLayout, s, time.Local)
	if err != nil {
		return time.Time{}
	}
	return t
}

// Flag devuelve el campo como booleano: "1" es verdadero, todo lo demás falso.
func (l Line) Flag(index int) bool {
	s, _ := l.Field(index)
	return s == "1"
}

// RecordID devuelve el primer campo como identificador. ok es false si
// está ausente o no parsea como entero: la línea se considera malformada.
func (l Line) RecordID() (int, bool) {
	s, ok := l.Field(0)
	if !ok {
		return 0, false
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, false
	}
	return n, true
}

// EncodeFields une los campos con coma citando cada valor (política de
// citado total). El decodificador acepta además el formato heredado sin
// comillas, así los archivos viejos se leen tal cual y se normalizan en
// la primera reescritura.
func EncodeFields(fields ...string) Line {
	var b strings.Builder
	for i, f := range fields {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteByte('"')
		b.WriteString(f)
		b.WriteByte('"')
	}
	return Line(b.String())
}

// formatTime serializa una fecha, cadena vacía para el valor cero
// (fechas aún no ocurridas, como la finalización de una reparación).
func formatTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(TimeLayout)
}

// formatFlag serializa un booleano como "1" o "0".
func formatFlag(b bool) string {
	if b {
		return "1"
	}
	return "0"
}
