package csvstore_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/jhoicas/tienda-cli/internal/infrastructure/csvstore"
)

// ──────────────────────────────────────────────────────────────────────────────
// Codificación: política de citado total
// ──────────────────────────────────────────────────────────────────────────────

func TestEncodeFields_CitaTodosLosCampos(t *testing.T) {
	line := csvstore.EncodeFields("1", "Mouse", "10.00")
	assert.Equal(t, `"1","Mouse","10.00"`, string(line),
		"todos los campos van citados, también los numéricos")
}

func TestEncodeFields_SinCampos(t *testing.T) {
	assert.Equal(t, "", string(csvstore.EncodeFields()))
}

// TestRoundTrip_CamposSinComillas valida el contrato central del códec:
// parse(serialize(campos)) devuelve cada campo exacto siempre que
// ningún valor contenga comillas dobles literales.
func TestRoundTrip_CamposSinComillas(t *testing.T) {
	fields := []string{"42", "Ratón Inalámbrico", "Periféricos", "Logitech", "5.00", "10.00", "20", "5"}
	line := csvstore.EncodeFields(fields...)

	for i, want := range fields {
		got, ok := line.Field(i)
		require.True(t, ok, "el campo %d debe estar presente", i)
		assert.Equal(t, want, got, "el campo %d debe sobrevivir el viaje de ida y vuelta", i)
	}
}

func TestRoundTrip_ComaDentroDelCampo(t *testing.T) {
	// La dirección lleva comas; el citado la mantiene en un solo campo.
	line := csvstore.EncodeFields("7", "Ana López", "Av. Siempre Viva 742, Apto 3, Bogotá")

	got, ok := line.Field(2)
	require.True(t, ok)
	assert.Equal(t, "Av. Siempre Viva 742, Apto 3, Bogotá", got)

	// Y los campos vecinos no se corren.
	id, ok := line.Field(0)
	require.True(t, ok)
	assert.Equal(t, "7", id)
}

// ──────────────────────────────────────────────────────────────────────────────
// Decodificación: formato heredado y casos límite
// ──────────────────────────────────────────────────────────────────────────────

func TestField_FormatoHeredadoSinComillas(t *testing.T) {
	// Archivos viejos no citan nada; el parser los lee igual.
	line := csvstore.Line(`3,Mouse,Accesorios,Genius,2.50,6.00,15,4`)

	assert.Equal(t, "Mouse", line.Text(1))
	assert.Equal(t, "Genius", line.Text(3))
	assert.Equal(t, 15, line.Int(6))
}

func TestField_IndiceFueraDeRango(t *testing.T) {
	line := csvstore.Line(`"1","solo dos campos"`)
	_, ok := line.Field(5)
	assert.False(t, ok, "un índice más allá del último campo está ausente")
}

func TestField_CampoVacioEsAusente(t *testing.T) {
	line := csvstore.Line(`"1","","10.00"`)

	_, ok := line.Field(1)
	assert.False(t, ok, "un campo vacío cuenta como ausente")
	assert.Equal(t, "", line.Text(1), "texto ausente se lee como cadena vacía")
	assert.Equal(t, 0, line.Int(1), "numérico ausente se lee como cero")
}

func TestField_ComillasAlternanElEstado(t *testing.T) {
	// Una comilla a mitad de campo alterna el estado de citado y no se
	// emite; la coma interior queda dentro del campo. Es el comportamiento
	// documentado del formato, no hay escape para comillas literales.
	line := csvstore.Line(`a"b,c"d,final`)

	got, ok := line.Field(0)
	require.True(t, ok)
	assert.Equal(t, "ab,cd", got)
	assert.Equal(t, "final", line.Text(1))
}

func TestRecordID_PrimerCampo(t *testing.T) {
	id, ok := csvstore.Line(`"12","x"`).RecordID()
	require.True(t, ok)
	assert.Equal(t, 12, id)

	_, ok = csvstore.Line(`abc,x`).RecordID()
	assert.False(t, ok, "un primer campo no numérico marca la línea como malformada")

	_, ok = csvstore.Line(``).RecordID()
	assert.False(t, ok)
}

// ──────────────────────────────────────────────────────────────────────────────
// Accesores tipados
// ──────────────────────────────────────────────────────────────────────────────

func TestInt_SoloEnterosCompletos(t *testing.T) {
	line := csvstore.Line(`"10","12abc","-3"`)
	assert.Equal(t, 10, line.Int(0))
	assert.Equal(t, 0, line.Int(1), "un valor con basura no parsea, vale cero")
	assert.Equal(t, -3, line.Int(2))
}

func TestDecimal_ValoresMonetarios(t *testing.T) {
	line := csvstore.Line(`"1","10.50","no-numero"`)
	assert.True(t, line.Decimal(1).Equal(decimal.RequireFromString("10.50")))
	assert.True(t, line.Decimal(2).IsZero())
	assert.True(t, line.Decimal(9).IsZero(), "ausente vale cero")
}

func TestTime_FormatoDeArchivo(t *testing.T) {
	line := csvstore.Line(`"1","2024-03-01 10:30:00",""`)

	got := line.Time(1)
	want := time.Date(2024, 3, 1, 10, 30, 0, 0, time.Local)
	assert.True(t, got.Equal(want), "la fecha debe parsear en hora local")

	assert.True(t, line.Time(2).IsZero(), "campo vacío es fecha cero")
	assert.True(t, line.Time(7).IsZero(), "campo ausente es fecha cero")
}

func TestFlag_UnoEsVerdadero(t *testing.T) {
	line := csvstore.Line(`"1","0","1","x"`)
	assert.False(t, line.Flag(1))
	assert.True(t, line.Flag(2))
	assert.False(t, line.Flag(3), "cualquier valor distinto de 1 es falso")
	assert.False(t, line.Flag(9), "ausente es falso")
}
