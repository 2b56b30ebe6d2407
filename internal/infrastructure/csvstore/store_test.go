package csvstore_test

import (
	"os"
	"path/filepath"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/jhoicas/tienda-cli/internal/domain"
	"github.com/jhoicas/tienda-cli/internal/infrastructure/csvstore"
	"github.com/jhoicas/tienda-cli/pkg/logger"
)

// item es la entidad mínima para ejercitar el store genérico.
type item struct {
	ID   int
	Name string
	Qty  int
}

type itemCodec struct{}

func (itemCodec) Encode(it *item) []string {
	return []string{strconv.Itoa(it.ID), it.Name, strconv.Itoa(it.Qty)}
}

func (itemCodec) Decode(l csvstore.Line) *item {
	return &item{ID: l.Int(0), Name: l.Text(1), Qty: l.Int(2)}
}

func (itemCodec) ID(it *item) int { return it.ID }

// ── helpers ───────────────────────────────────────────────────────────────────

func newItemStore(t *testing.T) (*csvstore.Store[item], string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "items.csv")
	return csvstore.NewStore[item](path, itemCodec{}, logger.Nop()), path
}

func writeStoreFile(t *testing.T, path, contents string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
}

func readStoreFile(t *testing.T, path string) string {
	t.Helper()
	b, err := os.ReadFile(path)
	require.NoError(t, err)
	return string(b)
}

// ── asignación de IDs ─────────────────────────────────────────────────────────

func TestNextID_ArchivoAusente(t *testing.T) {
	store, _ := newItemStore(t)
	id, err := store.NextID()
	require.NoError(t, err)
	assert.Equal(t, 1, id, "un store sin archivo empieza en 1")
}

func TestNextID_ArchivoVacio(t *testing.T) {
	store, path := newItemStore(t)
	writeStoreFile(t, path, "")
	id, err := store.NextID()
	require.NoError(t, err)
	assert.Equal(t, 1, id)
}

func TestNextID_MaximoMasUnoSinImportarOrden(t *testing.T) {
	store, path := newItemStore(t)
	writeStoreFile(t, path, "\"2\",\"a\",\"1\"\n\"5\",\"b\",\"1\"\n\"3\",\"c\",\"1\"\n")

	id, err := store.NextID()
	require.NoError(t, err)
	assert.Equal(t, 6, id, "con IDs {2,5,3} el siguiente es 6, sin importar el orden de líneas")
}

func TestNextID_IgnoraLineasMalformadas(t *testing.T) {
	store, path := newItemStore(t)
	writeStoreFile(t, path, "\"4\",\"a\",\"1\"\nbasura sin id\n\"2\",\"b\",\"1\"\n")

	id, err := store.NextID()
	require.NoError(t, err)
	assert.Equal(t, 5, id)
}

// ── append y recorrido ────────────────────────────────────────────────────────

func TestAppend_CreaElArchivoYAgregaAlFinal(t *testing.T) {
	store, path := newItemStore(t)

	require.NoError(t, store.Append(&item{ID: 1, Name: "lápiz", Qty: 10}))
	require.NoError(t, store.Append(&item{ID: 2, Name: "cuaderno", Qty: 5}))

	assert.Equal(t, "\"1\",\"lápiz\",\"10\"\n\"2\",\"cuaderno\",\"5\"\n", readStoreFile(t, path))
}

func TestList_ArchivoAusenteEsVacio(t *testing.T) {
	store, _ := newItemStore(t)
	items, err := store.List()
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestScan_SaltaLineasMalformadas(t *testing.T) {
	store, path := newItemStore(t)
	writeStoreFile(t, path, "\"1\",\"a\",\"1\"\nno es registro\n\n\"2\",\"b\",\"2\"\n")

	items, err := store.List()
	require.NoError(t, err)
	require.Len(t, items, 2, "las líneas malformadas y vacías no producen registros")
	assert.Equal(t, 1, items[0].ID)
	assert.Equal(t, 2, items[1].ID)
}

func TestScan_CortaCuandoYieldDevuelveFalse(t *testing.T) {
	store, path := newItemStore(t)
	writeStoreFile(t, path, "\"1\",\"a\",\"1\"\n\"2\",\"b\",\"2\"\n\"3\",\"c\",\"3\"\n")

	var seen int
	err := store.Scan(func(*item) bool {
		seen++
		return seen < 2
	})
	require.NoError(t, err)
	assert.Equal(t, 2, seen, "el recorrido se detiene en cuanto yield devuelve false")
}

func TestFindByID(t *testing.T) {
	store, path := newItemStore(t)
	writeStoreFile(t, path, "\"1\",\"a\",\"1\"\n\"2\",\"b\",\"2\"\n")

	found, err := store.FindByID(2)
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, "b", found.Name)

	missing, err := store.FindByID(99)
	require.NoError(t, err)
	assert.Nil(t, missing, "un ID inexistente devuelve nil sin error")
}

// ── actualización en sitio ────────────────────────────────────────────────────

func TestUpdateInPlace_IDInexistenteDejaElArchivoIntacto(t *testing.T) {
	store, path := newItemStore(t)
	original := "1,viejo formato,10\n\"2\",\"b\",\"5\"\n"
	writeStoreFile(t, path, original)

	err := store.UpdateInPlace(99, func(it *item) error {
		it.Qty = 0
		return nil
	})

	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Equal(t, original, readStoreFile(t, path),
		"sin coincidencia el archivo queda byte a byte igual")
}

func TestUpdateInPlace_ArchivoAusente(t *testing.T) {
	store, _ := newItemStore(t)
	err := store.UpdateInPlace(1, func(*item) error { return nil })
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestUpdateInPlace_ReemplazaYNormalizaElFormato(t *testing.T) {
	store, path := newItemStore(t)
	// Formato heredado sin comillas: la reescritura lo normaliza.
	writeStoreFile(t, path, "1,lápiz,10\n2,cuaderno,5\n")

	err := store.UpdateInPlace(2, func(it *item) error {
		it.Qty = 8
		return nil
	})
	require.NoError(t, err)

	assert.Equal(t, "\"1\",\"lápiz\",\"10\"\n\"2\",\"cuaderno\",\"8\"\n", readStoreFile(t, path),
		"el registro cambia y todos quedan en el formato citado")
}

func TestUpdateInPlace_ConservaLineasMalformadasByteAByte(t *testing.T) {
	store, path := newItemStore(t)
	writeStoreFile(t, path, "\"1\",\"a\",\"1\"\nesta línea quedó corrupta\n\"3\",\"c\",\"3\"\n")

	err := store.UpdateInPlace(3, func(it *item) error {
		it.Qty = 9
		return nil
	})
	require.NoError(t, err)

	assert.Equal(t, "\"1\",\"a\",\"1\"\nesta línea quedó corrupta\n\"3\",\"c\",\"9\"\n",
		readStoreFile(t, path),
		"la línea corrupta sobrevive la reescritura sin cambios")
}

func TestUpdateInPlace_ErrorDeTransformAborta(t *testing.T) {
	store, path := newItemStore(t)
	original := "\"1\",\"a\",\"1\"\n\"2\",\"b\",\"2\"\n"
	writeStoreFile(t, path, original)

	boom := assert.AnError
	err := store.UpdateInPlace(2, func(*item) error { return boom })

	assert.ErrorIs(t, err, boom)
	assert.Equal(t, original, readStoreFile(t, path),
		"si transform falla, el original no se toca")
}

// ── borrado ───────────────────────────────────────────────────────────────────

func TestDeleteByID_OmiteSoloLaLineaCoincidente(t *testing.T) {
	store, path := newItemStore(t)
	writeStoreFile(t, path, "\"1\",\"a\",\"1\"\n\"2\",\"b\",\"2\"\n\"3\",\"c\",\"3\"\n")

	require.NoError(t, store.DeleteByID(2))

	assert.Equal(t, "\"1\",\"a\",\"1\"\n\"3\",\"c\",\"3\"\n", readStoreFile(t, path))
}

func TestDeleteByID_IDInexistente(t *testing.T) {
	store, path := newItemStore(t)
	original := "\"1\",\"a\",\"1\"\n"
	writeStoreFile(t, path, original)

	err := store.DeleteByID(9)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Equal(t, original, readStoreFile(t, path))
}

func TestDeleteByID_NoQuedanTemporales(t *testing.T) {
	store, path := newItemStore(t)
	writeStoreFile(t, path, "\"1\",\"a\",\"1\"\n")

	require.NoError(t, store.DeleteByID(1))

	entries, err := os.ReadDir(filepath.Dir(path))
	require.NoError(t, err)
	require.Len(t, entries, 1, "solo debe quedar el archivo del store")
	assert.Equal(t, filepath.Base(path), entries[0].Name())
}
