// Package csvstore implementa la persistencia en archivos de texto
// delimitados: un archivo por entidad, una línea por registro. Toda
// mutación en sitio pasa por una reescritura completa a un temporal
// que reemplaza al original con un rename atómico.
package csvstore

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/jhoicas/tienda-cli/internal/domain"
	"github.com/jhoicas/tienda-cli/pkg/logger"
)

// Store maneja el archivo de una entidad con las operaciones genéricas
// de agregar, recorrer, buscar, actualizar en sitio y borrar. No es
// seguro ante procesos concurrentes: el proceso asume propiedad
// exclusiva de sus archivos de datos durante la ejecución.
type Store[T any] struct {
	path  string
	codec Codec[T]
	log   *logger.Logger
}

// NewStore construye el store de una entidad sobre la ruta dada.
func NewStore[T any](path string, codec Codec[T], log *logger.Logger) *Store[T] {
	return &Store[T]{path: path, codec: codec, log: log}
}

// Path devuelve la ruta del archivo del store.
func (s *Store[T]) Path() string { return s.path }

// Exists indica si el archivo del store ya fue creado.
func (s *Store[T]) Exists() bool {
	_, err := os.Stat(s.path)
	return err == nil
}

// Append serializa el registro y lo agrega al final del archivo,
// creándolo si no existe.
func (s *Store[T]) Append(record *T) error {
	return s.AppendLine(EncodeFields(s.codec.Encode(record)...))
}

// AppendLine agrega una línea ya codificada. La usa la recuperación del
// journal, que guarda la línea exacta pendiente de escribir.
func (s *Store[T]) AppendLine(line Line) error {
	f, err := os.OpenFile(s.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("open store for append: %w", err)
	}
	if _, err := f.WriteString(string(line) + "\n"); err != nil {
		f.Close()
		return fmt.Errorf("append record: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close store: %w", err)
	}
	return nil
}

// NextID recorre el primer campo de cada línea y devuelve el máximo
// entero encontrado más uno, o 1 si el archivo no existe o está vacío.
// Dos asignaciones concurrentes pueden chocar (supuesto de proceso único).
func (s *Store[T]) NextID() (int, error) {
	f, err := os.Open(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return 1, nil
		}
		return 0, fmt.Errorf("open store: %w", err)
	}
	defer f.Close()

	maxID := 0
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		if id, ok := Line(sc.Text()).RecordID(); ok && id > maxID {
			maxID = id
		}
	}
	if err := sc.Err(); err != nil {
		return 0, fmt.Errorf("scan store: %w", err)
	}
	return maxID + 1, nil
}

// Scan recorre el archivo entregando cada registro decodificado a
// yield; si yield devuelve false el recorrido se corta ahí. Un archivo
// inexistente se trata como vacío. Las líneas cuyo primer campo no
// parsea como entero se saltan con un aviso en el log.
func (s *Store[T]) Scan(yield func(record *T) bool) error {
	f, err := os.Open(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("open store: %w", err)
	}
	defer f.Close()

	sc := bufio.NewScanner(f)
	lineNo := 0
	for sc.Scan() {
		lineNo++
		raw := Line(sc.Text())
		if len(raw) == 0 {
			continue
		}
		if _, ok := raw.RecordID(); !ok {
			s.log.Warn().Str("store", s.path).Int("line", lineNo).
				Msg("línea malformada omitida")
			continue
		}
		if !yield(s.codec.Decode(raw)) {
			return nil
		}
	}
	if err := sc.Err(); err != nil {
		return fmt.Errorf("scan store: %w", err)
	}
	return nil
}

// List devuelve todos los registros del archivo en su orden.
func (s *Store[T]) List() ([]*T, error) {
	var out []*T
	err := s.Scan(func(r *T) bool {
		out = append(out, r)
		return true
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// FindByID devuelve el primer registro con el ID dado, o nil si no
// aparece en el archivo.
func (s *Store[T]) FindByID(id int) (*T, error) {
	var found *T
	err := s.Scan(func(r *T) bool {
		if s.codec.ID(r) == id {
			found = r
			return false
		}
		return true
	})
	if err != nil {
		return nil, err
	}
	return found, nil
}

// UpdateInPlace reescribe el archivo completo aplicando transform a
// cada registro con el ID dado. El archivo vivo solo cambia con el
// rename final del temporal ya sincronizado: si algo falla a mitad de
// camino el original queda intacto. Sin coincidencia devuelve
// domain.ErrNotFound y no toca nada.
func (s *Store[T]) UpdateInPlace(id int, transform func(record *T) error) error {
	return s.rewrite(id, func(record *T) (*T, error) {
		if err := transform(record); err != nil {
			return nil, err
		}
		return record, nil
	})
}

// DeleteByID elimina los registros con el ID dado reescribiendo el
// archivo; las líneas coincidentes no se copian al temporal.
func (s *Store[T]) DeleteByID(id int) error {
	return s.rewrite(id, func(record *T) (*T, error) {
		return nil, nil
	})
}

// rewrite es el recorrido común de actualización y borrado: cada línea
// decodificable se reserializa al temporal (las malformadas se copian
// byte a byte), la coincidente se reemplaza u omite según apply, y el
// temporal reemplaza al original en un único rename.
func (s *Store[T]) rewrite(id int, apply func(record *T) (*T, error)) error {
	src, err := os.Open(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("open store: %w", err)
	}
	defer src.Close()

	tmp, err := os.CreateTemp(filepath.Dir(s.path), "."+filepath.Base(s.path)+".tmp-")
	if err != nil {
		return fmt.Errorf("create temp store: %w", err)
	}
	tmpPath := tmp.Name()
	discard := func() {
		tmp.Close()
		os.Remove(tmpPath)
	}

	w := bufio.NewWriter(tmp)
	matched := false
	sc := bufio.NewScanner(src)
	for sc.Scan() {
		raw := Line(sc.Text())
		recID, ok := raw.RecordID()
		if !ok {
			if _, err := w.WriteString(string(raw) + "\n"); err != nil {
				discard()
				return fmt.Errorf("write temp store: %w", err)
			}
			continue
		}
		var out Line
		if recID == id {
			matched = true
			replaced, err := apply(s.codec.Decode(raw))
			if err != nil {
				discard()
				return err
			}
			if replaced == nil {
				continue
			}
			out = EncodeFields(s.codec.Encode(replaced)...)
		} else {
			out = EncodeFields(s.codec.Encode(s.codec.Decode(raw))...)
		}
		if _, err := w.WriteString(string(out) + "\n"); err != nil {
			discard()
			return fmt.Errorf("write temp store: %w", err)
		}
	}
	if err := sc.Err(); err != nil {
		discard()
		return fmt.Errorf("scan store: %w", err)
	}
	if !matched {
		discard()
		return domain.ErrNotFound
	}
	if err := w.Flush(); err != nil {
		discard()
		return fmt.Errorf("flush temp store: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		discard()
		return fmt.Errorf("sync temp store: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("close temp store: %w", err)
	}
	if err := os.Rename(tmpPath, s.path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("replace store: %w", err)
	}
	return nil
}
