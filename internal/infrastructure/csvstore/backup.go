package csvstore

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/jhoicas/tienda-cli/pkg/logger"
)

// Backup copia los archivos de datos a un subdirectorio con marca de
// tiempo dentro del directorio de respaldos.
type Backup struct {
	backupDir string
	stores    []string
	log       *logger.Logger
}

// NewBackup construye el respaldo para las rutas de archivo dadas.
func NewBackup(backupDir string, storePaths []string, log *logger.Logger) *Backup {
	return &Backup{backupDir: backupDir, stores: storePaths, log: log}
}

// Run crea backup_<YYYYMMDD_HHMMSS>/ dentro del directorio de
// respaldos y copia ahí cada archivo existente; los que aún no se han
// creado se omiten. Devuelve la ruta del directorio creado.
func (b *Backup) Run() (string, error) {
	stamp := time.Now().Format("20060102_150405")
	dir := filepath.Join(b.backupDir, "backup_"+stamp)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create backup dir: %w", err)
	}

	copied := 0
	for _, src := range b.stores {
		if _, err := os.Stat(src); errors.Is(err, os.ErrNotExist) {
			continue
		}
		if err := copyFile(src, filepath.Join(dir, filepath.Base(src))); err != nil {
			return "", fmt.Errorf("backup %s: %w", filepath.Base(src), err)
		}
		copied++
	}

	b.log.Info().Str("dir", dir).Int("files", copied).Msg("respaldo creado")
	return dir, nil
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return fmt.Errorf("open source: %w", err)
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return fmt.Errorf("create copy: %w", err)
	}
	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return fmt.Errorf("copy contents: %w", err)
	}
	if err := out.Close(); err != nil {
		return fmt.Errorf("close copy: %w", err)
	}
	return nil
}
