package services

import (
	"fmt"
	"io"
	"log/slog"
	"os"
)

// BackingStore es el acceso de solo lectura al archivo binario que simula el
// almacenamiento secundario. Cada página ocupa pageSize bytes contiguos, así
// que la página N empieza en el offset N * pageSize.
type BackingStore struct {
	file     *os.File
	pageSize int
}

func InitBackingStore(path string, pageSize int) (*BackingStore, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("no se pudo abrir el backing store: %v", err)
	}

	slog.Debug("Backing store inicializado", "path", path, "pageSize", pageSize)
	return &BackingStore{file: file, pageSize: pageSize}, nil
}

// ReadPage lee el contenido completo de la página desde el backing store.
// Una lectura corta es un error: la página tiene que estar entera.
func (store *BackingStore) ReadPage(page byte) ([]byte, error) {
	offset := int64(page) * int64(store.pageSize)

	// Mover el puntero de lectura al offset donde empieza la página
	if _, err := store.file.Seek(offset, io.SeekStart); err != nil {
		return nil, fmt.Errorf("error al posicionarse en el offset %d del backing store: %v", offset, err)
	}

	content := make([]byte, store.pageSize)
	if _, err := io.ReadFull(store.file, content); err != nil {
		return nil, fmt.Errorf("error al leer la página %d del backing store: %v", page, err)
	}

	return content, nil
}

func (store *BackingStore) Close() error {
	slog.Debug("Backing store cerrado")
	return store.file.Close()
}
