package services

import (
	"bufio"
	"fmt"
	"log/slog"
	"os"
	"strconv"

	"github.com/sisoputnfrba/tp-2025-2c-Los-magiOS/utils/list"
)

// LoadAddresses carga las direcciones lógicas a traducir desde un archivo de
// texto. Las direcciones son enteros decimales separados por espacios o
// saltos de línea; las que excedan max se descartan con un aviso.
func LoadAddresses(path string, max int) (*list.ArrayList[uint32], error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("no se pudo abrir el archivo de direcciones: %v", err)
	}
	defer file.Close()

	addresses := &list.ArrayList[uint32]{}
	scanner := bufio.NewScanner(file)
	scanner.Split(bufio.ScanWords)

	for scanner.Scan() {
		if addresses.Size() >= max {
			slog.Warn(fmt.Sprintf("El archivo supera las %d direcciones, se ignora el resto", max))
			break
		}

		value, err := strconv.ParseUint(scanner.Text(), 10, 32)
		if err != nil {
			return nil, fmt.Errorf("dirección inválida %q en %s: %v", scanner.Text(), path, err)
		}
		addresses.Add(uint32(value))
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error leyendo el archivo de direcciones: %v", err)
	}

	slog.Debug("Direcciones cargadas", "path", path, "count", addresses.Size())
	return addresses, nil
}
