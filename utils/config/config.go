package config

import (
	"encoding/json"
	"fmt"
	"os"
)

// InitConfig lee el archivo de configuración JSON y carga sus valores en la
// estructura recibida. Sin configuración el módulo no puede arrancar, por lo
// que cualquier error al abrir o decodificar el archivo termina con panic.
//
// Parámetros:
//   - filePath: ubicación del archivo de configuración
//   - config: puntero a la estructura donde se decodifica el JSON
//
// Ejemplo:
//
//	func main() {
//		config.InitConfig("mmu/configs/mmu.json", &models.MmuConfig)
//		fmt.Println(models.MmuConfig.PageSize)
//	}
func InitConfig(filePath string, config interface{}) {
	if err := setupConfig(filePath, config); err != nil {
		panic(fmt.Sprintf("error al cargar el archivo de configuración %s: %v", filePath, err))
	}
}

func setupConfig(filePath string, config interface{}) error {
	configFile, err := os.Open(filePath)

	if err != nil {
		return err
	}

	defer configFile.Close()

	jsonParser := json.NewDecoder(configFile)

	if err := jsonParser.Decode(config); err != nil {
		return err
	}

	return nil
}
