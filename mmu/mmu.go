package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/sisoputnfrba/tp-2025-2c-Los-magiOS/mmu/models"
	"github.com/sisoputnfrba/tp-2025-2c-Los-magiOS/mmu/services"
	"github.com/sisoputnfrba/tp-2025-2c-Los-magiOS/utils/config"
	"github.com/sisoputnfrba/tp-2025-2c-Los-magiOS/utils/log"
)

const ConfigPath = "mmu/configs/mmu.json" //"./configs/mmu.json"

func main() {
	if len(os.Args) < 2 {
		fmt.Println("Falta el archivo de direcciones. Uso: mmu <archivo_direcciones>")
		os.Exit(1)
	}
	addressesPath := os.Args[1]

	config.InitConfig(ConfigPath, &models.MmuConfig)

	logPath, err := log.BuildLogPath("mmu")
	if err != nil {
		fmt.Println("No se pudo construir el log path:", err)
		os.Exit(1)
	}
	log.InitLogger(logPath, models.MmuConfig.LogLevel)

	slog.Debug(fmt.Sprintf("Backing store: %s - Direcciones: %s", models.MmuConfig.BackingStorePath, addressesPath))

	addresses, err := services.LoadAddresses(addressesPath, models.MmuConfig.MaxAddresses)
	if err != nil {
		slog.Error(fmt.Sprintf("Error cargando las direcciones: %v", err))
		os.Exit(1)
	}

	mmu, err := services.InitMMU(models.MmuConfig)
	if err != nil {
		slog.Error(fmt.Sprintf("Error inicializando la MMU: %v", err))
		os.Exit(1)
	}

	for !addresses.IsEmpty() {
		logical, err := addresses.Dequeue()
		if err != nil {
			break
		}

		physical, err := mmu.TranslateAddress(logical)
		if err != nil {
			slog.Error(fmt.Sprintf("Error traduciendo la dirección %d: %v", logical, err))
			os.Exit(1)
		}

		value, err := mmu.ReadValue(physical)
		if err != nil {
			slog.Error(fmt.Sprintf("Error leyendo la dirección física %d: %v", physical, err))
			os.Exit(1)
		}

		fmt.Printf("Dirección lógica: %-6d - Dirección física: %-6d - Valor: %d\n", logical, physical, value)
	}

	metrics := mmu.Metrics()
	if err := mmu.Shutdown(); err != nil {
		slog.Warn(fmt.Sprintf("Error cerrando la MMU: %v", err))
	}

	fmt.Printf("Page Faults: %.2f%%\n", metrics.PageFaultRate())
	fmt.Printf("TLB Hits: %.2f%%\n", metrics.TlbHitRate())
}
