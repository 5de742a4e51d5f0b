package log

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
)

// InitLogger configura el logger global para escribir tanto en consola como en
// archivo según el nivel recibido.
//
// Parámetros:
//   - logPath: ubicación del archivo de log
//   - logLevel: nivel de logueo, viene definido en el archivo de config
//
// Ejemplo:
//
//	func main() {
//		log.InitLogger("./logs/mmu.log", "INFO")
//	}
func InitLogger(logPath string, logLevel string) {
	//Creamos el archivo "modulo".log en modo escritura, si ocurre algún error finalizamos con panic.
	logFile, err := os.OpenFile(logPath, os.O_CREATE|os.O_APPEND|os.O_RDWR, 0666)

	if err != nil {
		panic(err)
	}

	// Usa io.MultiWriter para escribir a múltiples destinos: consola y archivo.
	multiWriter := io.MultiWriter(os.Stdout, logFile)

	// Convertir el logLevel del config al tipo slog.Level.
	level, err := convertStringToLogLevel(logLevel)

	handler := slog.NewTextHandler(multiWriter, &slog.HandlerOptions{
		Level: level,
	})

	// Configura slog para que use el manejador que creamos anteriormente.
	slog.SetDefault(slog.New(handler))

	// Escribimos en el log el warning que obtenemos por no setear el logLevel
	if err != nil {
		slog.Warn(err.Error())
	}

	slog.Debug("Se ha configurado correctamente el logger y el archivo de configuración. ")
}

// BuildLogPath arma la ruta del archivo de log dentro del directorio ./logs,
// creándolo si todavía no existe. El nombre admite formato printf para los
// módulos que se levantan con un identificador.
//
// Ejemplo:
//
//	logPath, err := log.BuildLogPath("mmu")
//	// logPath == "logs/mmu.log"
func BuildLogPath(format string, args ...interface{}) (string, error) {
	name := fmt.Sprintf(format, args...)

	logDir := "logs"
	if err := os.MkdirAll(logDir, os.ModePerm); err != nil {
		return "", fmt.Errorf("no se pudo crear el directorio de logs: %v", err)
	}

	return filepath.Join(logDir, name+".log"), nil
}

// convertStringToLogLevel modifica dinámicamente el nivel de log que deseamos tener en el sistema.
func convertStringToLogLevel(levelStr string) (slog.Level, error) {
	switch levelStr {
	case "DEBUG":
		return slog.LevelDebug, nil
	case "INFO":
		return slog.LevelInfo, nil
	case "WARN":
		return slog.LevelWarn, nil
	case "ERROR":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("No existe %s, se coloca INFO por defecto. ", levelStr)
	}
}
