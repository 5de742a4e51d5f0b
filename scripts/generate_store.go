package main

import (
	"fmt"
	"os"
	"strconv"
)

// Genera el archivo binario que simula el almacenamiento secundario.
// Cada byte vale el byte bajo de su offset absoluto, así el contenido de
// cualquier página se puede verificar a mano al revisar una traducción.
//
// Para su uso se debe posicionar en la raíz del repo:
// > go run scripts/generate_store.go
// > go run scripts/generate_store.go backing_store.bin 256 256

func main() {
	path := "backing_store.bin"
	pageCount := 256
	pageSize := 256

	if len(os.Args) > 1 {
		path = os.Args[1]
	}
	if len(os.Args) > 2 {
		// La cantidad de páginas y el tamaño van juntos o no van
		if len(os.Args) < 4 {
			fmt.Println("Uso: generate_store [archivo] [cantidad_paginas] [tam_pagina]")
			fmt.Println("Ejemplo: generate_store backing_store.bin 256 256")
			return
		}
		count, err1 := strconv.Atoi(os.Args[2])
		size, err2 := strconv.Atoi(os.Args[3])
		if err1 != nil || err2 != nil || count <= 0 || size <= 0 {
			fmt.Println("Uso: generate_store [archivo] [cantidad_paginas] [tam_pagina]")
			fmt.Println("Ejemplo: generate_store backing_store.bin 256 256")
			return
		}
		pageCount = count
		pageSize = size
	}

	content := make([]byte, pageCount*pageSize)
	for i := range content {
		content[i] = byte(i)
	}

	if err := os.WriteFile(path, content, 0644); err != nil {
		fmt.Printf("Error al escribir el archivo %s: %v\n", path, err)
		os.Exit(1)
	}

	fmt.Printf("Backing store generado en %s: %d páginas de %d bytes (%d bytes en total)\n", path, pageCount, pageSize, len(content))
}
