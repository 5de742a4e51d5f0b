package services

import (
	"github.com/sisoputnfrba/tp-2025-2c-Los-magiOS/mmu/models"
)

// PageTable es la tabla de páginas de un solo nivel del proceso simulado.
// Tiene una entrada por página y las páginas cargadas nunca se desalojan.
type PageTable struct {
	entries []models.PageEntry
}

func InitPageTable(pageCount int) *PageTable {
	// Todas las entradas arrancan con Presence en false.
	return &PageTable{entries: make([]models.PageEntry, pageCount)}
}

// Lookup devuelve el marco de la página si ya fue cargada en memoria.
func (table *PageTable) Lookup(page byte) (uint32, bool) {
	if int(page) >= len(table.entries) {
		return 0, false
	}
	entry := table.entries[page]
	if !entry.Presence {
		return 0, false
	}
	return entry.Frame, true
}

// Insert registra el mapeo página → marco pisando la entrada anterior.
func (table *PageTable) Insert(page byte, frame uint32) {
	if int(page) >= len(table.entries) {
		return
	}
	table.entries[page] = models.PageEntry{
		Frame:    frame,
		Presence: true,
	}
}

func (table *PageTable) Size() int {
	return len(table.entries)
}
