package services

import (
	"github.com/sisoputnfrba/tp-2025-2c-Los-magiOS/mmu/models"
)

// TLB de mapeo directo: cada página solo puede ocupar el slot página % slots,
// por lo que una inserción pisa lo que hubiera en ese slot. No hay FIFO ni LRU.
type TLB struct {
	entries []models.TLBEntry
}

func InitTLB(slots int) *TLB {
	// Las entradas arrancan con Valid en false: un slot vacío no mapea
	// ninguna página, ni siquiera la página 0.
	return &TLB{entries: make([]models.TLBEntry, slots)}
}

func (tlb *TLB) slotFor(page byte) int {
	return int(page) % len(tlb.entries)
}

// Lookup busca la página en su único slot posible. Es hit solo si el slot
// está válido y guarda exactamente esa página.
func (tlb *TLB) Lookup(page byte) (uint32, bool) {
	entry := tlb.entries[tlb.slotFor(page)]
	if entry.Valid && entry.Page == page {
		return entry.Frame, true
	}
	return 0, false
}

// Insert registra la traducción página → marco pisando incondicionalmente el
// slot que le corresponde a la página.
func (tlb *TLB) Insert(page byte, frame uint32) {
	tlb.entries[tlb.slotFor(page)] = models.TLBEntry{
		Page:  page,
		Frame: frame,
		Valid: true,
	}
}

func (tlb *TLB) Slots() int {
	return len(tlb.entries)
}
