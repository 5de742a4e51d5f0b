package services

import (
	"fmt"
	"log/slog"

	"github.com/sisoputnfrba/tp-2025-2c-Los-magiOS/mmu/models"
)

// MMU encadena TLB, tabla de páginas y backing store para traducir las
// direcciones lógicas del proceso simulado. Toda la simulación vive en esta
// estructura: no hay estado compartido entre instancias.
type MMU struct {
	tlb       *TLB
	pageTable *PageTable
	memory    *PhysicalMemory
	store     *BackingStore
	metrics   models.Metrics
}

func InitMMU(cfg *models.Config) (*MMU, error) {
	if err := validateConfig(cfg); err != nil {
		return nil, err
	}

	store, err := InitBackingStore(cfg.BackingStorePath, cfg.PageSize)
	if err != nil {
		return nil, err
	}

	mmu := &MMU{
		tlb:       InitTLB(cfg.TlbEntries),
		pageTable: InitPageTable(cfg.PageCount),
		memory:    InitPhysicalMemory(cfg.FrameCount, cfg.FrameSize),
		store:     store,
	}

	slog.Debug("MMU inicializada", "pageCount", cfg.PageCount, "frameCount", cfg.FrameCount, "tlbEntries", cfg.TlbEntries)
	return mmu, nil
}

func validateConfig(cfg *models.Config) error {
	if cfg == nil {
		return fmt.Errorf("la configuración de la MMU no fue inicializada")
	}
	if cfg.PageCount <= 0 || cfg.PageSize <= 0 {
		return fmt.Errorf("configuración inválida: page_count y page_size deben ser mayores a cero")
	}
	if cfg.FrameCount <= 0 || cfg.FrameSize <= 0 {
		return fmt.Errorf("configuración inválida: frame_count y frame_size deben ser mayores a cero")
	}
	if cfg.TlbEntries <= 0 {
		return fmt.Errorf("configuración inválida: tlb_entries debe ser mayor a cero")
	}
	return nil
}

// DecomposeAddress separa una dirección lógica en página y offset. Solo los
// 16 bits bajos son significativos: el byte alto es la página y el byte bajo
// el offset; el resto de la dirección se descarta.
func DecomposeAddress(logical uint32) models.VirtualAddress {
	return models.VirtualAddress{
		Page:   byte(logical >> 8),
		Offset: byte(logical),
	}
}

// TranslateAddress traduce una dirección lógica de 32 bits a la dirección
// física donde quedó cargado el byte correspondiente, trayendo la página del
// backing store si todavía no está en memoria.
func (mmu *MMU) TranslateAddress(logical uint32) (uint32, error) {
	virtual := DecomposeAddress(logical)
	slog.Debug("Traducción de dirección", "logical", logical, "page", virtual.Page, "offset", virtual.Offset)

	frame, err := mmu.searchFrame(virtual.Page)
	if err != nil {
		return 0, err
	}

	// La TLB se refresca en todos los caminos, también cuando el marco
	// salió de la tabla de páginas.
	mmu.tlb.Insert(virtual.Page, frame)

	mmu.metrics.Translations++
	return frame + uint32(virtual.Offset), nil
}

// searchFrame busca el marco de la página consultando en orden: TLB, tabla
// de páginas y por último el backing store (page fault).
func (mmu *MMU) searchFrame(page byte) (uint32, error) {
	if int(page) >= mmu.pageTable.Size() {
		slog.Warn("Violación de memoria detectada", "page", page)
		return 0, models.ErrPageOutOfRange
	}

	if frame, ok := mmu.tlb.Lookup(page); ok {
		mmu.metrics.TlbHits++
		slog.Info(fmt.Sprintf("TLB HIT - Pagina: %d", page))
		return frame, nil
	}
	slog.Info(fmt.Sprintf("TLB MISS - Página: %d", page))

	if frame, ok := mmu.pageTable.Lookup(page); ok {
		slog.Debug("Página presente en la tabla de páginas", "page", page, "frame", frame)
		return frame, nil
	}

	// La página no está en memoria: hay que traerla del backing store
	mmu.metrics.PageFaults++
	slog.Info(fmt.Sprintf("PAGE FAULT - Página: %d", page))

	return mmu.loadPage(page)
}

// loadPage resuelve un page fault: lee la página completa del backing store,
// la copia en un marco libre y actualiza la tabla de páginas.
func (mmu *MMU) loadPage(page byte) (uint32, error) {
	content, err := mmu.store.ReadPage(page)
	if err != nil {
		return 0, err
	}

	frame, err := mmu.memory.AllocateFrame(content)
	if err != nil {
		slog.Error(fmt.Sprintf("No se pudo cargar la página %d en memoria: %v", page, err))
		return 0, err
	}

	mmu.pageTable.Insert(page, frame)
	slog.Debug("Página cargada desde el backing store", "page", page, "frame", frame, "freeFrames", mmu.memory.FreeFrames())
	return frame, nil
}

// ReadValue lee el byte almacenado en la dirección física y lo devuelve como
// valor con signo, que es como lo interpreta el proceso simulado.
func (mmu *MMU) ReadValue(physical uint32) (int8, error) {
	value, err := mmu.memory.ReadByte(physical)
	if err != nil {
		return 0, err
	}
	return int8(value), nil
}

// Metrics devuelve una copia de los contadores acumulados hasta el momento.
func (mmu *MMU) Metrics() models.Metrics {
	return mmu.metrics
}

// Shutdown registra las métricas finales de la simulación y cierra el
// backing store.
func (mmu *MMU) Shutdown() error {
	metrics := mmu.metrics
	slog.Info(fmt.Sprintf("## Fin de simulación - Métricas - Traducciones: %d; Page Faults: %d (%.2f%%); TLB Hits: %d (%.2f%%)",
		metrics.Translations, metrics.PageFaults, metrics.PageFaultRate(),
		metrics.TlbHits, metrics.TlbHitRate()))
	return mmu.store.Close()
}
