package models

// VirtualAddress es el resultado de descomponer una dirección lógica:
// el byte alto de los 16 bits bajos es la página y el byte bajo el offset.
type VirtualAddress struct {
	Page   byte
	Offset byte
}

// TLBEntry es una entrada de la TLB de mapeo directo. Valid indica si el
// slot guarda una traducción real: un slot recién inicializado no mapea
// ninguna página, ni siquiera la página 0.
type TLBEntry struct {
	Page  byte
	Frame uint32
	Valid bool
}

// PageEntry es una entrada de la tabla de páginas. Presence indica si la
// página ya fue cargada en memoria física; Frame es la dirección base del
// marco que la contiene.
type PageEntry struct {
	Frame    uint32
	Presence bool
}

// Metrics acumula los contadores de la simulación para calcular las
// estadísticas finales.
type Metrics struct {
	Translations int
	PageFaults   int
	TlbHits      int
}

// PageFaultRate devuelve el porcentaje de traducciones que produjeron un
// page fault. Sin traducciones completadas devuelve 0.
func (m Metrics) PageFaultRate() float64 {
	if m.Translations == 0 {
		return 0
	}
	return float64(m.PageFaults) / float64(m.Translations) * 100
}

// TlbHitRate devuelve el porcentaje de traducciones resueltas por la TLB.
// Sin traducciones completadas devuelve 0.
func (m Metrics) TlbHitRate() float64 {
	if m.Translations == 0 {
		return 0
	}
	return float64(m.TlbHits) / float64(m.Translations) * 100
}
