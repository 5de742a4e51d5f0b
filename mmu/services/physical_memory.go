package services

import (
	"fmt"

	"github.com/sisoputnfrba/tp-2025-2c-Los-magiOS/mmu/models"
)

// PhysicalMemory administra la memoria de usuario como un bloque contiguo de
// bytes dividido en marcos de tamaño fijo. Los marcos se asignan en orden y
// nunca se liberan: cuando se agotan, la carga de páginas falla.
type PhysicalMemory struct {
	userMemory []byte
	frameSize  int
	frameCount int
	nextFrame  int
}

func InitPhysicalMemory(frameCount int, frameSize int) *PhysicalMemory {
	return &PhysicalMemory{
		userMemory: make([]byte, frameCount*frameSize),
		frameSize:  frameSize,
		frameCount: frameCount,
	}
}

// AllocateFrame copia el contenido en el próximo marco libre y devuelve la
// dirección física base del marco (índice del marco * tamaño del marco).
func (memory *PhysicalMemory) AllocateFrame(content []byte) (uint32, error) {
	if memory.nextFrame >= memory.frameCount {
		return 0, models.ErrMemoryFull
	}
	if len(content) != memory.frameSize {
		return 0, fmt.Errorf("el contenido de %d bytes no coincide con el tamaño de marco de %d bytes", len(content), memory.frameSize)
	}

	base := memory.nextFrame * memory.frameSize
	copy(memory.userMemory[base:base+memory.frameSize], content)
	memory.nextFrame++

	return uint32(base), nil
}

// ReadByte lee un byte de la dirección física indicada.
func (memory *PhysicalMemory) ReadByte(physical uint32) (byte, error) {
	if int(physical) >= len(memory.userMemory) {
		return 0, models.ErrInvalidAddress
	}
	return memory.userMemory[physical], nil
}

// FreeFrames devuelve la cantidad de marcos que quedan sin asignar.
func (memory *PhysicalMemory) FreeFrames() int {
	return memory.frameCount - memory.nextFrame
}
