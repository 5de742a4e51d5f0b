package list

import (
	"fmt"
	"sync"
)

// List Definir la interfaz List
type List[T any] interface {
	Add(item T)               // Añadir un elemento al final de la lista
	Dequeue() (T, error)      // Eliminar y devolver el primer elemento de la lista
	Get(index int) (T, error) // Obtener un elemento a partir de un índice dado
	GetAll() []T              // Retorna una copia de todos los elementos de la lista
	IsEmpty() bool            // Indica si la lista no tiene elementos
	Size() int                // Retornar el tamaño de la lista
}

// ArrayList implements List
type ArrayList[T any] struct {
	mu    sync.RWMutex
	items []T
}

// Add inserta un elemento al final de la lista.
//
// Parámetros:
//   - item: Elemento a insertar.
//
// Ejemplo:
//
//	func main() {
//		pendientes := &ArrayList[uint32]{}
//		pendientes.Add(0x0100)
//		pendientes.Add(0x1111)
//	}
func (list *ArrayList[T]) Add(item T) {
	list.mu.Lock() // Bloqueo exclusivo para evitar cambios simultáneos
	defer list.mu.Unlock()

	list.items = append(list.items, item)
}

// Dequeue elimina y devuelve el primer elemento de la cola.
// En caso de que la lista se encuentre vacía retorna el valor "cero" del tipo T
// y un error indicando que está vacía.
//
// Ejemplo:
//
//	func main() {
//		pendientes := &list.ArrayList[uint32]{}
//		pendientes.Add(0x0100)
//		pendientes.Add(0x0200)
//		direccion, _ := pendientes.Dequeue()
//		fmt.Println("Dirección: ", direccion) //output: 256
//	}
func (list *ArrayList[T]) Dequeue() (T, error) {
	list.mu.Lock() // Bloqueo exclusivo para evitar cambios simultáneos
	defer list.mu.Unlock()

	if len(list.items) == 0 {
		var zero T // Devuelve el valor "cero" del tipo T
		return zero, fmt.Errorf("list is empty")
	}
	valor := list.items[0]
	list.items = list.items[1:]
	return valor, nil
}

// Get devuelve el elemento en el índice proporcionado.
//
// Parámetros:
//   - index: Índice del elemento a obtener.
//
// Ejemplo:
//
//	func main() {
//		pendientes := &ArrayList[uint32]{}
//		pendientes.Add(0x0100)
//		pendientes.Add(0x0200)
//
//		direccion, _ := pendientes.Get(1)
//		fmt.Println("Dirección: ", direccion) //Output: 512
//	}
func (list *ArrayList[T]) Get(index int) (T, error) {
	list.mu.RLock() //Bloqueo de solo lectura: permite otras lecturas concurrentes
	defer list.mu.RUnlock()

	// Validar si el índice está dentro del rango
	if index < 0 || index >= len(list.items) {
		var zero T // Crear un valor cero del tipo genérico T
		return zero, fmt.Errorf("index out of range: %d", index)
	}
	return list.items[index], nil
}

// GetAll retorna una copia de todos los elementos que se encuentran en la lista.
func (list *ArrayList[T]) GetAll() []T {
	list.mu.RLock() //Bloqueo de solo lectura: permite otras lecturas concurrentes
	defer list.mu.RUnlock()

	// Crear una copia del slice para evitar que modificaciones externas afecten la lista interna
	itemsCopy := make([]T, len(list.items))
	copy(itemsCopy, list.items)
	return itemsCopy
}

// IsEmpty indica si la lista se encuentra vacía.
//
// Ejemplo:
//
//	func main() {
//		pendientes := &ArrayList[uint32]{}
//		for !pendientes.IsEmpty() {
//			direccion, _ := pendientes.Dequeue()
//			fmt.Println("Dirección: ", direccion)
//		}
//	}
func (list *ArrayList[T]) IsEmpty() bool {
	list.mu.RLock() //Bloqueo de solo lectura: permite otras lecturas concurrentes
	defer list.mu.RUnlock()

	return len(list.items) == 0
}

// Size devuelve el tamaño de la lista.
//
// Ejemplo
//
//	func main() {
//	    pendientes := &ArrayList[uint32]{}
//
//	    pendientes.Add(0x0100)
//	    pendientes.Add(0x0200)
//
//	    size := pendientes.Size()
//	    fmt.Println("Size: ", size) //output: 2
//	}
func (list *ArrayList[T]) Size() int {
	list.mu.RLock() //Bloqueo de solo lectura: permite otras lecturas concurrentes
	defer list.mu.RUnlock()

	return len(list.items)
}
