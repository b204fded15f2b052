// Package idgen genera identificadores sintéticos "{prefijo}-{n}".
//
// Cada Generator tiene su propio contador; los servicios reciben uno por
// constructor. Default existe para código que todavía usa las funciones de
// paquete (GenerateID / ResetIDCounter).
package idgen

import (
	"strconv"
	"sync/atomic"
)

type Generator struct {
	counter atomic.Uint64
}

func New() *Generator {
	return &Generator{}
}

// Next incrementa el contador y devuelve "{prefix}-{n}". El primer valor es 1.
func (g *Generator) Next(prefix string) string {
	n := g.counter.Add(1)
	return prefix + "-" + strconv.FormatUint(n, 10)
}

// Reset vuelve el contador a 0. Solo para aislar tests: en producción
// repetiría ids ya emitidos.
func (g *Generator) Reset() {
	g.counter.Store(0)
}

// Current devuelve el último valor emitido (0 si ninguno).
func (g *Generator) Current() uint64 {
	return g.counter.Load()
}

// Advance sube el contador a n si está por debajo. Se usa al arrancar con
// una base persistente para no repetir ids de una corrida anterior.
func (g *Generator) Advance(n uint64) {
	for {
		cur := g.counter.Load()
		if cur >= n || g.counter.CompareAndSwap(cur, n) {
			return
		}
	}
}

var Default = New()

func GenerateID(prefix string) string {
	return Default.Next(prefix)
}

func ResetIDCounter() {
	Default.Reset()
}
