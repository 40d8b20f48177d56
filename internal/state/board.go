package state

import (
	"log"
	"slices"
)

// Board is the live body collection. Insertion order is kept and doubles as
// the pairwise collision order. A Board is owned by the goroutine running the
// simulation and is not safe for concurrent use.
type Board struct {
	bodies []*Body
}

func NewBoard() *Board {
	return &Board{bodies: make([]*Body, 0)}
}

// Add appends a body. The board takes ownership of it.
func (b *Board) Add(body *Body) {
	b.bodies = append(b.bodies, body)
	log.Printf("[BOARD] Body added: %s (%d live)", body.ID, len(b.bodies))
}

// Clear drops every body
func (b *Board) Clear() {
	n := len(b.bodies)
	b.bodies = make([]*Body, 0)
	log.Printf("[BOARD] Cleared %d bodies", n)
}

func (b *Board) Len() int { return len(b.bodies) }

// At returns the i-th body in insertion order
func (b *Board) At(i int) *Body { return b.bodies[i] }

// Bodies returns a snapshot of the collection in insertion order. The slice is
// a copy; the bodies are shared.
func (b *Board) Bodies() []*Body {
	return slices.Clone(b.bodies)
}

// Each calls fn for every body in insertion order
func (b *Board) Each(fn func(i int, body *Body)) {
	for i, body := range b.bodies {
		fn(i, body)
	}
}

// Pairs calls fn once for every unordered pair (i<j) in insertion order.
// This is O(n²); fine for tens to low hundreds of bodies.
func (b *Board) Pairs(fn func(a, c *Body)) {
	for i := 0; i < len(b.bodies); i++ {
		for j := i + 1; j < len(b.bodies); j++ {
			fn(b.bodies[i], b.bodies[j])
		}
	}
}
