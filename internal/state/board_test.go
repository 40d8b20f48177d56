package state

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"DriftBoard/internal/geom"
)

func TestBoardKeepsInsertionOrder(t *testing.T) {
	board := NewBoard()
	a := boxBody(0, 0, 5, 5, geom.Vec{})
	b := boxBody(10, 0, 5, 5, geom.Vec{})
	c := boxBody(20, 0, 5, 5, geom.Vec{})
	board.Add(a)
	board.Add(b)
	board.Add(c)

	assert.Equal(t, 3, board.Len())
	assert.Equal(t, []*Body{a, b, c}, board.Bodies())
	assert.Same(t, b, board.At(1))

	var order []*Body
	board.Each(func(_ int, body *Body) { order = append(order, body) })
	assert.Equal(t, []*Body{a, b, c}, order)
}

func TestBoardPairsVisitsEachPairOnce(t *testing.T) {
	board := NewBoard()
	for i := 0; i < 5; i++ {
		board.Add(boxBody(float64(i*10), 0, 5, 5, geom.Vec{}))
	}

	seen := make(map[[2]string]int)
	var first [2]string
	board.Pairs(func(a, b *Body) {
		key := [2]string{a.ID, b.ID}
		if len(seen) == 0 {
			first = key
		}
		seen[key]++
		_, reversed := seen[[2]string{b.ID, a.ID}]
		assert.False(t, reversed)
	})

	assert.Len(t, seen, 10)
	for _, n := range seen {
		assert.Equal(t, 1, n)
	}
	assert.Equal(t, [2]string{board.At(0).ID, board.At(1).ID}, first)
}

func TestBoardClear(t *testing.T) {
	for _, n := range []int{0, 1, 25} {
		board := NewBoard()
		for i := 0; i < n; i++ {
			board.Add(boxBody(0, 0, 5, 5, geom.Vec{}))
		}
		board.Clear()
		assert.Equal(t, 0, board.Len())
	}
}

func TestBodiesIsASnapshot(t *testing.T) {
	board := NewBoard()
	board.Add(boxBody(0, 0, 5, 5, geom.Vec{}))

	snap := board.Bodies()
	board.Clear()
	assert.Len(t, snap, 1)
}
