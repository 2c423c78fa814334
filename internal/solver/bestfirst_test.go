package solver

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vancomm/maze-server/internal/maze"
)

func TestInsertKeepsEqualScoresInOrder(t *testing.T) {
	s := &BestFirst{}

	s.insert(&node{coord: maze.Coord{X: 0}, score: 5})
	s.insert(&node{coord: maze.Coord{X: 1}, score: 3})
	s.insert(&node{coord: maze.Coord{X: 2}, score: 5})
	s.insert(&node{coord: maze.Coord{X: 3}, score: 3})
	s.insert(&node{coord: maze.Coord{X: 4}, score: 4})
	s.insert(&node{coord: maze.Coord{X: 5}, score: 3})

	var got []maze.Coord
	for _, n := range s.queue {
		got = append(got, n.coord)
	}
	// Equal scores keep their insertion order.
	want := []maze.Coord{
		{X: 1}, {X: 3}, {X: 5}, // score 3
		{X: 4},                 // score 4
		{X: 0}, {X: 2},         // score 5
	}
	assert.Equal(t, want, got)
}
