package generator

import (
	"math/rand/v2"

	"github.com/vancomm/maze-server/internal/maze"
)

// Backtracker is the recursive backtracker with the recursion made
// explicit: a current cell and a stack, so every Tick is exactly one
// carve or one backtrack.
type Backtracker struct {
	current *maze.Coord
	stack   []maze.Coord
}

// NewBacktracker starts a depth-first carve at the maze's start cell.
func NewBacktracker(m *maze.Maze) *Backtracker {
	start := m.Start
	m.Explored.Add(start)
	return &Backtracker{current: &start}
}

func (g *Backtracker) Done() bool {
	return g.current == nil
}

func (g *Backtracker) availableNeighbour(m *maze.Maze, r *rand.Rand) (maze.Coord, bool) {
	// The order must be reshuffled on every tick; caching it skews
	// the maze toward one direction.
	steps := m.Neighbours(*g.current)
	r.Shuffle(len(steps), func(i, j int) {
		steps[i], steps[j] = steps[j], steps[i]
	})
	for _, s := range steps {
		if !m.Explored.Has(s.Coord) {
			return s.Coord, true
		}
	}
	return maze.Coord{}, false
}

func (g *Backtracker) Tick(m *maze.Maze, r *rand.Rand) error {
	if g.Done() {
		return nil
	}
	m.HighlightBright.Clear()

	current := *g.current
	if next, ok := g.availableNeighbour(m, r); ok {
		m.Explored.Add(next)
		if err := m.Link(current, next); err != nil {
			return err
		}
		g.stack = append(g.stack, current)
		g.current = &next
	} else if n := len(g.stack); n > 0 {
		top := g.stack[n-1]
		g.stack = g.stack[:n-1]
		g.current = &top
	} else {
		g.current = nil
	}

	if g.current != nil {
		m.HighlightBright.Add(*g.current)
	}
	return nil
}
