package generator

import (
	"math/rand/v2"

	"github.com/vancomm/maze-server/internal/maze"
)

// Prim grows the explored region by carving uniformly random walls
// off a frontier seeded with the start cell's walls.
type Prim struct {
	frontier []maze.Wall
}

func NewPrim(m *maze.Maze) *Prim {
	g := &Prim{}
	m.Explored.Add(m.Start)
	g.addWalls(m, m.Start)
	return g
}

// addWalls pushes c's standing interior walls onto the frontier.
func (g *Prim) addWalls(m *maze.Maze, c maze.Coord) {
	for _, s := range m.Neighbours(c) {
		w := m.WallFor(c, s.Direction)
		if !m.IsBorder(w) && m.Walls.Has(w) {
			g.frontier = append(g.frontier, w)
		}
	}
}

func (g *Prim) Done() bool {
	return len(g.frontier) == 0
}

func (g *Prim) Tick(m *maze.Maze, r *rand.Rand) error {
	if g.Done() {
		return nil
	}
	m.HighlightBright.Clear()

	// The picked wall leaves the frontier whether or not it comes
	// down.
	i := r.IntN(len(g.frontier))
	wall := g.frontier[i]
	g.frontier[i] = g.frontier[len(g.frontier)-1]
	g.frontier = g.frontier[:len(g.frontier)-1]

	a, b := wall.Divides()
	var next maze.Coord
	switch {
	case m.Explored.Has(a) && !m.Explored.Has(b):
		next = b
	case m.Explored.Has(b) && !m.Explored.Has(a):
		next = a
	default:
		// Both sides already explored; removing the wall would close
		// a cycle.
		return nil
	}

	m.Explored.Add(next)
	if err := m.RemoveWall(wall); err != nil {
		return err
	}
	g.addWalls(m, next)
	m.HighlightBright.Add(next)
	return nil
}
