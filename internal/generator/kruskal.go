package generator

import (
	"math/rand/v2"

	"github.com/vancomm/maze-server/internal/maze"
)

// Kruskal pops pre-shuffled interior walls and unions the disjoint
// sets of the two cells each wall divides. A wall comes down only
// when the union actually merges two sets; a wall inside a single set
// would close a cycle and stays up.
type Kruskal struct {
	walls []maze.Wall
	sets  []maze.CoordSet
}

// NewKruskal shuffles the full interior wall list once and partitions
// the cells into singleton sets. The shuffle fully determines
// tie-breaking; there is no further randomness inside the union step.
func NewKruskal(m *maze.Maze, r *rand.Rand) *Kruskal {
	walls := m.InteriorWalls()
	r.Shuffle(len(walls), func(i, j int) {
		walls[i], walls[j] = walls[j], walls[i]
	})

	sets := make([]maze.CoordSet, 0, m.Width*m.Height)
	for y := 0; y < m.Height; y++ {
		for x := 0; x < m.Width; x++ {
			sets = append(sets, maze.CoordSet{{X: x, Y: y}: {}})
		}
	}
	return &Kruskal{walls: walls, sets: sets}
}

func (g *Kruskal) Done() bool {
	return len(g.walls) == 0 || len(g.sets) <= 1
}

func (g *Kruskal) setOf(c maze.Coord) (int, error) {
	for i, s := range g.sets {
		if s.Has(c) {
			return i, nil
		}
	}
	return 0, maze.MissingSetError{Coord: c}
}

func (g *Kruskal) Tick(m *maze.Maze, r *rand.Rand) error {
	if g.Done() {
		return nil
	}
	m.HighlightBright.Clear()

	wall := g.walls[len(g.walls)-1]
	g.walls = g.walls[:len(g.walls)-1]

	a, b := wall.Divides()
	ia, err := g.setOf(a)
	if err != nil {
		return err
	}
	ib, err := g.setOf(b)
	if err != nil {
		return err
	}
	if ia == ib {
		return nil
	}

	for c := range g.sets[ib] {
		g.sets[ia].Add(c)
	}
	g.sets = append(g.sets[:ib], g.sets[ib+1:]...)

	if err := m.RemoveWall(wall); err != nil {
		return err
	}
	m.Explored.Add(a)
	m.Explored.Add(b)
	m.HighlightBright.Add(a)
	m.HighlightBright.Add(b)
	return nil
}
