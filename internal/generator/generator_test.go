package generator_test

import (
	"math/rand/v2"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vancomm/maze-server/internal/generator"
	"github.com/vancomm/maze-server/internal/maze"
)

func TestMain(m *testing.M) {
	generator.Log.SetFormatter(&logrus.TextFormatter{
		DisableTimestamp: true,
	})
	m.Run()
}

func newMaze(w, h int) *maze.Maze {
	return maze.New(maze.Grid{Width: w, Height: h, CellWidth: 10, CellHeight: 10})
}

// drain runs a generator to completion, guarding against state
// machines that never finish.
func drain(t *testing.T, name string, m *maze.Maze, r *rand.Rand) generator.Generator {
	t.Helper()
	g, err := generator.New(name, m, r)
	require.NoError(t, err)
	limit := 100*m.Width*m.Height + 100*m.Height + 100
	for i := 0; !g.Done(); i++ {
		require.Less(t, i, limit, "generator %s did not finish", name)
		require.NoError(t, g.Tick(m, r))
	}
	return g
}

// reachable counts the cells connected to the start by removed walls.
func reachable(m *maze.Maze) int {
	seen := maze.CoordSet{}
	seen.Add(m.Start)
	stack := []maze.Coord{m.Start}
	for len(stack) > 0 {
		c := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for _, s := range m.ConnectedNeighbours(c) {
			if !seen.Has(s.Coord) {
				seen.Add(s.Coord)
				stack = append(stack, s.Coord)
			}
		}
	}
	return len(seen)
}

func TestSpanningTree(t *testing.T) {
	t.Parallel()

	dimensions := []struct{ w, h int }{
		{1, 1},
		{1, 8},
		{8, 1},
		{2, 2},
		{5, 4},
		{16, 9},
	}

	for _, name := range generator.Variants() {
		for _, dim := range dimensions {
			m := newMaze(dim.w, dim.h)
			r := rand.New(rand.NewPCG(1, 2))
			drain(t, name, m, r)

			cells := dim.w * dim.h
			// A connected graph with exactly cells-1 edges is a tree.
			assert.Equal(t, cells-1, m.RemovedWalls(),
				"%s on %dx%d: wrong number of removed walls", name, dim.w, dim.h)
			assert.Equal(t, cells, reachable(m),
				"%s on %dx%d: not fully connected", name, dim.w, dim.h)
		}
	}
}

func TestBorderWallsSurvive(t *testing.T) {
	t.Parallel()

	for _, name := range generator.Variants() {
		m := newMaze(6, 5)
		r := rand.New(rand.NewPCG(3, 4))
		drain(t, name, m, r)

		for x := 0; x < m.Width; x++ {
			assert.True(t, m.Walls.Has(maze.Wall{X: x, Y: 0, Orientation: maze.Horizontal}))
			assert.True(t, m.Walls.Has(maze.Wall{X: x, Y: m.Height, Orientation: maze.Horizontal}))
		}
		for y := 0; y < m.Height; y++ {
			assert.True(t, m.Walls.Has(maze.Wall{X: 0, Y: y, Orientation: maze.Vertical}))
			assert.True(t, m.Walls.Has(maze.Wall{X: m.Width, Y: y, Orientation: maze.Vertical}))
		}
	}
}

func TestDeterminism(t *testing.T) {
	t.Parallel()

	for _, name := range generator.Variants() {
		t.Run(name, func(t *testing.T) {
			var (
				m1, m2 = newMaze(9, 7), newMaze(9, 7)
				r1     = rand.New(rand.NewPCG(42, 42))
				r2     = rand.New(rand.NewPCG(42, 42))
			)
			g1, err := generator.New(name, m1, r1)
			require.NoError(t, err)
			g2, err := generator.New(name, m2, r2)
			require.NoError(t, err)

			for i := 0; !g1.Done(); i++ {
				require.Less(t, i, 100_000)
				require.Equal(t, g1.Done(), g2.Done())
				require.NoError(t, g1.Tick(m1, r1))
				require.NoError(t, g2.Tick(m2, r2))
				// Same seed, same sequence of wall removals.
				require.Equal(t, len(m1.Walls), len(m2.Walls), "tick %d diverged", i)
			}
			assert.True(t, g2.Done())
			assert.Equal(t, m1.Walls, m2.Walls)
		})
	}
}

func TestTickAfterDone(t *testing.T) {
	t.Parallel()

	for _, name := range generator.Variants() {
		m := newMaze(4, 4)
		r := rand.New(rand.NewPCG(5, 6))
		g := drain(t, name, m, r)

		before := m.Snapshot()
		for range 3 {
			require.NoError(t, g.Tick(m, r))
		}
		assert.True(t, g.Done())
		assert.Equal(t, before, m.Snapshot(), "%s: tick after done mutated the maze", name)
	}
}

func TestUnsupportedGenerator(t *testing.T) {
	_, err := generator.New("wilson", newMaze(2, 2), rand.New(rand.NewPCG(1, 2)))
	var unsupported generator.UnsupportedError
	require.ErrorAs(t, err, &unsupported)
	assert.Equal(t, "wilson", string(unsupported))
}

func TestBacktracker2x2(t *testing.T) {
	m := newMaze(2, 2)
	r := rand.New(rand.NewPCG(7, 7))
	drain(t, "dfs", m, r)

	assert.Equal(t, 3, m.RemovedWalls())
	assert.Equal(t, 4, reachable(m))
	for y := range 2 {
		for x := range 2 {
			assert.True(t, m.Explored.Has(maze.Coord{X: x, Y: y}))
		}
	}
}

func TestKruskalSkipsCycles(t *testing.T) {
	// On a 2x2 grid every generator removes 3 of the 4 interior
	// walls; Kruskal must leave the fourth in place even though it
	// pops every wall off its list.
	m := newMaze(2, 2)
	r := rand.New(rand.NewPCG(11, 12))
	drain(t, "kruskal", m, r)

	interior := 0
	for _, w := range m.Walls.Walls() {
		if !m.IsBorder(w) {
			interior++
		}
	}
	assert.Equal(t, 1, interior)
}
