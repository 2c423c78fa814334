package maze_test

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vancomm/maze-server/internal/maze"
)

func testGrid(w, h int) maze.Grid {
	return maze.Grid{Width: w, Height: h, CellWidth: 10, CellHeight: 10}
}

func TestNeighbours(t *testing.T) {
	g := testGrid(3, 3)

	steps := g.Neighbours(maze.Coord{X: 1, Y: 1})
	require.Len(t, steps, 4)
	assert.Equal(t, maze.North, steps[0].Direction)
	assert.Equal(t, maze.East, steps[1].Direction)
	assert.Equal(t, maze.South, steps[2].Direction)
	assert.Equal(t, maze.West, steps[3].Direction)
	assert.Equal(t, maze.Coord{X: 1, Y: 0}, steps[0].Coord)
	assert.Equal(t, maze.Coord{X: 2, Y: 1}, steps[1].Coord)

	corner := g.Neighbours(maze.Coord{X: 0, Y: 0})
	require.Len(t, corner, 2)
	assert.Equal(t, maze.East, corner[0].Direction)
	assert.Equal(t, maze.South, corner[1].Direction)

	_, ok := g.Neighbour(maze.Coord{X: 0, Y: 0}, maze.North)
	assert.False(t, ok)
	_, ok = g.Neighbour(maze.Coord{X: 2, Y: 2}, maze.East)
	assert.False(t, ok)
}

func TestWallIdentityIsShared(t *testing.T) {
	g := testGrid(4, 4)
	c := maze.Coord{X: 1, Y: 1}

	east, _ := g.Neighbour(c, maze.East)
	assert.Equal(t, g.WallFor(c, maze.East), g.WallFor(east, maze.West))

	south, _ := g.Neighbour(c, maze.South)
	assert.Equal(t, g.WallFor(c, maze.South), g.WallFor(south, maze.North))
}

func TestIsBorder(t *testing.T) {
	g := testGrid(3, 2)

	assert.True(t, g.IsBorder(g.WallFor(maze.Coord{X: 0, Y: 0}, maze.North)))
	assert.True(t, g.IsBorder(g.WallFor(maze.Coord{X: 0, Y: 0}, maze.West)))
	assert.True(t, g.IsBorder(g.WallFor(maze.Coord{X: 2, Y: 1}, maze.East)))
	assert.True(t, g.IsBorder(g.WallFor(maze.Coord{X: 2, Y: 1}, maze.South)))

	assert.False(t, g.IsBorder(g.WallFor(maze.Coord{X: 0, Y: 0}, maze.East)))
	assert.False(t, g.IsBorder(g.WallFor(maze.Coord{X: 0, Y: 0}, maze.South)))
}

func TestInteriorWalls(t *testing.T) {
	g := testGrid(4, 3)
	walls := g.InteriorWalls()
	assert.Len(t, walls, 2*4*3-4-3)
	for _, w := range walls {
		assert.False(t, g.IsBorder(w), "%s should not be border", w)
	}
}

func TestNewMazeHasEveryWall(t *testing.T) {
	m := maze.New(testGrid(5, 4))
	assert.Len(t, m.Walls, 5*(4+1)+4*(5+1))
	assert.Equal(t, 0, m.RemovedWalls())
	assert.Equal(t, maze.Coord{X: 0, Y: 0}, m.Start)
	assert.Equal(t, maze.Coord{X: 4, Y: 3}, m.End)
}

func TestLink(t *testing.T) {
	m := maze.New(testGrid(3, 3))
	a := maze.Coord{X: 0, Y: 0}
	b := maze.Coord{X: 1, Y: 0}

	assert.False(t, m.Connected(a, b))
	require.NoError(t, m.Link(a, b))
	assert.True(t, m.Connected(a, b))
	assert.Equal(t, 1, m.RemovedWalls())

	steps := m.ConnectedNeighbours(a)
	require.Len(t, steps, 1)
	assert.Equal(t, b, steps[0].Coord)
}

func TestLinkNotNeighbours(t *testing.T) {
	m := maze.New(testGrid(3, 3))

	err := m.Link(maze.Coord{X: 0, Y: 0}, maze.Coord{X: 2, Y: 2})
	var notNeighbours maze.NotNeighboursError
	require.ErrorAs(t, err, &notNeighbours)
	assert.Equal(t, maze.Coord{X: 0, Y: 0}, notNeighbours.A)

	// Diagonals are not adjacent either.
	err = m.Link(maze.Coord{X: 0, Y: 0}, maze.Coord{X: 1, Y: 1})
	require.ErrorAs(t, err, &notNeighbours)
}

func TestRemoveBorderWall(t *testing.T) {
	m := maze.New(testGrid(3, 3))

	err := m.RemoveWall(m.WallFor(maze.Coord{X: 0, Y: 0}, maze.North))
	var borderWall maze.BorderWallError
	require.ErrorAs(t, err, &borderWall)
	assert.Len(t, m.Walls, m.WallCount())
}

func TestManhattan(t *testing.T) {
	assert.Equal(t, 0, maze.Coord{X: 2, Y: 2}.Manhattan(maze.Coord{X: 2, Y: 2}))
	assert.Equal(t, 7, maze.Coord{X: 0, Y: 0}.Manhattan(maze.Coord{X: 3, Y: 4}))
	assert.Equal(t, 7, maze.Coord{X: 3, Y: 4}.Manhattan(maze.Coord{X: 0, Y: 0}))
}

func TestParseCoord(t *testing.T) {
	c, err := maze.ParseCoord("3:14")
	require.NoError(t, err)
	assert.Equal(t, maze.Coord{X: 3, Y: 14}, c)

	_, err = maze.ParseCoord("nonsense")
	assert.Error(t, err)
}

func TestRandomEnds(t *testing.T) {
	r := rand.New(rand.NewPCG(1, 2))
	for range 20 {
		m := maze.New(testGrid(2, 2))
		m.RandomEnds(r)
		assert.NotEqual(t, m.Start, m.End)
		assert.True(t, m.Contains(m.Start))
		assert.True(t, m.Contains(m.End))
	}

	// A single cell keeps its defaults instead of spinning forever.
	m := maze.New(testGrid(1, 1))
	m.RandomEnds(r)
	assert.Equal(t, maze.Coord{X: 0, Y: 0}, m.Start)
}

func TestSegment(t *testing.T) {
	g := maze.Grid{Width: 3, Height: 3, CellWidth: 40, CellHeight: 20}

	h := maze.Wall{X: 1, Y: 2, Orientation: maze.Horizontal}
	assert.Equal(t, [4]float64{40, 40, 80, 40}, g.Segment(h))

	v := maze.Wall{X: 2, Y: 1, Orientation: maze.Vertical}
	assert.Equal(t, [4]float64{80, 20, 80, 40}, g.Segment(v))
}

func TestSnapshot(t *testing.T) {
	m := maze.New(testGrid(2, 2))
	require.NoError(t, m.Link(maze.Coord{X: 0, Y: 0}, maze.Coord{X: 1, Y: 0}))
	m.Explored.Add(maze.Coord{X: 0, Y: 0})
	m.HighlightBright.Add(maze.Coord{X: 1, Y: 0})

	snap := m.Snapshot()
	assert.Equal(t, 2, snap.Width)
	assert.Len(t, snap.Walls, m.WallCount()-1)
	assert.Equal(t, []maze.Coord{{X: 0, Y: 0}}, snap.Explored)
	assert.Equal(t, []maze.Coord{{X: 1, Y: 0}}, snap.HighlightBright)

	// Mutating the maze must not affect an existing snapshot.
	m.Explored.Add(maze.Coord{X: 1, Y: 1})
	assert.Len(t, snap.Explored, 1)
}

func TestResetMarkers(t *testing.T) {
	m := maze.New(testGrid(2, 2))
	m.Explored.Add(maze.Coord{X: 0, Y: 0})
	m.HighlightBright.Add(maze.Coord{X: 0, Y: 0})
	m.HighlightMedium.Add(maze.Coord{X: 1, Y: 0})
	m.HighlightDark.Add(maze.Coord{X: 1, Y: 1})

	m.ResetMarkers()
	assert.Empty(t, m.Explored)
	assert.Empty(t, m.HighlightBright)
	assert.Empty(t, m.HighlightMedium)
	assert.Empty(t, m.HighlightDark)
}
