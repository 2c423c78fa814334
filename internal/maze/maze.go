// Package maze holds the grid topology and the mutable maze model
// shared by the generation and solving state machines. The model is
// owned by a single driver for the lifetime of a run and mutated by
// exactly one algorithm at a time; renderers only read snapshots.
package maze

import "math/rand/v2"

// Maze is the shared model: the walls still standing, the start and
// end cells, and the marker sets that expose algorithm progress to a
// renderer.
type Maze struct {
	Grid

	Start, End Coord

	// Walls shrinks monotonically during generation and never
	// regrows.
	Walls WallSet

	// Explored and the three highlight tiers are observational only.
	// The active algorithm rewrites the highlights every tick;
	// HighlightBright reflects "active this tick", never history.
	Explored        CoordSet
	HighlightBright CoordSet
	HighlightMedium CoordSet
	HighlightDark   CoordSet
}

// New builds a maze over g with every wall standing. Start defaults
// to the north-west corner and end to the south-east corner.
func New(g Grid) *Maze {
	m := &Maze{
		Grid:            g,
		Start:           Coord{X: 0, Y: 0},
		End:             Coord{X: g.Width - 1, Y: g.Height - 1},
		Walls:           make(WallSet, g.WallCount()),
		Explored:        make(CoordSet),
		HighlightBright: make(CoordSet),
		HighlightMedium: make(CoordSet),
		HighlightDark:   make(CoordSet),
	}
	for y := 0; y <= g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			m.Walls.Add(Wall{X: x, Y: y, Orientation: Horizontal})
		}
	}
	for y := 0; y < g.Height; y++ {
		for x := 0; x <= g.Width; x++ {
			m.Walls.Add(Wall{X: x, Y: y, Orientation: Vertical})
		}
	}
	return m
}

// RandomEnds picks distinct random start and end cells. Grids with a
// single cell keep their defaults.
func (m *Maze) RandomEnds(r *rand.Rand) {
	if m.Width*m.Height < 2 {
		return
	}
	m.Start = Coord{X: r.IntN(m.Width), Y: r.IntN(m.Height)}
	m.End = m.Start
	for m.End == m.Start {
		m.End = Coord{X: r.IntN(m.Width), Y: r.IntN(m.Height)}
	}
}

// RemoveWall knocks down a standing wall. Removing a border wall is a
// contract violation.
func (m *Maze) RemoveWall(w Wall) error {
	if m.IsBorder(w) {
		return BorderWallError{Wall: w}
	}
	m.Walls.Remove(w)
	return nil
}

// Link removes the wall between two adjacent cells.
func (m *Maze) Link(a, b Coord) error {
	w, err := m.WallBetween(a, b)
	if err != nil {
		return err
	}
	return m.RemoveWall(w)
}

// Connected reports whether the wall between two adjacent cells has
// been removed.
func (m *Maze) Connected(a, b Coord) bool {
	w, err := m.WallBetween(a, b)
	return err == nil && !m.Walls.Has(w)
}

// ConnectedNeighbours returns the neighbours of c reachable without
// crossing a standing wall, in North, East, South, West order.
func (m *Maze) ConnectedNeighbours(c Coord) []Step {
	var steps []Step
	for _, s := range m.Neighbours(c) {
		if !m.Walls.Has(m.WallFor(c, s.Direction)) {
			steps = append(steps, s)
		}
	}
	return steps
}

// RemovedWalls counts the walls knocked down so far. A finished
// spanning tree has removed exactly Width*Height - 1 of them.
func (m *Maze) RemovedWalls() int {
	return m.WallCount() - len(m.Walls)
}

// ResetMarkers clears the explored and highlight sets, typically
// between the generation and solving phases.
func (m *Maze) ResetMarkers() {
	m.Explored.Clear()
	m.HighlightBright.Clear()
	m.HighlightMedium.Clear()
	m.HighlightDark.Clear()
}

// Snapshot is the renderer-facing view of a maze: a flat value set to
// be redrawn each frame. Walls are pixel segments computed from the
// grid's cell dimensions.
type Snapshot struct {
	Width           int          `json:"width"`
	Height          int          `json:"height"`
	CellWidth       int          `json:"cellWidth"`
	CellHeight      int          `json:"cellHeight"`
	Start           Coord        `json:"start"`
	End             Coord        `json:"end"`
	Walls           [][4]float64 `json:"walls"`
	Explored        []Coord      `json:"explored"`
	HighlightBright []Coord      `json:"highlightBright"`
	HighlightMedium []Coord      `json:"highlightMedium"`
	HighlightDark   []Coord      `json:"highlightDark"`
}

// Snapshot captures the current state as plain values. The result
// shares nothing with the maze and is safe to hand to another
// goroutine.
func (m *Maze) Snapshot() Snapshot {
	walls := m.Walls.Walls()
	segments := make([][4]float64, len(walls))
	for i, w := range walls {
		segments[i] = m.Segment(w)
	}
	return Snapshot{
		Width:           m.Width,
		Height:          m.Height,
		CellWidth:       m.CellWidth,
		CellHeight:      m.CellHeight,
		Start:           m.Start,
		End:             m.End,
		Walls:           segments,
		Explored:        m.Explored.Coords(),
		HighlightBright: m.HighlightBright.Coords(),
		HighlightMedium: m.HighlightMedium.Coords(),
		HighlightDark:   m.HighlightDark.Coords(),
	}
}
