package generator

import (
	"math/rand/v2"

	"github.com/vancomm/maze-server/internal/maze"
)

type ellerPhase int

const (
	ellerHorizontal ellerPhase = iota
	ellerVertical
)

// Eller carves the maze one row at a time. A horizontal sub-phase
// walks the row deciding, cell by cell, whether to merge with the
// right neighbour's set; a vertical sub-phase walks the same row
// carrying each set down to the next row at least once. Merges are
// forced on the last row and a carry is forced when a set reaches its
// last row member without having carried; these two rules are what
// make the finished maze a single connected tree.
type Eller struct {
	row, col int
	phase    ellerPhase
	done     bool

	nextSet int
	setOf   map[maze.Coord]int
	members map[int][]maze.Coord
	// carried tracks, per set, whether the current row has already
	// carved downward. It resets at the start of every vertical
	// sub-phase.
	carried map[int]bool
}

func NewEller() *Eller {
	return &Eller{
		setOf:   make(map[maze.Coord]int),
		members: make(map[int][]maze.Coord),
		carried: make(map[int]bool),
	}
}

func (g *Eller) Done() bool {
	return g.done
}

func (g *Eller) ensureSet(c maze.Coord) int {
	if id, ok := g.setOf[c]; ok {
		return id
	}
	g.nextSet++
	g.setOf[c] = g.nextSet
	g.members[g.nextSet] = []maze.Coord{c}
	return g.nextSet
}

// merge renames every member of the second set into the first.
func (g *Eller) merge(into, from int) {
	for _, c := range g.members[from] {
		g.setOf[c] = into
	}
	g.members[into] = append(g.members[into], g.members[from]...)
	delete(g.members, from)
	if g.carried[from] {
		g.carried[into] = true
	}
	delete(g.carried, from)
}

// lastMemberInRow reports whether no member of c's set sits to the
// right of c in the same row.
func (g *Eller) lastMemberInRow(c maze.Coord) bool {
	for _, member := range g.members[g.setOf[c]] {
		if member.Y == c.Y && member.X > c.X {
			return false
		}
	}
	return true
}

func (g *Eller) Tick(m *maze.Maze, r *rand.Rand) error {
	if g.Done() {
		return nil
	}
	m.HighlightBright.Clear()

	if g.phase == ellerHorizontal {
		return g.horizontalTick(m, r)
	}
	return g.verticalTick(m, r)
}

func (g *Eller) horizontalTick(m *maze.Maze, r *rand.Rand) error {
	if g.col < m.Width-1 {
		c := maze.Coord{X: g.col, Y: g.row}
		right := maze.Coord{X: g.col + 1, Y: g.row}
		idc := g.ensureSet(c)
		idr := g.ensureSet(right)

		mergeNow := g.row == m.Height-1 || r.IntN(2) == 0
		if mergeNow && idc != idr {
			if err := m.Link(c, right); err != nil {
				return err
			}
			g.merge(idc, idr)
			m.Explored.Add(c)
			m.Explored.Add(right)
		}
		m.HighlightBright.Add(c)
		g.col++
	}

	if g.col >= m.Width-1 {
		if g.row == m.Height-1 {
			g.done = true
			return nil
		}
		g.phase = ellerVertical
		g.col = 0
		clear(g.carried)
	}
	return nil
}

func (g *Eller) verticalTick(m *maze.Maze, r *rand.Rand) error {
	c := maze.Coord{X: g.col, Y: g.row}
	id := g.ensureSet(c)

	forced := !g.carried[id] && g.lastMemberInRow(c)
	if forced || r.IntN(2) == 0 {
		below := maze.Coord{X: g.col, Y: g.row + 1}
		if err := m.Link(c, below); err != nil {
			return err
		}
		g.setOf[below] = id
		g.members[id] = append(g.members[id], below)
		g.carried[id] = true
		m.Explored.Add(c)
		m.Explored.Add(below)
	}
	m.HighlightBright.Add(c)

	g.col++
	if g.col >= m.Width {
		Log.Debugf("eller: row %d carried down", g.row)
		g.row++
		g.col = 0
		g.phase = ellerHorizontal
	}
	return nil
}
