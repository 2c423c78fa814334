package generator

import (
	"math/rand/v2"

	"github.com/vancomm/maze-server/internal/maze"
)

type huntKillMode int

const (
	killing huntKillMode = iota
	hunting
)

// HuntKill random-walks until it boxes itself in, then hunts row by
// row for the first unexplored cell adjacent to the explored region
// and resumes walking from there. Unlike the backtracker it never
// retraces its steps.
type HuntKill struct {
	mode    huntKillMode
	current maze.Coord
	done    bool

	// topRow is the topmost row not yet known to be fully explored;
	// hunts resume from it instead of row zero.
	topRow  int
	huntRow int
}

func NewHuntKill(m *maze.Maze) *HuntKill {
	m.Explored.Add(m.Start)
	return &HuntKill{current: m.Start}
}

func (g *HuntKill) Done() bool {
	return g.done
}

func (g *HuntKill) Tick(m *maze.Maze, r *rand.Rand) error {
	if g.Done() {
		return nil
	}
	m.HighlightBright.Clear()

	if g.mode == killing {
		return g.killTick(m, r)
	}
	return g.huntTick(m, r)
}

// killTick extends the walk into a random unexplored neighbour, or
// switches to hunting when there is none.
func (g *HuntKill) killTick(m *maze.Maze, r *rand.Rand) error {
	steps := m.Neighbours(g.current)
	r.Shuffle(len(steps), func(i, j int) {
		steps[i], steps[j] = steps[j], steps[i]
	})
	for _, s := range steps {
		if m.Explored.Has(s.Coord) {
			continue
		}
		m.Explored.Add(s.Coord)
		if err := m.Link(g.current, s.Coord); err != nil {
			return err
		}
		g.current = s.Coord
		m.HighlightBright.Add(g.current)
		return nil
	}

	Log.Debugf("hunt-kill: boxed in at %s, hunting from row %d", g.current, g.topRow)
	g.mode = hunting
	g.huntRow = g.topRow
	return nil
}

// huntTick scans a single row for an unexplored cell bordering the
// explored region. The scanned row is exposed as the dark highlight.
func (g *HuntKill) huntTick(m *maze.Maze, r *rand.Rand) error {
	row := g.huntRow
	m.HighlightDark.Clear()

	fullyExplored := true
	for x := 0; x < m.Width; x++ {
		c := maze.Coord{X: x, Y: row}
		m.HighlightDark.Add(c)
		if m.Explored.Has(c) {
			continue
		}
		fullyExplored = false

		steps := m.Neighbours(c)
		r.Shuffle(len(steps), func(i, j int) {
			steps[i], steps[j] = steps[j], steps[i]
		})
		for _, s := range steps {
			if !m.Explored.Has(s.Coord) {
				continue
			}
			m.Explored.Add(c)
			if err := m.Link(c, s.Coord); err != nil {
				return err
			}
			g.current = c
			g.mode = killing
			m.HighlightDark.Clear()
			m.HighlightBright.Add(c)
			return nil
		}
	}

	if fullyExplored && row == g.topRow {
		g.topRow++
	}
	g.huntRow++
	if g.huntRow >= m.Height {
		// A full scan found no candidate: every cell is explored.
		g.done = true
		m.HighlightDark.Clear()
	}
	return nil
}
