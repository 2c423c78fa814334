package solver

import "github.com/vancomm/maze-server/internal/maze"

// BreadthFirst expands the frontier one layer at a time through a
// FIFO queue of parent-linked nodes. On a uniform grid it guarantees
// a shortest path by edge count.
type BreadthFirst struct {
	current *node
	goal    maze.Coord
	queue   []*node
}

func NewBreadthFirst(m *maze.Maze) *BreadthFirst {
	m.Explored.Add(m.Start)
	return &BreadthFirst{
		current: &node{coord: m.Start},
		goal:    m.End,
	}
}

func (s *BreadthFirst) Done() bool {
	return s.current.coord == s.goal
}

func (s *BreadthFirst) queued(c maze.Coord) bool {
	for _, n := range s.queue {
		if n.coord == c {
			return true
		}
	}
	return false
}

func (s *BreadthFirst) Tick(m *maze.Maze) error {
	if s.Done() {
		return nil
	}
	m.HighlightBright.Clear()

	for _, step := range m.ConnectedNeighbours(s.current.coord) {
		if m.Explored.Has(step.Coord) || s.queued(step.Coord) {
			continue
		}
		s.queue = append(s.queue, &node{
			coord:  step.Coord,
			dist:   s.current.dist + 1,
			parent: s.current,
		})
		m.HighlightDark.Add(step.Coord)
	}

	if len(s.queue) == 0 {
		return maze.ErrImpossibleMaze
	}
	s.current = s.queue[0]
	s.queue = s.queue[1:]

	m.Explored.Add(s.current.coord)
	m.HighlightDark.Remove(s.current.coord)
	m.HighlightBright.Add(s.current.coord)
	highlightPath(m, s.current)
	return nil
}
