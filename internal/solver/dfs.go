package solver

import "github.com/vancomm/maze-server/internal/maze"

// DepthFirst walks as deep as it can and backtracks by popping its
// stack. It terminates on any connected maze but makes no
// shortest-path promise.
type DepthFirst struct {
	current maze.Coord
	goal    maze.Coord
	stack   []maze.Coord
}

func NewDepthFirst(m *maze.Maze) *DepthFirst {
	m.Explored.Add(m.Start)
	return &DepthFirst{current: m.Start, goal: m.End}
}

func (s *DepthFirst) Done() bool {
	return s.current == s.goal
}

func (s *DepthFirst) availableNeighbour(m *maze.Maze) (maze.Coord, bool) {
	for _, step := range m.ConnectedNeighbours(s.current) {
		if !m.Explored.Has(step.Coord) {
			return step.Coord, true
		}
	}
	return maze.Coord{}, false
}

func (s *DepthFirst) Tick(m *maze.Maze) error {
	if s.Done() {
		return nil
	}
	m.HighlightBright.Clear()

	if next, ok := s.availableNeighbour(m); ok {
		m.Explored.Add(next)
		s.stack = append(s.stack, s.current)
		s.current = next
	} else {
		n := len(s.stack)
		if n == 0 {
			return maze.ErrImpossibleMaze
		}
		s.current = s.stack[n-1]
		s.stack = s.stack[:n-1]
	}

	// The stack plus the current cell is the path back to the start.
	m.HighlightMedium.Clear()
	for _, c := range s.stack {
		m.HighlightMedium.Add(c)
	}
	m.HighlightMedium.Add(s.current)
	m.HighlightBright.Add(s.current)
	return nil
}
