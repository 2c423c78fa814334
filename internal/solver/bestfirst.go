package solver

import (
	"sort"

	"github.com/vancomm/maze-server/internal/maze"
)

// scoreFunc ranks a candidate cell given its accumulated distance
// from the start and its Manhattan distance to the goal.
type scoreFunc func(dist, heuristic int) int

// BestFirst is the engine shared by Dijkstra, Greedy and A*: a queue
// kept sorted ascending by score, popped from the front. The three
// algorithms differ only in how they score a candidate.
type BestFirst struct {
	current *node
	goal    maze.Coord
	queue   []*node
	score   scoreFunc
}

// NewDijkstra orders the queue by accumulated distance. With uniform
// edge weights this matches breadth-first search, but the scoring
// stays correct for non-uniform weights.
func NewDijkstra(m *maze.Maze) *BestFirst {
	return newBestFirst(m, func(dist, _ int) int { return dist })
}

// NewGreedy orders the queue purely by the Manhattan heuristic. It
// finds a path fast, with no optimality guarantee.
func NewGreedy(m *maze.Maze) *BestFirst {
	return newBestFirst(m, func(_, heuristic int) int { return heuristic })
}

// NewAStar orders the queue by f = g + h. Manhattan distance is
// admissible on a 4-connected uniform-cost grid, so the path found is
// shortest.
func NewAStar(m *maze.Maze) *BestFirst {
	return newBestFirst(m, func(dist, heuristic int) int { return dist + heuristic })
}

func newBestFirst(m *maze.Maze, score scoreFunc) *BestFirst {
	m.Explored.Add(m.Start)
	return &BestFirst{
		current: &node{coord: m.Start},
		goal:    m.End,
		score:   score,
	}
}

func (s *BestFirst) Done() bool {
	return s.current.coord == s.goal
}

func (s *BestFirst) queued(c maze.Coord) bool {
	for _, n := range s.queue {
		if n.coord == c {
			return true
		}
	}
	return false
}

// insert keeps the queue sorted ascending by score. A new node lands
// after every node with an equal score, so ties pop in insertion
// order.
func (s *BestFirst) insert(n *node) {
	i := sort.Search(len(s.queue), func(i int) bool {
		return s.queue[i].score > n.score
	})
	s.queue = append(s.queue, nil)
	copy(s.queue[i+1:], s.queue[i:])
	s.queue[i] = n
}

func (s *BestFirst) Tick(m *maze.Maze) error {
	if s.Done() {
		return nil
	}
	m.HighlightBright.Clear()

	m.Explored.Add(s.current.coord)
	for _, step := range m.ConnectedNeighbours(s.current.coord) {
		if m.Explored.Has(step.Coord) || s.queued(step.Coord) {
			continue
		}
		dist := s.current.dist + 1
		s.insert(&node{
			coord:  step.Coord,
			dist:   dist,
			score:  s.score(dist, step.Coord.Manhattan(s.goal)),
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
