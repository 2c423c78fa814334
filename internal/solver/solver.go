// Package solver implements the path-finding algorithms. Like the
// generators they are resumable state machines ticked by a driver;
// unlike the generators they are fully deterministic given the maze
// and consume no random source.
//
// Every solver republishes the highlight sets on each tick: bright is
// the current position, dark is the frontier, and medium is the path
// from the current position back to the start, rebuilt by walking
// parent links.
package solver

import (
	"fmt"
	"slices"

	"github.com/sirupsen/logrus"

	"github.com/vancomm/maze-server/internal/maze"
)

var Log = logrus.New()

// Solver advances one unit of work per Tick toward the maze's end
// cell. Tick is a no-op once Done reports true and returns
// [maze.ErrImpossibleMaze] when the frontier empties first.
type Solver interface {
	Done() bool
	Tick(m *maze.Maze) error
}

// UnsupportedError reports an unknown solver name. It surfaces at
// configuration time, never during ticking.
type UnsupportedError string

func (e UnsupportedError) Error() string {
	return fmt.Sprintf("unsupported solver %q", string(e))
}

// Variants lists every supported solver name.
func Variants() []string {
	return []string{"dfs", "bfs", "dijkstra", "greedy", "astar"}
}

// Supported reports whether name maps to a solver.
func Supported(name string) bool {
	return slices.Contains(Variants(), name)
}

// New constructs the named solver positioned at m's start cell. The
// maze's standing walls are expected to already contain at least one
// start-to-end path.
func New(name string, m *maze.Maze) (Solver, error) {
	switch name {
	case "dfs":
		return NewDepthFirst(m), nil
	case "bfs":
		return NewBreadthFirst(m), nil
	case "dijkstra":
		return NewDijkstra(m), nil
	case "greedy":
		return NewGreedy(m), nil
	case "astar":
		return NewAStar(m), nil
	default:
		return nil, UnsupportedError(name)
	}
}

// node is one link of a parent chain used for path reconstruction.
// Children point at parents and ancestors are never mutated, so
// chains may share tails freely.
type node struct {
	coord  maze.Coord
	dist   int
	score  int
	parent *node
}

// highlightPath republishes the medium highlight as the parent-chain
// walk from n back to the root. It is cleared and rebuilt rather than
// maintained incrementally.
func highlightPath(m *maze.Maze, n *node) {
	m.HighlightMedium.Clear()
	for ; n != nil; n = n.parent {
		m.HighlightMedium.Add(n.coord)
	}
}
