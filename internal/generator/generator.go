// Package generator implements the maze-building algorithms. Each
// algorithm is a resumable state machine advanced one unit of work at
// a time, so a driver can tick it once per frame or drain it in a
// tight loop with bit-identical results.
package generator

import (
	"fmt"
	"math/rand/v2"
	"slices"

	"github.com/sirupsen/logrus"

	"github.com/vancomm/maze-server/internal/maze"
)

var Log = logrus.New()

// Generator carves a spanning tree over the maze grid. Tick performs
// one unit of work, always completes fully before returning, and is a
// no-op once Done reports true. The random source is threaded in
// explicitly to keep runs reproducible.
type Generator interface {
	Done() bool
	Tick(m *maze.Maze, r *rand.Rand) error
}

// UnsupportedError reports an unknown generator name. It surfaces at
// configuration time, never during ticking.
type UnsupportedError string

func (e UnsupportedError) Error() string {
	return fmt.Sprintf("unsupported generator %q", string(e))
}

// Variants lists every supported generator name.
func Variants() []string {
	return []string{"dfs", "kruskal", "prim", "eller", "hunt-kill"}
}

// Supported reports whether name maps to a generator.
func Supported(name string) bool {
	return slices.Contains(Variants(), name)
}

// New constructs the named generator with its initial state over m.
func New(name string, m *maze.Maze, r *rand.Rand) (Generator, error) {
	switch name {
	case "dfs":
		return NewBacktracker(m), nil
	case "kruskal":
		return NewKruskal(m, r), nil
	case "prim":
		return NewPrim(m), nil
	case "eller":
		return NewEller(), nil
	case "hunt-kill":
		return NewHuntKill(m), nil
	default:
		return nil, UnsupportedError(name)
	}
}
