// Package driver owns a maze run: the maze itself plus the generator
// and solver that act on it, advanced one tick at a time. It is the
// sole mutator of the maze; callers either tick it once per frame or
// drain a phase in one synchronous call.
package driver

import (
	"context"
	"errors"
	"math/rand/v2"

	"github.com/vancomm/maze-server/internal/generator"
	"github.com/vancomm/maze-server/internal/maze"
	"github.com/vancomm/maze-server/internal/solver"
)

// Phase of a run.
type Phase int

const (
	Generating Phase = iota
	Solving
	Finished
)

func (p Phase) String() string {
	switch p {
	case Generating:
		return "generating"
	case Solving:
		return "solving"
	default:
		return "finished"
	}
}

// Run drives one maze through generation and solving.
type Run struct {
	Maze *maze.Maze

	gen        generator.Generator
	sol        solver.Solver
	rng        *rand.Rand
	solverName string
	phase      Phase
}

// New builds a run from algorithm names. Unknown names and a maze
// whose start equals its end are rejected here, before any ticking
// starts. The solver itself is constructed when the generation phase
// completes, because its initial state reads the finished maze.
func New(m *maze.Maze, generatorName, solverName string, rng *rand.Rand) (*Run, error) {
	if m.Start == m.End {
		return nil, errors.New("start and end cells must differ")
	}
	gen, err := generator.New(generatorName, m, rng)
	if err != nil {
		return nil, err
	}
	if !solver.Supported(solverName) {
		return nil, solver.UnsupportedError(solverName)
	}
	return &Run{Maze: m, gen: gen, rng: rng, solverName: solverName}, nil
}

func (r *Run) Phase() Phase {
	return r.phase
}

func (r *Run) Done() bool {
	return r.phase == Finished
}

// Tick advances the active algorithm by one unit of work. A tick at a
// phase boundary performs the transition instead. Errors are
// non-transient; the caller logs and halts rather than retrying.
func (r *Run) Tick() error {
	switch r.phase {
	case Generating:
		if !r.gen.Done() {
			return r.gen.Tick(r.Maze, r.rng)
		}
		r.Maze.ResetMarkers()
		sol, err := solver.New(r.solverName, r.Maze)
		if err != nil {
			return err
		}
		r.sol = sol
		r.phase = Solving
		return nil
	case Solving:
		if !r.sol.Done() {
			return r.sol.Tick(r.Maze)
		}
		r.phase = Finished
		return nil
	default:
		return nil
	}
}

// DrainPhase ticks until the current phase completes, checking ctx
// between ticks. There is no in-flight work to cancel mid-tick.
func (r *Run) DrainPhase(ctx context.Context) error {
	phase := r.phase
	for r.phase == phase && !r.Done() {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := r.Tick(); err != nil {
			return err
		}
	}
	return nil
}

// SeededRand expands an optional 4-byte seed into the two PCG state
// words. A nil seed yields an unpredictable stream; a fixed seed
// makes every generator tick sequence reproducible bit for bit.
func SeededRand(seed *uint32) *rand.Rand {
	if seed == nil {
		return rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	s := uint64(*seed)
	return rand.New(rand.NewPCG(s, s<<32|s))
}
