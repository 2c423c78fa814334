package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/vancomm/maze-server/internal/driver"
	"github.com/vancomm/maze-server/internal/generator"
	"github.com/vancomm/maze-server/internal/maze"
	"github.com/vancomm/maze-server/internal/solver"
)

var log = logrus.New()

var (
	generatorName      string
	solverName         string
	width              int
	height             int
	cellSize           int
	startFlag          string
	endFlag            string
	randomEnds         bool
	ups                int
	seedFlag           uint
	noInteractiveGen   bool
	noInteractiveSolve bool
	noPrintFps         bool
)

func init() {
	generatorUsage := "maze generation algorithm, one of: " + strings.Join(generator.Variants(), ", ")
	flag.StringVar(&generatorName, "generator", "dfs", generatorUsage)
	flag.StringVar(&generatorName, "g", "dfs", generatorUsage+" (shorthand)")

	solverUsage := "maze solving algorithm, one of: " + strings.Join(solver.Variants(), ", ")
	flag.StringVar(&solverName, "solver", "astar", solverUsage)
	flag.StringVar(&solverName, "s", "astar", solverUsage+" (shorthand)")

	flag.IntVar(&width, "width", 32, "maze width in cells")
	flag.IntVar(&width, "w", 32, "maze width in cells (shorthand)")
	flag.IntVar(&height, "height", 18, "maze height in cells")
	flag.IntVar(&cellSize, "cell-size", 40, "cell size in pixels")
	flag.StringVar(&startFlag, "start", "", "starting point of the maze as x:y")
	flag.StringVar(&endFlag, "end", "", "ending point of the maze as x:y")
	flag.BoolVar(&randomEnds, "random-ends", false, "pick random start and end cells")
	flag.IntVar(&ups, "ups", 60, "updates per second in interactive mode")
	flag.UintVar(&seedFlag, "seed", 0, "generate the maze from a static seed")
	flag.BoolVar(&noInteractiveGen, "no-interactive-gen", false, "generate the maze without animation")
	flag.BoolVar(&noInteractiveSolve, "no-interactive-solve", false, "solve the maze without animation")
	flag.BoolVar(&noPrintFps, "no-print-fps", false, "do not report the average tick rate")
}

func main() {
	flag.Parse()

	if width < 1 || height < 1 {
		log.Fatal("maze dimensions must be positive")
	}
	if ups < 1 {
		log.Fatal("ups must be positive")
	}

	var seed *uint32
	flag.Visit(func(f *flag.Flag) {
		if f.Name == "seed" {
			s := uint32(seedFlag)
			seed = &s
		}
	})
	rng := driver.SeededRand(seed)

	m := maze.New(maze.Grid{
		Width: width, Height: height,
		CellWidth: cellSize, CellHeight: cellSize,
	})
	if randomEnds {
		m.RandomEnds(rng)
	}
	if startFlag != "" {
		c, err := maze.ParseCoord(startFlag)
		if err != nil {
			log.Fatal("start: ", err)
		}
		if !m.Contains(c) {
			log.Fatalf("start %s is outside the %dx%d maze", c, width, height)
		}
		m.Start = c
	}
	if endFlag != "" {
		c, err := maze.ParseCoord(endFlag)
		if err != nil {
			log.Fatal("end: ", err)
		}
		if !m.Contains(c) {
			log.Fatalf("end %s is outside the %dx%d maze", c, width, height)
		}
		m.End = c
	}

	run, err := driver.New(m, generatorName, solverName, rng)
	if err != nil {
		log.Fatal(err)
	}

	ctx, stop := signal.NotifyContext(
		context.Background(),
		os.Interrupt, syscall.SIGTERM,
	)
	defer stop()

	started := time.Now()
	ticks := 0

	if err := runPhase(ctx, run, &ticks, !noInteractiveGen); err != nil {
		log.Fatal("generation: ", err)
	}
	if err := runPhase(ctx, run, &ticks, !noInteractiveSolve); err != nil {
		log.Fatal("solving: ", err)
	}

	fmt.Print(frame(run.Maze))

	if !noPrintFps {
		elapsed := time.Since(started)
		log.Infof("%d ticks in %s (%.1f ticks/s)",
			ticks, elapsed.Round(time.Millisecond),
			float64(ticks)/elapsed.Seconds())
	}
}

// runPhase advances the run until the current phase completes, either
// frame by frame at the configured rate or in one tight loop.
func runPhase(ctx context.Context, run *driver.Run, ticks *int, interactive bool) error {
	phase := run.Phase()

	if !interactive {
		for run.Phase() == phase && !run.Done() {
			if err := ctx.Err(); err != nil {
				return err
			}
			if err := run.Tick(); err != nil {
				return err
			}
			*ticks++
		}
		return nil
	}

	ticker := time.NewTicker(time.Second / time.Duration(ups))
	defer ticker.Stop()

	for run.Phase() == phase && !run.Done() {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			if err := run.Tick(); err != nil {
				return err
			}
			*ticks++
			fmt.Print("\033[H\033[2J")
			fmt.Print(frame(run.Maze))
		}
	}
	return nil
}
