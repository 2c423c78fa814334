package main

import (
	"fmt"
	"strings"

	"github.com/vancomm/maze-server/internal/maze"
)

// frame renders the maze as ASCII, one text row of walls and one of
// cells per maze row.
func frame(m *maze.Maze) string {
	var b strings.Builder
	for y := 0; y < m.Height; y++ {
		for x := 0; x < m.Width; x++ {
			fmt.Fprint(&b, "+")
			if m.Walls.Has(maze.Wall{X: x, Y: y, Orientation: maze.Horizontal}) {
				fmt.Fprint(&b, "--")
			} else {
				fmt.Fprint(&b, "  ")
			}
		}
		fmt.Fprint(&b, "+\n")

		for x := 0; x < m.Width; x++ {
			if m.Walls.Has(maze.Wall{X: x, Y: y, Orientation: maze.Vertical}) {
				fmt.Fprint(&b, "|")
			} else {
				fmt.Fprint(&b, " ")
			}
			fmt.Fprint(&b, cellMark(m, maze.Coord{X: x, Y: y}))
		}
		if m.Walls.Has(maze.Wall{X: m.Width, Y: y, Orientation: maze.Vertical}) {
			fmt.Fprint(&b, "|")
		}
		fmt.Fprint(&b, "\n")
	}

	for x := 0; x < m.Width; x++ {
		fmt.Fprint(&b, "+")
		if m.Walls.Has(maze.Wall{X: x, Y: m.Height, Orientation: maze.Horizontal}) {
			fmt.Fprint(&b, "--")
		} else {
			fmt.Fprint(&b, "  ")
		}
	}
	fmt.Fprint(&b, "+\n")
	return b.String()
}

func cellMark(m *maze.Maze, c maze.Coord) string {
	switch {
	case c == m.Start:
		return "S "
	case c == m.End:
		return "E "
	case m.HighlightBright.Has(c):
		return "@ "
	case m.HighlightMedium.Has(c):
		return "o "
	case m.HighlightDark.Has(c):
		return ": "
	case m.Explored.Has(c):
		return ". "
	default:
		return "  "
	}
}
