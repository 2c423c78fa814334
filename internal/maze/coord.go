package maze

import "fmt"

// Coord addresses a single cell of the grid. A coordinate is valid
// for a Grid g when 0 <= X < g.Width and 0 <= Y < g.Height.
type Coord struct {
	X int `json:"x"`
	Y int `json:"y"`
}

func (c Coord) String() string {
	return fmt.Sprintf("(%d:%d)", c.X, c.Y)
}

// ParseCoord reads a coordinate in "x:y" form.
func ParseCoord(s string) (Coord, error) {
	var c Coord
	if _, err := fmt.Sscanf(s, "%d:%d", &c.X, &c.Y); err != nil {
		return Coord{}, fmt.Errorf("coordinates must look like x:y: %w", err)
	}
	return c, nil
}

// Manhattan returns |dx| + |dy| between c and other.
func (c Coord) Manhattan(other Coord) int {
	return absDiff(c.X, other.X) + absDiff(c.Y, other.Y)
}

func absDiff(x, y int) int {
	if x > y {
		return x - y
	}
	return y - x
}

// Direction labels a Coord-to-Coord adjacency. It is never stored as
// maze state.
type Direction int

const (
	North Direction = iota
	East
	South
	West
)

func (d Direction) String() string {
	switch d {
	case North:
		return "north"
	case East:
		return "east"
	case South:
		return "south"
	default:
		return "west"
	}
}

func (d Direction) delta() (dx, dy int) {
	switch d {
	case North:
		return 0, -1
	case East:
		return 1, 0
	case South:
		return 0, 1
	default:
		return -1, 0
	}
}
