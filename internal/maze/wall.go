package maze

import "fmt"

// Orientation of a wall segment.
type Orientation int

const (
	Horizontal Orientation = iota
	Vertical
)

func (o Orientation) String() string {
	if o == Horizontal {
		return "horizontal"
	}
	return "vertical"
}

// Wall identifies the boundary between two adjacent cells, or between
// a cell and the outside. A horizontal wall at (x, y) sits on the
// north side of cell (x, y); a vertical wall at (x, y) sits on the
// west side of cell (x, y). Identity is by position and orientation
// only, so the wall east of (x, y) and the wall west of (x+1, y) are
// the same value. Whether a wall lies on the grid border is derived
// via [Grid.IsBorder] rather than stored, keeping Wall usable as a
// map key.
type Wall struct {
	X, Y        int
	Orientation Orientation
}

func (w Wall) String() string {
	return fmt.Sprintf("%s wall at (%d:%d)", w.Orientation, w.X, w.Y)
}

// Divides returns the two cells separated by w. For a border wall one
// of the two falls outside the grid.
func (w Wall) Divides() (Coord, Coord) {
	if w.Orientation == Horizontal {
		return Coord{X: w.X, Y: w.Y - 1}, Coord{X: w.X, Y: w.Y}
	}
	return Coord{X: w.X - 1, Y: w.Y}, Coord{X: w.X, Y: w.Y}
}
