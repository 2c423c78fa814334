package maze

// Grid describes the maze topology: its size in cells and the pixel
// size of a single cell. Pixel sizes only matter for computing wall
// segment positions for a renderer; the algorithms never read them.
type Grid struct {
	Width, Height         int
	CellWidth, CellHeight int
}

// Contains reports whether c is a valid cell of the grid.
func (g Grid) Contains(c Coord) bool {
	return c.X >= 0 && c.X < g.Width && c.Y >= 0 && c.Y < g.Height
}

// Step couples a neighbouring cell with the direction that reaches it.
type Step struct {
	Coord     Coord
	Direction Direction
}

// Neighbour returns the cell adjacent to c in the given direction, or
// false when the candidate falls outside the grid.
func (g Grid) Neighbour(c Coord, d Direction) (Coord, bool) {
	dx, dy := d.delta()
	candidate := Coord{X: c.X + dx, Y: c.Y + dy}
	if !g.Contains(candidate) {
		return Coord{}, false
	}
	return candidate, true
}

// Neighbours returns the valid neighbours of c in North, East, South,
// West order. Consumers that want a random order shuffle the result
// themselves.
func (g Grid) Neighbours(c Coord) []Step {
	steps := make([]Step, 0, 4)
	for _, d := range [4]Direction{North, East, South, West} {
		if n, ok := g.Neighbour(c, d); ok {
			steps = append(steps, Step{Coord: n, Direction: d})
		}
	}
	return steps
}

// WallFor returns the wall bounding c on the given side. The mapping
// is symmetric: WallFor(c, East) equals WallFor of c's eastern
// neighbour facing West.
func (g Grid) WallFor(c Coord, d Direction) Wall {
	switch d {
	case North:
		return Wall{X: c.X, Y: c.Y, Orientation: Horizontal}
	case South:
		return Wall{X: c.X, Y: c.Y + 1, Orientation: Horizontal}
	case West:
		return Wall{X: c.X, Y: c.Y, Orientation: Vertical}
	default:
		return Wall{X: c.X + 1, Y: c.Y, Orientation: Vertical}
	}
}

// WallBetween returns the wall separating two adjacent cells.
func (g Grid) WallBetween(a, b Coord) (Wall, error) {
	for _, s := range g.Neighbours(a) {
		if s.Coord == b {
			return g.WallFor(a, s.Direction), nil
		}
	}
	return Wall{}, NotNeighboursError{A: a, B: b}
}

// IsBorder reports whether w lies on the outer boundary of the grid.
// Border walls are never removable.
func (g Grid) IsBorder(w Wall) bool {
	if w.Orientation == Horizontal {
		return w.Y == 0 || w.Y == g.Height
	}
	return w.X == 0 || w.X == g.Width
}

// InteriorWalls lists every removable wall: horizontal walls row by
// row, then vertical walls row by row.
func (g Grid) InteriorWalls() []Wall {
	walls := make([]Wall, 0, 2*g.Width*g.Height-g.Width-g.Height)
	for y := 1; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			walls = append(walls, Wall{X: x, Y: y, Orientation: Horizontal})
		}
	}
	for y := 0; y < g.Height; y++ {
		for x := 1; x < g.Width; x++ {
			walls = append(walls, Wall{X: x, Y: y, Orientation: Vertical})
		}
	}
	return walls
}

// WallCount is the number of walls (border included) of a freshly
// built maze over this grid.
func (g Grid) WallCount() int {
	return g.Width*(g.Height+1) + g.Height*(g.Width+1)
}

// Segment returns the endpoints of w in pixel units as x1, y1, x2, y2,
// for the renderer.
func (g Grid) Segment(w Wall) [4]float64 {
	x := float64(w.X * g.CellWidth)
	y := float64(w.Y * g.CellHeight)
	if w.Orientation == Horizontal {
		return [4]float64{x, y, x + float64(g.CellWidth), y}
	}
	return [4]float64{x, y, x, y + float64(g.CellHeight)}
}
