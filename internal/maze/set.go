package maze

import "slices"

// CoordSet is a set of cell coordinates.
type CoordSet map[Coord]struct{}

func (s CoordSet) Add(c Coord)      { s[c] = struct{}{} }
func (s CoordSet) Remove(c Coord)   { delete(s, c) }
func (s CoordSet) Has(c Coord) bool { _, ok := s[c]; return ok }
func (s CoordSet) Clear()           { clear(s) }

// Coords returns the members sorted row-major, for stable output.
func (s CoordSet) Coords() []Coord {
	coords := make([]Coord, 0, len(s))
	for c := range s {
		coords = append(coords, c)
	}
	slices.SortFunc(coords, func(a, b Coord) int {
		if a.Y != b.Y {
			return a.Y - b.Y
		}
		return a.X - b.X
	})
	return coords
}

// WallSet is a set of walls.
type WallSet map[Wall]struct{}

func (s WallSet) Add(w Wall)      { s[w] = struct{}{} }
func (s WallSet) Remove(w Wall)   { delete(s, w) }
func (s WallSet) Has(w Wall) bool { _, ok := s[w]; return ok }

// Walls returns the members sorted by orientation and position, for
// stable output.
func (s WallSet) Walls() []Wall {
	walls := make([]Wall, 0, len(s))
	for w := range s {
		walls = append(walls, w)
	}
	slices.SortFunc(walls, func(a, b Wall) int {
		if a.Orientation != b.Orientation {
			return int(a.Orientation) - int(b.Orientation)
		}
		if a.Y != b.Y {
			return a.Y - b.Y
		}
		return a.X - b.X
	})
	return walls
}
