package maze

import (
	"errors"
	"fmt"
)

// ErrImpossibleMaze is returned by a solver whose frontier emptied
// before the goal was reached. It means the maze is not fully
// connected: either the upstream generator is broken or solving
// started before generation completed.
var ErrImpossibleMaze = errors.New("impossible maze")

// NotNeighboursError reports an attempt to link two coordinates that
// are not grid-adjacent.
type NotNeighboursError struct {
	A, B Coord
}

func (e NotNeighboursError) Error() string {
	return fmt.Sprintf("%s and %s are not neighbours", e.A, e.B)
}

// BorderWallError reports an attempt to remove a border wall.
type BorderWallError struct {
	Wall Wall
}

func (e BorderWallError) Error() string {
	return fmt.Sprintf("tried to remove border %s", e.Wall)
}

// MissingSetError reports a broken disjoint-set invariant: no set
// contains the coordinate. It is an internal defect, not a
// recoverable condition.
type MissingSetError struct {
	Coord Coord
}

func (e MissingSetError) Error() string {
	return fmt.Sprintf("missing set for coord %s", e.Coord)
}
