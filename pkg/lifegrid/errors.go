package lifegrid

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyGrid is returned when a grid is requested with a zero dimension.
	ErrEmptyGrid = errors.New("lifegrid: width and height must be positive")
	// ErrGridTooLarge is returned when width*height does not fit a uint32 index.
	ErrGridTooLarge = errors.New("lifegrid: grid exceeds addressable cell count")
	// ErrOutOfBounds is matched by every *BoundsError.
	ErrOutOfBounds = errors.New("lifegrid: coordinate out of bounds")
)

// BoundsError reports a coordinate outside the grid.
type BoundsError struct {
	Row, Col      uint32
	Width, Height uint32
}

func (e *BoundsError) Error() string {
	return fmt.Sprintf("lifegrid: cell (%d,%d) outside %dx%d grid", e.Row, e.Col, e.Width, e.Height)
}

// Is lets errors.Is(err, ErrOutOfBounds) match.
func (e *BoundsError) Is(target error) bool { return target == ErrOutOfBounds }
