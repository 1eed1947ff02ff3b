package world

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidDimensions is returned when a world is created with a
	// non-positive width or height.
	ErrInvalidDimensions = errors.New("world: invalid dimensions")
	// ErrCoordinateOutOfRange is returned for rows outside [0, height).
	ErrCoordinateOutOfRange = errors.New("world: coordinate out of range")
	// ErrStageFailure marks a stage that left the world in an invalid state.
	ErrStageFailure = errors.New("world: stage failure")
	// ErrFinalized is returned when a stage runs against a finalized world.
	ErrFinalized = errors.New("world: already finalized")
)

// StageError attributes a failure to the named pipeline stage.
type StageError struct {
	Stage string
	Err   error
}

func (e *StageError) Error() string {
	return fmt.Sprintf("stage %s: %v", e.Stage, e.Err)
}

func (e *StageError) Unwrap() error { return e.Err }
