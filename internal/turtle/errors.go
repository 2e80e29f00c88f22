package turtle

import (
	"errors"
	"fmt"
)

// Domain errors for engine construction and option validation.
var (
	// ErrNoCanvas indicates a missing or zero-sized drawing extent.
	ErrNoCanvas = errors.New("turtle: no canvas (width and height must be positive)")

	// ErrUnknownMode indicates a mode name outside geometric/organic/network.
	ErrUnknownMode = errors.New("turtle: unknown mode")

	// ErrUnknownScheme indicates a color scheme name that is not registered.
	ErrUnknownScheme = errors.New("turtle: unknown color scheme")

	// ErrBadColor indicates a palette entry that is not a hex color.
	ErrBadColor = errors.New("turtle: invalid palette color")

	// ErrCount indicates an entity count outside [0, MaxCount].
	ErrCount = errors.New("turtle: entity count out of range")

	// ErrUnknownNoise indicates a drift source other than sine or perlin.
	ErrUnknownNoise = errors.New("turtle: unknown noise source")
)

// FrameError wraps an error with the frame it happened on.
type FrameError struct {
	Frame   int
	Mode    Mode
	Wrapped error
}

func (e *FrameError) Error() string {
	return fmt.Sprintf("frame %d (%s): %v", e.Frame, e.Mode, e.Wrapped)
}

func (e *FrameError) Unwrap() error {
	return e.Wrapped
}
