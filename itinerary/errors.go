package itinerary

import (
	"errors"
	"fmt"
)

// ErrBookingNotFound is returned when the booking does not exist or has
// been soft-deleted. It is the only lookup failure that aborts the
// whole request; degraded reference lookups are absorbed locally.
var ErrBookingNotFound = errors.New("booking not found")

// RenderError reports that the external rendering process could not
// produce output, after the retry with minimal options.
type RenderError struct {
	Stage string
	Err   error
}

func (e *RenderError) Error() string {
	return fmt.Sprintf("document render failed at %s: %v", e.Stage, e.Err)
}

func (e *RenderError) Unwrap() error { return e.Err }
