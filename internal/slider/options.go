package slider

import (
	"cmp"
	"fmt"

	"stepslider/internal/domain"
)

// MinSteps is the smallest number of steps a slider accepts
const MinSteps = 3

// Options configures a Controller
type Options[T cmp.Ordered] struct {
	// Steps are the selectable values, strictly increasing from left to right
	Steps        []T
	InitialLower int
	InitialUpper int

	HandleRadius float64
	TickRadius   float64
	// TouchTolerance is the farthest a press may land from the nearest handle
	// and still pick it up. Zero accepts any press on the control.
	TouchTolerance float64
	// MinSeparationSteps is how many steps apart dragging keeps the handles.
	// Zero means the default of 1; use NoSeparation to let handles meet.
	MinSeparationSteps int

	// OnRangeChanged is called with the committed values after every release
	OnRangeChanged func(lower, upper T)
	// Labeler formats step values for display; fmt.Sprint when nil
	Labeler func(T) string
}

// NoSeparation lets dragged handles meet on the same step
const NoSeparation = -1

func (o Options[T]) separation() int {
	switch {
	case o.MinSeparationSteps == 0:
		return 1
	case o.MinSeparationSteps < 0:
		return 0
	default:
		return o.MinSeparationSteps
	}
}

func (o Options[T]) label(v T) string {
	if o.Labeler != nil {
		return o.Labeler(v)
	}
	return fmt.Sprint(v)
}

// Validate checks the options without laying anything out.
func (o Options[T]) Validate() error {
	if len(o.Steps) < MinSteps {
		return fmt.Errorf("%w: need at least %d steps, got %d", domain.ErrInvalidConfiguration, MinSteps, len(o.Steps))
	}
	for i := 1; i < len(o.Steps); i++ {
		if cmp.Compare(o.Steps[i-1], o.Steps[i]) >= 0 {
			return fmt.Errorf("%w: steps must be distinct and increasing, %v at %d is followed by %v",
				domain.ErrInvalidConfiguration, o.Steps[i-1], i-1, o.Steps[i])
		}
	}
	last := len(o.Steps) - 1
	if o.InitialLower < 0 || o.InitialLower > last {
		return fmt.Errorf("%w: initial lower index %d outside [0, %d]", domain.ErrInvalidConfiguration, o.InitialLower, last)
	}
	if o.InitialUpper < 0 || o.InitialUpper > last {
		return fmt.Errorf("%w: initial upper index %d outside [0, %d]", domain.ErrInvalidConfiguration, o.InitialUpper, last)
	}
	if o.InitialLower > o.InitialUpper {
		return fmt.Errorf("%w: initial lower index %d above upper index %d", domain.ErrInvalidConfiguration, o.InitialLower, o.InitialUpper)
	}
	if o.HandleRadius < 0 || o.TickRadius < 0 {
		return fmt.Errorf("%w: radii must not be negative", domain.ErrInvalidConfiguration)
	}
	if o.TouchTolerance < 0 {
		return fmt.Errorf("%w: touch tolerance must not be negative", domain.ErrInvalidConfiguration)
	}
	if o.separation() > last {
		return fmt.Errorf("%w: minimum separation of %d steps does not fit %d steps",
			domain.ErrInvalidConfiguration, o.MinSeparationSteps, len(o.Steps))
	}
	return nil
}
