package domain

import "errors"

// ErrInvalidConfiguration is returned when a slider cannot be built or laid out
// from the supplied options. It is fatal for the instance being initialized.
var ErrInvalidConfiguration = errors.New("invalid slider configuration")

// Handle identifies one of the two draggable bounds of a range slider
type Handle int

const (
	// NoHandle means no handle is involved (idle gesture, nothing dragged)
	NoHandle Handle = iota
	Lower
	Upper
)

func (h Handle) String() string {
	switch h {
	case Lower:
		return "lower"
	case Upper:
		return "upper"
	default:
		return "none"
	}
}

// Range is a committed selection expressed both as step indices and as the
// display labels of the steps at those indices
type Range struct {
	LowerIndex int
	UpperIndex int
	Lower      string
	Upper      string
}
