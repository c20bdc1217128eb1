// Package axis maps an ordered list of steps onto evenly spaced x coordinates
// of a horizontal track and snaps arbitrary positions back onto those steps.
package axis

import (
	"fmt"
	"math"

	"stepslider/internal/domain"
)

// Coordinates returns n strictly increasing x coordinates for a track of the
// given width. The first step sits one handle radius in from the left edge and
// the last one handle radius in from the right edge, so a handle resting on
// either end stays inside the track.
func Coordinates(n int, width, handleRadius, tickRadius float64) ([]float64, error) {
	if n < 2 {
		return nil, fmt.Errorf("%w: need at least 2 steps, got %d", domain.ErrInvalidConfiguration, n)
	}
	if math.IsNaN(handleRadius) || math.IsInf(handleRadius, 0) || math.IsNaN(tickRadius) || math.IsInf(tickRadius, 0) ||
		handleRadius < 0 || tickRadius < 0 {
		return nil, fmt.Errorf("%w: radii must not be negative (handle %g, tick %g)",
			domain.ErrInvalidConfiguration, handleRadius, tickRadius)
	}
	if math.IsNaN(width) || math.IsInf(width, 0) || width <= 2*handleRadius {
		return nil, fmt.Errorf("%w: track width %g must exceed twice the handle radius %g",
			domain.ErrInvalidConfiguration, width, handleRadius)
	}

	start := TrackStart(handleRadius, tickRadius)
	usable := TrackWidth(width, handleRadius, tickRadius) - 2*tickRadius
	spacing := usable / float64(n-1)
	first := start + tickRadius

	coords := make([]float64, n)
	for i := range coords {
		coords[i] = first + float64(i)*spacing
	}
	return coords, nil
}

// TrackStart is the x where the drawn track begins.
func TrackStart(handleRadius, tickRadius float64) float64 {
	return handleRadius - tickRadius
}

// TrackWidth is the drawn width of the track.
func TrackWidth(width, handleRadius, tickRadius float64) float64 {
	return width - 2*TrackStart(handleRadius, tickRadius)
}

// Nearest returns the coordinate closest to x and its index. When x is exactly
// halfway between two coordinates the lower index wins.
func Nearest(x float64, coords []float64) (float64, int) {
	if len(coords) == 0 {
		return x, -1
	}
	best := 0
	bestDist := math.Abs(coords[0] - x)
	for i := 1; i < len(coords); i++ {
		d := math.Abs(coords[i] - x)
		// strict comparison keeps the earlier index on ties
		if d < bestDist {
			best = i
			bestDist = d
		}
	}
	return coords[best], best
}

// Spacing returns the uniform distance between neighbouring coordinates.
func Spacing(coords []float64) float64 {
	if len(coords) < 2 {
		return 0
	}
	return coords[1] - coords[0]
}

// Axis is a laid out step axis. The zero value has no steps.
type Axis struct {
	coords       []float64
	spacing      float64
	width        float64
	handleRadius float64
	tickRadius   float64
}

// New lays out n steps on a track of the given width.
func New(n int, width, handleRadius, tickRadius float64) (Axis, error) {
	coords, err := Coordinates(n, width, handleRadius, tickRadius)
	if err != nil {
		return Axis{}, err
	}
	return Axis{
		coords:       coords,
		spacing:      Spacing(coords),
		width:        width,
		handleRadius: handleRadius,
		tickRadius:   tickRadius,
	}, nil
}

// Len returns the number of steps.
func (a Axis) Len() int { return len(a.coords) }

// At returns the x coordinate of step i.
func (a Axis) At(i int) float64 { return a.coords[i] }

// First returns the x coordinate of the first step.
func (a Axis) First() float64 { return a.coords[0] }

// Last returns the x coordinate of the last step.
func (a Axis) Last() float64 { return a.coords[len(a.coords)-1] }

// Spacing returns the distance between neighbouring steps.
func (a Axis) Spacing() float64 { return a.spacing }

// Width returns the track width the axis was laid out for.
func (a Axis) Width() float64 { return a.width }

// Nearest snaps x onto the closest step.
func (a Axis) Nearest(x float64) (float64, int) { return Nearest(x, a.coords) }

// Coordinates returns a copy of the step coordinates.
func (a Axis) Coordinates() []float64 {
	out := make([]float64, len(a.coords))
	copy(out, a.coords)
	return out
}

// TrackStart is the x where the drawn track begins.
func (a Axis) TrackStart() float64 { return TrackStart(a.handleRadius, a.tickRadius) }

// TrackWidth is the drawn width of the track.
func (a Axis) TrackWidth() float64 { return TrackWidth(a.width, a.handleRadius, a.tickRadius) }
