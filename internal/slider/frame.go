package slider

import (
	"math"

	"stepslider/internal/domain"
)

// StepState is how a step marker and its label are displayed
type StepState int

const (
	// Outside the selected range
	Outside StepState = iota
	// InRange is strictly between the handles
	InRange
	// OnHandle means a handle rests on the step
	OnHandle
)

func (s StepState) String() string {
	switch s {
	case InRange:
		return "in-range"
	case OnHandle:
		return "on-handle"
	default:
		return "outside"
	}
}

// Step is one step as seen by a renderer
type Step struct {
	X     float64
	Label string
	State StepState
}

// Frame is everything a renderer needs to draw the control once
type Frame struct {
	Width        float64
	TrackStart   float64
	TrackWidth   float64
	HandleRadius float64
	TickRadius   float64
	LowerX       float64
	UpperX       float64
	// Active is the handle under the pointer, NoHandle when idle
	Active domain.Handle
	Steps  []Step
}

// Frame snapshots the control for rendering. It returns the zero Frame
// before the first successful Layout.
func (c *Controller[T]) Frame() Frame {
	if c.axis.Len() == 0 {
		return Frame{}
	}

	f := Frame{
		Width:        c.axis.Width(),
		TrackStart:   c.axis.TrackStart(),
		TrackWidth:   c.axis.TrackWidth(),
		HandleRadius: c.opts.HandleRadius,
		TickRadius:   c.opts.TickRadius,
		LowerX:       c.lowerX,
		UpperX:       c.upperX,
		Active:       c.gesture.Armed(),
		Steps:        make([]Step, c.axis.Len()),
	}
	for i := range f.Steps {
		x := c.axis.At(i)
		f.Steps[i] = Step{X: x, Label: c.labels[i], State: c.stepState(x)}
	}
	return f
}

// stepState classifies a step against the live handle positions so the
// display follows a handle while it is dragged. At rest this matches the
// committed indices exactly.
func (c *Controller[T]) stepState(x float64) StepState {
	// a handle covers a step when it is within half a tick radius, and always
	// when it sits exactly on it
	near := c.opts.TickRadius / 2
	if x == c.lowerX || x == c.upperX ||
		math.Abs(x-c.lowerX) < near || math.Abs(x-c.upperX) < near {
		return OnHandle
	}
	if x < c.lowerX || x > c.upperX {
		return Outside
	}
	return InRange
}
