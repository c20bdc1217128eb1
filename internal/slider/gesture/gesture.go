// Package gesture turns a stream of pointer events into handle commands for a
// two-handle range slider. It owns which handle a touch controls and keeps
// in-flight handle motion inside the track without letting the handles cross.
package gesture

import (
	"math"

	"stepslider/internal/domain"
	"stepslider/internal/slider/axis"
)

// Phase is the phase of a pointer event
type Phase int

const (
	Down Phase = iota
	Move
	Up
	Cancel
)

func (p Phase) String() string {
	switch p {
	case Down:
		return "down"
	case Move:
		return "move"
	case Up:
		return "up"
	case Cancel:
		return "cancel"
	default:
		return "unknown"
	}
}

// PointerEvent is a single pointer sample delivered by the host input layer
type PointerEvent struct {
	Phase Phase
	X     float64
	Y     float64
}

// State is the gesture state
type State int

const (
	Idle State = iota
	ArmedLeft
	ArmedRight
)

func (s State) String() string {
	switch s {
	case ArmedLeft:
		return "armed-left"
	case ArmedRight:
		return "armed-right"
	default:
		return "idle"
	}
}

// CommandKind tells the caller what to do with a Command
type CommandKind int

const (
	// None means the event changed nothing
	None CommandKind = iota
	// Arm means a handle was picked up
	Arm
	// Drag carries a new continuous position for the armed handle
	Drag
	// Commit carries the snapped position and step index of a released handle
	Commit
)

// Command is the outcome of feeding one pointer event to the Controller
type Command struct {
	Kind   CommandKind
	Handle domain.Handle
	X      float64
	Index  int
}

// Positions are the current pixel positions of both handles
type Positions struct {
	Lower float64
	Upper float64
}

// Controller is the gesture state machine. It is not safe for concurrent use;
// all events of one control are expected on a single goroutine.
type Controller struct {
	state     State
	lastX     float64
	tolerance float64
	minSteps  int
}

// New creates an idle controller. A tolerance of zero disables the veto on
// far-away touches. minSteps is the minimum handle separation in steps that
// dragging maintains.
func New(tolerance float64, minSteps int) *Controller {
	if minSteps < 0 {
		minSteps = 0
	}
	return &Controller{
		tolerance: tolerance,
		minSteps:  minSteps,
	}
}

// State returns the current state.
func (c *Controller) State() State { return c.state }

// LastX returns the x of the last pointer event seen while armed.
func (c *Controller) LastX() float64 { return c.lastX }

// Armed returns the handle being dragged, or NoHandle.
func (c *Controller) Armed() domain.Handle {
	switch c.state {
	case ArmedLeft:
		return domain.Lower
	case ArmedRight:
		return domain.Upper
	default:
		return domain.NoHandle
	}
}

// Reset drops any in-progress gesture without committing.
func (c *Controller) Reset() {
	c.state = Idle
	c.lastX = 0
}

// Handle processes one pointer event given the current handle positions and
// the laid out axis. Events that do not fit the down, move..., up sequence are
// ignored.
func (c *Controller) Handle(ev PointerEvent, pos Positions, ax axis.Axis) Command {
	if ax.Len() == 0 {
		return Command{}
	}

	switch ev.Phase {
	case Down:
		return c.down(ev, pos, ax)
	case Move:
		return c.move(ev, pos, ax)
	case Up, Cancel:
		return c.release(pos, ax)
	}
	return Command{}
}

func (c *Controller) down(ev PointerEvent, pos Positions, ax axis.Axis) Command {
	// one drag per control; a second contact is ignored
	if c.state != Idle {
		return Command{}
	}

	dl := math.Abs(ev.X - pos.Lower)
	dr := math.Abs(ev.X - pos.Upper)

	handle, dist := domain.Upper, dr
	// on a tie the upper handle wins unless both handles are parked on the
	// last step, where only the lower one can move
	parked := pos.Lower == pos.Upper && pos.Upper >= ax.Last()
	if dl < dr || (dl == dr && parked) {
		handle, dist = domain.Lower, dl
	}
	if c.tolerance > 0 && dist > c.tolerance {
		return Command{}
	}

	if handle == domain.Lower {
		c.state = ArmedLeft
	} else {
		c.state = ArmedRight
	}
	c.lastX = ev.X
	return Command{Kind: Arm, Handle: handle, X: c.current(pos)}
}

func (c *Controller) move(ev PointerEvent, pos Positions, ax axis.Axis) Command {
	if c.state == Idle {
		return Command{}
	}
	c.lastX = ev.X

	sep := ax.Spacing() * float64(c.minSteps)
	switch c.state {
	case ArmedLeft:
		// already closer than sep: hold the inner bound where the handle is
		hi := math.Max(pos.Upper-sep, math.Min(pos.Lower, pos.Upper))
		x := clamp(ev.X, ax.First(), hi)
		return Command{Kind: Drag, Handle: domain.Lower, X: x}
	default:
		lo := math.Min(pos.Lower+sep, math.Max(pos.Upper, pos.Lower))
		x := clamp(ev.X, lo, ax.Last())
		return Command{Kind: Drag, Handle: domain.Upper, X: x}
	}
}

func (c *Controller) release(pos Positions, ax axis.Axis) Command {
	if c.state == Idle {
		return Command{}
	}
	handle := c.Armed()
	x, idx := ax.Nearest(c.current(pos))
	c.Reset()
	return Command{Kind: Commit, Handle: handle, X: x, Index: idx}
}

func (c *Controller) current(pos Positions) float64 {
	if c.state == ArmedLeft {
		return pos.Lower
	}
	return pos.Upper
}

func clamp(x, lo, hi float64) float64 {
	if hi < lo {
		hi = lo
	}
	return math.Max(lo, math.Min(x, hi))
}
