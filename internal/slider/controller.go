// Package slider composes step geometry, gesture handling and the committed
// selection into a dual-handle range slider that any renderer can draw.
package slider

import (
	"cmp"
	"log"

	"stepslider/internal/domain"
	"stepslider/internal/slider/axis"
	"stepslider/internal/slider/gesture"
	"stepslider/internal/slider/selection"
)

// Controller is one on-screen range slider. All methods must be called from
// the goroutine that delivers its input events.
type Controller[T cmp.Ordered] struct {
	opts      Options[T]
	labels    []string
	axis      axis.Axis
	gesture   *gesture.Controller
	selection *selection.Model[T]

	// live handle positions, continuous while dragged
	lowerX float64
	upperX float64
}

// New validates opts and builds a controller. It has no geometry until the
// first call to Layout; pointer events before that are ignored.
func New[T cmp.Ordered](opts Options[T]) (*Controller[T], error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	steps := make([]T, len(opts.Steps))
	copy(steps, opts.Steps)
	opts.Steps = steps

	sel, err := selection.New(steps, opts.InitialLower, opts.InitialUpper, selection.Notifier[T](opts.OnRangeChanged))
	if err != nil {
		return nil, err
	}

	labels := make([]string, len(steps))
	for i, v := range steps {
		labels[i] = opts.label(v)
	}

	return &Controller[T]{
		opts:      opts,
		labels:    labels,
		gesture:   gesture.New(opts.TouchTolerance, opts.separation()),
		selection: sel,
	}, nil
}

// Layout recomputes step coordinates for a track of the given width and puts
// both handles back on their committed steps. On error the previous layout is
// kept.
func (c *Controller[T]) Layout(width float64) error {
	ax, err := axis.New(len(c.opts.Steps), width, c.opts.HandleRadius, c.opts.TickRadius)
	if err != nil {
		return err
	}
	c.axis = ax
	c.rest(domain.Lower)
	c.rest(domain.Upper)
	return nil
}

// Laid reports whether Layout succeeded at least once.
func (c *Controller[T]) Laid() bool { return c.axis.Len() > 0 }

// HandlePointer feeds one pointer event to the control and reports whether
// the control consumed it. Unconsumed events belong to the host.
func (c *Controller[T]) HandlePointer(ev gesture.PointerEvent) bool {
	cmd := c.gesture.Handle(ev, gesture.Positions{Lower: c.lowerX, Upper: c.upperX}, c.axis)

	switch cmd.Kind {
	case gesture.Arm:
		return true
	case gesture.Drag:
		c.setX(cmd.Handle, cmd.X)
		return true
	case gesture.Commit:
		c.selection.Commit(cmd.Handle, cmd.Index)
		c.rest(cmd.Handle)
		lower, upper := c.selection.Current()
		log.Printf("slider: %s handle committed at step %d, range [%d, %d]", cmd.Handle, cmd.Index, lower, upper)
		return true
	}
	return false
}

// Selection returns the committed step indices.
func (c *Controller[T]) Selection() (int, int) { return c.selection.Current() }

// Values returns the committed step values.
func (c *Controller[T]) Values() (T, T) { return c.selection.Values() }

// Range returns the committed selection as indices and labels.
func (c *Controller[T]) Range() domain.Range {
	l, u := c.selection.Current()
	return domain.Range{LowerIndex: l, UpperIndex: u, Lower: c.labels[l], Upper: c.labels[u]}
}

// Steps returns a copy of the step values.
func (c *Controller[T]) Steps() []T {
	out := make([]T, len(c.opts.Steps))
	copy(out, c.opts.Steps)
	return out
}

// Dragging returns the handle currently being dragged, or NoHandle.
func (c *Controller[T]) Dragging() domain.Handle { return c.gesture.Armed() }

// HandleX returns the current x position of a handle.
func (c *Controller[T]) HandleX(h domain.Handle) float64 {
	if h == domain.Lower {
		return c.lowerX
	}
	return c.upperX
}

// Axis returns the current layout.
func (c *Controller[T]) Axis() axis.Axis { return c.axis }

func (c *Controller[T]) rest(h domain.Handle) {
	if c.axis.Len() == 0 {
		return
	}
	lower, upper := c.selection.Current()
	switch h {
	case domain.Lower:
		c.lowerX = c.axis.At(lower)
	case domain.Upper:
		c.upperX = c.axis.At(upper)
	}
}

func (c *Controller[T]) setX(h domain.Handle, x float64) {
	if h == domain.Lower {
		c.lowerX = x
	} else {
		c.upperX = x
	}
}
