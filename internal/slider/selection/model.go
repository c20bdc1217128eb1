// Package selection owns the committed lower and upper step indices of a
// range slider.
package selection

import (
	"fmt"

	"stepslider/internal/domain"
)

// Model holds the selection and raises the range-changed notification on
// every commit.
type Model[T any] struct {
	steps  []T
	state  State
	notify Notifier[T]
}

// New creates a selection over steps with the given initial bounds.
func New[T any](steps []T, lower, upper int, notify Notifier[T]) (*Model[T], error) {
	n := len(steps)
	if n == 0 {
		return nil, fmt.Errorf("%w: no steps", domain.ErrInvalidConfiguration)
	}
	if lower < 0 || upper > n-1 || lower > upper {
		return nil, fmt.Errorf("%w: initial range [%d, %d] outside [0, %d] or inverted",
			domain.ErrInvalidConfiguration, lower, upper, n-1)
	}
	return &Model[T]{
		steps:  steps,
		state:  State{LowerIndex: lower, UpperIndex: upper},
		notify: notify,
	}, nil
}

// Commit sets one bound to index and notifies. A lower bound above the upper
// one, or an upper bound below the lower one, is pulled onto the other bound.
func (m *Model[T]) Commit(h domain.Handle, index int) {
	index = max(0, min(index, len(m.steps)-1))

	switch h {
	case domain.Lower:
		m.state.LowerIndex = min(index, m.state.UpperIndex)
	case domain.Upper:
		m.state.UpperIndex = max(index, m.state.LowerIndex)
	default:
		return
	}

	if m.notify != nil {
		lower, upper := m.Values()
		m.notify(lower, upper)
	}
}

// Current returns the committed indices.
func (m *Model[T]) Current() (int, int) {
	return m.state.LowerIndex, m.state.UpperIndex
}

// Values returns the step values at the committed indices.
func (m *Model[T]) Values() (T, T) {
	return m.steps[m.state.LowerIndex], m.steps[m.state.UpperIndex]
}

// Contains reports whether step i lies inside the committed range.
func (m *Model[T]) Contains(i int) bool {
	return i >= m.state.LowerIndex && i <= m.state.UpperIndex
}

// Len returns the number of steps.
func (m *Model[T]) Len() int { return len(m.steps) }
