package selection

// State holds the committed step indices
type State struct {
	LowerIndex int
	UpperIndex int
}

// Notifier receives the step values of the committed range
type Notifier[T any] func(lower, upper T)
