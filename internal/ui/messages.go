package ui

// historyPagerMsg contains the result of a history pager command
type historyPagerMsg struct {
	err error
}

// clipboardMsg contains the result of copying the range
type clipboardMsg struct {
	text string
	err  error
}

// clearStatusMsg clears the status line
type clearStatusMsg struct{}

// pauseRenderingMsg signals to pause Bubble Tea rendering
type pauseRenderingMsg struct{}

// resumeRenderingMsg signals to resume Bubble Tea rendering
type resumeRenderingMsg struct{}
