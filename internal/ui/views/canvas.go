package views

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"stepslider/internal/slider"
)

// Rows of the slider on the canvas
const (
	LabelRow   = 0
	TrackRow   = 1
	SliderRows = 2
)

type paint int

const (
	paintNone paint = iota
	paintTrack
	paintRange
	paintHandle
	paintHandleActive
	paintMarkerOutside
	paintMarkerInRange
	paintMarkerOnHandle
	paintLabelOutside
	paintLabelInRange
	paintLabelOnHandle
)

type cell struct {
	text  string // "" for the trailing half of a wide rune
	paint paint
}

// Canvas is a slider.Surface backed by a grid of terminal cells. One unit of
// slider geometry is one cell.
type Canvas struct {
	width  int
	cells  [][]cell
	styles *Styles

	// MaxLabelWidth truncates step labels; zero disables truncation
	MaxLabelWidth int
	// HideLabels drops DrawLabel calls
	HideLabels bool
}

// NewCanvas creates a blank canvas
func NewCanvas(width, height int, styles *Styles) *Canvas {
	if width < 0 {
		width = 0
	}
	cells := make([][]cell, height)
	for y := range cells {
		cells[y] = make([]cell, width)
		for x := range cells[y] {
			cells[y][x] = cell{text: " "}
		}
	}
	return &Canvas{width: width, cells: cells, styles: styles}
}

var _ slider.Surface = (*Canvas)(nil)

func col(x float64) int { return int(math.Round(x)) }

func row(y float64) int { return int(math.Round(y)) }

func (c *Canvas) set(x, y int, text string, p paint) {
	if y < 0 || y >= len(c.cells) || x < 0 || x >= c.width {
		return
	}
	c.cells[y][x] = cell{text: text, paint: p}
}

// DrawTrack draws the unselected track. Rounded corners become half-line ends.
func (c *Canvas) DrawTrack(r slider.Rect, cornerRadius float64) {
	y := row(r.Y + r.Height/2)
	start, end := col(r.X), col(r.X+r.Width)-1
	for x := start; x <= end; x++ {
		glyph := "─"
		if cornerRadius > 0 && x == start {
			glyph = "╶"
		} else if cornerRadius > 0 && x == end {
			glyph = "╴"
		}
		c.set(x, y, glyph, paintTrack)
	}
}

// DrawFilledRange draws the selected part of the track
func (c *Canvas) DrawFilledRange(r slider.Rect) {
	y := row(r.Y + r.Height/2)
	for x := col(r.X); x <= col(r.X+r.Width); x++ {
		c.set(x, y, "━", paintRange)
	}
}

// DrawStepMarker draws a tick for one step
func (c *Canvas) DrawStepMarker(center slider.Point, radius float64, state slider.StepState) {
	glyph := "┼"
	switch state {
	case slider.InRange:
		glyph = "╋"
	case slider.OnHandle:
		glyph = "●"
	}
	c.set(col(center.X), row(center.Y), glyph, paintMarkerOutside+paint(state))
}

// DrawHandle draws a handle as a bracketed knob when its radius spans a cell
func (c *Canvas) DrawHandle(center slider.Point, radius float64, highlighted bool) {
	p := paintHandle
	if highlighted {
		p = paintHandleActive
	}
	x, y := col(center.X), row(center.Y)
	if radius >= 1 {
		c.set(x-1, y, "[", p)
		c.set(x+1, y, "]", p)
	}
	c.set(x, y, "●", p)
}

// DrawLabel writes text centered on pos, kept inside the canvas
func (c *Canvas) DrawLabel(text string, pos slider.Point, state slider.StepState) {
	if c.HideLabels {
		return
	}
	if c.MaxLabelWidth > 0 && runewidth.StringWidth(text) > c.MaxLabelWidth {
		text = runewidth.Truncate(text, c.MaxLabelWidth, "")
	}
	w := runewidth.StringWidth(text)
	if w == 0 {
		return
	}
	x := col(pos.X) - (w-1)/2
	x = max(0, min(x, c.width-w))
	y := row(pos.Y)
	p := paintLabelOutside + paint(state)
	for _, r := range text {
		rw := runewidth.RuneWidth(r)
		if rw == 0 {
			continue
		}
		c.set(x, y, string(r), p)
		for i := 1; i < rw; i++ {
			c.set(x+i, y, "", p)
		}
		x += rw
	}
}

func (c *Canvas) style(p paint) (lipgloss.Style, bool) {
	switch p {
	case paintTrack:
		return c.styles.Track, true
	case paintRange:
		return c.styles.FilledRange, true
	case paintHandle:
		return c.styles.Handle, true
	case paintHandleActive:
		return c.styles.HandleActive, true
	case paintMarkerOutside, paintMarkerInRange, paintMarkerOnHandle:
		return c.styles.ForMarker(slider.StepState(p - paintMarkerOutside)), true
	case paintLabelOutside, paintLabelInRange, paintLabelOnHandle:
		return c.styles.ForLabel(slider.StepState(p - paintLabelOutside)), true
	}
	return lipgloss.Style{}, false
}

// Lines renders each canvas row, styling runs of equally painted cells
func (c *Canvas) Lines() []string {
	lines := make([]string, len(c.cells))
	for y, cells := range c.cells {
		var b strings.Builder
		var run strings.Builder
		current := paintNone
		flush := func() {
			if run.Len() == 0 {
				return
			}
			if st, ok := c.style(current); ok {
				b.WriteString(st.Render(run.String()))
			} else {
				b.WriteString(run.String())
			}
			run.Reset()
		}
		for _, cl := range cells {
			if cl.paint != current {
				flush()
				current = cl.paint
			}
			run.WriteString(cl.text)
		}
		flush()
		lines[y] = b.String()
	}
	return lines
}

// Plain renders the canvas without styling
func (c *Canvas) Plain() []string {
	lines := make([]string, len(c.cells))
	for y, cells := range c.cells {
		var b strings.Builder
		for _, cl := range cells {
			b.WriteString(cl.text)
		}
		lines[y] = b.String()
	}
	return lines
}

// String joins the styled rows
func (c *Canvas) String() string {
	return strings.Join(c.Lines(), "\n")
}
