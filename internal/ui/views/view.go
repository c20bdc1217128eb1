package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"stepslider/internal/domain"
	"stepslider/internal/slider"
)

// Placement of the slider inside the view, in cells
const (
	SliderLeft = 2
	SliderTop  = 2
)

// ViewState contains all the state needed for rendering
type ViewState struct {
	Width         int
	Height        int
	Title         string
	Frame         slider.Frame
	Range         domain.Range
	ShowLabels    bool
	StatusMessage string
	StatusIsError bool
	HelpView      string
	HistoryCount  int
}

// Renderer handles all view rendering
type Renderer struct {
	styles *Styles
}

// NewRenderer creates a new renderer
func NewRenderer() *Renderer {
	return &Renderer{styles: NewStyles()}
}

// Styles returns the renderer styles
func (r *Renderer) Styles() *Styles { return r.styles }

// TrackWidth returns the slider width available in a terminal of the given width
func TrackWidth(termWidth int) int {
	return termWidth - 2*SliderLeft
}

// InSlider reports whether terminal row y belongs to the slider
func InSlider(y int) bool {
	return y >= SliderTop && y < SliderTop+SliderRows
}

// SliderX converts a terminal column to slider geometry
func SliderX(x int) float64 {
	return float64(x - SliderLeft)
}

// Render produces the complete view
func (r *Renderer) Render(state ViewState) string {
	content := &strings.Builder{}
	pad := strings.Repeat(" ", SliderLeft)

	// Title line with the committed range on the right
	title := state.Title
	if title == "" {
		title = "stepslider"
	}
	logo := r.styles.Title.Render(title)
	summary := r.styles.RangeSummary.Render(fmt.Sprintf("%s – %s", state.Range.Lower, state.Range.Upper))
	titleLine := pad + logo
	if state.Width > 0 {
		gap := state.Width - SliderLeft - lipgloss.Width(logo) - lipgloss.Width(summary) - SliderLeft
		if gap > 1 {
			titleLine += strings.Repeat(" ", gap) + summary
		} else {
			titleLine += "  " + summary
		}
	} else {
		titleLine += "  " + summary
	}
	content.WriteString(titleLine)
	content.WriteString("\n\n")

	// Slider rows, always SliderRows tall so mouse rows stay put
	for _, line := range r.RenderSlider(state) {
		content.WriteString(pad)
		content.WriteString(line)
		content.WriteString("\n")
	}
	content.WriteString("\n")

	// Status line
	status := state.StatusMessage
	if status == "" {
		status = fmt.Sprintf("Drag a handle to change the range (%d changes so far)", state.HistoryCount)
	}
	statusStyle := r.styles.Status
	if state.StatusIsError {
		statusStyle = r.styles.StatusError
	}
	content.WriteString(pad + statusStyle.Render(status))

	if state.HelpView != "" {
		content.WriteString("\n\n")
		for i, line := range strings.Split(state.HelpView, "\n") {
			if i > 0 {
				content.WriteString("\n")
			}
			content.WriteString(pad + line)
		}
	}

	return content.String()
}

// RenderSlider draws the frame onto a fresh canvas and returns its rows
func (r *Renderer) RenderSlider(state ViewState) []string {
	f := state.Frame
	if len(f.Steps) == 0 {
		lines := make([]string, SliderRows)
		lines[TrackRow] = r.styles.Dim.Render("terminal too narrow for the slider")
		return lines
	}

	canvas := NewCanvas(int(f.Width), SliderRows, r.styles)
	canvas.HideLabels = !state.ShowLabels
	canvas.MaxLabelWidth = labelWidth(f)
	f.Draw(canvas, slider.DrawStyle{CenterY: TrackRow, BarHeight: 1, LabelY: LabelRow})
	return canvas.Lines()
}

// labelWidth leaves at least one blank cell between neighbouring labels
func labelWidth(f slider.Frame) int {
	if len(f.Steps) < 2 {
		return 0
	}
	w := int(f.Steps[1].X-f.Steps[0].X) - 1
	return max(1, w)
}
