package slider

import "stepslider/internal/domain"

// Point is a position on the draw surface
type Point struct {
	X, Y float64
}

// Rect is an axis aligned rectangle on the draw surface
type Rect struct {
	X, Y, Width, Height float64
}

// Surface is implemented by renderers. The slider only hands it geometry and
// display states; colors and fonts are the renderer's business.
type Surface interface {
	DrawTrack(r Rect, cornerRadius float64)
	DrawFilledRange(r Rect)
	DrawStepMarker(center Point, radius float64, state StepState)
	DrawHandle(center Point, radius float64, highlighted bool)
	DrawLabel(text string, pos Point, state StepState)
}

// DrawStyle places the control vertically on the surface
type DrawStyle struct {
	// CenterY is the vertical center of the track
	CenterY float64
	// BarHeight is the thickness of the track
	BarHeight float64
	// LabelY is where step labels are placed
	LabelY float64
}

// Draw paints the frame back to front: track, selected range, step markers
// with their labels, then the lower and upper handle.
func (f Frame) Draw(s Surface, style DrawStyle) {
	if len(f.Steps) == 0 {
		return
	}

	top := style.CenterY - style.BarHeight/2
	s.DrawTrack(Rect{X: f.TrackStart, Y: top, Width: f.TrackWidth, Height: style.BarHeight}, style.BarHeight/2)
	s.DrawFilledRange(Rect{X: f.LowerX, Y: top, Width: f.UpperX - f.LowerX, Height: style.BarHeight})

	for _, step := range f.Steps {
		s.DrawStepMarker(Point{X: step.X, Y: style.CenterY}, f.TickRadius, step.State)
		s.DrawLabel(step.Label, Point{X: step.X, Y: style.LabelY}, step.State)
	}

	s.DrawHandle(Point{X: f.LowerX, Y: style.CenterY}, f.HandleRadius, f.Active == domain.Lower)
	s.DrawHandle(Point{X: f.UpperX, Y: style.CenterY}, f.HandleRadius, f.Active == domain.Upper)
}
