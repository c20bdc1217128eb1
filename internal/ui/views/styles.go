package views

import (
	"github.com/charmbracelet/lipgloss"

	"stepslider/internal/slider"
)

// Styles contains all the style definitions for the UI
type Styles struct {
	Title         lipgloss.Style
	RangeSummary  lipgloss.Style
	Dim           lipgloss.Style
	Status        lipgloss.Style
	StatusError   lipgloss.Style
	StatusSuccess lipgloss.Style
	Help          lipgloss.Style

	Track        lipgloss.Style
	FilledRange  lipgloss.Style
	Handle       lipgloss.Style
	HandleActive lipgloss.Style

	// Indexed by slider.StepState
	Marker [3]lipgloss.Style
	Label  [3]lipgloss.Style
}

// NewStyles creates a new Styles instance with default values
func NewStyles() *Styles {
	s := &Styles{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("99")),
		RangeSummary:  lipgloss.NewStyle().Foreground(lipgloss.Color("51")).Bold(true),
		Dim:           lipgloss.NewStyle().Faint(true),
		Status:        lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		StatusError:   lipgloss.NewStyle().Foreground(lipgloss.Color("203")), // red
		StatusSuccess: lipgloss.NewStyle().Foreground(lipgloss.Color("78")),  // green
		Help:          lipgloss.NewStyle().Faint(true),

		Track:        lipgloss.NewStyle().Foreground(lipgloss.Color("238")),
		FilledRange:  lipgloss.NewStyle().Foreground(lipgloss.Color("51")), // cyan
		Handle:       lipgloss.NewStyle().Foreground(lipgloss.Color("252")).Bold(true),
		HandleActive: lipgloss.NewStyle().Foreground(lipgloss.Color("226")).Bold(true), // yellow
	}

	s.Marker[slider.Outside] = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	s.Marker[slider.InRange] = lipgloss.NewStyle().Foreground(lipgloss.Color("51"))
	s.Marker[slider.OnHandle] = lipgloss.NewStyle().Foreground(lipgloss.Color("226"))

	s.Label[slider.Outside] = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	s.Label[slider.InRange] = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	s.Label[slider.OnHandle] = lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Bold(true)

	return s
}

// ForMarker returns the marker style for a step state
func (s *Styles) ForMarker(state slider.StepState) lipgloss.Style {
	if int(state) < 0 || int(state) >= len(s.Marker) {
		return s.Marker[slider.Outside]
	}
	return s.Marker[state]
}

// ForLabel returns the label style for a step state
func (s *Styles) ForLabel(state slider.StepState) lipgloss.Style {
	if int(state) < 0 || int(state) >= len(s.Label) {
		return s.Label[slider.Outside]
	}
	return s.Label[state]
}
