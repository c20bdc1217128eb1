package ui

import (
	"fmt"
	"log"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"

	"stepslider/internal/config"
	"stepslider/internal/domain"
	"stepslider/internal/eventbus"
	"stepslider/internal/slider"
	"stepslider/internal/slider/gesture"
	"stepslider/internal/ui/views"
)

const statusTimeout = 3 * time.Second

// Model represents the UI state
type Model struct {
	bus    eventbus.EventBus
	config *config.Config

	slider   *slider.Controller[float64]
	sliderID string
	changed  bool // set by the slider callback during a pointer event

	// UI-specific state
	width         int
	height        int
	narrow        bool
	help          help.Model
	keys          keyMap
	showHelp      bool
	statusMessage string
	statusIsError bool
	history       []historyEntry
	accepted      bool
	inPagerMode   bool

	renderer *views.Renderer
	pager    *PagerOps
	copyText func(string) error

	// Program reference for terminal management
	program *tea.Program
}

// NewModel creates a new UI model hosting one slider built from cfg
func NewModel(bus eventbus.EventBus, cfg *config.Config) (*Model, error) {
	steps, err := cfg.Slider.ResolveSteps()
	if err != nil {
		return nil, err
	}

	m := &Model{
		bus:      bus,
		config:   cfg,
		sliderID: uuid.NewString(),
		help:     help.New(),
		keys:     newKeyMap(),
		showHelp: cfg.UISettings.ShowHelp,
		renderer: views.NewRenderer(),
		pager:    NewPagerOps(),
		copyText: clipboard.WriteAll,
	}

	separation := cfg.Slider.MinSeparationSteps
	if separation <= 0 {
		separation = slider.NoSeparation
	}

	m.slider, err = slider.New(slider.Options[float64]{
		Steps:              steps,
		InitialLower:       cfg.Slider.InitialLower,
		InitialUpper:       cfg.Slider.Upper(len(steps)),
		HandleRadius:       cfg.Slider.HandleRadius,
		TickRadius:         cfg.Slider.TickRadius,
		TouchTolerance:     cfg.Slider.TouchTolerance,
		MinSeparationSteps: separation,
		OnRangeChanged: func(lower, upper float64) {
			m.changed = true
		},
	})
	if err != nil {
		return nil, err
	}

	return m, nil
}

// SetProgram sets the program reference for terminal management
func (m *Model) SetProgram(p *tea.Program) {
	m.program = p
	m.pager.SetProgram(p)
}

// SliderID identifies the hosted slider on published events
func (m *Model) SliderID() string { return m.sliderID }

// Range returns the committed range
func (m *Model) Range() domain.Range { return m.slider.Range() }

// Accepted reports whether the user accepted the range before quitting
func (m *Model) Accepted() bool { return m.accepted }

// Init returns an initial command
func (m *Model) Init() tea.Cmd {
	if m.config.UISettings.Title == "" {
		return nil
	}
	return tea.SetWindowTitle(m.config.UISettings.Title)
}

// Update handles messages
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.layout()
		return m, nil

	case tea.MouseMsg:
		m.handleMouse(msg)
		return m, nil

	case tea.BlurMsg:
		// Losing focus mid-drag ends the gesture where the handle is
		if m.slider.Dragging() != domain.NoHandle {
			m.feed(gesture.PointerEvent{Phase: gesture.Cancel})
		}
		return m, nil

	case tea.KeyMsg:
		return m, m.handleKey(msg)

	case clipboardMsg:
		if msg.err != nil {
			log.Printf("Clipboard copy failed: %v", msg.err)
			m.setError(fmt.Sprintf("Copy failed: %v", msg.err), msg.err)
		} else {
			m.statusMessage = fmt.Sprintf("Copied %q", msg.text)
			m.statusIsError = false
		}
		return m, clearStatusAfter()

	case historyPagerMsg:
		if msg.err != nil {
			log.Printf("History pager failed: %v", msg.err)
			m.setError(fmt.Sprintf("History pager failed: %v", msg.err), msg.err)
			return m, clearStatusAfter()
		}
		return m, nil

	case pauseRenderingMsg:
		m.inPagerMode = true
		return m, nil

	case resumeRenderingMsg:
		m.inPagerMode = false
		return m, nil

	case clearStatusMsg:
		if !m.narrow {
			m.statusMessage = ""
			m.statusIsError = false
		}
		return m, nil
	}

	return m, nil
}

// View renders the UI
func (m *Model) View() string {
	if m.inPagerMode {
		return ""
	}

	state := views.ViewState{
		Width:         m.width,
		Height:        m.height,
		Title:         m.config.UISettings.Title,
		Range:         m.slider.Range(),
		ShowLabels:    m.config.UISettings.ShowLabels,
		StatusMessage: m.statusMessage,
		StatusIsError: m.statusIsError,
		HistoryCount:  len(m.history),
	}
	if !m.narrow {
		state.Frame = m.slider.Frame()
	}
	if m.showHelp {
		state.HelpView = m.help.View(m.keys)
	}
	return m.renderer.Render(state)
}

// layout fits the slider to the terminal width
func (m *Model) layout() {
	width := views.TrackWidth(m.width)
	if err := m.slider.Layout(float64(width)); err != nil {
		m.narrow = true
		log.Printf("Layout failed for width %d: %v", width, err)
		m.setError("Terminal too narrow for the slider", err)
		return
	}
	if m.narrow {
		m.narrow = false
		m.statusMessage = ""
		m.statusIsError = false
	}
}

// handleMouse translates terminal mouse events into pointer events
func (m *Model) handleMouse(msg tea.MouseMsg) {
	if m.narrow {
		return
	}

	var phase gesture.Phase
	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft || !views.InSlider(msg.Y) {
			return
		}
		phase = gesture.Down
	case tea.MouseActionMotion:
		if m.slider.Dragging() == domain.NoHandle {
			return
		}
		phase = gesture.Move
	case tea.MouseActionRelease:
		phase = gesture.Up
	default:
		return
	}

	m.feed(gesture.PointerEvent{
		Phase: phase,
		X:     views.SliderX(msg.X),
		Y:     float64(msg.Y - views.SliderTop),
	})
}

// feed passes one pointer event to the slider and publishes what it caused
func (m *Model) feed(ev gesture.PointerEvent) bool {
	handle := m.slider.Dragging()
	m.changed = false

	consumed := m.slider.HandlePointer(ev)

	if ev.Phase == gesture.Down && consumed && m.bus != nil {
		m.bus.Publish(eventbus.GestureStartedEvent{
			SliderID: m.sliderID,
			Handle:   m.slider.Dragging(),
		})
	}
	if m.changed {
		m.recordChange(handle)
	}
	return consumed
}

// recordChange appends a committed range to the history and announces it
func (m *Model) recordChange(handle domain.Handle) {
	r := m.slider.Range()
	m.history = append(m.history, historyEntry{At: time.Now(), Handle: handle, Range: r})
	m.statusMessage = fmt.Sprintf("Range %s – %s", r.Lower, r.Upper)
	m.statusIsError = false

	if m.bus != nil {
		m.bus.Publish(eventbus.RangeChangedEvent{
			SliderID: m.sliderID,
			Handle:   handle,
			Range:    r,
		})
	}
}

func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.keys.Accept):
		m.accepted = true
		return tea.Quit

	case key.Matches(msg, m.keys.Quit):
		return tea.Quit

	case key.Matches(msg, m.keys.Copy):
		return m.copyRange()

	case key.Matches(msg, m.keys.History):
		if m.program == nil {
			m.setError("History pager unavailable", nil)
			return clearStatusAfter()
		}
		return m.historyPager()

	case key.Matches(msg, m.keys.Help):
		if !m.showHelp {
			m.showHelp = true
			return nil
		}
		m.help.ShowAll = !m.help.ShowAll
	}
	return nil
}

// copyRange returns a command that copies "lower upper" to the clipboard
func (m *Model) copyRange() tea.Cmd {
	r := m.slider.Range()
	text := r.Lower + " " + r.Upper
	copyText := m.copyText
	return func() tea.Msg {
		return clipboardMsg{text: text, err: copyText(text)}
	}
}

// historyPager returns a command that shows the range history using ov pager
func (m *Model) historyPager() tea.Cmd {
	title := m.config.UISettings.Title
	if title == "" {
		title = "Range"
	}
	content := renderHistory(title, m.history)
	return func() tea.Msg {
		// Send pause message to stop rendering
		m.program.Send(pauseRenderingMsg{})

		err := m.pager.ShowInPager(content)

		// Send resume message to restart rendering
		m.program.Send(resumeRenderingMsg{})

		return historyPagerMsg{err: err}
	}
}

func (m *Model) setError(message string, err error) {
	m.statusMessage = message
	m.statusIsError = true
	if m.bus != nil {
		m.bus.Publish(eventbus.ErrorEvent{Message: message, Err: err})
	}
}

func clearStatusAfter() tea.Cmd {
	return tea.Tick(statusTimeout, func(time.Time) tea.Msg { return clearStatusMsg{} })
}
