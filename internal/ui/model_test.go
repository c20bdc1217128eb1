package ui

import (
	"errors"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"stepslider/internal/config"
	"stepslider/internal/domain"
	"stepslider/internal/eventbus"
	"stepslider/internal/ui/views"
)

// With the default config and an 80 column terminal the track is 76 cells
// wide and the steps 0..100 sit at slider x = 2 + 7.2*i.
const (
	termWidth = 80
	lowerCol  = views.SliderLeft + 2
	upperCol  = views.SliderLeft + 74
	trackY    = views.SliderTop + views.TrackRow
)

func newTestModel(t *testing.T, bus eventbus.EventBus) *Model {
	t.Helper()
	m, err := NewModel(bus, config.DefaultConfig())
	require.NoError(t, err)
	m.Update(tea.WindowSizeMsg{Width: termWidth, Height: 24})
	return m
}

func mouse(action tea.MouseAction, x, y int) tea.MouseMsg {
	return tea.MouseMsg{X: x, Y: y, Action: action, Button: tea.MouseButtonLeft}
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestNewModelRejectsBadConfig(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Slider.Steps = []float64{1, 2}
	_, err := NewModel(nil, cfg)
	assert.ErrorIs(t, err, domain.ErrInvalidConfiguration)
}

func TestDragLowerHandle(t *testing.T) {
	m := newTestModel(t, nil)

	m.Update(mouse(tea.MouseActionPress, lowerCol, trackY))
	assert.Equal(t, domain.Lower, m.slider.Dragging())

	m.Update(mouse(tea.MouseActionMotion, views.SliderLeft+38, trackY))
	assert.Equal(t, 38.0, m.slider.HandleX(domain.Lower))

	m.Update(mouse(tea.MouseActionRelease, views.SliderLeft+38, trackY))
	assert.Equal(t, domain.NoHandle, m.slider.Dragging())

	r := m.Range()
	assert.Equal(t, 5, r.LowerIndex)
	assert.Equal(t, 10, r.UpperIndex)
	assert.Equal(t, "50", r.Lower)
	assert.Equal(t, "100", r.Upper)

	require.Len(t, m.history, 1)
	assert.Equal(t, domain.Lower, m.history[0].Handle)
	assert.Contains(t, m.View(), "50 – 100")
}

func TestPressOutsideSliderRowsIsIgnored(t *testing.T) {
	m := newTestModel(t, nil)

	m.Update(mouse(tea.MouseActionPress, lowerCol, 0))
	assert.Equal(t, domain.NoHandle, m.slider.Dragging())

	m.Update(mouse(tea.MouseActionMotion, views.SliderLeft+38, trackY))
	m.Update(mouse(tea.MouseActionRelease, views.SliderLeft+38, trackY))
	assert.Empty(t, m.history)
}

func TestPressFarFromHandlesIsVetoed(t *testing.T) {
	m := newTestModel(t, nil)

	m.Update(mouse(tea.MouseActionPress, views.SliderLeft+38, trackY))
	assert.Equal(t, domain.NoHandle, m.slider.Dragging())
}

func TestRightButtonDoesNotStartGesture(t *testing.T) {
	m := newTestModel(t, nil)

	msg := mouse(tea.MouseActionPress, lowerCol, trackY)
	msg.Button = tea.MouseButtonRight
	m.Update(msg)
	assert.Equal(t, domain.NoHandle, m.slider.Dragging())
}

func TestBlurCommitsDrag(t *testing.T) {
	m := newTestModel(t, nil)

	m.Update(mouse(tea.MouseActionPress, upperCol, trackY))
	m.Update(mouse(tea.MouseActionMotion, views.SliderLeft+28, trackY))
	m.Update(tea.BlurMsg{})

	assert.Equal(t, domain.NoHandle, m.slider.Dragging())
	r := m.Range()
	assert.Equal(t, 0, r.LowerIndex)
	assert.Equal(t, 4, r.UpperIndex)
	require.Len(t, m.history, 1)
	assert.Equal(t, domain.Upper, m.history[0].Handle)

	// Blur while idle changes nothing
	m.Update(tea.BlurMsg{})
	assert.Len(t, m.history, 1)
}

func TestEventsPublished(t *testing.T) {
	bus := eventbus.New()
	defer bus.Close()

	started := make(chan eventbus.GestureStartedEvent, 1)
	changed := make(chan eventbus.RangeChangedEvent, 1)
	bus.Subscribe(eventbus.EventGestureStarted, func(e eventbus.DomainEvent) {
		started <- e.(eventbus.GestureStartedEvent)
	})
	bus.Subscribe(eventbus.EventRangeChanged, func(e eventbus.DomainEvent) {
		changed <- e.(eventbus.RangeChangedEvent)
	})

	m := newTestModel(t, bus)
	m.Update(mouse(tea.MouseActionPress, lowerCol, trackY))
	m.Update(mouse(tea.MouseActionRelease, lowerCol, trackY))

	select {
	case e := <-started:
		assert.Equal(t, m.SliderID(), e.SliderID)
		assert.Equal(t, domain.Lower, e.Handle)
	case <-time.After(2 * time.Second):
		t.Fatal("no GestureStarted event")
	}

	select {
	case e := <-changed:
		assert.Equal(t, m.SliderID(), e.SliderID)
		assert.Equal(t, domain.Lower, e.Handle)
		assert.Equal(t, "0", e.Range.Lower)
		assert.Equal(t, "100", e.Range.Upper)
	case <-time.After(2 * time.Second):
		t.Fatal("no RangeChanged event")
	}
}

func TestNarrowTerminal(t *testing.T) {
	m := newTestModel(t, nil)

	m.Update(tea.WindowSizeMsg{Width: 6, Height: 24})
	assert.True(t, m.narrow)
	assert.True(t, m.statusIsError)
	assert.Contains(t, m.View(), "too narrow")

	m.Update(mouse(tea.MouseActionPress, lowerCol, trackY))
	assert.Equal(t, domain.NoHandle, m.slider.Dragging())

	m.Update(tea.WindowSizeMsg{Width: termWidth, Height: 24})
	assert.False(t, m.narrow)
	assert.False(t, m.statusIsError)
}

func TestAcceptAndQuit(t *testing.T) {
	m := newTestModel(t, nil)
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
	assert.True(t, m.Accepted())

	m = newTestModel(t, nil)
	_, cmd = m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
	assert.False(t, m.Accepted())
}

func TestCopyRange(t *testing.T) {
	m := newTestModel(t, nil)
	var copied string
	m.copyText = func(s string) error {
		copied = s
		return nil
	}

	_, cmd := m.Update(runes("y"))
	require.NotNil(t, cmd)
	msg := cmd()
	assert.Equal(t, "0 100", copied)

	m.Update(msg)
	assert.Contains(t, m.statusMessage, "0 100")
	assert.False(t, m.statusIsError)
}

func TestCopyRangeFailure(t *testing.T) {
	m := newTestModel(t, nil)
	m.copyText = func(string) error { return errors.New("no clipboard") }

	_, cmd := m.Update(runes("y"))
	m.Update(cmd())
	assert.True(t, m.statusIsError)
	assert.Contains(t, m.statusMessage, "no clipboard")

	m.Update(clearStatusMsg{})
	assert.Empty(t, m.statusMessage)
}

func TestHistoryWithoutProgram(t *testing.T) {
	m := newTestModel(t, nil)
	m.Update(runes("H"))
	assert.True(t, m.statusIsError)
	assert.Contains(t, m.statusMessage, "unavailable")
}

func TestHelpToggle(t *testing.T) {
	m := newTestModel(t, nil)
	require.True(t, m.showHelp)
	assert.False(t, m.help.ShowAll)

	m.Update(runes("?"))
	assert.True(t, m.help.ShowAll)
	assert.Contains(t, m.View(), "copy range")

	m.config.UISettings.ShowHelp = false
	m.showHelp = false
	m.Update(runes("?"))
	assert.True(t, m.showHelp)
}

func TestPagerModeBlanksView(t *testing.T) {
	m := newTestModel(t, nil)
	m.Update(pauseRenderingMsg{})
	assert.Empty(t, m.View())
	m.Update(resumeRenderingMsg{})
	assert.NotEmpty(t, m.View())
}

func TestRenderHistory(t *testing.T) {
	at := time.Date(2024, 1, 2, 15, 4, 5, 0, time.UTC)
	out := renderHistory("Price", []historyEntry{
		{At: at, Handle: domain.Upper, Range: domain.Range{Lower: "10", Upper: "40"}},
	})
	assert.Contains(t, out, "Price history")
	assert.Contains(t, out, "15:04:05")
	assert.Contains(t, out, "upper")
	assert.Contains(t, out, "10 – 40")

	assert.Contains(t, renderHistory("Price", nil), "No changes yet")
}

func TestMinSeparationZeroLetsHandlesMeet(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Slider.MinSeparationSteps = 0
	m, err := NewModel(nil, cfg)
	require.NoError(t, err)
	m.Update(tea.WindowSizeMsg{Width: termWidth, Height: 24})

	m.Update(mouse(tea.MouseActionPress, upperCol, trackY))
	m.Update(mouse(tea.MouseActionMotion, lowerCol, trackY))
	m.Update(mouse(tea.MouseActionRelease, lowerCol, trackY))

	r := m.Range()
	assert.Equal(t, 0, r.LowerIndex)
	assert.Equal(t, 0, r.UpperIndex)
}
