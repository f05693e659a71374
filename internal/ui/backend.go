package ui

import (
	"errors"

	"github.com/atomicstack/receipt-split/internal/backend"
	"github.com/atomicstack/receipt-split/internal/logging/events"
	uistate "github.com/atomicstack/receipt-split/internal/ui/state"
	tea "github.com/charmbracelet/bubbletea"
)

func waitForTick(t *backend.Ticker) tea.Cmd {
	return func() tea.Msg {
		evt, ok := <-t.Events()
		if !ok {
			return tickDoneMsg{}
		}
		return tickMsg{event: evt}
	}
}

type tickMsg struct {
	event backend.Event
}

type tickDoneMsg struct{}

// ErrTickerStopped is reported when the tick source closes while the program
// is still running.
var ErrTickerStopped = errors.New("tick source stopped unexpectedly")

func (m *Model) handleTickMsg(msg tea.Msg) tea.Cmd {
	if _, ok := msg.(tickMsg); !ok {
		return nil
	}
	m.ticks++
	uistate.Handle(m.app, uistate.Tick)
	// expired status messages disappear on the next tick instead of
	// waiting for a key press
	m.clearInfo()
	if m.ticker != nil {
		return waitForTick(m.ticker)
	}
	return nil
}

func (m *Model) handleTickDoneMsg(tea.Msg) tea.Cmd {
	events.Tick.Done()
	m.ticker = nil
	if m.quitting {
		return nil
	}
	m.err = ErrTickerStopped
	m.quitting = true
	return tea.Quit
}
