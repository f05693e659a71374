package ui

import (
	uistate "github.com/atomicstack/receipt-split/internal/ui/state"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

func (m *Model) updateNameCursorModel(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	m.nameCursor, cmd = m.nameCursor.Update(msg)
	return cmd
}

func (m *Model) handleKeyMsg(msg tea.Msg) tea.Cmd {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}
	if key.Matches(keyMsg, m.keys.ForceQuit) {
		m.quitting = true
		return tea.Quit
	}
	evs := eventsFromKey(keyMsg)
	if len(evs) == 0 {
		return nil
	}
	m.errMsg = ""
	before := nameBuffer(m.app.Focus)
	for _, ev := range evs {
		res := uistate.Handle(m.app, ev)
		if res.Info != "" {
			m.setInfo(res.Info)
		}
		if res.Quit {
			m.quitting = true
			return tea.Quit
		}
	}
	if nameBuffer(m.app.Focus) != before {
		m.nameCursorDirty = true
	}
	m.syncViewports()
	return nil
}

// SetError shows msg in the status line until the next key press.
func (m *Model) SetError(msg string) {
	m.errMsg = msg
}

// SetInfo shows a transient status message.
func (m *Model) SetInfo(msg string) {
	m.setInfo(msg)
}

func nameBuffer(focus uistate.Focus) string {
	if f, ok := focus.(uistate.AddPerson); ok {
		return f.Buffer
	}
	return ""
}
