package ui

import (
	uistate "github.com/atomicstack/receipt-split/internal/ui/state"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// keyMap holds the bindings shown in the footer. Dispatch itself goes
// through eventsFromKey and the state machine; only ForceQuit is matched
// here.
type keyMap struct {
	Up        key.Binding
	Down      key.Binding
	Assign    key.Binding
	Rest      key.Binding
	AddPerson key.Binding
	Toggle    key.Binding
	Back      key.Binding
	Mark      key.Binding
	Confirm   key.Binding
	Cancel    key.Binding
	Save      key.Binding
	Delete    key.Binding
	Quit      key.Binding
	ForceQuit key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		Up:        key.NewBinding(key.WithKeys("up", "k", "K"), key.WithHelp("↑/k", "up")),
		Down:      key.NewBinding(key.WithKeys("down", "j", "J"), key.WithHelp("↓/j", "down")),
		Assign:    key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "assign")),
		Rest:      key.NewBinding(key.WithKeys("r", "R"), key.WithHelp("r", "rest to…")),
		AddPerson: key.NewBinding(key.WithKeys("a", "A"), key.WithHelp("a", "add person")),
		Toggle:    key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "people")),
		Back:      key.NewBinding(key.WithKeys("tab", "esc"), key.WithHelp("tab/esc", "items")),
		Mark:      key.NewBinding(key.WithKeys("p", "P"), key.WithHelp("p", "add owner")),
		Confirm:   key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "confirm")),
		Cancel:    key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel")),
		Save:      key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "save")),
		Delete:    key.NewBinding(key.WithKeys("backspace"), key.WithHelp("backspace", "delete")),
		Quit:      key.NewBinding(key.WithKeys("q", "Q"), key.WithHelp("q", "quit")),
		ForceQuit: key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "quit")),
	}
}

// bindingsFor lists the footer bindings for the active mode.
func (k keyMap) bindingsFor(focus uistate.Focus) []key.Binding {
	switch focus.(type) {
	case uistate.People:
		return []key.Binding{k.Up, k.Down, k.Back, k.Quit}
	case uistate.OwnerSelector:
		return []key.Binding{k.Up, k.Down, k.Mark, k.Confirm, k.Cancel, k.Quit}
	case uistate.RestOwnerSelector:
		return []key.Binding{k.Up, k.Down, k.Confirm, k.Cancel, k.ForceQuit}
	case uistate.AddPerson:
		return []key.Binding{k.Save, k.Delete, k.Cancel, k.ForceQuit}
	default:
		return []key.Binding{k.Up, k.Down, k.Assign, k.Rest, k.AddPerson, k.Toggle, k.Quit}
	}
}

// eventsFromKey translates a terminal key press into state machine events.
// Pasted text arrives as a single KeyRunes message and yields one event per
// rune.
func eventsFromKey(msg tea.KeyMsg) []uistate.Event {
	switch msg.Type {
	case tea.KeyUp:
		return []uistate.Event{uistate.KeyEvent(uistate.KeyUp)}
	case tea.KeyDown:
		return []uistate.Event{uistate.KeyEvent(uistate.KeyDown)}
	case tea.KeyEnter:
		return []uistate.Event{uistate.KeyEvent(uistate.KeyEnter)}
	case tea.KeyEsc:
		return []uistate.Event{uistate.KeyEvent(uistate.KeyEsc)}
	case tea.KeyBackspace, tea.KeyCtrlH:
		return []uistate.Event{uistate.KeyEvent(uistate.KeyBackspace)}
	case tea.KeyTab:
		return []uistate.Event{uistate.KeyEvent(uistate.KeyTab)}
	case tea.KeySpace:
		return []uistate.Event{uistate.RuneEvent(' ')}
	case tea.KeyRunes:
		if msg.Alt || len(msg.Runes) == 0 {
			return nil
		}
		evs := make([]uistate.Event, 0, len(msg.Runes))
		for _, r := range msg.Runes {
			evs = append(evs, uistate.RuneEvent(r))
		}
		return evs
	}
	return nil
}
