package ui

import (
	"reflect"
	"time"

	"github.com/atomicstack/receipt-split/internal/backend"
	"github.com/atomicstack/receipt-split/internal/theme"
	uistate "github.com/atomicstack/receipt-split/internal/ui/state"
	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
)

var styles = theme.Default()

type msgHandler func(tea.Msg) tea.Cmd

// Model implements the Bubble Tea model for the receipt splitter.
type Model struct {
	app         *uistate.AppState
	err         error
	errMsg      string
	infoMsg     string
	infoExpire  time.Time
	width       int
	height      int
	fixedWidth  bool
	fixedHeight bool
	showFooter  bool
	quitting    bool

	ticker *backend.Ticker
	ticks  int

	itemsOffset  int
	peopleOffset int

	nameCursor      cursor.Model
	nameCursorDirty bool

	keys keyMap
	help help.Model

	handlers map[reflect.Type]msgHandler
}

// NewModel wraps app in a Bubble Tea model. A nil app starts with an empty
// ledger; a nil ticker disables timer events.
func NewModel(app *uistate.AppState, width, height int, showFooter bool, ticker *backend.Ticker) *Model {
	if app == nil {
		app = uistate.NewAppState(nil)
	}
	m := &Model{
		app:        app,
		showFooter: showFooter,
		ticker:     ticker,
		keys:       newKeyMap(),
		help:       help.New(),
	}
	if width > 0 {
		m.width = width
		m.fixedWidth = true
	}
	if height > 0 {
		m.height = height
		m.fixedHeight = true
	}
	c := cursor.New()
	if styles.Cursor != nil {
		c.Style = styles.Cursor.Copy()
	}
	if styles.Input != nil {
		c.TextStyle = styles.Input.Copy()
	}
	c.SetChar(" ")
	m.nameCursor = c
	m.registerHandlers()
	return m
}

// App exposes the state the model edits.
func (m *Model) App() *uistate.AppState {
	return m.app
}

// Err reports the error that ended the program, if any.
func (m *Model) Err() error {
	return m.err
}

// Init is part of the tea.Model interface.
func (m *Model) Init() tea.Cmd {
	cmds := []tea.Cmd{}
	if m.ticker != nil {
		cmds = append(cmds, waitForTick(m.ticker))
	}
	if cmd := m.nameCursor.Focus(); cmd != nil {
		cmds = append(cmds, cmd)
	}
	if len(cmds) == 0 {
		return nil
	}
	return tea.Batch(cmds...)
}

// Update responds to Bubble Tea messages.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	cmds := make([]tea.Cmd, 0, 4)
	if cmd := m.updateNameCursorModel(msg); cmd != nil {
		cmds = append(cmds, cmd)
	}
	if handler := m.handlerFor(msg); handler != nil {
		if cmd := handler(msg); cmd != nil {
			cmds = append(cmds, cmd)
		}
	}
	return m, m.finishUpdate(cmds)
}

func (m *Model) registerHandlers() {
	m.handlers = map[reflect.Type]msgHandler{
		reflect.TypeOf(tea.KeyMsg{}):        m.handleKeyMsg,
		reflect.TypeOf(tea.WindowSizeMsg{}): m.handleWindowSizeMsg,
		reflect.TypeOf(tickMsg{}):           m.handleTickMsg,
		reflect.TypeOf(tickDoneMsg{}):       m.handleTickDoneMsg,
	}
}

func (m *Model) handlerFor(msg tea.Msg) msgHandler {
	if msg == nil || m.handlers == nil {
		return nil
	}
	t := reflect.TypeOf(msg)
	if handler, ok := m.handlers[t]; ok {
		return handler
	}
	if t.Kind() == reflect.Ptr {
		if handler, ok := m.handlers[t.Elem()]; ok {
			return handler
		}
	}
	return nil
}

func (m *Model) finishUpdate(cmds []tea.Cmd) tea.Cmd {
	if m.nameCursorDirty {
		m.nameCursorDirty = false
		m.nameCursor.Blink = false
		if cmd := m.nameCursor.BlinkCmd(); cmd != nil {
			cmds = append(cmds, cmd)
		}
	}
	if len(cmds) == 0 {
		return nil
	}
	return tea.Batch(cmds...)
}
