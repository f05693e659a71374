package app

import (
	"errors"
	"fmt"
	"time"

	"github.com/atomicstack/receipt-split/internal/backend"
	"github.com/atomicstack/receipt-split/internal/ledger"
	"github.com/atomicstack/receipt-split/internal/logging/events"
	"github.com/atomicstack/receipt-split/internal/receipt"
	"github.com/atomicstack/receipt-split/internal/ui"
	uistate "github.com/atomicstack/receipt-split/internal/ui/state"
	tea "github.com/charmbracelet/bubbletea"
)

// DefaultTickInterval is used when no interval is configured.
const DefaultTickInterval = 200 * time.Millisecond

// Config describes user-provided application options.
type Config struct {
	ReceiptPath  string
	People       []string
	TickInterval time.Duration
	Width        int
	Height       int
	ShowFooter   bool
}

// Receipt sources recorded on a Session.
const (
	SourceSample = "sample"
	SourceFile   = "file"
)

// Session is the initial state handed to the UI together with a message
// for the status line.
type Session struct {
	State   *uistate.AppState
	Source  string
	Info    string
	Warning string
}

// Run executes the Bubble Tea program over session until the user quits.
func Run(cfg Config, session Session) error {
	interval := cfg.TickInterval
	if interval <= 0 {
		interval = DefaultTickInterval
	}
	ticker := backend.NewTicker(interval)
	events.Tick.Started(ticker.Interval())
	defer func() {
		ticker.Stop()
		ticker.Wait()
	}()

	model := ui.NewModel(session.State, cfg.Width, cfg.Height, cfg.ShowFooter, ticker)
	if session.Warning != "" {
		model.SetError(session.Warning)
	} else if session.Info != "" {
		model.SetInfo(session.Info)
	}
	program := tea.NewProgram(model, tea.WithAltScreen())
	_, err := program.Run()
	if errors.Is(err, tea.ErrProgramKilled) {
		return nil
	}
	if err != nil {
		return err
	}
	return model.Err()
}

// NewSession loads the receipt named by cfg, or the built-in sample when no
// path is given, and seeds the configured people.
func NewSession(cfg Config) (Session, error) {
	if cfg.ReceiptPath == "" {
		items := ledger.DefaultItems()
		events.Receipt.Seeded(len(items))
		return Session{
			State:  uistate.NewAppState(ledger.New(items, cfg.People)),
			Source: SourceSample,
			Info:   fmt.Sprintf("Sample receipt with %d items", len(items)),
		}, nil
	}
	items, err := receipt.ParseFile(cfg.ReceiptPath)
	if err != nil {
		return Session{}, err
	}
	events.Receipt.Parsed(cfg.ReceiptPath, len(items))
	session := Session{
		State:  uistate.NewAppState(ledger.New(items, cfg.People)),
		Source: SourceFile,
	}
	if len(items) == 0 {
		session.Warning = fmt.Sprintf("no items found in %s", cfg.ReceiptPath)
	} else {
		session.Info = fmt.Sprintf("Loaded %d item(s) from %s", len(items), cfg.ReceiptPath)
	}
	return session, nil
}
