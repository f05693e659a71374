package main

import (
	"fmt"
	"os"

	"github.com/atomicstack/receipt-split/internal/app"
	"github.com/atomicstack/receipt-split/internal/config"
	"github.com/atomicstack/receipt-split/internal/logging"
	"github.com/atomicstack/receipt-split/internal/logging/events"
	"golang.org/x/term"
)

func main() {
	runtimeCfg := config.MustLoad()
	if err := config.Validate(runtimeCfg); err != nil {
		fmt.Fprintf(os.Stderr, "Configuration error: %v\n", err)
		os.Exit(2)
	}
	logging.Configure(runtimeCfg.Logging.FilePath)
	logging.SetTraceEnabled(runtimeCfg.Logging.Trace)

	session, err := app.NewSession(runtimeCfg.App)
	if err == nil {
		if logging.TraceEnabled() {
			events.App.Start(startupTracePayload(runtimeCfg, session))
		}
		err = app.Run(runtimeCfg.App, session)
	}
	events.App.Exit(err)
	if err != nil {
		logging.Error(err)
		logging.Close()
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	logging.Close()
}

type receiptDetails struct {
	Source     string `json:"source"`
	Path       string `json:"path,omitempty"`
	Items      int    `json:"items"`
	Total      string `json:"total"`
	Unassigned string `json:"unassigned"`
	Warning    string `json:"warning,omitempty"`
}

type viewportDetails struct {
	Source string `json:"source"`
	Width  int    `json:"width,omitempty"`
	Height int    `json:"height,omitempty"`
	Error  string `json:"error,omitempty"`
}

// startupTracePayload describes the loaded receipt, the seeded people and
// the viewport the first frame will be drawn into.
func startupTracePayload(cfg config.Config, session app.Session) map[string]interface{} {
	l := session.State.Ledger
	return map[string]interface{}{
		"argv":       cfg.Args,
		"flags":      cfg.Flags,
		"configFile": cfg.File,
		"receipt": receiptDetails{
			Source:     session.Source,
			Path:       cfg.App.ReceiptPath,
			Items:      l.Len(),
			Total:      l.Total().StringFixed(2),
			Unassigned: l.Unassigned().StringFixed(2),
			Warning:    session.Warning,
		},
		"people":   l.People(),
		"tick":     cfg.App.TickInterval.String(),
		"viewport": detectViewport(cfg.App),
	}
}

// detectViewport reports the configured size, filling unset dimensions from
// the terminal on stdout when there is one.
func detectViewport(cfg app.Config) viewportDetails {
	v := viewportDetails{Source: "config", Width: cfg.Width, Height: cfg.Height}
	if v.Width > 0 && v.Height > 0 {
		return v
	}
	fd := int(os.Stdout.Fd())
	if !term.IsTerminal(fd) {
		v.Source = "none"
		v.Error = "stdout is not a terminal"
		return v
	}
	width, height, err := term.GetSize(fd)
	if err != nil {
		v.Error = err.Error()
		return v
	}
	if v.Width == 0 {
		v.Width = width
	}
	if v.Height == 0 {
		v.Height = height
	}
	v.Source = "terminal"
	return v
}
