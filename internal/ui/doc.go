// Package ui contains the Bubble Tea program that renders the receipt
// splitter. The Model type only translates terminal messages and draws
// state; every decision about focus and ownership is made by
// internal/ui/state.Handle.
//
// Message flow:
//   - Bubble Tea invokes Model.Update with incoming messages, which are routed
//     through a typed handler registry so each tea.Msg is handled by a focused
//     function.
//   - Key presses are translated into state.Event values (internal/ui/keys.go)
//     and fed to state.Handle one at a time. A pasted string becomes one event
//     per rune. ctrl+c quits from any mode without reaching the state machine.
//   - A backend.Ticker publishes timer events from its own goroutine. Update
//     waits for them with a tea.Cmd, forwards each as state.Tick, and uses the
//     tick to expire status messages.
//
// State ownership:
//   - The focus and the ledger live in a single state.AppState owned by the
//     model and handed to state.Handle explicitly.
//   - The model keeps only presentation state: terminal size, scroll offsets,
//     the transient status line, and the caret of the name entry.
package ui
