package events

import (
	"time"

	"github.com/atomicstack/receipt-split/internal/logging"
)

type FocusTracer struct{}

type TickTracer struct{}

var (
	Focus = FocusTracer{}
	Tick  = TickTracer{}
)

func (FocusTracer) Transition(from, to string) {
	logging.Trace("focus.transition", map[string]interface{}{"from": from, "to": to})
}

func (FocusTracer) Cursor(mode string, cursor int) {
	logging.Trace("focus.cursor", map[string]interface{}{"mode": mode, "cursor": cursor})
}

func (FocusTracer) Quit(mode string) {
	logging.Trace("focus.quit", map[string]interface{}{"mode": mode})
}

func (FocusTracer) Pending(item int, pending []int) {
	logging.Trace("focus.owner.pending", map[string]interface{}{"item": item, "pending": pending})
}

func (FocusTracer) Buffer(buffer string) {
	logging.Trace("focus.person.buffer", map[string]interface{}{"buffer": buffer})
}

func (TickTracer) Started(interval time.Duration) {
	logging.Trace("tick.start", map[string]interface{}{"interval": interval.String()})
}

func (TickTracer) Done() {
	logging.Trace("tick.done", nil)
}
