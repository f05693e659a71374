package events

import "github.com/atomicstack/receipt-split/internal/logging"

type ReceiptTracer struct{}

var Receipt = ReceiptTracer{}

func (ReceiptTracer) Parsed(path string, items int) {
	logging.Trace("receipt.parsed", map[string]interface{}{"path": path, "items": items})
}

func (ReceiptTracer) Seeded(items int) {
	logging.Trace("receipt.seeded", map[string]interface{}{"items": items})
}
