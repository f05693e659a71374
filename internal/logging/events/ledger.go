package events

import "github.com/atomicstack/receipt-split/internal/logging"

type LedgerTracer struct{}

type cancelReason string

const (
	ReasonEscape  cancelReason = "escape"
	ReasonNoOwner cancelReason = "no-owner"
)

var Ledger = LedgerTracer{}

func (LedgerTracer) SetOwners(item int, people []int) {
	logging.Trace("ledger.owners.set", map[string]interface{}{"item": item, "people": people})
}

func (LedgerTracer) CancelOwners(item int, reason cancelReason) {
	logging.Trace("ledger.owners.cancel", map[string]interface{}{"item": item, "reason": string(reason)})
}

func (LedgerTracer) DefaultOwner(person, changed int) {
	logging.Trace("ledger.default-owner", map[string]interface{}{"person": person, "changed": changed})
}

func (LedgerTracer) CancelDefaultOwner(reason cancelReason) {
	logging.Trace("ledger.default-owner.cancel", map[string]interface{}{"reason": string(reason)})
}

func (LedgerTracer) AddPerson(index int, name string) {
	logging.Trace("ledger.person.add", map[string]interface{}{"index": index, "name": name})
}

func (LedgerTracer) CancelAddPerson(reason cancelReason) {
	logging.Trace("ledger.person.cancel", map[string]interface{}{"reason": string(reason)})
}
