package state

import "github.com/atomicstack/receipt-split/internal/ledger"

// Focus is the active interaction mode together with its editing state.
// Exactly one of Items, People, OwnerSelector, RestOwnerSelector or
// AddPerson is active at a time.
type Focus interface {
	isFocus()
	// Name identifies the mode in traces and view headers.
	Name() string
}

// Items browses the item table. It is the initial mode.
type Items struct {
	Selected int
}

// People browses the people table.
type People struct {
	Selected int
}

// OwnerSelector picks one or more owners for Item. Pending collects people
// marked with "p" before the final enter.
type OwnerSelector struct {
	Item    int
	Cursor  int
	Pending []int
}

// RestOwnerSelector picks the person who takes every still unowned item.
type RestOwnerSelector struct {
	Cursor int
}

// AddPerson composes the name of a new person.
type AddPerson struct {
	Buffer string
}

func (Items) isFocus()             {}
func (People) isFocus()            {}
func (OwnerSelector) isFocus()     {}
func (RestOwnerSelector) isFocus() {}
func (AddPerson) isFocus()         {}

func (Items) Name() string             { return "items" }
func (People) Name() string            { return "people" }
func (OwnerSelector) Name() string     { return "owner-selector" }
func (RestOwnerSelector) Name() string { return "rest-owner-selector" }
func (AddPerson) Name() string         { return "add-person" }

// IsPending reports whether person has been marked in the selector.
func (f OwnerSelector) IsPending(person int) bool {
	for _, p := range f.Pending {
		if p == person {
			return true
		}
	}
	return false
}

// AppState bundles the focus and the ledger it edits. It is passed
// explicitly to Handle; nothing else mutates it.
type AppState struct {
	Focus  Focus
	Ledger *ledger.Ledger
}

// NewAppState starts in the item table with the first row selected.
func NewAppState(l *ledger.Ledger) *AppState {
	if l == nil {
		l = ledger.New(nil, nil)
	}
	return &AppState{Focus: Items{}, Ledger: l}
}
