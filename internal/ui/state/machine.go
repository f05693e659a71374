package state

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/atomicstack/receipt-split/internal/ledger"
	"github.com/atomicstack/receipt-split/internal/logging/events"
)

// Result reports what Handle did with an event.
type Result struct {
	// Quit is set when the active mode recognised the quit key.
	Quit bool
	// Info is a short human readable note about a committed change.
	Info string
}

// Handle routes ev to the handler of the active mode. Only that handler runs,
// so one mode can never mutate state that belongs to another.
func Handle(app *AppState, ev Event) Result {
	if app == nil || ev.Key == KeyTick {
		return Result{}
	}
	if app.Ledger == nil {
		app.Ledger = ledger.New(nil, nil)
	}
	if app.Focus == nil {
		app.Focus = Items{}
	}
	before := app.Focus
	var res Result
	switch f := app.Focus.(type) {
	case Items:
		app.Focus, res = handleItems(app.Ledger, f, ev)
	case People:
		app.Focus, res = handlePeople(app.Ledger, f, ev)
	case OwnerSelector:
		app.Focus, res = handleOwnerSelector(app.Ledger, f, ev)
	case RestOwnerSelector:
		app.Focus, res = handleRestOwnerSelector(app.Ledger, f, ev)
	case AddPerson:
		app.Focus, res = handleAddPerson(app.Ledger, f, ev)
	}
	switch {
	case res.Quit:
		events.Focus.Quit(before.Name())
	case before.Name() != app.Focus.Name():
		events.Focus.Transition(before.Name(), app.Focus.Name())
	}
	return res
}

func handleItems(l *ledger.Ledger, f Items, ev Event) (Focus, Result) {
	if ev.isQuit() {
		return f, Result{Quit: true}
	}
	if delta := ev.navDelta(); delta != 0 {
		if next := StepCursor(f.Selected, delta, l.Len()); next != f.Selected {
			f.Selected = next
			events.Focus.Cursor(f.Name(), next)
		}
		return f, Result{}
	}
	switch {
	case ev.Key == KeyEnter:
		if l.Len() == 0 {
			return f, Result{}
		}
		return OwnerSelector{Item: f.Selected}, Result{}
	case ev.isRune('r', 'R'):
		if l.Len() == 0 {
			return f, Result{}
		}
		return RestOwnerSelector{}, Result{}
	case ev.isRune('a', 'A'):
		return AddPerson{}, Result{}
	case ev.Key == KeyTab:
		return People{}, Result{}
	}
	return f, Result{}
}

func handlePeople(l *ledger.Ledger, f People, ev Event) (Focus, Result) {
	if ev.isQuit() {
		return f, Result{Quit: true}
	}
	if delta := ev.navDelta(); delta != 0 {
		if next := StepCursor(f.Selected, delta, l.PeopleLen()); next != f.Selected {
			f.Selected = next
			events.Focus.Cursor(f.Name(), next)
		}
		return f, Result{}
	}
	if ev.Key == KeyTab || ev.Key == KeyEsc {
		return Items{}, Result{}
	}
	return f, Result{}
}

func handleOwnerSelector(l *ledger.Ledger, f OwnerSelector, ev Event) (Focus, Result) {
	if ev.isQuit() {
		return f, Result{Quit: true}
	}
	if delta := ev.navDelta(); delta != 0 {
		if next := StepCursor(f.Cursor, delta, l.PeopleLen()); next != f.Cursor {
			f.Cursor = next
			events.Focus.Cursor(f.Name(), next)
		}
		return f, Result{}
	}
	switch {
	case ev.isRune('p', 'P'):
		if l.ValidPerson(f.Cursor) {
			f.Pending = appendPerson(f.Pending, f.Cursor)
			events.Focus.Pending(f.Item, f.Pending)
		}
		return f, Result{}
	case ev.Key == KeyEnter:
		pending := f.Pending
		if l.ValidPerson(f.Cursor) {
			pending = appendPerson(pending, f.Cursor)
		}
		back := Items{Selected: f.Item}
		if len(pending) == 0 {
			events.Ledger.CancelOwners(f.Item, events.ReasonNoOwner)
			return back, Result{}
		}
		var ok bool
		if person, sole := ledger.SoleOwner(pending); sole {
			ok = l.SetSoleOwner(f.Item, person)
		} else {
			ok = l.SetOwners(f.Item, ledger.EqualSplit(pending))
		}
		if !ok {
			events.Ledger.CancelOwners(f.Item, events.ReasonNoOwner)
			return back, Result{}
		}
		events.Ledger.SetOwners(f.Item, pending)
		return back, Result{Info: ownersInfo(l, f.Item)}
	case ev.Key == KeyEsc:
		events.Ledger.CancelOwners(f.Item, events.ReasonEscape)
		return Items{Selected: f.Item}, Result{}
	}
	return f, Result{}
}

func handleRestOwnerSelector(l *ledger.Ledger, f RestOwnerSelector, ev Event) (Focus, Result) {
	if delta := ev.navDelta(); delta != 0 {
		if next := StepCursor(f.Cursor, delta, l.PeopleLen()); next != f.Cursor {
			f.Cursor = next
			events.Focus.Cursor(f.Name(), next)
		}
		return f, Result{}
	}
	switch ev.Key {
	case KeyEnter:
		name, ok := l.Person(f.Cursor)
		if !ok {
			events.Ledger.CancelDefaultOwner(events.ReasonNoOwner)
			return Items{}, Result{}
		}
		changed := l.ApplyDefaultOwnerToUnowned(f.Cursor)
		events.Ledger.DefaultOwner(f.Cursor, changed)
		return Items{}, Result{Info: fmt.Sprintf("Assigned %d unowned %s to %s", changed, plural(changed, "item"), displayName(name))}
	case KeyEsc:
		events.Ledger.CancelDefaultOwner(events.ReasonEscape)
		return Items{}, Result{}
	}
	return f, Result{}
}

func handleAddPerson(l *ledger.Ledger, f AddPerson, ev Event) (Focus, Result) {
	switch ev.Key {
	case KeyRune:
		if !unicode.IsPrint(ev.Rune) {
			return f, Result{}
		}
		f.Buffer += string(ev.Rune)
		events.Focus.Buffer(f.Buffer)
	case KeyBackspace:
		if runes := []rune(f.Buffer); len(runes) > 0 {
			f.Buffer = string(runes[:len(runes)-1])
			events.Focus.Buffer(f.Buffer)
		}
	case KeyEnter:
		idx := l.AddPerson(f.Buffer)
		events.Ledger.AddPerson(idx, f.Buffer)
		return Items{}, Result{Info: fmt.Sprintf("Added %s", displayName(f.Buffer))}
	case KeyEsc:
		events.Ledger.CancelAddPerson(events.ReasonEscape)
		return Items{}, Result{}
	}
	return f, Result{}
}

// appendPerson copies before appending so earlier Focus values never share
// a backing array with later ones.
func appendPerson(pending []int, person int) []int {
	out := make([]int, len(pending), len(pending)+1)
	copy(out, pending)
	return append(out, person)
}

func ownersInfo(l *ledger.Ledger, idx int) string {
	item, ok := l.Item(idx)
	if !ok {
		return ""
	}
	names := make([]string, 0, len(item.Owners))
	for _, o := range item.Owners {
		name, _ := l.Person(o.Person)
		names = append(names, displayName(name))
	}
	return fmt.Sprintf("%s → %s", item.Description, strings.Join(names, ", "))
}

func displayName(name string) string {
	if name == "" {
		return "(unnamed)"
	}
	return name
}

func plural(n int, word string) string {
	if n == 1 {
		return word
	}
	return word + "s"
}
