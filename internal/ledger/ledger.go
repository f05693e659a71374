package ledger

import "github.com/shopspring/decimal"

// Ownership records a fractional claim of one person on an item's price.
type Ownership struct {
	Person     int
	Percentage float64
}

// Item is a single receipt line.
type Item struct {
	Description string
	Quantity    int
	Price       decimal.Decimal
	Owners      []Ownership
}

// Owned reports whether anyone holds a share of the item.
func (i Item) Owned() bool {
	return len(i.Owners) > 0
}

// Ledger owns the items and people of a session. People are identified by
// their position and are never removed, so indices stay stable.
type Ledger struct {
	items  []Item
	people []string
}

// New builds a ledger from parsed items and an optional initial people list.
func New(items []Item, people []string) *Ledger {
	l := &Ledger{
		items:  make([]Item, len(items)),
		people: append([]string(nil), people...),
	}
	for i, item := range items {
		item.Owners = cloneOwners(item.Owners)
		l.items[i] = item
	}
	return l
}

// Len returns the number of items.
func (l *Ledger) Len() int {
	return len(l.items)
}

// PeopleLen returns the number of people.
func (l *Ledger) PeopleLen() int {
	return len(l.people)
}

// Items returns a copy of all items.
func (l *Ledger) Items() []Item {
	out := make([]Item, len(l.items))
	for i, item := range l.items {
		item.Owners = cloneOwners(item.Owners)
		out[i] = item
	}
	return out
}

// Item returns the item at idx.
func (l *Ledger) Item(idx int) (Item, bool) {
	if !l.validItem(idx) {
		return Item{}, false
	}
	item := l.items[idx]
	item.Owners = cloneOwners(item.Owners)
	return item, true
}

// People returns a copy of the people names in index order.
func (l *Ledger) People() []string {
	return append([]string(nil), l.people...)
}

// Person returns the name stored at idx.
func (l *Ledger) Person(idx int) (string, bool) {
	if !l.ValidPerson(idx) {
		return "", false
	}
	return l.people[idx], true
}

// ValidPerson reports whether idx refers to an existing person.
func (l *Ledger) ValidPerson(idx int) bool {
	return idx >= 0 && idx < len(l.people)
}

func (l *Ledger) validItem(idx int) bool {
	return idx >= 0 && idx < len(l.items)
}

// AddPerson appends name and returns its index. Empty and duplicate names
// are accepted.
func (l *Ledger) AddPerson(name string) int {
	l.people = append(l.people, name)
	return len(l.people) - 1
}

// SetSoleOwner makes person the only owner of item at 100%.
func (l *Ledger) SetSoleOwner(item, person int) bool {
	if !l.validItem(item) || !l.ValidPerson(person) {
		return false
	}
	owners := l.items[item].Owners
	if len(owners) == 1 {
		owners[0] = Ownership{Person: person, Percentage: 1}
		return true
	}
	l.items[item].Owners = []Ownership{{Person: person, Percentage: 1}}
	return true
}

// SetOwners replaces the owner list of item. Entries naming the same person
// are merged into one.
func (l *Ledger) SetOwners(item int, owners []Ownership) bool {
	if !l.validItem(item) {
		return false
	}
	for _, o := range owners {
		if !l.ValidPerson(o.Person) {
			return false
		}
	}
	l.items[item].Owners = MergeDuplicateOwners(owners)
	return true
}

// ApplyDefaultOwnerToUnowned assigns person as sole owner of every item that
// has no owners yet and returns how many items changed.
func (l *Ledger) ApplyDefaultOwnerToUnowned(person int) int {
	if !l.ValidPerson(person) {
		return 0
	}
	changed := 0
	for i := range l.items {
		if l.items[i].Owned() {
			continue
		}
		l.items[i].Owners = []Ownership{{Person: person, Percentage: 1}}
		changed++
	}
	return changed
}

// Totals returns the share of every person, ordered by person index.
func (l *Ledger) Totals() []decimal.Decimal {
	totals := make([]decimal.Decimal, len(l.people))
	for i := range totals {
		totals[i] = decimal.Zero
	}
	for _, item := range l.items {
		for _, o := range item.Owners {
			if !l.ValidPerson(o.Person) {
				continue
			}
			share := item.Price.Mul(decimal.NewFromFloat(o.Percentage))
			totals[o.Person] = totals[o.Person].Add(share)
		}
	}
	return totals
}

// Unassigned sums the price of every item without owners.
func (l *Ledger) Unassigned() decimal.Decimal {
	sum := decimal.Zero
	for _, item := range l.items {
		if !item.Owned() {
			sum = sum.Add(item.Price)
		}
	}
	return sum
}

// Total sums the price of every item.
func (l *Ledger) Total() decimal.Decimal {
	sum := decimal.Zero
	for _, item := range l.items {
		sum = sum.Add(item.Price)
	}
	return sum
}

func cloneOwners(owners []Ownership) []Ownership {
	if len(owners) == 0 {
		return nil
	}
	dup := make([]Ownership, len(owners))
	copy(dup, owners)
	return dup
}
