package ledger

import "github.com/shopspring/decimal"

const defaultSeedLines = 20

// DefaultItems returns the demo receipt used when no file is given: twenty
// alternating lines of the same yogurt bought in packs of two and one.
func DefaultItems() []Item {
	pair := [2]Item{
		{Description: "Iogurte Grego Natural Açucarado", Quantity: 2, Price: decimal.RequireFromString("2.48")},
		{Description: "Iogurte Grego Natural Açucarado", Quantity: 1, Price: decimal.RequireFromString("1.24")},
	}
	items := make([]Item, defaultSeedLines)
	for i := range items {
		items[i] = pair[i%2]
	}
	return items
}
