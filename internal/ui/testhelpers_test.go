package ui

import (
	"github.com/atomicstack/receipt-split/internal/ledger"
	uistate "github.com/atomicstack/receipt-split/internal/ui/state"
	"github.com/shopspring/decimal"
)

func testApp(people ...string) *uistate.AppState {
	items := []ledger.Item{
		{Description: "Bread", Quantity: 2, Price: decimal.RequireFromString("2.48")},
		{Description: "Milk", Quantity: 1, Price: decimal.RequireFromString("1.24")},
		{Description: "Eggs", Quantity: 12, Price: decimal.RequireFromString("3.00")},
	}
	return uistate.NewAppState(ledger.New(items, people))
}
