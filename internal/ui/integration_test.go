package ui

import (
	"fmt"
	"strings"
	"testing"

	"github.com/atomicstack/receipt-split/internal/ledger"
	uistate "github.com/atomicstack/receipt-split/internal/ui/state"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/shopspring/decimal"
)

func TestAssignSingleOwnerThroughKeys(t *testing.T) {
	harness := NewHarness(NewModel(testApp("Alice", "Bob"), 100, 20, true, nil))

	harness.Press(tea.KeyEnter, tea.KeyDown, tea.KeyEnter)

	l := harness.Model().App().Ledger
	item, _ := l.Item(0)
	if len(item.Owners) != 1 || item.Owners[0].Person != 1 || item.Owners[0].Percentage != 1 {
		t.Fatalf("expected Bob to own Bread, got %#v", item.Owners)
	}
	if !l.Totals()[1].Equal(decimal.RequireFromString("2.48")) {
		t.Fatalf("expected Bob total 2.48, got %s", l.Totals()[1])
	}
	view := harness.View()
	if !strings.Contains(view, "Bread → Bob") {
		t.Fatalf("expected status message in view, got:\n%s", view)
	}
}

func TestSplitOwnersShowPercentages(t *testing.T) {
	harness := NewHarness(NewModel(testApp("Alice", "Bob"), 120, 20, false, nil))

	harness.Press(tea.KeyEnter)
	harness.Type("p")
	harness.Press(tea.KeyDown, tea.KeyEnter)

	view := harness.View()
	for _, want := range []string{"Alice 50%", "Bob 50%", "1.24"} {
		if !strings.Contains(view, want) {
			t.Fatalf("expected %q in view, got:\n%s", want, view)
		}
	}
}

func TestAddPersonThroughKeys(t *testing.T) {
	harness := NewHarness(NewModel(testApp("Alice"), 100, 20, false, nil))

	harness.Type("a")
	if _, ok := harness.Model().App().Focus.(uistate.AddPerson); !ok {
		t.Fatalf("expected add person focus, got %T", harness.Model().App().Focus)
	}
	harness.Type("Ali")
	if view := harness.View(); !strings.Contains(view, "already added") {
		t.Fatalf("expected similar name hint, got:\n%s", view)
	}
	harness.Type("cja")
	harness.Press(tea.KeyBackspace)
	harness.Type("a q")
	view := harness.View()
	if !strings.Contains(view, "Alicja q") {
		t.Fatalf("expected buffer in entry panel, got:\n%s", view)
	}
	if harness.Quit() {
		t.Fatalf("q inside the name entry must not quit")
	}
	harness.Press(tea.KeyEnter)

	people := harness.Model().App().Ledger.People()
	if len(people) != 2 || people[1] != "Alicja q" {
		t.Fatalf("unexpected people %#v", people)
	}
	if !strings.Contains(harness.View(), "Added Alicja q") {
		t.Fatalf("expected confirmation in view")
	}
}

func TestRestOwnerThroughKeys(t *testing.T) {
	harness := NewHarness(NewModel(testApp("Alice", "Bob"), 100, 20, false, nil))

	harness.Press(tea.KeyEnter, tea.KeyEnter)
	harness.Type("r")
	harness.Type("q")
	if harness.Quit() {
		t.Fatalf("rest owner selector has no quit key")
	}
	harness.Press(tea.KeyDown, tea.KeyEnter)

	l := harness.Model().App().Ledger
	if !l.Unassigned().IsZero() {
		t.Fatalf("expected everything assigned, got %s", l.Unassigned())
	}
	if !l.Totals()[1].Equal(decimal.RequireFromString("4.24")) {
		t.Fatalf("expected Bob total 4.24, got %s", l.Totals()[1])
	}
}

func TestQuitKeys(t *testing.T) {
	harness := NewHarness(NewModel(testApp("Alice"), 0, 0, false, nil))
	harness.Type("q")
	if !harness.Quit() {
		t.Fatalf("expected q to quit from items")
	}
	if harness.View() != "" {
		t.Fatalf("expected empty view after quit")
	}

	harness = NewHarness(NewModel(testApp("Alice"), 0, 0, false, nil))
	harness.Type("a")
	harness.Send(tea.KeyMsg{Type: tea.KeyCtrlC})
	if !harness.Quit() {
		t.Fatalf("expected ctrl+c to quit from add person")
	}
}

func TestItemsScrollWithCursor(t *testing.T) {
	items := make([]ledger.Item, 20)
	for i := range items {
		items[i] = ledger.Item{
			Description: fmt.Sprintf("item-%02d", i+1),
			Quantity:    1,
			Price:       decimal.RequireFromString("1.00"),
		}
	}
	app := uistate.NewAppState(ledger.New(items, []string{"Alice"}))
	harness := NewHarness(NewModel(app, 80, 10, false, nil))

	view := harness.View()
	if strings.Contains(view, "item-08") {
		t.Fatalf("expected item-08 outside the initial viewport, view =\n%s", view)
	}
	for i := 0; i < 9; i++ {
		harness.Type("j")
	}
	view = harness.View()
	if !strings.Contains(view, "item-10") {
		t.Fatalf("expected item-10 visible after scrolling, view =\n%s", view)
	}
	if strings.Contains(view, "item-01") {
		t.Fatalf("expected item-01 scrolled out, view =\n%s", view)
	}
}
