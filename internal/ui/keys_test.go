package ui

import (
	"testing"

	uistate "github.com/atomicstack/receipt-split/internal/ui/state"
	tea "github.com/charmbracelet/bubbletea"
)

func TestEventsFromKeyTranslatesSpecialKeys(t *testing.T) {
	cases := []struct {
		msg  tea.KeyMsg
		want uistate.Key
	}{
		{tea.KeyMsg{Type: tea.KeyUp}, uistate.KeyUp},
		{tea.KeyMsg{Type: tea.KeyDown}, uistate.KeyDown},
		{tea.KeyMsg{Type: tea.KeyEnter}, uistate.KeyEnter},
		{tea.KeyMsg{Type: tea.KeyEsc}, uistate.KeyEsc},
		{tea.KeyMsg{Type: tea.KeyBackspace}, uistate.KeyBackspace},
		{tea.KeyMsg{Type: tea.KeyTab}, uistate.KeyTab},
	}
	for _, tc := range cases {
		got := eventsFromKey(tc.msg)
		if len(got) != 1 || got[0].Key != tc.want {
			t.Fatalf("%s: expected key %v, got %#v", tc.msg, tc.want, got)
		}
	}
}

func TestEventsFromKeySplitsRunes(t *testing.T) {
	got := eventsFromKey(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("Bó")})
	want := []uistate.Event{uistate.RuneEvent('B'), uistate.RuneEvent('ó')}
	if len(got) != len(want) {
		t.Fatalf("expected %d events, got %#v", len(want), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("event %d: expected %#v, got %#v", i, want[i], got[i])
		}
	}
	space := eventsFromKey(tea.KeyMsg{Type: tea.KeySpace})
	if len(space) != 1 || space[0] != uistate.RuneEvent(' ') {
		t.Fatalf("expected space rune, got %#v", space)
	}
}

func TestEventsFromKeyIgnoresAltAndUnknown(t *testing.T) {
	if got := eventsFromKey(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q"), Alt: true}); got != nil {
		t.Fatalf("expected alt runes to be ignored, got %#v", got)
	}
	if got := eventsFromKey(tea.KeyMsg{Type: tea.KeyF5}); got != nil {
		t.Fatalf("expected F5 to be ignored, got %#v", got)
	}
}

func TestBindingsForRestOwnerSelectorHasNoQuitKey(t *testing.T) {
	keys := newKeyMap()
	for _, b := range keys.bindingsFor(uistate.RestOwnerSelector{}) {
		for _, k := range b.Keys() {
			if k == "q" {
				t.Fatalf("rest owner selector should not advertise q")
			}
		}
	}
	if got := len(keys.bindingsFor(uistate.Items{})); got == 0 {
		t.Fatalf("expected item bindings")
	}
}
