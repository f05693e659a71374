package state

// Key is a terminal-independent key press.
type Key int

const (
	KeyNone Key = iota
	KeyUp
	KeyDown
	KeyEnter
	KeyEsc
	KeyBackspace
	KeyTab
	KeyRune
	// KeyTick is the periodic timer signal. No mode reacts to it.
	KeyTick
)

// Event is one unit of input for Handle. Rune is set for KeyRune only.
type Event struct {
	Key  Key
	Rune rune
}

// RuneEvent builds a KeyRune event.
func RuneEvent(r rune) Event {
	return Event{Key: KeyRune, Rune: r}
}

// KeyEvent builds an event for a non-rune key.
func KeyEvent(k Key) Event {
	return Event{Key: k}
}

// Tick is the timer event.
var Tick = Event{Key: KeyTick}

func (e Event) isRune(choices ...rune) bool {
	if e.Key != KeyRune {
		return false
	}
	for _, r := range choices {
		if e.Rune == r {
			return true
		}
	}
	return false
}

func (e Event) isQuit() bool {
	return e.isRune('q', 'Q')
}

// navDelta maps arrow keys and the j/k aliases to a cursor step.
func (e Event) navDelta() int {
	switch {
	case e.Key == KeyDown, e.isRune('j', 'J'):
		return 1
	case e.Key == KeyUp, e.isRune('k', 'K'):
		return -1
	}
	return 0
}
