// Package input implements the Input Dispatcher (spec.md §4.8): a pure,
// deterministic function from a decoded terminal event plus the
// dispatch-relevant slice of application state to an Action. It has no
// knowledge of the terminal backend or of bubbletea; internal/render
// (keys.go) translates tea.KeyMsg/tea.MouseMsg into the Event type here and
// applies the returned Action to the real ApplicationState.
//
// Grounded on eviltik-docker-tui's handlers.go, whose handleKeyPress
// routes on m.filterMode/m.view before delegating to per-view handlers;
// bark's Dispatch follows the same "check modal state first" shape but
// returns a value (Action) instead of mutating the model directly, so it
// can be tested without a live AppState or terminal.
package input

// SpecialKey names a non-printable key. KeyNone means the event carries
// a printable rune instead.
type SpecialKey int

const (
	KeyNone SpecialKey = iota
	KeyEnter
	KeyEsc
	KeyTab
	KeyBacktab
	KeyBackspace
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyPgUp
	KeyPgDn
)

// Key is one decoded keypress.
type Key struct {
	Rune    rune // valid only when Special == KeyNone
	Special SpecialKey
	Ctrl    bool
}

// MouseKind distinguishes the mouse events the dispatcher cares about.
type MouseKind int

const (
	MouseWheelUp MouseKind = iota
	MouseWheelDown
	MouseLeftClick
)

// Mouse is one decoded mouse event, in screen row/column coordinates.
type Mouse struct {
	Kind MouseKind
	Row  int
	Col  int
}

// EventType distinguishes Event's payload.
type EventType int

const (
	EventKey EventType = iota
	EventMouse
)

// Event is a decoded terminal input event.
type Event struct {
	Type  EventType
	Key   Key
	Mouse Mouse
}

// KeyEvent builds a plain key Event.
func KeyEvent(k Key) Event { return Event{Type: EventKey, Key: k} }

// RuneEvent builds an Event for a plain printable rune with no modifier.
func RuneEvent(r rune) Event { return Event{Type: EventKey, Key: Key{Rune: r}} }

// CtrlEvent builds an Event for Ctrl+r.
func CtrlEvent(r rune) Event { return Event{Type: EventKey, Key: Key{Rune: r, Ctrl: true}} }

// SpecialEvent builds an Event for a named non-printable key.
func SpecialEvent(s SpecialKey) Event { return Event{Type: EventKey, Key: Key{Special: s}} }

// MouseEvent builds a mouse Event.
func MouseEvent(m Mouse) Event { return Event{Type: EventMouse, Mouse: m} }
