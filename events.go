package multiterm

import "fmt"

// EventKind enumerates the events the application reacts to.
type EventKind int

const (
	WindowDestroyed EventKind = iota
	KeyPressed
	ButtonPressed
	ChildExited
	SpawnCompleted
)

var eventKindNames = [...]string{
	WindowDestroyed: "window-destroyed",
	KeyPressed:      "key-pressed",
	ButtonPressed:   "button-pressed",
	ChildExited:     "child-exited",
	SpawnCompleted:  "spawn-completed",
}

func (k EventKind) String() string {
	if k >= 0 && int(k) < len(eventKindNames) {
		return eventKindNames[k]
	}
	return fmt.Sprintf("EventKind(%d)", int(k))
}

// Key identifies the keys the input pane distinguishes.
type Key int

const (
	KeyOther  Key = iota
	KeyReturn     // main Return key; keypad Enter is KeyOther
)

// Modifier is a bit set of held modifier keys.
type Modifier uint

const (
	ModShift Modifier = 1 << iota
	ModControl
	ModAlt
	ModSuper
)

// KeyEvent is a key press on the input pane.
type KeyEvent struct {
	Key  Key
	Mods Modifier
}

// Has reports whether all modifiers in m are held.
func (e KeyEvent) Has(m Modifier) bool {
	return e.Mods&m == m
}

// ButtonEventType distinguishes single presses from releases and
// multi-click presses.
type ButtonEventType int

const (
	ButtonPress ButtonEventType = iota
	ButtonDoublePress
	ButtonTriplePress
	ButtonRelease
	ButtonOther
)

// Mouse buttons, numbered as X11/GDK does.
const (
	ButtonPrimary   uint = 1
	ButtonMiddle    uint = 2
	ButtonSecondary uint = 3
)

// ButtonEvent is a mouse button event on the terminal pane.
type ButtonEvent struct {
	Type   ButtonEventType
	Button uint

	// Source is the toolkit event, handed back to the toolkit when a
	// popup has to be positioned at the pointer.
	Source interface{}
}

// SpawnResult is delivered once when the asynchronous spawn finishes.
type SpawnResult struct {
	Pid int
	Err error
}

// Handlers maps each EventKind to its typed handler. Key and button
// handlers return true when they consumed the event.
type Handlers struct {
	WindowDestroyed func()
	KeyPressed      func(KeyEvent) bool
	ButtonPressed   func(ButtonEvent) bool
	ChildExited     func(ExitStatus)
	SpawnCompleted  func(SpawnResult)
}

// Registered lists the kinds that have a handler.
func (h Handlers) Registered() []EventKind {
	var kinds []EventKind
	if h.WindowDestroyed != nil {
		kinds = append(kinds, WindowDestroyed)
	}
	if h.KeyPressed != nil {
		kinds = append(kinds, KeyPressed)
	}
	if h.ButtonPressed != nil {
		kinds = append(kinds, ButtonPressed)
	}
	if h.ChildExited != nil {
		kinds = append(kinds, ChildExited)
	}
	if h.SpawnCompleted != nil {
		kinds = append(kinds, SpawnCompleted)
	}
	return kinds
}

// FireWindowDestroyed calls the window-destroyed handler, if any.
func (h Handlers) FireWindowDestroyed() {
	if h.WindowDestroyed != nil {
		h.WindowDestroyed()
	}
}

// FireKeyPressed calls the key handler and reports whether it consumed ev.
func (h Handlers) FireKeyPressed(ev KeyEvent) bool {
	if h.KeyPressed == nil {
		return false
	}
	return h.KeyPressed(ev)
}

// FireButtonPressed calls the button handler and reports whether it consumed ev.
func (h Handlers) FireButtonPressed(ev ButtonEvent) bool {
	if h.ButtonPressed == nil {
		return false
	}
	return h.ButtonPressed(ev)
}

// FireChildExited calls the child-exited handler, if any.
func (h Handlers) FireChildExited(status ExitStatus) {
	if h.ChildExited != nil {
		h.ChildExited(status)
	}
}

// FireSpawnCompleted calls the spawn-completed handler, if any.
func (h Handlers) FireSpawnCompleted(res SpawnResult) {
	if h.SpawnCompleted != nil {
		h.SpawnCompleted(res)
	}
}
