// Package input defines the window-system independent input events and the
// drag state machine that turns pointer motion into orbit deltas.
package input

// EventType identifies the kind of an Event.
type EventType int

const (
	EventNone EventType = iota
	EventQuit
	EventWindowResize
	EventKeyDown
	EventKeyUp
	EventMouseMove
	EventMouseDown
	EventMouseUp
)

// Button identifies a pointer button.
type Button int

const (
	ButtonNone Button = iota
	ButtonPrimary
	ButtonSecondary
	ButtonMiddle
)

// Modifier is a bit set of held modifier keys.
type Modifier uint8

const (
	ModCtrl Modifier = 1 << iota
	ModShift
	ModAlt
)

// Has reports whether all bits of m are set.
func (mods Modifier) Has(m Modifier) bool {
	return mods&m == m
}

// Key identifies the keys the viewer reacts to.
type Key int

const (
	KeyUnknown Key = iota
	KeyEscape
	KeyF6
	KeyF12
	KeyP
	KeyB
	KeyS
)

// Event represents a processed input event.
type Event struct {
	Type   EventType
	Key    Key
	Width  int
	Height int
	MouseX int
	MouseY int
	Button Button
	Mods   Modifier
}
