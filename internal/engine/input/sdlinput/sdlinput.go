// Package sdlinput translates SDL2 events into input events.
package sdlinput

import (
	"github.com/veandco/go-sdl2/sdl"

	"github.com/Faultbox/orbitview/internal/engine/input"
)

// Poller drains the SDL event queue once per frame.
type Poller struct {
	events   []input.Event
	drawable func() (int, int)
}

// New creates a new poller. SDL reports window sizes in points, which on
// HiDPI displays differ from the drawable's pixels; when drawable is set,
// resize events carry its size instead so the whole viewer works in
// pixels.
func New(drawable func() (width, height int)) *Poller {
	return &Poller{
		events:   make([]input.Event, 0, 16),
		drawable: drawable,
	}
}

// Update polls SDL events and converts them to input events. Quit
// requests arrive as EventQuit like everything else.
func (p *Poller) Update() {
	p.events = p.events[:0]

	for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
		if e, ok := Translate(event); ok {
			p.push(e)
		}
	}
}

func (p *Poller) push(e input.Event) {
	if e.Type == input.EventWindowResize && p.drawable != nil {
		e.Width, e.Height = p.drawable()
	}
	p.events = append(p.events, e)
}

// Events returns the events from the last Update.
func (p *Poller) Events() []input.Event {
	return p.events
}

// Translate converts one SDL event. Events the viewer has no use for
// return false.
func Translate(event sdl.Event) (input.Event, bool) {
	switch e := event.(type) {
	case *sdl.QuitEvent:
		return input.Event{Type: input.EventQuit}, true

	case *sdl.WindowEvent:
		if e.Event == sdl.WINDOWEVENT_RESIZED || e.Event == sdl.WINDOWEVENT_SIZE_CHANGED {
			return input.Event{
				Type:   input.EventWindowResize,
				Width:  int(e.Data1),
				Height: int(e.Data2),
			}, true
		}

	case *sdl.KeyboardEvent:
		if e.Repeat != 0 {
			return input.Event{}, false
		}
		t := input.EventKeyDown
		if e.Type == sdl.KEYUP {
			t = input.EventKeyUp
		}
		return input.Event{
			Type: t,
			Key:  translateKey(e.Keysym.Scancode),
			Mods: translateMods(e.Keysym.Mod),
		}, true

	case *sdl.MouseMotionEvent:
		return input.Event{
			Type:   input.EventMouseMove,
			MouseX: int(e.X),
			MouseY: int(e.Y),
		}, true

	case *sdl.MouseButtonEvent:
		t := input.EventMouseDown
		if e.Type == sdl.MOUSEBUTTONUP {
			t = input.EventMouseUp
		}
		// Button events carry no modifier state; sample it at press time.
		return input.Event{
			Type:   t,
			MouseX: int(e.X),
			MouseY: int(e.Y),
			Button: translateButton(e.Button),
			Mods:   translateMods(uint16(sdl.GetModState())),
		}, true
	}

	return input.Event{}, false
}

func translateButton(b uint8) input.Button {
	switch b {
	case sdl.BUTTON_LEFT:
		return input.ButtonPrimary
	case sdl.BUTTON_RIGHT:
		return input.ButtonSecondary
	case sdl.BUTTON_MIDDLE:
		return input.ButtonMiddle
	}
	return input.ButtonNone
}

func translateKey(sc sdl.Scancode) input.Key {
	switch sc {
	case sdl.SCANCODE_ESCAPE:
		return input.KeyEscape
	case sdl.SCANCODE_F6:
		return input.KeyF6
	case sdl.SCANCODE_F12:
		return input.KeyF12
	case sdl.SCANCODE_P:
		return input.KeyP
	case sdl.SCANCODE_B:
		return input.KeyB
	case sdl.SCANCODE_S:
		return input.KeyS
	}
	return input.KeyUnknown
}

func translateMods(mod uint16) input.Modifier {
	var m input.Modifier
	if mod&uint16(sdl.KMOD_CTRL) != 0 {
		m |= input.ModCtrl
	}
	if mod&uint16(sdl.KMOD_SHIFT) != 0 {
		m |= input.ModShift
	}
	if mod&uint16(sdl.KMOD_ALT) != 0 {
		m |= input.ModAlt
	}
	return m
}
