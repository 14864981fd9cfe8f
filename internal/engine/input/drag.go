package input

// Target selects which viewpoint a drag drives.
type Target int

const (
	TargetCamera Target = iota
	TargetLight
	TargetModel
)

// String returns the name used in logs.
func (t Target) String() string {
	switch t {
	case TargetLight:
		return "light"
	case TargetModel:
		return "model"
	}
	return "camera"
}

// Motion is one pointer delta produced while dragging.
type Motion struct {
	Button Button
	Target Target
	DX, DY float32
}

// Drag is the Idle / Dragging(button, target) state machine.
//
// The target is latched when the button goes down: holding ctrl at press
// time drives the light for the whole drag, holding alt drives the model,
// and changing the modifier mid-drag has no effect until the next press.
// Ctrl wins when both are held. The first move after a
// press only records a baseline, so no delta ever spans a release.
type Drag struct {
	active   bool
	button   Button
	target   Target
	lastX    int
	lastY    int
	baseline bool
}

// Dragging reports whether a drag is in progress.
func (d *Drag) Dragging() bool {
	return d.active
}

// Button returns the button of the current drag, or ButtonNone when idle.
func (d *Drag) Button() Button {
	if !d.active {
		return ButtonNone
	}
	return d.button
}

// Target returns the viewpoint of the current drag. Meaningless when idle.
func (d *Drag) Target() Target {
	return d.target
}

// Press starts a drag with the primary or secondary button. A press while
// already dragging re-latches button and target. Other buttons are
// ignored.
func (d *Drag) Press(b Button, mods Modifier) {
	if b != ButtonPrimary && b != ButtonSecondary {
		return
	}
	d.active = true
	d.button = b
	d.target = TargetCamera
	switch {
	case mods.Has(ModCtrl):
		d.target = TargetLight
	case mods.Has(ModAlt):
		d.target = TargetModel
	}
	d.baseline = false
}

// Release ends any drag in progress.
func (d *Drag) Release() {
	d.active = false
	d.baseline = false
}

// Move records a pointer position. While dragging it returns the delta from
// the previous position; the first move after a press returns a zero delta.
// While idle it returns false.
func (d *Drag) Move(x, y int) (Motion, bool) {
	if !d.active {
		return Motion{}, false
	}

	m := Motion{Button: d.button, Target: d.target}
	if d.baseline {
		m.DX = float32(x - d.lastX)
		m.DY = float32(y - d.lastY)
	}
	d.lastX, d.lastY = x, y
	d.baseline = true
	return m, true
}

// Handle feeds a pointer event through the state machine and returns the
// motion it produced, if any.
func (d *Drag) Handle(e Event) (Motion, bool) {
	switch e.Type {
	case EventMouseDown:
		d.Press(e.Button, e.Mods)
	case EventMouseUp:
		d.Release()
	case EventMouseMove:
		return d.Move(e.MouseX, e.MouseY)
	}
	return Motion{}, false
}
