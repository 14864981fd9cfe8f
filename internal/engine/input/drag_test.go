package input

import "testing"

func TestIdleMoveIgnored(t *testing.T) {
	var d Drag
	if _, ok := d.Move(10, 10); ok {
		t.Error("Move while idle produced a motion")
	}
	if d.Button() != ButtonNone {
		t.Errorf("Button = %v while idle", d.Button())
	}
}

func TestPressSelectsTarget(t *testing.T) {
	tests := []struct {
		name       string
		button     Button
		mods       Modifier
		wantTarget Target
	}{
		{"primary", ButtonPrimary, 0, TargetCamera},
		{"primary ctrl", ButtonPrimary, ModCtrl, TargetLight},
		{"secondary", ButtonSecondary, 0, TargetCamera},
		{"secondary ctrl", ButtonSecondary, ModCtrl, TargetLight},
		{"primary shift", ButtonPrimary, ModShift, TargetCamera},
		{"primary ctrl shift", ButtonPrimary, ModCtrl | ModShift, TargetLight},
		{"primary alt", ButtonPrimary, ModAlt, TargetModel},
		{"secondary alt", ButtonSecondary, ModAlt, TargetModel},
		{"ctrl beats alt", ButtonPrimary, ModCtrl | ModAlt, TargetLight},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var d Drag
			d.Press(tt.button, tt.mods)
			if !d.Dragging() {
				t.Fatal("expected drag to start")
			}
			if d.Button() != tt.button {
				t.Errorf("Button = %v, want %v", d.Button(), tt.button)
			}
			if d.Target() != tt.wantTarget {
				t.Errorf("Target = %v, want %v", d.Target(), tt.wantTarget)
			}
		})
	}
}

func TestMiddleButtonIgnored(t *testing.T) {
	var d Drag
	d.Press(ButtonMiddle, 0)
	if d.Dragging() {
		t.Error("middle button started a drag")
	}
}

func TestMoveDeltas(t *testing.T) {
	var d Drag
	d.Press(ButtonPrimary, 0)

	m, ok := d.Move(100, 100)
	if !ok {
		t.Fatal("first move produced nothing")
	}
	if m.DX != 0 || m.DY != 0 {
		t.Errorf("first move delta = (%f, %f), want zero", m.DX, m.DY)
	}

	m, _ = d.Move(110, 100)
	if m.DX != 10 || m.DY != 0 {
		t.Errorf("delta = (%f, %f), want (10, 0)", m.DX, m.DY)
	}

	m, _ = d.Move(105, 93)
	if m.DX != -5 || m.DY != -7 {
		t.Errorf("delta = (%f, %f), want (-5, -7)", m.DX, m.DY)
	}
	if m.Button != ButtonPrimary || m.Target != TargetCamera {
		t.Errorf("motion = %+v, want primary camera", m)
	}
}

func TestReleaseResetsBaseline(t *testing.T) {
	var d Drag
	d.Press(ButtonPrimary, 0)
	d.Move(0, 0)
	d.Move(10, 0)
	d.Release()

	if d.Dragging() {
		t.Fatal("still dragging after release")
	}
	if _, ok := d.Move(500, 500); ok {
		t.Error("move after release produced a motion")
	}

	d.Press(ButtonPrimary, 0)
	m, _ := d.Move(300, 300)
	if m.DX != 0 || m.DY != 0 {
		t.Errorf("first move after re-press = (%f, %f), want zero", m.DX, m.DY)
	}
	m, _ = d.Move(301, 302)
	if m.DX != 1 || m.DY != 2 {
		t.Errorf("delta = (%f, %f), want (1, 2)", m.DX, m.DY)
	}
}

func TestModifierLatchedAtPress(t *testing.T) {
	var d Drag
	d.Handle(Event{Type: EventMouseDown, Button: ButtonPrimary, Mods: ModCtrl})

	// Move events carry the live modifier state; it must not retarget.
	d.Handle(Event{Type: EventMouseMove, MouseX: 0, MouseY: 0})
	m, ok := d.Handle(Event{Type: EventMouseMove, MouseX: 4, MouseY: 0, Mods: 0})
	if !ok {
		t.Fatal("move produced nothing")
	}
	if m.Target != TargetLight {
		t.Errorf("Target = %v, want light", m.Target)
	}
}

func TestSecondPressRelatches(t *testing.T) {
	var d Drag
	d.Press(ButtonPrimary, ModCtrl)
	d.Move(0, 0)
	d.Move(5, 5)

	d.Press(ButtonSecondary, 0)
	m, _ := d.Move(50, 50)

	if m.Button != ButtonSecondary || m.Target != TargetCamera {
		t.Errorf("motion = %+v, want secondary camera", m)
	}
	if m.DX != 0 || m.DY != 0 {
		t.Errorf("delta after re-press = (%f, %f), want zero", m.DX, m.DY)
	}
}

func TestHandleIgnoresOtherEvents(t *testing.T) {
	var d Drag
	d.Press(ButtonPrimary, 0)

	for _, e := range []Event{
		{Type: EventKeyDown, Key: KeyP},
		{Type: EventWindowResize, Width: 10, Height: 10},
	} {
		if _, ok := d.Handle(e); ok {
			t.Errorf("event %v produced a motion", e.Type)
		}
	}
	if !d.Dragging() {
		t.Error("non-pointer event ended the drag")
	}
}

func TestModifierHas(t *testing.T) {
	mods := ModCtrl | ModAlt
	if !mods.Has(ModCtrl) || !mods.Has(ModAlt) || mods.Has(ModShift) {
		t.Errorf("Has misreports %b", mods)
	}
}

func TestTargetString(t *testing.T) {
	for target, want := range map[Target]string{
		TargetCamera: "camera",
		TargetLight:  "light",
		TargetModel:  "model",
	} {
		if got := target.String(); got != want {
			t.Errorf("%d.String() = %q, want %q", target, got, want)
		}
	}
}
