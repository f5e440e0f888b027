package sandbox

import "testing"

func TestKeyString(t *testing.T) {
	tests := []struct {
		key  Key
		want string
	}{
		{KeyUnknown, "unknown"},
		{KeyEscape, "escape"},
		{KeyEnter, "enter"},
		{KeySpace, "space"},
		{KeyLeft, "left"},
		{KeyRight, "right"},
		{KeyUp, "up"},
		{KeyDown, "down"},
		{KeyA, "a"},
		{KeyM, "m"},
		{KeyZ, "z"},
		{Key(-1), "unknown"},
		{KeyZ + 1, "unknown"},
	}
	for _, tt := range tests {
		if got := tt.key.String(); got != tt.want {
			t.Errorf("Key(%d).String() = %q, want %q", int(tt.key), got, tt.want)
		}
	}
}

func TestActionString(t *testing.T) {
	tests := []struct {
		a    Action
		want string
	}{
		{Press, "press"},
		{Release, "release"},
		{Repeat, "repeat"},
		{Action(42), "unknown"},
	}
	for _, tt := range tests {
		if got := tt.a.String(); got != tt.want {
			t.Errorf("Action(%d).String() = %q, want %q", int(tt.a), got, tt.want)
		}
	}
}

func TestKeyEventPressed(t *testing.T) {
	tests := []struct {
		action Action
		want   bool
	}{
		{Press, true},
		{Repeat, true},
		{Release, false},
	}
	for _, tt := range tests {
		ev := KeyEvent{Key: KeySpace, Action: tt.action, Mods: ModShift}
		if got := ev.Pressed(); got != tt.want {
			t.Errorf("KeyEvent{Action: %s}.Pressed() = %v, want %v", tt.action, got, tt.want)
		}
	}
}

func TestModifiersDistinct(t *testing.T) {
	mods := []Modifiers{ModShift, ModControl, ModAlt, ModSuper}
	var seen Modifiers
	for _, m := range mods {
		if seen&m != 0 {
			t.Errorf("modifier %b overlaps %b", m, seen)
		}
		seen |= m
	}
}
