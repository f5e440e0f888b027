package sandbox

// Key is a platform-neutral keyboard key.
type Key int

// Keys understood by the shell and the scenes. Anything else maps to
// KeyUnknown.
const (
	KeyUnknown Key = iota
	KeyEscape
	KeyEnter
	KeySpace
	KeyLeft
	KeyRight
	KeyUp
	KeyDown
	KeyA
	KeyB
	KeyC
	KeyD
	KeyE
	KeyF
	KeyG
	KeyH
	KeyI
	KeyJ
	KeyK
	KeyL
	KeyM
	KeyN
	KeyO
	KeyP
	KeyQ
	KeyR
	KeyS
	KeyT
	KeyU
	KeyV
	KeyW
	KeyX
	KeyY
	KeyZ
)

var keyNames = map[Key]string{
	KeyUnknown: "unknown",
	KeyEscape:  "escape",
	KeyEnter:   "enter",
	KeySpace:   "space",
	KeyLeft:    "left",
	KeyRight:   "right",
	KeyUp:      "up",
	KeyDown:    "down",
}

// String returns a lowercase key name.
func (k Key) String() string {
	if k >= KeyA && k <= KeyZ {
		return string(rune('a' + int(k-KeyA)))
	}
	if name, ok := keyNames[k]; ok {
		return name
	}
	return "unknown"
}

// Action is the state transition a KeyEvent reports.
type Action int

const (
	Press Action = iota
	Release
	Repeat
)

// String returns the action name.
func (a Action) String() string {
	switch a {
	case Press:
		return "press"
	case Release:
		return "release"
	case Repeat:
		return "repeat"
	default:
		return "unknown"
	}
}

// Modifiers is a bit set of held modifier keys.
type Modifiers uint8

const (
	ModShift Modifiers = 1 << iota
	ModControl
	ModAlt
	ModSuper
)

// KeyEvent is a single keyboard event forwarded by the application shell.
type KeyEvent struct {
	Key    Key
	Action Action
	Mods   Modifiers
}

// Pressed reports whether the event is a press or an auto-repeat.
func (e KeyEvent) Pressed() bool {
	return e.Action == Press || e.Action == Repeat
}
