package core

// Key identifies a physical key the game understands, abstracted from the
// terminal or window library that produced it.
type Key int

const (
	KeyUnknown Key = iota
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyW
	KeyA
	KeyS
	KeyD
	KeyPause
	KeyReset
)

// String returns a human-readable name for the key.
func (k Key) String() string {
	switch k {
	case KeyUp:
		return "Up"
	case KeyDown:
		return "Down"
	case KeyLeft:
		return "Left"
	case KeyRight:
		return "Right"
	case KeyW:
		return "W"
	case KeyA:
		return "A"
	case KeyS:
		return "S"
	case KeyD:
		return "D"
	case KeyPause:
		return "Pause"
	case KeyReset:
		return "Reset"
	default:
		return "Unknown"
	}
}

// KeyState distinguishes presses from releases.
type KeyState int

const (
	Press KeyState = iota
	Release
)

// String returns "press" or "release".
func (s KeyState) String() string {
	if s == Release {
		return "release"
	}
	return "press"
}

// KeyEvent is a single key transition delivered by the host.
type KeyEvent struct {
	Key   Key
	State KeyState
}

// Pressed builds a press event for k.
func Pressed(k Key) KeyEvent {
	return KeyEvent{Key: k, State: Press}
}
