package snake

import "github.com/vovakirdan/torus-snake/internal/core"

// CommandKind enumerates what a key press can ask of the game.
type CommandKind int

const (
	CmdNone CommandKind = iota
	CmdDirection
	CmdTogglePause
	CmdReset
)

func (k CommandKind) String() string {
	switch k {
	case CmdDirection:
		return "direction"
	case CmdTogglePause:
		return "toggle_pause"
	case CmdReset:
		return "reset"
	default:
		return "none"
	}
}

// Command is the decoded meaning of a key press.
type Command struct {
	Kind CommandKind
	Dir  Direction // set for CmdDirection
}

// MapInput decodes ev for a game in the given state. It reports false when
// the event should be ignored: releases, unknown keys, anything but the
// pause toggle while paused, and anything but reset after game over.
func MapInput(ev core.KeyEvent, state RunState) (Command, bool) {
	if ev.State != core.Press {
		return Command{}, false
	}

	cmd := decodeKey(ev.Key)
	if cmd.Kind == CmdNone {
		return Command{}, false
	}

	switch state {
	case StatePaused:
		return cmd, cmd.Kind == CmdTogglePause
	case StateGameOver:
		return cmd, cmd.Kind == CmdReset
	default:
		return cmd, cmd.Kind != CmdReset
	}
}

func decodeKey(k core.Key) Command {
	switch k {
	case core.KeyUp, core.KeyW:
		return Command{Kind: CmdDirection, Dir: DirNorth}
	case core.KeyDown, core.KeyS:
		return Command{Kind: CmdDirection, Dir: DirSouth}
	case core.KeyLeft, core.KeyA:
		return Command{Kind: CmdDirection, Dir: DirWest}
	case core.KeyRight, core.KeyD:
		return Command{Kind: CmdDirection, Dir: DirEast}
	case core.KeyPause:
		return Command{Kind: CmdTogglePause}
	case core.KeyReset:
		return Command{Kind: CmdReset}
	default:
		return Command{}
	}
}
