package snake

import (
	"testing"

	"github.com/vovakirdan/torus-snake/internal/core"
)

func TestMapInput(t *testing.T) {
	tests := []struct {
		name   string
		ev     core.KeyEvent
		state  RunState
		want   Command
		wantOK bool
	}{
		{"arrow up", core.Pressed(core.KeyUp), StateRunning, Command{Kind: CmdDirection, Dir: DirNorth}, true},
		{"w", core.Pressed(core.KeyW), StateRunning, Command{Kind: CmdDirection, Dir: DirNorth}, true},
		{"a", core.Pressed(core.KeyA), StateRunning, Command{Kind: CmdDirection, Dir: DirWest}, true},
		{"s", core.Pressed(core.KeyS), StateRunning, Command{Kind: CmdDirection, Dir: DirSouth}, true},
		{"arrow right", core.Pressed(core.KeyRight), StateRunning, Command{Kind: CmdDirection, Dir: DirEast}, true},
		{"pause while running", core.Pressed(core.KeyPause), StateRunning, Command{Kind: CmdTogglePause}, true},
		{"reset while running", core.Pressed(core.KeyReset), StateRunning, Command{Kind: CmdReset}, false},
		{"unpause", core.Pressed(core.KeyPause), StatePaused, Command{Kind: CmdTogglePause}, true},
		{"direction while paused", core.Pressed(core.KeyD), StatePaused, Command{Kind: CmdDirection, Dir: DirEast}, false},
		{"reset while paused", core.Pressed(core.KeyReset), StatePaused, Command{Kind: CmdReset}, false},
		{"reset after game over", core.Pressed(core.KeyReset), StateGameOver, Command{Kind: CmdReset}, true},
		{"pause after game over", core.Pressed(core.KeyPause), StateGameOver, Command{Kind: CmdTogglePause}, false},
		{"direction after game over", core.Pressed(core.KeyLeft), StateGameOver, Command{Kind: CmdDirection, Dir: DirWest}, false},
		{"release", core.KeyEvent{Key: core.KeyUp, State: core.Release}, StateRunning, Command{}, false},
		{"unknown key", core.Pressed(core.KeyUnknown), StateRunning, Command{}, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := MapInput(tc.ev, tc.state)
			if ok != tc.wantOK {
				t.Fatalf("MapInput ok = %v, expected %v", ok, tc.wantOK)
			}
			if got != tc.want {
				t.Errorf("MapInput = %+v, expected %+v", got, tc.want)
			}
		})
	}
}
