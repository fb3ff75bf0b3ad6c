package shapes

import (
	"testing"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
)

func commands(p path.Path) []path.Command {
	var cmds []path.Command
	for cmd := range p {
		cmds = append(cmds, cmd)
	}
	return cmds
}

func TestCircle(t *testing.T) {
	cmds := commands(Circle(5, 5, 2, false))
	want := []path.Command{
		path.CmdMoveTo, path.CmdCubeTo, path.CmdCubeTo, path.CmdCubeTo, path.CmdCubeTo, path.CmdClose,
	}
	if len(cmds) != len(want) {
		t.Fatalf("got %d commands, want %d", len(cmds), len(want))
	}
	for i := range want {
		if cmds[i] != want[i] {
			t.Errorf("command %d: got %v, want %v", i, cmds[i], want[i])
		}
	}

	// every arc ends on the circle
	for cmd, pts := range Circle(5, 5, 2, true) {
		if cmd != path.CmdCubeTo {
			continue
		}
		if d := pts[2].Sub(vec.Vec2{X: 5, Y: 5}).Length(); d < 2-1e-12 || d > 2+1e-12 {
			t.Errorf("arc end point %v at distance %g", pts[2], d)
		}
	}
}

// TestDirection checks the sign of the shoelace area of the control
// polygon, which follows the orientation of the circle.
func TestDirection(t *testing.T) {
	area := func(p path.Path) float64 {
		var a float64
		var cur vec.Vec2
		for cmd, pts := range p {
			if cmd == path.CmdClose {
				continue
			}
			next := pts[len(pts)-1]
			if cmd != path.CmdMoveTo {
				a += cur.X*next.Y - next.X*cur.Y
			}
			cur = next
		}
		return a / 2
	}
	fwd := area(Circle(0, 0, 1, false))
	rev := area(Circle(0, 0, 1, true))
	if fwd <= 0 || rev >= 0 {
		t.Errorf("areas %g and %g, want opposite signs", fwd, rev)
	}
}

func TestRing(t *testing.T) {
	moves := 0
	for cmd := range Ring(0, 0, 4, 3) {
		if cmd == path.CmdMoveTo {
			moves++
		}
	}
	if moves != 2 {
		t.Errorf("got %d subpaths, want 2", moves)
	}

	moves = 0
	for cmd := range Ring(0, 0, 4, 0) {
		if cmd == path.CmdMoveTo {
			moves++
		}
	}
	if moves != 1 {
		t.Errorf("degenerate ring: got %d subpaths, want 1", moves)
	}
}

func TestEarlyStop(t *testing.T) {
	n := 0
	for range Ring(0, 0, 4, 3) {
		n++
		if n == 3 {
			break
		}
	}
	if n != 3 {
		t.Errorf("iteration continued to %d", n)
	}
}
