package dungeon

import (
	"testing"

	"github.com/vovakirdan/tui-crawler/internal/games/dungeon/physics"
)

func TestCameraPan(t *testing.T) {
	cam := NewCamera(8, 5)
	cam.CenterOn(physics.V(4, 2.5))

	cam.Pan(physics.V(12, 2.5), 1000)
	if !cam.Panning() {
		t.Fatal("pan not started")
	}

	cam.Update(250)
	if c := cam.Center(); c.X != 6 {
		t.Errorf("center after 250ms = %+v, want x=6", c)
	}

	cam.Update(800)
	if cam.Panning() || cam.Center() != physics.V(12, 2.5) {
		t.Errorf("pan should finish on target: %+v", cam.Center())
	}

	cam.Pan(physics.V(4, 2.5), 0)
	if cam.Panning() || cam.Center() != physics.V(4, 2.5) {
		t.Error("zero-length pan should snap")
	}
}

func TestCameraSees(t *testing.T) {
	cam := NewCamera(8, 5)
	cam.CenterOn(physics.V(4, 2.5))

	if !cam.Sees(physics.BoxAround(physics.V(7.9, 2), 0.5, 0.5)) {
		t.Error("box at the right edge should be visible")
	}
	if cam.Sees(physics.BoxAround(physics.V(9, 2), 0.5, 0.5)) {
		t.Error("box past the right edge should be hidden")
	}
	if NewCamera(0, 0).Sees(physics.BoxAround(physics.V(0, 0), 1, 1)) {
		t.Error("empty view sees nothing")
	}
}
