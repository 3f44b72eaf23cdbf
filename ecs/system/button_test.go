package system

import (
	"testing"

	"github.com/tmaran/gridshade/ecs"
	"github.com/tmaran/gridshade/ecs/component"
)

func buttonPressed(t *testing.T, w *ecs.World, e ecs.Entity) bool {
	t.Helper()
	btn, ok := ecs.Get(w, e, component.ButtonComponent.Kind())
	if !ok {
		t.Fatalf("entity %v has no button", e)
	}
	return btn.Pressed
}

func TestButtonPressedByIdleOccupant(t *testing.T) {
	cases := []struct {
		name  string
		setup func(t *testing.T, w *ecs.World)
		want  bool
	}{
		{
			name: "idle_player",
			setup: func(t *testing.T, w *ecs.World) {
				spawnPlayer(t, w, v(2, 0), 4)
			},
			want: true,
		},
		{
			name: "idle_block",
			setup: func(t *testing.T, w *ecs.World) {
				spawnPlayer(t, w, v(0, 0), 4)
				spawnBlock(t, w, v(2, 0), 4)
			},
			want: true,
		},
		{
			name: "sliding_player_does_not_press",
			setup: func(t *testing.T, w *ecs.World) {
				p := spawnPlayer(t, w, v(2, 0), 4)
				motionOf(t, w, p).Start(v(2, 0), v(3, 0))
			},
			want: false,
		},
		{
			name: "hazard_does_not_press",
			setup: func(t *testing.T, w *ecs.World) {
				spawnPlayer(t, w, v(0, 0), 4)
				spawnHazard(t, w, v(2, 0), 3, component.Tracker{})
			},
			want: false,
		},
		{
			name: "nobody_on_plate",
			setup: func(t *testing.T, w *ecs.World) {
				spawnPlayer(t, w, v(0, 0), 4)
			},
			want: false,
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			w := ecs.NewWorld()
			b := spawnButton(t, w, v(2, 0), 1)
			c.setup(t, w)

			NewButtonSystem().Update(w, 0.25)

			if got := buttonPressed(t, w, b); got != c.want {
				t.Fatalf("pressed = %v, want %v", got, c.want)
			}
		})
	}
}

func TestButtonReleasesWhenOccupantLeaves(t *testing.T) {
	w := ecs.NewWorld()
	b := spawnButton(t, w, v(2, 0), 1)
	p := spawnPlayer(t, w, v(2, 0), 4)

	sys := NewButtonSystem()
	sys.Update(w, 0.25)
	if !buttonPressed(t, w, b) {
		t.Fatal("button should be pressed while the player rests on it")
	}

	positionOf(t, w, p).Set(v(3, 0))
	sys.Update(w, 0.25)
	if buttonPressed(t, w, b) {
		t.Fatal("button must release the tick the occupant leaves")
	}
}

func TestGateOpensOnAnyLinkedChannel(t *testing.T) {
	w := ecs.NewWorld()
	spawnButton(t, w, v(0, 0), 1)
	spawnButton(t, w, v(1, 0), 2)
	g := spawnGate(t, w, v(5, 0), 1, 2)
	spawnPlayer(t, w, v(1, 0), 4) // presses channel 2 only

	NewButtonSystem().Update(w, 0.25)
	NewGateSystem().Update(w, 0.25)

	gate, _ := ecs.Get(w, g, component.GateComponent.Kind())
	col, _ := ecs.Get(w, g, component.CollisionComponent.Kind())
	if !gate.Open {
		t.Fatal("gate should open when any linked channel is pressed")
	}
	if col.Kind != component.CollisionNone {
		t.Fatalf("open gate collision = %v, want None", col.Kind)
	}
}

func TestGateClosesWhenChannelReleases(t *testing.T) {
	w := ecs.NewWorld()
	spawnButton(t, w, v(0, 0), 1)
	g := spawnGate(t, w, v(5, 0), 1)
	p := spawnPlayer(t, w, v(0, 0), 4)

	buttons, gates := NewButtonSystem(), NewGateSystem()
	buttons.Update(w, 0.25)
	gates.Update(w, 0.25)

	gate, _ := ecs.Get(w, g, component.GateComponent.Kind())
	if !gate.Open {
		t.Fatal("gate should be open while the plate is held")
	}

	positionOf(t, w, p).Set(v(3, 3))
	buttons.Update(w, 0.25)
	gates.Update(w, 0.25)

	col, _ := ecs.Get(w, g, component.CollisionComponent.Kind())
	if gate.Open {
		t.Fatal("gate must close when its channel releases")
	}
	if col.Kind != component.CollisionObstacle {
		t.Fatalf("closed gate collision = %v, want Obstacle", col.Kind)
	}
}

func TestGateIgnoresUnlinkedChannels(t *testing.T) {
	w := ecs.NewWorld()
	spawnButton(t, w, v(0, 0), 7)
	g := spawnGate(t, w, v(5, 0), 1)
	spawnPlayer(t, w, v(0, 0), 4)

	NewButtonSystem().Update(w, 0.25)
	NewGateSystem().Update(w, 0.25)

	gate, _ := ecs.Get(w, g, component.GateComponent.Kind())
	if gate.Open {
		t.Fatal("gate must stay closed for presses on foreign channels")
	}
}
