package system

import (
	"testing"

	"github.com/tmaran/gridshade/common"
	"github.com/tmaran/gridshade/ecs"
	"github.com/tmaran/gridshade/ecs/component"
)

func TestOutcomeContactChecks(t *testing.T) {
	cases := []struct {
		name   string
		player common.Vec2
		goal   common.Vec2
		hazard common.Vec2
		want   Outcome
	}{
		{
			name:   "player_on_goal",
			player: v(3, 3),
			goal:   v(3, 3),
			hazard: v(0, 0),
			want:   Outcome{Victory: true},
		},
		{
			name:   "hazard_on_player",
			player: v(3, 3),
			goal:   v(0, 0),
			hazard: v(3, 3),
			want:   Outcome{Gameover: true},
		},
		{
			name:   "no_contact",
			player: v(3, 3),
			goal:   v(0, 0),
			hazard: v(5, 5),
			want:   Outcome{},
		},
		{
			name:   "both_same_tick",
			player: v(3, 3),
			goal:   v(3, 3),
			hazard: v(3, 3),
			want:   Outcome{Victory: true, Gameover: true},
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			w := ecs.NewWorld()
			spawnPlayer(t, w, c.player, 4)
			spawnGoal(t, w, c.goal)
			spawnHazard(t, w, c.hazard, 3, component.Tracker{})

			sys := NewOutcomeSystem()
			sys.Update(w, 0.25)

			if sys.Result != c.want {
				t.Fatalf("result = %+v, want %+v", sys.Result, c.want)
			}
		})
	}
}

func TestOutcomeNeedsExactContact(t *testing.T) {
	// A hazard still half a tile out must not end the run.
	w := ecs.NewWorld()
	spawnPlayer(t, w, v(3, 3), 4)
	spawnGoal(t, w, v(0, 0))
	spawnHazard(t, w, v(3.5, 3), 3, component.Tracker{})

	sys := NewOutcomeSystem()
	sys.Update(w, 0.25)

	if sys.Result != (Outcome{}) {
		t.Fatalf("result = %+v, want no contact", sys.Result)
	}
}

func TestOutcomeRecomputesEachTick(t *testing.T) {
	w := ecs.NewWorld()
	p := spawnPlayer(t, w, v(0, 0), 4)
	spawnGoal(t, w, v(0, 0))
	spawnHazard(t, w, v(5, 5), 3, component.Tracker{})

	sys := NewOutcomeSystem()
	sys.Update(w, 0.25)
	if !sys.Result.Victory {
		t.Fatal("expected victory on first tick")
	}

	positionOf(t, w, p).Set(v(1, 0))
	sys.Update(w, 0.25)
	if sys.Result.Victory {
		t.Fatal("stale victory must clear once the player steps off the goal")
	}
}
