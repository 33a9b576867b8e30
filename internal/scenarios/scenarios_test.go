package scenarios

import (
	"strings"
	"testing"

	"github.com/vovakirdan/jmpnrn/internal/actors"
	"github.com/vovakirdan/jmpnrn/internal/core"
	"github.com/vovakirdan/jmpnrn/internal/level"
	"github.com/vovakirdan/jmpnrn/internal/registry"
	"github.com/vovakirdan/jmpnrn/internal/render"
)

var allIDs = []string{"gallery", "landing", "pushout", "sandbox", "stack"}

func runtimeConfig(seed int64) core.RuntimeConfig {
	return core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: seed}
}

func newScenario(t *testing.T, id string, env registry.Env, seed int64) *Sim {
	t.Helper()
	s, err := registry.Create(id, env)
	if err != nil {
		t.Fatalf("Create(%q) error = %v", id, err)
	}
	if err := s.Reset(runtimeConfig(seed)); err != nil {
		t.Fatalf("Reset() error = %v", err)
	}
	return s.(*Sim)
}

func TestScenariosRegistered(t *testing.T) {
	for _, id := range allIDs {
		if !registry.Exists(id) {
			t.Errorf("scenario %q not registered", id)
		}
	}
}

func TestScenariosReset(t *testing.T) {
	for _, id := range allIDs {
		t.Run(id, func(t *testing.T) {
			s := newScenario(t, id, registry.DefaultEnv(), 0)
			if s.World() == nil {
				t.Fatal("World() = nil after Reset")
			}
			if s.Level().Name != id {
				t.Errorf("Level().Name = %q, expected %q", s.Level().Name, id)
			}
			if got := s.State().Actors; got != len(s.Level().Spawns) {
				t.Errorf("State().Actors = %d, expected %d", got, len(s.Level().Spawns))
			}
			if s.Title() == "" || s.Description() == "" {
				t.Error("scenario needs a title and description")
			}
		})
	}
}

func TestScenarioDeterminism(t *testing.T) {
	env := registry.DefaultEnv()
	env.Autopilot = true

	for _, id := range allIDs {
		t.Run(id, func(t *testing.T) {
			s1 := newScenario(t, id, env, 12345)
			s2 := newScenario(t, id, env, 12345)

			for i := 0; i < 300; i++ {
				r1 := s1.Step(core.NewInputFrame())
				r2 := s2.Step(core.NewInputFrame())
				if r1.State != r2.State {
					t.Fatalf("tick %d: states differ: %+v vs %+v", i, r1.State, r2.State)
				}
			}

			a1, a2 := s1.World().Actors(), s2.World().Actors()
			if len(a1) != len(a2) {
				t.Fatalf("actor counts differ: %d vs %d", len(a1), len(a2))
			}
			for i := range a1 {
				if a1[i].Rect != a2[i].Rect || a1[i].Vel != a2[i].Vel {
					t.Errorf("actor %d differs: %v vs %v", i, a1[i], a2[i])
				}
			}
		})
	}
}

func TestLandingFinishes(t *testing.T) {
	for _, seed := range []int64{0, 7} {
		s := newScenario(t, "landing", registry.DefaultEnv(), seed)
		for i := 0; i < 600 && !s.State().Finished; i++ {
			s.Step(core.NewInputFrame())
		}
		st := s.State()
		if !st.Finished {
			t.Fatalf("seed %d: landing not finished after %d ticks (%d/%d grounded)",
				seed, st.Tick, st.Grounded, st.Actors)
		}
		if st.Removed != 0 {
			t.Errorf("seed %d: Removed = %d, no crate should leave the level", seed, st.Removed)
		}
	}
}

func TestPushoutSeparatesCrates(t *testing.T) {
	s := newScenario(t, "pushout", registry.DefaultEnv(), 0)
	if s.Overlaps() == 0 {
		t.Fatal("pushout level should start with overlapping crates")
	}

	for i := 0; i < 300 && !s.State().Finished; i++ {
		s.Step(core.NewInputFrame())
	}

	if !s.State().Finished {
		t.Fatalf("pushout not finished after %d ticks", s.State().Tick)
	}
	if n := s.Overlaps(); n != 0 {
		t.Errorf("Overlaps() = %d, expected 0", n)
	}
	if s.State().Fallbacks == 0 {
		t.Error("expected the conflict fallback to be exercised")
	}
}

func TestPauseAndStep(t *testing.T) {
	s := newScenario(t, "stack", registry.DefaultEnv(), 0)

	pause := core.NewInputFrame()
	pause.Set(core.ActionPause)
	step := core.NewInputFrame()
	step.Set(core.ActionStep)

	s.Step(core.NewInputFrame())
	if res := s.Step(pause); !res.State.Paused || res.State.Tick != 1 {
		t.Fatalf("after pause: %+v, expected paused at tick 1", res.State)
	}
	if res := s.Step(core.NewInputFrame()); res.State.Tick != 1 {
		t.Errorf("paused Step advanced to tick %d", res.State.Tick)
	}
	if res := s.Step(step); res.State.Tick != 2 || !res.State.Paused {
		t.Errorf("single step: %+v, expected tick 2 and still paused", res.State)
	}
	if res := s.Step(pause); res.State.Paused || res.State.Tick != 3 {
		t.Errorf("after resume: %+v, expected running at tick 3", res.State)
	}
}

func TestLevelOverride(t *testing.T) {
	custom := &level.Level{
		Name:    "tiny",
		Width:   10,
		Height:  5,
		Statics: []core.Rect{core.NewRect(0, 4, 10, 1)},
		Spawns:  []level.Spawn{{Kind: "crate", X: 2, Y: 1}, {Kind: "crate", X: 6, Y: 1}},
	}
	env := registry.DefaultEnv()
	env.Level = custom

	s := newScenario(t, "landing", env, 99)
	if s.Level().Name != "tiny" || s.World().Len() != 2 {
		t.Errorf("Level = %q with %d actors, expected tiny with 2", s.Level().Name, s.World().Len())
	}
	if custom.Spawns[0].X != 2 || custom.Spawns[1].X != 6 {
		t.Error("Reset must not modify the caller's level")
	}
}

func TestAutopilotDrivesPlayer(t *testing.T) {
	env := registry.DefaultEnv()
	env.Autopilot = true
	s := newScenario(t, "sandbox", env, 0)

	for i := 0; i < 120; i++ {
		s.Step(core.NewInputFrame())
	}

	p := s.Player()
	if p == nil {
		t.Fatal("sandbox should have a player")
	}
	if p.Shots() == 0 {
		t.Error("autopilot should have fired")
	}
	if s.State().Spawned == 0 {
		t.Error("projectiles should be counted as spawns")
	}
}

func TestGalleryLoadsTiledMap(t *testing.T) {
	s := newScenario(t, "gallery", registry.DefaultEnv(), 0)
	if s.Count(actors.KindWalker) != 2 {
		t.Errorf("Count(walker) = %d, expected 2", s.Count(actors.KindWalker))
	}
	if s.Count(actors.KindMover) != 1 {
		t.Errorf("Count(mover) = %d, expected 1", s.Count(actors.KindMover))
	}
}

func TestRender(t *testing.T) {
	s := newScenario(t, "sandbox", registry.DefaultEnv(), 0)
	s.Step(core.NewInputFrame())

	dst := render.NewScreen(80, 24)
	s.Render(dst)

	if row := dst.Row(0); !strings.Contains(row, "Sandbox") || !strings.Contains(row, "hp 3") {
		t.Errorf("HUD = %q, expected title and health", row)
	}
	if !strings.ContainsRune(dst.String(), '█') {
		t.Error("expected static geometry on screen")
	}

	pause := core.NewInputFrame()
	pause.Set(core.ActionPause)
	s.Step(pause)
	s.Render(dst)
	if !strings.Contains(dst.String(), "PAUSED") {
		t.Error("expected the pause box")
	}
}
