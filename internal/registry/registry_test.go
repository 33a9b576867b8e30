package registry

import (
	"errors"
	"testing"

	"github.com/vovakirdan/jmpnrn/internal/core"
	"github.com/vovakirdan/jmpnrn/internal/level"
	"github.com/vovakirdan/jmpnrn/internal/physics"
	"github.com/vovakirdan/jmpnrn/internal/render"
)

type stub struct {
	env   Env
	state core.SimState
}

func (s *stub) ID() string                     { return "stub" }
func (s *stub) Title() string                  { return "Stub" }
func (s *stub) Description() string            { return "does nothing" }
func (s *stub) Reset(core.RuntimeConfig) error { s.state = core.SimState{}; return nil }
func (s *stub) Render(*render.Screen)          {}
func (s *stub) State() core.SimState           { return s.state }
func (s *stub) World() *physics.World          { return nil }
func (s *stub) Level() *level.Level            { return s.env.Level }
func (s *stub) Step(core.InputFrame) core.StepResult {
	s.state.Tick++
	return core.StepResult{State: s.state}
}

func init() {
	Register("stub", func(env Env) Scenario { return &stub{env: env} })
}

func TestListAndExists(t *testing.T) {
	if !Exists("stub") {
		t.Fatal("Exists(stub) = false, expected true")
	}
	if Exists("missing") {
		t.Error("Exists(missing) = true, expected false")
	}

	found := false
	for _, info := range List() {
		if info.ID == "stub" {
			found = true
			if info.Title != "Stub" || info.Description != "does nothing" {
				t.Errorf("Info = %+v, expected stub metadata", info)
			}
		}
	}
	if !found {
		t.Error("List() does not contain stub")
	}
}

func TestCreatePassesEnv(t *testing.T) {
	lvl := &level.Level{Name: "custom"}
	s, err := Create("stub", Env{Level: lvl})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if s.Level() != lvl {
		t.Error("Create() should hand the Env to the factory")
	}
	if res := s.Step(core.NewInputFrame()); res.State.Tick != 1 {
		t.Errorf("Step() Tick = %d, expected 1", res.State.Tick)
	}
}

func TestCreateUnknown(t *testing.T) {
	_, err := Create("missing", DefaultEnv())
	if !errors.Is(err, ErrUnknown) {
		t.Errorf("Create(missing) error = %v, expected ErrUnknown", err)
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Register() of a duplicate ID should panic")
		}
	}()
	Register("stub", func(env Env) Scenario { return &stub{env: env} })
}
