// Package scenarios implements the registered physics setups. Every scenario
// is a level plus a finish rule and an optional scripted pilot, all driven by
// the shared Sim.
package scenarios

import (
	"fmt"
	"io"
	"math/rand"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/jmpnrn/internal/actors"
	"github.com/vovakirdan/jmpnrn/internal/core"
	"github.com/vovakirdan/jmpnrn/internal/level"
	"github.com/vovakirdan/jmpnrn/internal/physics"
	"github.com/vovakirdan/jmpnrn/internal/registry"
)

// quietTicks is how long nothing may move before a scenario counts as settled.
const quietTicks = 30

// quietEpsilon is the per-tick displacement below which an actor is at rest.
const quietEpsilon = 1e-4

// setup describes one scenario.
type setup struct {
	id          string
	title       string
	description string
	level       string

	// prepare may adjust the loaded level before actors are spawned.
	prepare func(lvl *level.Level, rng *rand.Rand)
	// finished reports whether the scenario reached its goal.
	finished func(s *Sim) bool
	// pilot produces input when the autopilot is on.
	pilot func(tick int) core.InputFrame
}

// Sim runs a setup against a World.
type Sim struct {
	def setup
	env registry.Env

	rt     core.RuntimeConfig
	lvl    *level.Level
	world  *physics.World
	player *actors.Player
	hero   *physics.Actor

	state core.SimState
	last  physics.Stats
	quiet int
	prev  map[physics.Handle]core.Vec2
}

func newSim(sp setup, env registry.Env) *Sim {
	if env.Logger == nil {
		env.Logger = log.New(io.Discard)
	}
	return &Sim{def: sp, env: env}
}

func register(sp setup) {
	registry.Register(sp.id, func(env registry.Env) registry.Scenario {
		return newSim(sp, env)
	})
}

func (s *Sim) ID() string {
	return s.def.id
}

func (s *Sim) Title() string {
	return s.def.title
}

func (s *Sim) Description() string {
	return s.def.description
}

// Reset loads the level and builds a fresh World with its actors.
func (s *Sim) Reset(cfg core.RuntimeConfig) error {
	s.rt = cfg
	s.state = core.SimState{}
	s.last = physics.Stats{}
	s.quiet = 0
	s.prev = make(map[physics.Handle]core.Vec2)
	s.player, s.hero = nil, nil

	lvl, err := s.loadLevel()
	if err != nil {
		s.world = nil
		return err
	}
	if s.def.prepare != nil {
		var rng *rand.Rand
		if cfg.Seed != 0 {
			rng = rand.New(rand.NewSource(cfg.Seed))
		}
		s.def.prepare(lvl, rng)
	}
	s.lvl = lvl

	opts := append(s.env.Config.WorldOptions(),
		physics.WithBounds(lvl.Bounds()),
		physics.WithLogger(s.env.Logger),
	)
	s.world = physics.NewWorld(lvl.Statics, opts...)
	if err := actors.Populate(s.world, s.env.Config, lvl); err != nil {
		s.world = nil
		return err
	}

	for _, a := range s.world.Actors() {
		if p, ok := a.Behavior.(*actors.Player); ok {
			s.player, s.hero = p, a
			break
		}
	}
	s.observe()

	s.env.Logger.Debug("scenario reset",
		"scenario", s.def.id,
		"level", lvl.Name,
		"actors", s.world.Len(),
		"statics", len(lvl.Statics),
		"mode", s.world.Mode(),
	)
	return nil
}

func (s *Sim) loadLevel() (*level.Level, error) {
	if s.env.Level != nil {
		// Scenarios may edit the level, keep the caller's copy intact
		cp := *s.env.Level
		cp.Statics = append([]core.Rect(nil), s.env.Level.Statics...)
		cp.Spawns = append([]level.Spawn(nil), s.env.Level.Spawns...)
		return &cp, nil
	}
	lvl, err := level.Builtin(s.def.level)
	if err != nil {
		return nil, fmt.Errorf("scenario %s: %w", s.def.id, err)
	}
	return lvl, nil
}

// Step advances the simulation by one tick unless paused.
func (s *Sim) Step(in core.InputFrame) core.StepResult {
	if s.world == nil {
		return core.StepResult{State: s.state}
	}

	// Handle pause toggle
	if in.Has(core.ActionPause) {
		s.state.Paused = !s.state.Paused
	}
	if s.state.Paused && !in.Has(core.ActionStep) {
		return core.StepResult{State: s.state}
	}

	if s.env.Autopilot && s.def.pilot != nil {
		in = s.def.pilot(s.state.Tick)
	}
	if s.player != nil {
		s.player.Input = in.Clone()
	}

	s.last = s.world.Update(s.rt.Dt())
	s.state.Tick++
	s.state.Contacts += s.last.Contacts
	s.state.Fallbacks += s.last.Fallbacks
	s.state.StaticContacts += s.last.StaticContacts
	s.state.Removed += s.last.Removed
	s.state.Spawned += s.last.Spawned
	s.observe()

	if !s.state.Finished && s.def.finished != nil && s.def.finished(s) {
		s.state.Finished = true
		s.env.Logger.Info("scenario finished", "scenario", s.def.id, "tick", s.state.Tick)
	}

	if s.hero != nil && s.hero.Remove {
		s.player, s.hero = nil, nil
	}

	return core.StepResult{State: s.state}
}

// observe refreshes actor counts and the rest tracker.
func (s *Sim) observe() {
	s.state.Actors = s.world.Len()
	s.state.Grounded = 0

	moving := false
	seen := make(map[physics.Handle]core.Vec2, s.world.Len())
	for _, a := range s.world.Actors() {
		if a.Grounded() {
			s.state.Grounded++
		}
		pos := a.Pos()
		if old, ok := s.prev[a.Handle()]; !ok || old.Distance(pos) > quietEpsilon {
			moving = true
		}
		seen[a.Handle()] = pos
	}
	s.prev = seen

	if moving {
		s.quiet = 0
	} else {
		s.quiet++
	}
}

// Settled reports whether no actor has moved for a while.
func (s *Sim) Settled() bool {
	return s.quiet >= quietTicks
}

// Overlaps counts intersecting actor pairs that would be resolved.
func (s *Sim) Overlaps() int {
	n := 0
	all := s.world.Actors()
	for i := range all {
		for j := i + 1; j < len(all); j++ {
			a, b := all[i], all[j]
			if a.BoxCollision && b.BoxCollision && a.Intersects(b.Rect) {
				n++
			}
		}
	}
	return n
}

// Count returns the number of live actors of kind k.
func (s *Sim) Count(k actors.Kind) int {
	n := 0
	for _, a := range s.world.Actors() {
		if actors.KindOf(a) == k {
			n++
		}
	}
	return n
}

func (s *Sim) State() core.SimState {
	return s.state
}

// LastStats returns the counters of the most recent tick.
func (s *Sim) LastStats() physics.Stats {
	return s.last
}

func (s *Sim) World() *physics.World {
	return s.world
}

func (s *Sim) Level() *level.Level {
	return s.lvl
}

// Player returns the player behavior, or nil if the level has none left.
func (s *Sim) Player() *actors.Player {
	return s.player
}

var _ registry.Scenario = (*Sim)(nil)
