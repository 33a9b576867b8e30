// Package actors provides the behaviors that populate a level: the
// input-driven player, patrolling walkers, pushable crates, projectiles
// and moving platforms.
package actors

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/jmpnrn/internal/config"
	"github.com/vovakirdan/jmpnrn/internal/core"
	"github.com/vovakirdan/jmpnrn/internal/level"
	"github.com/vovakirdan/jmpnrn/internal/physics"
)

// ErrUnknownKind is returned by Build for spawn kinds without a behavior.
var ErrUnknownKind = errors.New("actors: unknown kind")

// Kind names an actor variant. Level spawns use the same names.
type Kind string

const (
	KindPlayer     Kind = "player"
	KindWalker     Kind = "walker"
	KindCrate      Kind = "crate"
	KindProjectile Kind = "projectile"
	KindMover      Kind = "mover"
)

// Variant is implemented by every behavior in this package.
type Variant interface {
	physics.Behavior
	Kind() Kind
}

// Damageable is implemented by behaviors that have health.
type Damageable interface {
	Damage(w *physics.World, self *physics.Actor, amount int)
	Health() int
}

// KindOf returns the variant kind of a, or "" for foreign behaviors.
func KindOf(a *physics.Actor) Kind {
	if v, ok := a.Behavior.(Variant); ok {
		return v.Kind()
	}
	return ""
}

// Build creates the actor for a level spawn. The caller spawns it into a
// World at s.Pos().
func Build(cfg config.Config, s level.Spawn) (*physics.Actor, error) {
	var a *physics.Actor
	switch Kind(s.Kind) {
	case KindPlayer:
		a, _ = NewPlayer(cfg)
	case KindWalker:
		a, _ = NewWalker(cfg, heading(s))
	case KindCrate:
		a = NewCrate(cfg)
	case KindMover:
		m := cfg.Actors.Mover
		a, _ = NewMover(m, s.PropFloat("speed", m.Speed), s.PropFloat("range", m.Range), heading(s))
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownKind, s.Kind)
	}
	a.Priority = int(s.PropFloat("priority", float64(a.Priority)))
	return a, nil
}

// Populate builds and spawns every spawn of lvl into w in file order.
func Populate(w *physics.World, cfg config.Config, lvl *level.Level) error {
	for _, s := range lvl.Spawns {
		a, err := Build(cfg, s)
		if err != nil {
			return fmt.Errorf("actors: level %s: %w", lvl.Name, err)
		}
		w.Spawn(a, s.Pos())
	}
	return nil
}

func heading(s level.Spawn) float64 {
	if s.Prop("dir", "right") == "left" {
		return -1
	}
	return 1
}

func newBody(size config.Size, cfg config.Config, b physics.Behavior) *physics.Actor {
	a := physics.NewActor(core.NewRect(0, 0, size.Width, size.Height), b)
	a.Gravity = cfg.Physics.Gravity
	a.Friction = cfg.Physics.Friction
	return a
}

// standsOnSolid reports whether a rests on top of a solid actor.
func standsOnSolid(w *physics.World, a *physics.Actor) bool {
	box := a.GroundCheckBox()
	for _, o := range w.Actors() {
		if o != a && o.Solid && box.Intersects(o.Rect) {
			return true
		}
	}
	return false
}

// settle stops a falling actor that rests on a solid actor. Actor-actor
// resolution never touches velocity, so without this gravity keeps building
// up while standing on a crate or platform.
func settle(w *physics.World, a *physics.Actor) bool {
	if !standsOnSolid(w, a) {
		return false
	}
	if a.Vel.Y > 0 {
		a.Vel.Y = 0
	}
	return true
}
