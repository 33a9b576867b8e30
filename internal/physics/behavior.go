package physics

import "github.com/vovakirdan/jmpnrn/internal/core"

// Behavior is the per-variant contract of an actor. The World calls Update
// once per tick before resolution, OnOutOfWorld when the actor leaves the
// world bounds and OnStaticCollision after each static pushout.
//
// OnCollision is never called by the World: actor-actor resolution is purely
// geometric. Variants that react to contact poll World.Overlapping from
// their Update and invoke OnCollision themselves.
type Behavior interface {
	Update(w *World, self *Actor, dt float64)
	ShouldCollide(self, other *Actor) bool
	OnCollision(w *World, self, other *Actor)
	OnStaticCollision(w *World, self *Actor, shape core.Rect, dir core.Direction)
	OnOutOfWorld(w *World, self *Actor)
}

// Base is a Behavior with default reactions. Variants embed it and override
// what they need.
type Base struct{}

func (Base) Update(*World, *Actor, float64) {}

func (Base) ShouldCollide(_, _ *Actor) bool {
	return true
}

func (Base) OnCollision(*World, *Actor, *Actor) {}

func (Base) OnStaticCollision(*World, *Actor, core.Rect, core.Direction) {}

// OnOutOfWorld flags the actor for removal.
func (Base) OnOutOfWorld(_ *World, self *Actor) {
	self.Remove = true
}

var _ Behavior = Base{}
