package actors

import (
	"github.com/vovakirdan/jmpnrn/internal/config"
	"github.com/vovakirdan/jmpnrn/internal/physics"
)

// Crate falls, slides to a stop and gets shoved by anything that outranks it.
type Crate struct {
	physics.Base
}

// NewCrate creates a solid crate so other actors can stand on it.
func NewCrate(cfg config.Config) *physics.Actor {
	a := newBody(cfg.Actors.Crate.Size, cfg, Crate{})
	a.Priority = cfg.Actors.Crate.Priority
	a.Solid = true
	return a
}

func (Crate) Kind() Kind {
	return KindCrate
}

func (Crate) Update(w *physics.World, self *physics.Actor, dt float64) {
	settle(w, self)
	self.ApplyGravity(dt)
	self.ApplyFriction(dt)
	self.Move(dt)
}

var _ Variant = Crate{}
