package actors

import (
	"github.com/vovakirdan/jmpnrn/internal/config"
	"github.com/vovakirdan/jmpnrn/internal/core"
	"github.com/vovakirdan/jmpnrn/internal/physics"
)

// Mover is a platform sliding back and forth over a fixed span. It ignores
// gravity and static geometry and outranks everything it carries.
type Mover struct {
	physics.Base

	speed  float64
	span   float64
	dir    float64
	origin float64
	placed bool
}

// NewMover creates a platform that starts at its spawn point and travels
// span tiles in dir before turning around.
func NewMover(cfg config.MoverConfig, speed, span, dir float64) (*physics.Actor, *Mover) {
	if dir == 0 {
		dir = 1
	}
	b := &Mover{speed: speed, span: span, dir: dir}
	a := physics.NewActor(core.NewRect(0, 0, cfg.Width, cfg.Height), b)
	a.Gravity = 0
	a.Friction = 0
	a.StaticCollision = false
	a.Solid = true
	a.Priority = cfg.Priority
	return a, b
}

func (b *Mover) Kind() Kind {
	return KindMover
}

// Span returns the travelled range as [min, max] of the left edge.
func (b *Mover) Span() (lo, hi float64) {
	if b.dir >= 0 {
		return b.origin, b.origin + b.span
	}
	return b.origin - b.span, b.origin
}

func (b *Mover) Update(_ *physics.World, self *physics.Actor, dt float64) {
	if !b.placed {
		b.origin = self.X
		b.placed = true
	}

	lo, hi := b.Span()
	switch {
	case self.X >= hi:
		self.X = hi
		self.Vel.X = -b.speed
	case self.X <= lo:
		self.X = lo
		self.Vel.X = b.speed
	case self.Vel.X == 0:
		self.Vel.X = b.dir * b.speed
	}
	self.Move(dt)
}

var _ Variant = (*Mover)(nil)
