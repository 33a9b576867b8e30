package actors

import (
	"math"

	"github.com/vovakirdan/jmpnrn/internal/config"
	"github.com/vovakirdan/jmpnrn/internal/core"
	"github.com/vovakirdan/jmpnrn/internal/physics"
)

// Walker patrols horizontally and turns around when it runs into a wall or
// stops making progress.
type Walker struct {
	physics.Base

	speed  float64
	dir    float64
	health int

	lastX  float64
	moved  bool
	bumped bool
}

// NewWalker creates a walker heading in dir (-1 or 1).
func NewWalker(cfg config.Config, dir float64) (*physics.Actor, *Walker) {
	wc := cfg.Actors.Walker
	if dir == 0 {
		dir = 1
	}
	b := &Walker{speed: wc.Speed, dir: math.Copysign(1, dir), health: wc.Health}
	a := newBody(wc.Size, cfg, b)
	a.Priority = wc.Priority
	return a, b
}

func (b *Walker) Kind() Kind {
	return KindWalker
}

// Dir returns the current heading, -1 or 1.
func (b *Walker) Dir() float64 {
	return b.dir
}

func (b *Walker) Health() int {
	return b.health
}

func (b *Walker) Damage(_ *physics.World, self *physics.Actor, amount int) {
	b.health -= amount
	if b.health <= 0 {
		b.health = 0
		self.Remove = true
	}
}

func (b *Walker) Update(w *physics.World, self *physics.Actor, dt float64) {
	// Blocked by something that outranks us
	if b.moved && !b.bumped && math.Abs(self.X-b.lastX) < b.speed*dt/4 {
		b.dir = -b.dir
	}
	b.bumped = false

	settle(w, self)
	self.Vel.X = b.dir * b.speed
	self.ApplyGravity(dt)

	b.lastX = self.X
	b.moved = true
	self.Move(dt)
}

func (b *Walker) OnStaticCollision(_ *physics.World, _ *physics.Actor, _ core.Rect, dir core.Direction) {
	switch dir {
	case core.DirLeft:
		b.dir = -1
		b.bumped = true
	case core.DirRight:
		b.dir = 1
		b.bumped = true
	}
}

var (
	_ Variant    = (*Walker)(nil)
	_ Damageable = (*Walker)(nil)
)
