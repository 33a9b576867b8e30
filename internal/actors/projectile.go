package actors

import (
	"github.com/vovakirdan/jmpnrn/internal/config"
	"github.com/vovakirdan/jmpnrn/internal/core"
	"github.com/vovakirdan/jmpnrn/internal/physics"
)

// Projectile flies in a straight line, damages the first Damageable actor it
// overlaps and disappears on any hit or when it leaves the world. It never
// shoves other actors.
type Projectile struct {
	physics.Base

	owner  physics.Handle
	damage int
	hits   int
}

// NewProjectile creates a shot from owner travelling along dir at the
// configured speed.
func NewProjectile(owner *physics.Actor, dir core.Vec2, cfg config.ProjectileConfig) *physics.Actor {
	b := &Projectile{owner: owner.Handle(), damage: cfg.Damage}
	a := physics.NewActor(core.NewRect(0, 0, cfg.Width, cfg.Height), b)
	a.Gravity = 0
	a.Friction = 0
	a.BoxCollision = false
	a.SlopeCollision = false
	a.Vel = dir.UnitLen(cfg.Speed)
	return a
}

func (b *Projectile) Kind() Kind {
	return KindProjectile
}

// Owner returns the handle of the actor that fired the shot.
func (b *Projectile) Owner() physics.Handle {
	return b.owner
}

// Hits returns the number of actors this projectile has struck.
func (b *Projectile) Hits() int {
	return b.hits
}

// ShouldCollide ignores the shooter and other projectiles.
func (b *Projectile) ShouldCollide(_, other *physics.Actor) bool {
	if other.Handle() == b.owner {
		return false
	}
	_, isShot := other.Behavior.(*Projectile)
	return !isShot
}

func (b *Projectile) Update(w *physics.World, self *physics.Actor, dt float64) {
	self.Move(dt)
	for _, other := range w.Overlapping(self) {
		b.OnCollision(w, self, other)
		if self.Remove {
			return
		}
	}
}

// OnCollision damages other if it has health and consumes the projectile.
func (b *Projectile) OnCollision(w *physics.World, self, other *physics.Actor) {
	if d, ok := other.Behavior.(Damageable); ok {
		d.Damage(w, other, b.damage)
		b.hits++
		w.Logger().Debug("projectile hit", "target", other, "health", d.Health())
	}
	self.Remove = true
}

func (b *Projectile) OnStaticCollision(_ *physics.World, self *physics.Actor, _ core.Rect, _ core.Direction) {
	self.Remove = true
}

var _ Variant = (*Projectile)(nil)
