package actors

import (
	"github.com/vovakirdan/jmpnrn/internal/config"
	"github.com/vovakirdan/jmpnrn/internal/core"
	"github.com/vovakirdan/jmpnrn/internal/physics"
)

// Player runs and jumps from the current input frame and fires projectiles
// in the direction it faces.
type Player struct {
	physics.Base

	// Input is read on every update. The owner replaces it before each tick.
	Input core.InputFrame

	cfg      config.PlayerConfig
	shot     config.ProjectileConfig
	health   int
	facing   float64
	cooldown int
	shots    int
}

// NewPlayer creates the player actor and returns its behavior.
func NewPlayer(cfg config.Config) (*physics.Actor, *Player) {
	p := &Player{
		Input:  core.NewInputFrame(),
		cfg:    cfg.Actors.Player,
		shot:   cfg.Actors.Projectile,
		health: cfg.Actors.Player.Health,
		facing: 1,
	}
	a := newBody(p.cfg.Size, cfg, p)
	a.Priority = p.cfg.Priority
	return a, p
}

func (p *Player) Kind() Kind {
	return KindPlayer
}

// Health returns the remaining hit points.
func (p *Player) Health() int {
	return p.health
}

// Facing returns -1 or 1.
func (p *Player) Facing() float64 {
	return p.facing
}

// Shots returns the number of projectiles fired so far.
func (p *Player) Shots() int {
	return p.shots
}

// Damage removes the player once its health is gone.
func (p *Player) Damage(_ *physics.World, self *physics.Actor, amount int) {
	p.health -= amount
	if p.health <= 0 {
		p.health = 0
		self.Remove = true
	}
}

func (p *Player) Update(w *physics.World, self *physics.Actor, dt float64) {
	left := p.Input.Has(core.ActionLeft)
	right := p.Input.Has(core.ActionRight)

	switch {
	case left && !right:
		self.Vel.X -= p.cfg.RunAccel * dt
		p.facing = -1
	case right && !left:
		self.Vel.X += p.cfg.RunAccel * dt
		p.facing = 1
	default:
		self.ApplyFriction(dt)
	}
	self.Vel.X = core.ClampF(self.Vel.X, -p.cfg.MaxSpeed, p.cfg.MaxSpeed)

	onSolid := settle(w, self)
	jump := p.Input.Has(core.ActionJump) || p.Input.Has(core.ActionUp)
	if jump && (self.Grounded() || onSolid) {
		self.Vel.Y = -p.cfg.JumpImpulse
	}

	if p.cooldown > 0 {
		p.cooldown--
	}
	if p.Input.Has(core.ActionFire) && p.cooldown == 0 {
		p.fire(w, self)
	}

	self.ApplyGravity(dt)
	self.Move(dt)
}

func (p *Player) fire(w *physics.World, self *physics.Actor) {
	proj := NewProjectile(self, core.V(p.facing, 0), p.shot)
	c := self.Center()
	x := self.Right()
	if p.facing < 0 {
		x = self.Left() - proj.W
	}
	w.Spawn(proj, core.V(x, c.Y-proj.H/2))
	p.cooldown = p.cfg.FireCooldown
	p.shots++
}

var (
	_ Variant    = (*Player)(nil)
	_ Damageable = (*Player)(nil)
)
