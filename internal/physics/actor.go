// Package physics implements the per-tick AABB simulation: velocity
// integration primitives on actors and the World that resolves overlaps
// between actors and against static level geometry.
//
// The package keeps no global state. A World is driven from a single
// goroutine and owns its actors; hooks receive the World explicitly.
package physics

import (
	"fmt"

	"github.com/vovakirdan/jmpnrn/internal/core"
)

// Default integration constants in tiles per second squared.
const (
	DefaultGravity  = 12.0
	DefaultFriction = 10.0
)

// Handle identifies an actor within the World that spawned it.
// The zero Handle never refers to an actor.
type Handle uint64

// Actor is a dynamic AABB with physics state and a behavior.
type Actor struct {
	core.Rect

	Vel      core.Vec2
	Gravity  float64
	Friction float64
	Priority int

	BoxCollision    bool // Takes part in actor-actor resolution
	SlopeCollision  bool // Reserved for slope probes of the behavior layer
	StaticCollision bool // Takes part in static geometry resolution
	Solid           bool // Hint for behaviors treating this actor as a wall
	Remove          bool // Purged at the start of the next World update

	Behavior Behavior

	grounded bool
	handle   Handle
}

// NewActor creates an actor with default gravity and friction and all
// collision kinds enabled. A nil behavior is replaced by Base.
func NewActor(r core.Rect, b Behavior) *Actor {
	if b == nil {
		b = Base{}
	}
	return &Actor{
		Rect:            r,
		Gravity:         DefaultGravity,
		Friction:        DefaultFriction,
		BoxCollision:    true,
		SlopeCollision:  true,
		StaticCollision: true,
		Behavior:        b,
	}
}

// Handle returns the actor's handle, or zero if it was never spawned.
func (a *Actor) Handle() Handle {
	return a.handle
}

// Grounded reports whether a non-downward static resolution happened during
// the last World update. Lateral wall contact counts as grounded.
func (a *Actor) Grounded() bool {
	return a.grounded
}

// ApplyGravity accelerates the actor downward.
func (a *Actor) ApplyGravity(dt float64) {
	a.Vel = a.Vel.AddY(a.Gravity * dt)
}

// ApplyFriction decays horizontal velocity toward zero without crossing it.
func (a *Actor) ApplyFriction(dt float64) {
	step := a.Friction * dt
	switch {
	case a.Vel.X > 0:
		a.Vel.X -= step
		if a.Vel.X < 0 {
			a.Vel.X = 0
		}
	case a.Vel.X < 0:
		a.Vel.X += step
		if a.Vel.X > 0 {
			a.Vel.X = 0
		}
	}
}

// Move advances the position by velocity * dt.
func (a *Actor) Move(dt float64) {
	a.AddPos(a.Vel.Mul(dt))
}

// Accelerate applies an instantaneous impulse.
func (a *Actor) Accelerate(force core.Vec2) {
	a.Vel = a.Vel.Add(force)
}

// Stop zeroes the velocity component along the axis of d.
func (a *Actor) Stop(d core.Direction) {
	switch {
	case d.Vertical():
		a.Vel.Y = 0
	case d.Horizontal():
		a.Vel.X = 0
	}
}

func (a *Actor) String() string {
	return fmt.Sprintf("actor#%d[%.3g,%.3g %gx%g]", a.handle, a.X, a.Y, a.W, a.H)
}
