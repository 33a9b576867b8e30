package physics

import (
	"slices"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/jmpnrn/internal/core"
)

// Stats summarizes a single World update.
type Stats struct {
	Tick           uint64
	Removed        int // Actors purged in the removal pass
	Spawned        int // Deferred spawns that joined the world
	Contacts       int // Actor pairs found overlapping
	Fallbacks      int // Conflict fallbacks taken
	StaticContacts int // Static pushouts applied
	Iterations     int // Actor-actor passes run
}

// Obstacle is whatever CollidesWithSomething found first: either an actor
// or a static shape. Actor is nil for static shapes.
type Obstacle struct {
	Rect  core.Rect
	Actor *Actor
}

// Static reports whether the obstacle is level geometry.
func (o Obstacle) Static() bool {
	return o.Actor == nil
}

// World owns the actors and static geometry of a level and advances them
// one tick at a time.
type World struct {
	actors  []*Actor
	pending []*Actor
	statics []core.Rect
	index   map[Handle]*Actor

	bounds    core.Rect
	hasBounds bool

	mode          Mode
	maxIterations int
	logger        *log.Logger

	nextHandle Handle
	tick       uint64
	updating   bool
}

// NewWorld creates a world over the given static shapes. The shapes are
// copied and immutable afterwards.
func NewWorld(statics []core.Rect, opts ...Option) *World {
	w := &World{
		statics:       slices.Clone(statics),
		index:         make(map[Handle]*Actor),
		maxIterations: DefaultMaxIterations,
		logger:        discardLogger(),
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// Spawn places a at pos and adds it to the world. Outside of an update the
// actor joins immediately; spawns requested from hooks are queued and join
// at the removal pass of the next Update call. The returned handle resolves
// through Lookup once the actor has joined.
func (w *World) Spawn(a *Actor, pos core.Vec2) Handle {
	if a.Behavior == nil {
		a.Behavior = Base{}
	}
	w.nextHandle++
	a.handle = w.nextHandle
	a.SetPos(pos)

	if w.updating {
		w.pending = append(w.pending, a)
		return a.handle
	}
	w.join(a)
	return a.handle
}

func (w *World) join(a *Actor) {
	w.actors = append(w.actors, a)
	w.index[a.handle] = a
}

// Update advances the world by dt seconds:
//
//  1. every actor's behavior runs in insertion order, followed by the
//     out-of-world check
//  2. actors that were already flagged Remove when their turn came are
//     purged, and spawns queued during the previous update join
//  3. grounded flags are cleared and overlapping actor pairs are separated
//  4. every actor is pushed out of static geometry
//
// An actor that flags itself during this update stays for the rest of the
// tick and is purged by the next call.
func (w *World) Update(dt float64) Stats {
	w.tick++
	stats := Stats{Tick: w.tick}

	queued := w.pending
	w.pending = nil

	w.updating = true
	defer func() { w.updating = false }()

	trash := w.runBehaviors(dt)
	stats.Removed, stats.Spawned = w.purge(trash, queued)

	for _, a := range w.actors {
		a.grounded = false
	}

	stats.Iterations, stats.Contacts, stats.Fallbacks = w.resolveActors()
	stats.StaticContacts = w.resolveStatics()

	w.logger.Debug("tick",
		"tick", stats.Tick,
		"actors", len(w.actors),
		"removed", stats.Removed,
		"spawned", stats.Spawned,
		"contacts", stats.Contacts,
		"fallbacks", stats.Fallbacks,
		"static", stats.StaticContacts,
		"iterations", stats.Iterations,
	)
	return stats
}

// runBehaviors runs the update hooks and returns the actors that were
// flagged Remove before their hook would have run.
func (w *World) runBehaviors(dt float64) map[*Actor]struct{} {
	trash := make(map[*Actor]struct{})
	for _, a := range w.actors {
		if a.Remove {
			trash[a] = struct{}{}
			continue
		}
		a.Behavior.Update(w, a, dt)
		if w.hasBounds && !a.Remove && !a.Intersects(w.bounds) {
			a.Behavior.OnOutOfWorld(w, a)
		}
	}
	return trash
}

// purge drops the trashed actors and appends the queued spawns.
func (w *World) purge(trash map[*Actor]struct{}, queued []*Actor) (removed, spawned int) {
	kept := w.actors[:0]
	for _, a := range w.actors {
		if _, ok := trash[a]; ok {
			delete(w.index, a.handle)
			removed++
			continue
		}
		kept = append(kept, a)
	}
	clear(w.actors[len(kept):])
	w.actors = kept

	for _, a := range queued {
		if a.Remove {
			continue
		}
		w.join(a)
		spawned++
	}
	return removed, spawned
}

// CollidesWithSomething returns the first obstacle overlapping a: other
// actors in insertion order, then static shapes. Actor pairs are filtered
// the same way as during resolution.
func (w *World) CollidesWithSomething(a *Actor) (Obstacle, bool) {
	for _, o := range w.actors {
		if o == a || !canCollide(a, o) {
			continue
		}
		if a.Intersects(o.Rect) {
			return Obstacle{Rect: o.Rect, Actor: o}, true
		}
	}
	if !a.StaticCollision {
		return Obstacle{}, false
	}
	for _, s := range w.statics {
		if a.Intersects(s) {
			return Obstacle{Rect: s}, true
		}
	}
	return Obstacle{}, false
}

// Overlapping returns the actors currently intersecting a that a's behavior
// accepts through ShouldCollide. BoxCollision is not required.
func (w *World) Overlapping(a *Actor) []*Actor {
	var out []*Actor
	for _, o := range w.actors {
		if o == a || o.Remove || !a.Intersects(o.Rect) {
			continue
		}
		if a.Behavior.ShouldCollide(a, o) {
			out = append(out, o)
		}
	}
	return out
}

// Lookup resolves a handle to a live actor.
func (w *World) Lookup(h Handle) (*Actor, bool) {
	a, ok := w.index[h]
	return a, ok
}

// Actors returns the live actors in insertion order.
func (w *World) Actors() []*Actor {
	return slices.Clone(w.actors)
}

// Len returns the number of live actors.
func (w *World) Len() int {
	return len(w.actors)
}

// Pending returns the number of spawns waiting to join.
func (w *World) Pending() int {
	return len(w.pending)
}

// Statics returns a copy of the static shapes.
func (w *World) Statics() []core.Rect {
	return slices.Clone(w.statics)
}

// Bounds returns the world bounds and whether they are set.
func (w *World) Bounds() (core.Rect, bool) {
	return w.bounds, w.hasBounds
}

// Mode returns the actor-actor resolution mode.
func (w *World) Mode() Mode {
	return w.mode
}

// Tick returns the number of completed updates.
func (w *World) Tick() uint64 {
	return w.tick
}

// Logger returns the world's logger. Behaviors use it for their own tracing.
func (w *World) Logger() *log.Logger {
	return w.logger
}
