package physics

import "github.com/vovakirdan/jmpnrn/internal/core"

// canCollide reports whether two actors take part in pair resolution.
// Both must have box collision enabled and both behaviors must agree.
func canCollide(a, b *Actor) bool {
	if !a.BoxCollision || !b.BoxCollision {
		return false
	}
	return a.Behavior.ShouldCollide(a, b) && b.Behavior.ShouldCollide(b, a)
}

// masterSlave picks which actor of a pair keeps its place. Higher priority
// wins; on a tie the later actor in insertion order is the master.
func masterSlave(a, b *Actor) (master, slave *Actor) {
	if a.Priority > b.Priority {
		return a, b
	}
	return b, a
}

func (w *World) resolveActors() (iterations, contacts, fallbacks int) {
	passes := 1
	if w.mode == ModeIterative {
		passes = w.maxIterations
	}
	for iterations < passes {
		c, f := w.resolvePairs()
		iterations++
		contacts += c
		fallbacks += f
		if c == 0 {
			break
		}
	}
	return iterations, contacts, fallbacks
}

// resolvePairs visits each unordered pair once in insertion order. The slave
// is pushed out of the master. If that leaves the slave inside anything
// else, the roles swap once: the former master is pushed out of the slave
// and loses its velocity on the resolved axis.
func (w *World) resolvePairs() (contacts, fallbacks int) {
	for i := 0; i < len(w.actors); i++ {
		a := w.actors[i]
		for j := i + 1; j < len(w.actors); j++ {
			b := w.actors[j]
			if !canCollide(a, b) || !a.Intersects(b.Rect) {
				continue
			}
			contacts++

			master, slave := masterSlave(a, b)
			slave.Pushout(master.Rect)

			obstacle, stuck := w.CollidesWithSomething(slave)
			if !stuck {
				continue
			}
			fallbacks++
			master, slave = slave, master
			dir := slave.Pushout(master.Rect)
			slave.Stop(dir)

			w.logger.Debug("conflict fallback",
				"moved", slave,
				"held", master,
				"dir", dir,
				"static", obstacle.Static(),
			)
		}
	}
	return contacts, fallbacks
}

// resolveStatics pushes every actor out of each static shape it overlaps,
// in shape order. Any push that is not downward marks the actor grounded.
func (w *World) resolveStatics() (contacts int) {
	for _, a := range w.actors {
		if !a.StaticCollision {
			continue
		}
		for _, s := range w.statics {
			if !a.Intersects(s) {
				continue
			}
			dir := a.Pushout(s)
			a.Stop(dir)
			if dir != core.DirDown {
				a.grounded = true
			}
			contacts++
			a.Behavior.OnStaticCollision(w, a, s, dir)
		}
	}
	return contacts
}
