package scenarios

import (
	"math/rand"

	"github.com/vovakirdan/jmpnrn/internal/level"
)

func init() {
	register(setup{
		id:          "landing",
		title:       "Landing",
		description: "Crates fall onto the floor and a ledge until all are grounded",
		level:       "landing",
		prepare:     jitterSpawns,
		finished: func(s *Sim) bool {
			return s.state.Actors > 0 && s.state.Grounded == s.state.Actors
		},
	})
}

// jitterSpawns shifts every spawn horizontally by up to half a tile. A zero
// seed keeps the level as authored.
func jitterSpawns(lvl *level.Level, rng *rand.Rand) {
	if rng == nil {
		return
	}
	for i := range lvl.Spawns {
		lvl.Spawns[i].X += rng.Float64() - 0.5
	}
}
