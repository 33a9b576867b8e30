package scenarios

import "github.com/vovakirdan/jmpnrn/internal/actors"

func init() {
	register(setup{
		id:          "gallery",
		title:       "Shooting Gallery",
		description: "Clear the walkers from a Tiled map with projectiles",
		level:       "gallery",
		pilot:       patrolPilot,
		finished: func(s *Sim) bool {
			return s.Count(actors.KindWalker) == 0
		},
	})
}
