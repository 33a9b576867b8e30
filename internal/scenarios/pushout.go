package scenarios

func init() {
	register(setup{
		id:          "pushout",
		title:       "Pushout",
		description: "Overlapping crates separated by priority and the conflict fallback",
		level:       "pushout",
		finished: func(s *Sim) bool {
			return s.Overlaps() == 0 && s.Settled()
		},
	})
}
