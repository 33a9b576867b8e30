package scenarios

func init() {
	register(setup{
		id:          "stack",
		title:       "Stack",
		description: "Crates dropped into a shaft pile up until nothing moves",
		level:       "stack",
		finished: func(s *Sim) bool {
			return s.Settled()
		},
	})
}
