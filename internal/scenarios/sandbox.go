package scenarios

import "github.com/vovakirdan/jmpnrn/internal/core"

func init() {
	register(setup{
		id:          "sandbox",
		title:       "Sandbox",
		description: "Run, jump and shoot among walkers, crates and a moving platform",
		level:       "sandbox",
		pilot:       patrolPilot,
	})
}

// patrolPilot runs back and forth, hopping and firing on a fixed rhythm.
func patrolPilot(tick int) core.InputFrame {
	in := core.NewInputFrame()
	if (tick/180)%2 == 0 {
		in.Set(core.ActionRight)
	} else {
		in.Set(core.ActionLeft)
	}
	if tick%45 == 0 {
		in.Set(core.ActionJump)
	}
	if tick%20 == 0 {
		in.Set(core.ActionFire)
	}
	return in
}
