package core

// RuntimeConfig contains configuration passed to scenarios at initialization.
// Scenarios use this to size the view and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // RNG seed for deterministic spawns
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// Dt returns the fixed timestep in seconds for the configured tick rate.
func (c RuntimeConfig) Dt() float64 {
	if c.TickRate <= 0 {
		return 1.0 / 60
	}
	return 1.0 / float64(c.TickRate)
}

// SimState summarizes a running scenario for the platform layer.
type SimState struct {
	Tick     int // Ticks simulated since the last reset
	Actors   int // Live actors after the last tick
	Grounded int // Actors with static ground contact this tick

	// Totals since the last reset
	Contacts       int
	Fallbacks      int
	StaticContacts int
	Removed        int
	Spawned        int

	Paused   bool // Whether the simulation is paused
	Finished bool // Whether the scenario reached its end condition
}

// StepResult is returned by Scenario.Step() after each simulation tick.
type StepResult struct {
	State SimState
}
