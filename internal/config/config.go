// Package config provides YAML-based simulation configuration loading and
// feel presets for the physics harness.
package config

import "errors"

// ErrInvalid wraps every validation failure.
var ErrInvalid = errors.New("config: invalid")

// Config is the complete harness configuration.
type Config struct {
	Physics PhysicsConfig `yaml:"physics"`
	Actors  ActorsConfig  `yaml:"actors"`
	Render  RenderConfig  `yaml:"render"`
}

// PhysicsConfig defines world-wide integration and resolution parameters.
type PhysicsConfig struct {
	Gravity       float64 `yaml:"gravity"`        // tiles/s²
	Friction      float64 `yaml:"friction"`       // tiles/s² of horizontal decay
	TickRate      int     `yaml:"tick_rate"`      // updates per second
	Mode          string  `yaml:"mode"`           // "single" or "iterative"
	MaxIterations int     `yaml:"max_iterations"` // cap for iterative mode
}

// ActorsConfig groups the per-variant actor parameters.
type ActorsConfig struct {
	Player     PlayerConfig     `yaml:"player"`
	Walker     WalkerConfig     `yaml:"walker"`
	Crate      CrateConfig      `yaml:"crate"`
	Projectile ProjectileConfig `yaml:"projectile"`
	Mover      MoverConfig      `yaml:"mover"`
}

// Size is an actor footprint in tiles.
type Size struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// PlayerConfig defines the input-driven actor.
type PlayerConfig struct {
	Size         `yaml:",inline"`
	RunAccel     float64 `yaml:"run_accel"`
	MaxSpeed     float64 `yaml:"max_speed"`
	JumpImpulse  float64 `yaml:"jump_impulse"`
	Health       int     `yaml:"health"`
	FireCooldown int     `yaml:"fire_cooldown"` // ticks between shots
	Priority     int     `yaml:"priority"`
}

// WalkerConfig defines the patrolling actor.
type WalkerConfig struct {
	Size     `yaml:",inline"`
	Speed    float64 `yaml:"speed"`
	Health   int     `yaml:"health"`
	Priority int     `yaml:"priority"`
}

// CrateConfig defines the pushable box.
type CrateConfig struct {
	Size     `yaml:",inline"`
	Priority int `yaml:"priority"`
}

// ProjectileConfig defines shots fired by the player.
type ProjectileConfig struct {
	Size   `yaml:",inline"`
	Speed  float64 `yaml:"speed"`
	Damage int     `yaml:"damage"`
}

// MoverConfig defines the moving platform.
type MoverConfig struct {
	Size     `yaml:",inline"`
	Speed    float64 `yaml:"speed"`
	Range    float64 `yaml:"range"`
	Priority int     `yaml:"priority"`
}

// RenderConfig defines how tiles map onto terminal cells.
type RenderConfig struct {
	CellsPerTileX int `yaml:"cells_per_tile_x"`
	CellsPerTileY int `yaml:"cells_per_tile_y"`
}
