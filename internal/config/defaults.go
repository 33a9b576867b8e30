package config

import (
	_ "embed"
)

//go:embed defaults/jmpnrn.yaml
var defaultYAML []byte

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Physics: PhysicsConfig{
			Gravity:       12,
			Friction:      10,
			TickRate:      60,
			Mode:          "single",
			MaxIterations: 8,
		},
		Actors: ActorsConfig{
			Player: PlayerConfig{
				Size:         Size{Width: 0.75, Height: 1.5},
				RunAccel:     40,
				MaxSpeed:     7,
				JumpImpulse:  9,
				Health:       3,
				FireCooldown: 15,
				Priority:     2,
			},
			Walker: WalkerConfig{
				Size:     Size{Width: 1, Height: 1},
				Speed:    2.5,
				Health:   2,
				Priority: 1,
			},
			Crate: CrateConfig{
				Size: Size{Width: 1, Height: 1},
			},
			Projectile: ProjectileConfig{
				Size:   Size{Width: 0.25, Height: 0.25},
				Speed:  16,
				Damage: 1,
			},
			Mover: MoverConfig{
				Size:     Size{Width: 3, Height: 0.5},
				Speed:    2,
				Range:    6,
				Priority: 10,
			},
		},
		Render: RenderConfig{
			CellsPerTileX: 2,
			CellsPerTileY: 1,
		},
	}
}

// DefaultYAML returns the embedded default configuration document.
func DefaultYAML() []byte {
	return defaultYAML
}
