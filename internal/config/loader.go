package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/jmpnrn/internal/physics"
)

const fileName = "jmpnrn.yaml"

// Load loads the harness configuration.
// Search order: customPath -> ~/.jmpnrn/config.yaml -> ./configs/jmpnrn.yaml -> embedded default.
// Files are decoded over Default(), so a file only needs the keys it changes.
func Load(customPath string) (Config, error) {
	cfg := Default()

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, cfg.Validate()
	}

	// Try user config directory
	if userCfgPath := userConfigPath(); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if err := yaml.Unmarshal(data, &cfg); err == nil {
				return cfg, cfg.Validate()
			}
			cfg = Default()
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", fileName)); err == nil {
		if err := yaml.Unmarshal(data, &cfg); err == nil {
			return cfg, cfg.Validate()
		}
		cfg = Default()
	}

	// Use embedded default YAML
	if err := yaml.Unmarshal(defaultYAML, &cfg); err != nil {
		return Default(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, cfg.Validate()
}

// userConfigPath returns the path to the user config file, or empty if home is unavailable.
func userConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".jmpnrn", "config.yaml")
}

// Validate reports the first unusable value.
func (c Config) Validate() error {
	p := c.Physics
	if p.TickRate <= 0 {
		return fmt.Errorf("%w: tick_rate must be positive, got %d", ErrInvalid, p.TickRate)
	}
	if p.Friction < 0 {
		return fmt.Errorf("%w: friction must not be negative, got %g", ErrInvalid, p.Friction)
	}
	if _, err := physics.ParseMode(p.Mode); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	if p.MaxIterations < 1 {
		return fmt.Errorf("%w: max_iterations must be at least 1, got %d", ErrInvalid, p.MaxIterations)
	}

	sizes := map[string]Size{
		"player":     c.Actors.Player.Size,
		"walker":     c.Actors.Walker.Size,
		"crate":      c.Actors.Crate.Size,
		"projectile": c.Actors.Projectile.Size,
		"mover":      c.Actors.Mover.Size,
	}
	for _, name := range []string{"player", "walker", "crate", "projectile", "mover"} {
		s := sizes[name]
		if s.Width <= 0 || s.Height <= 0 {
			return fmt.Errorf("%w: %s size must be positive, got %gx%g", ErrInvalid, name, s.Width, s.Height)
		}
	}

	if c.Render.CellsPerTileX < 1 || c.Render.CellsPerTileY < 1 {
		return fmt.Errorf("%w: cells per tile must be at least 1", ErrInvalid)
	}
	return nil
}

// WorldOptions converts the physics section into World options.
func (c Config) WorldOptions() []physics.Option {
	mode, _ := physics.ParseMode(c.Physics.Mode)
	return []physics.Option{
		physics.WithMode(mode),
		physics.WithMaxIterations(c.Physics.MaxIterations),
	}
}
