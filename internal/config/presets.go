package config

import (
	"fmt"
	"strings"
)

// Preset is a named physics feel.
type Preset string

const (
	PresetFloaty  Preset = "floaty"
	PresetDefault Preset = "default"
	PresetSnappy  Preset = "snappy"
	PresetIce     Preset = "ice"
)

type feel struct {
	gravity  float64
	friction float64
}

var presets = map[Preset]feel{
	PresetFloaty:  {gravity: 6, friction: 6},
	PresetDefault: {gravity: 12, friction: 10},
	PresetSnappy:  {gravity: 20, friction: 16},
	PresetIce:     {gravity: 12, friction: 1.5},
}

// Presets returns the preset names in display order.
func Presets() []Preset {
	return []Preset{PresetFloaty, PresetDefault, PresetSnappy, PresetIce}
}

// ParsePreset converts a flag value into a Preset.
func ParsePreset(s string) (Preset, error) {
	p := Preset(strings.ToLower(strings.TrimSpace(s)))
	if _, ok := presets[p]; !ok {
		return "", fmt.Errorf("%w: unknown preset %q", ErrInvalid, s)
	}
	return p, nil
}

// ApplyPreset overrides gravity and friction with the preset's values.
// An empty preset leaves the config unchanged.
func ApplyPreset(cfg *Config, p Preset) error {
	if p == "" {
		return nil
	}
	f, ok := presets[p]
	if !ok {
		return fmt.Errorf("%w: unknown preset %q", ErrInvalid, p)
	}
	cfg.Physics.Gravity = f.gravity
	cfg.Physics.Friction = f.friction
	return nil
}
