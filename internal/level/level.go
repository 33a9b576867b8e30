// Package level loads level geometry and spawn points for the simulation.
// Levels are authored in tile units as YAML or as Tiled TMX maps whose
// object coordinates are divided by the tile size.
package level

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/vovakirdan/jmpnrn/internal/core"
)

var (
	// ErrUnsupportedFormat is returned for files that are neither YAML nor TMX.
	ErrUnsupportedFormat = errors.New("level: unsupported format")
	// ErrNoLevel is returned when a named built-in level does not exist.
	ErrNoLevel = errors.New("level: no such level")
	// ErrInvalid wraps validation failures of a parsed level.
	ErrInvalid = errors.New("level: invalid level")
)

// Spawn describes where an actor of a given kind enters the level.
type Spawn struct {
	Kind  string            `yaml:"kind"`
	X     float64           `yaml:"x"`
	Y     float64           `yaml:"y"`
	Props map[string]string `yaml:"props,omitempty"`
}

// Pos returns the spawn position in tiles.
func (s Spawn) Pos() core.Vec2 {
	return core.V(s.X, s.Y)
}

// Prop returns a string property or def if it is missing.
func (s Spawn) Prop(key, def string) string {
	if v, ok := s.Props[key]; ok && v != "" {
		return v
	}
	return def
}

// PropFloat returns a numeric property or def if it is missing or malformed.
func (s Spawn) PropFloat(key string, def float64) float64 {
	v, ok := s.Props[key]
	if !ok {
		return def
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return def
	}
	return f
}

// Level is static geometry plus spawn points, all in tile units.
type Level struct {
	Name    string      `yaml:"name"`
	Width   float64     `yaml:"width"`
	Height  float64     `yaml:"height"`
	Statics []core.Rect `yaml:"statics"`
	Spawns  []Spawn     `yaml:"spawns"`
}

// Bounds returns the world rectangle anchored at the origin.
func (l *Level) Bounds() core.Rect {
	return core.NewRect(0, 0, l.Width, l.Height)
}

// SpawnsOf returns the spawns of one kind in file order.
func (l *Level) SpawnsOf(kind string) []Spawn {
	var out []Spawn
	for _, s := range l.Spawns {
		if s.Kind == kind {
			out = append(out, s)
		}
	}
	return out
}

// Validate checks that sizes are usable. Overlapping or degenerate statics
// are allowed; the simulation does not validate geometry.
func (l *Level) Validate() error {
	if l.Width <= 0 || l.Height <= 0 {
		return fmt.Errorf("%w: %q has size %gx%g", ErrInvalid, l.Name, l.Width, l.Height)
	}
	for i, r := range l.Statics {
		if r.W < 0 || r.H < 0 {
			return fmt.Errorf("%w: %q static %d has negative size", ErrInvalid, l.Name, i)
		}
	}
	for i, s := range l.Spawns {
		if s.Kind == "" {
			return fmt.Errorf("%w: %q spawn %d has no kind", ErrInvalid, l.Name, i)
		}
	}
	return nil
}
