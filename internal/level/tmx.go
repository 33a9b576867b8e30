package level

import (
	"fmt"
	"io/fs"
	"path"
	"strings"

	"github.com/lafriks/go-tiled"

	"github.com/vovakirdan/jmpnrn/internal/core"
)

// SpawnGroup is the object group whose objects become spawns. Objects in
// every other group become static rectangles.
const SpawnGroup = "spawns"

// spawnProps are the object properties copied onto a Spawn.
var spawnProps = []string{"dir", "speed", "range", "health", "priority"}

// LoadTMX reads a Tiled map from fsys. Object pixel coordinates are divided
// by the tile width so the level is expressed in tiles.
func LoadTMX(fsys fs.FS, name string) (*Level, error) {
	m, err := tiled.LoadFile(name, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("level: load TMX %s: %w", name, err)
	}
	if m.TileWidth <= 0 {
		return nil, fmt.Errorf("%w: %s has tile width %d", ErrInvalid, name, m.TileWidth)
	}

	tile := float64(m.TileWidth)
	lvl := &Level{
		Name:   strings.TrimSuffix(path.Base(name), path.Ext(name)),
		Width:  float64(m.Width),
		Height: float64(m.Height),
	}

	for _, og := range m.ObjectGroups {
		spawns := strings.EqualFold(og.Name, SpawnGroup)
		for _, o := range og.Objects {
			if spawns {
				lvl.Spawns = append(lvl.Spawns, tmxSpawn(o, tile))
				continue
			}
			lvl.Statics = append(lvl.Statics, tmxRect(o, tile))
		}
	}

	if err := lvl.Validate(); err != nil {
		return nil, err
	}
	return lvl, nil
}

func tmxRect(o *tiled.Object, tile float64) core.Rect {
	return core.Rect{
		X: o.X / tile,
		Y: o.Y / tile,
		W: o.Width / tile,
		H: o.Height / tile,
	}
}

func tmxSpawn(o *tiled.Object, tile float64) Spawn {
	kind := o.Properties.GetString("kind")
	if kind == "" {
		kind = o.Type
	}
	if kind == "" {
		kind = o.Name
	}

	s := Spawn{
		Kind: strings.ToLower(kind),
		X:    o.X / tile,
		Y:    o.Y / tile,
	}
	for _, key := range spawnProps {
		if v := o.Properties.GetString(key); v != "" {
			if s.Props == nil {
				s.Props = make(map[string]string)
			}
			s.Props[key] = v
		}
	}
	return s
}
