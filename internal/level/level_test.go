package level

import (
	"errors"
	"os"
	"path/filepath"
	"slices"
	"testing"
	"testing/fstest"
	"time"

	"github.com/vovakirdan/jmpnrn/internal/core"
)

const sampleYAML = `
width: 10
height: 6
statics:
  - {x: 0, y: 5, w: 10, h: 1}
spawns:
  - {kind: player, x: 1, y: 3}
  - {kind: crate, x: 4, y: 3, props: {priority: "2"}}
  - {kind: crate, x: 6, y: 3}
`

const sampleTMX = `<?xml version="1.0" encoding="UTF-8"?>
<map version="1.10" orientation="orthogonal" renderorder="right-down" width="10" height="6" tilewidth="16" tileheight="16" infinite="0" nextlayerid="3" nextobjectid="5">
 <objectgroup id="1" name="ground">
  <object id="1" x="0" y="80" width="160" height="16"/>
  <object id="2" x="40" y="24" width="8" height="32"/>
 </objectgroup>
 <objectgroup id="2" name="Spawns">
  <object id="3" name="hero" type="Player" x="16" y="48" width="16" height="16"/>
  <object id="4" name="box" x="64" y="48" width="16" height="16">
   <properties>
    <property name="kind" value="walker"/>
    <property name="dir" value="left"/>
   </properties>
  </object>
 </objectgroup>
</map>
`

func TestParseYAML(t *testing.T) {
	lvl, err := ParseYAML([]byte(sampleYAML), "sample")
	if err != nil {
		t.Fatalf("ParseYAML() error = %v", err)
	}

	if lvl.Name != "sample" {
		t.Errorf("Name = %q, expected %q", lvl.Name, "sample")
	}
	if lvl.Bounds() != core.NewRect(0, 0, 10, 6) {
		t.Errorf("Bounds() = %v, expected (0, 0, 10, 6)", lvl.Bounds())
	}
	if len(lvl.Statics) != 1 || lvl.Statics[0] != core.NewRect(0, 5, 10, 1) {
		t.Errorf("Statics = %v, expected one floor", lvl.Statics)
	}
	if got := len(lvl.SpawnsOf("crate")); got != 2 {
		t.Errorf("SpawnsOf(crate) = %d, expected 2", got)
	}
	crate := lvl.SpawnsOf("crate")[0]
	if p := crate.PropFloat("priority", 0); p != 2 {
		t.Errorf("PropFloat(priority) = %v, expected 2", p)
	}
	if crate.Pos() != core.V(4, 3) {
		t.Errorf("Pos() = %v, expected (4, 3)", crate.Pos())
	}
}

func TestParseYAMLErrors(t *testing.T) {
	tests := []struct {
		name    string
		doc     string
		invalid bool
	}{
		{"malformed", "width: [", false},
		{"zero size", "width: 0\nheight: 5\n", true},
		{"negative static", "width: 5\nheight: 5\nstatics:\n  - {x: 0, y: 0, w: -1, h: 1}\n", true},
		{"spawn without kind", "width: 5\nheight: 5\nspawns:\n  - {x: 1, y: 1}\n", true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ParseYAML([]byte(tc.doc), tc.name)
			if err == nil {
				t.Fatal("ParseYAML() expected error")
			}
			if errors.Is(err, ErrInvalid) != tc.invalid {
				t.Errorf("errors.Is(err, ErrInvalid) = %v, expected %v (err: %v)", !tc.invalid, tc.invalid, err)
			}
		})
	}
}

func TestSpawnProps(t *testing.T) {
	s := Spawn{Kind: "mover", Props: map[string]string{"speed": "2.5", "range": "x", "dir": ""}}

	if v := s.PropFloat("speed", 1); v != 2.5 {
		t.Errorf("PropFloat(speed) = %v, expected 2.5", v)
	}
	if v := s.PropFloat("range", 4); v != 4 {
		t.Errorf("PropFloat(range) = %v, expected fallback 4", v)
	}
	if v := s.PropFloat("missing", 7); v != 7 {
		t.Errorf("PropFloat(missing) = %v, expected fallback 7", v)
	}
	if v := s.Prop("dir", "right"); v != "right" {
		t.Errorf("Prop(dir) = %q, expected fallback %q", v, "right")
	}
}

func TestLoadTMX(t *testing.T) {
	fsys := fstest.MapFS{"maps/room.tmx": {Data: []byte(sampleTMX)}}

	lvl, err := LoadFS(fsys, "maps/room.tmx")
	if err != nil {
		t.Fatalf("LoadFS() error = %v", err)
	}

	if lvl.Name != "room" {
		t.Errorf("Name = %q, expected %q", lvl.Name, "room")
	}
	if lvl.Width != 10 || lvl.Height != 6 {
		t.Errorf("size = %vx%v, expected 10x6", lvl.Width, lvl.Height)
	}

	expected := []core.Rect{
		core.NewRect(0, 5, 10, 1),
		core.NewRect(2.5, 1.5, 0.5, 2),
	}
	if !slices.Equal(lvl.Statics, expected) {
		t.Errorf("Statics = %v, expected %v", lvl.Statics, expected)
	}

	if len(lvl.Spawns) != 2 {
		t.Fatalf("Spawns = %v, expected 2", lvl.Spawns)
	}
	if s := lvl.Spawns[0]; s.Kind != "player" || s.Pos() != core.V(1, 3) {
		t.Errorf("Spawns[0] = %+v, expected player at (1, 3)", s)
	}
	if s := lvl.Spawns[1]; s.Kind != "walker" || s.Prop("dir", "") != "left" {
		t.Errorf("Spawns[1] = %+v, expected walker facing left", s)
	}
}

func TestLoadFSUnsupported(t *testing.T) {
	fsys := fstest.MapFS{"level.json": {Data: []byte("{}")}}
	_, err := LoadFS(fsys, "level.json")
	if !errors.Is(err, ErrUnsupportedFormat) {
		t.Errorf("LoadFS() error = %v, expected ErrUnsupportedFormat", err)
	}
}

func TestBuiltinLevels(t *testing.T) {
	names := BuiltinNames()
	for _, want := range []string{"gallery", "landing", "pushout", "sandbox", "stack"} {
		if !slices.Contains(names, want) {
			t.Errorf("BuiltinNames() = %v, missing %q", names, want)
		}
	}

	for _, name := range names {
		t.Run(name, func(t *testing.T) {
			lvl, err := Builtin(name)
			if err != nil {
				t.Fatalf("Builtin(%q) error = %v", name, err)
			}
			if lvl.Name != name {
				t.Errorf("Name = %q, expected %q", lvl.Name, name)
			}
			if len(lvl.Statics) == 0 || len(lvl.Spawns) == 0 {
				t.Errorf("level %q has %d statics and %d spawns", name, len(lvl.Statics), len(lvl.Spawns))
			}
		})
	}

	if _, err := Builtin("nope"); !errors.Is(err, ErrNoLevel) {
		t.Errorf("Builtin(nope) error = %v, expected ErrNoLevel", err)
	}
}

func TestLoadFileAndResolve(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "custom.yaml")
	if err := os.WriteFile(file, []byte(sampleYAML), 0o644); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}

	lvl, err := LoadFile(file)
	if err != nil {
		t.Fatalf("LoadFile() error = %v", err)
	}
	if lvl.Name != "custom" {
		t.Errorf("Name = %q, expected %q", lvl.Name, "custom")
	}

	if lvl, err := Resolve(file); err != nil || lvl.Name != "custom" {
		t.Errorf("Resolve(path) = %v, %v", lvl, err)
	}
	if lvl, err := Resolve("stack"); err != nil || lvl.Name != "stack" {
		t.Errorf("Resolve(stack) = %v, %v", lvl, err)
	}
	if _, err := LoadFile(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("LoadFile() of missing file expected error")
	}
}

func TestWatcherReportsWrites(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "watched.yaml")
	other := filepath.Join(dir, "other.yaml")
	if err := os.WriteFile(file, []byte(sampleYAML), 0o644); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}

	w, err := NewWatcher(file)
	if err != nil {
		t.Fatalf("NewWatcher() error = %v", err)
	}
	defer w.Close()

	if err := os.WriteFile(other, []byte(sampleYAML), 0o644); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}
	if err := os.WriteFile(file, []byte(sampleYAML+"\n"), 0o644); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}

	select {
	case name := <-w.Events:
		if name != file {
			t.Errorf("event = %q, expected %q", name, file)
		}
	case err := <-w.Errors:
		t.Fatalf("watcher error = %v", err)
	case <-time.After(3 * time.Second):
		t.Fatal("no event for the watched file")
	}
}

func TestWatcherCloseIsIdempotent(t *testing.T) {
	file := filepath.Join(t.TempDir(), "x.yaml")
	if err := os.WriteFile(file, []byte(sampleYAML), 0o644); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}
	w, err := NewWatcher(file)
	if err != nil {
		t.Fatalf("NewWatcher() error = %v", err)
	}
	if err := w.Close(); err != nil {
		t.Errorf("Close() error = %v", err)
	}
	if err := w.Close(); err != nil {
		t.Errorf("second Close() error = %v", err)
	}
	if _, ok := <-w.Events; ok {
		t.Error("Events should be closed after Close()")
	}
}
