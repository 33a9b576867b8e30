package level

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"
)

//go:embed levels/*
var builtinFS embed.FS

const builtinDir = "levels"

// LoadFile loads a level from disk, picking the format by extension.
func LoadFile(filename string) (*Level, error) {
	abs, err := filepath.Abs(filename)
	if err != nil {
		return nil, fmt.Errorf("level: resolve %s: %w", filename, err)
	}
	return LoadFS(os.DirFS(filepath.Dir(abs)), filepath.Base(abs))
}

// LoadFS loads a level from fsys. TMX tilesets are resolved relative to name
// within the same file system.
func LoadFS(fsys fs.FS, name string) (*Level, error) {
	switch strings.ToLower(path.Ext(name)) {
	case ".yaml", ".yml":
		data, err := fs.ReadFile(fsys, name)
		if err != nil {
			return nil, fmt.Errorf("level: read %s: %w", name, err)
		}
		return ParseYAML(data, stem(name))
	case ".tmx":
		return LoadTMX(fsys, name)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, name)
	}
}

// Builtin loads one of the levels shipped with the binary.
func Builtin(name string) (*Level, error) {
	for _, ext := range []string{".yaml", ".tmx"} {
		file := path.Join(builtinDir, name+ext)
		if _, err := fs.Stat(builtinFS, file); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return nil, fmt.Errorf("level: stat %s: %w", file, err)
		}
		return LoadFS(builtinFS, file)
	}
	return nil, fmt.Errorf("%w: %s", ErrNoLevel, name)
}

// BuiltinNames lists the shipped levels in sorted order.
func BuiltinNames() []string {
	entries, err := fs.ReadDir(builtinFS, builtinDir)
	if err != nil {
		return nil
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		names = append(names, stem(e.Name()))
	}
	sort.Strings(names)
	return names
}

// Resolve loads a level given either a file path or a built-in name.
func Resolve(ref string) (*Level, error) {
	if strings.ContainsAny(ref, `/\`) || path.Ext(ref) != "" {
		return LoadFile(ref)
	}
	return Builtin(ref)
}

func stem(name string) string {
	base := path.Base(name)
	return strings.TrimSuffix(base, path.Ext(base))
}
