// Package registry provides a global registry for scenario factories.
// Scenarios register themselves in init() functions, allowing the platform
// to discover and instantiate them without hardcoded dependencies.
package registry

import (
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/jmpnrn/internal/config"
	"github.com/vovakirdan/jmpnrn/internal/core"
	"github.com/vovakirdan/jmpnrn/internal/level"
	"github.com/vovakirdan/jmpnrn/internal/physics"
	"github.com/vovakirdan/jmpnrn/internal/render"
)

// ErrUnknown is returned by Create for unregistered IDs.
var ErrUnknown = errors.New("registry: unknown scenario")

// Scenario is a playable or watchable physics setup: a level, its actors
// and the rules for when it is done. Scenarios contain no terminal code;
// the platform handles input mapping, timing and display.
type Scenario interface {
	// ID returns a unique identifier (e.g., "sandbox", "stack").
	// Used for CLI commands and run records.
	ID() string

	// Title returns a human-readable name for display.
	Title() string

	// Description returns a one-line summary for menus and listings.
	Description() string

	// Reset builds a fresh World from the scenario's level.
	// Called once at start and again on restart.
	Reset(cfg core.RuntimeConfig) error

	// Step advances the simulation by one fixed tick.
	Step(in core.InputFrame) core.StepResult

	// Render draws the current state into the provided screen buffer.
	Render(dst *render.Screen)

	// State returns the current counters and flags.
	State() core.SimState

	// World exposes the simulation for inspection.
	World() *physics.World

	// Level returns the level loaded by the last Reset.
	Level() *level.Level
}

// Env carries what a scenario needs from its host.
type Env struct {
	Config config.Config
	Logger *log.Logger

	// Level replaces the scenario's built-in level when set.
	Level *level.Level

	// Autopilot makes scenarios with a scripted pilot ignore user input.
	Autopilot bool
}

// DefaultEnv returns an Env with the built-in configuration.
func DefaultEnv() Env {
	return Env{Config: config.Default()}
}

// Info contains metadata about a registered scenario.
type Info struct {
	ID          string
	Title       string
	Description string
}

// Factory creates a new scenario instance.
type Factory func(env Env) Scenario

var (
	factories = make(map[string]Factory)
	infos     = make(map[string]Info)
	mu        sync.RWMutex
)

// Register adds a scenario factory to the registry.
// Typically called from a scenario's init() function.
// Panics if a scenario with the same ID is already registered.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("registry: scenario %q already registered", id))
	}

	factories[id] = f

	// Get metadata by creating a temporary instance
	s := f(DefaultEnv())
	infos[id] = Info{ID: id, Title: s.Title(), Description: s.Description()}
}

// List returns information about all registered scenarios, sorted by ID.
func List() []Info {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]Info, 0, len(infos))
	for _, info := range infos {
		result = append(result, info)
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
}

// Create instantiates a new scenario by its ID.
func Create(id string, env Env) (Scenario, error) {
	mu.RLock()
	defer mu.RUnlock()

	f, ok := factories[id]
	if !ok {
		return nil, fmt.Errorf("%w %q", ErrUnknown, id)
	}

	return f(env), nil
}

// Exists checks if a scenario with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}
