package physics

import (
	"fmt"
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/jmpnrn/internal/core"
)

// Mode selects how actor-actor overlaps are resolved.
type Mode int

const (
	// ModeSingle visits every pair once with a one-shot conflict fallback.
	// Residual interpenetration between three or more bodies may remain.
	ModeSingle Mode = iota
	// ModeIterative repeats the pair pass until no pair overlaps or the
	// iteration cap is reached.
	ModeIterative
)

// DefaultMaxIterations caps the passes of ModeIterative.
const DefaultMaxIterations = 8

func (m Mode) String() string {
	switch m {
	case ModeSingle:
		return "single"
	case ModeIterative:
		return "iterative"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// ParseMode converts a config or flag value into a Mode.
func ParseMode(s string) (Mode, error) {
	switch s {
	case "", "single":
		return ModeSingle, nil
	case "iterative":
		return ModeIterative, nil
	default:
		return ModeSingle, fmt.Errorf("physics: unknown resolution mode %q", s)
	}
}

// Option configures a World.
type Option func(*World)

// WithBounds sets the world bounds. Actors fully outside receive
// OnOutOfWorld. Without bounds the check is skipped.
func WithBounds(r core.Rect) Option {
	return func(w *World) {
		w.bounds = r
		w.hasBounds = true
	}
}

// WithMode selects the actor-actor resolution mode.
func WithMode(m Mode) Option {
	return func(w *World) {
		w.mode = m
	}
}

// WithMaxIterations sets the pass cap used by ModeIterative.
func WithMaxIterations(n int) Option {
	return func(w *World) {
		if n > 0 {
			w.maxIterations = n
		}
	}
}

// WithLogger sets the logger used for debug tracing of updates.
func WithLogger(l *log.Logger) Option {
	return func(w *World) {
		if l != nil {
			w.logger = l
		}
	}
}

func discardLogger() *log.Logger {
	return log.New(io.Discard)
}
