// jmpnrn is a platformer physics sandbox: axis-aligned boxes, gravity,
// friction and prioritized pushout, run headless or watched in the terminal.
//
// Usage:
//
//	jmpnrn list                 - List available scenarios
//	jmpnrn run <scenario>       - Run a scenario headless and print the result
//	jmpnrn play [scenario]      - Watch or play a scenario (menu if omitted)
//	jmpnrn serve                - Start SSH server for remote viewing
//	jmpnrn runs [scenario]      - Show recorded runs
//	jmpnrn levels               - List and inspect built-in levels
//
// Global flags:
//
//	--config <path>   - Physics and actor tuning YAML
//	--preset <name>   - Physics feel: floaty, default, snappy, ice
//	--mode <name>     - Pair resolution: single or iterative
//	--tps <rate>      - Tick rate (default: 60)
//	--seed <value>    - Seed for scenarios that randomize their layout
//	--db <path>       - Run history database (default: ~/.jmpnrn/runs.db)
//	--log-level <lvl> - debug, info, warn or error
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/jmpnrn/internal/config"
	"github.com/vovakirdan/jmpnrn/internal/registry"

	// Import scenarios to register them
	_ "github.com/vovakirdan/jmpnrn/internal/scenarios"
)

var (
	flagConfig   string
	flagPreset   string
	flagMode     string
	flagTPS      int
	flagSeed     int64
	flagDBPath   string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "jmpnrn",
	Short: "jmpnrn - platformer box physics in your terminal",
	Long: `jmpnrn runs small platformer scenes on a tile-unit AABB physics core:
gravity, friction, static pushout and prioritized actor-vs-actor pushout
with a conflict fallback.

Available commands:
  list     - Show all scenarios
  run      - Run a scenario headless
  play     - Watch or play a scenario in the terminal
  serve    - Start SSH server for remote viewing
  runs     - Show recorded runs
  levels   - List and inspect built-in levels

Examples:
  jmpnrn list
  jmpnrn run landing --until-finished
  jmpnrn play sandbox --preset snappy
  jmpnrn play stack --level ./tower.yaml --watch
  jmpnrn serve --ssh :2222`,
	SilenceUsage: true,
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	pf.StringVar(&flagPreset, "preset", "", "Physics preset: floaty, default, snappy, ice")
	pf.StringVar(&flagMode, "mode", "", "Pair resolution mode: single, iterative (overrides config)")
	pf.IntVar(&flagTPS, "tps", 0, "Tick rate in ticks per second (overrides config)")
	pf.Int64Var(&flagSeed, "seed", 0, "Layout seed (0 = levels as authored)")
	pf.StringVar(&flagDBPath, "db", "~/.jmpnrn/runs.db", "Path to run history database")
	pf.StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(runsCmd)
	rootCmd.AddCommand(levelsCmd)
}

// loadConfig applies the config file, preset and flag overrides.
func loadConfig() (config.Config, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return cfg, err
	}

	if flagPreset != "" {
		p, err := config.ParsePreset(flagPreset)
		if err != nil {
			return cfg, err
		}
		if err := config.ApplyPreset(&cfg, p); err != nil {
			return cfg, err
		}
	}
	if flagMode != "" {
		cfg.Physics.Mode = flagMode
	}
	if flagTPS > 0 {
		cfg.Physics.TickRate = flagTPS
	}

	return cfg, cfg.Validate()
}

// newLogger creates the process logger writing to w.
func newLogger(w io.Writer, prefix string) (*log.Logger, error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", flagLogLevel, err)
	}
	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
		Level:           level,
	})
	return logger, nil
}

// newEnv loads config and logger into a scenario environment.
func newEnv(logOut io.Writer) (registry.Env, error) {
	cfg, err := loadConfig()
	if err != nil {
		return registry.Env{}, err
	}
	logger, err := newLogger(logOut, "jmpnrn")
	if err != nil {
		return registry.Env{}, err
	}
	return registry.Env{Config: cfg, Logger: logger}, nil
}

// requireScenario fails with a hint when id is not registered.
func requireScenario(id string) error {
	if !registry.Exists(id) {
		return fmt.Errorf("unknown scenario %q (run 'jmpnrn list' to see available scenarios)", id)
	}
	return nil
}
