package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/jmpnrn/internal/core"
	"github.com/vovakirdan/jmpnrn/internal/level"
	"github.com/vovakirdan/jmpnrn/internal/platform/tui"
	"github.com/vovakirdan/jmpnrn/internal/storage"
)

var (
	flagPlayLevel     string
	flagPlayWatch     bool
	flagPlayAutopilot bool
	flagPlayLog       string
)

var playCmd = &cobra.Command{
	Use:   "play [scenario]",
	Short: "Watch or play a scenario in the terminal",
	Long: `Open a scenario in the terminal viewer. Without an argument a menu
lists every scenario; finished runs are recorded in the run history.

Controls:
  A/D, Left/Right  - Run
  Space, W/Up      - Jump
  F/X              - Fire
  P                - Pause
  N                - Step one tick while paused
  R                - Restart
  Ctrl+S           - Save a text screenshot
  Esc/B            - Back to the menu
  Q/Ctrl+C         - Quit

Examples:
  jmpnrn play
  jmpnrn play sandbox --preset floaty
  jmpnrn play gallery --autopilot
  jmpnrn play stack --level ./tower.yaml --watch`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagPlayLevel, "level", "", "Built-in level name or .yaml/.tmx file to use instead")
	playCmd.Flags().BoolVar(&flagPlayWatch, "watch", false, "Reload the --level file whenever it changes")
	playCmd.Flags().BoolVar(&flagPlayAutopilot, "autopilot", false, "Drive the player with the scenario's scripted input")
	playCmd.Flags().StringVar(&flagPlayLog, "log-file", "", "Write logs to this file (the terminal is busy)")
}

func runPlay(_ *cobra.Command, args []string) {
	logOut, closeLog, err := openLogOutput(flagPlayLog)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer closeLog()

	env, err := newEnv(logOut)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	env.Autopilot = flagPlayAutopilot

	viewer := tui.ViewerConfig{
		Env:     env,
		Runtime: runtimeConfig(env.Config.Physics.TickRate),
		Preset:  flagPreset,
	}

	if flagPlayLevel != "" {
		if isLevelFile(flagPlayLevel) {
			viewer.LevelFile = flagPlayLevel
			viewer.Watch = flagPlayWatch
		} else {
			lvl, err := level.Resolve(flagPlayLevel)
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error loading level: %v\n", err)
				os.Exit(1)
			}
			viewer.Env.Level = lvl
		}
	} else if flagPlayWatch {
		fmt.Fprintln(os.Stderr, "Warning: --watch needs a --level file, ignoring")
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open run database: %v\n", err)
		store = nil
	}
	viewer.Store = store
	defer func() {
		if store != nil {
			store.Close()
		}
	}()

	if len(args) == 1 {
		if err := requireScenario(args[0]); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return
		}
		if _, err := tui.Run(args[0], viewer); err != nil {
			fmt.Fprintf(os.Stderr, "Error running scenario: %v\n", err)
		}
		return
	}

	menuLoop(viewer)
}

// menuLoop shows the menu until the user quits.
func menuLoop(viewer tui.ViewerConfig) {
	for {
		result, err := tui.RunMenu(viewer.Runtime)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return
		}
		viewer.Runtime = result.Config

		switch {
		case result.Quit:
			return

		case result.WantsRuns:
			goBack, err := tui.RunRuns(viewer.Store, viewer.Runtime.ScreenW, viewer.Runtime.ScreenH)
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			}
			if !goBack {
				return
			}

		default:
			goBack, err := tui.Run(result.ScenarioID, viewer)
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error running scenario: %v\n", err)
				continue
			}
			if !goBack {
				return
			}
		}
	}
}

// runtimeConfig sizes the viewer to the terminal.
func runtimeConfig(tickRate int) core.RuntimeConfig {
	width, height := 80, 24
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width, height = w, h
	}

	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: tickRate,
		Seed:     flagSeed,
	}
}

// isLevelFile reports whether ref names a file rather than a built-in level.
func isLevelFile(ref string) bool {
	_, err := os.Stat(ref)
	return err == nil
}

// openLogOutput returns the log destination for the viewer.
// Logging to stderr would corrupt the alternate screen, so logs are
// discarded unless a file is given.
func openLogOutput(path string) (io.Writer, func(), error) {
	if path == "" {
		return io.Discard, func() {}, nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}
	fmt.Fprintf(f, "--- jmpnrn play %s ---\n", time.Now().Format(time.RFC3339))
	return f, func() { f.Close() }, nil
}
