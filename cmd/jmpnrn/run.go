package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/jmpnrn/internal/actors"
	"github.com/vovakirdan/jmpnrn/internal/core"
	"github.com/vovakirdan/jmpnrn/internal/level"
	"github.com/vovakirdan/jmpnrn/internal/physics"
	"github.com/vovakirdan/jmpnrn/internal/registry"
	"github.com/vovakirdan/jmpnrn/internal/render"
	"github.com/vovakirdan/jmpnrn/internal/storage"
)

var (
	flagRunTicks     int
	flagRunUntil     bool
	flagRunAutopilot bool
	flagRunLevel     string
	flagRunNoSave    bool
	flagRunFrame     bool
)

var runCmd = &cobra.Command{
	Use:   "run <scenario>",
	Short: "Run a scenario headless",
	Long: `Step a scenario for a fixed number of ticks without a terminal UI,
then print the final actor table and record the run.

Examples:
  jmpnrn run landing --until-finished
  jmpnrn run pushout --mode iterative --ticks 300
  jmpnrn run sandbox --autopilot --frame
  jmpnrn run stack --level ./tower.tmx --log-level debug`,
	Args: cobra.ExactArgs(1),
	Run:  runRun,
}

func init() {
	runCmd.Flags().IntVar(&flagRunTicks, "ticks", 600, "Maximum number of ticks to simulate")
	runCmd.Flags().BoolVar(&flagRunUntil, "until-finished", false, "Stop as soon as the scenario reports it is finished")
	runCmd.Flags().BoolVar(&flagRunAutopilot, "autopilot", false, "Drive the player with the scenario's scripted input")
	runCmd.Flags().StringVar(&flagRunLevel, "level", "", "Built-in level name or .yaml/.tmx file to use instead")
	runCmd.Flags().BoolVar(&flagRunNoSave, "no-save", false, "Do not record the run in the database")
	runCmd.Flags().BoolVar(&flagRunFrame, "frame", false, "Print the final frame")
}

func runRun(_ *cobra.Command, args []string) {
	id := args[0]
	if err := requireScenario(id); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	env, err := newEnv(os.Stderr)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	env.Autopilot = flagRunAutopilot

	if flagRunLevel != "" {
		lvl, err := level.Resolve(flagRunLevel)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading level: %v\n", err)
			os.Exit(1)
		}
		env.Level = lvl
	}

	sc, err := registry.Create(id, env)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating scenario: %v\n", err)
		os.Exit(1)
	}

	rt := core.RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: env.Config.Physics.TickRate,
		Seed:     flagSeed,
	}
	if err := sc.Reset(rt); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	start := time.Now()
	st := simulate(sc, flagRunTicks, flagRunUntil)

	env.Logger.Info("run complete",
		"scenario", id,
		"level", sc.Level().Name,
		"mode", sc.World().Mode(),
		"ticks", st.Tick,
		"finished", st.Finished,
		"actors", st.Actors,
		"grounded", st.Grounded,
		"contacts", st.Contacts,
		"fallbacks", st.Fallbacks,
		"elapsed", time.Since(start),
	)

	printActors(os.Stdout, sc.World())

	if flagRunFrame {
		screen := render.NewScreen(rt.ScreenW, rt.ScreenH)
		sc.Render(screen)
		fmt.Println()
		fmt.Println(screen.String())
	}

	if flagRunNoSave {
		return
	}
	store, err := storage.Open(flagDBPath)
	if err != nil {
		env.Logger.Warn("could not open run database", "error", err)
		return
	}
	defer store.Close()

	run := storage.NewRun(id, sc.Level().Name, sc.World().Mode().String(), st)
	run.Preset = flagPreset
	run.Seed = flagSeed
	runID, err := store.SaveRun(run)
	if err != nil {
		env.Logger.Warn("could not save run", "error", err)
		return
	}
	env.Logger.Debug("run saved", "id", runID)
}

// simulate steps sc with empty input for at most ticks ticks.
func simulate(sc registry.Scenario, ticks int, untilFinished bool) core.SimState {
	in := core.NewInputFrame()
	for i := 0; i < ticks; i++ {
		res := sc.Step(in)
		if untilFinished && res.State.Finished {
			break
		}
	}
	return sc.State()
}

// printActors writes one row per live actor.
func printActors(w io.Writer, world *physics.World) {
	fmt.Fprintf(w, "  %-4s  %-10s  %8s  %8s  %5s  %5s  %8s  %8s  %s\n",
		"ID", "Kind", "X", "Y", "W", "H", "VX", "VY", "Grounded")
	fmt.Fprintf(w, "  %-4s  %-10s  %8s  %8s  %5s  %5s  %8s  %8s  %s\n",
		"--", "----", "-", "-", "-", "-", "--", "--", "--------")

	for _, a := range world.Actors() {
		grounded := ""
		if a.Grounded() {
			grounded = "yes"
		}
		fmt.Fprintf(w, "  %-4d  %-10s  %8.3f  %8.3f  %5.2f  %5.2f  %8.3f  %8.3f  %s\n",
			a.Handle(), actors.KindOf(a),
			a.X, a.Y, a.W, a.H,
			a.Vel.X, a.Vel.Y, grounded)
	}
}
