package main

import (
	"fmt"
	"os"
	"sort"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/jmpnrn/internal/platform/tui"
	"github.com/vovakirdan/jmpnrn/internal/storage"
)

var (
	flagRunsLimit int
	flagRunsStats bool
	flagRunsClear bool
	flagRunsTUI   bool
)

var runsCmd = &cobra.Command{
	Use:   "runs [scenario]",
	Short: "Show recorded runs",
	Long: `Display the most recent runs, optionally for one scenario only.

Examples:
  jmpnrn runs
  jmpnrn runs landing --limit 5
  jmpnrn runs --stats
  jmpnrn runs stack --clear
  jmpnrn runs --tui`,
	Args: cobra.MaximumNArgs(1),
	Run:  runRuns,
}

func init() {
	runsCmd.Flags().IntVar(&flagRunsLimit, "limit", 20, "Number of runs to show")
	runsCmd.Flags().BoolVar(&flagRunsStats, "stats", false, "Show per-scenario statistics instead")
	runsCmd.Flags().BoolVar(&flagRunsClear, "clear", false, "Delete the selected runs")
	runsCmd.Flags().BoolVar(&flagRunsTUI, "tui", false, "Browse runs in the interactive table")
}

func runRuns(_ *cobra.Command, args []string) {
	scenario := ""
	if len(args) == 1 {
		scenario = args[0]
		if err := requireScenario(scenario); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening run database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	switch {
	case flagRunsTUI:
		width, height := 80, 24
		if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
			width, height = w, h
		}
		if _, err := tui.RunRuns(store, width, height); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}

	case flagRunsClear:
		n, err := store.ClearRuns(scenario)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return
		}
		fmt.Printf("Deleted %d runs.\n", n)

	case flagRunsStats:
		printStats(store)

	default:
		printRuns(store, scenario)
	}
}

func printRuns(store *storage.Store, scenario string) {
	runs, err := store.RecentRuns(scenario, flagRunsLimit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving runs: %v\n", err)
		return
	}

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Println("Run 'jmpnrn run <scenario>' to record one.")
		return
	}

	fmt.Printf("  %-5s  %-9s  %-9s  %-9s  %-7s  %6s  %6s  %6s  %6s  %-4s  %s\n",
		"ID", "Scenario", "Level", "Mode", "Preset", "Ticks", "Actors", "Ground", "Fallbk", "Done", "Date")
	fmt.Printf("  %-5s  %-9s  %-9s  %-9s  %-7s  %6s  %6s  %6s  %6s  %-4s  %s\n",
		"--", "--------", "-----", "----", "------", "-----", "------", "------", "------", "----", "----")

	for _, r := range runs {
		done := ""
		if r.Finished {
			done = "yes"
		}
		fmt.Printf("  %-5d  %-9s  %-9s  %-9s  %-7s  %6d  %6d  %6d  %6d  %-4s  %s\n",
			r.ID, r.Scenario, r.Level, r.Mode, r.Preset,
			r.Ticks, r.Actors, r.Grounded, r.Fallbacks, done,
			r.CreatedAt.Format("2006-01-02 15:04"))
	}
}

func printStats(store *storage.Store) {
	stats, err := store.Stats()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving stats: %v\n", err)
		return
	}
	if len(stats) == 0 {
		fmt.Println("No runs recorded yet.")
		return
	}

	ids := make([]string, 0, len(stats))
	for id := range stats {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	fmt.Printf("  %-10s  %5s  %8s  %9s  %9s  %s\n", "Scenario", "Runs", "Finished", "Avg ticks", "Avg fallb", "Last run")
	fmt.Printf("  %-10s  %5s  %8s  %9s  %9s  %s\n", "--------", "----", "--------", "---------", "---------", "--------")
	for _, id := range ids {
		s := stats[id]
		fmt.Printf("  %-10s  %5d  %8d  %9.1f  %9.2f  %s\n",
			s.Scenario, s.Runs, s.Finished, s.AvgTicks, s.AvgFallbacks,
			s.LastRun.Format("2006-01-02 15:04"))
	}
}
