package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/jmpnrn/internal/level"
)

var levelsCmd = &cobra.Command{
	Use:   "levels",
	Short: "List built-in levels",
	Long: `List the levels shipped with jmpnrn. Use 'levels show' to print a level
as YAML, which is also the way to convert a Tiled .tmx map.

Examples:
  jmpnrn levels
  jmpnrn levels show sandbox
  jmpnrn levels show ./maps/cave.tmx > cave.yaml`,
	Args: cobra.NoArgs,
	Run:  runLevels,
}

var levelsShowCmd = &cobra.Command{
	Use:   "show <level>",
	Short: "Print a level as YAML",
	Args:  cobra.ExactArgs(1),
	Run:   runLevelsShow,
}

func init() {
	levelsCmd.AddCommand(levelsShowCmd)
}

func runLevels(_ *cobra.Command, _ []string) {
	names := level.BuiltinNames()
	if len(names) == 0 {
		fmt.Println("No built-in levels.")
		return
	}

	fmt.Printf("  %-10s  %7s  %7s  %6s\n", "Name", "Size", "Statics", "Spawns")
	fmt.Printf("  %-10s  %7s  %7s  %6s\n", "----", "----", "-------", "------")
	for _, name := range names {
		lvl, err := level.Builtin(name)
		if err != nil {
			fmt.Printf("  %-10s  error: %v\n", name, err)
			continue
		}
		size := fmt.Sprintf("%gx%g", lvl.Width, lvl.Height)
		fmt.Printf("  %-10s  %7s  %7d  %6d\n", name, size, len(lvl.Statics), len(lvl.Spawns))
	}
}

func runLevelsShow(_ *cobra.Command, args []string) {
	lvl, err := level.Resolve(args[0])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	data, err := level.MarshalYAML(lvl)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	os.Stdout.Write(data)
}
