// panelboard is a terminal board of boxes you drag, resize, stack and
// magnetically align with the mouse.
//
// Usage:
//
//	panelboard run           - Open a board in this terminal
//	panelboard list          - List available arrangements
//	panelboard stats         - Show the session journal
//	panelboard serve         - Start SSH server for remote boards
//
// Global flags:
//
//	--config <path>  - Board config file (.yaml or .toml)
//	--db <path>      - Set database path (default: ~/.panelboard/journal.db)
//	--verbose        - Enable debug logging
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	// Import arrangements to register them
	_ "github.com/vovakirdan/panelboard/internal/arrangements"
)

var (
	// Global flags
	flagConfig  string
	flagDBPath  string
	flagVerbose bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "panelboard",
	Short: "Panelboard - drag, resize and snap boxes in your terminal",
	Long: `Panelboard is a terminal board of boxes. Drag a box by its body,
resize it by its border, and let it snap magnetically to the box it
overlaps. Boxes stay inside the board when the terminal is resized.

Available commands:
  run      - Open a board in this terminal
  list     - Show all available arrangements
  stats    - View the session journal
  serve    - Start SSH server for remote boards

Examples:
  panelboard run
  panelboard run --arrangement grid --grid coarse
  panelboard stats --limit 5
  panelboard serve --ssh :2222`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, _ []string) {
		level := log.InfoLevel
		if flagVerbose {
			level = log.DebugLevel
		}
		ctx := cmd.Context()
		if ctx == nil {
			ctx = context.Background()
		}
		cmd.SetContext(withLogger(ctx, newLogger(os.Stderr, level)))
	},
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to board config (YAML or TOML)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.panelboard/journal.db", "Path to session journal database")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "Enable debug logging")

	// Add subcommands
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(serveCmd)
}
