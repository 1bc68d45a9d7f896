package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/panelboard/internal/arrangements"
	"github.com/vovakirdan/panelboard/internal/config"
	"github.com/vovakirdan/panelboard/internal/platform/tui"
	"github.com/vovakirdan/panelboard/internal/registry"
	"github.com/vovakirdan/panelboard/internal/storage"
)

var (
	flagArrangement string
	flagGrid        string
	flagLogFile     string
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Open a board in this terminal",
	Long: `Open a board seeded with the chosen arrangement.

Mouse:
  Drag a box body       - Move the box
  Drag a border/corner  - Resize from that edge
  Click ×               - Close the box

Keys:
  A         - Add a box
  X/Delete  - Close the selected box
  Tab       - Raise the next box
  S         - Session journal
  ?         - Toggle key help
  Q/Ctrl+C  - Quit

Grid options:
  fine    - Snap to every cell
  normal  - Snap to two cells
  coarse  - Snap to four cells, larger minimum box
  free    - No snapping

Examples:
  panelboard run
  panelboard run --arrangement cascade
  panelboard run --grid free
  panelboard run --config ./board.toml`,
	Args: cobra.NoArgs,
	RunE: runBoard,
}

func init() {
	runCmd.Flags().StringVar(&flagArrangement, "arrangement", arrangements.DefaultID, "Starting arrangement")
	runCmd.Flags().StringVar(&flagGrid, "grid", "", "Grid preset: fine, normal, coarse, free")
	runCmd.Flags().StringVar(&flagLogFile, "log-file", "", "Write board logs to this file")
}

// loadBoardConfig loads the config named by --config and applies --grid.
func loadBoardConfig(grid string) (config.BoardConfig, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return cfg, err
	}
	if grid != "" {
		preset, err := config.ParseGridPreset(grid)
		if err != nil {
			return cfg, err
		}
		config.ApplyGridPreset(&cfg, preset)
	}
	return cfg, cfg.Validate()
}

func runBoard(cmd *cobra.Command, _ []string) error {
	logger := loggerFromContext(cmd.Context())

	if !registry.Exists(flagArrangement) {
		return fmt.Errorf("unknown arrangement %q, run 'panelboard list' to see available arrangements", flagArrangement)
	}

	cfg, err := loadBoardConfig(flagGrid)
	if err != nil {
		return err
	}

	// Get terminal size early so the board is seeded at the right size
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	// The alternate screen owns the terminal, so board logs go to a file.
	boardLog := log.New(io.Discard)
	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return fmt.Errorf("cannot open log file: %w", err)
		}
		defer f.Close()
		boardLog = newLogger(f, logger.GetLevel())
	}

	// Open the journal
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open session journal", "error", err)
		// Continue without storage - the board still works
		store = nil
	}

	runErr := tui.Run(tui.BoardOptions{
		Config:      cfg,
		Arrangement: flagArrangement,
		Origin:      "local",
		Store:       store,
		Logger:      boardLog,
		Width:       width,
		Height:      height,
	})

	// Close store before returning
	if store != nil {
		store.Close()
	}
	return runErr
}
