package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/panelboard/internal/platform/tui"
	"github.com/vovakirdan/panelboard/internal/registry"
	"github.com/vovakirdan/panelboard/internal/storage"
)

var (
	flagLimit       int
	flagStatsTUI    bool
	flagStatsFilter string
	flagStatsClear  bool
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show the session journal",
	Long: `Display recent board sessions and the interaction totals.

Examples:
  panelboard stats
  panelboard stats --limit 5
  panelboard stats --arrangement grid
  panelboard stats --tui
  panelboard stats --clear --arrangement pair`,
	Args: cobra.NoArgs,
	RunE: runStats,
}

func init() {
	statsCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of sessions to show")
	statsCmd.Flags().BoolVar(&flagStatsTUI, "tui", false, "Browse the journal interactively")
	statsCmd.Flags().StringVar(&flagStatsFilter, "arrangement", "", "Only show one arrangement")
	statsCmd.Flags().BoolVar(&flagStatsClear, "clear", false, "Delete the selected sessions instead of showing them")
}

func runStats(cmd *cobra.Command, _ []string) error {
	logger := loggerFromContext(cmd.Context())

	if flagStatsFilter != "" && !registry.Exists(flagStatsFilter) {
		return fmt.Errorf("unknown arrangement %q", flagStatsFilter)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		return err
	}
	defer store.Close()

	if flagStatsClear {
		n, err := store.Clear(flagStatsFilter)
		if err != nil {
			return err
		}
		logger.Info("journal cleared", "sessions", n, "arrangement", flagStatsFilter)
		return nil
	}

	if flagStatsTUI {
		width, height := 80, 24
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width, height = w, h
		}
		return tui.RunJournal(store, width, height)
	}

	return printStats(cmd.OutOrStdout(), store, flagStatsFilter, flagLimit)
}

// printStats writes the totals and the most recent sessions to w.
func printStats(w io.Writer, store *storage.Store, arrangement string, limit int) error {
	totals, err := store.Totals(arrangement)
	if err != nil {
		return err
	}

	scope := "all arrangements"
	if arrangement != "" {
		scope = arrangement
	}
	fmt.Fprintf(w, "Session Journal - %s\n", scope)
	fmt.Fprintln(w)

	if totals.Sessions == 0 {
		fmt.Fprintln(w, "No sessions recorded yet.")
		fmt.Fprintln(w)
		fmt.Fprintln(w, "Run 'panelboard run' and quit with 'q' to record one!")
		return nil
	}

	// The journal query is not filtered, so read enough rows to fill limit.
	sessions, err := store.RecentSessions(max(limit, 1) * 10)
	if err != nil {
		return err
	}

	fmt.Fprintf(w, "  %-16s  %-9s  %-5s  %5s  %5s  %7s  %5s  %8s\n",
		"Ended", "Layout", "From", "Boxes", "Moves", "Resizes", "Snaps", "Length")
	fmt.Fprintf(w, "  %-16s  %-9s  %-5s  %5s  %5s  %7s  %5s  %8s\n",
		"-----", "------", "----", "-----", "-----", "-------", "-----", "------")

	shown := 0
	for _, s := range sessions {
		if arrangement != "" && s.Arrangement != arrangement {
			continue
		}
		if shown == limit {
			break
		}
		shown++
		fmt.Fprintf(w, "  %-16s  %-9s  %-5s  %5d  %5d  %7d  %5d  %8s\n",
			s.EndedAt.Local().Format("2006-01-02 15:04"),
			s.Arrangement,
			s.Origin,
			s.Stats.Added,
			s.Stats.Moves,
			s.Stats.Resizes,
			s.Stats.Snaps,
			s.Duration().Round(time.Second),
		)
	}

	t := totals.Stats
	fmt.Fprintln(w)
	fmt.Fprintf(w, "Sessions: %d  Gestures: %d  Snaps: %d  Collisions: %d  Rescales: %d\n",
		totals.Sessions, t.Gestures(), t.Snaps, t.Collisions, t.Rescales)
	fmt.Fprintf(w, "Last session: %s\n", totals.LastPlayed.Local().Format("2006-01-02 15:04"))
	return nil
}
