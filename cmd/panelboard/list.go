package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/panelboard/internal/arrangements"
	"github.com/vovakirdan/panelboard/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all available arrangements",
	Long:  `Shows every arrangement a board can be seeded with.`,
	Args:  cobra.NoArgs,
	Run:   runList,
}

func runList(cmd *cobra.Command, _ []string) {
	out := cmd.OutOrStdout()
	infos := registry.List()

	if len(infos) == 0 {
		fmt.Fprintln(out, "No arrangements available.")
		return
	}

	fmt.Fprintln(out, "Available arrangements:")
	fmt.Fprintln(out)

	// Calculate column widths
	maxIDLen, maxTitleLen := 2, 5 // "ID", "Title" headers
	for _, a := range infos {
		maxIDLen = max(maxIDLen, len(a.ID))
		maxTitleLen = max(maxTitleLen, len(a.Title))
	}

	fmt.Fprintf(out, "  %-*s  %-*s  %s\n", maxIDLen, "ID", maxTitleLen, "Title", "Layout")
	fmt.Fprintf(out, "  %-*s  %-*s  %s\n", maxIDLen, "--", maxTitleLen, "-----", "------")

	for _, a := range infos {
		id := a.ID
		if id == arrangements.DefaultID {
			id += "*"
		}
		fmt.Fprintf(out, "  %-*s  %-*s  %s\n", maxIDLen, id, maxTitleLen, a.Title, a.Description)
	}

	fmt.Fprintln(out)
	fmt.Fprintln(out, "* default. Run 'panelboard run --arrangement <id>' to open one.")
}
