package main

import (
	"fmt"
	"net"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/panelboard/internal/arrangements"
	"github.com/vovakirdan/panelboard/internal/platform/tui"
	"github.com/vovakirdan/panelboard/internal/registry"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagIdleTimeout int
	flagServeLayout string
	flagServeGrid   string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the panelboard SSH server",
	Long: `Start an SSH server where every connection gets its own board.

Sessions are recorded in the server's journal (--db).

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.panelboard/host_key

Examples:
  panelboard serve                           # Listen on :23235 with auto-generated key
  panelboard serve --ssh :2222               # Listen on port 2222
  panelboard serve --host-key ./my_host_key  # Use specific host key
  panelboard serve --arrangement grid        # Seed every board with the grid layout

Users can connect with:
  ssh localhost -p 23235`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", ":23235", "SSH server address (host:port)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", 30, "Idle timeout in minutes before disconnecting")
	serveCmd.Flags().StringVar(&flagServeLayout, "arrangement", arrangements.DefaultID, "Arrangement every board starts with")
	serveCmd.Flags().StringVar(&flagServeGrid, "grid", "", "Grid preset: fine, normal, coarse, free")
}

func runServe(cmd *cobra.Command, _ []string) error {
	logger := loggerFromContext(cmd.Context())

	if !registry.Exists(flagServeLayout) {
		return fmt.Errorf("unknown arrangement %q", flagServeLayout)
	}

	board, err := loadBoardConfig(flagServeGrid)
	if err != nil {
		return err
	}

	cfg := tui.SSHServerConfig{
		Address:     flagSSHAddr,
		HostKeyPath: flagHostKey,
		DBPath:      flagDBPath,
		IdleTimeout: time.Duration(flagIdleTimeout) * time.Minute,
		Board:       board,
		Arrangement: flagServeLayout,
		Logger:      logger,
	}

	server, err := tui.NewSSHServer(cfg)
	if err != nil {
		return fmt.Errorf("creating server: %w", err)
	}

	if _, port, splitErr := net.SplitHostPort(cfg.Address); splitErr == nil {
		logger.Info("connect with ssh", "command", "ssh localhost -p "+port)
	}
	return server.ListenAndServe(cmd.Context())
}
