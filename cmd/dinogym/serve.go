package main

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/dino-gym/internal/platform/tui"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagIdleTimeout int
	flagServeEnv    string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the SSH server",
	Long: `Start an SSH server that lets users connect and play the runner.

Each SSH connection gets its own session with the menu. Scores are stored
per-server (all users share the same leaderboard) under their SSH user name.

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.dinogym/host_key

Examples:
  dinogym serve                           # Listen on :23234 with auto-generated key
  dinogym serve --ssh :2222               # Listen on port 2222
  dinogym serve --host-key ./my_host_key  # Use specific host key
  dinogym serve --db ./scores.db          # Use specific database

Users can connect with:
  ssh localhost -p 23234`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", ":23234", "SSH server address (host:port)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", 30, "Idle timeout in minutes before disconnecting")
	serveCmd.Flags().StringVar(&flagServeEnv, "env", "ChromeDino-v0", "Environment variant for the watch entry")
}

func runServe(_ *cobra.Command, _ []string) error {
	cfg := tui.DefaultSSHServerConfig()
	cfg.Address = flagSSHAddr
	cfg.HostKeyPath = flagHostKey
	cfg.DBPath = flagDBPath
	cfg.IdleTimeout = time.Duration(flagIdleTimeout) * time.Minute
	cfg.TickRate = flagFPS
	cfg.WatchEnv = flagServeEnv
	cfg.Logger = logger

	server, err := tui.NewSSHServer(cfg)
	if err != nil {
		return err
	}

	logger.Info("connect with: ssh localhost -p <port>", "address", server.Addr())
	return server.ListenAndServe()
}
