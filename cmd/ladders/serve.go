package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-ladders/internal/platform/tui"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagIdleTimeout int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the snakes and ladders SSH server",
	Long: `Start an SSH server that allows users to connect and play.

Each SSH connection gets its own match against the computer. Finished
matches are stored in the server's database, so all users share one history.

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.ladders/host_key

Examples:
  ladders serve                           # Listen on :23234 with auto-generated key
  ladders serve --ssh :2222               # Listen on port 2222
  ladders serve --host-key ./my_host_key  # Use specific host key
  ladders serve --db ./ladders.db         # Use specific database

Users can connect with:
  ssh localhost -p 23234`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", ":23234", "SSH server address (host:port)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", 30, "Idle timeout in minutes before disconnecting")
}

func runServe(_ *cobra.Command, _ []string) error {
	srvCfg := tui.SSHServerConfig{
		Address:       flagSSHAddr,
		HostKeyPath:   flagHostKey,
		DBPath:        flagDBPath,
		IdleTimeout:   time.Duration(flagIdleTimeout) * time.Minute,
		Board:         cfg.EngineBoard(),
		ComputerDelay: cfg.ComputerDelay(),
		Session:       sessionOptions(),
	}

	server, err := tui.NewSSHServer(srvCfg, logger.WithPrefix("ladders-ssh"))
	if err != nil {
		return fmt.Errorf("creating server: %w", err)
	}

	fmt.Printf("Starting snakes and ladders SSH server on %s\n", srvCfg.Address)
	fmt.Println("Press Ctrl+C to stop")

	if err := server.ListenAndServe(); err != nil {
		return fmt.Errorf("server: %w", err)
	}
	return nil
}
