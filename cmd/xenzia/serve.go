package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/snake-xenzia/internal/config"
	"github.com/vovakirdan/snake-xenzia/internal/games/snake"
	"github.com/vovakirdan/snake-xenzia/internal/logging"
	"github.com/vovakirdan/snake-xenzia/internal/platform/tui"
	"github.com/vovakirdan/snake-xenzia/internal/storage"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagIdleTimeout int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the Snake Xenzia SSH server",
	Long: `Start an SSH server that lets users connect and play.

Each SSH connection gets its own game. All players share one
high score stored in the server's database.

Host key handling:
  - If --host-key (or server.host_key) is set, uses that key file
  - Otherwise, auto-generates a key at ~/.arcade/host_key

Examples:
  xenzia serve                           # Listen on :23234 with auto-generated key
  xenzia serve --ssh :2222               # Listen on port 2222
  xenzia serve --host-key ./my_host_key  # Use specific host key
  xenzia serve --db ./xenzia.db          # Use specific database

Users can connect with:
  ssh localhost -p 23234`,
	Args: cobra.NoArgs,
	Run:  runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", "", "SSH server address host:port (overrides config)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (overrides config)")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", 0, "Idle timeout in minutes (overrides config)")
}

func runServe(_ *cobra.Command, _ []string) {
	cfg := loadConfig()
	if flagSSHAddr != "" {
		cfg.Server.Address = flagSSHAddr
	}
	if flagHostKey != "" {
		cfg.Server.HostKey = flagHostKey
	}
	if flagIdleTimeout > 0 {
		cfg.Server.IdleTimeoutMinutes = flagIdleTimeout
	}

	logger := logging.New(os.Stderr, cfg.Log, "xenzia-ssh")

	store, err := storage.Open(cfg.Storage.Path)
	if err != nil {
		logger.Warn("could not open high score database", "error", err)
		// Continue without storage
		store = nil
	}
	keeper := storage.NewHighScoreKeeper(store, snake.GameID, logger)

	serveErr := serve(cfg, keeper, logger)

	// Flush pending saves and close the store before a potential exit
	keeper.Close()
	if store != nil {
		store.Close()
	}

	if serveErr != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", serveErr)
		os.Exit(1)
	}
}

// serve runs the SSH server until it is interrupted or fails.
func serve(cfg config.Config, keeper *storage.HighScoreKeeper, logger *log.Logger) error {
	server, err := tui.NewSSHServer(cfg, keeper, logger)
	if err != nil {
		return err
	}

	fmt.Printf("Starting Snake Xenzia SSH server on %s\n", server.Addr())
	fmt.Println("Press Ctrl+C to stop")

	if err := server.ListenAndServe(); err != nil {
		logger.Error("server stopped", "error", err)
		return err
	}
	return nil
}
