// xenzia is a single-player Snake Xenzia game for the terminal.
//
// Usage:
//
//	xenzia play              - Play in this terminal
//	xenzia serve             - Start SSH server for remote play
//	xenzia scores            - Show the stored high score
//
// Global flags:
//
//	--seed <value>      - Set RNG seed for reproducible food placement
//	--db <path>         - Set database path (default from config: ~/.arcade/xenzia.db)
//	--config <path>     - Use a specific config file
//	--log-level <lvl>   - Override the configured log level
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/snake-xenzia/internal/config"
)

var (
	// Global flags
	flagSeed     int64
	flagDBPath   string
	flagConfig   string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "xenzia",
	Short: "Snake Xenzia - the classic snake game in your terminal",
	Long: `Snake Xenzia is the classic phone snake game on a 15x15 board.
Eat food to grow and score, avoid the walls and your own tail.

Available commands:
  play     - Play in this terminal
  serve    - Start SSH server for remote play
  scores   - View or reset the high score

Examples:
  xenzia play
  xenzia play --seed 42
  xenzia serve --ssh :2222
  xenzia scores --reset`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "", "Path to high score database (overrides config)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level: debug, info, warn, error (overrides config)")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
}

// loadConfig loads the configuration and applies global flag overrides.
func loadConfig() config.Config {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if flagDBPath != "" {
		cfg.Storage.Path = flagDBPath
	}
	if flagLogLevel != "" {
		cfg.Log.Level = flagLogLevel
	}
	return cfg
}
