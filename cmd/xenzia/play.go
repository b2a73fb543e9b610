package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/snake-xenzia/internal/core"
	"github.com/vovakirdan/snake-xenzia/internal/games/snake"
	"github.com/vovakirdan/snake-xenzia/internal/logging"
	"github.com/vovakirdan/snake-xenzia/internal/platform/tui"
	"github.com/vovakirdan/snake-xenzia/internal/storage"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play Snake Xenzia",
	Long: `Start a game in this terminal.

Controls:
  Arrows/WASD  - Steer
  Mouse drag   - Swipe to steer
  Enter/Space  - Start, or play again after game over
  P/Esc        - Pause
  Ctrl+S       - Save a screenshot
  Q/Ctrl+C     - Quit

Examples:
  xenzia play
  xenzia play --seed 42
  xenzia play --db ./xenzia.db
  xenzia play --config ./my-xenzia.yaml --log-level debug`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func runPlay(_ *cobra.Command, _ []string) {
	cfg := loadConfig()

	// The TUI owns the terminal, so logs go to a file.
	logger, closeLog, err := logging.NewFile(cfg.Log, "xenzia")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
	}
	defer closeLog()

	rc := core.DefaultConfig()
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		rc.ScreenW = w
		rc.ScreenH = h
	}

	rc.Seed = flagSeed
	if rc.Seed == 0 {
		rc.Seed = time.Now().UnixNano()
	}

	// Open high score storage
	store, err := storage.Open(cfg.Storage.Path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open high score database: %v\n", err)
		logger.Warn("playing without persistence", "error", err)
		// Continue without storage - game still works
		store = nil
	}

	keeper := storage.NewHighScoreKeeper(store, snake.GameID, logger)
	game := snake.New(snake.Options{
		Seed:   rc.Seed,
		Scores: keeper,
	})
	logger.Info("session started", "seed", rc.Seed, "best", game.HighScore())

	runErr := tui.Run(game, rc, cfg.Input.SwipeThreshold, logger)

	// Flush pending saves and close store before potential exit
	keeper.Close()
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		logger.Error("game exited with error", "error", runErr)
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		closeLog()
		os.Exit(1)
	}
}
