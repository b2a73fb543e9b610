package storage

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/snake-xenzia/internal/games/snake"
)

// newTestKeeper returns a keeper that is closed before the store is.
func newTestKeeper(t *testing.T, store *Store) *HighScoreKeeper {
	t.Helper()
	keeper := NewHighScoreKeeper(store, snake.GameID, log.New(&bytes.Buffer{}))
	t.Cleanup(keeper.Close)
	return keeper
}

func TestKeeperRoundTrip(t *testing.T) {
	store := openTestStore(t)
	keeper := newTestKeeper(t, store)

	if got := keeper.LoadHighScore(); got != 0 {
		t.Errorf("Expected 0 before any save, got %d", got)
	}

	keeper.SaveHighScore(40)
	keeper.SaveHighScore(30) // lower, ignored
	keeper.Close()

	if got := keeper.LoadHighScore(); got != 40 {
		t.Errorf("Expected 40, got %d", got)
	}
}

func TestKeeperNilStore(t *testing.T) {
	keeper := NewHighScoreKeeper(nil, snake.GameID, nil)

	keeper.SaveHighScore(100) // must not panic
	keeper.Close()
	if got := keeper.LoadHighScore(); got != 0 {
		t.Errorf("Expected 0 without a store, got %d", got)
	}
}

func TestKeeperSwallowsFailures(t *testing.T) {
	store, err := Open(filepath.Join(t.TempDir(), "closed.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	store.Close()

	var buf bytes.Buffer
	keeper := NewHighScoreKeeper(store, snake.GameID, log.New(&buf))

	keeper.SaveHighScore(10)
	keeper.Close()
	if !strings.Contains(buf.String(), "could not save high score") {
		t.Errorf("Expected save failure to be logged, got %q", buf.String())
	}

	if got := keeper.LoadHighScore(); got != 0 {
		t.Errorf("Expected 0 on load failure, got %d", got)
	}
	if !strings.Contains(buf.String(), "could not load high score") {
		t.Errorf("Expected load failure to be logged, got %q", buf.String())
	}
}

func TestKeeperDrivesEngine(t *testing.T) {
	store := openTestStore(t)
	if err := store.SaveHighScore(snake.GameID, 20); err != nil {
		t.Fatalf("SaveHighScore() failed: %v", err)
	}
	keeper := newTestKeeper(t, store)

	g := snake.New(snake.Options{Seed: 2, Scores: keeper})
	if g.HighScore() != 20 {
		t.Fatalf("Engine should be seeded with 20, got %d", g.HighScore())
	}

	// Steer into food three times using the snapshot read contract.
	g.StartGame()
	for g.Score() < 30 && g.Phase() == snake.PhaseRunning {
		snap := g.Snapshot()
		head, food := snap.Head(), snap.Food
		switch {
		case food.X > head.X:
			g.RequestDirection(snake.DirRight)
		case food.X < head.X:
			g.RequestDirection(snake.DirLeft)
		case food.Y > head.Y:
			g.RequestDirection(snake.DirDown)
		default:
			g.RequestDirection(snake.DirUp)
		}
		g.Tick()
	}

	if g.Score() < 30 {
		t.Fatalf("Expected the snake to reach 30, ended at %d in phase %s", g.Score(), g.Phase())
	}
	if g.HighScore() != 30 {
		t.Fatalf("Expected high score 30, got %d", g.HighScore())
	}

	keeper.Close()
	high, err := store.HighScore(snake.GameID)
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 30 {
		t.Errorf("Store should hold 30, got %d", high)
	}
}

func TestKeeperSaveDoesNotBlock(t *testing.T) {
	store := openTestStore(t)
	keeper := newTestKeeper(t, store)

	// Hold the only connection so any write has to wait.
	tx, err := store.db.Begin()
	if err != nil {
		t.Fatalf("Begin() failed: %v", err)
	}

	returned := make(chan struct{})
	go func() {
		keeper.SaveHighScore(50)
		keeper.SaveHighScore(60)
		close(returned)
	}()

	select {
	case <-returned:
	case <-time.After(2 * time.Second):
		tx.Rollback()
		t.Fatal("SaveHighScore blocked on a busy database")
	}

	if err := tx.Rollback(); err != nil {
		t.Fatalf("Rollback() failed: %v", err)
	}
	keeper.Close()

	high, err := store.HighScore(snake.GameID)
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 60 {
		t.Errorf("Expected the latest save 60 after Close, got %d", high)
	}
}

func TestKeeperSaveAfterClose(t *testing.T) {
	store := openTestStore(t)
	keeper := newTestKeeper(t, store)

	keeper.Close()
	keeper.Close() // idempotent
	keeper.SaveHighScore(70)

	if got := keeper.LoadHighScore(); got != 70 {
		t.Errorf("Save after Close should write directly, got %d", got)
	}
}
