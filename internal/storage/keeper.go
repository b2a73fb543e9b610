package storage

import (
	"sync"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/snake-xenzia/internal/games/snake"
)

// HighScoreKeeper adapts a Store to the game's best-effort persistence contract.
// Failures are logged and swallowed; callers never see an error.
// A nil store is allowed and turns the keeper into a no-op.
//
// Saves never block the caller. A background writer persists the latest
// requested score; since the stored value only increases, coalescing
// pending saves keeps them in order. Close flushes and stops the writer.
type HighScoreKeeper struct {
	store  *Store
	gameID string
	logger *log.Logger

	mu      sync.Mutex
	pending int
	queued  bool
	closed  bool

	wake chan struct{}
	quit chan struct{}
	done chan struct{}
	once sync.Once
}

// NewHighScoreKeeper creates a keeper for one game ID.
func NewHighScoreKeeper(store *Store, gameID string, logger *log.Logger) *HighScoreKeeper {
	if logger == nil {
		logger = log.Default()
	}
	k := &HighScoreKeeper{
		store:  store,
		gameID: gameID,
		logger: logger.With("game", gameID),
		wake:   make(chan struct{}, 1),
		quit:   make(chan struct{}),
		done:   make(chan struct{}),
	}
	if store == nil {
		close(k.done)
		return k
	}
	go k.run()
	return k
}

// LoadHighScore returns the stored high score, or 0 on any failure.
func (k *HighScoreKeeper) LoadHighScore() int {
	if k.store == nil {
		return 0
	}
	score, err := k.store.HighScore(k.gameID)
	if err != nil {
		k.logger.Warn("could not load high score", "error", err)
		return 0
	}
	k.logger.Debug("loaded high score", "score", score)
	return score
}

// SaveHighScore queues score for the background writer and returns immediately.
// After Close the write happens on the caller's goroutine.
func (k *HighScoreKeeper) SaveHighScore(score int) {
	if k.store == nil {
		return
	}

	k.mu.Lock()
	if k.closed {
		k.mu.Unlock()
		k.write(score)
		return
	}
	if !k.queued || score > k.pending {
		k.pending = score
	}
	k.queued = true
	k.mu.Unlock()

	select {
	case k.wake <- struct{}{}:
	default: // writer already signalled
	}
}

// Close writes any queued score and stops the background writer.
// It is safe to call more than once.
func (k *HighScoreKeeper) Close() {
	k.once.Do(func() {
		k.mu.Lock()
		k.closed = true
		k.mu.Unlock()
		close(k.quit)
	})
	<-k.done
}

func (k *HighScoreKeeper) run() {
	defer close(k.done)
	for {
		select {
		case <-k.wake:
			k.flush()
		case <-k.quit:
			k.flush()
			return
		}
	}
}

// flush writes the queued score, if any.
func (k *HighScoreKeeper) flush() {
	k.mu.Lock()
	score, queued := k.pending, k.queued
	k.queued = false
	k.mu.Unlock()

	if queued {
		k.write(score)
	}
}

func (k *HighScoreKeeper) write(score int) {
	if err := k.store.SaveHighScore(k.gameID, score); err != nil {
		k.logger.Warn("could not save high score", "score", score, "error", err)
		return
	}
	k.logger.Debug("saved high score", "score", score)
}

// Ensure HighScoreKeeper implements the engine's persistence contract
var _ snake.HighScoreStore = (*HighScoreKeeper)(nil)
