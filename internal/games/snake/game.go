// Package snake implements the Snake Xenzia game engine: a fixed 15x15 board,
// a tick-driven simulation and a single latched direction request per tick.
// The engine holds no timer and no I/O; hosts drive it through StartGame,
// RequestDirection and Tick, and read it back through Snapshot.
package snake

import (
	"fmt"
	"math/rand"
	"strings"
	"time"
)

// GameID identifies the game in score storage.
const GameID = "snake"

// Fixed game constants. Board size and speed are not configurable.
const (
	BoardSize    = 15
	FoodReward   = 10
	TickInterval = 150 * time.Millisecond
)

// Direction represents the snake's heading.
type Direction int

const (
	DirNone Direction = iota // empty latch
	DirUp
	DirDown
	DirLeft
	DirRight
)

// Opposite returns the reverse heading. DirNone has no opposite.
func (d Direction) Opposite() Direction {
	switch d {
	case DirUp:
		return DirDown
	case DirDown:
		return DirUp
	case DirLeft:
		return DirRight
	case DirRight:
		return DirLeft
	default:
		return DirNone
	}
}

func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return "none"
	}
}

// Phase is the coarse lifecycle state of a play session.
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseRunning
	PhaseGameOver
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseRunning:
		return "running"
	case PhaseGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// Cell is a board coordinate.
type Cell struct {
	X, Y int
}

// Step returns the neighbouring cell one unit away in direction d.
func (c Cell) Step(d Direction) Cell {
	switch d {
	case DirUp:
		return Cell{X: c.X, Y: c.Y - 1}
	case DirDown:
		return Cell{X: c.X, Y: c.Y + 1}
	case DirLeft:
		return Cell{X: c.X - 1, Y: c.Y}
	case DirRight:
		return Cell{X: c.X + 1, Y: c.Y}
	}
	return c
}

// InBounds reports whether the cell lies on an n x n board.
func (c Cell) InBounds(n int) bool {
	return c.X >= 0 && c.X < n && c.Y >= 0 && c.Y < n
}

// Collision describes why a tick ended the game.
type Collision int

const (
	CollisionNone Collision = iota
	CollisionWall
	CollisionSelf
)

func (c Collision) String() string {
	switch c {
	case CollisionWall:
		return "wall"
	case CollisionSelf:
		return "self"
	default:
		return "none"
	}
}

// TickResult reports what a single tick did.
// A zero value means the tick was ignored (game not running).
type TickResult struct {
	Moved        bool
	Ate          bool
	Collision    Collision
	NewHighScore bool
}

// HighScoreStore is the persistence collaborator for the scalar high score.
// Both methods are best-effort: implementations swallow and log their own failures.
// SaveHighScore is called from Tick and must not block.
type HighScoreStore interface {
	LoadHighScore() int
	SaveHighScore(score int)
}

// Options configures a new Game.
type Options struct {
	Seed   int64          // RNG seed for food placement
	Scores HighScoreStore // optional; nil disables persistence
}

// Game is the engine state for one play session.
// It is not safe for concurrent use; the host must serialise calls.
type Game struct {
	rng    *rand.Rand
	scores HighScoreStore
	tick   uint64

	snake     []Cell // head at index 0
	food      Cell
	direction Direction
	pending   Direction
	score     int
	highScore int
	phase     Phase
}

// New creates an idle game with a centered one-cell snake and placed food.
// The high score is seeded from opts.Scores when present.
func New(opts Options) *Game {
	g := &Game{
		rng:       rand.New(rand.NewSource(opts.Seed)),
		scores:    opts.Scores,
		direction: DirRight,
		phase:     PhaseIdle,
	}
	if g.scores != nil {
		g.highScore = max(0, g.scores.LoadHighScore())
	}
	g.snake = initialSnake()
	g.food = g.placeFood(g.snake)
	return g
}

func initialSnake() []Cell {
	return []Cell{{X: BoardSize / 2, Y: BoardSize / 2}}
}

// StartGame resets snake, food, heading and score and enters the running phase.
// It may be called from any phase. The high score is kept.
func (g *Game) StartGame() {
	g.snake = initialSnake()
	g.food = g.placeFood(g.snake)
	g.direction = DirRight
	g.pending = DirNone
	g.score = 0
	g.tick = 0
	g.phase = PhaseRunning
}

// RequestDirection latches d for the next tick, replacing any earlier request.
// Requests outside the running phase, or reversing the committed heading, are dropped.
// The return value reports whether the request was latched.
func (g *Game) RequestDirection(d Direction) bool {
	if g.phase != PhaseRunning || d == DirNone {
		return false
	}
	// Compare with the committed heading, not the pending one.
	if d == g.direction.Opposite() {
		return false
	}
	g.pending = d
	return true
}

// Tick advances the simulation one step. It does nothing unless running.
func (g *Game) Tick() TickResult {
	if g.phase != PhaseRunning {
		return TickResult{}
	}
	g.tick++

	if g.pending != DirNone {
		g.direction = g.pending
		g.pending = DirNone
	}

	newHead := g.snake[0].Step(g.direction)

	if !newHead.InBounds(BoardSize) {
		g.phase = PhaseGameOver
		return TickResult{Collision: CollisionWall}
	}

	// Check before shift: the tail still counts even though it would move this tick.
	if g.isSnakeAt(newHead) {
		g.phase = PhaseGameOver
		return TickResult{Collision: CollisionSelf}
	}

	g.snake = append([]Cell{newHead}, g.snake...)

	res := TickResult{Moved: true}
	if newHead == g.food {
		g.score += FoodReward
		g.food = g.placeFood(g.snake)
		res.Ate = true
	} else {
		g.snake = g.snake[:len(g.snake)-1]
	}

	if g.score > g.highScore {
		g.highScore = g.score
		res.NewHighScore = true
		if g.scores != nil {
			g.scores.SaveHighScore(g.highScore)
		}
	}

	return res
}

// placeFood draws uniformly random cells until one is not occupied.
// A completely full board never terminates; a 225-cell board is out of reach
// for a snake that grows one cell per food.
func (g *Game) placeFood(occupied []Cell) Cell {
	for {
		c := Cell{X: g.rng.Intn(BoardSize), Y: g.rng.Intn(BoardSize)}
		if !containsCell(occupied, c) {
			return c
		}
	}
}

// isSnakeAt checks if the snake occupies the given cell.
func (g *Game) isSnakeAt(c Cell) bool {
	return containsCell(g.snake, c)
}

func containsCell(cells []Cell, c Cell) bool {
	for _, seg := range cells {
		if seg == c {
			return true
		}
	}
	return false
}

// Phase returns the current lifecycle phase.
func (g *Game) Phase() Phase {
	return g.phase
}

// Score returns the current score.
func (g *Game) Score() int {
	return g.score
}

// HighScore returns the best score seen by this process, seeded from storage.
func (g *Game) HighScore() int {
	return g.highScore
}

// DebugState returns a string representation of the game state.
func (g *Game) DebugState() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Tick: %d, Phase: %s, Score: %d, Best: %d\n", g.tick, g.phase, g.score, g.highScore)
	fmt.Fprintf(&b, "Snake len: %d, Direction: %s, Pending: %s\n", len(g.snake), g.direction, g.pending)
	if len(g.snake) > 0 {
		fmt.Fprintf(&b, "Head: (%d, %d), Food: (%d, %d)\n", g.snake[0].X, g.snake[0].Y, g.food.X, g.food.Y)
	}
	return b.String()
}
