package snake

// Snapshot is a read-only copy of the session for renderers and tests.
// Mutating a Snapshot never affects the Game it came from.
type Snapshot struct {
	Tick      uint64
	Snake     []Cell // head first
	Food      Cell
	Direction Direction
	Pending   Direction
	Score     int
	HighScore int
	Phase     Phase
}

// Head returns the snake's head cell.
func (s Snapshot) Head() Cell {
	if len(s.Snake) == 0 {
		return Cell{}
	}
	return s.Snake[0]
}

// Snapshot returns a deep copy of the current session.
func (g *Game) Snapshot() Snapshot {
	body := make([]Cell, len(g.snake))
	copy(body, g.snake)

	return Snapshot{
		Tick:      g.tick,
		Snake:     body,
		Food:      g.food,
		Direction: g.direction,
		Pending:   g.pending,
		Score:     g.score,
		HighScore: g.highScore,
		Phase:     g.phase,
	}
}
