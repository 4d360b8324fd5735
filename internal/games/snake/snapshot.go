package snake

// Snapshot captures the complete game state for determinism tests.
type Snapshot struct {
	Tick     uint64
	Score    int
	Body     []Point // Head at index 0
	Dir      Direction
	NextDir  Direction
	Food     Point
	GameOver bool
	Paused   bool
}

// Snapshot returns a deep copy of the current game state.
func (g *Game) Snapshot() Snapshot {
	body := make([]Point, len(g.snake))
	copy(body, g.snake)

	return Snapshot{
		Tick:     g.tick,
		Score:    g.score,
		Body:     body,
		Dir:      g.direction,
		NextDir:  g.nextDir,
		Food:     g.food,
		GameOver: g.gameOver,
		Paused:   g.paused,
	}
}
