package tictactoe

// Snapshot captures the complete simulator state for determinism tests.
type Snapshot struct {
	Tick      uint64
	Board     Board
	Current   Mark
	Status    Status
	Winner    Mark
	Line      []int
	History   []Move
	Stats     Stats
	SpeedIdx  int
	Autoplay  bool
	RestartIn int
}

// Snapshot returns a deep copy of the current simulator state.
func (g *Game) Snapshot() Snapshot {
	history := make([]Move, len(g.history))
	copy(history, g.history)

	var line []int
	if g.verdict.Line != nil {
		line = make([]int, len(g.verdict.Line))
		copy(line, g.verdict.Line)
	}

	return Snapshot{
		Tick:      g.tick,
		Board:     g.board,
		Current:   g.current,
		Status:    g.verdict.Status,
		Winner:    g.verdict.Winner,
		Line:      line,
		History:   history,
		Stats:     g.stats,
		SpeedIdx:  g.speedIdx,
		Autoplay:  g.autoplay,
		RestartIn: g.restartIn,
	}
}
