package tictactoe

import (
	"slices"
	"strings"
	"testing"

	"github.com/ndolgikh/gridplay/internal/core"
)

// runUntilMatchEnd steps the simulator until a match ends, returning
// the event. It fails the test if no match completes within maxTicks.
func runUntilMatchEnd(t *testing.T, g *Game, maxTicks int) core.MatchEndedEvent {
	t.Helper()

	input := core.NewInputFrame()
	for i := 0; i < maxTicks; i++ {
		res := g.Step(input)
		for _, ev := range res.Events {
			if ended, ok := ev.(core.MatchEndedEvent); ok {
				return ended
			}
		}
	}

	t.Fatalf("No match finished within %d ticks", maxTicks)
	return core.MatchEndedEvent{}
}

func TestFirstMoveIsXAtCenter(t *testing.T) {
	cfg := core.RuntimeConfig{
		Seed:    1,
		ScreenW: 80,
		ScreenH: 24,
	}

	g := New()
	g.Reset(cfg)

	if g.current != X {
		t.Fatalf("X should move first, got %s", g.current)
	}

	input := core.NewInputFrame()
	for len(g.history) == 0 {
		g.Step(input)
	}

	first := g.history[0]
	if first.Player != X {
		t.Errorf("First move should belong to X, got %s", first.Player)
	}
	if first.Pos != center {
		t.Errorf("X should open at the center, got %d", first.Pos)
	}
	if first.Tick != uint64(g.movePeriod()) {
		t.Errorf("First move should land on tick %d, got %d", g.movePeriod(), first.Tick)
	}
}

func TestMatchPlaysToCompletion(t *testing.T) {
	cfg := core.RuntimeConfig{
		Seed:    42,
		ScreenW: 80,
		ScreenH: 24,
	}

	g := New()
	g.Reset(cfg)

	ended := runUntilMatchEnd(t, g, 5000)

	if g.verdict.Status == StatusPlaying {
		t.Fatal("Verdict should be terminal after MatchEndedEvent")
	}
	if g.stats.GamesPlayed != 1 {
		t.Errorf("Expected 1 game played, got %d", g.stats.GamesPlayed)
	}
	if ended.Moves != len(g.history) {
		t.Errorf("Event moves %d does not match history length %d",
			ended.Moves, len(g.history))
	}

	switch g.verdict.Status {
	case StatusWon:
		if ended.Result != g.verdict.Winner.String() {
			t.Errorf("Event result %q does not match winner %s",
				ended.Result, g.verdict.Winner)
		}
	case StatusDraw:
		if ended.Result != "draw" {
			t.Errorf("Expected result draw, got %q", ended.Result)
		}
	}

	if ended.DurationTicks == 0 {
		t.Error("Match duration should be positive")
	}
}

func TestHistoryReplaysToBoard(t *testing.T) {
	cfg := core.RuntimeConfig{
		Seed:    7,
		ScreenW: 80,
		ScreenH: 24,
	}

	g := New()
	g.Reset(cfg)

	// The invariant holds at every tick, mid-match and between matches
	input := core.NewInputFrame()
	for i := 0; i < 2000; i++ {
		g.Step(input)

		rb, err := Replay(g.history)
		if err != nil {
			t.Fatalf("Tick %d: history does not replay: %v", i, err)
		}
		if rb != g.board {
			t.Fatalf("Tick %d: replayed board %v differs from live board %v",
				i, rb, g.board)
		}
	}
}

func TestStatsAccumulateAcrossMatches(t *testing.T) {
	cfg := core.RuntimeConfig{
		Seed:    99,
		ScreenW: 80,
		ScreenH: 24,
	}

	g := New()
	g.Reset(cfg)

	for range 3 {
		runUntilMatchEnd(t, g, 5000)
	}

	if g.stats.GamesPlayed != 3 {
		t.Fatalf("Expected 3 games played, got %d", g.stats.GamesPlayed)
	}
	if sum := g.stats.XWins + g.stats.OWins + g.stats.Draws; sum != 3 {
		t.Errorf("Result counts %d do not add up to games played", sum)
	}
}

func TestAutoRestartDelay(t *testing.T) {
	cfg := core.RuntimeConfig{
		Seed:    5,
		ScreenW: 80,
		ScreenH: 24,
	}

	g := New()
	g.Reset(cfg)

	runUntilMatchEnd(t, g, 5000)

	delay := g.restartIn
	if delay < g.restartCfg.MinTicks || delay > g.restartCfg.MaxTicks {
		t.Fatalf("Restart delay %d outside [%d, %d]",
			delay, g.restartCfg.MinTicks, g.restartCfg.MaxTicks)
	}

	// The board stays frozen until the delay runs out
	input := core.NewInputFrame()
	for i := 0; i < delay-1; i++ {
		g.Step(input)
	}
	if g.verdict.Status == StatusPlaying {
		t.Fatal("Board reset before the delay elapsed")
	}

	g.Step(input)
	if g.verdict.Status != StatusPlaying {
		t.Error("Board should reset once the delay elapses")
	}
	if len(g.history) != 0 || g.board != (Board{}) || g.current != X {
		t.Error("New match should start from an empty board with X to move")
	}
}

func TestManualRestartKeepsStats(t *testing.T) {
	cfg := core.RuntimeConfig{
		Seed:    13,
		ScreenW: 80,
		ScreenH: 24,
	}

	g := New()
	g.Reset(cfg)

	runUntilMatchEnd(t, g, 5000)
	statsBefore := g.stats

	input := core.NewInputFrame()
	input.Set(core.ActionRestart)
	g.Step(input)

	if g.verdict.Status != StatusPlaying || g.board != (Board{}) {
		t.Error("Restart should clear the board immediately")
	}
	if g.stats != statsBefore {
		t.Errorf("Restart must not touch stats: %+v vs %+v", g.stats, statsBefore)
	}
}

func TestResetStatsAction(t *testing.T) {
	cfg := core.RuntimeConfig{
		Seed:    21,
		ScreenW: 80,
		ScreenH: 24,
	}

	g := New()
	g.Reset(cfg)
	g.stats = Stats{XWins: 2, OWins: 1, Draws: 1, GamesPlayed: 4}

	input := core.NewInputFrame()
	input.Set(core.ActionResetStats)
	g.Step(input)

	if g.stats != (Stats{}) {
		t.Errorf("Stats should be zeroed, got %+v", g.stats)
	}
}

func TestAutoplayToggleFreezesBoard(t *testing.T) {
	cfg := core.RuntimeConfig{
		Seed:    31,
		ScreenW: 80,
		ScreenH: 24,
	}

	g := New()
	g.Reset(cfg)

	input := core.NewInputFrame()
	input.Set(core.ActionPause)
	g.Step(input)

	if g.autoplay {
		t.Fatal("ActionPause should switch autoplay off")
	}
	if !g.State().Paused {
		t.Error("State should report paused while autoplay is off")
	}

	// No moves land while autoplay is off, but ticks keep counting
	input.Clear()
	tickBefore := g.tick
	for range 200 {
		g.Step(input)
	}
	if len(g.history) != 0 {
		t.Errorf("Moves landed while autoplay was off: %v", g.history)
	}
	if g.tick != tickBefore+200 {
		t.Errorf("Tick should keep advancing, got %d", g.tick)
	}

	// Switching autoplay back on resumes play
	input.Set(core.ActionPause)
	g.Step(input)
	input.Clear()
	for i := 0; i <= g.movePeriod(); i++ {
		g.Step(input)
	}
	if len(g.history) == 0 {
		t.Error("Moves should resume after autoplay is re-enabled")
	}
}

func TestSpeedControlsClamp(t *testing.T) {
	cfg := core.RuntimeConfig{
		Seed:    41,
		ScreenW: 80,
		ScreenH: 24,
	}

	g := New()
	g.Reset(cfg)

	if len(g.speeds) < 2 {
		t.Fatalf("Expected several speed presets, got %d", len(g.speeds))
	}

	for range len(g.speeds) * 2 {
		g.changeSpeed(1)
	}
	if g.speedIdx != len(g.speeds)-1 {
		t.Errorf("Speed up should clamp at %d, got %d", len(g.speeds)-1, g.speedIdx)
	}

	for range len(g.speeds) * 2 {
		g.changeSpeed(-1)
	}
	if g.speedIdx != 0 {
		t.Errorf("Speed down should clamp at 0, got %d", g.speedIdx)
	}

	// Faster presets wait fewer ticks between moves
	slow := g.movePeriod()
	g.changeSpeed(len(g.speeds) - 1)
	if fast := g.movePeriod(); fast >= slow {
		t.Errorf("Fastest period %d should be below slowest %d", fast, slow)
	}
}

func TestResetZeroesSession(t *testing.T) {
	cfg := core.RuntimeConfig{
		Seed:    51,
		ScreenW: 80,
		ScreenH: 24,
	}

	g := New()
	g.Reset(cfg)

	runUntilMatchEnd(t, g, 5000)
	if g.stats.GamesPlayed == 0 {
		t.Fatal("Setup should have played a match")
	}

	g.Reset(cfg)

	if g.stats != (Stats{}) {
		t.Errorf("Reset should zero stats, got %+v", g.stats)
	}
	if g.board != (Board{}) || len(g.history) != 0 {
		t.Error("Reset should clear the board and history")
	}
	if g.current != X || g.verdict.Status != StatusPlaying {
		t.Error("Reset should leave X to move on a running board")
	}
	if !g.autoplay {
		t.Error("Reset should re-enable autoplay")
	}
}

func TestSimulatorDeterminism(t *testing.T) {
	cfg := core.RuntimeConfig{
		Seed:    12345,
		ScreenW: 80,
		ScreenH: 24,
	}

	g1 := New()
	g1.Reset(cfg)

	g2 := New()
	g2.Reset(cfg)

	input := core.NewInputFrame()
	for i := 0; i < 1500; i++ {
		input.Clear()
		if i == 50 {
			input.Set(core.ActionSpeedUp)
		}
		if i == 400 {
			input.Set(core.ActionPause)
		}
		if i == 430 {
			input.Set(core.ActionPause)
		}

		g1.Step(input)
		g2.Step(input)
	}

	snap1 := g1.Snapshot()
	snap2 := g2.Snapshot()

	if snap1.Board != snap2.Board {
		t.Errorf("Board mismatch: %v vs %v", snap1.Board, snap2.Board)
	}
	if !slices.Equal(snap1.History, snap2.History) {
		t.Errorf("History mismatch: %v vs %v", snap1.History, snap2.History)
	}
	if snap1.Stats != snap2.Stats {
		t.Errorf("Stats mismatch: %+v vs %+v", snap1.Stats, snap2.Stats)
	}
	if snap1.Current != snap2.Current || snap1.Status != snap2.Status {
		t.Error("Turn or status diverged between equal seeds")
	}
	if snap1.RestartIn != snap2.RestartIn {
		t.Errorf("RestartIn mismatch: %d vs %d", snap1.RestartIn, snap2.RestartIn)
	}
}

func TestGameIDAndTitle(t *testing.T) {
	g := New()
	if g.ID() != "tictactoe" {
		t.Errorf("ID should be 'tictactoe', got %s", g.ID())
	}
	if g.Title() != "Tic-Tac-Toe" {
		t.Errorf("Title should be 'Tic-Tac-Toe', got %s", g.Title())
	}
}

func TestRender(t *testing.T) {
	cfg := core.RuntimeConfig{
		Seed:    61,
		ScreenW: 80,
		ScreenH: 24,
	}

	g := New()
	g.Reset(cfg)

	screen := core.NewScreen(cfg.ScreenW, cfg.ScreenH)
	g.Render(screen)

	content := screen.String()
	if !strings.Contains(content, "Tic-Tac-Toe") {
		t.Error("HUD should contain the game title")
	}
	if !strings.Contains(content, "Session") {
		t.Error("Panel should contain the session header")
	}

	// Banner appears once a match has a verdict
	g.board = Board{X, X, X, O, O, Empty, Empty, Empty, Empty}
	g.verdict = g.board.Evaluate()
	g.Render(screen)

	if !strings.Contains(screen.String(), "X wins the match") {
		t.Error("Banner should announce the winner")
	}
}
