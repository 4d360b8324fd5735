package tictactoe

import (
	"fmt"
	"math/rand"

	"github.com/ndolgikh/gridplay/internal/config"
	"github.com/ndolgikh/gridplay/internal/core"
	"github.com/ndolgikh/gridplay/internal/registry"
)

// Screen geometry.
const (
	hudHeight   = 2
	cellW       = 6
	cellH       = 3
	boardW      = 3*cellW + 2
	boardH      = 3*cellH + 2
	panelGap    = 6
	panelW      = 14
	panelLogMax = 5
)

// Move records a single placement, stamped with the tick it landed on.
type Move struct {
	Player Mark
	Pos    int
	Tick   uint64
}

// Stats accumulates match results across board resets.
type Stats struct {
	XWins       int
	OWins       int
	Draws       int
	GamesPlayed int
}

// Game implements the self-playing tic-tac-toe simulator: two scripted
// players alternate on a tick cadence, results accumulate in session
// stats, and finished matches restart after a randomized delay.
type Game struct {
	rng  *rand.Rand
	tick uint64

	board      Board
	current    Mark
	verdict    Verdict
	history    []Move
	stats      Stats
	matchStart uint64

	autoplay   bool
	speeds     []config.SpeedPreset
	speedIdx   int
	moveTicker int

	restartCfg config.RestartDelay
	restartIn  int // Ticks until the next match, armed when one ends

	// Resolved theme
	xColor    core.Color
	oColor    core.Color
	winColor  core.Color
	gridColor core.Color

	screenW  int
	screenH  int
	tickRate int
}

var (
	configPath string
	speedName  string
)

// SetConfigPath sets a custom config file loaded on the next Reset.
func SetConfigPath(path string) {
	configPath = path
}

// SetSpeed selects the named speed preset on the next Reset.
func SetSpeed(name string) {
	speedName = name
}

// New creates a new tic-tac-toe simulator instance.
func New() *Game {
	return &Game{}
}

func init() {
	registry.Register("tictactoe", func() registry.Game {
		return New()
	})
}

// ID returns the unique game identifier.
func (g *Game) ID() string {
	return "tictactoe"
}

// Title returns the human-readable game title.
func (g *Game) Title() string {
	return "Tic-Tac-Toe"
}

// Reset initializes the simulator and zeroes the session stats.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.rng = rand.New(rand.NewSource(cfg.Seed))
	g.tick = 0
	g.screenW = cfg.ScreenW
	g.screenH = cfg.ScreenH
	g.tickRate = cfg.TickRate
	if g.tickRate <= 0 {
		g.tickRate = 60
	}
	g.stats = Stats{}
	g.autoplay = true

	ttt, err := config.LoadTicTacToe(configPath)
	if err != nil {
		ttt = config.DefaultTicTacToeConfig()
	}
	g.speeds = ttt.Speeds
	name := speedName
	if name == "" {
		name = ttt.DefaultSpeed
	}
	g.speedIdx = ttt.SpeedIndex(name)
	g.restartCfg = ttt.Restart
	g.applyTheme(ttt.Theme)

	g.resetBoard()
}

func (g *Game) applyTheme(t config.TicTacToeTheme) {
	g.xColor = core.ColorByName(t.XColor)
	g.oColor = core.ColorByName(t.OColor)
	g.winColor = core.ColorByName(t.WinColor)
	g.gridColor = core.ColorByName(t.GridColor)
}

// resetBoard starts a fresh match. Session state survives: stats,
// speed, autoplay and the rng stream all carry over.
func (g *Game) resetBoard() {
	g.board = Board{}
	g.verdict = Verdict{}
	g.history = nil
	g.current = X
	g.moveTicker = 0
	g.restartIn = 0
	g.matchStart = g.tick
}

// Step advances the simulator by one tick.
func (g *Game) Step(input core.InputFrame) core.StepResult {
	g.tick++

	// Restart abandons the current match without touching stats
	if input.Has(core.ActionRestart) {
		g.resetBoard()
		return core.StepResult{State: g.State()}
	}
	if input.Has(core.ActionPause) {
		g.autoplay = !g.autoplay
	}
	if input.Has(core.ActionSpeedUp) {
		g.changeSpeed(1)
	}
	if input.Has(core.ActionSpeedDown) {
		g.changeSpeed(-1)
	}
	if input.Has(core.ActionResetStats) {
		g.stats = Stats{}
	}

	if g.verdict.Status != StatusPlaying {
		// Between matches: run down the restart delay
		if g.autoplay {
			g.restartIn--
			if g.restartIn <= 0 {
				g.resetBoard()
			}
		}
		return core.StepResult{State: g.State()}
	}

	if !g.autoplay {
		return core.StepResult{State: g.State()}
	}

	var events []core.Event
	g.moveTicker++
	if g.moveTicker >= g.movePeriod() {
		g.moveTicker = 0
		events = g.playMove()
	}

	return core.StepResult{State: g.State(), Events: events}
}

// playMove places one policy move for the current player and evaluates
// the result. It returns a MatchEndedEvent when the move ends the match.
func (g *Game) playMove() []core.Event {
	idx, ok := ChooseMove(g.board, g.current, g.rng)
	if !ok {
		return nil
	}

	//nolint:errcheck // ChooseMove only returns empty cells
	g.board.Apply(idx, g.current)
	g.history = append(g.history, Move{Player: g.current, Pos: idx, Tick: g.tick})

	g.verdict = g.board.Evaluate()
	if g.verdict.Status == StatusPlaying {
		g.current = g.current.Other()
		return nil
	}

	g.stats.GamesPlayed++
	result := "draw"
	switch g.verdict.Winner {
	case X:
		g.stats.XWins++
		result = "X"
	case O:
		g.stats.OWins++
		result = "O"
	default:
		g.stats.Draws++
	}
	g.scheduleRestart()

	return []core.Event{core.MatchEndedEvent{
		Result:        result,
		Moves:         len(g.history),
		DurationTicks: g.tick - g.matchStart,
	}}
}

// scheduleRestart arms a randomized delay before the next match so
// back-to-back games do not feel metronomic.
func (g *Game) scheduleRestart() {
	span := g.restartCfg.MaxTicks - g.restartCfg.MinTicks
	g.restartIn = g.restartCfg.MinTicks
	if span > 0 {
		g.restartIn += g.rng.Intn(span + 1)
	}
}

// changeSpeed shifts the speed preset by delta, clamped to the list.
func (g *Game) changeSpeed(delta int) {
	g.speedIdx = core.Clamp(g.speedIdx+delta, 0, len(g.speeds)-1)
}

// movePeriod returns the ticks between moves for the active preset.
func (g *Game) movePeriod() int {
	if len(g.speeds) == 0 {
		return 30
	}
	return g.speeds[g.speedIdx].MoveEveryTicks
}

func (g *Game) speedLabel() string {
	if len(g.speeds) == 0 {
		return "normal"
	}
	return g.speeds[g.speedIdx].Name
}

// Render draws the board, the session panel and the match banner.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	g.renderHUD(dst)

	total := boardW + panelGap + panelW
	ox := core.Max(1, (dst.Width()-total)/2)
	oy := hudHeight + core.Max(1, (dst.Height()-hudHeight-boardH)/2-1)

	g.renderGrid(dst, ox, oy)
	g.renderMarks(dst, ox, oy)
	g.renderPanel(dst, ox+boardW+panelGap, oy)

	if g.verdict.Status != StatusPlaying {
		g.renderBanner(dst, oy+boardH+1)
	}
}

func (g *Game) renderHUD(dst *core.Screen) {
	auto := "on"
	if !g.autoplay {
		auto = "off"
	}
	hud := fmt.Sprintf(" Tic-Tac-Toe   Speed: %s   Autoplay: %s   Turn: %s",
		g.speedLabel(), auto, g.current)
	dst.DrawText(0, 0, hud)
	dst.DrawHLine(0, 1, dst.Width(), '─')
}

func (g *Game) renderGrid(dst *core.Screen, ox, oy int) {
	v1 := ox + cellW
	v2 := ox + 2*cellW + 1
	h1 := oy + cellH
	h2 := oy + 2*cellH + 1

	dst.DrawHLineColor(ox, h1, boardW, '─', g.gridColor)
	dst.DrawHLineColor(ox, h2, boardW, '─', g.gridColor)
	dst.DrawVLineColor(v1, oy, boardH, '│', g.gridColor)
	dst.DrawVLineColor(v2, oy, boardH, '│', g.gridColor)

	for _, x := range []int{v1, v2} {
		for _, y := range []int{h1, h2} {
			dst.SetCell(x, y, '┼', g.gridColor)
		}
	}
}

func (g *Game) renderMarks(dst *core.Screen, ox, oy int) {
	latest := -1
	if len(g.history) > 0 {
		latest = g.history[len(g.history)-1].Pos
	}
	for idx, m := range g.board {
		if m == Empty {
			continue
		}
		x := ox + (idx%3)*(cellW+1) + cellW/2
		y := oy + (idx/3)*(cellH+1) + cellH/2

		c := g.xColor
		if m == O {
			c = g.oColor
		}
		if g.onWinningLine(idx) {
			c = g.winColor
		}
		dst.SetCell(x, y, markRune(m), c)
		if idx == latest {
			dst.SetCell(x-1, y, '[', c)
			dst.SetCell(x+1, y, ']', c)
		}
	}
}

func markRune(m Mark) rune {
	if m == X {
		return 'X'
	}
	return 'O'
}

func (g *Game) onWinningLine(idx int) bool {
	for _, i := range g.verdict.Line {
		if i == idx {
			return true
		}
	}
	return false
}

func (g *Game) renderPanel(dst *core.Screen, px, py int) {
	lines := []string{
		"Session",
		fmt.Sprintf("X wins  %d", g.stats.XWins),
		fmt.Sprintf("O wins  %d", g.stats.OWins),
		fmt.Sprintf("Draws   %d", g.stats.Draws),
		fmt.Sprintf("Games   %d", g.stats.GamesPlayed),
		"",
		fmt.Sprintf("Moves   %d", len(g.history)),
	}
	log := g.history
	if len(log) > panelLogMax {
		log = log[len(log)-panelLogMax:]
	}
	for _, mv := range log {
		lines = append(lines, fmt.Sprintf(" %s  %d,%d", mv.Player, mv.Pos/3, mv.Pos%3))
	}
	for i, line := range lines {
		dst.DrawText(px, py+i, line)
	}
}

func (g *Game) renderBanner(dst *core.Screen, y int) {
	var msg string
	var c core.Color
	switch {
	case g.verdict.Status == StatusWon && g.verdict.Winner == X:
		msg = "X wins the match"
		c = g.xColor
	case g.verdict.Status == StatusWon:
		msg = "O wins the match"
		c = g.oColor
	default:
		msg = "Match drawn"
		c = core.ColorDefault
	}
	dst.DrawTextColor((dst.Width()-len(msg))/2, y, msg, c)

	hint := "press r for the next match"
	if g.autoplay {
		secs := (g.restartIn + g.tickRate - 1) / g.tickRate
		hint = fmt.Sprintf("next match in %ds", secs)
	}
	dst.DrawTextCentered(y+1, hint)
}

// State returns platform-visible state. Score carries the number of
// completed matches; the simulator itself never reaches game over.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.stats.GamesPlayed,
		GameOver: false,
		Paused:   !g.autoplay,
	}
}
