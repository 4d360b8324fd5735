package snake

import (
	"fmt"
	"math/rand"

	"github.com/ndolgikh/gridplay/internal/config"
	"github.com/ndolgikh/gridplay/internal/core"
	"github.com/ndolgikh/gridplay/internal/registry"
)

// Direction represents the snake's movement direction.
type Direction int

const (
	DirRight Direction = iota
	DirDown
	DirLeft
	DirUp
)

// String returns a human-readable direction name.
func (d Direction) String() string {
	switch d {
	case DirRight:
		return "right"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirUp:
		return "up"
	default:
		return "unknown"
	}
}

// Gameplay constants. The playfield is a fixed square grid and the pacing
// is tied to the platform tick rate; neither is runtime-configurable.
const (
	GridSize   = 20 // Playfield is GridSize x GridSize cells
	FoodReward = 10 // Score gained per food eaten
	MovePeriod = 8  // Platform ticks between snake moves
	hudHeight  = 2  // Rows reserved above the playfield
)

// Point represents a 2D grid coordinate.
type Point struct {
	X, Y int
}

// Game implements the snake game: a single growing snake on a bounded
// grid chasing one food cell at a time.
type Game struct {
	rng  *rand.Rand
	tick uint64

	// Snake state
	gridSize   int
	snake      []Point // Head at index 0
	direction  Direction
	nextDir    Direction // Buffered direction applied on the next move
	food       Point
	score      int
	moveTicker int // Counts ticks until the next move

	// Game state flags
	gameOver bool
	paused   bool

	// Resolved theme
	headCell    core.Cell
	bodyCell    core.Cell
	foodCell    core.Cell
	borderColor core.Color

	// Screen dimensions
	screenW int
	screenH int
}

var configPath string

// SetConfigPath sets a custom theme config file loaded on the next Reset.
func SetConfigPath(path string) {
	configPath = path
}

// New creates a new snake game instance.
func New() *Game {
	return &Game{}
}

func init() {
	registry.Register("snake", func() registry.Game {
		return New()
	})
}

// ID returns the unique game identifier.
func (g *Game) ID() string {
	return "snake"
}

// Title returns the human-readable game title.
func (g *Game) Title() string {
	return "Snake"
}

// Reset initializes the game state with the given runtime config.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.rng = rand.New(rand.NewSource(cfg.Seed))
	g.tick = 0
	g.score = 0
	g.moveTicker = 0
	g.gameOver = false
	g.paused = false
	g.screenW = cfg.ScreenW
	g.screenH = cfg.ScreenH
	g.gridSize = GridSize

	themeCfg, err := config.LoadSnake(configPath)
	if err != nil {
		themeCfg = config.DefaultSnakeConfig()
	}
	g.applyTheme(themeCfg.Theme)

	// Single-segment snake at the grid center, heading right
	center := Point{X: g.gridSize / 2, Y: g.gridSize / 2}
	g.snake = []Point{center}
	g.direction = DirRight
	g.nextDir = DirRight

	g.spawnFood()
}

func (g *Game) applyTheme(t config.SnakeTheme) {
	g.headCell = core.Cell{Rune: firstRune(t.HeadGlyph, 'O'), Color: core.ColorByName(t.HeadColor)}
	g.bodyCell = core.Cell{Rune: firstRune(t.BodyGlyph, 'o'), Color: core.ColorByName(t.BodyColor)}
	g.foodCell = core.Cell{Rune: firstRune(t.FoodGlyph, '*'), Color: core.ColorByName(t.FoodColor)}
	g.borderColor = core.ColorByName(t.BorderColor)
}

// firstRune returns the first rune of s, or fallback if s is empty.
func firstRune(s string, fallback rune) rune {
	for _, r := range s {
		return r
	}
	return fallback
}

// Step advances the game by one tick.
func (g *Game) Step(input core.InputFrame) core.StepResult {
	g.tick++

	// Restart is only honored once the game is over
	if input.Has(core.ActionRestart) && g.gameOver {
		g.Reset(core.RuntimeConfig{
			Seed:    g.rng.Int63(),
			ScreenW: g.screenW,
			ScreenH: g.screenH,
		})
		return core.StepResult{State: g.State()}
	}

	// Pause toggles are ignored once the game is over
	if input.Has(core.ActionPause) && !g.gameOver {
		g.paused = !g.paused
	}

	if g.gameOver || g.paused {
		return core.StepResult{State: g.State()}
	}

	g.processInput(input)

	var events []core.Event
	g.moveTicker++
	if g.moveTicker >= MovePeriod {
		g.moveTicker = 0
		g.moveSnake()
		if g.gameOver {
			events = append(events, core.GameOverEvent{Score: g.score})
		}
	}

	return core.StepResult{State: g.State(), Events: events}
}

// processInput buffers a direction change for the next move.
func (g *Game) processInput(input core.InputFrame) {
	switch input.Direction() {
	case core.ActionUp:
		g.setDirection(DirUp)
	case core.ActionDown:
		g.setDirection(DirDown)
	case core.ActionLeft:
		g.setDirection(DirLeft)
	case core.ActionRight:
		g.setDirection(DirRight)
	}
}

// setDirection updates the buffered direction unless the request is the
// exact opposite of what is already buffered.
func (g *Game) setDirection(req Direction) {
	if isOpposite(req, g.nextDir) {
		return
	}
	g.nextDir = req
}

// isOpposite reports whether two directions cancel each other.
func isOpposite(d1, d2 Direction) bool {
	return (d1 == DirUp && d2 == DirDown) ||
		(d1 == DirDown && d2 == DirUp) ||
		(d1 == DirLeft && d2 == DirRight) ||
		(d1 == DirRight && d2 == DirLeft)
}

// moveSnake advances the snake one cell in the effective direction.
func (g *Game) moveSnake() {
	if len(g.snake) == 0 {
		return
	}

	// Apply the buffered direction unless it would reverse the current
	// one; rapid inputs within a single move period can buffer a reverse.
	if !isOpposite(g.nextDir, g.direction) {
		g.direction = g.nextDir
	}

	head := g.snake[0]
	var newHead Point
	switch g.direction {
	case DirRight:
		newHead = Point{X: head.X + 1, Y: head.Y}
	case DirDown:
		newHead = Point{X: head.X, Y: head.Y + 1}
	case DirLeft:
		newHead = Point{X: head.X - 1, Y: head.Y}
	case DirUp:
		newHead = Point{X: head.X, Y: head.Y - 1}
	}

	// Wall collision ends the game
	if newHead.X < 0 || newHead.X >= g.gridSize || newHead.Y < 0 || newHead.Y >= g.gridSize {
		g.gameOver = true
		return
	}

	// Self collision is checked against the pre-move body, tail included
	if g.isSnakeAt(newHead) {
		g.gameOver = true
		return
	}

	g.snake = append([]Point{newHead}, g.snake...)

	if newHead == g.food {
		g.score += FoodReward
		// Tail stays: the snake grows by one
		if len(g.snake) < g.gridSize*g.gridSize {
			g.spawnFood()
		} else {
			// Grid is full, no cell left for food
			g.gameOver = true
		}
	} else {
		g.snake = g.snake[:len(g.snake)-1]
	}
}

// isSnakeAt reports whether any snake segment occupies p.
func (g *Game) isSnakeAt(p Point) bool {
	for _, seg := range g.snake {
		if seg == p {
			return true
		}
	}
	return false
}

// spawnFood places food on a uniformly random free cell, resampling
// until it lands off the snake body.
func (g *Game) spawnFood() {
	for {
		p := Point{X: g.rng.Intn(g.gridSize), Y: g.rng.Intn(g.gridSize)}
		if !g.isSnakeAt(p) {
			g.food = p
			return
		}
	}
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	g.renderHUD(dst)
	g.renderField(dst)

	switch {
	case g.gameOver:
		g.renderOverlay(dst, "Game Over", "Press R to restart")
	case g.paused:
		g.renderOverlay(dst, "Paused", "Press Space to continue")
	}
}

func (g *Game) renderHUD(dst *core.Screen) {
	hud := fmt.Sprintf(" Snake   Score: %d   Length: %d", g.score, len(g.snake))
	dst.DrawText(0, 0, hud)
	dst.DrawHLine(0, 1, dst.Width(), '─')
}

func (g *Game) renderField(dst *core.Screen) {
	offX, offY := g.fieldOrigin(dst)

	border := core.NewRect(offX-1, offY-1, g.gridSize+2, g.gridSize+2)
	dst.DrawBoxColor(border, g.borderColor)

	dst.SetCell(offX+g.food.X, offY+g.food.Y, g.foodCell.Rune, g.foodCell.Color)

	// Head drawn last so it wins cell overlaps
	for i := len(g.snake) - 1; i >= 0; i-- {
		seg := g.snake[i]
		cell := g.bodyCell
		if i == 0 {
			cell = g.headCell
		}
		dst.SetCell(offX+seg.X, offY+seg.Y, cell.Rune, cell.Color)
	}
}

// fieldOrigin returns the screen position of the grid's top-left cell,
// centering the playfield below the HUD.
func (g *Game) fieldOrigin(dst *core.Screen) (int, int) {
	offX := (dst.Width() - g.gridSize) / 2
	offY := hudHeight + core.Max(1, (dst.Height()-hudHeight-g.gridSize)/2)
	return offX, offY
}

func (g *Game) renderOverlay(dst *core.Screen, title, hint string) {
	boxW := core.Max(len(title), len(hint)) + 6
	boxH := 5
	box := core.NewRect((dst.Width()-boxW)/2, (dst.Height()-boxH)/2, boxW, boxH)
	dst.DrawRect(box, ' ')
	dst.DrawBox(box)
	dst.DrawTextCentered(box.Y+1, title)
	dst.DrawTextCentered(box.Y+3, hint)
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		GameOver: g.gameOver,
		Paused:   g.paused,
	}
}
