package blockfall

import (
	"math"

	"github.com/vovakirdan/blockfall/internal/config"
	"github.com/vovakirdan/blockfall/internal/core"
	"github.com/vovakirdan/blockfall/internal/registry"
)

// rewardTable holds the points for clearing 0-4 rows with one lock. The
// award is multiplied by the level in effect at the moment of lock.
var rewardTable = [5]int{0, 40, 100, 300, 1200}

// linesPerLevel is how many cleared rows advance the level by one.
const linesPerLevel = 10

// Game implements the falling-block puzzle.
type Game struct {
	rand   Randomizer
	custom Randomizer // survives resets; set by NewWithRandomizer
	tick   uint64
	cfg    config.BlockfallConfig

	field  *Field
	active *Piece // nil before the first spawn and after game over
	queue  []Kind

	score      int
	lines      int
	level      int
	kindCounts [KindCount]int

	tickRate      int
	gravityFrames int // host ticks between gravity steps at the current level
	gravityTick   int // ticks since the last gravity step

	// Screen dimensions
	screenW int
	screenH int

	// Game state flags
	gameOver     bool
	paused       bool
	tooSmall     bool
	hardDropHeld bool // latched while the hard-drop key stays held
}

// Package-level variables for config
var (
	configPath       string
	difficultyPreset config.DifficultyPreset
	fieldWidth       int
	fieldHeight      int
)

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset.
func SetDifficultyPreset(preset string) {
	switch preset {
	case "easy":
		difficultyPreset = config.DifficultyEasy
	case "normal":
		difficultyPreset = config.DifficultyNormal
	case "hard":
		difficultyPreset = config.DifficultyHard
	case "fixed":
		difficultyPreset = config.DifficultyFixed
	default:
		difficultyPreset = ""
	}
}

// SetFieldSize overrides the configured field dimensions, typically with
// the dimensions carried by the selected theme. Zero leaves the config
// value untouched.
func SetFieldSize(width, height int) {
	fieldWidth = width
	fieldHeight = height
}

// New creates a new game with the default seeded piece source.
func New() *Game {
	return &Game{}
}

// NewWithRandomizer creates a game that draws pieces from the given
// source instead of the seeded default. Used for scripted sequences.
func NewWithRandomizer(r Randomizer) *Game {
	return &Game{custom: r}
}

func init() {
	registry.Register("blockfall", func() registry.Game {
		return New()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return "blockfall"
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Blockfall"
}

// Reset initializes/restarts the game.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.screenW = cfg.ScreenW
	g.screenH = cfg.ScreenH
	g.tickRate = cfg.TickRate
	if g.tickRate <= 0 {
		g.tickRate = core.DefaultConfig().TickRate
	}

	conf, err := config.LoadBlockfall(configPath)
	if err != nil {
		conf = config.DefaultBlockfallConfig()
	}
	if difficultyPreset != "" {
		config.ApplyBlockfallPreset(&conf, difficultyPreset)
	}
	if fieldWidth > 0 {
		conf.Field.Width = fieldWidth
	}
	if fieldHeight > 0 {
		conf.Field.Height = fieldHeight
	}
	g.cfg = conf

	if g.custom != nil {
		g.rand = g.custom
	} else {
		g.rand = NewUniformRandomizer(cfg.Seed)
	}

	g.checkScreenSize()
	g.restart()
}

// restart returns the game to a fresh board and queue without touching
// the piece source, so a scripted source keeps its stream.
func (g *Game) restart() {
	g.tick = 0
	g.score = 0
	g.lines = 0
	g.level = 1
	g.kindCounts = [KindCount]int{}
	g.field = NewField(g.cfg.Field.Width, g.cfg.Field.Height)
	g.active = nil
	g.queue = g.queue[:0]
	for i := 0; i < g.cfg.Queue.Lookahead; i++ {
		g.queue = append(g.queue, g.rand.Next())
	}
	g.gameOver = false
	g.paused = false
	g.hardDropHeld = false
	g.refreshGravity()
	g.gravityTick = 0
}

// refreshGravity recomputes the gravity period in host ticks for the
// current level. Clamped at one tick per row once the curve bottoms out.
func (g *Game) refreshGravity() {
	interval := float64(g.cfg.Gravity.BaseMs) / 1000.0 *
		math.Pow(g.cfg.Gravity.Factor, float64(g.level-1))
	g.gravityFrames = core.Max(1, int(math.Round(interval*float64(g.tickRate))))
}

// checkScreenSize checks if the screen is large enough.
func (g *Game) checkScreenSize() {
	minW := g.cfg.Field.Width*2 + 2 + panelGap + panelWidth
	minH := g.cfg.Field.Height + 3 // title row plus field borders
	g.tooSmall = g.screenW < minW || g.screenH < minH
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if in.Has(core.ActionRestart) {
		g.restart()
		return core.StepResult{State: g.State()}
	}

	if g.tooSmall {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) && !g.gameOver {
		g.paused = !g.paused
	}

	// Paused and finished games are frozen: the tick counter holds
	// still so the whole snapshot stays bit-identical.
	if g.paused || g.gameOver {
		return core.StepResult{State: g.State()}
	}

	g.tick++
	prevScore := g.score
	prevLines := g.lines

	// The hard-drop latch opens again on the first frame without the key.
	if !in.Has(core.ActionHardDrop) {
		g.hardDropHeld = false
	}

	if g.active == nil {
		g.spawn()
	}

	if in.Has(core.ActionRotateCW) {
		g.rotate(rotateCW)
	}
	if in.Has(core.ActionRotateCCW) {
		g.rotate(rotateCCW)
	}
	if in.Has(core.ActionLeft) {
		g.shift(-1)
	}
	if in.Has(core.ActionRight) {
		g.shift(1)
	}
	if in.Has(core.ActionSoftDrop) {
		g.descend()
		g.gravityTick = 0
	}
	if in.Has(core.ActionHardDrop) && !g.hardDropHeld {
		g.hardDropHeld = true
		g.hardDrop()
	}

	if g.active != nil {
		g.gravityTick++
		if g.gravityTick >= g.gravityFrames {
			g.gravityTick = 0
			g.descend()
		}
	}

	return core.StepResult{
		State:      g.State(),
		ScoreDelta: g.score - prevScore,
		LinesDelta: g.lines - prevLines,
	}
}

// spawn takes the next kind from the queue, tops the queue up, and places
// the piece at row 0, horizontally centered. A spawn that immediately
// overlaps the stack ends the game and leaves the field as it was.
func (g *Game) spawn() {
	kind := g.queue[0]
	g.queue = append(g.queue[1:], g.rand.Next())

	shape := SpawnShape(kind)
	p := &Piece{
		Kind:  kind,
		Cells: shape,
		X:     (g.field.Width() - shape.Cols()) / 2,
		Y:     0,
	}
	if g.field.Collides(p.Cells, p.X, p.Y) {
		g.gameOver = true
		return
	}
	g.active = p
}

// shift moves the active piece one column left or right, ignoring the
// move when the destination is blocked.
func (g *Game) shift(dx int) {
	if g.active == nil {
		return
	}
	if g.field.Collides(g.active.Cells, g.active.X+dx, g.active.Y) {
		return
	}
	g.active.X += dx
}

// rotate applies the given rotation when the rotated matrix fits at the
// current anchor. There are no wall kicks: a blocked rotation is dropped.
func (g *Game) rotate(fn func(Matrix) Matrix) {
	if g.active == nil {
		return
	}
	rotated := fn(g.active.Cells)
	if g.field.Collides(rotated, g.active.X, g.active.Y) {
		return
	}
	g.active.Cells = rotated
}

// descend advances the active piece one row. When the row below is
// blocked the piece locks instead. Gravity and soft drop both land here.
func (g *Game) descend() {
	if g.active == nil {
		return
	}
	if g.field.Collides(g.active.Cells, g.active.X, g.active.Y+1) {
		g.lock()
		return
	}
	g.active.Y++
}

// hardDrop sends the active piece straight to its landing row and locks
// it there in a single step.
func (g *Game) hardDrop() {
	if g.active == nil {
		return
	}
	dy := 0
	for !g.field.Collides(g.active.Cells, g.active.X, g.active.Y+dy+1) {
		dy++
	}
	g.active.Y += dy
	g.lock()
}

// lock stamps the active piece into the field, settles cleared rows,
// applies scoring, and spawns the next piece from the queue.
func (g *Game) lock() {
	p := g.active
	g.field.Stamp(p.Cells, p.X, p.Y, p.Kind)
	g.kindCounts[p.Kind]++
	g.active = nil

	cleared := g.field.ClearFullRows()
	if cleared > 0 {
		// Reward uses the level at the moment of lock; the level-up
		// only affects later clears.
		g.score += rewardTable[cleared] * g.level
		g.lines += cleared
		if lvl := g.lines/linesPerLevel + 1; lvl != g.level {
			g.level = lvl
			g.refreshGravity()
		}
	}

	g.gravityTick = 0
	g.spawn()
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		Lines:    g.lines,
		Level:    g.level,
		GameOver: g.gameOver,
		Paused:   g.paused || g.tooSmall,
	}
}
