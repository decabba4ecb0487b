package blockfall

// GameStateType represents the current game state.
type GameStateType string

const (
	StateIdle        GameStateType = "idle"
	StatePlaying     GameStateType = "playing"
	StatePaused      GameStateType = "paused"
	StateGameOver    GameStateType = "game_over"
	StatePausedSmall GameStateType = "paused_small_window"
)

// Snapshot captures the complete game state for determinism testing and replay.
type Snapshot struct {
	Tick        uint64
	Field       [][]Cell
	HasActive   bool
	ActiveKind  Kind
	ActiveCells Matrix
	ActiveX     int
	ActiveY     int
	Queue       []Kind
	Score       int
	Lines       int
	Level       int
	KindCounts  [KindCount]int
	State       GameStateType
}

// Snapshot returns the current game snapshot for determinism verification.
func (g *Game) Snapshot() Snapshot {
	state := StatePlaying
	switch {
	case g.tooSmall:
		state = StatePausedSmall
	case g.gameOver:
		state = StateGameOver
	case g.paused:
		state = StatePaused
	case g.active == nil && g.tick == 0:
		state = StateIdle
	}

	snap := Snapshot{
		Tick:       g.tick,
		Field:      g.field.Rows(),
		Queue:      append([]Kind(nil), g.queue...),
		Score:      g.score,
		Lines:      g.lines,
		Level:      g.level,
		KindCounts: g.kindCounts,
		State:      state,
	}
	if g.active != nil {
		snap.HasActive = true
		snap.ActiveKind = g.active.Kind
		snap.ActiveCells = g.active.Cells.Clone()
		snap.ActiveX = g.active.X
		snap.ActiveY = g.active.Y
	}
	return snap
}
