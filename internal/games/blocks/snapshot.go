package blocks

// GameStateType represents the current game state.
type GameStateType string

const (
	StatePlaying     GameStateType = "playing"
	StateCleared     GameStateType = "cleared"
	StatePaused      GameStateType = "paused"
	StatePausedSmall GameStateType = "paused_small_window"
	StateNoBoard     GameStateType = "no_board"
)

// Snapshot captures the game state for determinism testing and the
// headless show command.
type Snapshot struct {
	Tick        uint64
	Rows        []string // Board rows, top row first
	CursorX     int
	CursorY     int
	Remaining   int
	LastRemoved int
	LastMoved   int
	Selections  int
	State       GameStateType
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	state := StatePlaying
	switch {
	case g.grid == nil:
		state = StateNoBoard
	case g.tooSmall:
		state = StatePausedSmall
	case g.paused:
		state = StatePaused
	case g.grid.IsEmpty():
		state = StateCleared
	}

	snap := Snapshot{
		Tick:        g.tick,
		CursorX:     g.cursorX,
		CursorY:     g.cursorY,
		LastRemoved: g.lastRemoved,
		LastMoved:   g.lastMoved,
		Selections:  g.selections,
		State:       state,
	}
	if g.grid != nil {
		snap.Rows = g.grid.Rows()
		snap.Remaining = g.grid.Remaining()
	}
	return snap
}
