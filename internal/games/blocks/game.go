// Package blocks provides the Blocks tile-matching puzzle for the terminal
// platform. Selecting a block removes its same-coloured group when the group
// has at least two blocks, then the remaining blocks fall toward the bottom.
package blocks

import (
	"io"
	"math/rand"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-blocks/internal/config"
	platformcore "github.com/vovakirdan/tui-blocks/internal/core"
	"github.com/vovakirdan/tui-blocks/internal/games/blocks/core"
	"github.com/vovakirdan/tui-blocks/internal/games/blocks/levels"
	"github.com/vovakirdan/tui-blocks/internal/registry"
)

// Options select where a new game gets its board and settings from.
type Options struct {
	ConfigPath string      // Custom config file, empty for the search path
	LevelID    string      // Level to play, empty for a random board
	LevelsDir  string      // Directory of level files, empty for the built-in set
	Logger     *log.Logger // Receives selection and setup events
}

// Package-level options used by the registry factory.
var defaultOptions Options

// SetConfigPath sets the config file used by games created afterwards.
func SetConfigPath(path string) {
	defaultOptions.ConfigPath = path
}

// SetLevel selects the level played by games created afterwards.
// An empty id means a random board.
func SetLevel(id string) {
	defaultOptions.LevelID = id
}

// SetLevelsDir sets the directory levels are loaded from.
func SetLevelsDir(dir string) {
	defaultOptions.LevelsDir = dir
}

// SetLogger sets the logger used by games created afterwards.
func SetLogger(l *log.Logger) {
	defaultOptions.Logger = l
}

func init() {
	registry.Register("blocks", func() registry.Game {
		return NewWithOptions(defaultOptions)
	})
}

// Game implements the Blocks puzzle.
type Game struct {
	opts   Options
	logger *log.Logger
	rng    *rand.Rand

	cfg     config.BlocksConfig
	palette core.Palette
	level   *levels.Level
	grid    *core.Grid

	// Screen dimensions
	screenW int
	screenH int

	// Cursor position in grid coordinates
	cursorX int
	cursorY int

	// Status
	tick        uint64
	selections  int
	lastRemoved int
	lastMoved   int
	paused      bool
	tooSmall    bool
	loadErr     error

	layout layout
}

// New creates a game with the package-level options.
func New() *Game {
	return NewWithOptions(defaultOptions)
}

// NewWithOptions creates a game with explicit options.
func NewWithOptions(opts Options) *Game {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Game{
		opts:   opts,
		logger: logger,
	}
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return "blocks"
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Blocks"
}

// Reset loads settings and builds a new board.
func (g *Game) Reset(cfg platformcore.RuntimeConfig) {
	g.rng = rand.New(rand.NewSource(cfg.Seed))
	g.screenW = cfg.ScreenW
	g.screenH = cfg.ScreenH
	g.tick = 0
	g.paused = false
	g.loadErr = nil

	g.loadConfig()

	if g.opts.LevelID != "" && g.level == nil {
		g.loadLevel()
	}

	g.newBoard()
}

// loadConfig reads the config, falling back to defaults when it is unusable.
func (g *Game) loadConfig() {
	cfg, err := config.LoadBlocks(g.opts.ConfigPath)
	if err != nil {
		g.logger.Warn("using default config", "path", g.opts.ConfigPath, "err", err)
		cfg = config.DefaultBlocksConfig()
	}
	g.cfg = cfg

	palette, err := core.ParsePalette(cfg.Palette)
	if err != nil {
		g.logger.Warn("using default palette", "palette", cfg.Palette, "err", err)
		palette = core.DefaultPalette
	}
	g.palette = palette
}

// loadLevel finds the selected level by ID.
func (g *Game) loadLevel() {
	loader := levels.Default()
	if g.opts.LevelsDir != "" {
		loader = levels.NewDirLoader(g.opts.LevelsDir)
	}

	lvl, err := loader.LoadByID(g.opts.LevelID)
	if err != nil {
		g.logger.Error("failed to load level", "id", g.opts.LevelID, "err", err)
		g.loadErr = err
		return
	}
	g.level = &lvl
	g.logger.Info("loaded level", "id", lvl.ID, "width", lvl.Width, "height", lvl.Height)
}

// newBoard builds a fresh grid from the level or from the config.
func (g *Game) newBoard() {
	g.grid = nil
	g.selections = 0
	g.lastRemoved = 0
	g.lastMoved = 0

	if g.loadErr != nil {
		return
	}

	var (
		grid *core.Grid
		err  error
	)
	if g.level != nil {
		grid, err = g.level.ToGrid()
	} else {
		grid, err = core.New(g.cfg.Grid.Width, g.cfg.Grid.Height, g.palette, g.rng)
	}
	if err != nil {
		g.logger.Error("failed to build board", "err", err)
		g.loadErr = err
		return
	}

	g.grid = grid
	g.cursorX = 0
	g.cursorY = grid.Height() - 1
	g.calculateLayout()

	g.logger.Debug("new board", "width", grid.Width(), "height", grid.Height(), "blocks", grid.Remaining())
}

// Grid returns the current board, or nil if none could be built.
func (g *Game) Grid() *core.Grid {
	return g.grid
}

// Step advances the game by one tick.
func (g *Game) Step(input platformcore.InputFrame) platformcore.StepResult {
	g.tick++

	if input.Has(platformcore.ActionRestart) {
		g.newBoard()
		return platformcore.StepResult{State: g.State()}
	}

	if input.Has(platformcore.ActionPause) {
		g.paused = !g.paused
	}

	if g.paused || g.tooSmall || g.grid == nil {
		return platformcore.StepResult{State: g.State()}
	}

	if input.Has(platformcore.ActionUp) {
		g.cursorY++
	}
	if input.Has(platformcore.ActionDown) {
		g.cursorY--
	}
	if input.Has(platformcore.ActionLeft) {
		g.cursorX--
	}
	if input.Has(platformcore.ActionRight) {
		g.cursorX++
	}
	g.cursorX = platformcore.Clamp(g.cursorX, 0, g.grid.Width()-1)
	g.cursorY = platformcore.Clamp(g.cursorY, 0, g.grid.Height()-1)

	if input.Has(platformcore.ActionConfirm) {
		g.selectAt(g.cursorX, g.cursorY)
	}

	if p, ok := input.Click(); ok {
		if x, y, hit := g.screenToGrid(p.X, p.Y); hit {
			g.cursorX, g.cursorY = x, y
			g.selectAt(x, y)
		}
	}

	return platformcore.StepResult{State: g.State()}
}

// Select selects the block at grid position (x, y) and returns the blocks
// removed. An empty position or a lone block removes nothing.
func (g *Game) Select(x, y int) []*core.Cell {
	if g.grid == nil {
		return nil
	}
	return g.selectAt(x, y)
}

func (g *Game) selectAt(x, y int) []*core.Cell {
	cell := g.grid.At(x, y)
	if cell == nil {
		return nil
	}

	g.lastRemoved = 0
	g.lastMoved = 0
	removed := g.grid.HandleSelection(cell, g)
	g.selections++

	if len(removed) == 0 {
		g.logger.Debug("lone block", "x", x, "y", y, "colour", cell.Colour)
		return nil
	}

	g.logger.Info("removed group",
		"x", x, "y", y,
		"colour", cell.Colour,
		"removed", g.lastRemoved,
		"moved", g.lastMoved,
		"remaining", g.grid.Remaining(),
	)
	if g.grid.IsEmpty() {
		g.logger.Info("board cleared", "selections", g.selections)
	}
	return removed
}

// CellRemoved records a removed block.
func (g *Game) CellRemoved(x, y int) {
	g.lastRemoved++
	g.logger.Debug("block removed", "x", x, "y", y)
}

// CellRelocated records a block that fell to a lower row.
func (g *Game) CellRelocated(x, fromY, toY int) {
	g.lastMoved++
	g.logger.Debug("block moved", "x", x, "from", fromY, "to", toY)
}

// State returns the current game status.
func (g *Game) State() platformcore.GameState {
	remaining := 0
	if g.grid != nil {
		remaining = g.grid.Remaining()
	}
	return platformcore.GameState{
		Remaining:   remaining,
		LastRemoved: g.lastRemoved,
		Paused:      g.paused,
	}
}

// Cursor returns the cursor position in grid coordinates.
func (g *Game) Cursor() (x, y int) {
	return g.cursorX, g.cursorY
}
