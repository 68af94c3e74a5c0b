package blocks

import (
	"strconv"
	"unicode/utf8"

	platformcore "github.com/vovakirdan/tui-blocks/internal/core"
	"github.com/vovakirdan/tui-blocks/internal/games/blocks/core"
)

const hudHeight = 3

// layout places the board on the screen. Each block takes cellW columns
// followed by one gap column; the cursor brackets sit in the gaps.
type layout struct {
	originX int // Screen column of the gap left of column 0
	originY int // Screen row of the top grid row
	cellW   int
	stride  int
}

// calculateLayout centres the board below the HUD.
func (g *Game) calculateLayout() {
	if g.grid == nil {
		return
	}

	cellW := max(g.cfg.Render.CellWidth, 1)
	stride := cellW + 1
	hud := g.hudRows()

	boardW := g.grid.Width()*stride + 1
	boxW := boardW + 2
	boxH := g.grid.Height() + 2

	if g.screenW < boxW || g.screenH < hud+boxH {
		g.tooSmall = true
		return
	}
	g.tooSmall = false

	boxX := (g.screenW - boxW) / 2
	boxY := hud + (g.screenH-hud-boxH)/2
	g.layout = layout{
		originX: boxX + 1,
		originY: boxY + 1,
		cellW:   cellW,
		stride:  stride,
	}
}

func (g *Game) hudRows() int {
	if g.cfg.Render.ShowHUD {
		return hudHeight
	}
	return 0
}

// screenToGrid maps a screen position to the block drawn there.
// Gaps, the border and anything outside the board are misses.
func (g *Game) screenToGrid(sx, sy int) (x, y int, ok bool) {
	if g.grid == nil || g.tooSmall {
		return 0, 0, false
	}
	l := g.layout

	rel := sx - l.originX - 1
	if rel < 0 || rel%l.stride >= l.cellW {
		return 0, 0, false
	}
	x = rel / l.stride

	row := sy - l.originY
	if x >= g.grid.Width() || row < 0 || row >= g.grid.Height() {
		return 0, 0, false
	}
	return x, g.grid.Height() - 1 - row, true
}

// gridToScreen returns the screen position of the first column of block (x, y).
// Row y = 0 is drawn at the bottom of the board.
func (g *Game) gridToScreen(x, y int) (sx, sy int) {
	l := g.layout
	return l.originX + 1 + x*l.stride, l.originY + g.grid.Height() - 1 - y
}

// Render draws the game to the screen.
func (g *Game) Render(dst *platformcore.Screen) {
	dst.Clear()

	if g.cfg.Render.ShowHUD {
		g.renderHUD(dst)
	}

	switch {
	case g.loadErr != nil:
		g.renderOverlay(dst, "No board", g.loadErr.Error())
		return
	case g.grid == nil:
		return
	case g.tooSmall:
		g.renderOverlay(dst, "Window too small", "Resize to continue")
		return
	}

	g.renderBoard(dst)

	switch {
	case g.paused:
		g.renderOverlay(dst, "Paused", "Press P to continue")
	case g.grid.IsEmpty():
		g.renderOverlay(dst, "Board cleared!", "Press R for a new board")
	}
}

// renderHUD draws the status lines above the board.
func (g *Game) renderHUD(dst *platformcore.Screen) {
	title := " Blocks"
	switch {
	case g.level != nil:
		title += " | " + g.level.Name
	case g.grid != nil:
		title += " | Random " + strconv.Itoa(g.grid.Width()) + "x" + strconv.Itoa(g.grid.Height())
	}
	dst.DrawTextColored(0, 0, title, platformcore.ColorHighlight)

	state := g.State()
	status := " Remaining: " + strconv.Itoa(state.Remaining) +
		" | Last: " + strconv.Itoa(state.LastRemoved) +
		" | Selections: " + strconv.Itoa(g.selections)
	dst.DrawText(0, 1, status)

	for x := range dst.Width() {
		dst.SetColored(x, 2, '─', platformcore.ColorGray)
	}
}

// renderBoard draws the border, the blocks and the cursor.
func (g *Game) renderBoard(dst *platformcore.Screen) {
	l := g.layout
	w, h := g.grid.Width(), g.grid.Height()

	dst.DrawBox(platformcore.NewRect(l.originX-1, l.originY-1, w*l.stride+3, h+2), platformcore.ColorGray)

	for x := range w {
		for y := range h {
			sx, sy := g.gridToScreen(x, y)
			cell := g.grid.At(x, y)
			for i := range l.cellW {
				if cell == nil {
					dst.SetColored(sx+i, sy, '·', platformcore.ColorGray)
				} else {
					dst.SetColored(sx+i, sy, '█', screenColor(cell.Colour))
				}
			}
		}
	}

	if !g.paused {
		sx, sy := g.gridToScreen(g.cursorX, g.cursorY)
		dst.SetColored(sx-1, sy, '[', platformcore.ColorHighlight)
		dst.SetColored(sx+l.cellW, sy, ']', platformcore.ColorHighlight)
	}
}

// renderOverlay draws a two-line message box in the middle of the screen.
func (g *Game) renderOverlay(dst *platformcore.Screen, line1, line2 string) {
	boxW := max(utf8.RuneCountInString(line1), utf8.RuneCountInString(line2)) + 4
	boxH := 5
	box := platformcore.NewRect((dst.Width()-boxW)/2, (dst.Height()-boxH)/2, boxW, boxH)

	for y := box.Y + 1; y < box.Bottom()-1; y++ {
		for x := box.X + 1; x < box.Right()-1; x++ {
			dst.Set(x, y, ' ')
		}
	}
	dst.DrawBox(box, platformcore.ColorWhite)
	dst.DrawTextCentered(box.Y+1, line1)
	dst.DrawTextColored((dst.Width()-utf8.RuneCountInString(line2))/2, box.Y+3, line2, platformcore.ColorGray)
}

// screenColor maps a block colour to a platform color.
func screenColor(c core.Colour) platformcore.Color {
	switch c {
	case core.Red:
		return platformcore.ColorRed
	case core.Green:
		return platformcore.ColorGreen
	case core.Blue:
		return platformcore.ColorBlue
	case core.Yellow:
		return platformcore.ColorYellow
	case core.Purple:
		return platformcore.ColorPurple
	case core.Orange:
		return platformcore.ColorOrange
	default:
		return platformcore.ColorWhite
	}
}

// Resize fits the board to a new screen size without changing it.
func (g *Game) Resize(width, height int) {
	g.screenW = width
	g.screenH = height
	g.calculateLayout()
}
