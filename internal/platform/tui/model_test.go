package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-blocks/internal/core"
)

// recordingGame remembers the input of every step.
type recordingGame struct {
	resets  []core.RuntimeConfig
	resizes [][2]int
	steps   []core.InputFrame
}

func (g *recordingGame) ID() string    { return "recording" }
func (g *recordingGame) Title() string { return "Recording" }

func (g *recordingGame) Reset(cfg core.RuntimeConfig) { g.resets = append(g.resets, cfg) }

func (g *recordingGame) Resize(w, h int) { g.resizes = append(g.resizes, [2]int{w, h}) }

func (g *recordingGame) Step(in core.InputFrame) core.StepResult {
	frame := core.NewInputFrame()
	for a := range in.Actions {
		frame.Set(a)
	}
	if p, ok := in.Click(); ok {
		frame.SetClick(p.X, p.Y)
	}
	g.steps = append(g.steps, frame)
	return core.StepResult{State: core.GameState{Remaining: len(g.steps)}}
}

func (g *recordingGame) Render(dst *core.Screen) { dst.DrawText(0, 0, "recording") }

func (g *recordingGame) State() core.GameState { return core.GameState{} }

func newTestModel(g *recordingGame) Model {
	return NewModel(g, core.RuntimeConfig{ScreenW: 60, ScreenH: 20, TickRate: 30, Seed: 7}, nil)
}

func TestModelKeysReachGame(t *testing.T) {
	g := &recordingGame{}
	var m tea.Model = newTestModel(g)

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("r")})
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m, _ = m.Update(TickMsg{})

	if len(g.steps) != 1 {
		t.Fatalf("steps = %d, want 1", len(g.steps))
	}
	if !g.steps[0].Has(core.ActionRestart) || !g.steps[0].Has(core.ActionConfirm) {
		t.Errorf("step input = %v, want restart and confirm", g.steps[0].Actions)
	}

	// Input is cleared after each tick.
	m.Update(TickMsg{})
	if !g.steps[1].Empty() {
		t.Errorf("second step input = %v, want empty", g.steps[1].Actions)
	}
}

func TestModelMouseClick(t *testing.T) {
	g := &recordingGame{}
	var m tea.Model = newTestModel(g)

	m, _ = m.Update(tea.MouseMsg{X: 9, Y: 4, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	m.Update(TickMsg{})

	p, ok := g.steps[0].Click()
	if !ok || p != (core.Point{X: 9, Y: 4}) {
		t.Errorf("click = %v, %v, want {9 4}, true", p, ok)
	}
}

func TestModelResizeKeepsGame(t *testing.T) {
	g := &recordingGame{}
	var m tea.Model = newTestModel(g)
	m.Init()

	m, _ = m.Update(tea.WindowSizeMsg{Width: 100, Height: 30})

	if len(g.resets) != 1 {
		t.Errorf("resets = %d, want 1 (only from Init)", len(g.resets))
	}
	if len(g.resizes) != 1 || g.resizes[0] != [2]int{100, 29} {
		t.Errorf("resizes = %v, want [[100 29]]", g.resizes)
	}
	if g.resets[0].ScreenH != 19 || g.resets[0].Seed != 7 {
		t.Errorf("reset config = %+v, want height 19 and seed 7", g.resets[0])
	}

	// Full help takes more rows from the game.
	m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("?")})
	last := g.resizes[len(g.resizes)-1]
	if last[1] >= 29 {
		t.Errorf("height with full help = %d, want less than 29", last[1])
	}
}

func TestModelQuit(t *testing.T) {
	g := &recordingGame{}
	var m tea.Model = newTestModel(g)

	if !strings.Contains(m.View(), "recording") {
		t.Errorf("View() missing game output")
	}

	m, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	if cmd == nil {
		t.Fatal("expected quit command")
	}
	if m.View() != "" {
		t.Errorf("View() after quit = %q, want empty", m.View())
	}
	if len(g.steps) != 0 {
		t.Errorf("quit key reached the game")
	}
}

func TestModelBackLeavesGame(t *testing.T) {
	for _, msg := range []tea.KeyMsg{
		{Type: tea.KeyEsc},
		{Type: tea.KeyRunes, Runes: []rune("b")},
	} {
		t.Run(msg.String(), func(t *testing.T) {
			g := &recordingGame{}
			var m tea.Model = newTestModel(g)

			m, cmd := m.Update(msg)
			if cmd == nil {
				t.Fatal("expected quit command")
			}
			if m.View() != "" {
				t.Errorf("View() after back = %q, want empty", m.View())
			}
			if len(g.steps) != 0 {
				t.Errorf("back key reached the game")
			}
		})
	}
}
