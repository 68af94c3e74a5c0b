package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-blocks/internal/core"
)

func testMenu() MenuModel {
	items := []MenuItem{
		{ID: "01_corner", Title: "Corner snake", Size: "3x3"},
		{ID: "02_cascade", Title: "Cascade", Size: "3x3"},
	}
	return NewMenuModel(items, "10x10", core.RuntimeConfig{ScreenW: 80, ScreenH: 24})
}

func update(m MenuModel, msg tea.Msg) MenuModel {
	next, _ := m.Update(msg)
	return next.(MenuModel)
}

func TestMenuRandomFirst(t *testing.T) {
	m := testMenu()
	m = update(m, tea.KeyMsg{Type: tea.KeyEnter})

	sel := m.Selected()
	if sel == nil || sel.ID != RandomItemID {
		t.Fatalf("Selected() = %+v, want the random board", sel)
	}
}

func TestMenuNavigation(t *testing.T) {
	m := testMenu()
	m = update(m, tea.KeyMsg{Type: tea.KeyDown})
	m = update(m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("j")})
	m = update(m, tea.KeyMsg{Type: tea.KeyDown}) // Past the end stays on the last item
	m = update(m, tea.KeyMsg{Type: tea.KeyEnter})

	if sel := m.Selected(); sel == nil || sel.ID != "02_cascade" {
		t.Errorf("Selected() = %+v, want 02_cascade", sel)
	}

	m = testMenu()
	m = update(m, tea.KeyMsg{Type: tea.KeyDown})
	m = update(m, tea.KeyMsg{Type: tea.KeyUp})
	m = update(m, tea.KeyMsg{Type: tea.KeyDown})
	m = update(m, tea.KeyMsg{Type: tea.KeyEnter})
	if sel := m.Selected(); sel == nil || sel.ID != "01_corner" {
		t.Errorf("Selected() = %+v, want 01_corner", sel)
	}
}

func TestMenuQuit(t *testing.T) {
	m := update(testMenu(), tea.KeyMsg{Type: tea.KeyEsc})
	if !m.IsQuitting() || m.Selected() != nil {
		t.Errorf("esc: quitting = %v, selected = %+v", m.IsQuitting(), m.Selected())
	}
	if m.View() != "" {
		t.Error("View() after quit should be empty")
	}
}

func TestMenuView(t *testing.T) {
	m := testMenu()
	view := m.View()
	for _, want := range []string{"B L O C K S", "Random grid", "Corner snake", "02_cascade", "10x10"} {
		if !strings.Contains(view, want) {
			t.Errorf("View() missing %q", want)
		}
	}

	m = update(m, tea.WindowSizeMsg{Width: 100, Height: 40})
	if cfg := m.Config(); cfg.ScreenW != 100 || cfg.ScreenH != 40 {
		t.Errorf("Config() = %+v, want 100x40", cfg)
	}
}
