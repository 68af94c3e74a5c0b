package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-blocks/internal/core"
)

// RandomItemID is the menu item ID for a random board.
const RandomItemID = ""

// MenuItem represents a selectable board in the menu.
type MenuItem struct {
	ID    string // Level ID, RandomItemID for a random board
	Title string
	Size  string // e.g. "10x10"
}

// MenuKeyMap is the subset of key bindings shown in the menu footer.
type MenuKeyMap struct {
	keys KeyMap
}

// ShortHelp returns key bindings for the short help view.
func (k MenuKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.keys.Up, k.keys.Down, k.keys.Select, k.keys.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k MenuKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

// MenuModel is the Bubble Tea model for the board picker.
type MenuModel struct {
	items     []MenuItem
	table     table.Model
	help      help.Model
	theme     Theme
	width     int
	height    int
	config    core.RuntimeConfig
	keyMapper *KeyMapper
	quitting  bool
	selected  *MenuItem // Set when user picks a board
}

// NewMenuModel creates a new menu model. A random board entry is always
// listed first, followed by items.
func NewMenuModel(items []MenuItem, randomSize string, cfg core.RuntimeConfig) MenuModel {
	all := make([]MenuItem, 0, len(items)+1)
	all = append(all, MenuItem{ID: RandomItemID, Title: "Random grid", Size: randomSize})
	all = append(all, items...)

	h := help.New()
	h.Width = cfg.ScreenW

	m := MenuModel{
		items:     all,
		help:      h,
		theme:     DefaultTheme(),
		width:     cfg.ScreenW,
		height:    cfg.ScreenH,
		config:    cfg,
		keyMapper: NewKeyMapper(),
	}
	m.table = m.createTable()
	return m
}

// createTable builds the table of boards for the current size.
func (m *MenuModel) createTable() table.Model {
	columns := []table.Column{
		{Title: "Board", Width: 24},
		{Title: "ID", Width: 14},
		{Title: "Size", Width: 7},
	}

	rows := make([]table.Row, len(m.items))
	for i, item := range m.items {
		id := item.ID
		if id == RandomItemID {
			id = "-"
		}
		rows[i] = table.Row{item.Title, id, item.Size}
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithFocused(true),
		table.WithHeight(max(m.height-8, 3)), // Leave room for title, help, and margins
	)

	s := table.DefaultStyles()
	s.Header = s.Header.Inherit(m.theme.TableHeader)
	s.Selected = s.Selected.Inherit(m.theme.TableSelected)
	t.SetStyles(s)

	return t
}

// Init initializes the menu model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch m.keyMapper.MapKeyToMenuAction(msg) {
		case MenuActionQuit, MenuActionBack:
			m.quitting = true
			return m, tea.Quit

		case MenuActionSelect:
			if len(m.items) > 0 {
				selected := m.items[m.table.Cursor()]
				m.selected = &selected
				return m, tea.Quit // Exit menu to start game
			}
			return m, nil

		case MenuActionUp:
			m.table.MoveUp(1)
			return m, nil

		case MenuActionDown:
			m.table.MoveDown(1)
			return m, nil
		}

	case tea.WindowSizeMsg:
		cursor := m.table.Cursor()
		m.width = msg.Width
		m.height = msg.Height
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.help.Width = msg.Width
		m.table = m.createTable()
		m.table.SetCursor(cursor)
		return m, nil
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the menu.
func (m MenuModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(m.theme.MenuTitle.Render(centerText("B L O C K S", m.width)))
	b.WriteString("\n")
	b.WriteString(m.theme.MenuDescription.Render(centerText("Pick a board", m.width)))
	b.WriteString("\n\n")

	tableStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)
	b.WriteString(lipgloss.PlaceHorizontal(m.width, lipgloss.Center, tableStyle.Render(m.table.View())))
	b.WriteString("\n\n")

	b.WriteString(m.theme.Help.Render(m.help.View(MenuKeyMap{keys: m.keyMapper.Keys})))

	return b.String()
}

// Selected returns the selected menu item, or nil if none selected.
func (m MenuModel) Selected() *MenuItem {
	return m.selected
}

// IsQuitting returns true if user requested to quit.
func (m MenuModel) IsQuitting() bool {
	return m.quitting
}

// Config returns the current runtime config (may have been updated by resize).
func (m MenuModel) Config() core.RuntimeConfig {
	return m.config
}

// centerText centers text within given width.
func centerText(text string, width int) string {
	n := lipgloss.Width(text)
	if n >= width {
		return text
	}
	return strings.Repeat(" ", (width-n)/2) + text
}

// MenuResult holds the result of running the menu.
type MenuResult struct {
	LevelID string // RandomItemID for a random board
	Config  core.RuntimeConfig
	Quit    bool
}

// RunMenu runs the board picker and returns the selection result.
func RunMenu(items []MenuItem, randomSize string, cfg core.RuntimeConfig) (MenuResult, error) {
	model := NewMenuModel(items, randomSize, cfg)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return MenuResult{Config: cfg}, err
	}

	m, ok := finalModel.(MenuModel)
	if !ok {
		return MenuResult{Config: cfg, Quit: true}, nil
	}

	result := MenuResult{Config: m.Config()}
	if m.IsQuitting() || m.Selected() == nil {
		result.Quit = true
		return result, nil
	}

	result.LevelID = m.Selected().ID
	return result, nil
}
