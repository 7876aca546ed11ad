package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-invaders/internal/config"
	"github.com/vovakirdan/tui-invaders/internal/core"
	"github.com/vovakirdan/tui-invaders/internal/registry"
	"github.com/vovakirdan/tui-invaders/internal/storage"
)

// MenuItemKind tells what selecting a menu item does.
type MenuItemKind int

const (
	MenuItemPlay MenuItemKind = iota
	MenuItemScoreboard
	MenuItemQuit
)

// MenuItem is one selectable line of the menu.
type MenuItem struct {
	Kind       MenuItemKind
	Label      string
	Difficulty config.DifficultyPreset // Set for MenuItemPlay
	Best       int                     // Persisted high score for the difficulty
}

var (
	menuTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10"))
	menuCurStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	menuDimStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// MenuModel is the Bubble Tea model for the start menu.
type MenuModel struct {
	gameID    string
	title     string
	items     []MenuItem
	cursor    int
	width     int
	height    int
	config    core.RuntimeConfig
	keyMapper *KeyMapper
	quitting  bool
	selected  *MenuItem
}

// NewMenuModel creates the menu for gameID. A nil store hides high scores.
func NewMenuModel(gameID string, store *storage.Store, cfg core.RuntimeConfig) MenuModel {
	title := gameID
	for _, info := range registry.List() {
		if info.ID == gameID {
			title = info.Title
		}
	}

	presets := config.Presets()
	items := make([]MenuItem, 0, len(presets)+2)
	for _, p := range presets {
		item := MenuItem{
			Kind:       MenuItemPlay,
			Label:      "Play " + strings.ToUpper(string(p[:1])) + string(p[1:]),
			Difficulty: p,
		}
		if store != nil {
			if best, err := store.HighScore(gameID, string(p)); err == nil {
				item.Best = best
			}
		}
		items = append(items, item)
	}
	items = append(items,
		MenuItem{Kind: MenuItemScoreboard, Label: "High Scores"},
		MenuItem{Kind: MenuItemQuit, Label: "Quit"},
	)

	// Start on the difficulty the player asked for
	cursor := 0
	if p, err := config.ParsePreset(cfg.Difficulty); err == nil {
		for i, item := range items {
			if item.Kind == MenuItemPlay && item.Difficulty == p {
				cursor = i
			}
		}
	}

	return MenuModel{
		gameID:    gameID,
		title:     title,
		items:     items,
		cursor:    cursor,
		width:     cfg.ScreenW,
		height:    cfg.ScreenH,
		config:    cfg,
		keyMapper: NewKeyMapper(),
	}
}

// Init initializes the menu model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input for menu navigation.
func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keyMapper.MapKeyToMenuAction(msg) {
	case MenuActionQuit, MenuActionBack:
		m.quitting = true
		return m, tea.Quit

	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}

	case MenuActionDown:
		if m.cursor < len(m.items)-1 {
			m.cursor++
		}

	case MenuActionScoreboard:
		m.selected = &MenuItem{Kind: MenuItemScoreboard}
		return m, tea.Quit

	case MenuActionSelect:
		selected := m.items[m.cursor]
		if selected.Kind == MenuItemQuit {
			m.quitting = true
		}
		m.selected = &selected
		return m, tea.Quit
	}

	return m, nil
}

// View renders the menu.
func (m MenuModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText(menuTitleStyle.Render(spaced(m.title)), m.width))
	b.WriteString("\n\n")

	for i, item := range m.items {
		line := "  " + item.Label
		if item.Kind == MenuItemPlay && item.Best > 0 {
			line = fmt.Sprintf("%-16s best %d", line, item.Best)
		}
		if i == m.cursor {
			line = menuCurStyle.Render("> " + strings.TrimPrefix(line, "  "))
		}
		b.WriteString(centerText(line, m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	if item := m.items[m.cursor]; item.Kind == MenuItemPlay {
		b.WriteString(centerText(menuDimStyle.Render(item.Difficulty.Description()), m.width))
	}
	b.WriteString("\n\n")
	controls := "Up/Down: Navigate  |  Enter: Select  |  Tab: Scores  |  Q: Quit"
	b.WriteString(centerText(menuDimStyle.Render(controls), m.width))
	b.WriteString("\n")

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

// spaced puts a space between the letters of a title.
func spaced(s string) string {
	return strings.Join(strings.Split(strings.ToUpper(s), ""), " ")
}

// centerText centers text within the given width, ignoring ANSI styling.
func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	return strings.Repeat(" ", (width-w)/2) + text
}

// MenuResult holds the result of running the menu.
type MenuResult struct {
	Config          core.RuntimeConfig // Difficulty is set when a round was chosen
	Play            bool
	WantsScoreboard bool
	Quit            bool
}

// result converts the final menu state into a MenuResult.
func (m MenuModel) result() MenuResult {
	res := MenuResult{Config: m.Config()}
	switch {
	case m.quitting || m.selected == nil:
		res.Quit = true
	case m.selected.Kind == MenuItemScoreboard:
		res.WantsScoreboard = true
	case m.selected.Kind == MenuItemPlay:
		res.Play = true
		res.Config.Difficulty = string(m.selected.Difficulty)
	default:
		res.Quit = true
	}
	return res
}

// RunMenu runs the menu and returns the selection result.
func RunMenu(gameID string, store *storage.Store, cfg core.RuntimeConfig) (MenuResult, error) {
	p := tea.NewProgram(
		NewMenuModel(gameID, store, cfg),
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
	return m.result(), nil
}
