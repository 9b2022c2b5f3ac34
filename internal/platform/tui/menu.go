package tui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/dino-gym/internal/core"
)

// MenuChoice identifies a main menu entry.
type MenuChoice int

const (
	ChoiceNone MenuChoice = iota
	ChoicePlay
	ChoiceWatch
	ChoiceScores
	ChoiceQuit
)

// MenuItem is a selectable menu entry.
type MenuItem struct {
	Choice MenuChoice
	Title  string
}

var menuItems = []MenuItem{
	{ChoicePlay, "Play Dino Runner"},
	{ChoiceWatch, "Watch the heuristic agent"},
	{ChoiceScores, "High scores"},
	{ChoiceQuit, "Quit"},
}

var (
	menuTitleStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	menuSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("2"))
	menuHelpStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// MenuModel is the Bubble Tea model for the main menu.
type MenuModel struct {
	cursor    int
	config    core.RuntimeConfig
	keyMapper *KeyMapper
	selected  MenuChoice
}

// NewMenuModel creates a new menu model.
func NewMenuModel(cfg core.RuntimeConfig) MenuModel {
	return MenuModel{
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
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
	}
	return m, nil
}

// handleKey processes keyboard input for menu navigation.
func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keyMapper.MapKeyToMenuAction(msg) {
	case MenuActionQuit, MenuActionBack:
		m.selected = ChoiceQuit
		return m, tea.Quit

	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}

	case MenuActionDown:
		if m.cursor < len(menuItems)-1 {
			m.cursor++
		}

	case MenuActionSelect:
		m.selected = menuItems[m.cursor].Choice
		return m, tea.Quit
	}
	return m, nil
}

// View renders the menu.
func (m MenuModel) View() string {
	if m.selected != ChoiceNone {
		return ""
	}

	w := m.config.ScreenW
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText(menuTitleStyle.Render("  D I N O   G Y M  "), w))
	b.WriteString("\n\n")

	for i, item := range menuItems {
		line := "  " + item.Title
		if i == m.cursor {
			line = menuSelectedStyle.Render("> " + item.Title)
		}
		b.WriteString(centerText(line, w))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centerText(menuHelpStyle.Render("Up/Down: Navigate  |  Enter: Select  |  Q: Quit"), w))
	b.WriteString("\n")
	return b.String()
}

// Selected returns the chosen entry, or ChoiceNone while the menu is open.
func (m MenuModel) Selected() MenuChoice {
	return m.selected
}

// Config returns the current runtime config (may have been updated by resize).
func (m MenuModel) Config() core.RuntimeConfig {
	return m.config
}

// RunMenu shows the menu in the current terminal and returns the choice
// together with the possibly resized runtime config.
func RunMenu(cfg core.RuntimeConfig) (MenuChoice, core.RuntimeConfig, error) {
	p := tea.NewProgram(NewMenuModel(cfg), tea.WithAltScreen())
	final, err := p.Run()
	if err != nil {
		return ChoiceQuit, cfg, err
	}

	m, ok := final.(MenuModel)
	if !ok || m.Selected() == ChoiceNone {
		return ChoiceQuit, cfg, nil
	}
	return m.Selected(), m.Config(), nil
}
