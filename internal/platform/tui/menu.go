package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/dandaka/internal/config"
	"github.com/vovakirdan/dandaka/internal/core"
)

// MenuChoice is what the user picked in the main menu.
type MenuChoice int

const (
	ChoiceNone MenuChoice = iota
	ChoicePlay
	ChoiceScores
	ChoiceQuit
)

// menuItem is one line of the main menu.
type menuItem struct {
	label  string
	choice MenuChoice
}

var menuItems = []menuItem{
	{"Play", ChoicePlay},
	{"Difficulty", ChoiceNone},
	{"High Scores", ChoiceScores},
	{"Quit", ChoiceQuit},
}

// difficultyRow is the index of the difficulty selector in menuItems.
const difficultyRow = 1

// menuPresets is the cycle order of the difficulty selector.
var menuPresets = []config.DifficultyPreset{
	config.DifficultyEasy,
	config.DifficultyNormal,
	config.DifficultyHard,
	config.DifficultyFixed,
}

// MenuModel is the Bubble Tea model for the main menu.
type MenuModel struct {
	title     string
	best      int // Best score so far, 0 if none
	cursor    int
	preset    int // Index into menuPresets
	width     int
	height    int
	config    core.RuntimeConfig
	keyMapper *KeyMapper
	choice    MenuChoice
}

// NewMenuModel creates a new menu model. preset is the initially selected
// difficulty; unknown names select normal.
func NewMenuModel(title string, best int, preset string, cfg core.RuntimeConfig) MenuModel {
	m := MenuModel{
		title:     title,
		best:      best,
		preset:    1,
		width:     cfg.ScreenW,
		height:    cfg.ScreenH,
		config:    cfg,
		keyMapper: NewKeyMapper(),
	}
	for i, p := range menuPresets {
		if string(p) == preset {
			m.preset = i
		}
	}
	return m
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
	case MenuActionQuit:
		m.choice = ChoiceQuit
		return m, tea.Quit

	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}

	case MenuActionDown:
		if m.cursor < len(menuItems)-1 {
			m.cursor++
		}

	case MenuActionLeft:
		if m.cursor == difficultyRow {
			m.preset = (m.preset + len(menuPresets) - 1) % len(menuPresets)
		}

	case MenuActionRight:
		if m.cursor == difficultyRow {
			m.preset = (m.preset + 1) % len(menuPresets)
		}

	case MenuActionSelect:
		if m.cursor == difficultyRow {
			m.preset = (m.preset + 1) % len(menuPresets)
			return m, nil
		}
		m.choice = menuItems[m.cursor].choice
		return m, tea.Quit

	case MenuActionScoreboard:
		m.choice = ChoiceScores
		return m, tea.Quit
	}

	return m, nil
}

// View renders the menu.
func (m MenuModel) View() string {
	if m.choice == ChoiceQuit {
		return ""
	}

	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("11"))
	selStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("229")).Background(lipgloss.Color("57"))
	dimStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

	var b strings.Builder
	b.WriteString(strings.Repeat("\n", max(1, m.height/4)))
	b.WriteString(centerText(titleStyle.Render(strings.Join(strings.Split(strings.ToUpper(m.title), ""), " ")), m.width))
	b.WriteString("\n\n")
	if m.best > 0 {
		b.WriteString(centerText(dimStyle.Render(fmt.Sprintf("Best score %d", m.best)), m.width))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	for i, item := range menuItems {
		label := item.label
		if i == difficultyRow {
			label = fmt.Sprintf("Difficulty  < %s >", m.Preset())
		}
		line := "  " + label + "  "
		if i == m.cursor {
			line = selStyle.Render("> " + label + "  ")
		}
		b.WriteString(centerText(line, m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	controls := "Up/Down: Navigate  |  Left/Right: Difficulty  |  Enter: Select  |  Tab: Scores  |  Q: Quit"
	b.WriteString(centerText(dimStyle.Render(controls), m.width))
	b.WriteString("\n")

	return b.String()
}

// Preset returns the selected difficulty preset.
func (m MenuModel) Preset() config.DifficultyPreset {
	return menuPresets[m.preset]
}

// Choice returns what the user picked.
func (m MenuModel) Choice() MenuChoice {
	return m.choice
}

// Config returns the current runtime config (may have been updated by resize).
func (m MenuModel) Config() core.RuntimeConfig {
	return m.config
}

// MenuResult holds the result of running the menu.
type MenuResult struct {
	Choice MenuChoice
	Preset config.DifficultyPreset
	Config core.RuntimeConfig
}

// RunMenu runs the main menu and returns the selection result.
func RunMenu(title string, best int, preset string, cfg core.RuntimeConfig) (MenuResult, error) {
	model := NewMenuModel(title, best, preset, cfg)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return MenuResult{Choice: ChoiceQuit, Config: cfg}, err
	}

	m, ok := finalModel.(MenuModel)
	if !ok || m.Choice() == ChoiceNone {
		return MenuResult{Choice: ChoiceQuit, Config: cfg}, nil
	}

	return MenuResult{
		Choice: m.Choice(),
		Preset: m.Preset(),
		Config: m.Config(),
	}, nil
}
