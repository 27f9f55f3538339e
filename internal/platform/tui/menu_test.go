package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/dandaka/internal/config"
	"github.com/vovakirdan/dandaka/internal/core"
)

func pressMenu(m MenuModel, msgs ...tea.KeyMsg) MenuModel {
	for _, msg := range msgs {
		next, _ := m.Update(msg)
		m = next.(MenuModel)
	}
	return m
}

func TestMenuInitialPreset(t *testing.T) {
	tests := []struct {
		preset   string
		expected config.DifficultyPreset
	}{
		{"easy", config.DifficultyEasy},
		{"hard", config.DifficultyHard},
		{"", config.DifficultyNormal},
		{"bogus", config.DifficultyNormal},
	}

	for _, tt := range tests {
		m := NewMenuModel("Dandaka", 0, tt.preset, core.DefaultConfig())
		if got := m.Preset(); got != tt.expected {
			t.Errorf("NewMenuModel(%q).Preset() = %q, expected %q", tt.preset, got, tt.expected)
		}
	}
}

func TestMenuSelectPlay(t *testing.T) {
	m := NewMenuModel("Dandaka", 0, "", core.DefaultConfig())
	m = pressMenu(m, tea.KeyMsg{Type: tea.KeyEnter})

	if m.Choice() != ChoicePlay {
		t.Errorf("Choice() = %v, expected ChoicePlay", m.Choice())
	}
}

func TestMenuCyclesDifficulty(t *testing.T) {
	m := NewMenuModel("Dandaka", 0, "normal", core.DefaultConfig())

	down := tea.KeyMsg{Type: tea.KeyDown}
	right := tea.KeyMsg{Type: tea.KeyRight}
	left := tea.KeyMsg{Type: tea.KeyLeft}

	// Left/right only act on the difficulty row
	m = pressMenu(m, right)
	if m.Preset() != config.DifficultyNormal {
		t.Errorf("Right on the Play row changed preset to %q", m.Preset())
	}

	m = pressMenu(m, down, right)
	if m.Preset() != config.DifficultyHard {
		t.Errorf("Preset after right = %q, expected hard", m.Preset())
	}

	m = pressMenu(m, right, right)
	if m.Preset() != config.DifficultyEasy {
		t.Errorf("Preset should wrap to easy, got %q", m.Preset())
	}

	m = pressMenu(m, left)
	if m.Preset() != config.DifficultyFixed {
		t.Errorf("Preset should wrap back to fixed, got %q", m.Preset())
	}

	// Enter on the difficulty row cycles instead of leaving the menu
	m = pressMenu(m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.Choice() != ChoiceNone {
		t.Errorf("Enter on difficulty should not choose, got %v", m.Choice())
	}
}

func TestMenuScoresAndQuit(t *testing.T) {
	m := NewMenuModel("Dandaka", 0, "", core.DefaultConfig())
	m = pressMenu(m, tea.KeyMsg{Type: tea.KeyTab})
	if m.Choice() != ChoiceScores {
		t.Errorf("Tab should choose scores, got %v", m.Choice())
	}

	m = NewMenuModel("Dandaka", 0, "", core.DefaultConfig())
	m = pressMenu(m, tea.KeyMsg{Type: tea.KeyDown}, tea.KeyMsg{Type: tea.KeyDown}, tea.KeyMsg{Type: tea.KeyDown},
		tea.KeyMsg{Type: tea.KeyDown}, tea.KeyMsg{Type: tea.KeyEnter})
	if m.Choice() != ChoiceQuit {
		t.Errorf("Enter on the last row should quit, got %v", m.Choice())
	}
}
