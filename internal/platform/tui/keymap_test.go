package tui

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/dandaka/internal/core"
)

func runeKey(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestMapKey(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		name   string
		msg    tea.KeyMsg
		action core.Action
		quit   bool
	}{
		{"a", runeKey("a"), core.ActionLeft, false},
		{"left arrow", tea.KeyMsg{Type: tea.KeyLeft}, core.ActionLeft, false},
		{"d", runeKey("d"), core.ActionRight, false},
		{"right arrow", tea.KeyMsg{Type: tea.KeyRight}, core.ActionRight, false},
		{"w", runeKey("w"), core.ActionJump, false},
		{"up arrow", tea.KeyMsg{Type: tea.KeyUp}, core.ActionJump, false},
		{"space", tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}, core.ActionJump, false},
		{"z", runeKey("z"), core.ActionShoot, false},
		{"x", runeKey("x"), core.ActionDash, false},
		{"enter", tea.KeyMsg{Type: tea.KeyEnter}, core.ActionConfirm, false},
		{"p", runeKey("p"), core.ActionPause, false},
		{"esc", tea.KeyMsg{Type: tea.KeyEsc}, core.ActionPause, false},
		{"r", runeKey("r"), core.ActionRestart, false},
		{"q", runeKey("q"), core.ActionQuit, true},
		{"ctrl+c", tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit, true},
		{"unbound", runeKey("m"), core.ActionNone, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			action, quit := km.MapKey(tt.msg)
			if action != tt.action {
				t.Errorf("MapKey(%q) action = %v, expected %v", tt.msg.String(), action, tt.action)
			}
			if quit != tt.quit {
				t.Errorf("MapKey(%q) quit = %v, expected %v", tt.msg.String(), quit, tt.quit)
			}
		})
	}
}

func TestHeldKeysWindow(t *testing.T) {
	start := time.Unix(1000, 0)
	h := NewHeldKeys(200 * time.Millisecond)

	h.Press(core.ActionShoot, start)

	if !h.Frame(start.Add(100 * time.Millisecond)).Has(core.ActionShoot) {
		t.Error("Press should be held inside the window")
	}
	if h.Frame(start.Add(300 * time.Millisecond)).Has(core.ActionShoot) {
		t.Error("Press should expire after the window")
	}

	// Auto-repeat refreshes the hold
	h.Press(core.ActionShoot, start.Add(300*time.Millisecond))
	h.Press(core.ActionShoot, start.Add(450*time.Millisecond))
	if !h.Frame(start.Add(600 * time.Millisecond)).Has(core.ActionShoot) {
		t.Error("Repeated presses should keep the action held")
	}
}

func TestHeldKeysDirectionExclusion(t *testing.T) {
	now := time.Unix(1000, 0)
	h := NewHeldKeys(time.Second)

	h.Press(core.ActionLeft, now)
	h.Press(core.ActionJump, now)
	h.Press(core.ActionRight, now)

	f := h.Frame(now)
	if f.Has(core.ActionLeft) {
		t.Error("Pressing right should release left")
	}
	if !f.Has(core.ActionRight) || !f.Has(core.ActionJump) {
		t.Error("Right and jump should both be held")
	}
}

func TestHeldKeysIgnoresQuitAndNone(t *testing.T) {
	now := time.Unix(1000, 0)
	h := NewHeldKeys(time.Second)

	h.Press(core.ActionNone, now)
	h.Press(core.ActionQuit, now)

	f := h.Frame(now)
	if f.Has(core.ActionNone) || f.Has(core.ActionQuit) {
		t.Error("None and Quit should never be held")
	}
}

func TestHeldKeysReleaseAndReset(t *testing.T) {
	now := time.Unix(1000, 0)
	h := NewHeldKeys(time.Second)

	h.Press(core.ActionLeft, now)
	h.Press(core.ActionShoot, now)

	h.Release(core.ActionShoot)
	if h.Frame(now).Has(core.ActionShoot) {
		t.Error("Release should drop the action")
	}

	h.Reset()
	if h.Frame(now).Has(core.ActionLeft) {
		t.Error("Reset should drop every action")
	}
}
