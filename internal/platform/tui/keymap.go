package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/dandaka/internal/core"
)

// KeyMapper translates Bubble Tea key messages to game actions.
// This centralizes key bindings and makes them testable.
type KeyMapper struct{}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{}
}

// MapKey translates a key message to an action.
// Returns the action (may be ActionNone) and whether it's a quit request.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (action core.Action, isQuit bool) {
	switch msg.String() {
	case "ctrl+c", "q":
		return core.ActionQuit, true
	case "a", "left":
		return core.ActionLeft, false
	case "d", "right":
		return core.ActionRight, false
	case "w", "up", " ":
		return core.ActionJump, false
	case "z", "j":
		return core.ActionShoot, false
	case "x", "k", "shift+left", "shift+right":
		return core.ActionDash, false
	case "enter":
		return core.ActionConfirm, false
	case "p", "esc":
		return core.ActionPause, false
	case "r":
		return core.ActionRestart, false
	}

	return core.ActionNone, false
}

// MenuAction represents a menu-specific action derived from input.
type MenuAction int

const (
	MenuActionNone MenuAction = iota
	MenuActionUp
	MenuActionDown
	MenuActionLeft
	MenuActionRight
	MenuActionSelect
	MenuActionScoreboard
	MenuActionQuit
)

// MapKeyToMenuAction translates a key to a menu action.
func (km *KeyMapper) MapKeyToMenuAction(msg tea.KeyMsg) MenuAction {
	switch msg.String() {
	case "ctrl+c", "q", "esc":
		return MenuActionQuit
	case "w", "up", "k": // vim-style k for up
		return MenuActionUp
	case "s", "down", "j": // vim-style j for down
		return MenuActionDown
	case "a", "left", "h":
		return MenuActionLeft
	case "d", "right", "l":
		return MenuActionRight
	case "enter", " ":
		return MenuActionSelect
	case "tab":
		return MenuActionScoreboard
	}

	return MenuActionNone
}

// HeldKeys emulates held keys on top of a terminal that only reports presses.
// A press keeps its action held for the hold window; key auto-repeat
// refreshes it. Pressing one horizontal direction releases the other.
type HeldKeys struct {
	window  time.Duration
	pressed map[core.Action]time.Time
}

// NewHeldKeys creates a tracker that holds each press for window.
func NewHeldKeys(window time.Duration) *HeldKeys {
	return &HeldKeys{
		window:  window,
		pressed: make(map[core.Action]time.Time),
	}
}

// Press records a key press at now.
func (h *HeldKeys) Press(a core.Action, now time.Time) {
	if a == core.ActionNone || a == core.ActionQuit {
		return
	}
	switch a {
	case core.ActionLeft:
		delete(h.pressed, core.ActionRight)
	case core.ActionRight:
		delete(h.pressed, core.ActionLeft)
	}
	h.pressed[a] = now
}

// Frame returns the actions still held at now and forgets expired ones.
func (h *HeldKeys) Frame(now time.Time) core.InputFrame {
	f := core.NewInputFrame()
	for a, at := range h.pressed {
		if now.Sub(at) > h.window {
			delete(h.pressed, a)
			continue
		}
		f.Set(a)
	}
	return f
}

// Release drops a held action immediately.
func (h *HeldKeys) Release(a core.Action) {
	delete(h.pressed, a)
}

// Reset releases every held action.
func (h *HeldKeys) Reset() {
	for a := range h.pressed {
		delete(h.pressed, a)
	}
}
