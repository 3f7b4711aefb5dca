package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/rush-arcade/internal/core"
)

// KeyMapper translates Bubble Tea key messages to game actions.
// This centralizes key bindings and makes them testable.
type KeyMapper struct{}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{}
}

// MapKey translates a key message to a game action.
// Returns the action (may be ActionNone) and whether it's a quit request.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (action core.Action, isQuit bool) {
	switch msg.String() {
	case "ctrl+c", "q":
		return core.ActionQuit, true
	case "w", "up":
		return core.ActionUp, false
	case "s", "down":
		return core.ActionDown, false
	case "a", "left":
		return core.ActionLeft, false
	case "d", "right":
		return core.ActionRight, false
	case " ":
		return core.ActionCharge, false
	case "enter":
		return core.ActionConfirm, false
	case "p", "esc":
		return core.ActionPause, false
	case "b":
		return core.ActionBack, false
	case "r":
		return core.ActionRestart, false
	case "f1", "1":
		return core.ActionDebug, false
	}
	return core.ActionNone, false
}

// MapKeyToFrame routes a key to the hold tracker when it is sustained
// and onto the frame otherwise.
// Returns true if the key was a quit request.
func (km *KeyMapper) MapKeyToFrame(msg tea.KeyMsg, hold *core.HoldTracker, frame *core.InputFrame) bool {
	action, isQuit := km.MapKey(msg)
	switch {
	case action == core.ActionNone:
	case action.Holdable() && hold != nil:
		hold.Press(action)
	default:
		frame.Set(action)
	}
	return isQuit
}

// MenuAction represents a menu-specific action derived from input.
type MenuAction int

const (
	MenuActionNone MenuAction = iota
	MenuActionUp
	MenuActionDown
	MenuActionSelect
	MenuActionBack
	MenuActionQuit
	MenuActionScoreboard
)

// MapKeyToMenuAction translates a key to a menu action.
func (km *KeyMapper) MapKeyToMenuAction(msg tea.KeyMsg) MenuAction {
	switch msg.String() {
	case "ctrl+c", "q":
		return MenuActionQuit
	case "w", "up", "k":
		return MenuActionUp
	case "s", "down", "j":
		return MenuActionDown
	case "enter", " ":
		return MenuActionSelect
	case "b", "esc":
		return MenuActionBack
	case "tab", "h":
		return MenuActionScoreboard
	}
	return MenuActionNone
}
