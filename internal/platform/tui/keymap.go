package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-runner/internal/core"
)

// KeyMapper translates Bubble Tea input messages to actions.
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
	case " ", "up", "w":
		return core.ActionJump, false
	case "ctrl+s":
		return core.ActionScreenshot, false
	}
	return core.ActionNone, false
}

// MapMouse translates a mouse message to an action.
// A left-button press is the terminal's equivalent of a tap.
func (km *KeyMapper) MapMouse(msg tea.MouseMsg) core.Action {
	if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft {
		return core.ActionJump
	}
	return core.ActionNone
}
