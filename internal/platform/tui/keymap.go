package tui

import (
	tea "github.com/charmbracelet/bubbletea"
)

// EditorAction is a semantic visualizer action, abstracted from physical
// key presses. This centralizes key bindings and makes them testable.
type EditorAction int

const (
	ActionNone EditorAction = iota
	ActionMoveUp
	ActionMoveDown
	ActionMoveLeft
	ActionMoveRight
	ActionToggleWall
	ActionPlaceStart
	ActionPlaceEnd
	ActionNextAlgorithm
	ActionPrevAlgorithm
	ActionSpeedUp
	ActionSpeedDown
	ActionRun
	ActionPauseResume
	ActionStop
	ActionClearWalls
	ActionClearRun
	ActionSaveLayout
	ActionHistory
	ActionQuit
)

// KeyMapper translates Bubble Tea key messages to editor actions.
type KeyMapper struct{}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{}
}

// MapKey translates a key message to an editor action.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) EditorAction {
	switch msg.String() {
	case "ctrl+c", "q":
		return ActionQuit
	case "up", "k":
		return ActionMoveUp
	case "down", "j":
		return ActionMoveDown
	case "left", "h":
		return ActionMoveLeft
	case "right", "l":
		return ActionMoveRight
	case " ":
		return ActionToggleWall
	case "s":
		return ActionPlaceStart
	case "e":
		return ActionPlaceEnd
	case "tab":
		return ActionNextAlgorithm
	case "shift+tab":
		return ActionPrevAlgorithm
	case "+", "=":
		return ActionSpeedUp
	case "-", "_":
		return ActionSpeedDown
	case "enter", "r":
		return ActionRun
	case "p":
		return ActionPauseResume
	case "x":
		return ActionStop
	case "c":
		return ActionClearWalls
	case "n":
		return ActionClearRun
	case "w":
		return ActionSaveLayout
	case "t":
		return ActionHistory
	}
	return ActionNone
}
