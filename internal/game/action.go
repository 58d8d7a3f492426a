// Copyright (c) halvfigur 2026. All rights reserved.
// SPDX-License-Identifier: MIT

package game

// ActionKind identifies what a controller wants to happen next.
type ActionKind int

const (
	// ActionNone means no state change is requested.
	ActionNone ActionKind = iota
	// ActionNewGame requests a switch to a fresh game session.
	ActionNewGame
	// ActionMainMenu requests a switch back to the main menu.
	ActionMainMenu
	// ActionExitGame requests application shutdown.
	ActionExitGame
)

// String returns the name of the action kind.
func (k ActionKind) String() string {
	switch k {
	case ActionNone:
		return "none"
	case ActionNewGame:
		return "new game"
	case ActionMainMenu:
		return "main menu"
	case ActionExitGame:
		return "exit game"
	default:
		return "unknown"
	}
}

// Action is returned by controller event handlers. The zero value is the
// nil action and requests nothing.
type Action struct {
	Kind ActionKind
	// Data is an optional payload handed to the controller entered as a
	// result of this action.
	Data any
}
