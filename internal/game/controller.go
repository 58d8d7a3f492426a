// Copyright (c) halvfigur 2026. All rights reserved.
// SPDX-License-Identifier: MIT

package game

// Controller reacts to key events and periodic updates for one screen.
// Ticks are milliseconds of elapsed program time. Every event handler
// returns an Action that the multiplexer interprets.
type Controller interface {
	// Enter is called when the controller becomes active. Data carries
	// the payload of the action that caused the switch, if any.
	Enter(tick int64, data any)
	// Exit is called when the controller is deactivated.
	Exit(tick int64)

	LeftPressed(tick int64) Action
	RightPressed(tick int64) Action
	UpPressed(tick int64) Action
	DownPressed(tick int64) Action
	EnterPressed(tick int64) Action

	// Update is called once per frame.
	Update(tick int64) Action
}

// NopController implements Controller with no behavior. Embed it to
// implement only the events a controller cares about.
type NopController struct{}

// Enter implements Controller.
func (NopController) Enter(_ int64, _ any) {}

// Exit implements Controller.
func (NopController) Exit(_ int64) {}

// LeftPressed implements Controller.
func (NopController) LeftPressed(_ int64) Action { return Action{} }

// RightPressed implements Controller.
func (NopController) RightPressed(_ int64) Action { return Action{} }

// UpPressed implements Controller.
func (NopController) UpPressed(_ int64) Action { return Action{} }

// DownPressed implements Controller.
func (NopController) DownPressed(_ int64) Action { return Action{} }

// EnterPressed implements Controller.
func (NopController) EnterPressed(_ int64) Action { return Action{} }

// Update implements Controller.
func (NopController) Update(_ int64) Action { return Action{} }
