// Copyright (c) halvfigur 2026. All rights reserved.
// SPDX-License-Identifier: MIT

package game

// Multiplexer routes events to the active controller and performs screen
// switches. NewGame and MainMenu actions swap the active controller with
// an Exit/Enter handover; ExitGame is returned to the caller unhandled so
// that the front end can shut down.
type Multiplexer struct {
	menu    Controller
	game    Controller
	current Controller
}

// NewMultiplexer returns a multiplexer starting on the menu controller.
func NewMultiplexer(menu, game Controller) *Multiplexer {
	return &Multiplexer{
		menu:    menu,
		game:    game,
		current: menu,
	}
}

// Enter activates the current controller. Call once before the first
// event is routed.
func (m *Multiplexer) Enter(tick int64) {
	m.current.Enter(tick, nil)
}

// Active returns the controller currently receiving events.
func (m *Multiplexer) Active() Controller {
	return m.current
}

// LeftPressed routes to the active controller.
func (m *Multiplexer) LeftPressed(tick int64) Action {
	return m.current.LeftPressed(tick)
}

// RightPressed routes to the active controller.
func (m *Multiplexer) RightPressed(tick int64) Action {
	return m.current.RightPressed(tick)
}

// UpPressed routes to the active controller.
func (m *Multiplexer) UpPressed(tick int64) Action {
	return m.current.UpPressed(tick)
}

// DownPressed routes to the active controller.
func (m *Multiplexer) DownPressed(tick int64) Action {
	return m.current.DownPressed(tick)
}

// EnterPressed routes to the active controller and applies any screen
// switch the returned action requests.
func (m *Multiplexer) EnterPressed(tick int64) Action {
	return m.handle(tick, m.current.EnterPressed(tick))
}

// Update routes the frame update to the active controller and applies any
// screen switch the returned action requests.
func (m *Multiplexer) Update(tick int64) Action {
	return m.handle(tick, m.current.Update(tick))
}

func (m *Multiplexer) handle(tick int64, action Action) Action {
	var next Controller

	switch action.Kind {
	case ActionNewGame:
		next = m.game
	case ActionMainMenu:
		next = m.menu
	default:
		// ExitGame and unhandled actions belong to the caller.
		return action
	}

	if next != m.current {
		m.current.Exit(tick)
		m.current = next
		m.current.Enter(tick, action.Data)
	}

	return Action{}
}
