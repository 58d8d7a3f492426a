// Copyright (c) halvfigur 2026. All rights reserved.
// SPDX-License-Identifier: MIT

package game

import (
	"github.com/halvfigur/snyke/internal/engine"
)

// GameController drives a game session. Arrow keys steer the first snake
// and the frame update advances the paced model. Once the game is over,
// enter returns the player to the main menu.
type GameController struct {
	NopController

	model *GameModel
}

// NewGameController returns a controller for model.
func NewGameController(model *GameModel) *GameController {
	return &GameController{model: model}
}

// Enter starts a fresh game session.
func (c *GameController) Enter(tick int64, _ any) {
	c.model.Restart(tick)
}

// LeftPressed steers the player snake left.
func (c *GameController) LeftPressed(tick int64) Action {
	return c.steer(tick, engine.DirectionLeft)
}

// RightPressed steers the player snake right.
func (c *GameController) RightPressed(tick int64) Action {
	return c.steer(tick, engine.DirectionRight)
}

// UpPressed steers the player snake up.
func (c *GameController) UpPressed(tick int64) Action {
	return c.steer(tick, engine.DirectionUp)
}

// DownPressed steers the player snake down.
func (c *GameController) DownPressed(tick int64) Action {
	return c.steer(tick, engine.DirectionDown)
}

// EnterPressed returns to the main menu once the game is over.
func (c *GameController) EnterPressed(_ int64) Action {
	if c.model.State() == engine.StateGameOver {
		return Action{Kind: ActionMainMenu}
	}

	return Action{}
}

// Update advances the paced model.
func (c *GameController) Update(tick int64) Action {
	c.model.Step(tick, nil)
	return Action{}
}

func (c *GameController) steer(tick int64, d engine.Direction) Action {
	c.model.Step(tick, []engine.DirectionInput{{Snake: 0, Direction: d}})
	return Action{}
}
