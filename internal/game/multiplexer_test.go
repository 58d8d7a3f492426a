// Copyright (c) halvfigur 2026. All rights reserved.
// SPDX-License-Identifier: MIT

package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/halvfigur/snyke/internal/engine"
)

// scriptedController records lifecycle calls and returns scripted actions.
type scriptedController struct {
	NopController

	entered   int
	exited    int
	enterData any
	lefts     int

	onEnterPressed func() Action
	onUpdate       func() Action
}

func (c *scriptedController) Enter(_ int64, data any) {
	c.entered++
	c.enterData = data
}

func (c *scriptedController) Exit(_ int64) {
	c.exited++
}

func (c *scriptedController) LeftPressed(_ int64) Action {
	c.lefts++
	return Action{}
}

func (c *scriptedController) EnterPressed(_ int64) Action {
	if c.onEnterPressed != nil {
		return c.onEnterPressed()
	}

	return Action{}
}

func (c *scriptedController) Update(_ int64) Action {
	if c.onUpdate != nil {
		return c.onUpdate()
	}

	return Action{}
}

func TestMultiplexer_StartsOnMenu(t *testing.T) {
	menu := &scriptedController{}
	game := &scriptedController{}

	mux := NewMultiplexer(menu, game)
	mux.Enter(0)

	assert.Same(t, menu, mux.Active())
	assert.Equal(t, 1, menu.entered)
	assert.Zero(t, game.entered)
}

func TestMultiplexer_NewGameSwitchesToGame(t *testing.T) {
	menu := &scriptedController{
		onEnterPressed: func() Action {
			return Action{Kind: ActionNewGame, Data: "payload"}
		},
	}
	game := &scriptedController{}

	mux := NewMultiplexer(menu, game)
	mux.Enter(0)

	action := mux.EnterPressed(5)

	assert.Equal(t, ActionNone, action.Kind, "a handled switch is consumed")
	assert.Same(t, game, mux.Active())
	assert.Equal(t, 1, menu.exited)
	assert.Equal(t, 1, game.entered)
	assert.Equal(t, "payload", game.enterData)
}

func TestMultiplexer_ExitGameBubbles(t *testing.T) {
	menu := &scriptedController{
		onEnterPressed: func() Action { return Action{Kind: ActionExitGame} },
	}
	game := &scriptedController{}

	mux := NewMultiplexer(menu, game)
	mux.Enter(0)

	action := mux.EnterPressed(5)

	assert.Equal(t, ActionExitGame, action.Kind)
	assert.Same(t, menu, mux.Active(), "exit does not switch screens")
	assert.Zero(t, menu.exited)
}

func TestMultiplexer_UpdateCanSwitch(t *testing.T) {
	menu := &scriptedController{
		onEnterPressed: func() Action { return Action{Kind: ActionNewGame} },
	}
	game := &scriptedController{
		onUpdate: func() Action { return Action{Kind: ActionMainMenu} },
	}

	mux := NewMultiplexer(menu, game)
	mux.Enter(0)

	require.Equal(t, ActionNone, mux.EnterPressed(1).Kind)
	require.Same(t, game, mux.Active())

	action := mux.Update(2)

	assert.Equal(t, ActionNone, action.Kind)
	assert.Same(t, menu, mux.Active())
	assert.Equal(t, 1, game.exited)
	assert.Equal(t, 2, menu.entered)
}

func TestMultiplexer_SwitchToActiveControllerIsNoOp(t *testing.T) {
	menu := &scriptedController{
		onEnterPressed: func() Action { return Action{Kind: ActionNewGame} },
	}
	game := &scriptedController{
		onEnterPressed: func() Action { return Action{Kind: ActionNewGame} },
	}

	mux := NewMultiplexer(menu, game)
	mux.Enter(0)

	require.Equal(t, ActionNone, mux.EnterPressed(1).Kind)
	require.Same(t, game, mux.Active())

	mux.EnterPressed(2)

	assert.Equal(t, 1, game.entered, "re-entering the active screen is suppressed")
	assert.Zero(t, game.exited)
}

func TestMultiplexer_KeysRouteToActive(t *testing.T) {
	menu := &scriptedController{
		onEnterPressed: func() Action { return Action{Kind: ActionNewGame} },
	}
	game := &scriptedController{}

	mux := NewMultiplexer(menu, game)
	mux.Enter(0)

	mux.LeftPressed(1)
	assert.Equal(t, 1, menu.lefts)
	assert.Zero(t, game.lefts)

	mux.EnterPressed(2)

	mux.LeftPressed(3)
	assert.Equal(t, 1, menu.lefts)
	assert.Equal(t, 1, game.lefts)
}

// TestMultiplexer_FullSession drives real controllers through a complete
// menu, play, game over, menu round trip.
func TestMultiplexer_FullSession(t *testing.T) {
	gameModel, eng := newTestModel(t, 0)

	menuCtrl := NewMenuController(NewMenuModel())
	gameCtrl := NewGameController(gameModel)

	mux := NewMultiplexer(menuCtrl, gameCtrl)
	mux.Enter(0)

	require.Same(t, menuCtrl, mux.Active())

	// Confirm "New Game".
	require.Equal(t, ActionNone, mux.EnterPressed(1).Kind)
	require.Same(t, gameCtrl, mux.Active())
	require.Equal(t, engine.StateRunning, gameModel.State())

	// Run the snake into the top wall.
	steps := eng.Snake(0).Head().Row + 1
	for i := range steps {
		mux.Update(int64(i + 2))
	}

	require.Equal(t, engine.StateGameOver, gameModel.State())

	// Enter after game over returns to the menu.
	assert.Equal(t, ActionNone, mux.EnterPressed(100).Kind)
	assert.Same(t, menuCtrl, mux.Active())
}
