// Copyright (c) halvfigur 2026. All rights reserved.
// SPDX-License-Identifier: MIT

package ui

import (
	"math/rand"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/halvfigur/snyke/internal/engine"
	"github.com/halvfigur/snyke/internal/game"
)

// newTestUI wires the full stack with a zero step interval, so every
// frame tick advances the engine by one step.
func newTestUI(t *testing.T) (*Model, *engine.Engine) {
	t.Helper()

	cfg := engine.Config{
		Dim:          engine.Dimension{Width: 12, Height: 12},
		Snakes:       1,
		SnakeLength:  3,
		FoodInterval: 100,
		Growth:       1,
	}

	board := NewBoardBuffer(cfg.Dim)

	eng, err := engine.New(board, cfg, rand.New(rand.NewSource(1)))
	require.NoError(t, err)

	gameModel := game.NewGameModel(eng, 0)
	menuModel := game.NewMenuModel()

	gameCtrl := game.NewGameController(gameModel)
	menuCtrl := game.NewMenuController(menuModel)

	model := NewModel(Params{
		Mux:            game.NewMultiplexer(menuCtrl, gameCtrl),
		MenuController: menuCtrl,
		GameController: gameCtrl,
		MenuModel:      menuModel,
		GameModel:      gameModel,
		Board:          board,
		FrameRate:      30,
	})

	cmd := model.Init()
	require.NotNil(t, cmd, "the frame loop must be scheduled")

	return model, eng
}

func TestModel_MenuView(t *testing.T) {
	model, _ := newTestUI(t)

	view := model.View()

	assert.Contains(t, view, "snyke")
	assert.Contains(t, view, "▸ New Game")
	assert.Contains(t, view, "Exit")
}

func TestModel_MenuNavigation(t *testing.T) {
	model, _ := newTestUI(t)

	_, cmd := model.Update(tea.KeyMsg{Type: tea.KeyDown})

	assert.Nil(t, cmd)
	assert.Contains(t, model.View(), "▸ Exit")

	_, _ = model.Update(tea.KeyMsg{Type: tea.KeyUp})

	assert.Contains(t, model.View(), "▸ New Game")
}

func TestModel_EnterStartsGame(t *testing.T) {
	model, _ := newTestUI(t)

	_, cmd := model.Update(tea.KeyMsg{Type: tea.KeyEnter})

	assert.Nil(t, cmd)
	assert.Same(t, model.gameCtrl, model.mux.Active())
	assert.Contains(t, model.View(), "score 0")
}

func TestModel_TickDrawsBoard(t *testing.T) {
	model, eng := newTestUI(t)

	_, _ = model.Update(tea.KeyMsg{Type: tea.KeyEnter})

	_, cmd := model.Update(tickMsg(time.Now()))

	require.NotNil(t, cmd, "the next frame must be scheduled")
	assert.Equal(t, engine.StateRunning, eng.State())
	assert.Contains(t, model.View(), "██")
}

func TestModel_ArrowSteersSnake(t *testing.T) {
	model, eng := newTestUI(t)

	_, _ = model.Update(tea.KeyMsg{Type: tea.KeyEnter})

	head := eng.Snake(0).Head()

	_, _ = model.Update(tea.KeyMsg{Type: tea.KeyLeft})

	assert.Equal(t, engine.Coord{Col: head.Col - 1, Row: head.Row}, eng.Snake(0).Head())
}

func TestModel_GameOverBanner(t *testing.T) {
	model, eng := newTestUI(t)

	_, _ = model.Update(tea.KeyMsg{Type: tea.KeyEnter})

	// Travelling up, the snake leaves the board after headRow+1 ticks.
	steps := eng.Snake(0).Head().Row + 1
	for range steps {
		_, _ = model.Update(tickMsg(time.Now()))
	}

	require.Equal(t, engine.StateGameOver, eng.State())
	assert.Contains(t, model.View(), "Game over")

	// Enter returns to the menu.
	_, _ = model.Update(tea.KeyMsg{Type: tea.KeyEnter})
	assert.Contains(t, model.View(), "▸ New Game")
}

func TestModel_QuitKey(t *testing.T) {
	model, _ := newTestUI(t)

	_, cmd := model.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})

	assert.NotNil(t, cmd)
	assert.Empty(t, model.View())
}

func TestModel_ExitViaMenu(t *testing.T) {
	model, _ := newTestUI(t)

	_, _ = model.Update(tea.KeyMsg{Type: tea.KeyDown})
	_, cmd := model.Update(tea.KeyMsg{Type: tea.KeyEnter})

	assert.NotNil(t, cmd, "selecting Exit must quit the program")
	assert.True(t, model.quitting)
}

func TestModel_WindowSize(t *testing.T) {
	model, _ := newTestUI(t)

	_, _ = model.Update(tea.WindowSizeMsg{Width: 100, Height: 40})

	assert.Equal(t, 100, model.width)
	assert.Equal(t, 40, model.height)
}

func TestBoardBuffer_PrefilledEmpty(t *testing.T) {
	dim := engine.Dimension{Width: 4, Height: 3}

	buf := NewBoardBuffer(dim)

	require.Len(t, buf.Board(), 3)
	for _, row := range buf.Board() {
		require.Len(t, row, 4)

		for _, c := range row {
			assert.Equal(t, engine.CellEmpty, c)
		}
	}

	assert.Equal(t, dim, buf.Dim())
}

func TestBoardBuffer_DrawCopies(t *testing.T) {
	dim := engine.Dimension{Width: 2, Height: 1}

	buf := NewBoardBuffer(dim)

	src := [][]engine.Cell{{engine.CellSnake, engine.CellFood}}
	buf.Draw(src, dim)

	src[0][0] = engine.CellEmpty

	assert.Equal(t, engine.CellSnake, buf.Board()[0][0], "the buffer must not alias the engine board")
	assert.Equal(t, engine.CellFood, buf.Board()[0][1])
}
