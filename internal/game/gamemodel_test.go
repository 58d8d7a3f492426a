// Copyright (c) halvfigur 2026. All rights reserved.
// SPDX-License-Identifier: MIT

package game

import (
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/halvfigur/snyke/internal/engine"
)

func newTestModel(t *testing.T, stepInterval time.Duration) (*GameModel, *engine.Engine) {
	t.Helper()

	cfg := engine.Config{
		Dim:          engine.Dimension{Width: 20, Height: 20},
		Snakes:       1,
		SnakeLength:  5,
		FoodInterval: 100,
		Growth:       1,
	}

	eng, err := engine.New(nil, cfg, rand.New(rand.NewSource(1)))
	require.NoError(t, err)

	return NewGameModel(eng, stepInterval), eng
}

func TestGameModel_StepWaitsForInterval(t *testing.T) {
	model, eng := newTestModel(t, 100*time.Millisecond)
	model.Restart(0)

	head := eng.Snake(0).Head()

	assert.False(t, model.Step(50, nil))
	assert.Equal(t, head, eng.Snake(0).Head())

	assert.True(t, model.Step(100, nil))
	assert.Equal(t, engine.Coord{Col: head.Col, Row: head.Row - 1}, eng.Snake(0).Head())
}

func TestGameModel_BuffersLatestInputPerSnake(t *testing.T) {
	model, eng := newTestModel(t, 100*time.Millisecond)
	model.Restart(0)

	head := eng.Snake(0).Head()

	// Neither call elapses the interval; the second input replaces the
	// first in the buffer.
	assert.False(t, model.Step(10, []engine.DirectionInput{{Snake: 0, Direction: engine.DirectionLeft}}))
	assert.False(t, model.Step(20, []engine.DirectionInput{{Snake: 0, Direction: engine.DirectionRight}}))

	assert.True(t, model.Step(100, nil))
	assert.Equal(t, engine.Coord{Col: head.Col + 1, Row: head.Row}, eng.Snake(0).Head())
}

func TestGameModel_InputOnElapsingCallIsApplied(t *testing.T) {
	model, eng := newTestModel(t, 100*time.Millisecond)
	model.Restart(0)

	head := eng.Snake(0).Head()

	assert.True(t, model.Step(100, []engine.DirectionInput{{Snake: 0, Direction: engine.DirectionLeft}}))
	assert.Equal(t, engine.Coord{Col: head.Col - 1, Row: head.Row}, eng.Snake(0).Head())
}

func TestGameModel_BufferClearedAfterStep(t *testing.T) {
	model, eng := newTestModel(t, 100*time.Millisecond)
	model.Restart(0)

	require.True(t, model.Step(100, []engine.DirectionInput{{Snake: 0, Direction: engine.DirectionLeft}}))

	head := eng.Snake(0).Head()

	// No new input buffered; the snake keeps travelling left.
	assert.True(t, model.Step(200, nil))
	assert.Equal(t, engine.Coord{Col: head.Col - 1, Row: head.Row}, eng.Snake(0).Head())
	assert.Equal(t, engine.DirectionLeft, eng.Snake(0).Direction())
}

func TestGameModel_Restart(t *testing.T) {
	model, eng := newTestModel(t, 100*time.Millisecond)
	model.Restart(0)

	spawnHead := eng.Snake(0).Head()

	require.True(t, model.Step(100, nil))
	require.True(t, model.Step(200, nil))
	require.NotEqual(t, spawnHead, eng.Snake(0).Head())

	model.Restart(1000)

	assert.Equal(t, spawnHead, eng.Snake(0).Head())
	assert.Equal(t, engine.StateRunning, model.State())
	assert.Equal(t, []int{0}, model.Scores())

	assert.False(t, model.Step(1050, nil), "interval restarts from the restart tick")
	assert.True(t, model.Step(1100, nil))
}

func TestGameModel_Accessors(t *testing.T) {
	model, _ := newTestModel(t, 100*time.Millisecond)

	assert.Equal(t, engine.StateRunning, model.State())
	assert.Equal(t, []int{0}, model.Scores())
	assert.Equal(t, engine.Dimension{Width: 20, Height: 20}, model.Dim())
}
