// Copyright (c) halvfigur 2026. All rights reserved.
// SPDX-License-Identifier: MIT

package game

import (
	"maps"
	"slices"
	"time"

	"github.com/halvfigur/snyke/internal/engine"
)

// GameModel paces an engine. The engine itself is turn-based; GameModel
// maps wall-clock ticks onto engine steps so that the snakes advance at a
// fixed interval. Direction inputs arriving between steps are buffered,
// keeping only the latest direction per snake.
type GameModel struct {
	eng          *engine.Engine
	stepInterval int64
	lastStep     int64
	pending      map[int]engine.Direction
}

// NewGameModel returns a model that advances eng once per stepInterval.
func NewGameModel(eng *engine.Engine, stepInterval time.Duration) *GameModel {
	return &GameModel{
		eng:          eng,
		stepInterval: stepInterval.Milliseconds(),
		pending:      make(map[int]engine.Direction),
	}
}

// Step records inputs and advances the engine if the step interval has
// elapsed since the last engine step. It reports whether the engine
// advanced.
func (m *GameModel) Step(tick int64, inputs []engine.DirectionInput) bool {
	for _, in := range inputs {
		m.pending[in.Snake] = in.Direction
	}

	if tick-m.lastStep < m.stepInterval {
		return false
	}

	flushed := make([]engine.DirectionInput, 0, len(m.pending))
	for _, snake := range slices.Sorted(maps.Keys(m.pending)) {
		flushed = append(flushed, engine.DirectionInput{Snake: snake, Direction: m.pending[snake]})
	}

	m.eng.Step(flushed)
	clear(m.pending)
	m.lastStep = tick

	return true
}

// Restart resets the engine to its initial state. The first engine step
// after a restart happens one full interval after tick.
func (m *GameModel) Restart(tick int64) {
	m.eng.Reset()
	clear(m.pending)
	m.lastStep = tick
}

// State returns the engine state.
func (m *GameModel) State() engine.State {
	return m.eng.State()
}

// Scores returns a copy of the per-snake scores.
func (m *GameModel) Scores() []int {
	return m.eng.Scores()
}

// Dim returns the board dimensions.
func (m *GameModel) Dim() engine.Dimension {
	return m.eng.Dim()
}
