// Copyright (c) halvfigur 2026. All rights reserved.
// SPDX-License-Identifier: MIT

package ui

import (
	"github.com/halvfigur/snyke/internal/engine"
)

// BoardBuffer receives board snapshots from the engine. The engine owns
// the board it hands to Draw, so the buffer keeps a deep copy for the
// renderer to read between steps.
type BoardBuffer struct {
	board [][]engine.Cell
	dim   engine.Dimension
}

// NewBoardBuffer returns a buffer pre-filled with an empty board of dim,
// so the renderer has a full grid before the first engine step.
func NewBoardBuffer(dim engine.Dimension) *BoardBuffer {
	board := make([][]engine.Cell, dim.Height)
	for i := range board {
		board[i] = make([]engine.Cell, dim.Width)
	}

	return &BoardBuffer{
		board: board,
		dim:   dim,
	}
}

// Draw implements engine.View.
func (b *BoardBuffer) Draw(board [][]engine.Cell, dim engine.Dimension) {
	b.dim = dim

	b.board = make([][]engine.Cell, len(board))
	for i, row := range board {
		b.board[i] = make([]engine.Cell, len(row))
		copy(b.board[i], row)
	}
}

// Board returns the latest board snapshot.
func (b *BoardBuffer) Board() [][]engine.Cell {
	return b.board
}

// Dim returns the board dimensions.
func (b *BoardBuffer) Dim() engine.Dimension {
	return b.dim
}
