// Copyright (c) halvfigur 2026. All rights reserved.
// SPDX-License-Identifier: MIT

package engine

// Coord is a board position. Col grows to the right, Row grows downward.
type Coord struct {
	Col int
	Row int
}

// Dimension is the size of the board in cells.
type Dimension struct {
	Width  int
	Height int
}

// Direction is a direction of travel from the player's perspective:
// DirectionUp moves toward the top of the screen.
type Direction int

const (
	DirectionUp Direction = iota
	DirectionDown
	DirectionRight
	DirectionLeft
)

// String implements fmt.Stringer.
func (d Direction) String() string {
	switch d {
	case DirectionUp:
		return "up"
	case DirectionDown:
		return "down"
	case DirectionRight:
		return "right"
	case DirectionLeft:
		return "left"
	default:
		return "unknown"
	}
}

// Opposite returns the reverse of d.
func (d Direction) Opposite() Direction {
	switch d {
	case DirectionUp:
		return DirectionDown
	case DirectionDown:
		return DirectionUp
	case DirectionRight:
		return DirectionLeft
	case DirectionLeft:
		return DirectionRight
	default:
		return d
	}
}

// delta returns the per-step coordinate change for d.
func (d Direction) delta() (col, row int) {
	switch d {
	case DirectionUp:
		return 0, -1
	case DirectionDown:
		return 0, 1
	case DirectionRight:
		return 1, 0
	case DirectionLeft:
		return -1, 0
	default:
		return 0, 0
	}
}

// Cell is the content of one board position.
type Cell int

const (
	CellEmpty Cell = iota
	CellSnake
	CellFood
)

// State is the engine's run state.
type State int

const (
	// StateRunning means Step advances the simulation.
	StateRunning State = iota
	// StateGameOver means a collision has ended the game; Step is a
	// no-op until Reset.
	StateGameOver
)

// String implements fmt.Stringer.
func (s State) String() string {
	switch s {
	case StateRunning:
		return "running"
	case StateGameOver:
		return "game over"
	default:
		return "unknown"
	}
}

// DirectionInput is a direction change for one snake, applied at the
// start of the next step.
type DirectionInput struct {
	Snake     int
	Direction Direction
}

// View receives the rebuilt board at the end of every step. The board is
// owned by the engine and only valid until the next Step; implementations
// that retain it must copy.
type View interface {
	Draw(board [][]Cell, dim Dimension)
}
