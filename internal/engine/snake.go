// Copyright (c) halvfigur 2026. All rights reserved.
// SPDX-License-Identifier: MIT

package engine

import "slices"

// Snake is one snake on the board. The first cell is the head; the body
// extends behind it.
type Snake struct {
	cells     []Coord
	direction Direction
	alive     bool
}

// NewSnake creates a snake of the given length with its head at head,
// travelling in direction. The body extends opposite the direction of
// travel.
func NewSnake(head Coord, length int, direction Direction) *Snake {
	colOffset, rowOffset := direction.Opposite().delta()

	cells := make([]Coord, 0, length)
	for i := range length {
		cells = append(cells, Coord{
			Col: head.Col + i*colOffset,
			Row: head.Row + i*rowOffset,
		})
	}

	return &Snake{
		cells:     cells,
		direction: direction,
		alive:     true,
	}
}

// Head returns the position of the snake's head.
func (s *Snake) Head() Coord {
	return s.cells[0]
}

// Len returns the snake's length in cells.
func (s *Snake) Len() int {
	return len(s.cells)
}

// Alive reports whether the snake has not collided.
func (s *Snake) Alive() bool {
	return s.alive
}

// Contains reports whether c is one of the snake's cells.
func (s *Snake) Contains(c Coord) bool {
	return slices.Contains(s.cells, c)
}

// inBody reports whether c is one of the snake's cells excluding the head.
func (s *Snake) inBody(c Coord) bool {
	return slices.Contains(s.cells[1:], c)
}

// Move advances the snake one cell in its direction of travel. The
// length never changes: a new head is prepended and the tail cell
// dropped. Tail duplicates left by Grow make the tail appear stationary
// until they are consumed.
func (s *Snake) Move() {
	colOffset, rowOffset := s.direction.delta()

	head := s.cells[0]
	newHead := Coord{Col: head.Col + colOffset, Row: head.Row + rowOffset}

	copy(s.cells[1:], s.cells[:len(s.cells)-1])
	s.cells[0] = newHead
}

// Grow extends the snake by n cells. The new cells start stacked on the
// tail and unfold over the next n moves.
func (s *Snake) Grow(n int) {
	tail := s.cells[len(s.cells)-1]
	for range n {
		s.cells = append(s.cells, tail)
	}
}

// Direction returns the current direction of travel.
func (s *Snake) Direction() Direction {
	return s.direction
}

// SetDirection changes the direction of travel. A reversal (the exact
// opposite of the current direction) is refused, as the snake would fold
// onto its own neck.
func (s *Snake) SetDirection(d Direction) {
	if d == s.direction.Opposite() {
		return
	}

	s.direction = d
}

// Cells returns a copy of the snake's cells, head first.
func (s *Snake) Cells() []Coord {
	return slices.Clone(s.cells)
}

func (s *Snake) kill() {
	s.alive = false
}
