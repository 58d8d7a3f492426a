// Copyright (c) halvfigur 2026. All rights reserved.
// SPDX-License-Identifier: MIT

package engine

import (
	"errors"
	"fmt"
	"math/rand"
	"slices"
	"time"
)

var (
	// ErrInvalidConfig is returned when the engine configuration cannot
	// produce a playable board.
	ErrInvalidConfig = errors.New("invalid engine configuration")
)

// Config holds the game parameters.
type Config struct {
	// Dim is the board size in cells.
	Dim Dimension
	// Snakes is the number of snakes on the board.
	Snakes int
	// SnakeLength is the starting length of each snake.
	SnakeLength int
	// FoodInterval is the number of steps between food spawns.
	FoodInterval int
	// Growth is the number of cells a snake grows per food eaten.
	Growth int
}

// Engine is the game simulation. It is not safe for concurrent use; the
// caller serializes Step with any accessor.
type Engine struct {
	view   View
	cfg    Config
	dim    Dimension
	board  [][]Cell
	snakes []*Snake
	food   []Coord
	scores []int
	state  State

	nextFood int
	rng      *rand.Rand
}

// New creates an engine for the given configuration. A nil view is
// allowed and disables drawing. A nil rng seeds one from the clock;
// tests inject a fixed source for determinism.
func New(view View, cfg Config, rng *rand.Rand) (*Engine, error) {
	if err := validate(cfg); err != nil {
		return nil, err
	}

	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano())) //nolint:gosec // Game, not crypto.
	}

	board := make([][]Cell, cfg.Dim.Height)
	for row := range board {
		board[row] = make([]Cell, cfg.Dim.Width)
	}

	e := &Engine{
		view:  view,
		cfg:   cfg,
		dim:   cfg.Dim,
		board: board,
		rng:   rng,
	}

	e.spawn()
	e.rebuildBoard()

	return e, nil
}

func validate(cfg Config) error {
	if cfg.Dim.Width < 1 || cfg.Dim.Height < 1 {
		return fmt.Errorf("%w: board dimensions must be positive", ErrInvalidConfig)
	}

	if cfg.Snakes < 1 {
		return fmt.Errorf("%w: at least one snake is required", ErrInvalidConfig)
	}

	if cfg.SnakeLength < 1 {
		return fmt.Errorf("%w: snake length must be positive", ErrInvalidConfig)
	}

	if cfg.FoodInterval < 1 {
		return fmt.Errorf("%w: food interval must be positive", ErrInvalidConfig)
	}

	if cfg.Growth < 1 {
		return fmt.Errorf("%w: growth must be positive", ErrInvalidConfig)
	}

	if cfg.Dim.Width/(cfg.Snakes+1) < 1 {
		return fmt.Errorf("%w: board is too narrow for %d snakes", ErrInvalidConfig, cfg.Snakes)
	}

	headRow := (cfg.Dim.Height + cfg.SnakeLength) / 2
	if headRow+cfg.SnakeLength-1 >= cfg.Dim.Height {
		return fmt.Errorf("%w: snake length %d does not fit a board of height %d",
			ErrInvalidConfig, cfg.SnakeLength, cfg.Dim.Height)
	}

	return nil
}

// spawn places the snakes evenly spaced across the board, bodies
// trailing below the head, all travelling up.
func (e *Engine) spawn() {
	spacing := e.dim.Width / (e.cfg.Snakes + 1)
	headRow := (e.dim.Height + e.cfg.SnakeLength) / 2

	e.snakes = make([]*Snake, 0, e.cfg.Snakes)
	for i := range e.cfg.Snakes {
		head := Coord{Col: spacing * (i + 1), Row: headRow}
		e.snakes = append(e.snakes, NewSnake(head, e.cfg.SnakeLength, DirectionUp))
	}

	e.scores = make([]int, e.cfg.Snakes)
	e.food = nil
	e.nextFood = e.cfg.FoodInterval
	e.state = StateRunning
}

// Reset returns the engine to its initial state for a new game.
func (e *Engine) Reset() {
	e.spawn()
	e.rebuildBoard()
}

// Dim returns the board size.
func (e *Engine) Dim() Dimension {
	return e.dim
}

// Board returns the current board. It is owned by the engine and only
// valid until the next Step.
func (e *Engine) Board() [][]Cell {
	return e.board
}

// State returns the engine's run state.
func (e *Engine) State() State {
	return e.state
}

// Scores returns each snake's score, indexed like the snakes.
func (e *Engine) Scores() []int {
	return slices.Clone(e.scores)
}

// Snake returns the i-th snake for inspection.
func (e *Engine) Snake(i int) *Snake {
	return e.snakes[i]
}

// SnakeCount returns the number of snakes on the board.
func (e *Engine) SnakeCount() int {
	return len(e.snakes)
}

// Food returns the current food positions.
func (e *Engine) Food() []Coord {
	return slices.Clone(e.food)
}

// Step runs one iteration of the engine: apply the direction inputs,
// move the snakes, resolve collisions and food, rebuild the board and
// hand it to the view. Directions are from the player's perspective.
// After a collision has ended the game Step does nothing until Reset.
func (e *Engine) Step(inputs []DirectionInput) {
	if e.state != StateRunning {
		return
	}

	e.applyInputs(inputs)

	for _, s := range e.snakes {
		s.Move()
	}

	e.detectCollisions()
	e.eatFood()
	e.updateNextFood()
	e.rebuildBoard()

	if e.view != nil {
		e.view.Draw(e.board, e.dim)
	}
}

// applyInputs sets snake directions from the inputs. Only the last input
// per snake is applied, so a direction can never reverse within a single
// step through two quarter turns.
func (e *Engine) applyInputs(inputs []DirectionInput) {
	latest := make(map[int]Direction, len(inputs))

	for _, in := range inputs {
		if in.Snake < 0 || in.Snake >= len(e.snakes) {
			continue
		}

		latest[in.Snake] = in.Direction
	}

	for idx, d := range latest {
		e.snakes[idx].SetDirection(d)
	}
}

// detectCollisions kills snakes whose head has left the board, entered
// their own body, or hit another snake. All heads are checked against
// the same post-move positions, so two snakes colliding head-on both
// die. Any collision ends the game.
func (e *Engine) detectCollisions() {
	var collided []int

	for i, s := range e.snakes {
		head := s.Head()

		if head.Col < 0 || head.Col >= e.dim.Width ||
			head.Row < 0 || head.Row >= e.dim.Height {
			collided = append(collided, i)
			continue
		}

		for j, other := range e.snakes {
			if i == j {
				if s.inBody(head) {
					collided = append(collided, i)
					break
				}

				continue
			}

			if other.Contains(head) {
				collided = append(collided, i)
				break
			}
		}
	}

	for _, i := range collided {
		e.snakes[i].kill()
	}

	if len(collided) > 0 {
		e.state = StateGameOver
	}
}

// eatFood grows every surviving snake whose head landed on food. When
// two heads reach the same food in one step the lower-indexed snake
// eats it.
func (e *Engine) eatFood() {
	for i, s := range e.snakes {
		if !s.Alive() {
			continue
		}

		idx := slices.Index(e.food, s.Head())
		if idx < 0 {
			continue
		}

		e.food = slices.Delete(e.food, idx, idx+1)
		s.Grow(e.cfg.Growth)
		e.scores[i]++
	}
}

// updateNextFood counts down to the next food spawn.
func (e *Engine) updateNextFood() {
	e.nextFood--
	if e.nextFood > 0 {
		return
	}

	e.spawnFood()
	e.nextFood = e.cfg.FoodInterval
}

// spawnFood places one food item on a uniformly random empty cell. A
// board with no empty cell spawns nothing.
func (e *Engine) spawnFood() {
	occupied := make(map[Coord]struct{})

	for _, s := range e.snakes {
		for _, c := range s.Cells() {
			occupied[c] = struct{}{}
		}
	}

	for _, f := range e.food {
		occupied[f] = struct{}{}
	}

	empty := make([]Coord, 0, e.dim.Width*e.dim.Height-len(occupied))

	for row := range e.dim.Height {
		for col := range e.dim.Width {
			c := Coord{Col: col, Row: row}
			if _, ok := occupied[c]; !ok {
				empty = append(empty, c)
			}
		}
	}

	if len(empty) == 0 {
		return
	}

	e.food = append(e.food, empty[e.rng.Intn(len(empty))])
}

// rebuildBoard clears the board and marks the food and snake cells.
// Cells that have left the board (a head mid wall collision) are not
// written.
func (e *Engine) rebuildBoard() {
	for row := range e.board {
		for col := range e.board[row] {
			e.board[row][col] = CellEmpty
		}
	}

	for _, f := range e.food {
		e.board[f.Row][f.Col] = CellFood
	}

	for _, s := range e.snakes {
		for _, c := range s.Cells() {
			if c.Col < 0 || c.Col >= e.dim.Width || c.Row < 0 || c.Row >= e.dim.Height {
				continue
			}

			e.board[c.Row][c.Col] = CellSnake
		}
	}
}
