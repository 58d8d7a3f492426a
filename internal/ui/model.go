// Copyright (c) halvfigur 2026. All rights reserved.
// SPDX-License-Identifier: MIT

package ui

import (
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/halvfigur/snyke/internal/engine"
	"github.com/halvfigur/snyke/internal/game"
)

const defaultFrameRate = 30

// tickMsg drives one frame update.
type tickMsg time.Time

// Params wires a Model to the game layer. The controllers passed here
// must be the same values the multiplexer routes to, so the renderer can
// tell which screen is active.
type Params struct {
	Mux            *game.Multiplexer
	MenuController game.Controller
	GameController game.Controller
	MenuModel      *game.MenuModel
	GameModel      *game.GameModel
	Board          *BoardBuffer
	// FrameRate is in frames per second. Zero selects the default.
	FrameRate int
}

// Model is the bubbletea model for the game. Key presses and frame ticks
// are translated into multiplexer events; an ExitGame action from either
// quits the program.
type Model struct {
	mux       *game.Multiplexer
	menuCtrl  game.Controller
	gameCtrl  game.Controller
	menuModel *game.MenuModel
	gameModel *game.GameModel
	board     *BoardBuffer

	keys   keyMap
	help   help.Model
	styles Styles

	start         time.Time
	frameInterval time.Duration
	width         int
	height        int
	quitting      bool
}

// NewModel returns a model ready to be run by a bubbletea program.
func NewModel(p Params) *Model {
	frameRate := p.FrameRate
	if frameRate <= 0 {
		frameRate = defaultFrameRate
	}

	return &Model{
		mux:           p.Mux,
		menuCtrl:      p.MenuController,
		gameCtrl:      p.GameController,
		menuModel:     p.MenuModel,
		gameModel:     p.GameModel,
		board:         p.Board,
		keys:          defaultKeyMap(),
		help:          help.New(),
		styles:        defaultStyles(),
		start:         time.Now(),
		frameInterval: time.Second / time.Duration(frameRate),
	}
}

// tick returns milliseconds of elapsed program time, the time base the
// game layer paces itself with.
func (m *Model) tick() int64 {
	return time.Since(m.start).Milliseconds()
}

func (m *Model) tickCmd() tea.Cmd {
	return tea.Tick(m.frameInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	m.mux.Enter(m.tick())
	return m.tickCmd()
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tickMsg:
		if action := m.mux.Update(m.tick()); action.Kind == game.ActionExitGame {
			m.quitting = true
			return m, tea.Quit
		}

		return m, m.tickCmd()

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
	}

	return m, nil
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	tick := m.tick()

	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Up):
		m.mux.UpPressed(tick)

	case key.Matches(msg, m.keys.Down):
		m.mux.DownPressed(tick)

	case key.Matches(msg, m.keys.Left):
		m.mux.LeftPressed(tick)

	case key.Matches(msg, m.keys.Right):
		m.mux.RightPressed(tick)

	case key.Matches(msg, m.keys.Enter):
		if action := m.mux.EnterPressed(tick); action.Kind == game.ActionExitGame {
			m.quitting = true
			return m, tea.Quit
		}
	}

	return m, nil
}

// View implements tea.Model.
func (m *Model) View() string {
	if m.quitting {
		return ""
	}

	if m.mux.Active() == m.menuCtrl {
		return m.renderMenu()
	}

	return m.renderGame()
}

func (m *Model) renderMenu() string {
	var b strings.Builder

	b.WriteString(m.styles.Title.Render("🐍 snyke"))
	b.WriteString("\n\n")

	for i, item := range m.menuModel.Items() {
		if i == m.menuModel.Index() {
			b.WriteString(m.styles.MenuSelected.Render("▸ " + item.Label))
		} else {
			b.WriteString(m.styles.MenuItem.Render("  " + item.Label))
		}

		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.styles.Help.Render(m.help.View(m.keys)))

	return b.String()
}

func (m *Model) renderGame() string {
	var b strings.Builder

	b.WriteString(m.styles.Title.Render("🐍 snyke"))
	b.WriteString("  ")
	b.WriteString(m.styles.Score.Render(m.renderScores()))
	b.WriteString("\n")

	b.WriteString(m.styles.Board.Render(m.renderBoard()))
	b.WriteString("\n")

	if m.gameModel.State() == engine.StateGameOver {
		b.WriteString(m.styles.GameOver.Render("Game over. Press enter for the menu."))
		b.WriteString("\n")
	}

	b.WriteString(m.styles.Help.Render(m.help.View(m.keys)))

	return b.String()
}

func (m *Model) renderScores() string {
	scores := m.gameModel.Scores()

	parts := make([]string, len(scores))
	for i, s := range scores {
		parts[i] = strconv.Itoa(s)
	}

	return "score " + strings.Join(parts, " · ")
}

// renderBoard draws each cell two characters wide to roughly square the
// terminal's character aspect ratio.
func (m *Model) renderBoard() string {
	board := m.board.Board()

	rows := make([]string, 0, len(board))

	var row strings.Builder
	for _, cells := range board {
		row.Reset()

		for _, c := range cells {
			switch c {
			case engine.CellSnake:
				row.WriteString(m.styles.Snake.Render("██"))
			case engine.CellFood:
				row.WriteString(m.styles.Food.Render("● "))
			default:
				row.WriteString("  ")
			}
		}

		rows = append(rows, row.String())
	}

	return strings.Join(rows, "\n")
}
