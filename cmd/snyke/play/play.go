// Copyright (c) halvfigur 2026. All rights reserved.
// SPDX-License-Identifier: MIT

// Package play provides the command that runs the game in the terminal.
package play

import (
	"context"
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/halvfigur/snyke/internal/config"
	"github.com/halvfigur/snyke/internal/ctxlog"
	"github.com/halvfigur/snyke/internal/engine"
	"github.com/halvfigur/snyke/internal/game"
	"github.com/halvfigur/snyke/internal/ui"
	"github.com/spf13/afero"
	"github.com/urfave/cli/v3"
)

const (
	configFlag       = "config"
	widthFlag        = "width"
	heightFlag       = "height"
	snakesFlag       = "snakes"
	snakeLengthFlag  = "snake-length"
	foodIntervalFlag = "food-interval"
	growthFlag       = "growth"
	stepIntervalFlag = "step-interval"
	frameRateFlag    = "frame-rate"
	cliExitStr       = ""
)

// ErrRunGame is returned when the game terminates abnormally.
var ErrRunGame = errors.New("failed to run game")

// PlayCmd is the command that runs the snake game in the terminal.
var PlayCmd = &cli.Command{
	Name: "play",
	Description: `Play snake in the terminal.
The board, snake and pacing parameters come from the configuration file,
layered over the built-in defaults. Any flag given here overrides the
corresponding configuration value for this session only.

Steer with the arrow keys or h/j/k/l. Enter confirms menu selections and,
after a game over, returns to the menu. Quit with q or Ctrl+C.`,
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:      configFlag,
			Aliases:   []string{"c"},
			Usage:     "Path to the configuration file. Defaults to " + config.DefaultPath + " in the current directory.",
			TakesFile: true,
			Value:     "",
			OnlyOnce:  true,
		},
		&cli.IntFlag{
			Name:  widthFlag,
			Usage: "Board width in cells",
		},
		&cli.IntFlag{
			Name:  heightFlag,
			Usage: "Board height in cells",
		},
		&cli.IntFlag{
			Name:  snakesFlag,
			Usage: "Number of snakes on the board",
		},
		&cli.IntFlag{
			Name:  snakeLengthFlag,
			Usage: "Initial snake length in cells",
		},
		&cli.IntFlag{
			Name:  foodIntervalFlag,
			Usage: "Number of steps between food spawns",
		},
		&cli.IntFlag{
			Name:  growthFlag,
			Usage: "Number of cells a snake grows per food eaten",
		},
		&cli.IntFlag{
			Name:  stepIntervalFlag,
			Usage: "Milliseconds between game steps. Lower is faster.",
		},
		&cli.IntFlag{
			Name:  frameRateFlag,
			Usage: "Terminal frames per second",
		},
	},
	Action: actionFunc,
}

func actionFunc(ctx context.Context, cmd *cli.Command) error {
	logger := ctxlog.Logger(ctx).With("command", cmd.Name)
	logger.Debug("Running play command")

	cfg, err := config.Load(afero.NewOsFs(), cmd.String(configFlag))
	if err != nil {
		logger.Error(fmt.Sprintf("Failed to load configuration: %s", err.Error()))
		return cli.Exit(cliExitStr, 1)
	}

	applyOverrides(cmd, &cfg.Game)

	if err := cfg.Validate(); err != nil {
		logger.Error(fmt.Sprintf("Invalid configuration: %s", err.Error()))
		return cli.Exit(cliExitStr, 1)
	}

	model, err := newGame(cfg.Game)
	if err != nil {
		logger.Error(fmt.Sprintf("Failed to set up game: %s", err.Error()))
		return cli.Exit(cliExitStr, 1)
	}

	// The TUI owns the terminal from here on, so logging is dropped
	// rather than smeared across the board.
	teaCtx := ctxlog.Discard(ctx)

	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(teaCtx))
	if _, err := p.Run(); err != nil {
		if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			return nil
		}

		return errors.Join(ErrRunGame, err)
	}

	return nil
}

// applyOverrides copies every game flag the user actually set onto the
// loaded configuration. Values are validated afterwards with the rest of
// the configuration, so a bad flag reports the same way as a bad file.
func applyOverrides(cmd *cli.Command, game *config.GameConfig) {
	overrides := []struct {
		flag string
		dst  *int
	}{
		{widthFlag, &game.Width},
		{heightFlag, &game.Height},
		{snakesFlag, &game.Snakes},
		{snakeLengthFlag, &game.SnakeLength},
		{foodIntervalFlag, &game.FoodInterval},
		{growthFlag, &game.Growth},
		{stepIntervalFlag, &game.StepIntervalMs},
		{frameRateFlag, &game.FrameRate},
	}

	for _, o := range overrides {
		if cmd.IsSet(o.flag) {
			*o.dst = cmd.Int(o.flag)
		}
	}
}

// newGame wires the engine, session models, controllers and multiplexer
// into a terminal model ready to hand to bubbletea.
func newGame(cfg config.GameConfig) (*ui.Model, error) {
	engCfg := cfg.EngineConfig()

	board := ui.NewBoardBuffer(engCfg.Dim)

	eng, err := engine.New(board, engCfg, nil)
	if err != nil {
		return nil, err
	}

	gameModel := game.NewGameModel(eng, cfg.StepInterval())
	menuModel := game.NewMenuModel()

	gameCtrl := game.NewGameController(gameModel)
	menuCtrl := game.NewMenuController(menuModel)

	mux := game.NewMultiplexer(menuCtrl, gameCtrl)

	return ui.NewModel(ui.Params{
		Mux:            mux,
		MenuController: menuCtrl,
		GameController: gameCtrl,
		MenuModel:      menuModel,
		GameModel:      gameModel,
		Board:          board,
		FrameRate:      cfg.FrameRate,
	}), nil
}
