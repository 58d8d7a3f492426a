// Copyright (c) halvfigur 2026. All rights reserved.
// SPDX-License-Identifier: MIT

package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/goccy/go-yaml"
	"github.com/hashicorp/go-multierror"
	"github.com/spf13/afero"

	"github.com/halvfigur/snyke/internal/engine"
)

// DefaultPath is where configuration is looked for when no path is given.
// The dotfile name keeps it apart from the taskfile, which claims
// snyke.yaml.
const DefaultPath = ".snyke.yaml"

var (
	// ErrConfigRead is returned when an explicitly given config file
	// cannot be read.
	ErrConfigRead = errors.New("cannot read config file")
	// ErrConfigParse is returned when the config file is not valid YAML.
	ErrConfigParse = errors.New("cannot parse config file")

	// ErrInvalidDimensions is returned when the board geometry is not positive.
	ErrInvalidDimensions = errors.New("board dimensions must be positive")
	// ErrInvalidSnakes is returned when the snake count is not positive.
	ErrInvalidSnakes = errors.New("snake count must be positive")
	// ErrInvalidSnakeLength is returned when the snake length is not positive.
	ErrInvalidSnakeLength = errors.New("snake length must be positive")
	// ErrInvalidFoodInterval is returned when the food interval is not positive.
	ErrInvalidFoodInterval = errors.New("food interval must be positive")
	// ErrInvalidGrowth is returned when the growth is not positive.
	ErrInvalidGrowth = errors.New("growth must be positive")
	// ErrInvalidStepInterval is returned when the step interval is not positive.
	ErrInvalidStepInterval = errors.New("step interval must be positive")
	// ErrInvalidFrameRate is returned when the frame rate is not positive.
	ErrInvalidFrameRate = errors.New("frame rate must be positive")
)

// Config is the application configuration.
type Config struct {
	Game  GameConfig  `yaml:"game"`
	Tasks TasksConfig `yaml:"tasks"`
}

// GameConfig holds the game parameters.
type GameConfig struct {
	Width          int `yaml:"width"`
	Height         int `yaml:"height"`
	Snakes         int `yaml:"snakes"`
	SnakeLength    int `yaml:"snake_length"`
	FoodInterval   int `yaml:"food_interval"`
	Growth         int `yaml:"growth"`
	StepIntervalMs int `yaml:"step_interval_ms"`
	FrameRate      int `yaml:"frame_rate"`
}

// TasksConfig holds the task runner defaults.
type TasksConfig struct {
	// File is the taskfile to load. Empty selects the standard
	// discovery order.
	File string `yaml:"file"`
}

// Default returns the embedded default configuration.
func Default() Config {
	return Config{
		Game: GameConfig{
			Width:          32,
			Height:         24,
			Snakes:         1,
			SnakeLength:    5,
			FoodInterval:   10,
			Growth:         3,
			StepIntervalMs: 120,
			FrameRate:      30,
		},
	}
}

// Load reads the configuration at path, layered over the defaults. An
// empty path selects DefaultPath, which is allowed to be absent; an
// explicitly given path is not.
func Load(fs afero.Fs, path string) (Config, error) {
	cfg := Default()

	explicit := path != ""
	if !explicit {
		path = DefaultPath
	}

	exists, err := afero.Exists(fs, path)
	if err != nil {
		return Config{}, fmt.Errorf("%w: %s: %w", ErrConfigRead, path, err)
	}

	if !exists {
		if explicit {
			return Config{}, fmt.Errorf("%w: %s", ErrConfigRead, path)
		}

		return cfg, nil
	}

	data, err := afero.ReadFile(fs, path)
	if err != nil {
		return Config{}, fmt.Errorf("%w: %s: %w", ErrConfigRead, path, err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("%w: %s: %w", ErrConfigParse, path, err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Validate checks every field and reports all violations at once.
func (c Config) Validate() error {
	var errs *multierror.Error

	if c.Game.Width <= 0 || c.Game.Height <= 0 {
		errs = multierror.Append(errs, fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, c.Game.Width, c.Game.Height))
	}

	if c.Game.Snakes <= 0 {
		errs = multierror.Append(errs, fmt.Errorf("%w: %d", ErrInvalidSnakes, c.Game.Snakes))
	}

	if c.Game.SnakeLength <= 0 {
		errs = multierror.Append(errs, fmt.Errorf("%w: %d", ErrInvalidSnakeLength, c.Game.SnakeLength))
	}

	if c.Game.FoodInterval <= 0 {
		errs = multierror.Append(errs, fmt.Errorf("%w: %d", ErrInvalidFoodInterval, c.Game.FoodInterval))
	}

	if c.Game.Growth <= 0 {
		errs = multierror.Append(errs, fmt.Errorf("%w: %d", ErrInvalidGrowth, c.Game.Growth))
	}

	if c.Game.StepIntervalMs <= 0 {
		errs = multierror.Append(errs, fmt.Errorf("%w: %d", ErrInvalidStepInterval, c.Game.StepIntervalMs))
	}

	if c.Game.FrameRate <= 0 {
		errs = multierror.Append(errs, fmt.Errorf("%w: %d", ErrInvalidFrameRate, c.Game.FrameRate))
	}

	return errs.ErrorOrNil()
}

// YAML renders the configuration as YAML.
func (c Config) YAML() ([]byte, error) {
	data, err := yaml.Marshal(c)
	if err != nil {
		return nil, fmt.Errorf("cannot marshal config: %w", err)
	}

	return data, nil
}

// Write stores the configuration at path.
func (c Config) Write(fs afero.Fs, path string) error {
	data, err := c.YAML()
	if err != nil {
		return err
	}

	if err := afero.WriteFile(fs, path, data, 0o644); err != nil {
		return fmt.Errorf("cannot write config file %s: %w", path, err)
	}

	return nil
}

// EngineConfig maps the game parameters onto an engine configuration.
func (g GameConfig) EngineConfig() engine.Config {
	return engine.Config{
		Dim: engine.Dimension{
			Width:  g.Width,
			Height: g.Height,
		},
		Snakes:       g.Snakes,
		SnakeLength:  g.SnakeLength,
		FoodInterval: g.FoodInterval,
		Growth:       g.Growth,
	}
}

// StepInterval returns the engine step interval as a duration.
func (g GameConfig) StepInterval() time.Duration {
	return time.Duration(g.StepIntervalMs) * time.Millisecond
}
