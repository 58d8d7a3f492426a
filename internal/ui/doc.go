// Copyright (c) halvfigur 2026. All rights reserved.
// SPDX-License-Identifier: MIT

// Package ui renders the game in the terminal. A bubbletea program feeds
// key presses and frame ticks into the game multiplexer and draws either
// the main menu or the board, which the engine publishes through a
// BoardBuffer after every step.
package ui
