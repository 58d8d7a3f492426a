// Copyright (c) halvfigur 2026. All rights reserved.
// SPDX-License-Identifier: MIT

// Package game connects player input to the engine. Controllers translate
// key events into model operations, the multiplexer routes events to the
// active controller and performs screen switches, and GameModel paces the
// engine so that it advances at a fixed interval regardless of the frame
// rate of the terminal front end.
package game
