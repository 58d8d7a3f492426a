// Copyright (c) halvfigur 2026. All rights reserved.
// SPDX-License-Identifier: MIT

package game

// MenuController drives the main menu. Up and down move the selection and
// enter emits the action of the selected entry.
type MenuController struct {
	NopController

	model *MenuModel
}

// NewMenuController returns a controller for model.
func NewMenuController(model *MenuModel) *MenuController {
	return &MenuController{model: model}
}

// Enter resets the selection to the first entry.
func (c *MenuController) Enter(_ int64, _ any) {
	c.model.Refresh()
}

// UpPressed moves the selection up.
func (c *MenuController) UpPressed(_ int64) Action {
	c.model.Prev()
	return Action{}
}

// DownPressed moves the selection down.
func (c *MenuController) DownPressed(_ int64) Action {
	c.model.Next()
	return Action{}
}

// EnterPressed emits the action of the selected entry.
func (c *MenuController) EnterPressed(_ int64) Action {
	return Action{Kind: c.model.Selected().Action}
}
