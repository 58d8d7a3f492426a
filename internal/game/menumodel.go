// Copyright (c) halvfigur 2026. All rights reserved.
// SPDX-License-Identifier: MIT

package game

// MenuItem is one selectable entry of the main menu.
type MenuItem struct {
	Label  string
	Action ActionKind
}

// MenuModel holds the ordered main menu entries and the current selection.
type MenuModel struct {
	items []MenuItem
	index int
}

// NewMenuModel returns the main menu.
func NewMenuModel() *MenuModel {
	return &MenuModel{
		items: []MenuItem{
			{Label: "New Game", Action: ActionNewGame},
			{Label: "Exit", Action: ActionExitGame},
		},
	}
}

// Prev moves the selection up, wrapping at the top.
func (m *MenuModel) Prev() {
	m.index = (m.index + len(m.items) - 1) % len(m.items)
}

// Next moves the selection down, wrapping at the bottom.
func (m *MenuModel) Next() {
	m.index = (m.index + 1) % len(m.items)
}

// Selected returns the currently selected entry.
func (m *MenuModel) Selected() MenuItem {
	return m.items[m.index]
}

// Refresh resets the selection to the first entry.
func (m *MenuModel) Refresh() {
	m.index = 0
}

// Items returns the menu entries in display order.
func (m *MenuModel) Items() []MenuItem {
	return m.items
}

// Index returns the position of the current selection.
func (m *MenuModel) Index() int {
	return m.index
}
