// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package system

import "cogentcore.org/glazier/events/key"

// Menu is a window menu bar or context menu. Choosing an item delivers
// its ID to the window handler's Command method. Menus are built once
// and then handed to a window; drivers must not modify them.
type Menu struct {
	Items []MenuItem
}

// MenuItem is one entry of a [Menu]. A separator has no other fields
// set; an item with a Submenu has no ID.
type MenuItem struct {
	ID        uint32
	Title     string
	HotKey    *key.HotKey
	Enabled   bool
	Checked   bool
	Submenu   *Menu
	Separator bool
}

// NewMenu returns a new empty menu.
func NewMenu() *Menu {
	return &Menu{}
}

// AddItem adds an item and returns the menu, for chaining.
func (m *Menu) AddItem(id uint32, title string, hk *key.HotKey, enabled, checked bool) *Menu {
	m.Items = append(m.Items, MenuItem{ID: id, Title: title, HotKey: hk, Enabled: enabled, Checked: checked})
	return m
}

// AddSeparator adds a separator line.
func (m *Menu) AddSeparator() *Menu {
	m.Items = append(m.Items, MenuItem{Separator: true})
	return m
}

// AddSubmenu adds a submenu with the given title.
func (m *Menu) AddSubmenu(title string, sub *Menu, enabled bool) *Menu {
	m.Items = append(m.Items, MenuItem{Title: title, Submenu: sub, Enabled: enabled})
	return m
}

// MatchHotKey returns the ID of the first enabled item, searching
// submenus depth first, whose hot key matches ev.
func (m *Menu) MatchHotKey(ev *key.Event) (uint32, bool) {
	if m == nil {
		return 0, false
	}
	for i := range m.Items {
		it := &m.Items[i]
		if !it.Enabled {
			continue
		}
		if it.Submenu != nil {
			if id, ok := it.Submenu.MatchHotKey(ev); ok {
				return id, true
			}
			continue
		}
		if it.HotKey != nil && it.HotKey.Matches(ev) {
			return it.ID, true
		}
	}
	return 0, false
}

// Walk calls fn for every item, depth first.
func (m *Menu) Walk(fn func(it *MenuItem, depth int)) {
	m.walk(fn, 0)
}

func (m *Menu) walk(fn func(it *MenuItem, depth int), depth int) {
	if m == nil {
		return
	}
	for i := range m.Items {
		fn(&m.Items[i], depth)
		m.Items[i].Submenu.walk(fn, depth+1)
	}
}
