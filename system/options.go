// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package system

import (
	"fmt"

	"cogentcore.org/glazier/geom"
)

// WindowLevels are the stacking levels of a window.
type WindowLevels int32

const (
	// LevelNormal is a regular application window.
	LevelNormal WindowLevels = iota

	// LevelTooltip is a borderless window above its owner that does not
	// take focus.
	LevelTooltip

	// LevelDropDown is a popup such as a menu or combo box list.
	LevelDropDown

	// LevelModal is a dialog that blocks input to its owner.
	LevelModal
)

func (l WindowLevels) String() string {
	switch l {
	case LevelTooltip:
		return "Tooltip"
	case LevelDropDown:
		return "DropDown"
	case LevelModal:
		return "Modal"
	}
	return "Normal"
}

// WindowStates are the display states of a window.
type WindowStates int32

const (
	Restored WindowStates = iota
	Maximized
	Minimized
)

func (s WindowStates) String() string {
	switch s {
	case Maximized:
		return "Maximized"
	case Minimized:
		return "Minimized"
	}
	return "Restored"
}

// WindowOptions are the settings a [WindowBuilder] accumulates.
// They are passed to [Driver.Validate] and [Driver.NewWindow].
// Sizes and positions are in dp.
type WindowOptions struct {
	Title string

	// Size is the initial content size.
	Size geom.Size

	// MinSize is the minimum content size; zero means no minimum.
	MinSize geom.Size

	// Position is the initial position of the window on screen;
	// it is only used if HasPosition is set.
	Position    geom.Point
	HasPosition bool

	Resizable    bool
	ShowTitlebar bool
	Transparent  bool
	AlwaysOnTop  bool

	Level WindowLevels
	State WindowStates

	// Menu is the window menu, or nil for none.
	Menu *Menu
}

// DefaultWindowOptions returns the options of a new [WindowBuilder].
func DefaultWindowOptions() WindowOptions {
	return WindowOptions{
		Title:        "glazier",
		Size:         geom.Sz(500, 400),
		Resizable:    true,
		ShowTitlebar: true,
	}
}

// validate checks the options that do not depend on the driver.
func (o *WindowOptions) validate() error {
	if o.Size.Width <= 0 || o.Size.Height <= 0 {
		return &ConfigError{Option: "Size", Reason: fmt.Sprintf("size must be positive, got %v", o.Size)}
	}
	if o.MinSize.Width < 0 || o.MinSize.Height < 0 {
		return &ConfigError{Option: "MinSize", Reason: fmt.Sprintf("minimum size must not be negative, got %v", o.MinSize)}
	}
	if o.MinSize.Width > o.Size.Width || o.MinSize.Height > o.Size.Height {
		return &ConfigError{Option: "MinSize", Reason: fmt.Sprintf("minimum size %v is larger than size %v", o.MinSize, o.Size)}
	}
	if o.Level < LevelNormal || o.Level > LevelModal {
		return &ConfigError{Option: "Level", Reason: fmt.Sprintf("unknown level %d", o.Level)}
	}
	if o.State < Restored || o.State > Minimized {
		return &ConfigError{Option: "WindowState", Reason: fmt.Sprintf("unknown state %d", o.State)}
	}
	return nil
}
