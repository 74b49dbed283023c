// Copyright 2019 Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build cgo && !(android || ios || js)

package desktop

import (
	"slices"

	"cogentcore.org/glazier/system"
	"github.com/go-gl/glfw/v3.3/glfw"
)

// clipboard is the system clipboard. GLFW only exchanges plain text.
type clipboard struct{}

var _ system.Clipboard = &clipboard{}

func (c *clipboard) IsEmpty() bool {
	return glfw.GetClipboardString() == ""
}

func (c *clipboard) Read(types []string) (system.ClipboardFormat, bool) {
	if !slices.Contains(types, system.TextPlain) {
		return system.ClipboardFormat{}, false
	}
	s := glfw.GetClipboardString()
	if s == "" {
		return system.ClipboardFormat{}, false
	}
	return system.ClipboardFormat{Identifier: system.TextPlain, Data: []byte(s)}, true
}

func (c *clipboard) Write(formats ...system.ClipboardFormat) error {
	for _, f := range formats {
		if f.Identifier == system.TextPlain {
			glfw.SetClipboardString(string(f.Data))
			return nil
		}
	}
	return system.ErrUnsupported
}

func (c *clipboard) Clear() {
	glfw.SetClipboardString("")
}
