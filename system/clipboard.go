// Copyright (c) 2018, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package system

import (
	"slices"
	"sync"
)

// MIME types commonly used with the clipboard.
const (
	TextPlain = "text/plain"
	TextHTML  = "text/html"
)

// ClipboardFormat is one representation of the clipboard contents,
// identified by its MIME type.
type ClipboardFormat struct {
	Identifier string
	Data       []byte
}

// Clipboard defines the methods for reading and writing data to
// the system clipboard. Data is written as one or more formats of the
// same content; readers ask for the formats they understand, in
// preference order.
type Clipboard interface {

	// IsEmpty returns true if there is nothing on the clipboard to read.
	// Can be used for disabling a Paste menu.
	IsEmpty() bool

	// Read returns the first of the given types present on the
	// clipboard, or false if none are.
	Read(types []string) (ClipboardFormat, bool)

	// Write replaces the clipboard contents with the given formats.
	// In general having a text/plain representation of the data in
	// addition to a more specific format is a good idea.
	Write(formats ...ClipboardFormat) error

	// Clear clears the clipboard.
	Clear()
}

// ClipboardString returns the plain text on the clipboard.
func ClipboardString(c Clipboard) (string, bool) {
	f, ok := c.Read([]string{TextPlain})
	if !ok {
		return "", false
	}
	return string(f.Data), true
}

// ClipboardPutString writes plain text to the clipboard.
func ClipboardPutString(c Clipboard, s string) error {
	return c.Write(ClipboardFormat{Identifier: TextPlain, Data: []byte(s)})
}

// ClipboardBase is a basic implementation of [Clipboard] that does nothing.
type ClipboardBase struct{}

var _ Clipboard = &ClipboardBase{}

func (bb *ClipboardBase) IsEmpty() bool                               { return true }
func (bb *ClipboardBase) Read(types []string) (ClipboardFormat, bool) { return ClipboardFormat{}, false }
func (bb *ClipboardBase) Write(formats ...ClipboardFormat) error      { return ErrUnsupported }
func (bb *ClipboardBase) Clear()                                      {}

// MemClipboard is an in-process [Clipboard], used by drivers without
// access to a system clipboard. It is safe for concurrent use.
type MemClipboard struct {
	mu      sync.Mutex
	formats []ClipboardFormat
}

var _ Clipboard = &MemClipboard{}

func (mc *MemClipboard) IsEmpty() bool {
	mc.mu.Lock()
	defer mc.mu.Unlock()
	return len(mc.formats) == 0
}

func (mc *MemClipboard) Read(types []string) (ClipboardFormat, bool) {
	mc.mu.Lock()
	defer mc.mu.Unlock()
	for _, t := range types {
		i := slices.IndexFunc(mc.formats, func(f ClipboardFormat) bool { return f.Identifier == t })
		if i >= 0 {
			f := mc.formats[i]
			return ClipboardFormat{Identifier: f.Identifier, Data: slices.Clone(f.Data)}, true
		}
	}
	return ClipboardFormat{}, false
}

func (mc *MemClipboard) Write(formats ...ClipboardFormat) error {
	mc.mu.Lock()
	defer mc.mu.Unlock()
	mc.formats = mc.formats[:0]
	for _, f := range formats {
		mc.formats = append(mc.formats, ClipboardFormat{Identifier: f.Identifier, Data: slices.Clone(f.Data)})
	}
	return nil
}

func (mc *MemClipboard) Clear() {
	mc.mu.Lock()
	defer mc.mu.Unlock()
	mc.formats = nil
}
