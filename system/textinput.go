// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package system

import (
	"cogentcore.org/glazier/text"
)

// TextInput is the text input surface of a window. The handler
// registers its text fields here; the input method of the platform, or
// a simple simulation of one, then edits the focused field through the
// handler's AcquireInputLock.
type TextInput struct {
	w *Window

	// fields are the registered fields.
	fields map[TextFieldToken]bool

	focused TextFieldToken
}

// AddTextField registers a new text field and returns its token.
func (ti *TextInput) AddTextField() TextFieldToken {
	if ti.w.gone("TextInput.AddTextField") {
		return 0
	}
	if ti.fields == nil {
		ti.fields = make(map[TextFieldToken]bool)
	}
	tok := NextTextFieldToken()
	ti.fields[tok] = true
	return tok
}

// RemoveTextField unregisters a text field, unfocusing it if needed.
func (ti *TextInput) RemoveTextField(tok TextFieldToken) {
	if ti.w.gone("TextInput.RemoveTextField") {
		return
	}
	delete(ti.fields, tok)
	if ti.focused == tok {
		ti.setFocused(0)
	}
}

// SetFocusedTextField sets the field that receives text input;
// zero means none. Unknown tokens are ignored.
func (ti *TextInput) SetFocusedTextField(tok TextFieldToken) {
	if ti.w.gone("TextInput.SetFocusedTextField") {
		return
	}
	if tok != 0 && !ti.fields[tok] {
		return
	}
	ti.setFocused(tok)
}

func (ti *TextInput) setFocused(tok TextFieldToken) {
	if ti.focused == tok {
		return
	}
	ti.focused = tok
	if ip, ok := ti.w.native.(TextInputer); ok {
		ip.TextFieldFocused(tok)
	}
}

// FocusedTextField returns the focused field, or zero.
func (ti *TextInput) FocusedTextField() TextFieldToken {
	ti.w.app.checkThread("TextInput.FocusedTextField")
	return ti.focused
}

// UpdateTextField tells the input method that a field changed other
// than through it, such as by a paste.
func (ti *TextInput) UpdateTextField(tok TextFieldToken, ev text.Events) {
	if ti.w.gone("TextInput.UpdateTextField") || !ti.fields[tok] {
		return
	}
	if ip, ok := ti.w.native.(TextInputer); ok {
		ip.TextFieldUpdated(tok, ev)
	}
}
