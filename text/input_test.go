// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package text

import (
	"testing"

	"cogentcore.org/glazier/events/key"
	"github.com/stretchr/testify/assert"
)

func press(h InputHandler, k key.Key, mods key.Modifiers) bool {
	return Simulate(h, &key.Event{State: key.Down, Key: k, Mods: mods})
}

func TestSimulateTyping(t *testing.T) {
	b := &BasicInput{}
	assert.True(t, press(b, key.Character("h"), 0))
	assert.True(t, press(b, key.Character("é"), 0))
	assert.True(t, press(b, key.Character("y"), 0))
	assert.Equal(t, "héy", b.Text)
	assert.Equal(t, Caret(len("héy")), b.Selection())

	assert.True(t, press(b, key.Named(key.ArrowLeft), 0))
	assert.True(t, press(b, key.Named(key.Backspace), 0))
	assert.Equal(t, "hy", b.Text, "backspace removes a whole rune")
	assert.Equal(t, Caret(1), b.Selection())

	assert.True(t, press(b, key.Named(key.Delete), 0))
	assert.Equal(t, "h", b.Text)

	assert.False(t, press(b, key.Character("c"), key.ModControl), "shortcuts are not text")
	assert.False(t, Simulate(b, &key.Event{State: key.Up, Key: key.Character("x")}))
	assert.False(t, press(b, key.Named(key.F3), 0))
}

func TestSimulateSelection(t *testing.T) {
	b := &BasicInput{Text: "hello"}
	b.SetSelection(Caret(5))
	assert.True(t, press(b, key.Named(key.ArrowLeft), key.ModShift))
	assert.True(t, press(b, key.Named(key.ArrowLeft), key.ModShift))
	assert.Equal(t, Selection{Anchor: 5, Active: 3}, b.Selection())
	assert.Equal(t, 2, b.Selection().Len())

	assert.True(t, press(b, key.Character("p"), 0))
	assert.Equal(t, "help", b.Text)

	assert.True(t, press(b, key.Named(key.Home), key.ModShift))
	assert.Equal(t, "help", b.Slice(b.Selection().Min(), b.Selection().Max()))
	assert.True(t, press(b, key.Named(key.ArrowRight), 0))
	assert.Equal(t, Caret(4), b.Selection(), "right collapses to the end of the selection")

	assert.True(t, press(b, key.Named(key.Enter), 0))
	assert.True(t, press(b, key.Named(key.Tab), 0))
	assert.Equal(t, []Actions{InsertNewLine, InsertTab}, b.Actions)

	b.SetSelection(Selection{Anchor: -4, Active: 99})
	assert.Equal(t, Selection{Anchor: 0, Active: 4}, b.Selection())
}
