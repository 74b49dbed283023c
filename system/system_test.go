// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package system

import (
	"sync"
	"testing"
	"time"

	"cogentcore.org/glazier/events/key"
	"cogentcore.org/glazier/geom"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTimerHeap(t *testing.T) {
	now := time.Now()
	var h timerHeap
	h.add(timerEntry{deadline: now.Add(30 * time.Millisecond), tok: 1})
	h.add(timerEntry{deadline: now.Add(10 * time.Millisecond), tok: 2})
	h.add(timerEntry{deadline: now.Add(10 * time.Millisecond), tok: 4})
	h.add(timerEntry{deadline: now.Add(10 * time.Millisecond), tok: 3})

	next, ok := h.next()
	require.True(t, ok)
	assert.Equal(t, now.Add(10*time.Millisecond), next)

	assert.Empty(t, h.popDue(now))
	due := h.popDue(now.Add(20 * time.Millisecond))
	require.Len(t, due, 3)
	assert.Equal(t, []TimerToken{2, 3, 4}, []TimerToken{due[0].tok, due[1].tok, due[2].tok})
	due = h.popDue(now.Add(time.Second))
	require.Len(t, due, 1)
	assert.Equal(t, TimerToken(1), due[0].tok)
	_, ok = h.next()
	assert.False(t, ok)
}

func TestTokensUnique(t *testing.T) {
	const n = 100
	var mu sync.Mutex
	seen := map[TimerToken]bool{}
	var wg sync.WaitGroup
	for range 4 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range n {
				tok := NextTimerToken()
				mu.Lock()
				seen[tok] = true
				mu.Unlock()
			}
		}()
	}
	wg.Wait()
	assert.Len(t, seen, 4*n)
	assert.False(t, seen[0])
	assert.False(t, TimerToken(0).IsValid())
	assert.True(t, NextIdleToken().IsValid())
	assert.Equal(t, "field#7", TextFieldToken(7).String())
}

func TestWindowOptionsValidate(t *testing.T) {
	o := DefaultWindowOptions()
	assert.NoError(t, o.validate())

	o.Size = geom.Sz(0, 100)
	var ce *ConfigError
	require.ErrorAs(t, o.validate(), &ce)
	assert.Equal(t, "Size", ce.Option)

	o = DefaultWindowOptions()
	o.MinSize = geom.Sz(1000, 10)
	require.ErrorAs(t, o.validate(), &ce)
	assert.Equal(t, "MinSize", ce.Option)

	o = DefaultWindowOptions()
	o.Level = 42
	require.ErrorAs(t, o.validate(), &ce)
	assert.Equal(t, "Level", ce.Option)
}

func TestMenuMatchHotKey(t *testing.T) {
	save := hotKey(key.ModControl, "s")
	quit := hotKey(key.ModControl, "q")
	disabled := hotKey(key.ModControl, "d")
	sub := NewMenu().AddItem(2, "Quit", &quit, true, false)
	m := NewMenu().
		AddItem(1, "Save", &save, true, false).
		AddItem(3, "Delete", &disabled, false, false).
		AddSeparator().
		AddSubmenu("More", sub, true)

	id, ok := m.MatchHotKey(key.NewEvent(key.Down, key.CodeS, key.ModControl))
	assert.True(t, ok)
	assert.Equal(t, uint32(1), id)

	id, ok = m.MatchHotKey(key.NewEvent(key.Down, key.CodeQ, key.ModControl))
	assert.True(t, ok)
	assert.Equal(t, uint32(2), id)

	_, ok = m.MatchHotKey(key.NewEvent(key.Down, key.CodeD, key.ModControl))
	assert.False(t, ok, "disabled items do not match")
	_, ok = m.MatchHotKey(key.NewEvent(key.Down, key.CodeS, 0))
	assert.False(t, ok)
	_, ok = (*Menu)(nil).MatchHotKey(key.NewEvent(key.Down, key.CodeS, key.ModControl))
	assert.False(t, ok)

	var titles []string
	m.Walk(func(it *MenuItem, depth int) {
		if !it.Separator {
			titles = append(titles, it.Title)
		}
	})
	assert.Equal(t, []string{"Save", "Delete", "More", "Quit"}, titles)
}

func hotKey(mods key.Modifiers, chars string) key.HotKey {
	return key.NewHotKey(mods, key.Character(chars))
}

func TestMemClipboard(t *testing.T) {
	var c MemClipboard
	assert.True(t, c.IsEmpty())
	require.NoError(t, c.Write(
		ClipboardFormat{Identifier: TextHTML, Data: []byte("<b>hi</b>")},
		ClipboardFormat{Identifier: TextPlain, Data: []byte("hi")},
	))
	assert.False(t, c.IsEmpty())
	f, ok := c.Read([]string{"image/png", TextPlain, TextHTML})
	require.True(t, ok)
	assert.Equal(t, TextPlain, f.Identifier)
	s, ok := ClipboardString(&c)
	assert.True(t, ok)
	assert.Equal(t, "hi", s)

	require.NoError(t, ClipboardPutString(&c, "there"))
	_, ok = c.Read([]string{TextHTML})
	assert.False(t, ok, "write replaces all formats")
	c.Clear()
	assert.True(t, c.IsEmpty())

	var base ClipboardBase
	assert.ErrorIs(t, base.Write(), ErrUnsupported)
}

func TestNormalizeLocale(t *testing.T) {
	assert.Equal(t, "fr-CA", NormalizeLocale("fr_CA.UTF-8"))
	assert.Equal(t, "en-US", NormalizeLocale("en_US"))
	assert.Equal(t, "de", NormalizeLocale("de"))
	assert.Equal(t, "de-DE", NormalizeLocale("de_DE@euro"))
	assert.Equal(t, DefaultLocale, NormalizeLocale("C"))
	assert.Equal(t, DefaultLocale, NormalizeLocale(""))
	assert.Equal(t, DefaultLocale, NormalizeLocale("!!not a locale"))
}

func TestScreens(t *testing.T) {
	ms := []Monitor{
		{Name: "a", Rect: geom.R(0, 0, 100, 100)},
		{Name: "b", Primary: true, Rect: geom.R(100, 0, 300, 50)},
	}
	p, ok := PrimaryMonitor(ms)
	assert.True(t, ok)
	assert.Equal(t, "b", p.Name)
	assert.Equal(t, geom.R(0, 0, 300, 100), VirtualScreenRect(ms))
	_, ok = PrimaryMonitor(nil)
	assert.False(t, ok)
}

func TestFileSpecMatches(t *testing.T) {
	fs := FileSpec{Name: "Image", Extensions: []string{"png", "JPG"}}
	assert.True(t, fs.Matches("a/b/photo.jpg"))
	assert.True(t, fs.Matches("x.PNG"))
	assert.False(t, fs.Matches("x.gif"))
	assert.False(t, fs.Matches("png"))
}

func TestErrors(t *testing.T) {
	ie := &InitError{Driver: "x11", Err: assert.AnError}
	assert.ErrorIs(t, ie, assert.AnError)
	assert.Contains(t, ie.Error(), "x11")
	assert.Contains(t, Unsupported("Transparent", "x11").Error(), "Transparent")
	assert.Contains(t, (&ThreadError{Op: "Window.Show"}).Error(), "Window.Show")
}
