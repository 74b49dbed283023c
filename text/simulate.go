// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package text

import "cogentcore.org/glazier/events/key"

// Simulate applies a key press to h the way a minimal input method
// would, for platforms or fields without a real IME. It returns whether
// the key was consumed.
func Simulate(h InputHandler, ev *key.Event) bool {
	if ev == nil || ev.State != key.Down || ev.IsComposing {
		return false
	}
	sel := h.Selection()
	switch ev.Key.Name {
	case key.NoName:
		if ev.Key.Chars == "" || ev.Mods.Has(key.ModControl) || ev.Mods.Has(key.ModMeta) {
			return false
		}
		h.ReplaceRange(sel.Min(), sel.Max(), ev.Key.Chars)
		h.SetCompositionRange(0, 0, false)
	case key.Backspace:
		start := sel.Min()
		if sel.IsCaret() {
			start = prevBoundary(h, sel.Active)
		}
		h.ReplaceRange(start, sel.Max(), "")
	case key.Delete:
		end := sel.Max()
		if sel.IsCaret() {
			end = nextBoundary(h, sel.Active)
		}
		h.ReplaceRange(sel.Min(), end, "")
	case key.ArrowLeft:
		pos := sel.Min()
		if sel.IsCaret() || ev.Mods.Has(key.ModShift) {
			pos = prevBoundary(h, sel.Active)
		}
		h.SetSelection(moveTo(sel, pos, ev.Mods.Has(key.ModShift)))
	case key.ArrowRight:
		pos := sel.Max()
		if sel.IsCaret() || ev.Mods.Has(key.ModShift) {
			pos = nextBoundary(h, sel.Active)
		}
		h.SetSelection(moveTo(sel, pos, ev.Mods.Has(key.ModShift)))
	case key.Home:
		h.SetSelection(moveTo(sel, 0, ev.Mods.Has(key.ModShift)))
	case key.End:
		h.SetSelection(moveTo(sel, h.Len(), ev.Mods.Has(key.ModShift)))
	case key.Enter:
		h.HandleAction(InsertNewLine)
	case key.Tab:
		h.HandleAction(InsertTab)
	case key.Escape:
		h.HandleAction(Cancel)
	default:
		return false
	}
	return true
}

func moveTo(sel Selection, pos int, extend bool) Selection {
	if extend {
		return Selection{Anchor: sel.Anchor, Active: pos}
	}
	return Caret(pos)
}
