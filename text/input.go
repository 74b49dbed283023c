// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package text is the narrow surface between a window's text fields and
// the platform input method (IME). Offsets are UTF-8 byte offsets.
package text

import "unicode/utf8"

// Affinity is the side of a line break a caret sticks to.
type Affinity int32

const (
	Downstream Affinity = iota
	Upstream
)

// Selection is a range of text, which is a caret when it is empty.
// Anchor is the fixed end and Active the end that moves with the cursor;
// Active may come before Anchor.
type Selection struct {
	Anchor   int
	Active   int
	Affinity Affinity
}

// Caret returns an empty selection at pos.
func Caret(pos int) Selection {
	return Selection{Anchor: pos, Active: pos}
}

// Min returns the smaller offset of the selection.
func (s Selection) Min() int { return min(s.Anchor, s.Active) }

// Max returns the larger offset of the selection.
func (s Selection) Max() int { return max(s.Anchor, s.Active) }

// Len returns the length of the selection in bytes.
func (s Selection) Len() int { return s.Max() - s.Min() }

// IsCaret returns whether the selection is empty.
func (s Selection) IsCaret() bool { return s.Anchor == s.Active }

// Events tell the input method that a text field changed behind its back.
type Events int32

const (
	// LayoutChanged means the field moved or was re-laid out.
	LayoutChanged Events = iota
	// SelectionChanged means the selection changed.
	SelectionChanged
	// Reset means the whole content changed.
	Reset
)

func (e Events) String() string {
	switch e {
	case SelectionChanged:
		return "SelectionChanged"
	case Reset:
		return "Reset"
	}
	return "LayoutChanged"
}

// Actions are editing commands an input method can ask a field to perform.
type Actions int32

const (
	InsertNewLine Actions = iota
	InsertTab
	Cancel
)

// InputHandler is implemented by an application text field. A window
// handler hands one out from AcquireInputLock; it is only used while
// the lock is held.
type InputHandler interface {
	Selection() Selection
	SetSelection(sel Selection)
	// CompositionRange returns the range of the active IME composition.
	CompositionRange() (start, end int, ok bool)
	SetCompositionRange(start, end int, ok bool)
	Len() int
	Slice(start, end int) string
	// ReplaceRange replaces the given range with s, updating the
	// selection to a caret after the inserted text.
	ReplaceRange(start, end int, s string)
	HandleAction(a Actions)
}

// BasicInput is a simple in-memory [InputHandler].
type BasicInput struct {
	Text    string
	sel     Selection
	comp    [2]int
	hasComp bool
	// Actions records the actions handled, in order.
	Actions []Actions
}

var _ InputHandler = &BasicInput{}

func (b *BasicInput) Selection() Selection { return b.sel }

func (b *BasicInput) SetSelection(sel Selection) {
	sel.Anchor = clamp(sel.Anchor, len(b.Text))
	sel.Active = clamp(sel.Active, len(b.Text))
	b.sel = sel
}

func (b *BasicInput) CompositionRange() (int, int, bool) {
	return b.comp[0], b.comp[1], b.hasComp
}

func (b *BasicInput) SetCompositionRange(start, end int, ok bool) {
	b.comp = [2]int{start, end}
	b.hasComp = ok
}

func (b *BasicInput) Len() int { return len(b.Text) }

func (b *BasicInput) Slice(start, end int) string {
	start, end = clamp(start, len(b.Text)), clamp(end, len(b.Text))
	return b.Text[start:end]
}

func (b *BasicInput) ReplaceRange(start, end int, s string) {
	start, end = clamp(start, len(b.Text)), clamp(end, len(b.Text))
	b.Text = b.Text[:start] + s + b.Text[end:]
	b.sel = Caret(start + len(s))
}

func (b *BasicInput) HandleAction(a Actions) {
	b.Actions = append(b.Actions, a)
}

func clamp(v, n int) int {
	return max(0, min(v, n))
}

// prevBoundary returns the offset of the rune before pos in h.
func prevBoundary(h InputHandler, pos int) int {
	if pos <= 0 {
		return 0
	}
	start := max(0, pos-utf8.UTFMax)
	s := h.Slice(start, pos)
	_, size := utf8.DecodeLastRuneInString(s)
	return pos - size
}

// nextBoundary returns the offset of the rune after pos in h.
func nextBoundary(h InputHandler, pos int) int {
	n := h.Len()
	if pos >= n {
		return n
	}
	s := h.Slice(pos, min(n, pos+utf8.UTFMax))
	_, size := utf8.DecodeRuneInString(s)
	return pos + size
}
