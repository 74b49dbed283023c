// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package x11

import (
	"bufio"
	"math"
	"strconv"
	"strings"
	"unicode/utf8"

	"cogentcore.org/glazier/events"
	"cogentcore.org/glazier/events/key"
	"cogentcore.org/glazier/geom"
	"github.com/BurntSushi/xgb/xproto"
)

// evdevOffset is the difference between X keycodes and Linux evdev
// scan codes under the evdev and libinput X drivers.
const evdevOffset = 8

var evdevCodes = map[xproto.Keycode]key.Codes{
	1: key.CodeEscape,
	2: key.Code1, 3: key.Code2, 4: key.Code3, 5: key.Code4, 6: key.Code5,
	7: key.Code6, 8: key.Code7, 9: key.Code8, 10: key.Code9, 11: key.Code0,
	12: key.CodeMinus,
	13: key.CodeEqual,
	14: key.CodeBackspace,
	15: key.CodeTab,
	16: key.CodeQ, 17: key.CodeW, 18: key.CodeE, 19: key.CodeR, 20: key.CodeT,
	21: key.CodeY, 22: key.CodeU, 23: key.CodeI, 24: key.CodeO, 25: key.CodeP,
	26: key.CodeBracketLeft,
	27: key.CodeBracketRight,
	28: key.CodeEnter,
	29: key.CodeControlLeft,
	30: key.CodeA, 31: key.CodeS, 32: key.CodeD, 33: key.CodeF, 34: key.CodeG,
	35: key.CodeH, 36: key.CodeJ, 37: key.CodeK, 38: key.CodeL,
	39: key.CodeSemicolon,
	40: key.CodeQuote,
	41: key.CodeBackquote,
	42: key.CodeShiftLeft,
	43: key.CodeBackslash,
	44: key.CodeZ, 45: key.CodeX, 46: key.CodeC, 47: key.CodeV, 48: key.CodeB,
	49: key.CodeN, 50: key.CodeM,
	51: key.CodeComma,
	52: key.CodePeriod,
	53: key.CodeSlash,
	54: key.CodeShiftRight,
	56: key.CodeAltLeft,
	57: key.CodeSpace,
	58: key.CodeCapsLock,
	59: key.CodeF1, 60: key.CodeF2, 61: key.CodeF3, 62: key.CodeF4, 63: key.CodeF5,
	64: key.CodeF6, 65: key.CodeF7, 66: key.CodeF8, 67: key.CodeF9, 68: key.CodeF10,
	87: key.CodeF11,
	88: key.CodeF12,
	96: key.CodeNumpadEnter,
	97: key.CodeControlRight,
	100: key.CodeAltRight,
	102: key.CodeHome,
	103: key.CodeArrowUp,
	104: key.CodePageUp,
	105: key.CodeArrowLeft,
	106: key.CodeArrowRight,
	107: key.CodeEnd,
	108: key.CodeArrowDown,
	109: key.CodePageDown,
	110: key.CodeInsert,
	111: key.CodeDelete,
	125: key.CodeMetaLeft,
	126: key.CodeMetaRight,
}

// keyCode returns the physical key of an X keycode.
func keyCode(kc xproto.Keycode) key.Codes {
	if kc < evdevOffset {
		return key.CodeUnknown
	}
	if c, ok := evdevCodes[kc-evdevOffset]; ok {
		return c
	}
	return key.CodeUnknown
}

// keyMods returns the modifiers of an X key or button state.
func keyMods(state uint16) key.Modifiers {
	var m key.Modifiers
	m.SetFlag(state&xproto.ModMaskShift != 0, key.ModShift)
	m.SetFlag(state&xproto.ModMaskControl != 0, key.ModControl)
	m.SetFlag(state&xproto.ModMask1 != 0, key.ModAlt)
	m.SetFlag(state&xproto.ModMask4 != 0, key.ModMeta)
	m.SetFlag(state&xproto.ModMask5 != 0, key.ModAltGraph)
	m.SetFlag(state&xproto.ModMaskLock != 0, key.ModCapsLock)
	m.SetFlag(state&xproto.ModMask2 != 0, key.ModNumLock)
	return m
}

// keyEvent builds a key event from an X keycode and state. sym is the
// keysym name from the active keymap, used for the logical key when it
// is a single character.
func keyEvent(state key.States, kc xproto.Keycode, xstate uint16, sym string) *key.Event {
	ev := key.NewEvent(state, keyCode(kc), keyMods(xstate))
	if sym == "space" {
		sym = " "
	}
	if utf8.RuneCountInString(sym) == 1 {
		ev.Key = key.Character(sym)
	}
	return ev
}

// buttonSet returns the buttons held in an X key or button state.
func buttonSet(state uint16) events.ButtonSet {
	var s events.ButtonSet
	if state&xproto.KeyButMaskButton1 != 0 {
		s = s.With(events.Left)
	}
	if state&xproto.KeyButMaskButton2 != 0 {
		s = s.With(events.Middle)
	}
	if state&xproto.KeyButMaskButton3 != 0 {
		s = s.With(events.Right)
	}
	return s
}

// wheelStep is the scroll distance of one wheel notch, in dp.
const wheelStep = 40

// button translates an X button number. Buttons 4 to 7 are wheel
// notches and return a zero button with a non-zero delta.
func button(b xproto.Button) (events.Buttons, geom.Vec2) {
	switch b {
	case 1:
		return events.Left, geom.Vec2{}
	case 2:
		return events.Middle, geom.Vec2{}
	case 3:
		return events.Right, geom.Vec2{}
	case 4:
		return events.NoButton, geom.V(0, -wheelStep)
	case 5:
		return events.NoButton, geom.V(0, wheelStep)
	case 6:
		return events.NoButton, geom.V(-wheelStep, 0)
	case 7:
		return events.NoButton, geom.V(wheelStep, 0)
	case 8:
		return events.X1, geom.Vec2{}
	case 9:
		return events.X2, geom.Vec2{}
	}
	return events.NoButton, geom.Vec2{}
}

// xftDPI returns the Xft.dpi setting from the contents of the
// RESOURCE_MANAGER property, or 0 if it is not set.
func xftDPI(resources string) float64 {
	sc := bufio.NewScanner(strings.NewReader(resources))
	for sc.Scan() {
		name, val, ok := strings.Cut(sc.Text(), ":")
		if !ok || strings.TrimSpace(name) != "Xft.dpi" {
			continue
		}
		dpi, err := strconv.ParseFloat(strings.TrimSpace(val), 64)
		if err != nil || dpi <= 0 {
			return 0
		}
		return dpi
	}
	return 0
}

// screenScale returns the scale for a screen, preferring the Xft.dpi
// resource and otherwise computing it from the physical screen size.
// Physical sizes that give a scale below 1 are ignored, since many
// servers report a nominal 96 dpi size that is not real.
func screenScale(resources string, widthPx, widthMM uint16) geom.Scale {
	if dpi := xftDPI(resources); dpi > 0 {
		return geom.ScaleFromDPI(dpi, dpi)
	}
	if widthMM == 0 {
		return geom.DefaultScale
	}
	dpi := float64(widthPx) * 25.4 / float64(widthMM)
	s := math.Round(dpi/96*4) / 4
	if s <= 1 {
		return geom.DefaultScale
	}
	return geom.UniformScale(s)
}
