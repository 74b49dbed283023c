// Copyright 2019 Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build cgo && !(android || ios || js)

package desktop

import (
	"strings"
	"time"
	"unicode/utf8"

	"cogentcore.org/glazier/events"
	"cogentcore.org/glazier/events/key"
	"cogentcore.org/glazier/geom"
	"github.com/go-gl/glfw/v3.3/glfw"
)

func glfwMods(mod glfw.ModifierKey) key.Modifiers {
	var m key.Modifiers
	m.SetFlag(mod&glfw.ModShift != 0, key.ModShift)
	m.SetFlag(mod&glfw.ModControl != 0, key.ModControl)
	m.SetFlag(mod&glfw.ModAlt != 0, key.ModAlt)
	m.SetFlag(mod&glfw.ModSuper != 0, key.ModMeta)
	m.SetFlag(mod&glfw.ModCapsLock != 0, key.ModCapsLock)
	m.SetFlag(mod&glfw.ModNumLock != 0, key.ModNumLock)
	return m
}

// physical key
func (w *Window) keyEvent(gw *glfw.Window, ky glfw.Key, scancode int, action glfw.Action, mod glfw.ModifierKey) {
	state := key.Down
	if action == glfw.Release {
		state = key.Up
	}
	ev := newKeyEvent(state, glfwKeyCode(ky), glfwMods(mod), glfw.GetKeyName(ky, scancode))
	ev.Repeat = action == glfw.Repeat
	w.sink.Key(ev)
}

// newKeyEvent builds a key event. name is the unshifted text of the key
// in the active layout, or "" for keys that do not produce text.
func newKeyEvent(state key.States, code key.Codes, mods key.Modifiers, name string) *key.Event {
	ev := key.NewEvent(state, code, mods)
	if utf8.RuneCountInString(name) == 1 {
		if mods.Has(key.ModShift) != mods.Has(key.ModCapsLock) {
			name = strings.ToUpper(name)
		}
		ev.Key = key.Character(name)
	}
	return ev
}

func (w *Window) cursorPos(gw *glfw.Window) geom.Point {
	return w.toDp(gw.GetCursorPos())
}

// toDp converts window coordinates, which are in px everywhere except
// macOS, to dp.
func (w *Window) toDp(x, y float64) geom.Point {
	return geom.Pt(x, y).ToDp(w.coordScale())
}

func glfwButton(button glfw.MouseButton) events.Buttons {
	switch button {
	case glfw.MouseButtonLeft:
		return events.Left
	case glfw.MouseButtonRight:
		return events.Right
	case glfw.MouseButtonMiddle:
		return events.Middle
	case glfw.MouseButton4:
		return events.X1
	case glfw.MouseButton5:
		return events.X2
	}
	return events.NoButton
}

func (w *Window) mouseButtonEvent(gw *glfw.Window, button glfw.MouseButton, action glfw.Action, mod glfw.ModifierKey) {
	but := glfwButton(button)
	if but == events.NoButton {
		return
	}
	ev := &events.MouseEvent{
		Pos:    w.cursorPos(gw),
		Button: but,
		Mods:   glfwMods(mod),
	}
	typ := events.MouseDown
	if action == glfw.Release {
		typ = events.MouseUp
		w.buttons = w.buttons.Without(but)
	} else {
		w.buttons = w.buttons.With(but)
		ev.Count = w.d.clicks.Press(but, ev.Pos, time.Now())
	}
	ev.Buttons = w.buttons
	w.sink.Mouse(typ, ev)
}

// scrollStep is the scroll distance of one wheel notch, in dp.
const scrollStep = 40

func scrollDelta(xoff, yoff float64) geom.Vec2 {
	return geom.V(xoff, yoff).MulScalar(-scrollStep)
}

func (w *Window) scrollEvent(gw *glfw.Window, xoff, yoff float64) {
	w.sink.Mouse(events.MouseWheel, &events.MouseEvent{
		Pos:        w.cursorPos(gw),
		Buttons:    w.buttons,
		WheelDelta: scrollDelta(xoff, yoff),
	})
}

func (w *Window) cursorPosEvent(gw *glfw.Window, x, y float64) {
	w.sink.Mouse(events.MouseMove, &events.MouseEvent{
		Pos:     w.toDp(x, y),
		Buttons: w.buttons,
	})
}

func (w *Window) cursorEnterEvent(gw *glfw.Window, entered bool) {
	if !entered {
		w.sink.Mouse(events.MouseLeave, nil)
	}
}

var glfwKeyCodes = map[glfw.Key]key.Codes{
	glfw.KeyA: key.CodeA, glfw.KeyB: key.CodeB, glfw.KeyC: key.CodeC, glfw.KeyD: key.CodeD,
	glfw.KeyE: key.CodeE, glfw.KeyF: key.CodeF, glfw.KeyG: key.CodeG, glfw.KeyH: key.CodeH,
	glfw.KeyI: key.CodeI, glfw.KeyJ: key.CodeJ, glfw.KeyK: key.CodeK, glfw.KeyL: key.CodeL,
	glfw.KeyM: key.CodeM, glfw.KeyN: key.CodeN, glfw.KeyO: key.CodeO, glfw.KeyP: key.CodeP,
	glfw.KeyQ: key.CodeQ, glfw.KeyR: key.CodeR, glfw.KeyS: key.CodeS, glfw.KeyT: key.CodeT,
	glfw.KeyU: key.CodeU, glfw.KeyV: key.CodeV, glfw.KeyW: key.CodeW, glfw.KeyX: key.CodeX,
	glfw.KeyY: key.CodeY, glfw.KeyZ: key.CodeZ,

	glfw.Key0: key.Code0, glfw.Key1: key.Code1, glfw.Key2: key.Code2, glfw.Key3: key.Code3,
	glfw.Key4: key.Code4, glfw.Key5: key.Code5, glfw.Key6: key.Code6, glfw.Key7: key.Code7,
	glfw.Key8: key.Code8, glfw.Key9: key.Code9,

	glfw.KeyEnter:        key.CodeEnter,
	glfw.KeyEscape:       key.CodeEscape,
	glfw.KeyBackspace:    key.CodeBackspace,
	glfw.KeyTab:          key.CodeTab,
	glfw.KeySpace:        key.CodeSpace,
	glfw.KeyMinus:        key.CodeMinus,
	glfw.KeyEqual:        key.CodeEqual,
	glfw.KeyLeftBracket:  key.CodeBracketLeft,
	glfw.KeyRightBracket: key.CodeBracketRight,
	glfw.KeyBackslash:    key.CodeBackslash,
	glfw.KeySemicolon:    key.CodeSemicolon,
	glfw.KeyApostrophe:   key.CodeQuote,
	glfw.KeyGraveAccent:  key.CodeBackquote,
	glfw.KeyComma:        key.CodeComma,
	glfw.KeyPeriod:       key.CodePeriod,
	glfw.KeySlash:        key.CodeSlash,
	glfw.KeyCapsLock:     key.CodeCapsLock,

	glfw.KeyF1: key.CodeF1, glfw.KeyF2: key.CodeF2, glfw.KeyF3: key.CodeF3, glfw.KeyF4: key.CodeF4,
	glfw.KeyF5: key.CodeF5, glfw.KeyF6: key.CodeF6, glfw.KeyF7: key.CodeF7, glfw.KeyF8: key.CodeF8,
	glfw.KeyF9: key.CodeF9, glfw.KeyF10: key.CodeF10, glfw.KeyF11: key.CodeF11, glfw.KeyF12: key.CodeF12,

	glfw.KeyInsert:   key.CodeInsert,
	glfw.KeyHome:     key.CodeHome,
	glfw.KeyPageUp:   key.CodePageUp,
	glfw.KeyDelete:   key.CodeDelete,
	glfw.KeyEnd:      key.CodeEnd,
	glfw.KeyPageDown: key.CodePageDown,
	glfw.KeyRight:    key.CodeArrowRight,
	glfw.KeyLeft:     key.CodeArrowLeft,
	glfw.KeyDown:     key.CodeArrowDown,
	glfw.KeyUp:       key.CodeArrowUp,
	glfw.KeyKPEnter:  key.CodeNumpadEnter,

	glfw.KeyLeftShift:    key.CodeShiftLeft,
	glfw.KeyRightShift:   key.CodeShiftRight,
	glfw.KeyLeftControl:  key.CodeControlLeft,
	glfw.KeyRightControl: key.CodeControlRight,
	glfw.KeyLeftAlt:      key.CodeAltLeft,
	glfw.KeyRightAlt:     key.CodeAltRight,
	glfw.KeyLeftSuper:    key.CodeMetaLeft,
	glfw.KeyRightSuper:   key.CodeMetaRight,
}

func glfwKeyCode(kcode glfw.Key) key.Codes {
	if c, ok := glfwKeyCodes[kcode]; ok {
		return c
	}
	return key.CodeUnknown
}
