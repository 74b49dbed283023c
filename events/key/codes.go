// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package key

// Codes are the physical key codes, identifying a position on the
// keyboard independent of the active layout. The names follow the
// W3C UI Events KeyboardEvent code values.
type Codes int32

const (
	CodeUnknown Codes = iota

	CodeA
	CodeB
	CodeC
	CodeD
	CodeE
	CodeF
	CodeG
	CodeH
	CodeI
	CodeJ
	CodeK
	CodeL
	CodeM
	CodeN
	CodeO
	CodeP
	CodeQ
	CodeR
	CodeS
	CodeT
	CodeU
	CodeV
	CodeW
	CodeX
	CodeY
	CodeZ

	Code0
	Code1
	Code2
	Code3
	Code4
	Code5
	Code6
	Code7
	Code8
	Code9

	CodeEnter
	CodeEscape
	CodeBackspace
	CodeTab
	CodeSpace
	CodeMinus
	CodeEqual
	CodeBracketLeft
	CodeBracketRight
	CodeBackslash
	CodeSemicolon
	CodeQuote
	CodeBackquote
	CodeComma
	CodePeriod
	CodeSlash
	CodeCapsLock

	CodeF1
	CodeF2
	CodeF3
	CodeF4
	CodeF5
	CodeF6
	CodeF7
	CodeF8
	CodeF9
	CodeF10
	CodeF11
	CodeF12

	CodeInsert
	CodeHome
	CodePageUp
	CodeDelete
	CodeEnd
	CodePageDown
	CodeArrowRight
	CodeArrowLeft
	CodeArrowDown
	CodeArrowUp

	CodeNumpadEnter

	CodeShiftLeft
	CodeShiftRight
	CodeControlLeft
	CodeControlRight
	CodeAltLeft
	CodeAltRight
	CodeMetaLeft
	CodeMetaRight

	codesN
)

var codeNames = [...]string{
	CodeUnknown: "Unidentified",

	CodeA: "KeyA", CodeB: "KeyB", CodeC: "KeyC", CodeD: "KeyD", CodeE: "KeyE",
	CodeF: "KeyF", CodeG: "KeyG", CodeH: "KeyH", CodeI: "KeyI", CodeJ: "KeyJ",
	CodeK: "KeyK", CodeL: "KeyL", CodeM: "KeyM", CodeN: "KeyN", CodeO: "KeyO",
	CodeP: "KeyP", CodeQ: "KeyQ", CodeR: "KeyR", CodeS: "KeyS", CodeT: "KeyT",
	CodeU: "KeyU", CodeV: "KeyV", CodeW: "KeyW", CodeX: "KeyX", CodeY: "KeyY",
	CodeZ: "KeyZ",

	Code0: "Digit0", Code1: "Digit1", Code2: "Digit2", Code3: "Digit3", Code4: "Digit4",
	Code5: "Digit5", Code6: "Digit6", Code7: "Digit7", Code8: "Digit8", Code9: "Digit9",

	CodeEnter:        "Enter",
	CodeEscape:       "Escape",
	CodeBackspace:    "Backspace",
	CodeTab:          "Tab",
	CodeSpace:        "Space",
	CodeMinus:        "Minus",
	CodeEqual:        "Equal",
	CodeBracketLeft:  "BracketLeft",
	CodeBracketRight: "BracketRight",
	CodeBackslash:    "Backslash",
	CodeSemicolon:    "Semicolon",
	CodeQuote:        "Quote",
	CodeBackquote:    "Backquote",
	CodeComma:        "Comma",
	CodePeriod:       "Period",
	CodeSlash:        "Slash",
	CodeCapsLock:     "CapsLock",

	CodeF1: "F1", CodeF2: "F2", CodeF3: "F3", CodeF4: "F4", CodeF5: "F5", CodeF6: "F6",
	CodeF7: "F7", CodeF8: "F8", CodeF9: "F9", CodeF10: "F10", CodeF11: "F11", CodeF12: "F12",

	CodeInsert:     "Insert",
	CodeHome:       "Home",
	CodePageUp:     "PageUp",
	CodeDelete:     "Delete",
	CodeEnd:        "End",
	CodePageDown:   "PageDown",
	CodeArrowRight: "ArrowRight",
	CodeArrowLeft:  "ArrowLeft",
	CodeArrowDown:  "ArrowDown",
	CodeArrowUp:    "ArrowUp",

	CodeNumpadEnter: "NumpadEnter",

	CodeShiftLeft:    "ShiftLeft",
	CodeShiftRight:   "ShiftRight",
	CodeControlLeft:  "ControlLeft",
	CodeControlRight: "ControlRight",
	CodeAltLeft:      "AltLeft",
	CodeAltRight:     "AltRight",
	CodeMetaLeft:     "MetaLeft",
	CodeMetaRight:    "MetaRight",
}

func (c Codes) String() string {
	if c < 0 || c >= codesN {
		return codeNames[CodeUnknown]
	}
	return codeNames[c]
}

// IsModifier returns whether the code is one of the modifier keys.
func (c Codes) IsModifier() bool {
	return c >= CodeShiftLeft && c <= CodeMetaRight
}

// Location returns the location of the key on the keyboard.
func (c Codes) Location() Locations {
	switch c {
	case CodeShiftLeft, CodeControlLeft, CodeAltLeft, CodeMetaLeft:
		return LocationLeft
	case CodeShiftRight, CodeControlRight, CodeAltRight, CodeMetaRight:
		return LocationRight
	case CodeNumpadEnter:
		return LocationNumpad
	}
	return LocationStandard
}

// CodeRune returns the rune produced by the code on a US layout without
// modifiers, or 0 if the code produces no character.
func CodeRune(c Codes) rune {
	switch {
	case c >= CodeA && c <= CodeZ:
		return 'a' + rune(c-CodeA)
	case c >= Code0 && c <= Code9:
		return '0' + rune(c-Code0)
	}
	return codeRunes[c]
}

var codeRunes = map[Codes]rune{
	CodeSpace:        ' ',
	CodeMinus:        '-',
	CodeEqual:        '=',
	CodeBracketLeft:  '[',
	CodeBracketRight: ']',
	CodeBackslash:    '\\',
	CodeSemicolon:    ';',
	CodeQuote:        '\'',
	CodeBackquote:    '`',
	CodeComma:        ',',
	CodePeriod:       '.',
	CodeSlash:        '/',
}
