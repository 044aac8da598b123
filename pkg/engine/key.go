package engine

// KeyCode identifies a physical key by its position on the keyboard,
// independent of layout. Names follow the W3C KeyboardEvent.code values.
type KeyCode int

const (
	KeyUnidentified KeyCode = iota
	KeyEscape
	KeyEnter
	KeySpace
	KeyTab
	KeyBackspace
	KeyDelete
	KeyInsert
	KeyHome
	KeyEnd
	KeyPageUp
	KeyPageDown
	KeyArrowUp
	KeyArrowDown
	KeyArrowLeft
	KeyArrowRight
	KeyShiftLeft
	KeyShiftRight
	KeyControlLeft
	KeyControlRight
	KeyAltLeft
	KeyAltRight
	KeyMetaLeft
	KeyMetaRight
	KeyCapsLock
	KeyMinus
	KeyEqual
	KeyBracketLeft
	KeyBracketRight
	KeyBackslash
	KeySemicolon
	KeyQuote
	KeyBackquote
	KeyComma
	KeyPeriod
	KeySlash
	KeyDigit0
	KeyDigit1
	KeyDigit2
	KeyDigit3
	KeyDigit4
	KeyDigit5
	KeyDigit6
	KeyDigit7
	KeyDigit8
	KeyDigit9
	KeyA
	KeyB
	KeyC
	KeyD
	KeyE
	KeyF
	KeyG
	KeyH
	KeyI
	KeyJ
	KeyK
	KeyL
	KeyM
	KeyN
	KeyO
	KeyP
	KeyQ
	KeyR
	KeyS
	KeyT
	KeyU
	KeyV
	KeyW
	KeyX
	KeyY
	KeyZ
	KeyF1
	KeyF2
	KeyF3
	KeyF4
	KeyF5
	KeyF6
	KeyF7
	KeyF8
	KeyF9
	KeyF10
	KeyF11
	KeyF12
)

var keyNames = map[KeyCode]string{
	KeyUnidentified: "Unidentified",
	KeyEscape:       "Escape",
	KeyEnter:        "Enter",
	KeySpace:        "Space",
	KeyTab:          "Tab",
	KeyBackspace:    "Backspace",
	KeyDelete:       "Delete",
	KeyInsert:       "Insert",
	KeyHome:         "Home",
	KeyEnd:          "End",
	KeyPageUp:       "PageUp",
	KeyPageDown:     "PageDown",
	KeyArrowUp:      "ArrowUp",
	KeyArrowDown:    "ArrowDown",
	KeyArrowLeft:    "ArrowLeft",
	KeyArrowRight:   "ArrowRight",
	KeyShiftLeft:    "ShiftLeft",
	KeyShiftRight:   "ShiftRight",
	KeyControlLeft:  "ControlLeft",
	KeyControlRight: "ControlRight",
	KeyAltLeft:      "AltLeft",
	KeyAltRight:     "AltRight",
	KeyMetaLeft:     "MetaLeft",
	KeyMetaRight:    "MetaRight",
	KeyCapsLock:     "CapsLock",
	KeyMinus:        "Minus",
	KeyEqual:        "Equal",
	KeyBracketLeft:  "BracketLeft",
	KeyBracketRight: "BracketRight",
	KeyBackslash:    "Backslash",
	KeySemicolon:    "Semicolon",
	KeyQuote:        "Quote",
	KeyBackquote:    "Backquote",
	KeyComma:        "Comma",
	KeyPeriod:       "Period",
	KeySlash:        "Slash",
	KeyDigit0:       "Digit0",
	KeyDigit1:       "Digit1",
	KeyDigit2:       "Digit2",
	KeyDigit3:       "Digit3",
	KeyDigit4:       "Digit4",
	KeyDigit5:       "Digit5",
	KeyDigit6:       "Digit6",
	KeyDigit7:       "Digit7",
	KeyDigit8:       "Digit8",
	KeyDigit9:       "Digit9",
	KeyA:            "KeyA",
	KeyB:            "KeyB",
	KeyC:            "KeyC",
	KeyD:            "KeyD",
	KeyE:            "KeyE",
	KeyF:            "KeyF",
	KeyG:            "KeyG",
	KeyH:            "KeyH",
	KeyI:            "KeyI",
	KeyJ:            "KeyJ",
	KeyK:            "KeyK",
	KeyL:            "KeyL",
	KeyM:            "KeyM",
	KeyN:            "KeyN",
	KeyO:            "KeyO",
	KeyP:            "KeyP",
	KeyQ:            "KeyQ",
	KeyR:            "KeyR",
	KeyS:            "KeyS",
	KeyT:            "KeyT",
	KeyU:            "KeyU",
	KeyV:            "KeyV",
	KeyW:            "KeyW",
	KeyX:            "KeyX",
	KeyY:            "KeyY",
	KeyZ:            "KeyZ",
	KeyF1:           "F1",
	KeyF2:           "F2",
	KeyF3:           "F3",
	KeyF4:           "F4",
	KeyF5:           "F5",
	KeyF6:           "F6",
	KeyF7:           "F7",
	KeyF8:           "F8",
	KeyF9:           "F9",
	KeyF10:          "F10",
	KeyF11:          "F11",
	KeyF12:          "F12",
}

var keysByName = make(map[string]KeyCode, len(keyNames))

func init() {
	for k, name := range keyNames {
		keysByName[name] = k
	}
}

func (k KeyCode) String() string {
	if name, ok := keyNames[k]; ok {
		return name
	}
	return "Unidentified"
}

// ParseKeyCode returns the key for a KeyboardEvent.code name, or
// KeyUnidentified when the name is not known.
func ParseKeyCode(name string) KeyCode {
	if k, ok := keysByName[name]; ok {
		return k
	}
	return KeyUnidentified
}

// ElementState is the state of a key or button.
type ElementState int

const (
	Released ElementState = iota
	Pressed
)

func (s ElementState) String() string {
	if s == Pressed {
		return "Pressed"
	}
	return "Released"
}

// ModifiersState is a set of held modifier keys.
type ModifiersState uint8

const (
	ModShift ModifiersState = 1 << iota
	ModControl
	ModAlt
	ModSuper
)
