//go:build !js

package host

import (
	"github.com/go-gl/glfw/v3.3/glfw"

	"hearth/pkg/engine"
)

// glfwKeys maps GLFW key tokens, which name US-layout positions, to
// physical key codes
var glfwKeys = map[glfw.Key]engine.KeyCode{
	glfw.KeyEscape:       engine.KeyEscape,
	glfw.KeyEnter:        engine.KeyEnter,
	glfw.KeySpace:        engine.KeySpace,
	glfw.KeyTab:          engine.KeyTab,
	glfw.KeyBackspace:    engine.KeyBackspace,
	glfw.KeyDelete:       engine.KeyDelete,
	glfw.KeyInsert:       engine.KeyInsert,
	glfw.KeyHome:         engine.KeyHome,
	glfw.KeyEnd:          engine.KeyEnd,
	glfw.KeyPageUp:       engine.KeyPageUp,
	glfw.KeyPageDown:     engine.KeyPageDown,
	glfw.KeyUp:           engine.KeyArrowUp,
	glfw.KeyDown:         engine.KeyArrowDown,
	glfw.KeyLeft:         engine.KeyArrowLeft,
	glfw.KeyRight:        engine.KeyArrowRight,
	glfw.KeyLeftShift:    engine.KeyShiftLeft,
	glfw.KeyRightShift:   engine.KeyShiftRight,
	glfw.KeyLeftControl:  engine.KeyControlLeft,
	glfw.KeyRightControl: engine.KeyControlRight,
	glfw.KeyLeftAlt:      engine.KeyAltLeft,
	glfw.KeyRightAlt:     engine.KeyAltRight,
	glfw.KeyLeftSuper:    engine.KeyMetaLeft,
	glfw.KeyRightSuper:   engine.KeyMetaRight,
	glfw.KeyCapsLock:     engine.KeyCapsLock,
	glfw.KeyMinus:        engine.KeyMinus,
	glfw.KeyEqual:        engine.KeyEqual,
	glfw.KeyLeftBracket:  engine.KeyBracketLeft,
	glfw.KeyRightBracket: engine.KeyBracketRight,
	glfw.KeyBackslash:    engine.KeyBackslash,
	glfw.KeySemicolon:    engine.KeySemicolon,
	glfw.KeyApostrophe:   engine.KeyQuote,
	glfw.KeyGraveAccent:  engine.KeyBackquote,
	glfw.KeyComma:        engine.KeyComma,
	glfw.KeyPeriod:       engine.KeyPeriod,
	glfw.KeySlash:        engine.KeySlash,
	glfw.Key0:            engine.KeyDigit0,
	glfw.Key1:            engine.KeyDigit1,
	glfw.Key2:            engine.KeyDigit2,
	glfw.Key3:            engine.KeyDigit3,
	glfw.Key4:            engine.KeyDigit4,
	glfw.Key5:            engine.KeyDigit5,
	glfw.Key6:            engine.KeyDigit6,
	glfw.Key7:            engine.KeyDigit7,
	glfw.Key8:            engine.KeyDigit8,
	glfw.Key9:            engine.KeyDigit9,
	glfw.KeyA:            engine.KeyA,
	glfw.KeyB:            engine.KeyB,
	glfw.KeyC:            engine.KeyC,
	glfw.KeyD:            engine.KeyD,
	glfw.KeyE:            engine.KeyE,
	glfw.KeyF:            engine.KeyF,
	glfw.KeyG:            engine.KeyG,
	glfw.KeyH:            engine.KeyH,
	glfw.KeyI:            engine.KeyI,
	glfw.KeyJ:            engine.KeyJ,
	glfw.KeyK:            engine.KeyK,
	glfw.KeyL:            engine.KeyL,
	glfw.KeyM:            engine.KeyM,
	glfw.KeyN:            engine.KeyN,
	glfw.KeyO:            engine.KeyO,
	glfw.KeyP:            engine.KeyP,
	glfw.KeyQ:            engine.KeyQ,
	glfw.KeyR:            engine.KeyR,
	glfw.KeyS:            engine.KeyS,
	glfw.KeyT:            engine.KeyT,
	glfw.KeyU:            engine.KeyU,
	glfw.KeyV:            engine.KeyV,
	glfw.KeyW:            engine.KeyW,
	glfw.KeyX:            engine.KeyX,
	glfw.KeyY:            engine.KeyY,
	glfw.KeyZ:            engine.KeyZ,
	glfw.KeyF1:           engine.KeyF1,
	glfw.KeyF2:           engine.KeyF2,
	glfw.KeyF3:           engine.KeyF3,
	glfw.KeyF4:           engine.KeyF4,
	glfw.KeyF5:           engine.KeyF5,
	glfw.KeyF6:           engine.KeyF6,
	glfw.KeyF7:           engine.KeyF7,
	glfw.KeyF8:           engine.KeyF8,
	glfw.KeyF9:           engine.KeyF9,
	glfw.KeyF10:          engine.KeyF10,
	glfw.KeyF11:          engine.KeyF11,
	glfw.KeyF12:          engine.KeyF12,
}

func keyCode(k glfw.Key) engine.KeyCode {
	if code, ok := glfwKeys[k]; ok {
		return code
	}
	return engine.KeyUnidentified
}

func modifiers(mod glfw.ModifierKey) engine.ModifiersState {
	var m engine.ModifiersState
	if mod&glfw.ModShift != 0 {
		m |= engine.ModShift
	}
	if mod&glfw.ModControl != 0 {
		m |= engine.ModControl
	}
	if mod&glfw.ModAlt != 0 {
		m |= engine.ModAlt
	}
	if mod&glfw.ModSuper != 0 {
		m |= engine.ModSuper
	}
	return m
}
