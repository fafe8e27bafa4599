package standalone

import (
	"github.com/hajimehoshi/ebiten/v2"

	emucore "github.com/OpenEmu/BSNES-Core/api"
)

// InputMapping maps joypad control IDs to ebiten input types.
type InputMapping struct {
	Keys    map[int]ebiten.Key                   // control ID -> keyboard key
	Gamepad map[int]ebiten.StandardGamepadButton // control ID -> gamepad button
}

// keyNameMap maps short key name strings to ebiten.Key values.
var keyNameMap = map[string]ebiten.Key{
	"A":          ebiten.KeyA,
	"B":          ebiten.KeyB,
	"C":          ebiten.KeyC,
	"D":          ebiten.KeyD,
	"E":          ebiten.KeyE,
	"F":          ebiten.KeyF,
	"G":          ebiten.KeyG,
	"H":          ebiten.KeyH,
	"I":          ebiten.KeyI,
	"J":          ebiten.KeyJ,
	"K":          ebiten.KeyK,
	"L":          ebiten.KeyL,
	"M":          ebiten.KeyM,
	"N":          ebiten.KeyN,
	"O":          ebiten.KeyO,
	"P":          ebiten.KeyP,
	"Q":          ebiten.KeyQ,
	"R":          ebiten.KeyR,
	"S":          ebiten.KeyS,
	"T":          ebiten.KeyT,
	"U":          ebiten.KeyU,
	"V":          ebiten.KeyV,
	"W":          ebiten.KeyW,
	"X":          ebiten.KeyX,
	"Y":          ebiten.KeyY,
	"Z":          ebiten.KeyZ,
	"0":          ebiten.Key0,
	"1":          ebiten.Key1,
	"2":          ebiten.Key2,
	"3":          ebiten.Key3,
	"4":          ebiten.Key4,
	"5":          ebiten.Key5,
	"6":          ebiten.Key6,
	"7":          ebiten.Key7,
	"8":          ebiten.Key8,
	"9":          ebiten.Key9,
	"Enter":      ebiten.KeyEnter,
	"Backspace":  ebiten.KeyBackspace,
	"Space":      ebiten.KeySpace,
	"Semicolon":  ebiten.KeySemicolon,
	"Comma":      ebiten.KeyComma,
	"Period":     ebiten.KeyPeriod,
	"Slash":      ebiten.KeySlash,
	"Tab":        ebiten.KeyTab,
	"Escape":     ebiten.KeyEscape,
	"Shift":      ebiten.KeyShift,
	"ArrowUp":    ebiten.KeyArrowUp,
	"ArrowDown":  ebiten.KeyArrowDown,
	"ArrowLeft":  ebiten.KeyArrowLeft,
	"ArrowRight": ebiten.KeyArrowRight,
	"[":          ebiten.KeyLeftBracket,
	"]":          ebiten.KeyRightBracket,
	"-":          ebiten.KeyMinus,
	"=":          ebiten.KeyEqual,
	"'":          ebiten.KeyApostrophe,
	"F1":         ebiten.KeyF1,
	"F2":         ebiten.KeyF2,
	"F3":         ebiten.KeyF3,
	"F4":         ebiten.KeyF4,
	"F5":         ebiten.KeyF5,
	"F6":         ebiten.KeyF6,
	"F7":         ebiten.KeyF7,
	"F8":         ebiten.KeyF8,
	"F9":         ebiten.KeyF9,
	"F10":        ebiten.KeyF10,
	"F11":        ebiten.KeyF11,
	"F12":        ebiten.KeyF12,
}

// padNameMap maps gamepad button name strings to ebiten StandardGamepadButton values.
var padNameMap = map[string]ebiten.StandardGamepadButton{
	"A":         ebiten.StandardGamepadButtonRightBottom,
	"B":         ebiten.StandardGamepadButtonRightRight,
	"X":         ebiten.StandardGamepadButtonRightLeft,
	"Y":         ebiten.StandardGamepadButtonRightTop,
	"L1":        ebiten.StandardGamepadButtonFrontTopLeft,
	"R1":        ebiten.StandardGamepadButtonFrontTopRight,
	"L2":        ebiten.StandardGamepadButtonFrontBottomLeft,
	"R2":        ebiten.StandardGamepadButtonFrontBottomRight,
	"Start":     ebiten.StandardGamepadButtonCenterRight,
	"Select":    ebiten.StandardGamepadButtonCenterLeft,
	"DpadUp":    ebiten.StandardGamepadButtonLeftTop,
	"DpadDown":  ebiten.StandardGamepadButtonLeftBottom,
	"DpadLeft":  ebiten.StandardGamepadButtonLeftLeft,
	"DpadRight": ebiten.StandardGamepadButtonLeftRight,
	"L3":        ebiten.StandardGamepadButtonLeftStick,
	"R3":        ebiten.StandardGamepadButtonRightStick,
}

// reservedKeys are keyboard keys used by the shell for non-gameplay
// functions. These cannot be assigned as joypad bindings.
var reservedKeys = map[ebiten.Key]bool{
	ebiten.KeyEscape:  true, // Settings
	ebiten.KeyF5:      true, // Cycle filter
	ebiten.KeyF9:      true, // Audio log
	ebiten.KeyF10:     true, // Mute
	ebiten.KeyF11:     true, // Fullscreen
	ebiten.KeyF12:     true, // Screenshot
	ebiten.KeyShift:   true,
	ebiten.KeyControl: true,
	ebiten.KeyAlt:     true,
	ebiten.KeyMeta:    true,
}

// Reverse lookup maps (built from keyNameMap/padNameMap at init).
var keyToName map[ebiten.Key]string
var padToName map[ebiten.StandardGamepadButton]string

func init() {
	keyToName = make(map[ebiten.Key]string, len(keyNameMap))
	for name, key := range keyNameMap {
		keyToName[key] = name
	}
	padToName = make(map[ebiten.StandardGamepadButton]string, len(padNameMap))
	for name, btn := range padNameMap {
		padToName[btn] = name
	}
}

// KeyToName converts an ebiten.Key to its name string.
func KeyToName(k ebiten.Key) (string, bool) {
	name, ok := keyToName[k]
	return name, ok
}

// PadToName converts an ebiten.StandardGamepadButton to its name string.
func PadToName(b ebiten.StandardGamepadButton) (string, bool) {
	name, ok := padToName[b]
	return name, ok
}

// IsReservedKey returns true if the key is reserved for shell functions.
func IsReservedKey(k ebiten.Key) bool {
	return reservedKeys[k]
}

// ParseKey converts a key name string to an ebiten.Key.
func ParseKey(name string) (ebiten.Key, bool) {
	k, ok := keyNameMap[name]
	return k, ok
}

// ParsePad converts a gamepad button name string to an ebiten.StandardGamepadButton.
func ParsePad(name string) (ebiten.StandardGamepadButton, bool) {
	b, ok := padNameMap[name]
	return b, ok
}

// joypadDefaults lists each joypad control with its default keyboard
// key (player 1 only) and gamepad button binding.
var joypadDefaults = []struct {
	Control    int
	DefaultKey string
	DefaultPad string
}{
	{emucore.ControlUp, "ArrowUp", "DpadUp"},
	{emucore.ControlDown, "ArrowDown", "DpadDown"},
	{emucore.ControlLeft, "ArrowLeft", "DpadLeft"},
	{emucore.ControlRight, "ArrowRight", "DpadRight"},
	{emucore.ControlB, "Z", "A"},
	{emucore.ControlA, "X", "B"},
	{emucore.ControlY, "A", "X"},
	{emucore.ControlX, "S", "Y"},
	{emucore.ControlL, "D", "L1"},
	{emucore.ControlR, "C", "R1"},
	{emucore.ControlSelect, "'", "Select"},
	{emucore.ControlStart, "Enter", "Start"},
}

// BuildDefaultMapping creates the default joypad mapping. The keyboard
// half is only meaningful for player 1.
func BuildDefaultMapping() InputMapping {
	m := InputMapping{
		Keys:    make(map[int]ebiten.Key),
		Gamepad: make(map[int]ebiten.StandardGamepadButton),
	}
	for _, d := range joypadDefaults {
		if k, ok := ParseKey(d.DefaultKey); ok {
			m.Keys[d.Control] = k
		}
		if b, ok := ParsePad(d.DefaultPad); ok {
			m.Gamepad[d.Control] = b
		}
	}
	return m
}

// BuildMappingFromConfig creates an InputMapping using config overrides
// with the default bindings as fallback. Overrides are keyed by the
// joypad control name ("B", "Start", ...). Invalid names and reserved
// keys fall back to the default.
func BuildMappingFromConfig(kbOverrides, padOverrides map[string]string) InputMapping {
	m := BuildDefaultMapping()
	for _, d := range joypadDefaults {
		name := emucore.ControlNames[d.Control]
		if override, ok := kbOverrides[name]; ok {
			if k, ok := ParseKey(override); ok && !reservedKeys[k] {
				m.Keys[d.Control] = k
			}
		}
		if override, ok := padOverrides[name]; ok {
			if b, ok := ParsePad(override); ok {
				m.Gamepad[d.Control] = b
			}
		}
	}
	return m
}

// ResolveKeyDisplay returns the display string for a control's current
// keyboard binding, checking overrides first then the default.
func ResolveKeyDisplay(controlName string, overrides map[string]string) string {
	if override, ok := overrides[controlName]; ok {
		return override
	}
	for _, d := range joypadDefaults {
		if emucore.ControlNames[d.Control] == controlName {
			return d.DefaultKey
		}
	}
	return ""
}

// ResolvePadDisplay returns the display string for a control's current
// gamepad binding, checking overrides first then the default.
func ResolvePadDisplay(controlName string, overrides map[string]string) string {
	if override, ok := overrides[controlName]; ok {
		return override
	}
	for _, d := range joypadDefaults {
		if emucore.ControlNames[d.Control] == controlName {
			return d.DefaultPad
		}
	}
	return ""
}

// pollKeyboard reads keyboard-mapped controls into pressed.
func pollKeyboard(pressed *[emucore.NumControls]bool, mapping InputMapping) {
	for control, key := range mapping.Keys {
		if ebiten.IsKeyPressed(key) {
			pressed[control] = true
		}
	}
}

// pollGamepad reads gamepad-mapped controls and the left analog stick
// into pressed. The stick sets whatever controls the d-pad directions
// are mapped to, so a remapped d-pad follows the stick too.
func pollGamepad(pressed *[emucore.NumControls]bool, mapping InputMapping, gamepadID ebiten.GamepadID, disableAnalog bool) {
	for control, padBtn := range mapping.Gamepad {
		if ebiten.IsStandardGamepadButtonPressed(gamepadID, padBtn) {
			pressed[control] = true
		}
	}

	if disableAnalog {
		return
	}
	axisX := ebiten.StandardGamepadAxisValue(gamepadID, ebiten.StandardGamepadAxisLeftStickHorizontal)
	axisY := ebiten.StandardGamepadAxisValue(gamepadID, ebiten.StandardGamepadAxisLeftStickVertical)
	for control, padBtn := range mapping.Gamepad {
		switch padBtn {
		case ebiten.StandardGamepadButtonLeftLeft:
			if axisX < -0.25 {
				pressed[control] = true
			}
		case ebiten.StandardGamepadButtonLeftRight:
			if axisX > 0.25 {
				pressed[control] = true
			}
		case ebiten.StandardGamepadButtonLeftTop:
			if axisY < -0.25 {
				pressed[control] = true
			}
		case ebiten.StandardGamepadButtonLeftBottom:
			if axisY > 0.25 {
				pressed[control] = true
			}
		}
	}
}
