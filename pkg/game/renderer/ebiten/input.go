package ebiten

import (
	"log"
	"strings"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	engineinput "menulayer/pkg/engine/input"
)

// keyCodes names the keys the bindings know about; other keys use their
// lower-cased Ebiten name.
var keyCodes = map[ebiten.Key]string{
	ebiten.KeyArrowUp:     "arrow_up",
	ebiten.KeyArrowDown:   "arrow_down",
	ebiten.KeyArrowLeft:   "arrow_left",
	ebiten.KeyArrowRight:  "arrow_right",
	ebiten.KeyEnter:       "enter",
	ebiten.KeyNumpadEnter: "numpad_enter",
	ebiten.KeyEscape:      "escape",
	ebiten.KeyBackspace:   "backspace",
}

// repeatKeys repeat while held.
var repeatKeys = []ebiten.Key{
	ebiten.KeyArrowUp,
	ebiten.KeyArrowDown,
	ebiten.KeyArrowLeft,
	ebiten.KeyArrowRight,
	ebiten.KeyBackspace,
}

var gamepadCodes = map[ebiten.StandardGamepadButton]string{
	ebiten.StandardGamepadButtonLeftTop:     "gamepad_dpad_up",
	ebiten.StandardGamepadButtonLeftBottom:  "gamepad_dpad_down",
	ebiten.StandardGamepadButtonLeftLeft:    "gamepad_dpad_left",
	ebiten.StandardGamepadButtonLeftRight:   "gamepad_dpad_right",
	ebiten.StandardGamepadButtonRightBottom: "gamepad_a",
	ebiten.StandardGamepadButtonRightRight:  "gamepad_b",
	ebiten.StandardGamepadButtonCenterRight: "gamepad_start",
}

var mouseButtons = map[ebiten.MouseButton]engineinput.Button{
	ebiten.MouseButtonLeft:   engineinput.ButtonLeft,
	ebiten.MouseButtonRight:  engineinput.ButtonRight,
	ebiten.MouseButtonMiddle: engineinput.ButtonMiddle,
}

func keyCode(k ebiten.Key) string {
	if code, ok := keyCodes[k]; ok {
		return code
	}
	return strings.ToLower(k.String())
}

func modifiers() engineinput.Modifier {
	var m engineinput.Modifier
	if ebiten.IsKeyPressed(ebiten.KeyShift) {
		m |= engineinput.ModShift
	}
	if ebiten.IsKeyPressed(ebiten.KeyControl) {
		m |= engineinput.ModControl
	}
	if ebiten.IsKeyPressed(ebiten.KeyAlt) {
		m |= engineinput.ModAlt
	}
	return m
}

// shouldRepeatKey reports whether a held key fires a repeat this tick.
func shouldRepeatKey(k ebiten.Key) bool {
	d := inpututil.KeyPressDuration(k)
	return d > keyRepeatInitialDelay && (d-keyRepeatInitialDelay)%keyRepeatInterval == 0
}

// pollEvents gathers this tick's input in delivery order: keys, typed
// characters, gamepad, then pointer.
func (e *EbitenRenderer) pollEvents() []engineinput.Event {
	var events []engineinput.Event
	now := time.Now()
	mods := modifiers()

	press := func(device engineinput.Device, code string) {
		raw := engineinput.RawInput{Device: device, Code: code, Timestamp: now}
		events = append(events, engineinput.Press(raw, mods))
	}

	for _, k := range inpututil.AppendJustPressedKeys(nil) {
		press(engineinput.DeviceKeyboard, keyCode(k))
	}
	for _, k := range repeatKeys {
		if shouldRepeatKey(k) {
			press(engineinput.DeviceKeyboard, keyCode(k))
		}
	}

	for _, r := range ebiten.AppendInputChars(nil) {
		events = append(events, engineinput.TextInput{Char: r})
	}

	for _, id := range inpututil.AppendJustConnectedGamepadIDs(nil) {
		log.Printf("Gamepad connected: %s", ebiten.GamepadName(id))
	}
	for _, id := range ebiten.AppendGamepadIDs(nil) {
		if !ebiten.IsStandardGamepadLayoutAvailable(id) {
			continue
		}
		for b, code := range gamepadCodes {
			if inpututil.IsStandardGamepadButtonJustPressed(id, b) {
				press(engineinput.DeviceGamepad, code)
			}
		}
	}

	x, y := ebiten.CursorPosition()
	if !e.cursorKnown || x != e.cursorX || y != e.cursorY {
		if e.cursorKnown {
			events = append(events, engineinput.PointerMotion{
				X:  float64(x),
				Y:  float64(y),
				DX: float64(x - e.cursorX),
				DY: float64(e.cursorY - y),
			})
		}
		e.cursorX, e.cursorY, e.cursorKnown = x, y, true
	}
	for b, bit := range mouseButtons {
		if inpututil.IsMouseButtonJustReleased(b) {
			events = append(events, engineinput.PointerRelease{
				X:       float64(x),
				Y:       float64(y),
				Buttons: bit,
				Mods:    mods,
			})
		}
	}
	return events
}
