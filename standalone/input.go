package standalone

import (
	"sync"

	"github.com/hajimehoshi/ebiten/v2"

	emucore "github.com/OpenEmu/BSNES-Core/api"
)

const maxPlayers = 2

// InputManager marshals controller state between the Ebiten thread and
// the emulation goroutine. Gather runs once per Update and records the
// pressed controls; Poll (called by the core at the start of each
// emulated frame) snapshots that state; Status answers the core's
// per-control queries from the snapshot so every read within a frame
// sees the same state.
type InputManager struct {
	mu            sync.Mutex
	mappings      [maxPlayers]InputMapping
	pending       [maxPlayers][emucore.NumControls]bool
	snapshot      [maxPlayers][emucore.NumControls]bool
	disableAnalog bool
	gamepadIDs    []ebiten.GamepadID // Scratch for AppendGamepadIDs
}

// NewInputManager creates an input manager with default bindings for
// both players.
func NewInputManager() *InputManager {
	im := &InputManager{}
	for p := 0; p < maxPlayers; p++ {
		im.mappings[p] = BuildDefaultMapping()
	}
	return im
}

// SetMapping replaces the bindings for one player.
func (im *InputManager) SetMapping(player int, m InputMapping) {
	if player < 0 || player >= maxPlayers {
		return
	}
	im.mu.Lock()
	im.mappings[player] = m
	im.mu.Unlock()
}

// SetAnalogDisabled controls whether the left analog stick feeds the
// d-pad controls.
func (im *InputManager) SetAnalogDisabled(disabled bool) {
	im.mu.Lock()
	im.disableAnalog = disabled
	im.mu.Unlock()
}

// Gather reads current device state. Must be called from the Ebiten
// thread, once per Update. Player 1 combines keyboard and the first
// gamepad; player 2 uses the second gamepad only.
func (im *InputManager) Gather() {
	im.mu.Lock()
	defer im.mu.Unlock()

	im.gamepadIDs = ebiten.AppendGamepadIDs(im.gamepadIDs[:0])

	for p := 0; p < maxPlayers; p++ {
		im.pending[p] = [emucore.NumControls]bool{}
	}
	pollKeyboard(&im.pending[0], im.mappings[0])
	for p := 0; p < maxPlayers && p < len(im.gamepadIDs); p++ {
		pollGamepad(&im.pending[p], im.mappings[p], im.gamepadIDs[p], im.disableAnalog)
	}
}

// ClearPending zeroes the gathered state without touching the
// snapshot. Used while the settings screen is open so held keys do not
// leak into the game when it resumes.
func (im *InputManager) ClearPending() {
	im.mu.Lock()
	for p := 0; p < maxPlayers; p++ {
		im.pending[p] = [emucore.NumControls]bool{}
	}
	im.mu.Unlock()
}

// Poll implements emucore.InputSource. It latches the gathered state
// for the frame about to run.
func (im *InputManager) Poll() {
	im.mu.Lock()
	im.snapshot = im.pending
	im.mu.Unlock()
}

// Status implements emucore.InputSource. It reports the latched state
// of one control: 1 pressed, 0 released. Unknown devices and controls
// read as 0.
func (im *InputManager) Status(device, control int) int16 {
	if device < 0 || device >= maxPlayers {
		return 0
	}
	if control < 0 || control >= emucore.NumControls {
		return 0
	}
	im.mu.Lock()
	pressed := im.snapshot[device][control]
	im.mu.Unlock()
	if pressed {
		return 1
	}
	return 0
}
