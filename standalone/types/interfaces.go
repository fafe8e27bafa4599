// Package types holds the small shared vocabulary the screen packages
// exchange: navigation constants and the interfaces that break the
// import cycle between the screen tree and its sections.
package types

import (
	"github.com/ebitenui/ebitenui/widget"
)

// Arrow-key directions.
const (
	DirNone  = 0
	DirUp    = 1
	DirDown  = 2
	DirLeft  = 3
	DirRight = 4
)

// Navigation zone kinds. The kind decides which axis steps inside the
// zone; the other axis leaves it through a registered transition.
const (
	NavZoneHorizontal = "horizontal"
	NavZoneVertical   = "vertical"
	NavZoneGrid       = "grid"
)

// Special target indices for zone transitions.
const (
	NavIndexFirst = -2
	NavIndexLast  = -3
)

// ScreenCallback is what a screen may ask of the application shell.
type ScreenCallback interface {
	CloseSettings()      // return to the running game
	Exit()               // quit the application
	GetWindowWidth() int // for responsive layout
	RequestRebuild()     // rebuild the widget tree after state changes
	ApplyConfig()        // push config changes into the running emulator
}

// FocusRestorer is implemented by screens that restore focus after a
// rebuild.
type FocusRestorer interface {
	GetPendingFocusButton() *widget.Button
	ClearPendingFocus()
}

// FocusManager is the slice of BaseScreen the settings sections need:
// registering focusable buttons, preserving scroll position, and
// declaring navigation zones.
type FocusManager interface {
	RegisterFocusButton(key string, btn *widget.Button)
	SetPendingFocus(key string)
	SetScrollWidgets(sc *widget.ScrollContainer, slider *widget.Slider)
	SaveScrollPosition()
	RestoreScrollPosition()
	RegisterNavZone(name string, zoneType string, keys []string, columns int)
	SetNavTransition(fromZone string, direction int, toZone string, toIndex int)
}
