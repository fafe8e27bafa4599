package emucore

// Device IDs passed to InputSource.Status. They correspond to the two
// physical controller ports.
const (
	DeviceJoypad1 = 0
	DeviceJoypad2 = 1
)

// Joypad control IDs passed to InputSource.Status, in wire order.
const (
	ControlB = iota
	ControlY
	ControlSelect
	ControlStart
	ControlUp
	ControlDown
	ControlLeft
	ControlRight
	ControlA
	ControlX
	ControlL
	ControlR

	NumControls
)

// ControlNames maps control IDs to display names, indexed by control ID.
var ControlNames = [NumControls]string{
	"B", "Y", "Select", "Start",
	"Up", "Down", "Left", "Right",
	"A", "X", "L", "R",
}
