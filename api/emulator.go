// Package emucore defines the contract between an SNES emulation core
// and the frontend shell. The core runs frames on its own and calls
// back into the shell's drivers for video, audio, and input.
package emucore

// VideoSink receives one decoded frame per emulated frame.
//
// pixels holds XRGB1555 pixel data, valid only for the duration of the
// call; the sink must not retain a reference past return. pitch is the
// number of uint16 elements per scanline. scanlines holds the effective
// pixel width of each row (shorter than width for mixed-resolution
// frames, e.g. interlace modes); a nil slice means every row is width
// pixels wide.
type VideoSink interface {
	PresentFrame(pixels []uint16, pitch int, scanlines []int, width, height int) error
}

// AudioSink receives one stereo sample pair per audio tick.
type AudioSink interface {
	SubmitSample(left, right uint16)
}

// InputSource answers the core's input queries. Poll is called once per
// frame before the core reads inputs; Status reads the snapshot taken at
// the last Poll and must not block or trigger a re-poll.
type InputSource interface {
	Poll()
	Status(device, control int) int16
}

// Drivers bundles the shell-side callbacks handed to a core.
type Drivers struct {
	Video VideoSink
	Audio AudioSink
	Input InputSource
}

// Emulator is implemented by every core adapter.
type Emulator interface {
	// LoadROM loads a cartridge image. Copier headers must already be
	// stripped by the caller.
	LoadROM(rom []byte) error

	// AttachDrivers sets the callbacks the core invokes while running.
	// Must be called before RunFrame.
	AttachDrivers(d Drivers)

	// RunFrame executes one frame of emulation. The core calls
	// Drivers.Input.Poll, then PresentFrame once and SubmitSample once
	// per audio tick, all synchronously on the calling goroutine.
	RunFrame()

	// Power cycles the system (cold boot).
	Power()

	// Reset performs a soft reset.
	Reset()

	// Region returns the current video region.
	Region() Region

	// SetRegion changes the video region.
	SetRegion(region Region)

	// Timing returns frame pacing for the current region.
	Timing() Timing

	// Close releases any resources held by the core.
	Close()
}
