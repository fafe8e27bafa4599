// Package testcore provides a stand-in emulation core that renders a
// test pattern and plays a tone. It exercises the full shell contract
// (frame presentation, audio submission, input polling, region timing)
// without a real SNES core behind it.
package testcore

import (
	"errors"
	"math"

	emucore "github.com/OpenEmu/BSNES-Core/api"
)

const (
	frameWidth  = 256
	frameHeight = 224
	toneHz      = 440.0
	toneVolume  = 0.2
)

// ErrNoROM is returned by LoadROM for an empty image.
var ErrNoROM = errors.New("testcore: empty ROM image")

// Core implements emucore.Emulator. The rendered pattern advances one
// step per frame and reacts to d-pad input, which makes frame ticks and
// input latching observable in tests.
type Core struct {
	drivers emucore.Drivers
	region  emucore.Region
	rom     []byte

	frame   int
	offsetX int
	offsetY int
	pixels  []uint16
	phase   float64
}

// New creates a test core in the NTSC region.
func New() *Core {
	return &Core{
		pixels: make([]uint16, frameWidth*frameHeight),
	}
}

// LoadROM implements emucore.Emulator. The image's first byte seeds the
// pattern so different ROMs render differently.
func (c *Core) LoadROM(rom []byte) error {
	if len(rom) == 0 {
		return ErrNoROM
	}
	c.rom = rom
	c.frame = int(rom[0])
	return nil
}

// AttachDrivers implements emucore.Emulator.
func (c *Core) AttachDrivers(d emucore.Drivers) {
	c.drivers = d
}

// RunFrame implements emucore.Emulator. It polls input once, presents
// one frame, and submits one frame's worth of audio samples.
func (c *Core) RunFrame() {
	if c.drivers.Input != nil {
		c.drivers.Input.Poll()
		c.applyInput()
	}

	c.renderPattern()
	if c.drivers.Video != nil {
		c.drivers.Video.PresentFrame(c.pixels, frameWidth, nil, frameWidth, frameHeight)
	}

	if c.drivers.Audio != nil {
		c.submitAudio()
	}

	c.frame++
}

// applyInput scrolls the pattern with player 1's d-pad.
func (c *Core) applyInput() {
	in := c.drivers.Input
	if in.Status(0, emucore.ControlLeft) != 0 {
		c.offsetX--
	}
	if in.Status(0, emucore.ControlRight) != 0 {
		c.offsetX++
	}
	if in.Status(0, emucore.ControlUp) != 0 {
		c.offsetY--
	}
	if in.Status(0, emucore.ControlDown) != 0 {
		c.offsetY++
	}
}

// renderPattern fills the buffer with an XRGB1555 gradient and a moving
// vertical bar.
func (c *Core) renderPattern() {
	barX := (c.frame + c.offsetX) % frameWidth
	if barX < 0 {
		barX += frameWidth
	}
	for y := 0; y < frameHeight; y++ {
		g := uint16((y + c.offsetY) & 0x1F)
		row := c.pixels[y*frameWidth:]
		for x := 0; x < frameWidth; x++ {
			r := uint16(x & 0x1F)
			row[x] = r<<10 | g<<5
		}
		row[barX] = 0x7FFF
	}
}

// submitAudio pushes one frame of a sine tone at the region's rate.
func (c *Core) submitAudio() {
	timing := c.Timing()
	samples := int(float64(emucore.SNES().SampleRate) / timing.FPS)
	step := 2 * math.Pi * toneHz / float64(emucore.SNES().SampleRate)
	for i := 0; i < samples; i++ {
		v := uint16(int16(math.Sin(c.phase) * toneVolume * math.MaxInt16))
		c.drivers.Audio.SubmitSample(v, v)
		c.phase += step
	}
}

// Power implements emucore.Emulator.
func (c *Core) Power() {
	c.frame = 0
	c.offsetX = 0
	c.offsetY = 0
	c.phase = 0
	if len(c.rom) > 0 {
		c.frame = int(c.rom[0])
	}
}

// Reset implements emucore.Emulator. A soft reset restarts the pattern
// but keeps the audio phase.
func (c *Core) Reset() {
	c.frame = 0
	c.offsetX = 0
	c.offsetY = 0
}

// Region implements emucore.Emulator.
func (c *Core) Region() emucore.Region {
	return c.region
}

// SetRegion implements emucore.Emulator.
func (c *Core) SetRegion(region emucore.Region) {
	c.region = region
}

// Timing implements emucore.Emulator.
func (c *Core) Timing() emucore.Timing {
	return emucore.RegionTiming(c.region)
}

// Close implements emucore.Emulator.
func (c *Core) Close() {}

// Frame returns the internal frame counter, for tests.
func (c *Core) Frame() int {
	return c.frame
}
