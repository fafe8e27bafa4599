package emucore

// Region represents a console video region.
type Region int

const (
	RegionNTSC Region = iota
	RegionPAL
)

// String returns the display name of the region.
func (r Region) String() string {
	switch r {
	case RegionNTSC:
		return "NTSC"
	case RegionPAL:
		return "PAL"
	default:
		return "Unknown"
	}
}

// Timing holds the frame rate and scanline count for a region.
// CPU clocks are core-internal and not exposed here.
type Timing struct {
	FPS       float64
	Scanlines int
}

// RegionTiming returns the canonical SNES timing for a region.
func RegionTiming(r Region) Timing {
	if r == RegionPAL {
		return Timing{FPS: 50.00697, Scanlines: 312}
	}
	return Timing{FPS: 60.09881, Scanlines: 262}
}
