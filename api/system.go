package emucore

// SystemInfo describes the emulated system for shell configuration.
type SystemInfo struct {
	Name             string
	ConsoleName      string
	Extensions       []string
	ScreenWidth      int // Maximum output width (512 with hires)
	MaxScreenHeight  int // Maximum output height (478 interlaced)
	PixelAspectRatio float64
	SampleRate       int
	Players          int
}

// SNES returns the system description for the Super Famicom / SNES.
func SNES() SystemInfo {
	return SystemInfo{
		Name:             "bsnes",
		ConsoleName:      "Super Nintendo Entertainment System",
		Extensions:       []string{".sfc", ".smc", ".swc", ".fig"},
		ScreenWidth:      512,
		MaxScreenHeight:  478,
		PixelAspectRatio: 8.0 / 7.0,
		SampleRate:       32040,
		Players:          2,
	}
}

// DisplayAspectRatio computes the display aspect ratio from source
// dimensions and the pixel aspect ratio. Hires (512-wide) and interlaced
// (448+ line) frames pack twice the samples into the same display area,
// so they do not change the ratio.
func DisplayAspectRatio(width, height int, par float64) float64 {
	if width <= 0 || height <= 0 {
		return 4.0 / 3.0
	}
	w := float64(width)
	h := float64(height)
	if width > 256 {
		w /= 2
	}
	if height > 240 {
		h /= 2
	}
	return w / h * par
}
