package emucore

import (
	"math"
	"testing"
)

func TestDisplayAspectRatio(t *testing.T) {
	tests := []struct {
		name     string
		width    int
		height   int
		par      float64
		expected float64
	}{
		{
			name:     "Lores 224 lines",
			width:    256,
			height:   224,
			par:      8.0 / 7.0,
			expected: (256.0 / 224.0) * (8.0 / 7.0),
		},
		{
			name:     "Lores 239 lines",
			width:    256,
			height:   239,
			par:      8.0 / 7.0,
			expected: (256.0 / 239.0) * (8.0 / 7.0),
		},
		{
			name:     "Hires 224 lines",
			width:    512,
			height:   224,
			par:      8.0 / 7.0,
			expected: (256.0 / 224.0) * (8.0 / 7.0),
		},
		{
			name:     "Hires interlaced",
			width:    512,
			height:   448,
			par:      8.0 / 7.0,
			expected: (256.0 / 224.0) * (8.0 / 7.0),
		},
		{
			name:     "Square pixels",
			width:    256,
			height:   224,
			par:      1.0,
			expected: 256.0 / 224.0,
		},
		{
			name:     "Zero dimensions fall back to 4:3",
			width:    0,
			height:   0,
			par:      8.0 / 7.0,
			expected: 4.0 / 3.0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DisplayAspectRatio(tt.width, tt.height, tt.par)
			if math.Abs(got-tt.expected) > 1e-9 {
				t.Errorf("DisplayAspectRatio(%d, %d, %f) = %f, want %f",
					tt.width, tt.height, tt.par, got, tt.expected)
			}
		})
	}
}

func TestRegionTiming(t *testing.T) {
	ntsc := RegionTiming(RegionNTSC)
	if math.Abs(ntsc.FPS-60.09881) > 1e-5 || ntsc.Scanlines != 262 {
		t.Errorf("NTSC timing = %+v, want 60.09881 FPS / 262 scanlines", ntsc)
	}
	pal := RegionTiming(RegionPAL)
	if math.Abs(pal.FPS-50.00697) > 1e-5 || pal.Scanlines != 312 {
		t.Errorf("PAL timing = %+v, want 50.00697 FPS / 312 scanlines", pal)
	}
}

func TestSNESInfo(t *testing.T) {
	info := SNES()
	if info.ScreenWidth != 512 || info.MaxScreenHeight != 478 {
		t.Errorf("screen bounds = %dx%d, want 512x478", info.ScreenWidth, info.MaxScreenHeight)
	}
	if info.SampleRate != 32040 {
		t.Errorf("sample rate = %d, want 32040", info.SampleRate)
	}
	if len(info.Extensions) == 0 || info.Extensions[0] != ".sfc" {
		t.Errorf("extensions = %v, want .sfc first", info.Extensions)
	}
}
