package filter

// Scanline doubles the frame vertically and darkens every other output
// row to imitate the gaps between CRT scanlines. Frames that are
// already interlaced (240+ source rows) pass through undoubled so that
// hires content is not stretched past the display buffer.
type Scanline struct{}

// NewScanline returns the scanline filter.
func NewScanline() *Scanline {
	return &Scanline{}
}

func (f *Scanline) OutputSize(width, height int) (int, int) {
	if height > 240 {
		return width, height
	}
	return width, height * 2
}

func (f *Scanline) Render(dst []uint32, dstPitch int, src []uint16, srcPitch int, scanlines []int, width, height int) {
	if height > 240 {
		for y := 0; y < height; y++ {
			row := dst[y*dstPitch:]
			expandRow(row, src[y*srcPitch:], rowWidth(scanlines, y, width), width)
			if y&1 == 1 {
				darkenRow(row, width)
			}
		}
		return
	}
	for y := 0; y < height; y++ {
		bright := dst[(y*2)*dstPitch:]
		expandRow(bright, src[y*srcPitch:], rowWidth(scanlines, y, width), width)
		dark := dst[(y*2+1)*dstPitch:]
		copy(dark[:width], bright[:width])
		darkenRow(dark, width)
	}
}

// darkenRow halves each channel in place, keeping alpha opaque.
func darkenRow(row []uint32, width int) {
	for x := 0; x < width; x++ {
		row[x] = 0xFF000000 | (row[x]>>1)&0x7F7F7F
	}
}
