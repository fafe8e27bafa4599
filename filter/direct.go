package filter

// Direct converts pixels without scaling.
type Direct struct{}

// NewDirect returns the pass-through filter.
func NewDirect() *Direct {
	return &Direct{}
}

func (f *Direct) OutputSize(width, height int) (int, int) {
	return width, height
}

func (f *Direct) Render(dst []uint32, dstPitch int, src []uint16, srcPitch int, scanlines []int, width, height int) {
	for y := 0; y < height; y++ {
		expandRow(dst[y*dstPitch:], src[y*srcPitch:], rowWidth(scanlines, y, width), width)
	}
}
