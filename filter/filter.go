// Package filter implements CPU-side video filters that convert raw
// XRGB1555 frames from the core into XRGB8888 suitable for display.
// Filters may scale the image; OutputSize reports the scaled dimensions
// for a given source frame before Render is called.
package filter

import "sync"

// Filter transforms one source frame into the destination buffer.
//
// src holds XRGB1555 pixels with srcPitch uint16 elements per row.
// scanlines gives the effective pixel width of each source row; rows
// narrower than width are horizontally doubled to fill the frame. A nil
// slice means every row is width pixels wide. dst holds XRGB8888 pixels
// with dstPitch uint32 elements per row and must be at least
// dstPitch*outHeight long, where outHeight comes from OutputSize.
type Filter interface {
	OutputSize(width, height int) (outWidth, outHeight int)
	Render(dst []uint32, dstPitch int, src []uint16, srcPitch int, scanlines []int, width, height int)
}

var (
	colortableOnce sync.Once
	colortable     [32768]uint32
)

// initColortable fills the XRGB1555 to XRGB8888 lookup table. Each
// 5-bit channel expands to 8 bits by replicating the high bits into
// the low bits so that full intensity maps to 255.
func initColortable() {
	for p := 0; p < 32768; p++ {
		r := uint32(p>>10) & 31
		g := uint32(p>>5) & 31
		b := uint32(p) & 31
		r = (r << 3) | (r >> 2)
		g = (g << 3) | (g >> 2)
		b = (b << 3) | (b >> 2)
		colortable[p] = 0xFF000000 | r<<16 | g<<8 | b
	}
}

// Color converts a single XRGB1555 pixel to XRGB8888.
func Color(p uint16) uint32 {
	colortableOnce.Do(initColortable)
	return colortable[p&0x7FFF]
}

// rowWidth returns the effective width of source row y.
func rowWidth(scanlines []int, y, width int) int {
	if y < len(scanlines) && scanlines[y] > 0 {
		return scanlines[y]
	}
	return width
}

// expandRow converts one source row to XRGB8888, doubling pixels as
// needed so that lineWidth source pixels fill width destination pixels.
// Mixed 256/512-wide frames from mid-frame resolution switches land
// here with factor 2 on the narrow rows.
func expandRow(dst []uint32, src []uint16, lineWidth, width int) {
	colortableOnce.Do(initColortable)
	if lineWidth >= width {
		for x := 0; x < width; x++ {
			dst[x] = colortable[src[x]&0x7FFF]
		}
		return
	}
	factor := width / lineWidth
	if factor < 1 {
		factor = 1
	}
	dx := 0
	for x := 0; x < lineWidth && dx < width; x++ {
		c := colortable[src[x]&0x7FFF]
		for i := 0; i < factor && dx < width; i++ {
			dst[dx] = c
			dx++
		}
	}
	for ; dx < width; dx++ {
		dst[dx] = 0xFF000000
	}
}

// normalize converts the whole frame into a tightly packed width*height
// XRGB1555 buffer with every row expanded to width pixels. Filters that
// need uniform neighbors (Scale2x) work from this.
func normalize(dst []uint16, src []uint16, srcPitch int, scanlines []int, width, height int) {
	for y := 0; y < height; y++ {
		srow := src[y*srcPitch:]
		drow := dst[y*width:]
		lw := rowWidth(scanlines, y, width)
		if lw >= width {
			copy(drow[:width], srow[:width])
			continue
		}
		factor := width / lw
		if factor < 1 {
			factor = 1
		}
		dx := 0
		for x := 0; x < lw && dx < width; x++ {
			for i := 0; i < factor && dx < width; i++ {
				drow[dx] = srow[x]
				dx++
			}
		}
		for ; dx < width; dx++ {
			drow[dx] = 0
		}
	}
}
