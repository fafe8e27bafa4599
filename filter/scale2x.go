package filter

// Scale2x doubles the frame in both directions using the EPX rule:
// each source pixel expands to a 2x2 block whose corners copy a
// neighbor when the two adjacent neighbors match and the opposing
// pair does not. Comparisons run on the raw XRGB1555 values before
// color conversion.
type Scale2x struct {
	// Normalized frame buffer, grown as needed.
	norm []uint16
}

// NewScale2x returns the Scale2x filter.
func NewScale2x() *Scale2x {
	return &Scale2x{}
}

func (f *Scale2x) OutputSize(width, height int) (int, int) {
	return width * 2, height * 2
}

func (f *Scale2x) Render(dst []uint32, dstPitch int, src []uint16, srcPitch int, scanlines []int, width, height int) {
	colortableOnce.Do(initColortable)

	if len(f.norm) < width*height {
		f.norm = make([]uint16, width*height)
	}
	normalize(f.norm, src, srcPitch, scanlines, width, height)

	for y := 0; y < height; y++ {
		row := f.norm[y*width:]
		up := row
		if y > 0 {
			up = f.norm[(y-1)*width:]
		}
		down := row
		if y < height-1 {
			down = f.norm[(y+1)*width:]
		}
		out0 := dst[(y*2)*dstPitch:]
		out1 := dst[(y*2+1)*dstPitch:]

		for x := 0; x < width; x++ {
			p := row[x]
			a := up[x]
			d := down[x]
			c := p
			if x > 0 {
				c = row[x-1]
			}
			b := p
			if x < width-1 {
				b = row[x+1]
			}

			e0, e1, e2, e3 := p, p, p, p
			if c == a && c != d && a != b {
				e0 = a
			}
			if a == b && a != c && b != d {
				e1 = b
			}
			if d == c && d != b && c != a {
				e2 = c
			}
			if b == d && b != a && d != c {
				e3 = d
			}

			out0[x*2] = colortable[e0&0x7FFF]
			out0[x*2+1] = colortable[e1&0x7FFF]
			out1[x*2] = colortable[e2&0x7FFF]
			out1[x*2+1] = colortable[e3&0x7FFF]
		}
	}
}
