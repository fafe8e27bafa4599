package filter

import "testing"

func TestColorExpansion(t *testing.T) {
	tests := []struct {
		name string
		in   uint16
		want uint32
	}{
		{"black", 0x0000, 0xFF000000},
		{"white", 0x7FFF, 0xFFFFFFFF},
		{"pure red", 31 << 10, 0xFFFF0000},
		{"pure green", 31 << 5, 0xFF00FF00},
		{"pure blue", 31, 0xFF0000FF},
		{"mid gray", 16<<10 | 16<<5 | 16, 0xFF848484},
		{"ignores bit 15", 0x8000 | 31, 0xFF0000FF},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Color(tt.in); got != tt.want {
				t.Errorf("Color(%#04x) = %#08x, want %#08x", tt.in, got, tt.want)
			}
		})
	}
}

func TestDirectDoublesShortRows(t *testing.T) {
	// Two rows in a 512-wide frame, the second only 256 pixels wide.
	const width, height, pitch = 512, 2, 512
	src := make([]uint16, pitch*height)
	for x := 0; x < width; x++ {
		src[x] = uint16(x) & 0x7FFF
	}
	for x := 0; x < 256; x++ {
		src[pitch+x] = uint16(x)
	}
	scanlines := []int{512, 256}

	f := NewDirect()
	ow, oh := f.OutputSize(width, height)
	if ow != width || oh != height {
		t.Fatalf("OutputSize = %dx%d, want %dx%d", ow, oh, width, height)
	}
	dst := make([]uint32, ow*oh)
	f.Render(dst, ow, src, pitch, scanlines, width, height)

	for x := 0; x < width; x++ {
		if dst[x] != Color(uint16(x)) {
			t.Fatalf("row 0 pixel %d = %#08x, want %#08x", x, dst[x], Color(uint16(x)))
		}
	}
	// Row 1: every source pixel appears twice.
	for x := 0; x < 256; x++ {
		want := Color(uint16(x))
		if dst[ow+2*x] != want || dst[ow+2*x+1] != want {
			t.Fatalf("row 1 pixel %d not doubled: %#08x %#08x, want %#08x",
				x, dst[ow+2*x], dst[ow+2*x+1], want)
		}
	}
}

func TestScanlineDarkensOddRows(t *testing.T) {
	const width, height = 256, 2
	src := make([]uint16, width*height)
	for i := range src {
		src[i] = 0x7FFF
	}

	f := NewScanline()
	ow, oh := f.OutputSize(width, height)
	if ow != width || oh != height*2 {
		t.Fatalf("OutputSize = %dx%d, want %dx%d", ow, oh, width, height*2)
	}
	dst := make([]uint32, ow*oh)
	f.Render(dst, ow, src, width, nil, width, height)

	for y := 0; y < oh; y++ {
		want := uint32(0xFFFFFFFF)
		if y&1 == 1 {
			want = 0xFF7F7F7F
		}
		for x := 0; x < ow; x++ {
			if dst[y*ow+x] != want {
				t.Fatalf("pixel (%d,%d) = %#08x, want %#08x", x, y, dst[y*ow+x], want)
			}
		}
	}
}

func TestScanlinePassesThroughInterlaced(t *testing.T) {
	f := NewScanline()
	if _, oh := f.OutputSize(512, 448); oh != 448 {
		t.Errorf("interlaced OutputSize height = %d, want 448", oh)
	}
	if _, oh := f.OutputSize(256, 224); oh != 448 {
		t.Errorf("progressive OutputSize height = %d, want 448", oh)
	}
}

func TestScale2xSolidColor(t *testing.T) {
	// A uniform frame has no edges, so every output pixel keeps the
	// source color.
	const width, height = 4, 4
	src := make([]uint16, width*height)
	for i := range src {
		src[i] = 31 << 10
	}

	f := NewScale2x()
	ow, oh := f.OutputSize(width, height)
	if ow != width*2 || oh != height*2 {
		t.Fatalf("OutputSize = %dx%d, want %dx%d", ow, oh, width*2, height*2)
	}
	dst := make([]uint32, ow*oh)
	f.Render(dst, ow, src, width, nil, width, height)

	for i, p := range dst {
		if p != 0xFFFF0000 {
			t.Fatalf("pixel %d = %#08x, want 0xFFFF0000", i, p)
		}
	}
}

func TestScale2xDiagonalEdge(t *testing.T) {
	// A 2x2 checker with matching diagonal neighbors triggers the
	// corner-copy rule on the inner corners.
	const width, height = 2, 2
	const fg, bg = uint16(0x7FFF), uint16(0x0000)
	src := []uint16{
		fg, bg,
		bg, fg,
	}

	f := NewScale2x()
	dst := make([]uint32, 4*4)
	f.Render(dst, 4, src, width, nil, width, height)

	// Source (0,0) is fg with bg to the right and below. The right and
	// below neighbors match, so the bottom-right output corner copies bg.
	if dst[4+1] != Color(bg) {
		t.Errorf("bottom-right of (0,0) = %#08x, want %#08x", dst[4+1], Color(bg))
	}
	// The other three corners keep fg.
	for _, i := range []int{0, 1, 4} {
		if dst[i] != Color(fg) {
			t.Errorf("corner %d of (0,0) = %#08x, want %#08x", i, dst[i], Color(fg))
		}
	}
	// Source (1,0) is bg with fg left and below, so its bottom-left
	// corner copies fg.
	if dst[4+2] != Color(fg) {
		t.Errorf("bottom-left of (1,0) = %#08x, want %#08x", dst[4+2], Color(fg))
	}
}

func TestRegistry(t *testing.T) {
	if _, ok := New("no-such-filter").(*Direct); !ok {
		t.Error("unknown ID should fall back to Direct")
	}
	if _, ok := New("scale2x").(*Scale2x); !ok {
		t.Error("New(scale2x) did not return Scale2x")
	}
	if Valid("bogus") {
		t.Error("Valid(bogus) = true")
	}
	// Cycling from the last entry wraps to the first.
	last := Available[len(Available)-1].ID
	if NextID(last) != Available[0].ID {
		t.Errorf("NextID(%s) = %s, want %s", last, NextID(last), Available[0].ID)
	}
	if NextID("direct") != "scanline" {
		t.Errorf("NextID(direct) = %s, want scanline", NextID("direct"))
	}
}
