package standalone

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// FrameRenderer owns the ebiten offscreen buffer and draws published
// frames to the screen with aspect-ratio-preserving scaling.
type FrameRenderer struct {
	offscreen *ebiten.Image
	rgba      []byte // Pre-allocated XRGB8888-to-RGBA conversion buffer
	drawOpts  ebiten.DrawImageOptions
	lastSeq   uint64
}

// NewFrameRenderer creates a renderer.
func NewFrameRenderer() *FrameRenderer {
	return &FrameRenderer{}
}

// Upload converts an XRGB8888 frame to the offscreen image. Frames
// with an unchanged sequence number skip the pixel upload but still
// redraw from the cached offscreen.
func (r *FrameRenderer) Upload(pixels []uint32, width, height int, seq uint64) {
	if width == 0 || height == 0 || len(pixels) < width*height {
		return
	}

	if r.offscreen == nil || r.offscreen.Bounds().Dx() != width || r.offscreen.Bounds().Dy() != height {
		r.offscreen = ebiten.NewImage(width, height)
		r.lastSeq = seq - 1
	}
	if seq == r.lastSeq {
		return
	}
	r.lastSeq = seq

	needed := width * height * 4
	if cap(r.rgba) < needed {
		r.rgba = make([]byte, needed)
	}
	rgba := r.rgba[:needed]
	for i, p := range pixels[:width*height] {
		rgba[i*4] = byte(p >> 16)
		rgba[i*4+1] = byte(p >> 8)
		rgba[i*4+2] = byte(p)
		rgba[i*4+3] = 0xFF
	}
	r.offscreen.WritePixels(rgba)
}

// Draw renders the uploaded frame to the screen, scaled to fit while
// preserving the given display aspect ratio. smooth selects linear
// filtering instead of nearest-neighbor.
func (r *FrameRenderer) Draw(screen *ebiten.Image, aspectRatio float64, smooth bool) {
	if r.offscreen == nil {
		return
	}

	screenW, screenH := screen.Bounds().Dx(), screen.Bounds().Dy()
	nativeW := float64(r.offscreen.Bounds().Dx())
	nativeH := float64(r.offscreen.Bounds().Dy())
	if nativeW == 0 || nativeH == 0 {
		return
	}

	// Target dimensions honoring the display aspect ratio rather than
	// the buffer's pixel dimensions (SNES pixels are not square).
	targetW := nativeH * aspectRatio
	targetH := nativeH

	scaleFit := float64(screenW) / targetW
	if s := float64(screenH) / targetH; s < scaleFit {
		scaleFit = s
	}

	scaledW := targetW * scaleFit
	scaledH := targetH * scaleFit
	offsetX := (float64(screenW) - scaledW) / 2
	offsetY := (float64(screenH) - scaledH) / 2

	r.drawOpts = ebiten.DrawImageOptions{}
	r.drawOpts.GeoM.Scale(scaledW/nativeW, scaledH/nativeH)
	r.drawOpts.GeoM.Translate(offsetX, offsetY)
	if smooth {
		r.drawOpts.Filter = ebiten.FilterLinear
	} else {
		r.drawOpts.Filter = ebiten.FilterNearest
	}
	screen.DrawImage(r.offscreen, &r.drawOpts)
}

// Image returns the offscreen image at native resolution, or nil if no
// frame has been uploaded. Used for screenshot capture.
func (r *FrameRenderer) Image() *ebiten.Image {
	return r.offscreen
}
