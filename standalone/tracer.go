package standalone

import "sync/atomic"

// FrameTracer counts presented and dropped frames. The emulation
// goroutine ticks it once per emulated frame; the UI thread reads the
// counters for the status display.
type FrameTracer struct {
	frames  atomic.Uint64
	dropped atomic.Uint64
}

// NewFrameTracer creates a tracer.
func NewFrameTracer() *FrameTracer {
	return &FrameTracer{}
}

// FrameTick records one completed emulated frame. Runs whether or not
// the frame reached the display.
func (t *FrameTracer) FrameTick() {
	t.frames.Add(1)
}

// FrameDropped records a frame that could not be presented.
func (t *FrameTracer) FrameDropped() {
	t.dropped.Add(1)
}

// Frames returns the total emulated frame count.
func (t *FrameTracer) Frames() uint64 {
	return t.frames.Load()
}

// Dropped returns the total dropped frame count.
func (t *FrameTracer) Dropped() uint64 {
	return t.dropped.Load()
}

// Reset zeroes both counters.
func (t *FrameTracer) Reset() {
	t.frames.Store(0)
	t.dropped.Store(0)
}
