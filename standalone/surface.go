package standalone

import "sync"

// Surface is the destination for rendered frames. The emulation
// goroutine brackets each frame in Lock/Unlock and then calls Refresh
// to publish it. Lock may fail; the caller drops the frame without
// calling Unlock and tries again next frame.
type Surface interface {
	// Lock acquires the pixel buffer for writing at the given frame
	// dimensions. pitch is the number of uint32 elements per row.
	Lock(width, height int) (pixels []uint32, pitch int, ok bool)

	// Unlock releases the buffer acquired by Lock.
	Unlock()

	// Refresh publishes the most recently unlocked frame for display.
	Refresh()
}

// SharedSurface holds XRGB8888 pixel data written by the emulation
// goroutine and read by Ebiten's Draw() method. Uses separate write
// and read buffers so the emu goroutine can write new data while Draw
// uses the read copy. Lock fails instead of blocking when Draw holds
// the buffer, and once when the buffer regrows for a larger frame.
type SharedSurface struct {
	mu          sync.Mutex
	writePixels []uint32
	readPixels  []uint32
	width       int
	height      int
	seq         uint64
}

// NewSharedSurface creates a surface pre-sized for the given maximum
// frame dimensions. Larger frames trigger a one-frame regrow.
func NewSharedSurface(width, height int) *SharedSurface {
	size := width * height
	return &SharedSurface{
		writePixels: make([]uint32, size),
		readPixels:  make([]uint32, size),
	}
}

// Lock implements Surface. The mutex stays held between Lock and
// Unlock so Draw never observes a half-written frame.
func (s *SharedSurface) Lock(width, height int) ([]uint32, int, bool) {
	if width <= 0 || height <= 0 {
		return nil, 0, false
	}
	if !s.mu.TryLock() {
		return nil, 0, false
	}
	size := width * height
	if size > len(s.writePixels) {
		s.writePixels = make([]uint32, size)
		s.readPixels = make([]uint32, size)
		s.mu.Unlock()
		return nil, 0, false
	}
	s.width = width
	s.height = height
	return s.writePixels[:size], width, true
}

// Unlock implements Surface.
func (s *SharedSurface) Unlock() {
	s.mu.Unlock()
}

// Refresh implements Surface. It marks the written frame as the
// current one; Read picks it up on the next Draw.
func (s *SharedSurface) Refresh() {
	s.mu.Lock()
	s.seq++
	s.mu.Unlock()
}

// Read returns a snapshot of the current frame and its sequence
// number. The returned slice belongs to the surface's read buffer and
// stays valid until the next Read; callers on the Ebiten thread use it
// without holding any lock. Sequence numbers let callers skip redraws
// when no new frame has been published.
func (s *SharedSurface) Read() (pixels []uint32, width, height int, seq uint64) {
	s.mu.Lock()
	width = s.width
	height = s.height
	seq = s.seq
	n := width * height
	if n > 0 {
		copy(s.readPixels[:n], s.writePixels[:n])
	}
	pixels = s.readPixels[:n]
	s.mu.Unlock()
	return
}
