package standalone

import (
	"io"
	"sync"
)

// AudioRingBuffer is a fixed-capacity byte ring shared between the
// emulation goroutine (writer) and the audio device (reader). Writes
// never block; when the buffer is full the oldest bytes are dropped so
// playback latency stays bounded. Reads block until data arrives or
// the buffer is closed.
type AudioRingBuffer struct {
	mu      sync.Mutex
	cond    *sync.Cond
	data    []byte
	readPos int
	count   int
	closed  bool
}

// NewAudioRingBuffer creates a ring buffer with the given capacity in bytes.
func NewAudioRingBuffer(capacity int) *AudioRingBuffer {
	rb := &AudioRingBuffer{
		data: make([]byte, capacity),
	}
	rb.cond = sync.NewCond(&rb.mu)
	return rb
}

// Write appends p to the buffer, dropping the oldest bytes on overflow.
// Writes to a closed buffer are ignored.
func (rb *AudioRingBuffer) Write(p []byte) {
	rb.mu.Lock()
	defer rb.mu.Unlock()
	if rb.closed || len(rb.data) == 0 {
		return
	}

	if len(p) > len(rb.data) {
		// Only the tail fits.
		p = p[len(p)-len(rb.data):]
	}

	// Drop oldest bytes to make room.
	overflow := rb.count + len(p) - len(rb.data)
	if overflow > 0 {
		rb.readPos = (rb.readPos + overflow) % len(rb.data)
		rb.count -= overflow
	}

	writePos := (rb.readPos + rb.count) % len(rb.data)
	n := copy(rb.data[writePos:], p)
	if n < len(p) {
		copy(rb.data, p[n:])
	}
	rb.count += len(p)

	rb.cond.Broadcast()
}

// Read fills p with buffered bytes, blocking while the buffer is empty
// and open. After Close, remaining data drains and then Read returns
// io.EOF.
func (rb *AudioRingBuffer) Read(p []byte) (int, error) {
	rb.mu.Lock()
	defer rb.mu.Unlock()

	for rb.count == 0 {
		if rb.closed {
			return 0, io.EOF
		}
		rb.cond.Wait()
	}

	n := len(p)
	if n > rb.count {
		n = rb.count
	}
	first := copy(p[:n], rb.data[rb.readPos:])
	if first < n {
		copy(p[first:n], rb.data)
	}
	rb.readPos = (rb.readPos + n) % len(rb.data)
	rb.count -= n
	return n, nil
}

// Buffered returns the number of unread bytes.
func (rb *AudioRingBuffer) Buffered() int {
	rb.mu.Lock()
	defer rb.mu.Unlock()
	return rb.count
}

// Clear discards all buffered data.
func (rb *AudioRingBuffer) Clear() {
	rb.mu.Lock()
	rb.readPos = 0
	rb.count = 0
	rb.mu.Unlock()
}

// Close marks the buffer closed and wakes any blocked reader.
func (rb *AudioRingBuffer) Close() {
	rb.mu.Lock()
	rb.closed = true
	rb.cond.Broadcast()
	rb.mu.Unlock()
}
