package standalone

import (
	"bytes"
	"io"
	"testing"
	"time"
)

// seq returns n bytes counting up from start, so positions are easy to
// check after the ring wraps or drops data.
func seq(start, n int) []byte {
	b := make([]byte, n)
	for i := range b {
		b[i] = byte(start + i)
	}
	return b
}

// drain reads exactly n bytes or fails the test.
func drain(t *testing.T, rb *AudioRingBuffer, n int) []byte {
	t.Helper()
	out := make([]byte, n)
	read := 0
	for read < n {
		m, err := rb.Read(out[read:])
		if err != nil {
			t.Fatalf("Read failed after %d bytes: %v", read, err)
		}
		read += m
	}
	return out
}

func TestAudioRingBufferRoundTrip(t *testing.T) {
	rb := NewAudioRingBuffer(64)

	in := seq(0, 10)
	rb.Write(in)
	if got := rb.Buffered(); got != 10 {
		t.Errorf("Buffered = %d, want 10", got)
	}
	if out := drain(t, rb, 10); !bytes.Equal(out, in) {
		t.Errorf("read %v, want %v", out, in)
	}
	if got := rb.Buffered(); got != 0 {
		t.Errorf("Buffered after drain = %d, want 0", got)
	}
}

func TestAudioRingBufferDropsOldestOnOverflow(t *testing.T) {
	// The write path never blocks the emulation goroutine; when the
	// device falls behind, the oldest audio goes first.
	rb := NewAudioRingBuffer(8)

	rb.Write(seq(0, 6))
	rb.Write(seq(6, 5)) // 11 bytes into an 8-byte ring

	if got := rb.Buffered(); got != 8 {
		t.Fatalf("Buffered = %d, want 8", got)
	}
	if out := drain(t, rb, 8); !bytes.Equal(out, seq(3, 8)) {
		t.Errorf("read %v, want bytes 3..10", out)
	}
}

func TestAudioRingBufferWriteLargerThanCapacity(t *testing.T) {
	// A write bigger than the whole ring keeps only its tail.
	rb := NewAudioRingBuffer(4)

	rb.Write(seq(0, 9))

	if got := rb.Buffered(); got != 4 {
		t.Fatalf("Buffered = %d, want 4", got)
	}
	if out := drain(t, rb, 4); !bytes.Equal(out, seq(5, 4)) {
		t.Errorf("read %v, want bytes 5..8", out)
	}
}

func TestAudioRingBufferWrapAround(t *testing.T) {
	rb := NewAudioRingBuffer(8)

	rb.Write(seq(0, 6))
	drain(t, rb, 4)     // readPos now mid-ring
	rb.Write(seq(6, 5)) // crosses the physical end

	if got := rb.Buffered(); got != 7 {
		t.Fatalf("Buffered = %d, want 7", got)
	}
	if out := drain(t, rb, 7); !bytes.Equal(out, seq(4, 7)) {
		t.Errorf("read %v, want bytes 4..10", out)
	}
}

func TestAudioRingBufferPartialRead(t *testing.T) {
	// A short destination buffer takes what fits and leaves the rest.
	rb := NewAudioRingBuffer(32)
	rb.Write(seq(0, 10))

	out := make([]byte, 4)
	n, err := rb.Read(out)
	if err != nil {
		t.Fatalf("Read failed: %v", err)
	}
	if n != 4 || !bytes.Equal(out, seq(0, 4)) {
		t.Errorf("read %d bytes %v, want first 4", n, out)
	}
	if got := rb.Buffered(); got != 6 {
		t.Errorf("Buffered = %d, want 6", got)
	}
}

func TestAudioRingBufferClear(t *testing.T) {
	rb := NewAudioRingBuffer(32)
	rb.Write(seq(0, 10))

	rb.Clear()
	if got := rb.Buffered(); got != 0 {
		t.Errorf("Buffered after Clear = %d, want 0", got)
	}

	// The ring keeps working after a reset.
	rb.Write(seq(100, 3))
	if out := drain(t, rb, 3); !bytes.Equal(out, seq(100, 3)) {
		t.Errorf("read %v after Clear, want bytes 100..102", out)
	}
}

func TestAudioRingBufferCloseDrainsThenEOF(t *testing.T) {
	rb := NewAudioRingBuffer(32)
	rb.Write(seq(0, 5))
	rb.Close()

	// Buffered audio survives Close and still plays out.
	if out := drain(t, rb, 5); !bytes.Equal(out, seq(0, 5)) {
		t.Errorf("read %v after Close, want bytes 0..4", out)
	}
	if _, err := rb.Read(make([]byte, 4)); err != io.EOF {
		t.Errorf("Read on drained closed ring = %v, want io.EOF", err)
	}
}

func TestAudioRingBufferCloseUnblocksReader(t *testing.T) {
	rb := NewAudioRingBuffer(32)

	done := make(chan error, 1)
	go func() {
		_, err := rb.Read(make([]byte, 4))
		done <- err
	}()

	// Give the reader time to block on the empty ring.
	time.Sleep(20 * time.Millisecond)
	rb.Close()

	select {
	case err := <-done:
		if err != io.EOF {
			t.Errorf("blocked Read returned %v, want io.EOF", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("Close did not unblock the reader")
	}
}

func TestAudioRingBufferWriteAfterClose(t *testing.T) {
	rb := NewAudioRingBuffer(32)
	rb.Close()

	rb.Write(seq(0, 4))
	if got := rb.Buffered(); got != 0 {
		t.Errorf("Buffered = %d, want writes after Close dropped", got)
	}
}

func TestAudioRingBufferConcurrentReadWrite(t *testing.T) {
	rb := NewAudioRingBuffer(256)
	const total = 4096

	go func() {
		for off := 0; off < total; off += 64 {
			rb.Write(seq(off, 64))
			time.Sleep(time.Millisecond)
		}
		rb.Close()
	}()

	var got []byte
	buf := make([]byte, 128)
	for {
		n, err := rb.Read(buf)
		got = append(got, buf[:n]...)
		if err == io.EOF {
			break
		}
		if err != nil {
			t.Fatalf("Read failed: %v", err)
		}
	}

	if len(got) == 0 {
		t.Fatal("reader saw no data")
	}
	// The ring may drop when the reader lags, but bytes must never go
	// backward (seq wraps with the byte type, so compare modulo 256).
	for i := 1; i < len(got); i++ {
		if got[i] == got[i-1] {
			t.Fatalf("byte %d repeats value %d", i, got[i])
		}
	}
}
