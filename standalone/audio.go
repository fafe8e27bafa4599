package standalone

import (
	"fmt"
	"sync"
	"time"

	"github.com/ebitengine/oto/v3"
)

// audioSampleRate is the SNES DSP output rate.
const audioSampleRate = 32040

// ringCapacityBytes is ~128ms of stereo 16-bit audio at 32040Hz.
const ringCapacityBytes = 16384

// otoBufferBytes trims the mux player buffer from its 0.5s default to
// ~50ms. A large internal buffer at startup makes frame pacing
// over-correct.
const otoBufferBytes = 6400

// AudioPlayer feeds the OS audio device through oto. The emulation
// goroutine pushes int16 stereo samples in; oto pulls bytes out of the
// ring buffer on its own thread.
type AudioPlayer struct {
	player  *oto.Player
	ring    *AudioRingBuffer
	scratch []byte // reused for the int16-to-byte conversion
}

// The oto context is process-global and cannot be torn down, so it is
// created once.
var (
	otoCtx      *oto.Context
	otoInitOnce sync.Once
	otoInitErr  error
)

func ensureOtoContext() (*oto.Context, error) {
	otoInitOnce.Do(func() {
		var ready chan struct{}
		otoCtx, ready, otoInitErr = oto.NewContext(&oto.NewContextOptions{
			SampleRate:   audioSampleRate,
			ChannelCount: 2,
			Format:       oto.FormatSignedInt16LE,
			// Smaller than the OS default ~100ms queue.
			BufferSize: 50 * time.Millisecond,
		})
		if otoInitErr == nil {
			<-ready
		}
	})
	return otoCtx, otoInitErr
}

// NewAudioPlayer opens the audio device and starts playback. volume is
// applied before Play so a muted start does not pop.
func NewAudioPlayer(volume float64) (*AudioPlayer, error) {
	ctx, err := ensureOtoContext()
	if err != nil {
		return nil, fmt.Errorf("oto audio not available: %w", err)
	}

	ring := NewAudioRingBuffer(ringCapacityBytes)
	player := ctx.NewPlayer(ring)
	player.SetBufferSize(otoBufferBytes)
	player.SetVolume(volume)
	player.Play()

	return &AudioPlayer{
		player:  player,
		ring:    ring,
		scratch: make([]byte, 0, 4096),
	}, nil
}

// QueueSamples hands interleaved stereo int16 samples to the device as
// little-endian bytes. Never blocks; the ring drops its oldest data
// when the device falls behind.
func (a *AudioPlayer) QueueSamples(samples []int16) {
	if len(samples) == 0 {
		return
	}
	if cap(a.scratch) < len(samples)*2 {
		a.scratch = make([]byte, 0, len(samples)*2)
	}
	a.scratch = a.scratch[:0]
	for _, s := range samples {
		a.scratch = append(a.scratch, byte(s), byte(s>>8))
	}
	a.ring.Write(a.scratch)
}

// GetBufferLevel returns the bytes queued across the ring buffer and
// the oto player. Frame pacing reads this to decide whether emulation
// is running ahead of the device.
func (a *AudioPlayer) GetBufferLevel() int {
	return a.ring.Buffered() + a.player.BufferedSize()
}

// ClearQueue drops queued audio. Called on reset and power cycle so
// the old game's sound does not play over the new one.
func (a *AudioPlayer) ClearQueue() {
	a.ring.Clear()
}

// SetVolume sets playback volume, clamped to 0..2 (200%).
func (a *AudioPlayer) SetVolume(vol float64) {
	if vol < 0 {
		vol = 0
	} else if vol > 2 {
		vol = 2
	}
	a.player.SetVolume(vol)
}

// Close stops the device reader and releases the player.
func (a *AudioPlayer) Close() {
	if a.ring != nil {
		a.ring.Close()
	}
	if a.player != nil {
		a.player.Close()
	}
}
