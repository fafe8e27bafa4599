package standalone

import (
	"log"
	"sync"
	"sync/atomic"

	emucore "github.com/OpenEmu/BSNES-Core/api"
	"github.com/OpenEmu/BSNES-Core/filter"
)

// SamplePlayer consumes interleaved stereo int16 samples. Satisfied by
// AudioPlayer; tests substitute a recorder.
type SamplePlayer interface {
	QueueSamples(samples []int16)
}

// Notifier shows brief on-screen messages. Satisfied by Notification.
type Notifier interface {
	ShowDefault(message string)
}

// Session is the driver set handed to a running core. It owns the
// per-session state the callbacks consult: the active video filter,
// the mute flag, and the pending screenshot request. All callback
// methods run on the emulation goroutine; the flag setters are safe to
// call from the UI thread.
type Session struct {
	core        emucore.Emulator
	surface     Surface
	audio       SamplePlayer
	input       emucore.InputSource
	notifier    Notifier
	tracer      *FrameTracer
	screenshots *ScreenshotManager

	muted             atomic.Bool
	screenshotPending atomic.Bool

	filterMu sync.Mutex
	filt     filter.Filter
	filterID string

	// Emulation-goroutine-only scratch for the per-pair forward.
	pair [2]int16

	audioLog *AudioLogger
	logMu    sync.Mutex

	lastErr   error
	lastErrMu sync.Mutex
}

// SessionConfig carries the collaborators a Session drives.
type SessionConfig struct {
	Core        emucore.Emulator
	Surface     Surface
	Audio       SamplePlayer
	Input       emucore.InputSource
	Notifier    Notifier
	Screenshots *ScreenshotManager
	FilterID    string
}

// NewSession wires a session and attaches it to the core as its driver
// set.
func NewSession(cfg SessionConfig) *Session {
	s := &Session{
		core:        cfg.Core,
		surface:     cfg.Surface,
		audio:       cfg.Audio,
		input:       cfg.Input,
		notifier:    cfg.Notifier,
		tracer:      NewFrameTracer(),
		screenshots: cfg.Screenshots,
		filt:        filter.New(cfg.FilterID),
		filterID:    cfg.FilterID,
	}
	if cfg.Core != nil {
		cfg.Core.AttachDrivers(emucore.Drivers{Video: s, Audio: s, Input: s})
	}
	return s
}

// Tracer returns the session's frame counters.
func (s *Session) Tracer() *FrameTracer {
	return s.tracer
}

// PresentFrame implements emucore.VideoSink. It runs the active filter
// into the locked surface, publishes the frame, and handles a pending
// screenshot request. A failed surface lock drops the frame silently.
// The frame counter ticks for every call, presented or dropped.
func (s *Session) PresentFrame(pixels []uint16, pitch int, scanlines []int, width, height int) error {
	defer s.tracer.FrameTick()

	s.filterMu.Lock()
	filt := s.filt
	s.filterMu.Unlock()

	outW, outH := filt.OutputSize(width, height)
	dst, dstPitch, ok := s.surface.Lock(outW, outH)
	if !ok {
		s.tracer.FrameDropped()
		return nil
	}
	filt.Render(dst, dstPitch, pixels, pitch, scanlines, width, height)
	s.surface.Unlock()
	s.surface.Refresh()

	// The flag clears before the capture starts so a second request
	// arriving mid-encode produces a second screenshot, never a
	// duplicate of this one.
	if s.screenshots != nil && s.screenshotPending.CompareAndSwap(true, false) {
		path, err := s.screenshots.Capture(dst[:dstPitch*outH], outW, outH)
		if err != nil {
			s.setError(err)
			return err
		}
		log.Printf("Screenshot saved to %s", path)
		if s.notifier != nil {
			s.notifier.ShowDefault("Screenshot saved.")
		}
	}

	return nil
}

// SubmitSample implements emucore.AudioSink. Each pair goes straight
// to the player; the player's ring buffer absorbs the per-pair rate.
// While muted the stream carries zeros so the device keeps its pace
// without sound.
func (s *Session) SubmitSample(left, right uint16) {
	if s.muted.Load() {
		left, right = 0, 0
	}
	s.pair[0], s.pair[1] = int16(left), int16(right)
	if s.audio != nil {
		s.audio.QueueSamples(s.pair[:])
	}
	s.logMu.Lock()
	if s.audioLog != nil {
		if err := s.audioLog.Write(s.pair[:]); err != nil {
			log.Printf("Warning: audio log write failed: %v", err)
			s.audioLog.Close()
			s.audioLog = nil
		}
	}
	s.logMu.Unlock()
}

// Poll implements emucore.InputSource by latching input state for the
// coming frame.
func (s *Session) Poll() {
	if s.input != nil {
		s.input.Poll()
	}
}

// Status implements emucore.InputSource.
func (s *Session) Status(device, control int) int16 {
	if s.input == nil {
		return 0
	}
	return s.input.Status(device, control)
}

// RequestScreenshot arms a one-shot capture of the next presented
// frame.
func (s *Session) RequestScreenshot() {
	s.screenshotPending.Store(true)
}

// ScreenshotPending reports whether a capture is armed.
func (s *Session) ScreenshotPending() bool {
	return s.screenshotPending.Load()
}

// SetMuted switches audio muting. The sample stream keeps flowing.
func (s *Session) SetMuted(muted bool) {
	s.muted.Store(muted)
}

// ToggleMute flips the mute flag and returns the new state.
func (s *Session) ToggleMute() bool {
	muted := !s.muted.Load()
	s.muted.Store(muted)
	return muted
}

// Muted reports the mute flag.
func (s *Session) Muted() bool {
	return s.muted.Load()
}

// SetFilter swaps the active video filter. Safe to call from the UI
// thread; the change takes effect on the next frame.
func (s *Session) SetFilter(id string) {
	s.filterMu.Lock()
	s.filt = filter.New(id)
	s.filterID = id
	s.filterMu.Unlock()
}

// FilterID returns the active filter's ID.
func (s *Session) FilterID() string {
	s.filterMu.Lock()
	defer s.filterMu.Unlock()
	return s.filterID
}

// CycleFilter switches to the next filter in registry order and
// returns its ID.
func (s *Session) CycleFilter() string {
	s.filterMu.Lock()
	s.filterID = filter.NextID(s.filterID)
	s.filt = filter.New(s.filterID)
	id := s.filterID
	s.filterMu.Unlock()
	return id
}

// StartAudioLog begins recording the audio stream to a WAV file.
// A previous log is closed first.
func (s *Session) StartAudioLog(path string, sampleRate int) error {
	logger, err := NewAudioLogger(path, sampleRate)
	if err != nil {
		return err
	}
	s.logMu.Lock()
	if s.audioLog != nil {
		s.audioLog.Close()
	}
	s.audioLog = logger
	s.logMu.Unlock()
	return nil
}

// StopAudioLog finalizes and closes the audio log if one is active.
func (s *Session) StopAudioLog() {
	s.logMu.Lock()
	if s.audioLog != nil {
		if err := s.audioLog.Close(); err != nil {
			log.Printf("Warning: closing audio log: %v", err)
		}
		s.audioLog = nil
	}
	s.logMu.Unlock()
}

// setError records a callback error for the run loop to pick up.
func (s *Session) setError(err error) {
	s.lastErrMu.Lock()
	s.lastErr = err
	s.lastErrMu.Unlock()
}

// TakeError returns and clears the last callback error. The core's
// frame API has no error channel, so PresentFrame failures surface
// here after the frame completes.
func (s *Session) TakeError() error {
	s.lastErrMu.Lock()
	err := s.lastErr
	s.lastErr = nil
	s.lastErrMu.Unlock()
	return err
}
