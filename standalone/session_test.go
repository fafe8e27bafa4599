package standalone

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	emucore "github.com/OpenEmu/BSNES-Core/api"
)

// fakeSurface records the Lock/Unlock/Refresh sequence and can be told
// to refuse locks.
type fakeSurface struct {
	pixels    []uint32
	width     int
	height    int
	refuse    bool
	locked    bool
	calls     []string
	refreshed int
}

func newFakeSurface() *fakeSurface {
	return &fakeSurface{pixels: make([]uint32, 1024*478*2)}
}

func (f *fakeSurface) Lock(width, height int) ([]uint32, int, bool) {
	f.calls = append(f.calls, "lock")
	if f.refuse {
		return nil, 0, false
	}
	f.locked = true
	f.width, f.height = width, height
	return f.pixels[:width*height], width, true
}

func (f *fakeSurface) Unlock() {
	f.calls = append(f.calls, "unlock")
	f.locked = false
}

func (f *fakeSurface) Refresh() {
	f.calls = append(f.calls, "refresh")
	f.refreshed++
}

type fakePlayer struct {
	samples []int16
}

func (p *fakePlayer) QueueSamples(samples []int16) {
	p.samples = append(p.samples, samples...)
}

type fakeNotifier struct {
	messages []string
}

func (n *fakeNotifier) ShowDefault(message string) {
	n.messages = append(n.messages, message)
}

func testFrame() ([]uint16, int, int, int) {
	const width, height = 256, 224
	pixels := make([]uint16, width*height)
	for i := range pixels {
		pixels[i] = 0x7FFF
	}
	return pixels, width, width, height
}

func TestSessionPresentFrame(t *testing.T) {
	surface := newFakeSurface()
	s := NewSession(SessionConfig{Surface: surface, FilterID: "direct"})

	pixels, pitch, width, height := testFrame()
	if err := s.PresentFrame(pixels, pitch, nil, width, height); err != nil {
		t.Fatalf("PresentFrame failed: %v", err)
	}

	want := []string{"lock", "unlock", "refresh"}
	if len(surface.calls) != 3 {
		t.Fatalf("surface calls = %v, want %v", surface.calls, want)
	}
	for i, call := range want {
		if surface.calls[i] != call {
			t.Fatalf("surface calls = %v, want %v", surface.calls, want)
		}
	}
	if surface.width != width || surface.height != height {
		t.Errorf("surface size = %dx%d, want %dx%d", surface.width, surface.height, width, height)
	}
	if surface.pixels[0] != 0xFFFFFFFF {
		t.Errorf("first pixel = %#08x, want white", surface.pixels[0])
	}
	if s.Tracer().Frames() != 1 || s.Tracer().Dropped() != 0 {
		t.Errorf("frames=%d dropped=%d, want 1/0", s.Tracer().Frames(), s.Tracer().Dropped())
	}
}

func TestSessionDropsFrameWhenLockFails(t *testing.T) {
	surface := newFakeSurface()
	surface.refuse = true
	s := NewSession(SessionConfig{Surface: surface, FilterID: "direct"})

	pixels, pitch, width, height := testFrame()
	if err := s.PresentFrame(pixels, pitch, nil, width, height); err != nil {
		t.Fatalf("dropped frame returned error: %v", err)
	}

	if surface.refreshed != 0 {
		t.Error("dropped frame must not refresh the surface")
	}
	for _, call := range surface.calls {
		if call == "unlock" {
			t.Error("dropped frame must not unlock")
		}
	}
	// The frame still counts as emulated, and the drop is recorded.
	if s.Tracer().Frames() != 1 {
		t.Errorf("frames = %d, want 1", s.Tracer().Frames())
	}
	if s.Tracer().Dropped() != 1 {
		t.Errorf("dropped = %d, want 1", s.Tracer().Dropped())
	}
}

func TestSessionFilterScalesOutput(t *testing.T) {
	surface := newFakeSurface()
	s := NewSession(SessionConfig{Surface: surface, FilterID: "scanline"})

	pixels, pitch, width, height := testFrame()
	if err := s.PresentFrame(pixels, pitch, nil, width, height); err != nil {
		t.Fatalf("PresentFrame failed: %v", err)
	}
	if surface.width != width || surface.height != height*2 {
		t.Errorf("scanline output = %dx%d, want %dx%d", surface.width, surface.height, width, height*2)
	}
}

func TestSessionScreenshotOnce(t *testing.T) {
	dir := t.TempDir()
	surface := newFakeSurface()
	notifier := &fakeNotifier{}
	s := NewSession(SessionConfig{
		Surface:     surface,
		Notifier:    notifier,
		Screenshots: NewScreenshotManager(dir, ""),
		FilterID:    "direct",
	})

	s.RequestScreenshot()
	if !s.ScreenshotPending() {
		t.Fatal("screenshot not pending after request")
	}

	pixels, pitch, width, height := testFrame()
	if err := s.PresentFrame(pixels, pitch, nil, width, height); err != nil {
		t.Fatalf("PresentFrame failed: %v", err)
	}
	if s.ScreenshotPending() {
		t.Error("screenshot flag still set after capture")
	}
	if len(notifier.messages) != 1 || notifier.messages[0] != "Screenshot saved." {
		t.Errorf("notifications = %v", notifier.messages)
	}

	// A second frame without a new request saves nothing.
	if err := s.PresentFrame(pixels, pitch, nil, width, height); err != nil {
		t.Fatalf("second PresentFrame failed: %v", err)
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 {
		t.Fatalf("expected exactly one screenshot, found %d", len(entries))
	}
	name := entries[0].Name()
	if !strings.HasPrefix(name, "screenshot-") || filepath.Ext(name) != ".png" {
		t.Errorf("unexpected screenshot name %q", name)
	}
}

func TestSessionScreenshotWithoutManager(t *testing.T) {
	surface := newFakeSurface()
	s := NewSession(SessionConfig{Surface: surface, FilterID: "direct"})

	// A request on a session with no screenshot manager must not crash
	// the presenter.
	s.RequestScreenshot()
	pixels, pitch, width, height := testFrame()
	if err := s.PresentFrame(pixels, pitch, nil, width, height); err != nil {
		t.Fatalf("PresentFrame failed: %v", err)
	}
	if surface.refreshed != 1 {
		t.Errorf("frame not presented: refreshed = %d", surface.refreshed)
	}
}

func TestSessionScreenshotSkippedOnDroppedFrame(t *testing.T) {
	dir := t.TempDir()
	surface := newFakeSurface()
	surface.refuse = true
	s := NewSession(SessionConfig{
		Surface:     surface,
		Screenshots: NewScreenshotManager(dir, ""),
		FilterID:    "direct",
	})

	s.RequestScreenshot()
	pixels, pitch, width, height := testFrame()
	if err := s.PresentFrame(pixels, pitch, nil, width, height); err != nil {
		t.Fatalf("PresentFrame failed: %v", err)
	}

	// The request stays armed for the next presented frame.
	if !s.ScreenshotPending() {
		t.Error("screenshot request lost on dropped frame")
	}
	entries, _ := os.ReadDir(dir)
	if len(entries) != 0 {
		t.Errorf("dropped frame produced %d screenshots", len(entries))
	}
}

func TestSessionForwardsSamplesSynchronously(t *testing.T) {
	player := &fakePlayer{}
	s := NewSession(SessionConfig{Surface: newFakeSurface(), Audio: player, FilterID: "direct"})

	// Each pair reaches the player during the call, with no batching
	// in between.
	s.SubmitSample(100, 200)
	if len(player.samples) != 2 {
		t.Fatalf("player received %d samples after one submit, want 2", len(player.samples))
	}
	s.SubmitSample(500, 600)
	if len(player.samples) != 4 {
		t.Fatalf("player received %d samples after two submits, want 4", len(player.samples))
	}

	want := []int16{100, 200, 500, 600}
	for i, v := range want {
		if player.samples[i] != v {
			t.Fatalf("samples = %v, want %v", player.samples, want)
		}
	}
}

func TestSessionMuteZeroesSamples(t *testing.T) {
	player := &fakePlayer{}
	s := NewSession(SessionConfig{Surface: newFakeSurface(), Audio: player, FilterID: "direct"})

	s.SubmitSample(100, 200)
	s.SetMuted(true)
	s.SubmitSample(300, 400)
	s.SetMuted(false)
	s.SubmitSample(500, 600)

	want := []int16{100, 200, 0, 0, 500, 600}
	if len(player.samples) != len(want) {
		t.Fatalf("samples = %v, want %v", player.samples, want)
	}
	for i, v := range want {
		if player.samples[i] != v {
			t.Fatalf("samples = %v, want %v", player.samples, want)
		}
	}
}

func TestSessionToggleMute(t *testing.T) {
	s := NewSession(SessionConfig{Surface: newFakeSurface(), FilterID: "direct"})
	if s.Muted() {
		t.Fatal("session starts muted")
	}
	if !s.ToggleMute() || !s.Muted() {
		t.Fatal("first toggle did not mute")
	}
	if s.ToggleMute() || s.Muted() {
		t.Fatal("second toggle did not unmute")
	}
}

func TestSessionInputDelegation(t *testing.T) {
	im := NewInputManager()
	s := NewSession(SessionConfig{Surface: newFakeSurface(), Input: im, FilterID: "direct"})

	// No input gathered: everything reads released.
	s.Poll()
	if s.Status(emucore.DeviceJoypad1, emucore.ControlB) != 0 {
		t.Error("unpressed control reads non-zero")
	}
	if s.Status(-1, emucore.ControlB) != 0 || s.Status(emucore.DeviceJoypad1, -1) != 0 {
		t.Error("out-of-range queries must read 0")
	}
	if s.Status(emucore.DeviceJoypad1, emucore.NumControls) != 0 {
		t.Error("control ID past the end must read 0")
	}
}

func TestSessionCycleFilter(t *testing.T) {
	s := NewSession(SessionConfig{Surface: newFakeSurface(), FilterID: "direct"})
	if s.FilterID() != "direct" {
		t.Fatalf("initial filter = %q", s.FilterID())
	}
	if id := s.CycleFilter(); id != "scanline" {
		t.Fatalf("first cycle = %q, want scanline", id)
	}
	if id := s.CycleFilter(); id != "scale2x" {
		t.Fatalf("second cycle = %q, want scale2x", id)
	}
	if id := s.CycleFilter(); id != "direct" {
		t.Fatalf("third cycle = %q, want direct (wrap)", id)
	}
}

func TestSessionAudioLog(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "audio.wav")
	s := NewSession(SessionConfig{Surface: newFakeSurface(), FilterID: "direct"})

	if err := s.StartAudioLog(path, audioSampleRate); err != nil {
		t.Fatalf("StartAudioLog failed: %v", err)
	}
	s.SubmitSample(1000, 2000)
	s.StopAudioLog()

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("audio log missing: %v", err)
	}
	// 44-byte WAV header plus one stereo frame.
	if info.Size() < 44+4 {
		t.Errorf("audio log too small: %d bytes", info.Size())
	}
}
