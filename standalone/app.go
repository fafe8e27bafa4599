package standalone

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/ebitenui/ebitenui"
	ebitenuiInput "github.com/ebitenui/ebitenui/input"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	emucore "github.com/OpenEmu/BSNES-Core/api"
	"github.com/OpenEmu/BSNES-Core/filter"
	"github.com/OpenEmu/BSNES-Core/standalone/screens"
	"github.com/OpenEmu/BSNES-Core/standalone/storage"
	"github.com/OpenEmu/BSNES-Core/standalone/style"
	"github.com/OpenEmu/BSNES-Core/standalone/types"
)

// Audio-driven timing thresholds in buffered bytes. Roughly 2 and 6
// NTSC frames of 32040Hz stereo int16 audio.
const (
	adtMinBuffer = 4 * 1024
	adtMaxBuffer = 12 * 1024
)

// dataDirName is the per-user application data directory name.
const dataDirName = "bsnes"

// App is the main application struct that implements ebiten.Game.
// Emulation runs on a dedicated goroutine; Update and Draw run on the
// Ebiten thread and talk to it through SharedSurface, EmuControl, and
// the session's atomic flags.
type App struct {
	ui *ebitenui.UI

	state AppState

	config  *storage.Config
	core    emucore.Emulator
	system  emucore.SystemInfo
	romPath string

	session *Session
	control *EmuControl
	emuDone chan struct{}

	surface      *SharedSurface
	renderer     *FrameRenderer
	audio        *AudioPlayer
	input        *InputManager
	notification *Notification
	screenshots  *ScreenshotManager

	settingsScreen *screens.SettingsScreen

	// Rebuild pending flag (set from goroutines, processed on main thread)
	rebuildPending bool

	// Whether a WAV audio log is currently being written
	audioLogging bool

	// Window tracking for persistence and responsive layouts
	windowX, windowY   int
	windowWidth        int
	windowHeight       int
	lastWindowedWidth  int // Last non-fullscreen width (physical pixels)
	lastWindowedHeight int // Last non-fullscreen height (physical pixels)
	lastBuildWidth     int // Track width used for last UI build

	// HiDPI: current device scale factor tracked across Layout calls
	currentDPIScale float64

	// Fullscreen: track state so it can be saved on exit even if macOS
	// has already left native fullscreen by the time saveWindowState runs.
	lastFullscreenState bool
}

// RunConfig carries what Run needs to start a session.
type RunConfig struct {
	Core    emucore.Emulator // Loaded core with the ROM already inserted
	System  emucore.SystemInfo
	ROMPath string // Source path of the loaded cartridge, for path fallbacks
}

// Run is the public entry point for the standalone shell. It initializes
// storage, loads and applies config, configures the window, creates the
// app, and starts the Ebiten game loop.
func Run(cfg RunConfig) error {
	storage.Init(dataDirName)

	if err := storage.EnsureDirectories(); err != nil {
		return fmt.Errorf("failed to create directories: %w", err)
	}
	if err := storage.CreateConfigIfMissing(); err != nil {
		log.Printf("Warning: failed to create config: %v", err)
	}

	config, err := storage.LoadConfig()
	if err != nil {
		log.Printf("Warning: config unreadable, using defaults: %v", err)
		config = storage.DefaultConfig()
	}

	// Invalid fields fall back to defaults rather than refusing to start
	themeNames := style.ThemeNames()
	filterIDs := filterIDList()
	if errs := storage.ValidateConfig(config, themeNames, filterIDs); len(errs) > 0 {
		for _, e := range errs {
			log.Printf("Warning: config: %s", e)
		}
		storage.CorrectConfig(config, themeNames, filterIDs)
		storage.SaveConfig(config)
	}

	style.ApplyThemeByName(config.Theme)
	style.ApplyFontSize(storage.ValidFontSize(config.FontSize))

	ebiten.SetWindowTitle(cfg.System.ConsoleName)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowSizeLimits(512, 448, -1, -1)
	ebiten.SetVsyncEnabled(config.Speed.SyncVideo)

	app, err := newApp(cfg, config)
	if err != nil {
		return err
	}

	// Restore window size from saved config (before RunGame to avoid
	// resize flash); fall back to the configured video scale
	width, height := config.Window.Width, config.Window.Height
	if width <= 0 || height <= 0 {
		width, height = scaledWindowSize(config, cfg.System)
	}
	ebiten.SetWindowSize(width, height)
	if config.Window.X != nil && config.Window.Y != nil {
		ebiten.SetWindowPosition(*config.Window.X, *config.Window.Y)
	}
	if config.Window.Fullscreen {
		ebiten.SetFullscreen(true)
	}

	runErr := ebiten.RunGame(app)
	app.shutdown()
	return runErr
}

// scaledWindowSize computes the window size for the configured integer
// scale of the 256x224 base frame, widened for aspect correction.
func scaledWindowSize(config *storage.Config, system emucore.SystemInfo) (int, int) {
	w := 256.0
	if config.Video.AspectCorrection {
		w *= system.PixelAspectRatio
	}
	scale := config.Video.Scale
	if scale < storage.MinVideoScale {
		scale = storage.MinVideoScale
	}
	return int(w) * scale, 224 * scale
}

// filterIDList returns the IDs of all registered video filters.
func filterIDList() []string {
	ids := make([]string, len(filter.Available))
	for i, info := range filter.Available {
		ids[i] = info.ID
	}
	return ids
}

// newApp wires the shell around an already-loaded core and starts the
// emulation goroutine.
func newApp(cfg RunConfig, config *storage.Config) (*App, error) {
	app := &App{
		state:   StatePlaying,
		config:  config,
		core:    cfg.Core,
		system:  cfg.System,
		romPath: cfg.ROMPath,
		control: NewEmuControl(),
		emuDone: make(chan struct{}),
	}

	app.notification = NewNotification()
	app.surface = NewSharedSurface(cfg.System.ScreenWidth, cfg.System.MaxScreenHeight)
	app.renderer = NewFrameRenderer()
	app.input = NewInputManager()
	app.screenshots = NewScreenshotManager(config.Paths.Export, cfg.ROMPath)

	audio, err := NewAudioPlayer(config.Audio.Volume)
	if err != nil {
		// Run without sound; frame pacing falls back to wall clock
		log.Printf("Warning: %v", err)
	}
	app.audio = audio

	var player SamplePlayer
	if audio != nil {
		player = audio
	}
	app.session = NewSession(SessionConfig{
		Core:        cfg.Core,
		Surface:     app.surface,
		Audio:       player,
		Input:       app.input,
		Notifier:    app.notification,
		Screenshots: app.screenshots,
		FilterID:    config.Video.Filter,
	})
	app.session.SetMuted(config.Audio.Muted)
	app.applyInputConfig()
	app.applyRegionConfig()

	app.settingsScreen = screens.NewSettingsScreen(app, config, configBindings{config: config})

	go app.emulationLoop()

	return app, nil
}

// configBindings resolves effective bindings for the settings input
// table from config overrides with built-in defaults as fallback.
type configBindings struct {
	config *storage.Config
}

func (b configBindings) KeyboardBinding(player int, control string) string {
	if player != 0 {
		return "-"
	}
	return ResolveKeyDisplay(control, b.config.Input.P1Keyboard)
}

func (b configBindings) GamepadBinding(player int, control string) string {
	overrides := b.config.Input.P1Controller
	if player == 1 {
		overrides = b.config.Input.P2Controller
	}
	return ResolvePadDisplay(control, overrides)
}

// emulationLoop runs on a dedicated goroutine. It executes core frames,
// flushes audio, and paces itself using audio-driven timing: the wall
// clock sets the baseline and the audio buffer level nudges it so the
// buffer neither drains nor grows without bound.
func (a *App) emulationLoop() {
	defer close(a.emuDone)

	frameTime := frameDuration(a.core.Timing())
	lastFrameTime := time.Now()

	for {
		if !a.control.CheckPause() {
			return
		}

		// Commands queued while paused run before the next frame, so a
		// reset never races a running frame. Power cycles can change
		// the region, so the pacing baseline refreshes after.
		if cmds := a.control.TakeCommands(); len(cmds) != 0 {
			for _, cmd := range cmds {
				a.handleCoreCommand(cmd)
			}
			frameTime = frameDuration(a.core.Timing())
		}

		a.core.RunFrame()
		if err := a.session.TakeError(); err != nil {
			log.Printf("Frame error: %v", err)
		}

		// Config only changes while the loop is paused, so these reads
		// are ordered by the pause handshake.
		multiplier := a.config.Speed.Multiplier
		if multiplier <= 0 {
			multiplier = 1.0
		}
		elapsed := time.Since(lastFrameTime)
		sleepTime := time.Duration(float64(frameTime)/multiplier) - elapsed
		if a.audio != nil && a.config.Speed.SyncAudio {
			bufferLevel := a.audio.GetBufferLevel()
			if bufferLevel < adtMinBuffer {
				sleepTime = time.Duration(float64(sleepTime) * 0.9)
			} else if bufferLevel > adtMaxBuffer {
				sleepTime = time.Duration(float64(sleepTime) * 1.1)
			}
		}
		if sleepTime > time.Millisecond {
			time.Sleep(sleepTime)
		}
		lastFrameTime = time.Now()
	}
}

// frameDuration converts region timing to a frame period.
func frameDuration(t emucore.Timing) time.Duration {
	if t.FPS <= 0 {
		return time.Second / 60
	}
	return time.Duration(float64(time.Second) / t.FPS)
}

// handleCoreCommand runs a queued command on the emulation goroutine.
func (a *App) handleCoreCommand(cmd CoreCommand) {
	switch cmd {
	case CommandReset:
		a.core.Reset()
		if a.audio != nil {
			a.audio.ClearQueue()
		}
		a.notification.ShowShort("Reset.")
	case CommandPower:
		a.applyRegionConfig()
		a.core.Power()
		if a.audio != nil {
			a.audio.ClearQueue()
		}
		a.notification.ShowShort("Power cycled.")
	}
}

// applyRegionConfig applies the configured region override to the core.
// "auto" leaves the core's ROM-derived region alone.
func (a *App) applyRegionConfig() {
	switch a.config.Video.Region {
	case "ntsc":
		a.core.SetRegion(emucore.RegionNTSC)
	case "pal":
		a.core.SetRegion(emucore.RegionPAL)
	}
}

// applyInputConfig rebuilds both players' mappings from config.
func (a *App) applyInputConfig() {
	a.input.SetMapping(0, BuildMappingFromConfig(a.config.Input.P1Keyboard, a.config.Input.P1Controller))
	a.input.SetMapping(1, BuildMappingFromConfig(nil, a.config.Input.P2Controller))
	a.input.SetAnalogDisabled(a.config.Input.DisableAnalogStick)
}

// Update implements ebiten.Game
func (a *App) Update() error {
	// Track window position and fullscreen state for save on exit.
	// Layout() handles width/height, but position must be queried here.
	a.windowX, a.windowY = ebiten.WindowPosition()
	a.lastFullscreenState = ebiten.IsFullscreen()

	// Process any pending rebuild request (set from goroutines)
	if a.rebuildPending {
		a.rebuildPending = false
		a.rebuildCurrentScreen()
	}

	a.handleHotkeys()

	switch a.state {
	case StatePlaying:
		a.input.Gather()
		// Keep ebitenui's global input handler in sync during gameplay.
		// Without this, the handler's mouse state goes stale and causes
		// phantom clicks on the first settings frame.
		ebitenuiInput.Update()
		ebitenuiInput.AfterUpdate()
	case StateSettings:
		if a.windowWidth > 0 && a.windowWidth != a.lastBuildWidth {
			a.rebuildCurrentScreen()
		}
		focusChanged := a.processUINavigation()
		a.ui.Update()
		if a.state != StateSettings {
			return nil
		}
		if !a.rebuildPending {
			a.restorePendingFocus(a.settingsScreen)
		}
		if focusChanged {
			if focused := a.ui.GetFocusedWidget(); focused != nil {
				a.settingsScreen.EnsureFocusedVisible(focused)
			}
		}
	}
	return nil
}

// handleHotkeys processes the reserved shell keys.
func (a *App) handleHotkeys() {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		if a.state == StatePlaying {
			a.openSettings()
		} else {
			a.CloseSettings()
		}
		return
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF11) {
		a.toggleFullscreen()
	}

	if a.state != StatePlaying {
		return
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF12) {
		a.session.RequestScreenshot()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF10) {
		muted := a.session.ToggleMute()
		a.config.Audio.Muted = muted
		storage.SaveConfig(a.config)
		if muted {
			a.notification.ShowShort("Audio muted.")
		} else {
			a.notification.ShowShort("Audio unmuted.")
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF5) {
		id := a.session.CycleFilter()
		a.config.Video.Filter = id
		storage.SaveConfig(a.config)
		a.notification.ShowShort("Filter: " + filter.NameOf(id))
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF9) {
		a.toggleAudioLog()
	}
	if ebiten.IsKeyPressed(ebiten.KeyControl) {
		if inpututil.IsKeyJustPressed(ebiten.KeyR) {
			a.control.QueueCommand(CommandReset)
		}
		if inpututil.IsKeyJustPressed(ebiten.KeyP) {
			a.control.QueueCommand(CommandPower)
		}
	}
}

// toggleAudioLog starts or stops WAV capture of the audio stream. The
// file lands in the export directory next to screenshots.
func (a *App) toggleAudioLog() {
	if a.audioLogging {
		a.session.StopAudioLog()
		a.audioLogging = false
		a.notification.ShowShort("Audio log saved.")
		return
	}

	dir := resolveExportDir(a.config.Paths.Export, a.romPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		log.Printf("Warning: failed to create export directory: %v", err)
		a.notification.ShowShort("Audio log failed.")
		return
	}
	path := filepath.Join(dir, "audio-"+time.Now().Format("20060102-150405")+".wav")
	if err := a.session.StartAudioLog(path, audioSampleRate); err != nil {
		log.Printf("Warning: failed to start audio log: %v", err)
		a.notification.ShowShort("Audio log failed.")
		return
	}
	a.audioLogging = true
	a.notification.ShowShort("Logging audio.")
}

// processUINavigation drives keyboard arrow navigation through the
// settings screen's focus zones. Returns true when focus moved.
func (a *App) processUINavigation() bool {
	if a.ui == nil {
		return false
	}

	direction := types.DirNone
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyArrowUp):
		direction = types.DirUp
	case inpututil.IsKeyJustPressed(ebiten.KeyArrowDown):
		direction = types.DirDown
	case inpututil.IsKeyJustPressed(ebiten.KeyArrowLeft):
		direction = types.DirLeft
	case inpututil.IsKeyJustPressed(ebiten.KeyArrowRight):
		direction = types.DirRight
	}
	if direction == types.DirNone {
		return false
	}

	focused := a.ui.GetFocusedWidget()
	if nextBtn := a.settingsScreen.FindFocusInDirection(focused, direction); nextBtn != nil {
		if focused != nil {
			focused.Focus(false)
		}
		nextBtn.Focus(true)
		return true
	}

	// Fallback to linear focus order
	if direction == types.DirUp || direction == types.DirLeft {
		a.ui.ChangeFocus(widget.FOCUS_PREVIOUS)
	} else {
		a.ui.ChangeFocus(widget.FOCUS_NEXT)
	}
	return true
}

// restorePendingFocus restores focus to a pending button if one exists
func (a *App) restorePendingFocus(screen screens.FocusRestorer) {
	btn := screen.GetPendingFocusButton()
	if btn != nil {
		btn.Focus(true)
		screen.ClearPendingFocus()
	}
}

// rebuildCurrentScreen rebuilds the settings UI
func (a *App) rebuildCurrentScreen() {
	if a.state != StateSettings {
		return
	}
	a.settingsScreen.SaveScrollPosition()
	if a.ui != nil {
		a.settingsScreen.SaveFocusState(a.ui.GetFocusedWidget())
	}
	a.ui = &ebitenui.UI{Container: a.settingsScreen.Build()}
	a.lastBuildWidth = a.windowWidth
}

// Draw implements ebiten.Game
func (a *App) Draw(screen *ebiten.Image) {
	switch a.state {
	case StatePlaying:
		a.drawGame(screen)
	case StateSettings:
		if a.ui != nil {
			a.ui.Draw(screen)
		}
	}
	a.notification.Draw(screen)
}

// drawGame uploads the latest published frame and draws it scaled to
// the window.
func (a *App) drawGame(screen *ebiten.Image) {
	pixels, width, height, seq := a.surface.Read()
	if width == 0 || height == 0 {
		return
	}
	a.renderer.Upload(pixels, width, height, seq)

	par := 1.0
	if a.config.Video.AspectCorrection {
		par = a.system.PixelAspectRatio
	}
	aspect := emucore.DisplayAspectRatio(width, height, par)
	a.renderer.Draw(screen, aspect, a.config.Video.Smooth)
}

// Layout implements ebiten.Game
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	// Query the device scale factor for HiDPI/Retina rendering
	s := 1.0
	if m := ebiten.Monitor(); m != nil {
		s = m.DeviceScaleFactor()
	}
	if s != a.currentDPIScale {
		a.currentDPIScale = s
		style.SetDPIScale(s)
		a.rebuildPending = true
	}

	// Return physical pixel dimensions so the game renders at full resolution
	w := int(float64(outsideWidth) * s)
	h := int(float64(outsideHeight) * s)
	a.windowWidth = w
	a.windowHeight = h
	// Track windowed dimensions separately so fullscreen doesn't overwrite them.
	if !ebiten.IsFullscreen() {
		a.lastWindowedWidth = w
		a.lastWindowedHeight = h
	}
	return w, h
}

// openSettings pauses emulation and shows the settings screen. Held
// keys are cleared so they do not leak into the game on resume.
func (a *App) openSettings() {
	a.control.RequestPause()
	a.input.ClearPending()
	a.notification.Clear()
	a.state = StateSettings
	a.settingsScreen.OnEnter()
	a.rebuildCurrentScreen()
}

// toggleFullscreen toggles between fullscreen and windowed mode
func (a *App) toggleFullscreen() {
	ebiten.SetFullscreen(!ebiten.IsFullscreen())
	a.lastFullscreenState = ebiten.IsFullscreen()
	a.config.Window.Fullscreen = a.lastFullscreenState
	storage.SaveConfig(a.config)
}

// saveWindowState saves current window position and size to config
func (a *App) saveWindowState() {
	// Don't save if we never got valid windowed dimensions.
	if a.lastWindowedWidth == 0 || a.lastWindowedHeight == 0 {
		return
	}

	// Use lastFullscreenState instead of IsFullscreen() because macOS
	// exits native fullscreen before this handler runs on Cmd+Q. Use
	// lastWindowedWidth/Height so quitting in fullscreen saves the
	// windowed size, not the fullscreen resolution.
	s := style.DPIScale()
	a.config.Window.Width = int(float64(a.lastWindowedWidth) / s)
	a.config.Window.Height = int(float64(a.lastWindowedHeight) / s)
	a.config.Window.X = &a.windowX
	a.config.Window.Y = &a.windowY
	a.config.Window.Fullscreen = a.lastFullscreenState

	storage.SaveConfig(a.config)
}

// shutdown stops the emulation goroutine and releases resources.
func (a *App) shutdown() {
	a.saveWindowState()

	a.control.Stop()
	select {
	case <-a.emuDone:
	case <-time.After(2 * time.Second):
		log.Printf("Warning: emulation goroutine did not stop")
	}

	a.session.StopAudioLog()
	if a.audio != nil {
		a.audio.Close()
	}
	a.core.Close()
}

// ScreenCallback implementations

// CloseSettings returns to the game and resumes emulation
func (a *App) CloseSettings() {
	a.notification.Clear()
	a.input.ClearPending()
	a.state = StatePlaying
	a.control.RequestResume()
}

// Exit closes the application
func (a *App) Exit() {
	a.shutdown()
	os.Exit(0)
}

// GetWindowWidth returns the current window width for responsive layouts
func (a *App) GetWindowWidth() int {
	return a.windowWidth
}

// RequestRebuild triggers a UI rebuild for the current screen.
// Safe to call from goroutines - the rebuild happens on the main thread.
func (a *App) RequestRebuild() {
	a.rebuildPending = true
}

// ApplyConfig pushes config changes into the running session: filter,
// volume, mute, input mappings, export path, fullscreen, and window
// size. Region changes wait for the next power cycle.
func (a *App) ApplyConfig() {
	a.session.SetFilter(a.config.Video.Filter)
	a.session.SetMuted(a.config.Audio.Muted)
	if a.audio != nil {
		a.audio.SetVolume(a.config.Audio.Volume)
	}
	a.applyInputConfig()
	a.screenshots.SetExportDir(a.config.Paths.Export)
	ebiten.SetVsyncEnabled(a.config.Speed.SyncVideo)

	if ebiten.IsFullscreen() != a.config.Window.Fullscreen {
		ebiten.SetFullscreen(a.config.Window.Fullscreen)
		a.lastFullscreenState = a.config.Window.Fullscreen
	}

	if !ebiten.IsFullscreen() {
		w, h := scaledWindowSize(a.config, a.system)
		ebiten.SetWindowSize(w, h)
	}
}
