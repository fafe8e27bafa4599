package storage

// Config represents the application configuration stored in config.json
type Config struct {
	Version  int          `json:"version"`
	Theme    string       `json:"theme"`    // Theme name, see style.ThemeNames
	FontSize int          `json:"fontSize"` // 10-32, default 14
	Video    VideoConfig  `json:"video"`
	Audio    AudioConfig  `json:"audio"`
	Speed    SpeedConfig  `json:"speed"`
	Input    InputConfig  `json:"input"`
	Paths    PathsConfig  `json:"paths"`
	Window   WindowConfig `json:"window"`
}

// VideoConfig contains video-related settings
type VideoConfig struct {
	Scale            int    `json:"scale"`            // Window size multiplier, 1-4
	AspectCorrection bool   `json:"aspectCorrection"` // Stretch to the console's 8:7 pixel aspect
	Smooth           bool   `json:"smooth"`           // Linear instead of nearest filtering on scale
	Filter           string `json:"filter"`           // Video filter ID ("direct", "scanline", "scale2x")
	Region           string `json:"region"`           // "auto", "ntsc", "pal"
}

// AudioConfig contains audio-related settings
type AudioConfig struct {
	Volume float64 `json:"volume"`
	Muted  bool    `json:"muted"`
}

// SpeedConfig contains emulation speed settings
type SpeedConfig struct {
	Multiplier float64 `json:"multiplier"` // Speed preset: 0.5, 0.75, 1.0, 1.5, 2.0
	SyncVideo  bool    `json:"syncVideo"`  // Sync presentation to the display refresh
	SyncAudio  bool    `json:"syncAudio"`  // Let the audio buffer level pace emulation
}

// InputConfig contains input binding overrides. Empty/nil maps mean
// "use defaults." Only user overrides are stored.
type InputConfig struct {
	P1Keyboard         map[string]string `json:"p1Keyboard,omitempty"`   // control name -> key name override
	P1Controller       map[string]string `json:"p1Controller,omitempty"` // control name -> pad button name override
	P2Controller       map[string]string `json:"p2Controller,omitempty"`
	DisableAnalogStick bool              `json:"disableAnalogStick,omitempty"` // disable analog stick mirroring d-pad
}

// PathsConfig holds the user-configurable storage locations. An empty
// string selects the fallback: the application data directory for
// saves/states/cheats, the loaded ROM's directory for patches and
// exports.
type PathsConfig struct {
	ROM    string `json:"rom,omitempty"`    // Starting directory of the ROM file chooser
	Save   string `json:"save,omitempty"`   // Cartridge save RAM
	State  string `json:"state,omitempty"`  // Save states
	Patch  string `json:"patch,omitempty"`  // UPS patches
	Cheat  string `json:"cheat,omitempty"`  // Cheat files
	Export string `json:"export,omitempty"` // Screenshots and audio logs
}

// WindowConfig contains window size, position, and mode. Position is
// nil until the window has been placed once.
type WindowConfig struct {
	Width      int  `json:"width"`
	Height     int  `json:"height"`
	X          *int `json:"x,omitempty"`
	Y          *int `json:"y,omitempty"`
	Fullscreen bool `json:"fullscreen"`
}

// VideoScaleRange bounds the window size multiplier.
const (
	MinVideoScale = 1
	MaxVideoScale = 4
)

// ValidRegions lists the accepted region override values.
var ValidRegions = []string{"auto", "ntsc", "pal"}

// FontSizePresets lists the available font size options
var FontSizePresets = []int{10, 12, 14, 16, 18, 20, 24, 28, 32}

// SpeedPresets lists the available emulation speed multipliers.
var SpeedPresets = []float64{0.5, 0.75, 1.0, 1.5, 2.0}

// ValidFontSize returns the nearest valid preset font size.
func ValidFontSize(size int) int {
	best := FontSizePresets[0]
	for _, p := range FontSizePresets {
		if abs(p-size) < abs(best-size) {
			best = p
		}
	}
	return best
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// DefaultConfig returns a new Config with default values
func DefaultConfig() *Config {
	return &Config{
		Version:  1,
		Theme:    "Default",
		FontSize: 14,
		Video: VideoConfig{
			Scale:            2,
			AspectCorrection: true,
			Smooth:           false,
			Filter:           "direct",
			Region:           "auto",
		},
		Audio: AudioConfig{
			Volume: 1.0,
			Muted:  false,
		},
		Speed: SpeedConfig{
			Multiplier: 1.0,
			SyncVideo:  true,
			SyncAudio:  true,
		},
		Input: InputConfig{},
		Paths: PathsConfig{},
		Window: WindowConfig{
			Width:  598,
			Height: 448,
		},
	}
}
