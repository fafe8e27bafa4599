package standalone

// AppState represents the current state of the application
type AppState int

const (
	// StatePlaying is active emulation with the game on screen
	StatePlaying AppState = iota
	// StateSettings shows application settings; emulation is paused
	StateSettings
)

// String returns the string representation of the state
func (s AppState) String() string {
	switch s {
	case StatePlaying:
		return "Playing"
	case StateSettings:
		return "Settings"
	default:
		return "Unknown"
	}
}
