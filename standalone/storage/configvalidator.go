package storage

import (
	"encoding/json"
	"fmt"
)

// detectPresentKeys unmarshals JSON bytes to determine which config keys
// are explicitly present in the file. Returns a flat set of dotted-path keys
// (e.g., "audio.volume", "window.width"). Only checks non-omitempty fields
// that have validation rules.
func detectPresentKeys(jsonBytes []byte) map[string]bool {
	present := make(map[string]bool)

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(jsonBytes, &raw); err != nil {
		return present
	}

	// Top-level keys
	topKeys := []string{"version", "theme", "fontSize"}
	for _, k := range topKeys {
		if _, ok := raw[k]; ok {
			present[k] = true
		}
	}

	// Nested: video
	if videoRaw, ok := raw["video"]; ok {
		var video map[string]json.RawMessage
		if json.Unmarshal(videoRaw, &video) == nil {
			for _, k := range []string{"scale", "aspectCorrection", "filter", "region"} {
				if _, ok := video[k]; ok {
					present["video."+k] = true
				}
			}
		}
	}

	// Nested: audio
	if audioRaw, ok := raw["audio"]; ok {
		var audio map[string]json.RawMessage
		if json.Unmarshal(audioRaw, &audio) == nil {
			if _, ok := audio["volume"]; ok {
				present["audio.volume"] = true
			}
		}
	}

	// Nested: speed
	if speedRaw, ok := raw["speed"]; ok {
		var speed map[string]json.RawMessage
		if json.Unmarshal(speedRaw, &speed) == nil {
			for _, k := range []string{"multiplier", "syncVideo", "syncAudio"} {
				if _, ok := speed[k]; ok {
					present["speed."+k] = true
				}
			}
		}
	}

	// Nested: window
	if windowRaw, ok := raw["window"]; ok {
		var window map[string]json.RawMessage
		if json.Unmarshal(windowRaw, &window) == nil {
			if _, ok := window["width"]; ok {
				present["window.width"] = true
			}
			if _, ok := window["height"]; ok {
				present["window.height"] = true
			}
		}
	}

	return present
}

// ApplyMissingDefaults sets default values for config fields that are absent
// from the JSON file. Only truly missing fields get defaults, preserving
// intentional zero values (e.g., volume=0).
func ApplyMissingDefaults(config *Config, presentKeys map[string]bool) {
	defaults := DefaultConfig()

	if !presentKeys["version"] {
		config.Version = defaults.Version
	}
	if !presentKeys["theme"] {
		config.Theme = defaults.Theme
	}
	if !presentKeys["fontSize"] {
		config.FontSize = defaults.FontSize
	}
	if !presentKeys["video.scale"] {
		config.Video.Scale = defaults.Video.Scale
	}
	if !presentKeys["video.aspectCorrection"] {
		config.Video.AspectCorrection = defaults.Video.AspectCorrection
	}
	if !presentKeys["video.filter"] {
		config.Video.Filter = defaults.Video.Filter
	}
	if !presentKeys["video.region"] {
		config.Video.Region = defaults.Video.Region
	}
	if !presentKeys["audio.volume"] {
		config.Audio.Volume = defaults.Audio.Volume
	}
	if !presentKeys["speed.multiplier"] {
		config.Speed.Multiplier = defaults.Speed.Multiplier
	}
	if !presentKeys["speed.syncVideo"] {
		config.Speed.SyncVideo = defaults.Speed.SyncVideo
	}
	if !presentKeys["speed.syncAudio"] {
		config.Speed.SyncAudio = defaults.Speed.SyncAudio
	}
	if !presentKeys["window.width"] {
		config.Window.Width = defaults.Window.Width
	}
	if !presentKeys["window.height"] {
		config.Window.Height = defaults.Window.Height
	}
}

// ValidateConfig checks all config fields against valid ranges and returns
// human-readable error descriptions. An empty slice means the config is valid.
// validThemes and validFilters are the known theme names and filter IDs.
func ValidateConfig(config *Config, validThemes, validFilters []string) []string {
	var errors []string

	// version
	if config.Version != 1 {
		errors = append(errors, fmt.Sprintf("version: %d (valid: 1)", config.Version))
	}

	// theme
	if !contains(validThemes, config.Theme) {
		errors = append(errors, fmt.Sprintf("theme: %q (valid: %v)", config.Theme, validThemes))
	}

	// fontSize
	fontSizeValid := false
	for _, p := range FontSizePresets {
		if config.FontSize == p {
			fontSizeValid = true
			break
		}
	}
	if !fontSizeValid {
		errors = append(errors, fmt.Sprintf("fontSize: %d (valid: %v)", config.FontSize, FontSizePresets))
	}

	// video.scale
	if config.Video.Scale < MinVideoScale || config.Video.Scale > MaxVideoScale {
		errors = append(errors, fmt.Sprintf("video.scale: %d (valid: %d-%d)", config.Video.Scale, MinVideoScale, MaxVideoScale))
	}

	// video.filter
	if !contains(validFilters, config.Video.Filter) {
		errors = append(errors, fmt.Sprintf("video.filter: %q (valid: %v)", config.Video.Filter, validFilters))
	}

	// video.region
	if !contains(ValidRegions, config.Video.Region) {
		errors = append(errors, fmt.Sprintf("video.region: %q (valid: %v)", config.Video.Region, ValidRegions))
	}

	// audio.volume
	if config.Audio.Volume < 0 || config.Audio.Volume > 2.0 {
		errors = append(errors, fmt.Sprintf("audio.volume: %.2f (valid: 0.0-2.0)", config.Audio.Volume))
	}

	// speed.multiplier
	if !containsFloat(SpeedPresets, config.Speed.Multiplier) {
		errors = append(errors, fmt.Sprintf("speed.multiplier: %.2f (valid: %v)", config.Speed.Multiplier, SpeedPresets))
	}

	// window.width
	if config.Window.Width < 320 {
		errors = append(errors, fmt.Sprintf("window.width: %d (valid: >= 320)", config.Window.Width))
	}

	// window.height
	if config.Window.Height < 240 {
		errors = append(errors, fmt.Sprintf("window.height: %d (valid: >= 240)", config.Window.Height))
	}

	return errors
}

// CorrectConfig resets any invalid fields to their defaults from DefaultConfig().
// Valid fields are preserved.
func CorrectConfig(config *Config, validThemes, validFilters []string) *Config {
	defaults := DefaultConfig()

	if config.Version != 1 {
		config.Version = defaults.Version
	}
	if !contains(validThemes, config.Theme) {
		config.Theme = defaults.Theme
	}

	fontSizeValid := false
	for _, p := range FontSizePresets {
		if config.FontSize == p {
			fontSizeValid = true
			break
		}
	}
	if !fontSizeValid {
		config.FontSize = defaults.FontSize
	}

	if config.Video.Scale < MinVideoScale || config.Video.Scale > MaxVideoScale {
		config.Video.Scale = defaults.Video.Scale
	}
	if !contains(validFilters, config.Video.Filter) {
		config.Video.Filter = defaults.Video.Filter
	}
	if !contains(ValidRegions, config.Video.Region) {
		config.Video.Region = defaults.Video.Region
	}
	if config.Audio.Volume < 0 || config.Audio.Volume > 2.0 {
		config.Audio.Volume = defaults.Audio.Volume
	}
	if !containsFloat(SpeedPresets, config.Speed.Multiplier) {
		config.Speed.Multiplier = defaults.Speed.Multiplier
	}
	if config.Window.Width < 320 {
		config.Window.Width = defaults.Window.Width
	}
	if config.Window.Height < 240 {
		config.Window.Height = defaults.Window.Height
	}

	return config
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}

func containsFloat(list []float64, f float64) bool {
	for _, v := range list {
		if v == f {
			return true
		}
	}
	return false
}
