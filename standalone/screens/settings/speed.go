package settings

import (
	"fmt"

	"github.com/ebitenui/ebitenui/widget"

	"github.com/OpenEmu/BSNES-Core/standalone/storage"
	"github.com/OpenEmu/BSNES-Core/standalone/style"
	"github.com/OpenEmu/BSNES-Core/standalone/types"
)

// SpeedSection manages emulation speed and sync settings
type SpeedSection struct {
	callback types.ScreenCallback
	config   *storage.Config
}

// NewSpeedSection creates a new speed section
func NewSpeedSection(callback types.ScreenCallback, config *storage.Config) *SpeedSection {
	return &SpeedSection{
		callback: callback,
		config:   config,
	}
}

// SetConfig updates the config reference
func (sp *SpeedSection) SetConfig(config *storage.Config) {
	sp.config = config
}

// Build creates the speed section UI
func (sp *SpeedSection) Build(focus types.FocusManager) *widget.Container {
	section := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Spacing(style.DefaultSpacing),
		)),
	)

	section.AddChild(sp.buildMultiplierRow(focus))
	section.AddChild(sp.buildSyncVideoRow(focus))
	section.AddChild(sp.buildSyncAudioRow(focus))

	note := widget.NewText(
		widget.TextOpts.Text("With both syncs off the emulator runs unthrottled.", style.FontFace(), style.TextSecondary),
	)
	section.AddChild(note)

	sp.setupNavigation(focus)

	return section
}

// setupNavigation registers navigation zones for the speed section
func (sp *SpeedSection) setupNavigation(focus types.FocusManager) {
	presetKeys := make([]string, len(storage.SpeedPresets))
	for i, m := range storage.SpeedPresets {
		presetKeys[i] = speedFocusKey(m)
	}
	focus.RegisterNavZone("speed-presets", types.NavZoneHorizontal, presetKeys, 0)
	focus.RegisterNavZone("speed-sync-video", types.NavZoneHorizontal, []string{"speed-sync-video"}, 0)
	focus.RegisterNavZone("speed-sync-audio", types.NavZoneHorizontal, []string{"speed-sync-audio"}, 0)

	focus.SetNavTransition("speed-presets", types.DirDown, "speed-sync-video", types.NavIndexFirst)
	focus.SetNavTransition("speed-sync-video", types.DirUp, "speed-presets", types.NavIndexFirst)
	focus.SetNavTransition("speed-sync-video", types.DirDown, "speed-sync-audio", types.NavIndexFirst)
	focus.SetNavTransition("speed-sync-audio", types.DirUp, "speed-sync-video", types.NavIndexFirst)
}

// speedFocusKey builds the focus key for one preset button
func speedFocusKey(multiplier float64) string {
	return fmt.Sprintf("speed-preset-%d", int(multiplier*100))
}

// speedLabel formats a multiplier as a percentage ("100%")
func speedLabel(multiplier float64) string {
	return fmt.Sprintf("%d%%", int(multiplier*100))
}

// buildMultiplierRow creates the preset row with one toggle per speed
func (sp *SpeedSection) buildMultiplierRow(focus types.FocusManager) *widget.Container {
	controls := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionHorizontal),
			widget.RowLayoutOpts.Spacing(style.SmallSpacing),
		)),
	)

	for _, m := range storage.SpeedPresets {
		multiplier := m
		key := speedFocusKey(multiplier)
		btn := style.ToggleButton(speedLabel(multiplier), sp.config.Speed.Multiplier == multiplier, func(args *widget.ButtonClickedEventArgs) {
			sp.config.Speed.Multiplier = multiplier
			storage.SaveConfig(sp.config)
			sp.callback.ApplyConfig()
			focus.SetPendingFocus(key)
			sp.callback.RequestRebuild()
		})
		focus.RegisterFocusButton(key, btn)
		controls.AddChild(btn)
	}

	return settingRow("Emulation Speed", controls)
}

// buildSyncVideoRow creates the video sync toggle row
func (sp *SpeedSection) buildSyncVideoRow(focus types.FocusManager) *widget.Container {
	btn := style.ToggleButton(boolToOnOff(sp.config.Speed.SyncVideo), sp.config.Speed.SyncVideo, func(args *widget.ButtonClickedEventArgs) {
		sp.config.Speed.SyncVideo = !sp.config.Speed.SyncVideo
		storage.SaveConfig(sp.config)
		sp.callback.ApplyConfig()
		focus.SetPendingFocus("speed-sync-video")
		sp.callback.RequestRebuild()
	})
	focus.RegisterFocusButton("speed-sync-video", btn)
	return settingRow("Sync to Video", btn)
}

// buildSyncAudioRow creates the audio sync toggle row
func (sp *SpeedSection) buildSyncAudioRow(focus types.FocusManager) *widget.Container {
	btn := style.ToggleButton(boolToOnOff(sp.config.Speed.SyncAudio), sp.config.Speed.SyncAudio, func(args *widget.ButtonClickedEventArgs) {
		sp.config.Speed.SyncAudio = !sp.config.Speed.SyncAudio
		storage.SaveConfig(sp.config)
		sp.callback.ApplyConfig()
		focus.SetPendingFocus("speed-sync-audio")
		sp.callback.RequestRebuild()
	})
	focus.RegisterFocusButton("speed-sync-audio", btn)
	return settingRow("Sync to Audio", btn)
}
