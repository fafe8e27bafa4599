package screens

import (
	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"

	"github.com/OpenEmu/BSNES-Core/standalone/screens/settings"
	"github.com/OpenEmu/BSNES-Core/standalone/storage"
	"github.com/OpenEmu/BSNES-Core/standalone/style"
	"github.com/OpenEmu/BSNES-Core/standalone/types"
)

// Sidebar section indices
const (
	sectionVideo = iota
	sectionAudio
	sectionSpeed
	sectionInput
	sectionPaths
	sectionAppearance
)

// SettingsScreen displays application settings
type SettingsScreen struct {
	BaseScreen // Embedded for focus restoration

	callback        ScreenCallback
	selectedSection int

	// Encapsulated sections
	video      *settings.VideoSection
	audio      *settings.AudioSection
	speed      *settings.SpeedSection
	input      *settings.InputSection
	paths      *settings.PathsSection
	appearance *settings.AppearanceSection
}

// NewSettingsScreen creates a new settings screen.
// resolver supplies effective key/pad bindings for the input section.
func NewSettingsScreen(callback ScreenCallback, config *storage.Config, resolver settings.BindingResolver) *SettingsScreen {
	s := &SettingsScreen{
		callback:        callback,
		selectedSection: sectionVideo,
		video:           settings.NewVideoSection(callback, config),
		audio:           settings.NewAudioSection(callback, config),
		speed:           settings.NewSpeedSection(callback, config),
		input:           settings.NewInputSection(callback, config, resolver),
		paths:           settings.NewPathsSection(callback, config),
		appearance:      settings.NewAppearanceSection(callback, config),
	}
	s.InitBase()
	return s
}

// SetConfig updates the config reference in all sections
func (s *SettingsScreen) SetConfig(config *storage.Config) {
	s.video.SetConfig(config)
	s.audio.SetConfig(config)
	s.speed.SetConfig(config)
	s.input.SetConfig(config)
	s.paths.SetConfig(config)
	s.appearance.SetConfig(config)
}

// Build creates the settings screen UI
func (s *SettingsScreen) Build() *widget.Container {
	// Clear button references for fresh build
	s.ClearFocusButtons()

	// Use GridLayout for the root to properly constrain sizes
	rootContainer := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(style.Background)),
		widget.ContainerOpts.Layout(widget.NewGridLayout(
			widget.GridLayoutOpts.Columns(1),
			// Row 0 (header) = fixed, Row 1 (main content) = stretch
			widget.GridLayoutOpts.Stretch([]bool{true}, []bool{false, true}),
			widget.GridLayoutOpts.Padding(widget.NewInsetsSimple(style.DefaultPadding)),
			widget.GridLayoutOpts.Spacing(style.DefaultSpacing, style.DefaultSpacing),
		)),
	)

	// Header with back button and title
	header := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionHorizontal),
			widget.RowLayoutOpts.Spacing(style.DefaultSpacing),
		)),
	)

	backButton := style.TextButton("Back", style.ButtonPaddingSmall, func(args *widget.ButtonClickedEventArgs) {
		s.callback.CloseSettings()
	})
	header.AddChild(backButton)

	header.AddChild(widget.NewText(
		widget.TextOpts.Text("Settings", style.FontFace(), style.Text),
		widget.TextOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.RowLayoutData{
				Position: widget.RowLayoutPositionCenter,
			}),
		),
	))

	rootContainer.AddChild(header)

	// Main content area with sidebar and content - use GridLayout for proper sizing
	mainContent := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewGridLayout(
			widget.GridLayoutOpts.Columns(2),
			// Col 0 (sidebar) = fixed, Col 1 (content) = stretch
			widget.GridLayoutOpts.Stretch([]bool{false, true}, []bool{true}),
			widget.GridLayoutOpts.Spacing(style.DefaultSpacing, 0),
		)),
	)

	mainContent.AddChild(s.buildSidebar())

	// Content area - use GridLayout to constrain the section content
	contentArea := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewGridLayout(
			widget.GridLayoutOpts.Columns(1),
			widget.GridLayoutOpts.Stretch([]bool{true}, []bool{true}),
			widget.GridLayoutOpts.Padding(widget.NewInsetsSimple(style.DefaultPadding)),
		)),
	)

	// Section content - delegate to encapsulated sections
	switch s.selectedSection {
	case sectionVideo:
		contentArea.AddChild(s.video.Build(s))
	case sectionAudio:
		contentArea.AddChild(s.audio.Build(s))
	case sectionSpeed:
		contentArea.AddChild(s.speed.Build(s))
	case sectionInput:
		contentArea.AddChild(s.input.Build(s))
	case sectionPaths:
		contentArea.AddChild(s.paths.Build(s))
	case sectionAppearance:
		contentArea.AddChild(s.appearance.Build(s))
	}

	mainContent.AddChild(contentArea)
	rootContainer.AddChild(mainContent)

	// Set up navigation zones
	s.setupNavigation()

	return rootContainer
}

// buildSidebar creates the section selector sidebar
func (s *SettingsScreen) buildSidebar() *widget.Container {
	sidebar := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(style.Surface)),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Padding(widget.NewInsetsSimple(style.SmallSpacing)),
			widget.RowLayoutOpts.Spacing(style.TinySpacing),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(style.SettingsSidebarMinWidth, 0),
		),
	)

	for i, name := range sectionNames {
		section := i
		key := sectionFocusKeys[i]
		btn := widget.NewButton(
			widget.ButtonOpts.Image(style.ActiveButtonImage(s.selectedSection == section)),
			widget.ButtonOpts.Text(name, style.FontFace(), &widget.ButtonTextColor{
				Idle:     style.Text,
				Disabled: style.TextSecondary,
			}),
			widget.ButtonOpts.TextPadding(widget.NewInsetsSimple(style.ButtonPaddingSmall)),
			widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
				s.selectedSection = section
				s.SetPendingFocus(key)
				s.callback.RequestRebuild()
			}),
			widget.ButtonOpts.WidgetOpts(
				widget.WidgetOpts.LayoutData(widget.RowLayoutData{Stretch: true}),
			),
		)
		s.RegisterFocusButton(key, btn)
		sidebar.AddChild(btn)
	}

	return sidebar
}

var sectionNames = []string{"Video", "Audio", "Speed", "Input", "Paths", "Appearance"}

var sectionFocusKeys = []string{
	"section-video",
	"section-audio",
	"section-speed",
	"section-input",
	"section-paths",
	"section-appearance",
}

// setupNavigation registers navigation zones for settings screen
func (s *SettingsScreen) setupNavigation() {
	// Sidebar zone (vertical)
	s.RegisterNavZone("sidebar", types.NavZoneVertical, sectionFocusKeys, 0)

	// Set up transitions between the sidebar and the active section's zones
	switch s.selectedSection {
	case sectionVideo:
		s.SetNavTransition("sidebar", types.DirRight, "video-scale", types.NavIndexFirst)
		for _, zone := range []string{"video-scale", "video-fullscreen", "video-aspect", "video-smooth", "video-filters", "video-region"} {
			s.SetNavTransition(zone, types.DirLeft, "sidebar", types.NavIndexFirst)
		}
	case sectionAudio:
		s.SetNavTransition("sidebar", types.DirRight, "audio-mute", types.NavIndexFirst)
		s.SetNavTransition("audio-mute", types.DirLeft, "sidebar", types.NavIndexFirst)
		s.SetNavTransition("audio-volume", types.DirLeft, "sidebar", types.NavIndexFirst)
	case sectionSpeed:
		s.SetNavTransition("sidebar", types.DirRight, "speed-presets", types.NavIndexFirst)
		s.SetNavTransition("speed-presets", types.DirLeft, "sidebar", types.NavIndexFirst)
		s.SetNavTransition("speed-sync-video", types.DirLeft, "sidebar", types.NavIndexFirst)
		s.SetNavTransition("speed-sync-audio", types.DirLeft, "sidebar", types.NavIndexFirst)
	case sectionInput:
		s.SetNavTransition("sidebar", types.DirRight, "input-players", types.NavIndexFirst)
		s.SetNavTransition("input-players", types.DirLeft, "sidebar", types.NavIndexFirst)
		s.SetNavTransition("input-analog", types.DirLeft, "sidebar", types.NavIndexFirst)
		s.SetNavTransition("input-reset", types.DirLeft, "sidebar", types.NavIndexFirst)
	case sectionPaths:
		s.SetNavTransition("sidebar", types.DirRight, "paths-grid", types.NavIndexFirst)
		s.SetNavTransition("paths-grid", types.DirLeft, "sidebar", types.NavIndexFirst)
	case sectionAppearance:
		s.SetNavTransition("sidebar", types.DirRight, "font-size", types.NavIndexFirst)
		s.SetNavTransition("font-size", types.DirLeft, "sidebar", types.NavIndexFirst)
		s.SetNavTransition("theme-list", types.DirLeft, "sidebar", types.NavIndexFirst)
	}
}

// OnEnter is called when entering the settings screen
func (s *SettingsScreen) OnEnter() {
	s.SetPendingFocus("section-video") // Always defaults to the Video section when entering
}
