package settings

import (
	"fmt"

	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"

	"github.com/OpenEmu/BSNES-Core/filter"
	"github.com/OpenEmu/BSNES-Core/standalone/storage"
	"github.com/OpenEmu/BSNES-Core/standalone/style"
	"github.com/OpenEmu/BSNES-Core/standalone/types"
)

// VideoSection manages video settings: window scale, aspect correction,
// smoothing, the software filter, and the region override.
type VideoSection struct {
	callback types.ScreenCallback
	config   *storage.Config
}

// NewVideoSection creates a new video section
func NewVideoSection(callback types.ScreenCallback, config *storage.Config) *VideoSection {
	return &VideoSection{
		callback: callback,
		config:   config,
	}
}

// SetConfig updates the config reference
func (v *VideoSection) SetConfig(config *storage.Config) {
	v.config = config
}

// Build creates the video section UI
func (v *VideoSection) Build(focus types.FocusManager) *widget.Container {
	section := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Spacing(style.DefaultSpacing),
		)),
	)

	section.AddChild(v.buildScaleRow(focus))
	section.AddChild(v.buildFullscreenRow(focus))
	section.AddChild(v.buildAspectRow(focus))
	section.AddChild(v.buildSmoothRow(focus))

	filterLabel := widget.NewText(
		widget.TextOpts.Text("Video Filter", style.FontFace(), style.Accent),
	)
	section.AddChild(filterLabel)
	for _, info := range filter.Available {
		section.AddChild(v.buildFilterRow(info, focus))
	}

	regionLabel := widget.NewText(
		widget.TextOpts.Text("Region", style.FontFace(), style.Accent),
	)
	section.AddChild(regionLabel)
	section.AddChild(v.buildRegionRow(focus))

	v.setupNavigation(focus)

	return section
}

// setupNavigation registers navigation zones for the video section
func (v *VideoSection) setupNavigation(focus types.FocusManager) {
	scaleKeys := make([]string, 0, storage.MaxVideoScale)
	for s := storage.MinVideoScale; s <= storage.MaxVideoScale; s++ {
		scaleKeys = append(scaleKeys, fmt.Sprintf("video-scale-%d", s))
	}
	focus.RegisterNavZone("video-scale", types.NavZoneHorizontal, scaleKeys, 0)
	focus.RegisterNavZone("video-fullscreen", types.NavZoneHorizontal, []string{"video-fullscreen"}, 0)
	focus.RegisterNavZone("video-aspect", types.NavZoneHorizontal, []string{"video-aspect"}, 0)
	focus.RegisterNavZone("video-smooth", types.NavZoneHorizontal, []string{"video-smooth"}, 0)

	filterKeys := make([]string, len(filter.Available))
	for i, info := range filter.Available {
		filterKeys[i] = "video-filter-" + info.ID
	}
	focus.RegisterNavZone("video-filters", types.NavZoneVertical, filterKeys, 0)

	regionKeys := make([]string, len(storage.ValidRegions))
	for i, r := range storage.ValidRegions {
		regionKeys[i] = "video-region-" + r
	}
	focus.RegisterNavZone("video-region", types.NavZoneHorizontal, regionKeys, 0)

	focus.SetNavTransition("video-scale", types.DirDown, "video-fullscreen", types.NavIndexFirst)
	focus.SetNavTransition("video-fullscreen", types.DirUp, "video-scale", types.NavIndexFirst)
	focus.SetNavTransition("video-fullscreen", types.DirDown, "video-aspect", types.NavIndexFirst)
	focus.SetNavTransition("video-aspect", types.DirUp, "video-fullscreen", types.NavIndexFirst)
	focus.SetNavTransition("video-aspect", types.DirDown, "video-smooth", types.NavIndexFirst)
	focus.SetNavTransition("video-smooth", types.DirUp, "video-aspect", types.NavIndexFirst)
	focus.SetNavTransition("video-smooth", types.DirDown, "video-filters", types.NavIndexFirst)
	focus.SetNavTransition("video-filters", types.DirUp, "video-smooth", types.NavIndexFirst)
	focus.SetNavTransition("video-filters", types.DirDown, "video-region", types.NavIndexFirst)
	focus.SetNavTransition("video-region", types.DirUp, "video-filters", types.NavIndexLast)
}

// settingRow creates a Surface-backed row with a label on the left and
// a control group on the right.
func settingRow(label string, controls widget.PreferredSizeLocateableWidget) *widget.Container {
	row := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(style.Surface)),
		widget.ContainerOpts.Layout(widget.NewGridLayout(
			widget.GridLayoutOpts.Columns(2),
			widget.GridLayoutOpts.Stretch([]bool{true, false}, []bool{true}),
			widget.GridLayoutOpts.Spacing(style.DefaultSpacing, 0),
			widget.GridLayoutOpts.Padding(widget.NewInsetsSimple(style.SmallSpacing)),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.RowLayoutData{Stretch: true}),
		),
	)

	labelText := widget.NewText(
		widget.TextOpts.Text(label, style.FontFace(), style.Text),
		widget.TextOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.GridLayoutData{
				VerticalPosition: widget.GridLayoutPositionCenter,
			}),
		),
	)
	row.AddChild(labelText)
	row.AddChild(controls)

	return row
}

// buildScaleRow creates the window scale row with one toggle per scale factor
func (v *VideoSection) buildScaleRow(focus types.FocusManager) *widget.Container {
	controls := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionHorizontal),
			widget.RowLayoutOpts.Spacing(style.SmallSpacing),
		)),
	)

	for s := storage.MinVideoScale; s <= storage.MaxVideoScale; s++ {
		scale := s
		key := fmt.Sprintf("video-scale-%d", scale)
		btn := style.ToggleButton(fmt.Sprintf("%dx", scale), v.config.Video.Scale == scale, func(args *widget.ButtonClickedEventArgs) {
			v.config.Video.Scale = scale
			storage.SaveConfig(v.config)
			v.callback.ApplyConfig()
			focus.SetPendingFocus(key)
			v.callback.RequestRebuild()
		})
		focus.RegisterFocusButton(key, btn)
		controls.AddChild(btn)
	}

	return settingRow("Window Scale", controls)
}

// buildFullscreenRow creates the fullscreen toggle row
func (v *VideoSection) buildFullscreenRow(focus types.FocusManager) *widget.Container {
	btn := style.ToggleButton(boolToOnOff(v.config.Window.Fullscreen), v.config.Window.Fullscreen, func(args *widget.ButtonClickedEventArgs) {
		v.config.Window.Fullscreen = !v.config.Window.Fullscreen
		storage.SaveConfig(v.config)
		v.callback.ApplyConfig()
		focus.SetPendingFocus("video-fullscreen")
		v.callback.RequestRebuild()
	})
	focus.RegisterFocusButton("video-fullscreen", btn)
	return settingRow("Fullscreen", btn)
}

// buildAspectRow creates the aspect ratio correction toggle row
func (v *VideoSection) buildAspectRow(focus types.FocusManager) *widget.Container {
	btn := style.ToggleButton(boolToOnOff(v.config.Video.AspectCorrection), v.config.Video.AspectCorrection, func(args *widget.ButtonClickedEventArgs) {
		v.config.Video.AspectCorrection = !v.config.Video.AspectCorrection
		storage.SaveConfig(v.config)
		v.callback.ApplyConfig()
		focus.SetPendingFocus("video-aspect")
		v.callback.RequestRebuild()
	})
	focus.RegisterFocusButton("video-aspect", btn)
	return settingRow("Correct Aspect Ratio", btn)
}

// buildSmoothRow creates the smooth output toggle row
func (v *VideoSection) buildSmoothRow(focus types.FocusManager) *widget.Container {
	btn := style.ToggleButton(boolToOnOff(v.config.Video.Smooth), v.config.Video.Smooth, func(args *widget.ButtonClickedEventArgs) {
		v.config.Video.Smooth = !v.config.Video.Smooth
		storage.SaveConfig(v.config)
		v.callback.ApplyConfig()
		focus.SetPendingFocus("video-smooth")
		v.callback.RequestRebuild()
	})
	focus.RegisterFocusButton("video-smooth", btn)
	return settingRow("Smooth Video Output", btn)
}

// buildFilterRow creates a row for a single filter with name, description,
// and an activation toggle
func (v *VideoSection) buildFilterRow(info filter.Info, focus types.FocusManager) *widget.Container {
	active := v.config.Video.Filter == info.ID

	row := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(style.Surface)),
		widget.ContainerOpts.Layout(widget.NewGridLayout(
			widget.GridLayoutOpts.Columns(2),
			widget.GridLayoutOpts.Stretch([]bool{true, false}, []bool{true}),
			widget.GridLayoutOpts.Spacing(style.DefaultSpacing, 0),
			widget.GridLayoutOpts.Padding(widget.NewInsetsSimple(style.SmallSpacing)),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.RowLayoutData{Stretch: true}),
		),
	)

	infoContainer := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Spacing(style.TinySpacing),
		)),
	)
	infoContainer.AddChild(widget.NewText(
		widget.TextOpts.Text(info.Name, style.FontFace(), style.Text),
	))
	infoContainer.AddChild(widget.NewText(
		widget.TextOpts.Text(info.Description, style.FontFace(), style.TextSecondary),
	))
	row.AddChild(infoContainer)

	btn := widget.NewButton(
		widget.ButtonOpts.Image(style.ActiveButtonImage(active)),
		widget.ButtonOpts.Text(boolToOnOff(active), style.FontFace(), style.ButtonTextColor()),
		widget.ButtonOpts.TextPadding(widget.NewInsetsSimple(style.ButtonPaddingSmall)),
		widget.ButtonOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.GridLayoutData{
				VerticalPosition: widget.GridLayoutPositionCenter,
			}),
			widget.WidgetOpts.MinSize(style.Px(50), 0),
		),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			v.config.Video.Filter = info.ID
			storage.SaveConfig(v.config)
			v.callback.ApplyConfig()
			focus.SetPendingFocus("video-filter-" + info.ID)
			v.callback.RequestRebuild()
		}),
	)
	focus.RegisterFocusButton("video-filter-"+info.ID, btn)
	row.AddChild(btn)

	return row
}

// buildRegionRow creates the region override row (auto/ntsc/pal).
// Changing the region takes effect on the next power cycle.
func (v *VideoSection) buildRegionRow(focus types.FocusManager) *widget.Container {
	controls := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionHorizontal),
			widget.RowLayoutOpts.Spacing(style.SmallSpacing),
		)),
	)

	labels := map[string]string{"auto": "Auto", "ntsc": "NTSC", "pal": "PAL"}
	for _, r := range storage.ValidRegions {
		region := r
		key := "video-region-" + region
		btn := style.ToggleButton(labels[region], v.config.Video.Region == region, func(args *widget.ButtonClickedEventArgs) {
			v.config.Video.Region = region
			storage.SaveConfig(v.config)
			v.callback.ApplyConfig()
			focus.SetPendingFocus(key)
			v.callback.RequestRebuild()
		})
		focus.RegisterFocusButton(key, btn)
		controls.AddChild(btn)
	}

	return settingRow("Console Region", controls)
}

// boolToOnOff converts a boolean to "On" or "Off" string
func boolToOnOff(b bool) string {
	if b {
		return "On"
	}
	return "Off"
}
