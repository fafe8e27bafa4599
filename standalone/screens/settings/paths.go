package settings

import (
	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/sqweek/dialog"

	"github.com/OpenEmu/BSNES-Core/standalone/storage"
	"github.com/OpenEmu/BSNES-Core/standalone/style"
	"github.com/OpenEmu/BSNES-Core/standalone/types"
)

// pathEntry describes one configurable directory. defaultText supplies
// the value shown while the path is unset: the built-in data directory
// for concerns that have one, otherwise a description of the fallback.
type pathEntry struct {
	id          string
	label       string
	get         func(c *storage.Config) string
	set         func(c *storage.Config, v string)
	defaultText func() string
}

var pathEntries = []pathEntry{
	{
		id:          "rom",
		label:       "ROM Browsing",
		get:         func(c *storage.Config) string { return c.Paths.ROM },
		set:         func(c *storage.Config, v string) { c.Paths.ROM = v },
		defaultText: func() string { return "Startup path" },
	},
	{
		id:          "save",
		label:       "Save RAM",
		get:         func(c *storage.Config) string { return c.Paths.Save },
		set:         func(c *storage.Config, v string) { c.Paths.Save = v },
		defaultText: func() string { return dataDirText(storage.GetSavesDir) },
	},
	{
		id:          "state",
		label:       "Save States",
		get:         func(c *storage.Config) string { return c.Paths.State },
		set:         func(c *storage.Config, v string) { c.Paths.State = v },
		defaultText: func() string { return dataDirText(storage.GetStatesDir) },
	},
	{
		id:          "patch",
		label:       "UPS Patches",
		get:         func(c *storage.Config) string { return c.Paths.Patch },
		set:         func(c *storage.Config, v string) { c.Paths.Patch = v },
		defaultText: func() string { return "Same as loaded game" },
	},
	{
		id:          "cheat",
		label:       "Cheat Files",
		get:         func(c *storage.Config) string { return c.Paths.Cheat },
		set:         func(c *storage.Config, v string) { c.Paths.Cheat = v },
		defaultText: func() string { return dataDirText(storage.GetCheatsDir) },
	},
	{
		id:          "export",
		label:       "Screenshots & Audio",
		get:         func(c *storage.Config) string { return c.Paths.Export },
		set:         func(c *storage.Config, v string) { c.Paths.Export = v },
		defaultText: func() string { return "Same as loaded game" },
	},
}

// dataDirText resolves a default data directory for display.
func dataDirText(dir func() (string, error)) string {
	d, err := dir()
	if err != nil {
		return "Application data folder"
	}
	return d
}

// PathsSection manages the per-concern directory overrides. A blank path
// means the built-in default under the application data directory, or the
// ROM's own directory for concerns without one.
type PathsSection struct {
	callback types.ScreenCallback
	config   *storage.Config
}

// NewPathsSection creates a new paths section
func NewPathsSection(callback types.ScreenCallback, config *storage.Config) *PathsSection {
	return &PathsSection{
		callback: callback,
		config:   config,
	}
}

// SetConfig updates the config reference
func (p *PathsSection) SetConfig(config *storage.Config) {
	p.config = config
}

// Build creates the paths section UI
func (p *PathsSection) Build(focus types.FocusManager) *widget.Container {
	section := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Spacing(style.DefaultSpacing),
		)),
	)

	for _, entry := range pathEntries {
		section.AddChild(p.buildPathRow(entry, focus))
	}

	p.setupNavigation(focus)

	return section
}

// setupNavigation registers a single 3-column grid covering every row's
// Select/Default/Copy buttons so up/down moves between rows.
func (p *PathsSection) setupNavigation(focus types.FocusManager) {
	keys := make([]string, 0, len(pathEntries)*3)
	for _, entry := range pathEntries {
		keys = append(keys,
			"paths-"+entry.id+"-select",
			"paths-"+entry.id+"-default",
			"paths-"+entry.id+"-copy",
		)
	}
	focus.RegisterNavZone("paths-grid", types.NavZoneGrid, keys, 3)
}

// buildPathRow creates one directory row: label, current value, and the
// Select/Default/Copy buttons.
func (p *PathsSection) buildPathRow(entry pathEntry, focus types.FocusManager) *widget.Container {
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

	configured := entry.get(p.config)
	display := configured
	if display == "" {
		display = entry.defaultText()
	}

	// Label and current path stacked on the left. Long paths are
	// truncated from the front so the leaf directory stays visible.
	info := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Spacing(style.TinySpacing),
		)),
	)
	info.AddChild(widget.NewText(
		widget.TextOpts.Text(entry.label, style.FontFace(), style.Text),
	))

	displayPath, wasTruncated := style.TruncateStart(display, 48)
	var pathWidgetOpts []widget.WidgetOpt
	if wasTruncated {
		pathWidgetOpts = append(pathWidgetOpts, widget.WidgetOpts.ToolTip(
			widget.NewToolTip(
				widget.ToolTipOpts.Content(style.TooltipContent(display)),
			),
		))
	}
	info.AddChild(widget.NewText(
		widget.TextOpts.Text(displayPath, style.FontFace(), style.TextSecondary),
		widget.TextOpts.WidgetOpts(pathWidgetOpts...),
	))
	row.AddChild(info)

	controls := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionHorizontal),
			widget.RowLayoutOpts.Spacing(style.SmallSpacing),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.GridLayoutData{
				VerticalPosition: widget.GridLayoutPositionCenter,
			}),
		),
	)

	selectKey := "paths-" + entry.id + "-select"
	selectBtn := style.TextButton("Select...", style.ButtonPaddingSmall, func(args *widget.ButtonClickedEventArgs) {
		// Native dialogs block, so browse off the UI thread
		go func() {
			dir, err := dialog.Directory().Title("Select " + entry.label + " Directory").Browse()
			if err != nil || dir == "" {
				return
			}
			entry.set(p.config, dir)
			storage.SaveConfig(p.config)
			p.callback.ApplyConfig()
			focus.SetPendingFocus(selectKey)
			p.callback.RequestRebuild()
		}()
	})
	focus.RegisterFocusButton(selectKey, selectBtn)
	controls.AddChild(selectBtn)

	defaultKey := "paths-" + entry.id + "-default"
	defaultBtn := style.TextButton("Default", style.ButtonPaddingSmall, func(args *widget.ButtonClickedEventArgs) {
		entry.set(p.config, "")
		storage.SaveConfig(p.config)
		p.callback.ApplyConfig()
		focus.SetPendingFocus(defaultKey)
		p.callback.RequestRebuild()
	})
	focus.RegisterFocusButton(defaultKey, defaultBtn)
	controls.AddChild(defaultBtn)

	copyKey := "paths-" + entry.id + "-copy"
	copyBtn := style.TextButton("Copy", style.ButtonPaddingSmall, func(args *widget.ButtonClickedEventArgs) {
		if configured != "" {
			style.CopyToClipboard(configured)
		}
	})
	focus.RegisterFocusButton(copyKey, copyBtn)
	controls.AddChild(copyBtn)

	row.AddChild(controls)

	return row
}
