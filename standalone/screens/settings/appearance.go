package settings

import (
	"fmt"
	"image/color"

	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"

	"github.com/OpenEmu/BSNES-Core/standalone/storage"
	"github.com/OpenEmu/BSNES-Core/standalone/style"
	"github.com/OpenEmu/BSNES-Core/standalone/types"
)

// AppearanceSection holds the theme picker and the font size stepper.
type AppearanceSection struct {
	callback types.ScreenCallback
	config   *storage.Config
}

func NewAppearanceSection(callback types.ScreenCallback, config *storage.Config) *AppearanceSection {
	return &AppearanceSection{callback: callback, config: config}
}

// SetConfig updates the config reference
func (a *AppearanceSection) SetConfig(config *storage.Config) {
	a.config = config
}

// Build creates the appearance section UI
func (a *AppearanceSection) Build(focus types.FocusManager) *widget.Container {
	section := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewGridLayout(
			widget.GridLayoutOpts.Columns(1),
			// The theme list is the only row that stretches.
			widget.GridLayoutOpts.Stretch([]bool{true}, []bool{false, false, true}),
			widget.GridLayoutOpts.Spacing(0, style.DefaultSpacing),
		)),
	)

	section.AddChild(a.buildFontSizeRow(focus))
	section.AddChild(widget.NewText(
		widget.TextOpts.Text("Theme", style.FontFace(), style.Accent),
	))

	themeList := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Spacing(style.DefaultSpacing),
		)),
	)
	for _, theme := range style.AvailableThemes {
		themeList.AddChild(a.buildThemeRow(theme, focus))
	}

	scrollContainer, vSlider, scrollWrapper := style.ScrollableContainer(style.ScrollableOpts{
		Content:     themeList,
		BgColor:     style.Background,
		BorderColor: style.Border,
		Padding:     style.SmallSpacing,
	})
	focus.SetScrollWidgets(scrollContainer, vSlider)
	focus.RestoreScrollPosition()
	section.AddChild(scrollWrapper)

	a.setupNavigation(focus)
	return section
}

func (a *AppearanceSection) setupNavigation(focus types.FocusManager) {
	focus.RegisterNavZone("font-size", types.NavZoneHorizontal, []string{"font-decrease", "font-increase"}, 0)

	themeKeys := make([]string, len(style.AvailableThemes))
	for i, theme := range style.AvailableThemes {
		themeKeys[i] = "theme-" + theme.Name
	}
	focus.RegisterNavZone("theme-list", types.NavZoneVertical, themeKeys, 0)

	focus.SetNavTransition("font-size", types.DirDown, "theme-list", 0)
	focus.SetNavTransition("theme-list", types.DirUp, "font-size", 0)
}

// buildFontSizeRow puts the label on the left and a [-] 14pt [+]
// stepper on the right. The stepper walks storage.FontSizePresets.
func (a *AppearanceSection) buildFontSizeRow(focus types.FocusManager) *widget.Container {
	presets := storage.FontSizePresets
	current := presetIndex(presets, storage.ValidFontSize(a.config.FontSize))

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
	row.AddChild(widget.NewText(
		widget.TextOpts.Text("Font Size", style.FontFace(), style.Text),
		widget.TextOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.GridLayoutData{
				VerticalPosition: widget.GridLayoutPositionCenter,
			}),
		),
	))

	controls := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionHorizontal),
			widget.RowLayoutOpts.Spacing(style.SmallSpacing),
		)),
	)
	controls.AddChild(a.stepButton(focus, "font-decrease", "-", current > 0, -1))
	controls.AddChild(widget.NewText(
		widget.TextOpts.Text(formatPt(presets[current]), style.FontFace(), style.Text),
		widget.TextOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.RowLayoutData{
				Position: widget.RowLayoutPositionCenter,
			}),
			widget.WidgetOpts.MinSize(style.Px(50), 0),
		),
		widget.TextOpts.Position(widget.TextPositionCenter, widget.TextPositionCenter),
	))
	controls.AddChild(a.stepButton(focus, "font-increase", "+", current < len(presets)-1, 1))
	row.AddChild(controls)
	return row
}

// stepButton builds one half of the font size stepper. A button at the
// end of its range renders disabled but stays registered so keyboard
// focus can rest on it.
func (a *AppearanceSection) stepButton(focus types.FocusManager, key, label string, enabled bool, delta int) *widget.Button {
	img := style.ButtonImage()
	if !enabled {
		img = style.DisabledButtonImage()
	}
	btn := widget.NewButton(
		widget.ButtonOpts.Image(img),
		widget.ButtonOpts.Text(label, style.FontFace(), style.ButtonTextColor()),
		widget.ButtonOpts.TextPadding(widget.NewInsetsSimple(style.ButtonPaddingSmall)),
		widget.ButtonOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.RowLayoutData{
				Position: widget.RowLayoutPositionCenter,
			}),
		),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			a.stepFontSize(delta)
			focus.SetPendingFocus(key)
			a.callback.RequestRebuild()
		}),
	)
	focus.RegisterFocusButton(key, btn)
	return btn
}

func (a *AppearanceSection) stepFontSize(delta int) {
	presets := storage.FontSizePresets
	idx := presetIndex(presets, storage.ValidFontSize(a.config.FontSize)) + delta
	if idx < 0 || idx >= len(presets) {
		return
	}
	a.config.FontSize = presets[idx]
	style.ApplyFontSize(a.config.FontSize)
	storage.SaveConfig(a.config)
}

// buildThemeRow pairs the selection button with a swatch strip showing
// the palette's colors.
func (a *AppearanceSection) buildThemeRow(theme style.Theme, focus types.FocusManager) *widget.Container {
	name := theme.Name
	focusKey := "theme-" + name

	row := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewGridLayout(
			widget.GridLayoutOpts.Columns(2),
			widget.GridLayoutOpts.Stretch([]bool{false, true}, []bool{true}),
			widget.GridLayoutOpts.Spacing(style.DefaultSpacing, 0),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.RowLayoutData{Stretch: true}),
		),
	)

	btn := widget.NewButton(
		widget.ButtonOpts.Image(style.ActiveButtonImage(a.config.Theme == name)),
		widget.ButtonOpts.Text(name, style.FontFace(), style.ButtonTextColor()),
		widget.ButtonOpts.TextPadding(widget.NewInsetsSimple(style.ButtonPaddingMedium)),
		widget.ButtonOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(style.Px(150), 0),
			widget.WidgetOpts.LayoutData(widget.GridLayoutData{
				VerticalPosition: widget.GridLayoutPositionCenter,
			}),
		),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			a.config.Theme = name
			style.ApplyThemeByName(name)
			storage.SaveConfig(a.config)
			focus.SetPendingFocus(focusKey)
			a.callback.RequestRebuild()
		}),
	)
	focus.RegisterFocusButton(focusKey, btn)
	row.AddChild(btn)
	row.AddChild(buildSwatchStrip(theme))
	return row
}

// buildSwatchStrip lays the palette's colors out as flat blocks on the
// theme's own background, so a palette can be judged before switching
// to it.
func buildSwatchStrip(theme style.Theme) *widget.Container {
	strip := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(theme.Background)),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionHorizontal),
			widget.RowLayoutOpts.Padding(widget.NewInsetsSimple(style.Px(8))),
			widget.RowLayoutOpts.Spacing(style.Px(6)),
		)),
	)
	swatches := []struct {
		fill color.Color
		text color.Color
	}{
		{theme.Surface, theme.Text},
		{theme.Primary, theme.Text},
		{theme.Accent, theme.Background},
	}
	for _, sw := range swatches {
		block := widget.NewContainer(
			widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(sw.fill)),
			widget.ContainerOpts.Layout(widget.NewAnchorLayout(
				widget.AnchorLayoutOpts.Padding(widget.NewInsetsSimple(style.Px(6))),
			)),
			widget.ContainerOpts.WidgetOpts(
				widget.WidgetOpts.MinSize(style.Px(44), style.Px(30)),
				widget.WidgetOpts.LayoutData(widget.RowLayoutData{
					Position: widget.RowLayoutPositionCenter,
				}),
			),
		)
		block.AddChild(widget.NewText(
			widget.TextOpts.Text("Aa", style.FontFace(), sw.text),
			widget.TextOpts.WidgetOpts(
				widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
					HorizontalPosition: widget.AnchorLayoutPositionCenter,
					VerticalPosition:   widget.AnchorLayoutPositionCenter,
				}),
			),
		))
		strip.AddChild(block)
	}
	return strip
}

func formatPt(size int) string {
	return fmt.Sprintf("%dpt", size)
}

func presetIndex(presets []int, value int) int {
	for i, p := range presets {
		if p == value {
			return i
		}
	}
	return 0
}
