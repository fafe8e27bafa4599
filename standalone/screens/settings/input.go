package settings

import (
	"fmt"

	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"

	emucore "github.com/OpenEmu/BSNES-Core/api"
	"github.com/OpenEmu/BSNES-Core/standalone/storage"
	"github.com/OpenEmu/BSNES-Core/standalone/style"
	"github.com/OpenEmu/BSNES-Core/standalone/types"
)

// BindingResolver reports the effective binding for display purposes,
// accounting for config overrides falling back to the built-in defaults.
type BindingResolver interface {
	KeyboardBinding(player int, control string) string
	GamepadBinding(player int, control string) string
}

// InputSection displays controller bindings and input options
type InputSection struct {
	callback types.ScreenCallback
	config   *storage.Config
	resolver BindingResolver

	selectedPlayer int
}

// NewInputSection creates a new input section
func NewInputSection(callback types.ScreenCallback, config *storage.Config, resolver BindingResolver) *InputSection {
	return &InputSection{
		callback: callback,
		config:   config,
		resolver: resolver,
	}
}

// SetConfig updates the config reference
func (in *InputSection) SetConfig(config *storage.Config) {
	in.config = config
}

// Build creates the input section UI
func (in *InputSection) Build(focus types.FocusManager) *widget.Container {
	// GridLayout so the binding table row can take the leftover height
	section := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewGridLayout(
			widget.GridLayoutOpts.Columns(1),
			widget.GridLayoutOpts.Stretch([]bool{true}, []bool{false, true, false, false}),
			widget.GridLayoutOpts.Spacing(0, style.DefaultSpacing),
		)),
	)

	section.AddChild(in.buildPlayerRow(focus))
	section.AddChild(in.buildBindingTable(focus))
	section.AddChild(in.buildAnalogRow(focus))
	section.AddChild(in.buildResetRow(focus))

	in.setupNavigation(focus)

	return section
}

// setupNavigation registers navigation zones for the input section
func (in *InputSection) setupNavigation(focus types.FocusManager) {
	focus.RegisterNavZone("input-players", types.NavZoneHorizontal, []string{"input-player-1", "input-player-2"}, 0)
	focus.RegisterNavZone("input-analog", types.NavZoneHorizontal, []string{"input-analog"}, 0)
	focus.RegisterNavZone("input-reset", types.NavZoneHorizontal, []string{"input-reset"}, 0)

	focus.SetNavTransition("input-players", types.DirDown, "input-analog", types.NavIndexFirst)
	focus.SetNavTransition("input-analog", types.DirUp, "input-players", types.NavIndexFirst)
	focus.SetNavTransition("input-analog", types.DirDown, "input-reset", types.NavIndexFirst)
	focus.SetNavTransition("input-reset", types.DirUp, "input-analog", types.NavIndexFirst)
}

// buildPlayerRow creates the player selector row
func (in *InputSection) buildPlayerRow(focus types.FocusManager) *widget.Container {
	controls := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionHorizontal),
			widget.RowLayoutOpts.Spacing(style.SmallSpacing),
		)),
	)

	for p := 0; p < 2; p++ {
		player := p
		key := fmt.Sprintf("input-player-%d", player+1)
		btn := style.ToggleButton(fmt.Sprintf("Controller %d", player+1), in.selectedPlayer == player, func(args *widget.ButtonClickedEventArgs) {
			in.selectedPlayer = player
			focus.SetPendingFocus(key)
			in.callback.RequestRebuild()
		})
		focus.RegisterFocusButton(key, btn)
		controls.AddChild(btn)
	}

	return settingRow("Bindings For", controls)
}

// buildBindingTable creates the scrollable control binding table.
// The keyboard column only applies to controller 1.
func (in *InputSection) buildBindingTable(focus types.FocusManager) widget.PreferredSizeLocateableWidget {
	table := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
		)),
	)

	header := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionHorizontal),
			widget.RowLayoutOpts.Spacing(style.SmallSpacing),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.RowLayoutData{Stretch: true}),
		),
	)
	header.AddChild(style.TableHeaderCell("Control", style.BindingColControl, style.SettingsRowHeight))
	header.AddChild(style.TableHeaderCell("Keyboard", style.BindingColKey, style.SettingsRowHeight))
	header.AddChild(style.TableHeaderCell("Gamepad", style.BindingColKey, style.SettingsRowHeight))
	table.AddChild(header)

	for i, control := range emucore.ControlNames {
		keyName := "-"
		if in.selectedPlayer == 0 {
			keyName = in.resolver.KeyboardBinding(in.selectedPlayer, control)
		}
		padName := in.resolver.GamepadBinding(in.selectedPlayer, control)

		row := widget.NewContainer(
			widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(style.AlternatingRowColor(i))),
			widget.ContainerOpts.Layout(widget.NewRowLayout(
				widget.RowLayoutOpts.Direction(widget.DirectionHorizontal),
				widget.RowLayoutOpts.Spacing(style.SmallSpacing),
			)),
			widget.ContainerOpts.WidgetOpts(
				widget.WidgetOpts.LayoutData(widget.RowLayoutData{Stretch: true}),
			),
		)
		row.AddChild(style.TableCell(control, style.BindingColControl, style.SettingsRowHeight, style.Text))
		row.AddChild(style.TableCell(keyName, style.BindingColKey, style.SettingsRowHeight, style.TextSecondary))
		row.AddChild(style.TableCell(padName, style.BindingColKey, style.SettingsRowHeight, style.TextSecondary))
		table.AddChild(row)
	}

	table.AddChild(widget.NewText(
		widget.TextOpts.Text("Edit bindings in the config file; changes load on restart.", style.FontFace(), style.TextSecondary),
	))

	scrollContainer, vSlider, wrapper := style.ScrollableContainer(style.ScrollableOpts{
		Content:     table,
		BgColor:     style.Background,
		BorderColor: style.Border,
		Padding:     style.SmallSpacing,
	})
	focus.SetScrollWidgets(scrollContainer, vSlider)
	focus.RestoreScrollPosition()

	return wrapper
}

// buildAnalogRow creates the analog stick disable toggle row
func (in *InputSection) buildAnalogRow(focus types.FocusManager) *widget.Container {
	btn := style.ToggleButton(boolToOnOff(in.config.Input.DisableAnalogStick), in.config.Input.DisableAnalogStick, func(args *widget.ButtonClickedEventArgs) {
		in.config.Input.DisableAnalogStick = !in.config.Input.DisableAnalogStick
		storage.SaveConfig(in.config)
		in.callback.ApplyConfig()
		focus.SetPendingFocus("input-analog")
		in.callback.RequestRebuild()
	})
	focus.RegisterFocusButton("input-analog", btn)
	return settingRow("Disable Analog Stick", btn)
}

// buildResetRow creates the reset-to-defaults button row
func (in *InputSection) buildResetRow(focus types.FocusManager) *widget.Container {
	btn := style.TextButton("Reset to Defaults", style.ButtonPaddingMedium, func(args *widget.ButtonClickedEventArgs) {
		in.config.Input.P1Keyboard = nil
		in.config.Input.P1Controller = nil
		in.config.Input.P2Controller = nil
		storage.SaveConfig(in.config)
		in.callback.ApplyConfig()
		focus.SetPendingFocus("input-reset")
		in.callback.RequestRebuild()
	})
	focus.RegisterFocusButton("input-reset", btn)

	row := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionHorizontal),
		)),
	)
	row.AddChild(btn)
	return row
}
