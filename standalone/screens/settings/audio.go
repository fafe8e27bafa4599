package settings

import (
	"fmt"
	"math"

	"github.com/ebitenui/ebitenui/widget"

	"github.com/OpenEmu/BSNES-Core/standalone/storage"
	"github.com/OpenEmu/BSNES-Core/standalone/style"
	"github.com/OpenEmu/BSNES-Core/standalone/types"
)

const (
	volumeMin  = 0.0
	volumeMax  = 2.0
	volumeStep = 0.1
)

// AudioSection holds the mute toggle and the output volume stepper.
type AudioSection struct {
	callback types.ScreenCallback
	config   *storage.Config

	// Updated in place on +/- so the stepper keeps keyboard focus
	// instead of going through a rebuild.
	volumeValue *widget.Text
}

func NewAudioSection(callback types.ScreenCallback, config *storage.Config) *AudioSection {
	return &AudioSection{callback: callback, config: config}
}

// SetConfig updates the config reference
func (a *AudioSection) SetConfig(config *storage.Config) {
	a.config = config
}

// Build creates the audio section UI
func (a *AudioSection) Build(focus types.FocusManager) *widget.Container {
	section := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Spacing(style.DefaultSpacing),
		)),
	)

	mute := widget.NewButton(
		widget.ButtonOpts.Image(style.ActiveButtonImage(a.config.Audio.Muted)),
		widget.ButtonOpts.Text(boolToOnOff(a.config.Audio.Muted), style.FontFace(), style.ButtonTextColor()),
		widget.ButtonOpts.TextPadding(widget.NewInsetsSimple(style.ButtonPaddingSmall)),
		widget.ButtonOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.GridLayoutData{
				VerticalPosition: widget.GridLayoutPositionCenter,
			}),
			widget.WidgetOpts.MinSize(style.Px(50), 0),
		),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			a.config.Audio.Muted = !a.config.Audio.Muted
			storage.SaveConfig(a.config)
			a.callback.ApplyConfig()
			focus.SetPendingFocus("audio-mute")
			a.callback.RequestRebuild()
		}),
	)
	focus.RegisterFocusButton("audio-mute", mute)
	section.AddChild(settingRow("Mute Audio Output", mute))

	section.AddChild(settingRow("Volume", a.buildVolumeStepper(focus)))

	focus.RegisterNavZone("audio-mute", types.NavZoneHorizontal, []string{"audio-mute"}, 0)
	focus.RegisterNavZone("audio-volume", types.NavZoneHorizontal, []string{"audio-vol-dec", "audio-vol-inc"}, 0)
	focus.SetNavTransition("audio-mute", types.DirDown, "audio-volume", types.NavIndexFirst)
	focus.SetNavTransition("audio-volume", types.DirUp, "audio-mute", types.NavIndexFirst)

	return section
}

// buildVolumeStepper builds the [-] 100% [+] control. Volume steps by
// 10% between 0% and 200%.
func (a *AudioSection) buildVolumeStepper(focus types.FocusManager) *widget.Container {
	controls := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionHorizontal),
			widget.RowLayoutOpts.Spacing(style.SmallSpacing),
		)),
	)

	a.volumeValue = widget.NewText(
		widget.TextOpts.Text(a.volumeLabel(), style.FontFace(), style.Text),
		widget.TextOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.RowLayoutData{
				Position: widget.RowLayoutPositionCenter,
			}),
			widget.WidgetOpts.MinSize(style.Px(50), 0),
		),
	)

	controls.AddChild(a.volumeButton(focus, "audio-vol-dec", "-", -volumeStep))
	controls.AddChild(a.volumeValue)
	controls.AddChild(a.volumeButton(focus, "audio-vol-inc", "+", volumeStep))
	return controls
}

func (a *AudioSection) volumeButton(focus types.FocusManager, key, label string, step float64) *widget.Button {
	btn := widget.NewButton(
		widget.ButtonOpts.Image(style.ButtonImage()),
		widget.ButtonOpts.Text(label, style.FontFace(), style.ButtonTextColor()),
		widget.ButtonOpts.TextPadding(widget.NewInsetsSimple(style.ButtonPaddingSmall)),
		widget.ButtonOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.RowLayoutData{
				Position: widget.RowLayoutPositionCenter,
			}),
		),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			a.adjustVolume(step)
		}),
	)
	focus.RegisterFocusButton(key, btn)
	return btn
}

// adjustVolume steps the volume, persists it, and pushes it into the
// running player without rebuilding the UI.
func (a *AudioSection) adjustVolume(step float64) {
	// Round to one decimal so repeated float steps never drift.
	v := math.Round((a.config.Audio.Volume+step)*10) / 10
	if v < volumeMin {
		v = volumeMin
	}
	if v > volumeMax {
		v = volumeMax
	}
	a.config.Audio.Volume = v
	storage.SaveConfig(a.config)
	a.callback.ApplyConfig()
	if a.volumeValue != nil {
		a.volumeValue.Label = a.volumeLabel()
	}
}

func (a *AudioSection) volumeLabel() string {
	return fmt.Sprintf("%d%%", int(math.Round(a.config.Audio.Volume*100)))
}
