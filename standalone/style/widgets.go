package style

import (
	"image/color"

	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"golang.design/x/clipboard"
)

// TextButton builds a plain action button ("Select...", "Default").
func TextButton(label string, padding int, handler func(*widget.ButtonClickedEventArgs)) *widget.Button {
	return widget.NewButton(
		widget.ButtonOpts.Image(ButtonImage()),
		widget.ButtonOpts.Text(label, FontFace(), ButtonTextColor()),
		widget.ButtonOpts.TextPadding(widget.NewInsetsSimple(padding)),
		widget.ButtonOpts.ClickedHandler(handler),
	)
}

// ToggleButton builds a button whose fill shows a selected state.
// Used for scale presets, filter choices, and sidebar entries.
func ToggleButton(label string, active bool, handler func(*widget.ButtonClickedEventArgs)) *widget.Button {
	return widget.NewButton(
		widget.ButtonOpts.Image(ActiveButtonImage(active)),
		widget.ButtonOpts.Text(label, FontFace(), ButtonTextColor()),
		widget.ButtonOpts.TextPadding(widget.NewInsetsSimple(ButtonPaddingSmall)),
		widget.ButtonOpts.ClickedHandler(handler),
	)
}

// TooltipContent builds the hover container that shows untruncated text.
func TooltipContent(label string) *widget.Container {
	c := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(Border)),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Padding(widget.NewInsetsSimple(SmallSpacing)),
		)),
	)
	c.AddChild(widget.NewText(widget.TextOpts.Text(label, FontFace(), Text)))
	return c
}

// TableCell builds a fixed-size cell with vertically centered text, for
// the input binding table.
func TableCell(label string, width, height int, textColor color.Color) *widget.Container {
	cell := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
		widget.ContainerOpts.WidgetOpts(widget.WidgetOpts.MinSize(width, height)),
	)
	cell.AddChild(widget.NewText(
		widget.TextOpts.Text(label, FontFace(), textColor),
		widget.TextOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				VerticalPosition: widget.AnchorLayoutPositionCenter,
			}),
		),
	))
	return cell
}

// TableHeaderCell is a TableCell in the secondary text color.
func TableHeaderCell(label string, width, height int) *widget.Container {
	return TableCell(label, width, height, TextSecondary)
}

// AlternatingRowColor stripes table rows: Background on even indices,
// Surface on odd ones.
func AlternatingRowColor(index int) color.Color {
	if index%2 == 1 {
		return Surface
	}
	return Background
}

// ScrollableOpts configures ScrollableContainer.
type ScrollableOpts struct {
	Content     *widget.Container
	BgColor     color.Color // default: Background
	BorderColor color.Color // nil for no border
	Spacing     int         // between scroll area and slider
	Padding     int         // inside the wrapper
}

// ScrollableContainer wraps content in a scroll container with a
// vertical slider. The returned container and slider go to
// SetScrollWidgets so the screen can preserve scroll position.
func ScrollableContainer(opts ScrollableOpts) (*widget.ScrollContainer, *widget.Slider, widget.PreferredSizeLocateableWidget) {
	bg := opts.BgColor
	if bg == nil {
		bg = Background
	}
	spacing := opts.Spacing
	if spacing == 0 && opts.BorderColor == nil {
		spacing = TinySpacing
	}

	sc := widget.NewScrollContainer(
		widget.ScrollContainerOpts.Content(opts.Content),
		widget.ScrollContainerOpts.StretchContentWidth(),
		widget.ScrollContainerOpts.Image(&widget.ScrollContainerImage{
			Idle: image.NewNineSliceColor(bg),
			Mask: image.NewNineSliceColor(bg),
		}),
	)

	overflowing := func() bool {
		content := sc.ContentRect().Dy()
		view := sc.ViewRect().Dy()
		return view > 0 && content > view
	}

	slider := newScrollSlider(sc, overflowing)
	bindWheelScroll(sc, slider, overflowing)

	var wrapperOpts []widget.ContainerOpt
	if opts.BorderColor != nil {
		wrapperOpts = append(wrapperOpts,
			widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(opts.BorderColor)))
	}
	wrapperOpts = append(wrapperOpts,
		widget.ContainerOpts.Layout(widget.NewGridLayout(
			widget.GridLayoutOpts.Columns(2),
			widget.GridLayoutOpts.Stretch([]bool{true, false}, []bool{true}),
			widget.GridLayoutOpts.Spacing(spacing, 0),
			widget.GridLayoutOpts.Padding(widget.NewInsetsSimple(opts.Padding)),
		)),
	)
	wrapper := widget.NewContainer(wrapperOpts...)
	wrapper.AddChild(sc)
	wrapper.AddChild(slider)
	return sc, slider, wrapper
}

// newScrollSlider builds the vertical slider driving a scroll
// container. Its range is 0..1000 so position survives the int Current
// field with enough precision.
func newScrollSlider(sc *widget.ScrollContainer, overflowing func() bool) *widget.Slider {
	return widget.NewSlider(
		widget.SliderOpts.TabOrder(-1), // stays out of keyboard focus order
		widget.SliderOpts.Direction(widget.DirectionVertical),
		widget.SliderOpts.MinMax(0, 1000),
		widget.SliderOpts.Images(sliderTrackImage(), sliderHandleImage()),
		widget.SliderOpts.FixedHandleSize(Px(40)),
		widget.SliderOpts.PageSizeFunc(func() int {
			if !overflowing() {
				return 1000
			}
			return sc.ViewRect().Dy() * 1000 / sc.ContentRect().Dy()
		}),
		widget.SliderOpts.ChangedHandler(func(args *widget.SliderChangedEventArgs) {
			if !overflowing() {
				sc.ScrollTop = 0
				return
			}
			sc.ScrollTop = float64(args.Current) / 1000
		}),
	)
}

// bindWheelScroll routes mouse wheel events on the scroll container to
// its slider.
func bindWheelScroll(sc *widget.ScrollContainer, slider *widget.Slider, overflowing func() bool) {
	sc.GetWidget().ScrolledEvent.AddHandler(func(args interface{}) {
		if !overflowing() {
			sc.ScrollTop = 0
			return
		}
		a := args.(*widget.WidgetScrolledEventArgs)
		top := sc.ScrollTop + a.Y*ScrollWheelSensitivity
		if top < 0 {
			top = 0
		} else if top > 1 {
			top = 1
		}
		sc.ScrollTop = top
		slider.Current = int(top * 1000)
	})
}

var clipboardReady bool

// CopyToClipboard puts text on the system clipboard. Returns false
// when the clipboard cannot be initialized (headless environments).
func CopyToClipboard(text string) bool {
	if !clipboardReady {
		if err := clipboard.Init(); err != nil {
			return false
		}
		clipboardReady = true
	}
	clipboard.Write(clipboard.FmtText, []byte(text))
	return true
}
