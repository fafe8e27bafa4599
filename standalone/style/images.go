package style

import (
	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
)

// ButtonImage is the standard button look.
func ButtonImage() *widget.ButtonImage {
	return &widget.ButtonImage{
		Idle:     image.NewNineSliceColor(Surface),
		Hover:    image.NewNineSliceColor(PrimaryHover),
		Pressed:  image.NewNineSliceColor(Primary),
		Disabled: image.NewNineSliceColor(Border),
	}
}

// DisabledButtonImage renders a button that looks inert in every state.
// Used for steppers pinned at their range ends.
func DisabledButtonImage() *widget.ButtonImage {
	flat := image.NewNineSliceColor(Border)
	return &widget.ButtonImage{Idle: flat, Hover: flat, Pressed: flat, Disabled: flat}
}

// ActiveButtonImage picks the look for a toggle: filled with the
// primary color when active, the standard look otherwise.
func ActiveButtonImage(active bool) *widget.ButtonImage {
	if !active {
		return ButtonImage()
	}
	return &widget.ButtonImage{
		Idle:     image.NewNineSliceColor(Primary),
		Hover:    image.NewNineSliceColor(PrimaryHover),
		Pressed:  image.NewNineSliceColor(Surface),
		Disabled: image.NewNineSliceColor(Border),
	}
}

// ButtonTextColor is the standard button text coloring.
func ButtonTextColor() *widget.ButtonTextColor {
	return &widget.ButtonTextColor{
		Idle:     Text,
		Disabled: TextSecondary,
	}
}

func sliderHandleImage() *widget.ButtonImage {
	return &widget.ButtonImage{
		Idle:     image.NewNineSliceColor(Primary),
		Hover:    image.NewNineSliceColor(PrimaryHover),
		Pressed:  image.NewNineSliceColor(Primary),
		Disabled: image.NewNineSliceColor(Border),
	}
}

func sliderTrackImage() *widget.SliderTrackImage {
	track := image.NewNineSliceColor(Border)
	return &widget.SliderTrackImage{Idle: track, Hover: track}
}
