package style

import (
	"bytes"
	"log"

	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"
)

// Logical-pixel reference values. The exported vars below hold these
// scaled by the DPI factor (and, where noted, the font size).
const (
	refPadding       = 16
	refSpacing       = 16
	refSmallSpacing  = 8
	refTinySpacing   = 4
	refButtonPadS    = 8
	refButtonPadM    = 12
	refSidebarWidth  = 180
	refOverlayPad    = 12
	refOverlayMargin = 8

	// Font-dependent, at the 14pt base size.
	refRowHeight     = 38
	refBindingColCtl = 100
	refBindingColKey = 140

	baseFontSize = 14
)

// ScrollWheelSensitivity is the scroll fraction per wheel notch.
const ScrollWheelSensitivity = 0.05

// Layout values in physical pixels. Recomputed by SetDPIScale and
// ApplyFontSize; widgets read them at build time.
var (
	DefaultPadding      = refPadding
	DefaultSpacing      = refSpacing
	SmallSpacing        = refSmallSpacing
	TinySpacing         = refTinySpacing
	ButtonPaddingSmall  = refButtonPadS
	ButtonPaddingMedium = refButtonPadM

	SettingsSidebarMinWidth = refSidebarWidth
	OverlayPadding          = refOverlayPad
	OverlayMargin           = refOverlayMargin

	// Scaled by font size as well as DPI.
	SettingsRowHeight = refRowHeight
	BindingColControl = refBindingColCtl
	BindingColKey     = refBindingColKey
)

var (
	dpiScale float64 = 1
	fontSize float64 = baseFontSize
)

// DPIScale returns the active device scale factor.
func DPIScale() float64 {
	return dpiScale
}

// Px converts logical pixels to physical pixels at the current DPI.
func Px(logical int) int {
	return int(float64(logical) * dpiScale)
}

// SetDPIScale records the device scale factor and rescales the layout
// values. Scales below 1 are treated as 1.
func SetDPIScale(scale float64) {
	if scale < 1 {
		scale = 1
	}
	dpiScale = scale

	DefaultPadding = Px(refPadding)
	DefaultSpacing = Px(refSpacing)
	SmallSpacing = Px(refSmallSpacing)
	TinySpacing = Px(refTinySpacing)
	ButtonPaddingSmall = Px(refButtonPadS)
	ButtonPaddingMedium = Px(refButtonPadM)
	SettingsSidebarMinWidth = Px(refSidebarWidth)
	OverlayPadding = Px(refOverlayPad)
	OverlayMargin = Px(refOverlayMargin)

	ApplyFontSize(int(fontSize))
}

var (
	fontSource *text.GoTextFaceSource
	fontFace   text.Face
)

func loadFontSource() *text.GoTextFaceSource {
	if fontSource == nil {
		source, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
		if err != nil {
			log.Printf("Failed to load font source: %v", err)
			return nil
		}
		fontSource = source
	}
	return fontSource
}

// FontFace returns the UI font face. The pointer stays stable across
// ApplyFontSize so widgets built before a size change keep a valid
// face until the rebuild replaces them.
func FontFace() *text.Face {
	if fontFace == nil {
		if source := loadFontSource(); source != nil {
			fontFace = &text.GoTextFace{Source: source, Size: fontSize * dpiScale}
		}
	}
	return &fontFace
}

// ApplyFontSize sets the UI font size in points and rescales the
// font-dependent layout values.
func ApplyFontSize(size int) {
	fontSize = float64(size)

	// Swap the face in place: widgets hold &fontFace, so nil-ing it
	// out would crash draws that happen before the rebuild.
	if source := loadFontSource(); source != nil {
		fontFace = &text.GoTextFace{Source: source, Size: fontSize * dpiScale}
	}

	scale := fontSize / baseFontSize * dpiScale
	SettingsRowHeight = int(refRowHeight * scale)
	BindingColControl = int(refBindingColCtl * scale)
	BindingColKey = int(refBindingColKey * scale)
}
