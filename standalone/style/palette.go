package style

import "image/color"

// Theme is a named color palette. The active theme is copied into the
// package-level color vars below, which is what the widget constructors
// read. Switching themes therefore requires a UI rebuild.
type Theme struct {
	Name              string
	Background        color.NRGBA
	Surface           color.NRGBA
	Primary           color.NRGBA
	PrimaryHover      color.NRGBA
	Text              color.NRGBA
	TextSecondary     color.NRGBA
	Accent            color.NRGBA
	Border            color.NRGBA
	OverlayBackground color.NRGBA
}

// Active palette. Updated by ApplyTheme.
var (
	Background        = themeDefault.Background
	Surface           = themeDefault.Surface
	Primary           = themeDefault.Primary
	PrimaryHover      = themeDefault.PrimaryHover
	Text              = themeDefault.Text
	TextSecondary     = themeDefault.TextSecondary
	Accent            = themeDefault.Accent
	Border            = themeDefault.Border
	OverlayBackground = themeDefault.OverlayBackground
)

var (
	// Dark gray with the purple of the US console's buttons.
	themeDefault = Theme{
		Name:              "Default",
		Background:        color.NRGBA{0x22, 0x22, 0x26, 0xff},
		Surface:           color.NRGBA{0x2d, 0x2d, 0x33, 0xff},
		Primary:           color.NRGBA{0x4f, 0x43, 0x9b, 0xff},
		PrimaryHover:      color.NRGBA{0x61, 0x55, 0xad, 0xff},
		Text:              color.NRGBA{0xf2, 0xf2, 0xf2, 0xff},
		TextSecondary:     color.NRGBA{0x9a, 0x9a, 0xa2, 0xff},
		Accent:            color.NRGBA{0xb5, 0xa9, 0xff, 0xff},
		Border:            color.NRGBA{0x3c, 0x3c, 0x44, 0xff},
		OverlayBackground: color.NRGBA{0x22, 0x22, 0x26, 0xff},
	}

	// Near-black for dim rooms.
	themeMidnight = Theme{
		Name:              "Midnight",
		Background:        color.NRGBA{0x0c, 0x0c, 0x10, 0xff},
		Surface:           color.NRGBA{0x17, 0x17, 0x1d, 0xff},
		Primary:           color.NRGBA{0x2a, 0x4a, 0x7a, 0xff},
		PrimaryHover:      color.NRGBA{0x3a, 0x5a, 0x8a, 0xff},
		Text:              color.NRGBA{0xe8, 0xe8, 0xe8, 0xff},
		TextSecondary:     color.NRGBA{0x7e, 0x7e, 0x86, 0xff},
		Accent:            color.NRGBA{0x58, 0xc4, 0x7c, 0xff},
		Border:            color.NRGBA{0x26, 0x26, 0x2e, 0xff},
		OverlayBackground: color.NRGBA{0x0c, 0x0c, 0x10, 0xff},
	}

	themeLight = Theme{
		Name:              "Light",
		Background:        color.NRGBA{0xec, 0xec, 0xec, 0xff},
		Surface:           color.NRGBA{0xf8, 0xf8, 0xf8, 0xff},
		Primary:           color.NRGBA{0x2a, 0x5c, 0xc8, 0xff},
		PrimaryHover:      color.NRGBA{0x3a, 0x6c, 0xd8, 0xff},
		Text:              color.NRGBA{0x20, 0x20, 0x20, 0xff},
		TextSecondary:     color.NRGBA{0x6a, 0x6a, 0x6a, 0xff},
		Accent:            color.NRGBA{0xc2, 0x48, 0x00, 0xff},
		Border:            color.NRGBA{0xc8, 0xc8, 0xc8, 0xff},
		OverlayBackground: color.NRGBA{0xec, 0xec, 0xec, 0xff},
	}

	// The overseas console shell: warm gray with the red logo accent.
	themeFamicom = Theme{
		Name:              "Super Famicom",
		Background:        color.NRGBA{0x3a, 0x38, 0x3f, 0xff},
		Surface:           color.NRGBA{0x4a, 0x48, 0x4f, 0xff},
		Primary:           color.NRGBA{0x8a, 0x1f, 0x2a, 0xff},
		PrimaryHover:      color.NRGBA{0x9e, 0x2f, 0x3a, 0xff},
		Text:              color.NRGBA{0xe6, 0xe2, 0xdc, 0xff},
		TextSecondary:     color.NRGBA{0xa6, 0xa2, 0x9c, 0xff},
		Accent:            color.NRGBA{0xf0, 0xc4, 0x30, 0xff},
		Border:            color.NRGBA{0x5a, 0x58, 0x5f, 0xff},
		OverlayBackground: color.NRGBA{0x3a, 0x38, 0x3f, 0xff},
	}
)

// AvailableThemes lists the selectable palettes in display order.
var AvailableThemes = []Theme{themeDefault, themeMidnight, themeLight, themeFamicom}

// ThemeNames returns the valid theme names, for config validation and
// the appearance section.
func ThemeNames() []string {
	names := make([]string, len(AvailableThemes))
	for i, t := range AvailableThemes {
		names[i] = t.Name
	}
	return names
}

// ApplyTheme copies a palette into the active color vars.
func ApplyTheme(t Theme) {
	Background = t.Background
	Surface = t.Surface
	Primary = t.Primary
	PrimaryHover = t.PrimaryHover
	Text = t.Text
	TextSecondary = t.TextSecondary
	Accent = t.Accent
	Border = t.Border
	OverlayBackground = t.OverlayBackground
}

// ApplyThemeByName activates the named palette, falling back to the
// default when the name is unknown.
func ApplyThemeByName(name string) {
	for _, t := range AvailableThemes {
		if t.Name == name {
			ApplyTheme(t)
			return
		}
	}
	ApplyTheme(themeDefault)
}
