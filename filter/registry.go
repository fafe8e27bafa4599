package filter

// Info describes an available video filter.
type Info struct {
	ID          string // Unique identifier used in config
	Name        string // Display name for UI
	Description string // Brief description of the effect
}

// Available lists all filters that can be selected.
var Available = []Info{
	{
		ID:          "direct",
		Name:        "None",
		Description: "Unfiltered output",
	},
	{
		ID:          "scanline",
		Name:        "Scanline",
		Description: "Darkened lines between pixel rows like a CRT",
	},
	{
		ID:          "scale2x",
		Name:        "Scale2x",
		Description: "Smooth edges while preserving pixel art details",
	},
}

// New returns the filter for an ID. Unknown IDs fall back to the
// direct filter so a stale config value never breaks rendering.
func New(id string) Filter {
	switch id {
	case "scanline":
		return NewScanline()
	case "scale2x":
		return NewScale2x()
	default:
		return NewDirect()
	}
}

// Valid reports whether id names a known filter.
func Valid(id string) bool {
	for _, info := range Available {
		if info.ID == id {
			return true
		}
	}
	return false
}

// NextID returns the filter ID after id in the Available order,
// wrapping around at the end. Unknown IDs restart at the first entry.
func NextID(id string) string {
	for i, info := range Available {
		if info.ID == id {
			return Available[(i+1)%len(Available)].ID
		}
	}
	return Available[0].ID
}

// NameOf returns the display name for a filter ID.
func NameOf(id string) string {
	for _, info := range Available {
		if info.ID == id {
			return info.Name
		}
	}
	return Available[0].Name
}
