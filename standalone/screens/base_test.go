package screens

import (
	"image/color"
	"testing"

	eimage "github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"

	"github.com/OpenEmu/BSNES-Core/standalone/types"
)

func testButton() *widget.Button {
	return widget.NewButton(widget.ButtonOpts.Image(&widget.ButtonImage{
		Idle: eimage.NewNineSliceColor(color.NRGBA{}),
	}))
}

// navBase builds a BaseScreen with the shape the settings screen uses:
// a vertical sidebar, a horizontal row, and a 3-column grid, wired
// left-to-right.
func navBase(t *testing.T) (*BaseScreen, map[string]*widget.Button) {
	t.Helper()
	b := &BaseScreen{}
	b.InitBase()

	keys := []string{
		"side-0", "side-1", "side-2",
		"row-0", "row-1", "row-2",
		"grid-0", "grid-1", "grid-2", "grid-3", "grid-4",
	}
	buttons := make(map[string]*widget.Button, len(keys))
	for _, key := range keys {
		buttons[key] = testButton()
		b.RegisterFocusButton(key, buttons[key])
	}

	b.RegisterNavZone("sidebar", types.NavZoneVertical, []string{"side-0", "side-1", "side-2"}, 0)
	b.RegisterNavZone("row", types.NavZoneHorizontal, []string{"row-0", "row-1", "row-2"}, 0)
	// 3 columns, 5 keys: the second row is incomplete.
	b.RegisterNavZone("grid", types.NavZoneGrid, []string{"grid-0", "grid-1", "grid-2", "grid-3", "grid-4"}, 3)

	b.SetNavTransition("sidebar", types.DirRight, "row", types.NavIndexFirst)
	b.SetNavTransition("row", types.DirLeft, "sidebar", types.NavIndexFirst)
	b.SetNavTransition("row", types.DirDown, "grid", types.NavIndexFirst)
	b.SetNavTransition("grid", types.DirUp, "row", types.NavIndexLast)
	return b, buttons
}

func TestFindFocusInDirectionWithinZones(t *testing.T) {
	b, buttons := navBase(t)

	tests := []struct {
		name string
		from string
		dir  int
		want string
	}{
		{"vertical down", "side-0", types.DirDown, "side-1"},
		{"vertical up", "side-2", types.DirUp, "side-1"},
		{"horizontal right", "row-0", types.DirRight, "row-1"},
		{"horizontal left", "row-2", types.DirLeft, "row-1"},
		{"grid right", "grid-0", types.DirRight, "grid-1"},
		{"grid down", "grid-1", types.DirDown, "grid-4"},
		{"grid up", "grid-3", types.DirUp, "grid-0"},
		{"grid left inside row", "grid-4", types.DirLeft, "grid-3"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := b.FindFocusInDirection(buttons[tt.from], tt.dir)
			if got != buttons[tt.want] {
				t.Errorf("from %s dir %d: got %v, want %s", tt.from, tt.dir, got, tt.want)
			}
		})
	}
}

func TestFindFocusInDirectionAtEdges(t *testing.T) {
	b, buttons := navBase(t)

	// No transition registered for the direction: focus stays put.
	if got := b.FindFocusInDirection(buttons["side-0"], types.DirUp); got != nil {
		t.Errorf("up from top of sidebar = %v, want nil", got)
	}
	if got := b.FindFocusInDirection(buttons["grid-4"], types.DirDown); got != nil {
		t.Errorf("down from last grid item = %v, want nil", got)
	}
	// Right from the end of the incomplete grid row has nowhere to go.
	if got := b.FindFocusInDirection(buttons["grid-4"], types.DirRight); got != nil {
		t.Errorf("right past incomplete row = %v, want nil", got)
	}
	// Unregistered widget.
	if got := b.FindFocusInDirection(testButton(), types.DirDown); got != nil {
		t.Errorf("unregistered button = %v, want nil", got)
	}
	if got := b.FindFocusInDirection(nil, types.DirDown); got != nil {
		t.Errorf("nil focus = %v, want nil", got)
	}
}

func TestFindFocusInDirectionTransitions(t *testing.T) {
	b, buttons := navBase(t)

	tests := []struct {
		name string
		from string
		dir  int
		want string
	}{
		{"sidebar right exits to row start", "side-1", types.DirRight, "row-0"},
		{"row left exits to sidebar start", "row-1", types.DirLeft, "side-0"},
		{"row down exits to grid first", "row-2", types.DirDown, "grid-0"},
		{"grid up exits to row last", "grid-1", types.DirUp, "row-2"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := b.FindFocusInDirection(buttons[tt.from], tt.dir)
			if got != buttons[tt.want] {
				t.Errorf("from %s dir %d: got %v, want %s", tt.from, tt.dir, got, tt.want)
			}
		})
	}
}

func TestFindFocusInDirectionBadTransitionTarget(t *testing.T) {
	b, buttons := navBase(t)
	b.SetNavTransition("sidebar", types.DirLeft, "missing-zone", types.NavIndexFirst)
	b.SetNavTransition("row", types.DirUp, "grid", 99)

	if got := b.FindFocusInDirection(buttons["side-0"], types.DirLeft); got != nil {
		t.Errorf("transition to missing zone = %v, want nil", got)
	}
	if got := b.FindFocusInDirection(buttons["row-0"], types.DirUp); got != nil {
		t.Errorf("transition to out-of-range index = %v, want nil", got)
	}
}

func TestZoneStep(t *testing.T) {
	horizontal := &navZone{kind: types.NavZoneHorizontal, keys: []string{"a", "b", "c"}}
	vertical := &navZone{kind: types.NavZoneVertical, keys: []string{"a", "b", "c"}}
	grid := &navZone{kind: types.NavZoneGrid, keys: []string{"a", "b", "c", "d", "e"}, columns: 3}

	tests := []struct {
		name   string
		zone   *navZone
		index  int
		dir    int
		next   int
		stayed bool
	}{
		{"horizontal right", horizontal, 0, types.DirRight, 1, true},
		{"horizontal left at start", horizontal, 0, types.DirLeft, 0, false},
		{"horizontal right at end", horizontal, 2, types.DirRight, 0, false},
		{"horizontal up exits", horizontal, 1, types.DirUp, 0, false},
		{"vertical down", vertical, 0, types.DirDown, 1, true},
		{"vertical up at start", vertical, 0, types.DirUp, 0, false},
		{"vertical right exits", vertical, 1, types.DirRight, 0, false},
		{"grid right inside row", grid, 0, types.DirRight, 1, true},
		{"grid right at row end", grid, 2, types.DirRight, 0, false},
		{"grid left at row start", grid, 3, types.DirLeft, 0, false},
		{"grid down", grid, 0, types.DirDown, 3, true},
		{"grid down past end", grid, 2, types.DirDown, 0, false},
		{"grid up from first row", grid, 1, types.DirUp, 0, false},
		{"grid up from second row", grid, 4, types.DirUp, 1, true},
		{"unknown direction", grid, 0, types.DirNone, 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			next, stayed := zoneStep(tt.zone, tt.index, tt.dir)
			if next != tt.next || stayed != tt.stayed {
				t.Errorf("zoneStep = (%d, %v), want (%d, %v)", next, stayed, tt.next, tt.stayed)
			}
		})
	}
}

func TestZoneStepZeroColumnGrid(t *testing.T) {
	// A grid registered without columns degrades to a single column
	// instead of dividing by zero.
	z := &navZone{kind: types.NavZoneGrid, keys: []string{"a", "b"}, columns: 0}
	next, stayed := zoneStep(z, 0, types.DirDown)
	if !stayed || next != 1 {
		t.Errorf("zoneStep = (%d, %v), want (1, true)", next, stayed)
	}
}

func TestPendingFocusLifecycle(t *testing.T) {
	b := &BaseScreen{}
	b.InitBase()
	btn := testButton()
	b.RegisterFocusButton("video-scale", btn)

	if got := b.GetPendingFocusButton(); got != nil {
		t.Fatalf("pending focus before any request = %v", got)
	}
	b.SetPendingFocus("video-scale")
	if got := b.GetPendingFocusButton(); got != btn {
		t.Fatal("pending focus did not resolve to the registered button")
	}
	b.ClearPendingFocus()
	if got := b.GetPendingFocusButton(); got != nil {
		t.Fatal("pending focus survived ClearPendingFocus")
	}

	// A key that disappeared in the rebuild resolves to nothing.
	b.SetPendingFocus("gone")
	if got := b.GetPendingFocusButton(); got != nil {
		t.Fatalf("stale key resolved to %v", got)
	}
}

func TestSaveFocusState(t *testing.T) {
	b := &BaseScreen{}
	b.InitBase()
	first := testButton()
	second := testButton()
	b.RegisterFocusButton("first", first)
	b.RegisterFocusButton("second", second)

	b.SaveFocusState(first)
	if b.GetPendingFocusButton() != first {
		t.Fatal("SaveFocusState did not record the focused button")
	}

	// An already-pending key wins over a later save.
	b.SaveFocusState(second)
	if b.GetPendingFocusButton() != first {
		t.Error("SaveFocusState overrode an existing pending key")
	}

	b.ClearPendingFocus()
	b.SaveFocusState(nil)
	if b.GetPendingFocusButton() != nil {
		t.Error("SaveFocusState(nil) set a pending key")
	}
	b.SaveFocusState(testButton())
	if b.GetPendingFocusButton() != nil {
		t.Error("SaveFocusState recorded an unregistered button")
	}
}

func TestClearFocusButtonsResetsRegistries(t *testing.T) {
	b, buttons := navBase(t)
	b.ClearFocusButtons()

	if got := b.GetPendingFocusButton(); got != nil {
		t.Errorf("button registry survived reset: %v", got)
	}
	if got := b.FindFocusInDirection(buttons["side-0"], types.DirDown); got != nil {
		t.Errorf("navigation state survived reset: %v", got)
	}
}

func TestScrollPositionSavedWithoutContainer(t *testing.T) {
	b := &BaseScreen{}
	b.InitBase()
	// No scroll container registered: both calls are no-ops, not panics.
	b.SaveScrollPosition()
	b.RestoreScrollPosition()
}
