package screens

import (
	"github.com/ebitenui/ebitenui/widget"

	"github.com/OpenEmu/BSNES-Core/standalone/types"
)

// navZone is one group of focusable buttons the arrow keys step
// through. The kind decides which axis moves inside the zone; stepping
// past an edge, or along the other axis, leaves the zone through a
// registered exit.
type navZone struct {
	kind    string
	keys    []string
	columns int
}

// navExit names where focus lands when a direction leaves a zone.
// index is a position in the target zone or one of the types.NavIndex
// constants.
type navExit struct {
	zone  string
	index int
}

// BaseScreen carries the bookkeeping a rebuildable screen needs: the
// key->button registry, the pending-focus key restored after a
// rebuild, zone-based arrow navigation, and scroll position
// preservation. Embed it and call InitBase from the constructor.
type BaseScreen struct {
	scroll    *widget.ScrollContainer
	slider    *widget.Slider
	scrollTop float64

	buttons      map[string]*widget.Button
	pendingFocus string

	zones  map[string]*navZone
	zoneOf map[string]string // button key -> zone name
	exits  map[string]map[int]navExit
}

// InitBase initializes the registries. Call once from the screen's
// constructor.
func (b *BaseScreen) InitBase() {
	b.resetRegistries()
}

// ClearFocusButtons drops all registered buttons, zones, and exits.
// Call at the start of Build so a rebuild starts from a clean slate.
func (b *BaseScreen) ClearFocusButtons() {
	b.resetRegistries()
}

func (b *BaseScreen) resetRegistries() {
	b.buttons = make(map[string]*widget.Button)
	b.zones = make(map[string]*navZone)
	b.zoneOf = make(map[string]string)
	b.exits = make(map[string]map[int]navExit)
}

// RegisterFocusButton adds a button under a stable key so focus can be
// restored to it after the widget tree is rebuilt.
func (b *BaseScreen) RegisterFocusButton(key string, btn *widget.Button) {
	b.buttons[key] = btn
}

// SetPendingFocus records the key to focus once the next build is up.
func (b *BaseScreen) SetPendingFocus(key string) {
	b.pendingFocus = key
}

// GetPendingFocusButton resolves the pending key against the current
// build. Nil when nothing is pending or the key is gone.
func (b *BaseScreen) GetPendingFocusButton() *widget.Button {
	if b.pendingFocus == "" {
		return nil
	}
	return b.buttons[b.pendingFocus]
}

// ClearPendingFocus drops the pending key.
func (b *BaseScreen) ClearPendingFocus() {
	b.pendingFocus = ""
}

// SaveFocusState records the currently focused button's key as pending
// so an async rebuild (a folder dialog completing, a DPI change) puts
// focus back where it was. An already-pending key wins.
func (b *BaseScreen) SaveFocusState(focused widget.Focuser) {
	if b.pendingFocus != "" || focused == nil {
		return
	}
	w := focused.GetWidget()
	if w == nil {
		return
	}
	for key, btn := range b.buttons {
		if btn.GetWidget() == w {
			b.pendingFocus = key
			return
		}
	}
}

// SetScrollWidgets stores the scroll container and its slider for
// position preservation across rebuilds.
func (b *BaseScreen) SetScrollWidgets(sc *widget.ScrollContainer, slider *widget.Slider) {
	b.scroll = sc
	b.slider = slider
}

// SaveScrollPosition captures the current scroll offset. Call before
// tearing the widget tree down.
func (b *BaseScreen) SaveScrollPosition() {
	if b.scroll != nil {
		b.scrollTop = b.scroll.ScrollTop
	}
}

// RestoreScrollPosition reapplies the captured offset to the rebuilt
// scroll container.
func (b *BaseScreen) RestoreScrollPosition() {
	if b.scroll == nil || b.scrollTop <= 0 {
		return
	}
	b.applyScrollTop(b.scrollTop)
}

func (b *BaseScreen) applyScrollTop(top float64) {
	b.scroll.ScrollTop = top
	if b.slider != nil {
		b.slider.Current = int(top * 1000)
	}
}

// EnsureFocusedVisible scrolls the container just far enough that the
// focused button is fully inside the view.
func (b *BaseScreen) EnsureFocusedVisible(focused widget.Focuser) {
	if focused == nil || b.scroll == nil {
		return
	}
	w := focused.GetWidget()
	if w == nil {
		return
	}

	view := b.scroll.ViewRect()
	content := b.scroll.ContentRect()
	overflow := content.Dy() - view.Dy()
	if overflow <= 0 {
		return
	}

	offset := int(b.scroll.ScrollTop * float64(overflow))
	top := w.Rect.Min.Y - view.Min.Y
	bottom := w.Rect.Max.Y - view.Min.Y

	switch {
	case top < 0:
		offset += top
		if offset < 0 {
			offset = 0
		}
	case bottom > view.Dy():
		offset += bottom - view.Dy()
		if offset > overflow {
			offset = overflow
		}
	default:
		return
	}
	b.applyScrollTop(float64(offset) / float64(overflow))
}

// RegisterNavZone declares a button group for arrow navigation. Keys
// are in visual order: left-to-right for horizontal zones,
// top-to-bottom for vertical ones, row-major for grids. columns only
// matters for grids.
func (b *BaseScreen) RegisterNavZone(name string, kind string, keys []string, columns int) {
	b.zones[name] = &navZone{kind: kind, keys: keys, columns: columns}
	for _, key := range keys {
		b.zoneOf[key] = name
	}
}

// SetNavTransition declares where focus goes when direction leaves
// fromZone. toIndex is a position in the target zone or a NavIndex
// constant.
func (b *BaseScreen) SetNavTransition(fromZone string, direction int, toZone string, toIndex int) {
	if b.exits[fromZone] == nil {
		b.exits[fromZone] = make(map[int]navExit)
	}
	b.exits[fromZone][direction] = navExit{zone: toZone, index: toIndex}
}

// FindFocusInDirection resolves an arrow press against the zones: a
// step inside the current zone, or the registered exit when the press
// leaves it. Nil when the focused widget is not a registered button or
// no exit covers the direction.
func (b *BaseScreen) FindFocusInDirection(current widget.Focuser, direction int) *widget.Button {
	key := b.keyOf(current)
	if key == "" {
		return nil
	}
	zoneName, ok := b.zoneOf[key]
	if !ok {
		return nil
	}
	zone := b.zones[zoneName]
	index := indexOf(zone.keys, key)
	if index < 0 {
		return nil
	}

	if next, stayed := zoneStep(zone, index, direction); stayed {
		return b.buttons[zone.keys[next]]
	}
	return b.exitTarget(zoneName, direction)
}

// keyOf finds the registry key of the focused widget.
func (b *BaseScreen) keyOf(current widget.Focuser) string {
	if current == nil {
		return ""
	}
	w := current.GetWidget()
	if w == nil {
		return ""
	}
	for key, btn := range b.buttons {
		if btn.GetWidget() == w {
			return key
		}
	}
	return ""
}

func indexOf(keys []string, key string) int {
	for i, k := range keys {
		if k == key {
			return i
		}
	}
	return -1
}

// zoneStep moves one position inside a zone. Every zone walks like a
// grid: a horizontal zone is a single row, a vertical zone a single
// column. Returns stayed=false when the move crosses an edge or runs
// along the zone's perpendicular axis.
func zoneStep(z *navZone, index, direction int) (next int, stayed bool) {
	cols := z.columns
	switch z.kind {
	case types.NavZoneHorizontal:
		if direction == types.DirUp || direction == types.DirDown {
			return 0, false
		}
		cols = len(z.keys)
	case types.NavZoneVertical:
		if direction == types.DirLeft || direction == types.DirRight {
			return 0, false
		}
		cols = 1
	}
	if cols <= 0 {
		cols = 1
	}

	next = index
	switch direction {
	case types.DirLeft:
		if index%cols == 0 {
			return 0, false
		}
		next--
	case types.DirRight:
		if index%cols == cols-1 {
			return 0, false
		}
		next++
	case types.DirUp:
		next -= cols
	case types.DirDown:
		next += cols
	default:
		return 0, false
	}
	if next < 0 || next >= len(z.keys) {
		return 0, false
	}
	return next, true
}

// exitTarget resolves a registered zone exit to its button.
func (b *BaseScreen) exitTarget(fromZone string, direction int) *widget.Button {
	exit, ok := b.exits[fromZone][direction]
	if !ok {
		return nil
	}
	zone := b.zones[exit.zone]
	if zone == nil || len(zone.keys) == 0 {
		return nil
	}

	index := exit.index
	switch index {
	case types.NavIndexFirst:
		index = 0
	case types.NavIndexLast:
		index = len(zone.keys) - 1
	}
	if index < 0 || index >= len(zone.keys) {
		return nil
	}
	return b.buttons[zone.keys[index]]
}
