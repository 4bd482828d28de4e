package ui

import (
	"math"

	"github.com/gdamore/tcell/v2"

	"github.com/fivemoreminix/qoverlay/ui/overlay"
)

// A Surface is the bordered area an overlay is positioned in. It draws the
// drag handle at the editor's position and turns mouse presses into either a
// drag start (on the handle) or a direct click (anywhere else inside the
// outline, border included).
//
// The usable area runs from the first inner cell to the last inner cell, so a
// click on the right or bottom border lands past 100%.
type Surface struct {
	// Position returns the handle position in percent.
	Position func() (x, y float64)
	// Dragging reports whether a drag is in progress, for highlighting.
	Dragging func() bool
	// OnHandlePress is called for a press on the handle cell.
	OnHandlePress func()
	// OnClick is called for a press elsewhere inside the outline.
	OnClick func(x, y float64)

	baseComponent
}

func NewSurface(theme *Theme) *Surface {
	return &Surface{baseComponent: baseComponent{theme: theme}}
}

// Rect returns the area positions are measured against. It has no area until
// the surface has been given a size of at least 4x4.
func (s *Surface) Rect() overlay.Rect {
	if s.width < 4 || s.height < 4 {
		return overlay.Rect{}
	}
	return overlay.Rect{
		Left:   float64(s.x + 1),
		Top:    float64(s.y + 1),
		Width:  float64(s.width - 3),
		Height: float64(s.height - 3),
	}
}

// handleCell returns the cell the handle is drawn in. Positions outside
// [0,100], which a border click can store, are kept inside the outline.
func (s *Surface) handleCell() (int, int) {
	var px, py float64
	if s.Position != nil {
		px, py = s.Position()
	}
	r := s.Rect()
	col := int(math.Round(r.Left + px/100*r.Width))
	row := int(math.Round(r.Top + py/100*r.Height))
	return Clamp(col, s.x, s.x+s.width-1), Clamp(row, s.y, s.y+s.height-1)
}

func (s *Surface) Draw(scr tcell.Screen) {
	style := s.theme.GetOrDefault("Surface")
	DrawRect(scr, s.x, s.y, s.width, s.height, ' ', style)
	DrawRectOutline(scr, s.x, s.y, s.width, s.height, '╭', '╮', '╰', '╯', '─', '│', style)

	if s.width < 4 || s.height < 4 {
		return
	}
	handleStyle := s.theme.GetOrDefault("SurfaceHandle")
	if s.Dragging != nil && s.Dragging() {
		handleStyle = s.theme.GetOrDefault("SurfaceHandleActive")
	}
	col, row := s.handleCell()
	scr.SetContent(col, row, '●', nil, handleStyle)
}

func (s *Surface) GetMinSize() (int, int) {
	return 4, 4
}

func (s *Surface) HandleEvent(event tcell.Event) bool {
	x, y, ok := mousePress(event)
	if !ok || !s.contains(x, y) {
		return false
	}

	if col, row := s.handleCell(); col == x && row == y && s.width >= 4 && s.height >= 4 {
		if s.OnHandlePress != nil {
			s.OnHandlePress()
		}
		return true
	}
	if s.OnClick != nil {
		s.OnClick(float64(x), float64(y))
	}
	return true
}
