package ui

import "github.com/gdamore/tcell/v2"

// Max returns the larger integer.
func Max(a, b int) int {
	if a > b {
		return a
	}
	return b
}

// Min returns the smaller integer.
func Min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// Clamp keeps `v` within `a` and `b` numerically. `a` must be smaller than `b`.
// Returns clamped `v`.
func Clamp(v, a, b int) int {
	return Max(a, Min(v, b))
}

// InRect reports whether the cell `px`, `py` is inside the rectangle at `x`, `y`
// of size `width` and `height`.
func InRect(px, py, x, y, width, height int) bool {
	return px >= x && px < x+width && py >= y && py < y+height
}

// mousePress returns the position of a primary button press, if event is one.
func mousePress(event tcell.Event) (x, y int, ok bool) {
	ev, isMouse := event.(*tcell.EventMouse)
	if !isMouse || ev.Buttons()&tcell.Button1 == 0 {
		return 0, 0, false
	}
	x, y = ev.Position()
	return x, y, true
}
