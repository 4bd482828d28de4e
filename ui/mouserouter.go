package ui

import (
	"github.com/gdamore/tcell/v2"

	"github.com/fivemoreminix/qoverlay/ui/pointer"
)

// A MouseRouter splits tcell's mouse stream into presses, which go to
// components, and moves and releases, which go to the pointer hub regardless
// of where they happen.
type MouseRouter struct {
	Hub  *pointer.Hub
	down bool
}

func NewMouseRouter(hub *pointer.Hub) *MouseRouter {
	return &MouseRouter{Hub: hub}
}

// Down reports whether the primary button is held.
func (r *MouseRouter) Down() bool {
	return r.down
}

// Route handles a mouse event. It returns true when the event is a new press
// that should be passed on to the components.
//
// While the primary button is held, only an event with no buttons at all ends
// the drag. tcell reports one button per event, so wheel ticks and presses of
// other buttons arrive in the middle of a drag and are dropped.
func (r *MouseRouter) Route(ev *tcell.EventMouse) bool {
	x, y := ev.Position()
	buttons := ev.Buttons()

	if !r.down {
		if buttons&tcell.Button1 != 0 {
			r.down = true
			return true
		}
		return false
	}

	switch {
	case buttons&tcell.Button1 != 0:
		r.Hub.Move(float64(x), float64(y))
	case buttons == tcell.ButtonNone:
		r.down = false
		r.Hub.Up(float64(x), float64(y))
	}
	return false
}
