package overlay

import (
	"io"
	"log"
	"math"
)

var logger = log.New(io.Discard, "overlay: ", log.LstdFlags)

// SetLogger replaces the package logger. A nil logger discards output.
func SetLogger(l *log.Logger) {
	if l == nil {
		l = log.New(io.Discard, "", 0)
	}
	logger = l
}

// A Rect is the measured bounds of the positioning surface, in the same
// units as the pointer coordinates.
type Rect struct {
	Left, Top     float64
	Width, Height float64
}

// usable reports whether r can be used to normalize a pointer position. A
// surface that is not laid out yet has no area.
func (r Rect) usable() bool {
	return r.Width > 0 && r.Height > 0 &&
		!math.IsInf(r.Width, 0) && !math.IsInf(r.Height, 0) &&
		!math.IsNaN(r.Left) && !math.IsNaN(r.Top)
}

// percent normalizes a pointer position against r, unclamped.
func (r Rect) percent(px, py float64) (x, y float64, ok bool) {
	if !r.usable() {
		return 0, 0, false
	}
	x = (px - r.Left) / r.Width * 100
	y = (py - r.Top) / r.Height * 100
	if math.IsNaN(x) || math.IsNaN(y) || math.IsInf(x, 0) || math.IsInf(y, 0) {
		return 0, 0, false
	}
	return x, y, true
}

// State is the drag state of a Tracker.
type State uint8

const (
	StateIdle State = iota
	StateDragging
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateDragging:
		return "dragging"
	default:
		return "unknown"
	}
}

// A Tracker holds a percentage position within a surface and whether a drag
// is in progress. It does not notify anyone; callers publish after a change.
type Tracker struct {
	x, y  float64
	state State
}

// Position returns the stored position in percent.
func (t *Tracker) Position() (x, y float64) {
	return t.x, t.y
}

func (t *Tracker) State() State {
	return t.state
}

func (t *Tracker) Dragging() bool {
	return t.state == StateDragging
}

// BeginDrag starts a drag. The position is unchanged.
func (t *Tracker) BeginDrag() {
	t.state = StateDragging
}

// PointerMove moves the position to the pointer while dragging, clamped to
// [0,100] on both axes so the handle never leaves the surface. It returns
// whether the stored position changed.
func (t *Tracker) PointerMove(rect Rect, px, py float64) bool {
	if t.state != StateDragging {
		return false
	}
	x, y, ok := rect.percent(px, py)
	if !ok {
		logger.Printf("skipping pointer move: surface %+v has no area", rect)
		return false
	}
	return t.set(clampPercent(x), clampPercent(y))
}

// PointerUp ends the drag. The position is unchanged.
func (t *Tracker) PointerUp() {
	t.state = StateIdle
}

// SurfaceClick places the position at a direct click on the surface. Unlike
// PointerMove the result is not clamped, so a click on the surface border
// can store a value just outside [0,100].
func (t *Tracker) SurfaceClick(rect Rect, cx, cy float64) bool {
	x, y, ok := rect.percent(cx, cy)
	if !ok {
		logger.Printf("skipping surface click: surface %+v has no area", rect)
		return false
	}
	return t.set(x, y)
}

func (t *Tracker) set(x, y float64) bool {
	if x == t.x && y == t.y {
		return false
	}
	t.x, t.y = x, y
	return true
}

func clampPercent(v float64) float64 {
	return math.Max(0, math.Min(100, v))
}
