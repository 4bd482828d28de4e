package overlay

import "github.com/fivemoreminix/qoverlay/ui/pointer"

// PointerSource is where a drag subscribes for pointer events that happen
// anywhere, not only over the surface.
type PointerSource interface {
	Subscribe(pointer.Listener) *pointer.Subscription
}

// SurfaceFunc measures the positioning surface at the time of an event.
type SurfaceFunc func() Rect

// A DragSession lives from a press on the handle until the button is
// released or the editor is unmounted. It owns the global pointer
// subscription for that time.
type DragSession struct {
	editor *Editor
	sub    *pointer.Subscription
}

func (d *DragSession) PointerMove(x, y float64) {
	d.editor.dragMove(d, x, y)
}

func (d *DragSession) PointerUp(x, y float64) {
	d.editor.endDrag(d)
}

// Release drops the subscription. Safe to call more than once.
func (d *DragSession) Release() {
	d.sub.Release()
}

// An Editor is one mounted overlay editor. It wires a Tracker and a
// Publisher to the pointer source and the form controls. Editors share
// nothing with each other.
type Editor struct {
	pointers  PointerSource
	surface   SurfaceFunc
	tracker   Tracker
	raw       RawInput
	publisher *Publisher

	session   *DragSession
	mounted   bool
	unmounted bool
}

func NewEditor(index int, pointers PointerSource, surface SurfaceFunc, onUpdate UpdateFunc) *Editor {
	return &Editor{
		pointers:  pointers,
		surface:   surface,
		raw:       DefaultRawInput(),
		publisher: NewPublisher(index, onUpdate),
	}
}

func (e *Editor) Index() int {
	return e.publisher.Index()
}

// Mount publishes the initial Spec. Calling it again has no effect.
func (e *Editor) Mount() {
	if e.mounted || e.unmounted {
		return
	}
	e.mounted = true
	e.publisher.Publish(e.raw)
}

// Unmount releases a drag in progress. After Unmount the editor ignores all
// input and never publishes again.
func (e *Editor) Unmount() {
	if e.unmounted {
		return
	}
	e.unmounted = true
	if e.session != nil {
		e.session.Release()
		e.session = nil
	}
	e.tracker.PointerUp()
}

func (e *Editor) active() bool {
	return e.mounted && !e.unmounted
}

// Raw returns the current unpublished input.
func (e *Editor) Raw() RawInput {
	return e.raw
}

// Last returns the most recently published Spec.
func (e *Editor) Last() (Spec, bool) {
	return e.publisher.Last()
}

func (e *Editor) State() State {
	return e.tracker.State()
}

func (e *Editor) SetText(text string) {
	if !e.active() || text == e.raw.Text {
		return
	}
	e.raw.Text = text
	e.publish()
}

func (e *Editor) SetBackgroundEnabled(enabled bool) {
	if !e.active() || enabled == e.raw.BackgroundEnabled {
		return
	}
	e.raw.BackgroundEnabled = enabled
	e.publish()
}

// SetBackgroundColor stores a "#RRGGBB" color as given. It is not validated.
func (e *Editor) SetBackgroundColor(hex string) {
	if !e.active() || hex == e.raw.BackgroundColor {
		return
	}
	e.raw.BackgroundColor = hex
	e.publish()
}

// PointerDown starts a drag after a press on the handle. The returned
// session is already subscribed to the pointer source. A press while a drag
// is in progress returns the existing session.
func (e *Editor) PointerDown() *DragSession {
	if !e.active() {
		return nil
	}
	if e.session != nil {
		return e.session
	}
	e.tracker.BeginDrag()
	session := &DragSession{editor: e}
	session.sub = e.pointers.Subscribe(session)
	e.session = session
	return session
}

// Click places the overlay directly at a click on the surface. Clicks are
// ignored while a drag is in progress.
func (e *Editor) Click(cx, cy float64) {
	if !e.active() || e.tracker.Dragging() {
		return
	}
	if e.tracker.SurfaceClick(e.measure(), cx, cy) {
		e.syncPosition()
	}
}

func (e *Editor) dragMove(d *DragSession, x, y float64) {
	if d != e.session || !e.active() {
		return
	}
	if e.tracker.PointerMove(e.measure(), x, y) {
		e.syncPosition()
	}
}

func (e *Editor) endDrag(d *DragSession) {
	d.Release()
	if d != e.session {
		return
	}
	e.session = nil
	e.tracker.PointerUp()
}

func (e *Editor) measure() Rect {
	if e.surface == nil {
		return Rect{}
	}
	return e.surface()
}

func (e *Editor) syncPosition() {
	e.raw.XPercent, e.raw.YPercent = e.tracker.Position()
	e.publish()
}

func (e *Editor) publish() {
	e.publisher.Publish(e.raw)
}
