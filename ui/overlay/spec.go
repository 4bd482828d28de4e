// Package overlay positions and styles a single text overlay. A Tracker turns
// pointer coordinates into a percentage position within a surface, and a
// Publisher hands a derived Spec to a listener whenever the inputs change.
package overlay

import "strings"

// DefaultBackgroundColor is the stored background color before the user
// picks one.
const DefaultBackgroundColor = "#FFFFFF"

// A Spec is the configuration published for one overlay.
type Spec struct {
	Index int
	Text  string
	// X and Y are fractions of the surface width and height.
	X, Y float64
	// Background is the fill color without the leading '#'. It is only
	// meaningful when HasBackground is set.
	Background    string
	HasBackground bool
}

// BackgroundColor returns the fill color and whether the overlay has one.
func (s Spec) BackgroundColor() (string, bool) {
	return s.Background, s.HasBackground
}

// RawInput is the editable state a Spec is derived from.
type RawInput struct {
	Text string
	// XPercent and YPercent are in [0,100] on the drag path. A direct click
	// may store values outside that range.
	XPercent, YPercent float64

	BackgroundEnabled bool
	BackgroundColor   string
}

// DefaultRawInput returns the state of a freshly mounted editor.
func DefaultRawInput() RawInput {
	return RawInput{BackgroundColor: DefaultBackgroundColor}
}

// Derive computes the Spec for raw. Empty text becomes a single space so the
// overlay always has something to hit downstream.
func Derive(index int, raw RawInput) Spec {
	spec := Spec{
		Index: index,
		Text:  raw.Text,
		X:     raw.XPercent / 100,
		Y:     raw.YPercent / 100,
	}
	if len(spec.Text) == 0 {
		spec.Text = " "
	}
	if raw.BackgroundEnabled {
		spec.Background = strings.TrimPrefix(raw.BackgroundColor, "#")
		spec.HasBackground = true
	}
	return spec
}
