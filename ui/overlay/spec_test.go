package overlay

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDeriveDefaults(t *testing.T) {
	spec := Derive(2, DefaultRawInput())

	assert.Equal(t, Spec{Index: 2, Text: " "}, spec)
	_, ok := spec.BackgroundColor()
	assert.False(t, ok)
}

func TestDeriveText(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"empty becomes space", "", " "},
		{"plain", "hello", "hello"},
		{"whitespace kept", "  ", "  "},
		{"unicode", "こんにちは", "こんにちは"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			raw := DefaultRawInput()
			raw.Text = tt.in
			assert.Equal(t, tt.want, Derive(0, raw).Text)
		})
	}
}

func TestDeriveFractions(t *testing.T) {
	raw := DefaultRawInput()
	raw.XPercent = 25
	raw.YPercent = 100

	spec := Derive(0, raw)
	assert.Equal(t, 0.25, spec.X)
	assert.Equal(t, 1.0, spec.Y)
}

func TestDeriveBackground(t *testing.T) {
	raw := DefaultRawInput()
	raw.BackgroundColor = "#1A2B3C"

	off := Derive(0, raw)
	assert.False(t, off.HasBackground)
	assert.Empty(t, off.Background)

	raw.BackgroundEnabled = true
	on := Derive(0, raw)
	bg, ok := on.BackgroundColor()
	assert.True(t, ok)
	assert.Equal(t, "1A2B3C", bg)
}

func TestDeriveBackgroundPassesThroughInvalidColor(t *testing.T) {
	raw := DefaultRawInput()
	raw.BackgroundEnabled = true
	raw.BackgroundColor = "not-a-color"

	assert.Equal(t, "not-a-color", Derive(0, raw).Background)
}
