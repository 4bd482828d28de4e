package compose

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

type manifestOverlay struct {
	Index      int     `yaml:"index"`
	Text       string  `yaml:"text"`
	X          float64 `yaml:"x"`
	Y          float64 `yaml:"y"`
	Background string  `yaml:"background,omitempty"`
}

type manifest struct {
	Image    string            `yaml:"image,omitempty"`
	Width    float64           `yaml:"width"`
	Height   float64           `yaml:"height"`
	Overlays []manifestOverlay `yaml:"overlays"`
}

// WriteManifest writes the page size and the published overlays as YAML, for
// pipelines that apply the overlays themselves.
func (c *Composition) WriteManifest(w io.Writer) error {
	width, height := c.Size()
	m := manifest{
		Image:    c.opts.BaseImagePath,
		Width:    width,
		Height:   height,
		Overlays: make([]manifestOverlay, 0, len(c.overlays)),
	}
	for _, spec := range c.Specs() {
		entry := manifestOverlay{Index: spec.Index, Text: spec.Text, X: spec.X, Y: spec.Y}
		if bg, ok := spec.BackgroundColor(); ok {
			entry.Background = bg
		}
		m.Overlays = append(m.Overlays, entry)
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(&m); err != nil {
		return fmt.Errorf("encode manifest: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("encode manifest: %w", err)
	}
	return nil
}
