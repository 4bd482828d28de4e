// Package compose collects the overlays published by the editors and renders
// them on top of a base image.
package compose

import (
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"os"
	"sort"

	"github.com/fivemoreminix/qoverlay/ui/overlay"
)

// Options configures a Composition.
type Options struct {
	// BaseImage is drawn first, scaled to the page width. May be nil.
	BaseImage image.Image
	// BaseImagePath is recorded in the manifest.
	BaseImagePath string
	// PageWidth and PageHeight are in millimeters. With a base image the
	// height follows the image's aspect ratio.
	PageWidth, PageHeight float64
	// FontSize is in points.
	FontSize float64
	// TextColor is a "#RRGGBB" color for overlay text.
	TextColor string
	// DPMM is the raster resolution in dots per millimeter.
	DPMM float64
}

const (
	defaultPageWidth  = 210
	defaultPageHeight = 297
	defaultFontSize   = 24
	defaultTextColor  = "#000000"
	defaultDPMM       = 4
)

// A Composition holds the latest Spec of every overlay, keyed by index.
type Composition struct {
	opts     Options
	overlays map[int]overlay.Spec
}

func New(opts Options) *Composition {
	if opts.PageWidth <= 0 {
		opts.PageWidth = defaultPageWidth
	}
	if opts.PageHeight <= 0 {
		opts.PageHeight = defaultPageHeight
	}
	if opts.BaseImage != nil {
		b := opts.BaseImage.Bounds()
		if b.Dx() > 0 && b.Dy() > 0 {
			opts.PageHeight = opts.PageWidth * float64(b.Dy()) / float64(b.Dx())
		}
	}
	if opts.FontSize <= 0 {
		opts.FontSize = defaultFontSize
	}
	if opts.TextColor == "" {
		opts.TextColor = defaultTextColor
	}
	if opts.DPMM <= 0 {
		opts.DPMM = defaultDPMM
	}
	return &Composition{opts: opts, overlays: make(map[int]overlay.Spec)}
}

// Size returns the page size in millimeters.
func (c *Composition) Size() (width, height float64) {
	return c.opts.PageWidth, c.opts.PageHeight
}

// Update stores the latest Spec for its index. It has the shape of an
// overlay.UpdateFunc so it can be handed to editors directly.
func (c *Composition) Update(spec overlay.Spec) {
	c.overlays[spec.Index] = spec
}

// Remove drops the overlay at index.
func (c *Composition) Remove(index int) {
	delete(c.overlays, index)
}

// Get returns the stored Spec for index.
func (c *Composition) Get(index int) (overlay.Spec, bool) {
	spec, ok := c.overlays[index]
	return spec, ok
}

// Specs returns the stored overlays ordered by index.
func (c *Composition) Specs() []overlay.Spec {
	specs := make([]overlay.Spec, 0, len(c.overlays))
	for _, spec := range c.overlays {
		specs = append(specs, spec)
	}
	sort.Slice(specs, func(i, j int) bool { return specs[i].Index < specs[j].Index })
	return specs
}

// LoadImage decodes a PNG, JPEG, or GIF file.
func LoadImage(path string) (image.Image, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open image %s: %w", path, err)
	}
	defer file.Close()

	img, _, err := image.Decode(file)
	if err != nil {
		return nil, fmt.Errorf("decode image %s: %w", path, err)
	}
	return img, nil
}
